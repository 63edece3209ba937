package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/columnar-core/tabular/internal/table"
)

// Registry plays the host environment's role in the table lifecycle: it owns
// the references that keep tables reachable and hands out opaque handles for
// them. Releasing a handle drops the registry's reference only; the columns
// behind the table are untouched.
//
// Unlike Table itself, the registry is safe for concurrent use. The host side
// may be multi-threaded even when each table is driven from a single logical
// thread.
type Registry struct {
	mu        sync.RWMutex
	tables    map[uuid.UUID]*table.Table
	observers []Observer
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		tables: make(map[uuid.UUID]*table.Table),
	}
}

// AddObserver subscribes an observer to lifecycle events
func (r *Registry) AddObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, o)
}

// RemoveObserver unsubscribes an observer
func (r *Registry) RemoveObserver(o Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry) notify(event Event) {
	event.Timestamp = time.Now()
	r.mu.RLock()
	observers := make([]Observer, len(r.observers))
	copy(observers, r.observers)
	r.mu.RUnlock()
	for _, o := range observers {
		o.OnEvent(event)
	}
}

// Register takes a reference to the table and returns the handle that names
// it until Release.
func (r *Registry) Register(t *table.Table) uuid.UUID {
	id := uuid.New()
	r.mu.Lock()
	r.tables[id] = t
	r.mu.Unlock()

	r.notify(Event{
		Type:   EventRegistered,
		Handle: id.String(),
		Data:   fmt.Sprintf("%d columns, %d rows", t.NumColumns(), t.NumRows()),
	})
	return id
}

// Get resolves a handle to its table.
func (r *Registry) Get(id uuid.UUID) (*table.Table, error) {
	r.mu.RLock()
	t, ok := r.tables[id]
	r.mu.RUnlock()
	if !ok {
		r.notify(Event{Type: EventLookupMiss, Handle: id.String()})
		return nil, fmt.Errorf("no table registered under handle %s", id)
	}
	return t, nil
}

// Release drops the registry's reference to the table. Releasing an unknown
// handle is a no-op; releasing twice is harmless.
func (r *Registry) Release(id uuid.UUID) {
	r.mu.Lock()
	_, ok := r.tables[id]
	delete(r.tables, id)
	r.mu.Unlock()

	if ok {
		r.notify(Event{Type: EventReleased, Handle: id.String()})
	}
}

// View resolves a handle and takes a read view in one step, reporting the
// outcome to observers.
func (r *Registry) View(id uuid.UUID) (table.TableView, error) {
	t, err := r.Get(id)
	if err != nil {
		return table.TableView{}, err
	}
	v, err := t.View()
	if err != nil {
		r.notify(Event{Type: EventViewFailed, Handle: id.String(), Data: err.Error()})
		return table.TableView{}, err
	}
	r.notify(Event{Type: EventViewTaken, Handle: id.String(), Data: "read"})
	return v, nil
}

// MutableView resolves a handle and takes a writable view in one step.
func (r *Registry) MutableView(id uuid.UUID) (table.MutableTableView, error) {
	t, err := r.Get(id)
	if err != nil {
		return table.MutableTableView{}, err
	}
	v, err := t.MutableView()
	if err != nil {
		r.notify(Event{Type: EventViewFailed, Handle: id.String(), Data: err.Error()})
		return table.MutableTableView{}, err
	}
	r.notify(Event{Type: EventViewTaken, Handle: id.String(), Data: "mutable"})
	return v, nil
}

// Len returns the number of live tables.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tables)
}
