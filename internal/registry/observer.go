package registry

import "time"

// EventType represents different phases of a table's host-managed lifecycle
type EventType string

const (
	EventRegistered EventType = "registered"
	EventReleased   EventType = "released"
	EventViewTaken  EventType = "view_taken"
	EventViewFailed EventType = "view_failed"
	EventLookupMiss EventType = "lookup_miss"
)

// Event represents a lifecycle event for a registered table
type Event struct {
	Type      EventType // Type of event
	Handle    string    // Table handle for tracing
	Timestamp time.Time // When the event occurred
	Data      any       // Event-specific data (e.g., column/row counts, error)
}

// Observer interface for event subscribers
// Observers receive events whenever a table's lifecycle advances
type Observer interface {
	OnEvent(event Event)
}
