package logging

import (
	"context"
	"log/slog"
	"os"
	"time"

	slogseq "github.com/sokkalf/slog-seq"
)

// Environment knobs. Seq shipping stays off unless an endpoint is configured.
const (
	envSeqURL = "TABULAR_SEQ_URL"
	envLevel  = "TABULAR_LOG_LEVEL"
)

// fanoutHandler forwards log records to multiple handlers
type fanoutHandler struct {
	handlers []slog.Handler
}

func (f *fanoutHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f.handlers {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f *fanoutHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f.handlers {
		if err := h.Handle(ctx, r.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (f *fanoutHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		handlers[i] = h.WithAttrs(attrs)
	}
	return &fanoutHandler{handlers: handlers}
}

func (f *fanoutHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(f.handlers))
	for i, h := range f.handlers {
		handlers[i] = h.WithGroup(name)
	}
	return &fanoutHandler{handlers: handlers}
}

func levelFromEnv() slog.Level {
	switch os.Getenv(envLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes the process logger and returns it with a cleanup
// function. Logs always go to stderr; when TABULAR_SEQ_URL is set they are
// also shipped to that Seq endpoint.
func Setup(service string) (*slog.Logger, func()) {
	level := levelFromEnv()
	opts := &slog.HandlerOptions{Level: level}

	console := slog.NewTextHandler(os.Stderr, opts)

	seqURL := os.Getenv(envSeqURL)
	if seqURL == "" {
		logger := slog.New(console).With("service", service)
		return logger, func() {}
	}

	_, seqHandler := slogseq.NewLogger(
		seqURL,
		slogseq.WithBatchSize(10),
		slogseq.WithFlushInterval(time.Second),
		slogseq.WithHandlerOptions(opts),
	)
	if seqHandler == nil {
		logger := slog.New(console).With("service", service)
		return logger, func() {}
	}

	fanout := &fanoutHandler{handlers: []slog.Handler{console, seqHandler}}
	logger := slog.New(fanout).With("service", service)

	return logger, func() { seqHandler.Close() }
}
