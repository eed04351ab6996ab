package logging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// LogEntry is a single recent log line kept for the admin log view.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Channel   string `json:"channel"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// LogTail is a fixed-size ring of the most recent log entries.
type LogTail struct {
	mu      sync.RWMutex
	entries []LogEntry
	next    int
	full    bool
}

// NewLogTail creates a tail that keeps the last size entries.
func NewLogTail(size int) *LogTail {
	return &LogTail{entries: make([]LogEntry, size)}
}

func (t *LogTail) add(e LogEntry) {
	t.mu.Lock()
	t.entries[t.next] = e
	t.next = (t.next + 1) % len(t.entries)
	if t.next == 0 {
		t.full = true
	}
	t.mu.Unlock()
}

// Entries returns retained entries oldest first, filtered by channel (empty
// or "all" matches every channel) and minimum level.
func (t *LogTail) Entries(channel string, min slog.Level) []LogEntry {
	t.mu.RLock()
	defer t.mu.RUnlock()

	var ordered []LogEntry
	if t.full {
		ordered = append(ordered, t.entries[t.next:]...)
	}
	ordered = append(ordered, t.entries[:t.next]...)

	out := make([]LogEntry, 0, len(ordered))
	for _, e := range ordered {
		if channel != "" && channel != "all" && e.Channel != channel {
			continue
		}
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(e.Level)); err == nil && lvl < min {
			continue
		}
		out = append(out, e)
	}
	return out
}

// tailHandler copies every record it handles into a LogTail before passing
// it on.
type tailHandler struct {
	slog.Handler
	tail    *LogTail
	channel Channel
}

func (h *tailHandler) Handle(ctx context.Context, r slog.Record) error {
	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	h.tail.add(LogEntry{
		Timestamp: ts.UTC().Format(time.RFC3339),
		Channel:   string(h.channel),
		Level:     r.Level.String(),
		Message:   r.Message,
	})
	return h.Handler.Handle(ctx, r)
}

func (h *tailHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &tailHandler{Handler: h.Handler.WithAttrs(attrs), tail: h.tail, channel: h.channel}
}

func (h *tailHandler) WithGroup(name string) slog.Handler {
	return &tailHandler{Handler: h.Handler.WithGroup(name), tail: h.tail, channel: h.channel}
}
