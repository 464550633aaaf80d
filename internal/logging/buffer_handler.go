package logging

import (
	"context"
	"log/slog"
	"sync"
)

// Buffer holds log records until Flush replays them, in order, to the
// handlers they were originally destined for.
type Buffer struct {
	mu      sync.Mutex
	entries []bufferedRecord
}

type bufferedRecord struct {
	handler slog.Handler
	record  slog.Record
}

// NewBuffer returns an empty record buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Logger returns a logger that defers every record target would accept
// into the buffer. Level filtering still follows target.
func (b *Buffer) Logger(target *slog.Logger) *slog.Logger {
	if target == nil {
		target = NewNop()
	}
	return slog.New(&bufferHandler{buf: b, target: target.Handler()})
}

// Len reports how many records are waiting.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

// Flush replays buffered records and empties the buffer. The first handler
// error is returned after every record has been attempted.
func (b *Buffer) Flush(ctx context.Context) error {
	b.mu.Lock()
	entries := b.entries
	b.entries = nil
	b.mu.Unlock()

	var firstErr error
	for _, entry := range entries {
		if err := entry.handler.Handle(ctx, entry.record); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (b *Buffer) add(handler slog.Handler, record slog.Record) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries = append(b.entries, bufferedRecord{handler: handler, record: record})
}

type bufferHandler struct {
	buf    *Buffer
	target slog.Handler
}

func (h *bufferHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.target.Enabled(ctx, level)
}

func (h *bufferHandler) Handle(_ context.Context, record slog.Record) error {
	h.buf.add(h.target, record.Clone())
	return nil
}

func (h *bufferHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &bufferHandler{buf: h.buf, target: h.target.WithAttrs(attrs)}
}

func (h *bufferHandler) WithGroup(name string) slog.Handler {
	return &bufferHandler{buf: h.buf, target: h.target.WithGroup(name)}
}
