// Package diaglog is the diagnostic sink for the content access layer. Every
// store call reports its operation name, entity kind, and outcome here. The
// sink mirrors everything to the process log, keeps a bounded in-memory ring
// for the diagnostics endpoint, and persists error-level entries to the
// debug_logs collection when so configured.
//
// A sink failure is itself logged and dropped; it never breaks the primary
// operation. The Logger is an injected instance, not a process-wide global,
// and a nil Logger is a no-op so tests can skip wiring it.
package diaglog

import (
	"context"
	"sync"
	"time"

	"github.com/rohithbabu/foliohub/internal/app/store/debuglogs"
	"go.uber.org/zap"
)

// ringCap bounds the in-memory entry buffer served by the diagnostics panel.
const ringCap = 200

// Mode controls where entries go: "all" (zap + Mongo), "db", "log", or
// "off". Only error-level entries are ever persisted to Mongo.
type Config struct {
	Mode string
}

// Logger is the diagnostic sink.
type Logger struct {
	store  *debuglogs.Store
	zapLog *zap.Logger
	config Config

	mu   sync.Mutex
	ring []debuglogs.Entry
}

// New creates a diagnostic Logger. The store may be nil when persistence is
// disabled (e.g. in development, mirroring the source's dev-only console
// sink).
func New(store *debuglogs.Store, zapLog *zap.Logger, config Config) *Logger {
	if config.Mode == "" {
		config.Mode = "all"
	}
	return &Logger{store: store, zapLog: zapLog, config: config}
}

// Log records one entry according to the configured mode.
func (l *Logger) Log(ctx context.Context, e debuglogs.Entry) {
	if l == nil || l.config.Mode == "off" {
		return
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	l.remember(e)

	if l.config.Mode == "all" || l.config.Mode == "log" {
		l.toZap(e)
	}
	if (l.config.Mode == "all" || l.config.Mode == "db") &&
		e.Status == debuglogs.StatusError && l.store != nil {
		if err := l.store.Add(ctx, e); err != nil {
			l.zapLog.Error("failed to persist diagnostic entry",
				zap.Error(err),
				zap.String("operation", e.Operation))
		}
	}
}

// Info records a successful operation.
func (l *Logger) Info(ctx context.Context, operation, entity string, details map[string]string) {
	l.Log(ctx, debuglogs.Entry{
		Operation: operation,
		Entity:    entity,
		Status:    debuglogs.StatusInfo,
		Details:   details,
	})
}

// Warning records a degraded outcome (e.g. a list served from fallback).
func (l *Logger) Warning(ctx context.Context, operation, entity, message string, details map[string]string) {
	l.Log(ctx, debuglogs.Entry{
		Operation: operation,
		Entity:    entity,
		Status:    debuglogs.StatusWarning,
		Message:   message,
		Details:   details,
	})
}

// Error records a failed operation.
func (l *Logger) Error(ctx context.Context, operation, entity string, opErr error, details map[string]string) {
	msg := ""
	if opErr != nil {
		msg = opErr.Error()
	}
	l.Log(ctx, debuglogs.Entry{
		Operation: operation,
		Entity:    entity,
		Status:    debuglogs.StatusError,
		Message:   msg,
		Details:   details,
	})
}

// Recent returns up to n buffered entries, newest first.
func (l *Logger) Recent(n int) []debuglogs.Entry {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if n <= 0 || n > len(l.ring) {
		n = len(l.ring)
	}
	out := make([]debuglogs.Entry, n)
	for i := 0; i < n; i++ {
		out[i] = l.ring[len(l.ring)-1-i]
	}
	return out
}

// Clear empties the ring buffer and, when persistence is enabled, the
// debug_logs collection.
func (l *Logger) Clear(ctx context.Context) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	l.ring = nil
	l.mu.Unlock()

	if l.store != nil && (l.config.Mode == "all" || l.config.Mode == "db") {
		return l.store.Clear(ctx)
	}
	return nil
}

func (l *Logger) remember(e debuglogs.Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring = append(l.ring, e)
	if len(l.ring) > ringCap {
		l.ring = l.ring[len(l.ring)-ringCap:]
	}
}

func (l *Logger) toZap(e debuglogs.Entry) {
	fields := []zap.Field{
		zap.String("operation", e.Operation),
		zap.String("status", e.Status),
	}
	if e.Entity != "" {
		fields = append(fields, zap.String("entity", e.Entity))
	}
	for k, v := range e.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}
	switch e.Status {
	case debuglogs.StatusError:
		fields = append(fields, zap.String("message", e.Message))
		l.zapLog.Error("store operation failed", fields...)
	case debuglogs.StatusWarning:
		fields = append(fields, zap.String("message", e.Message))
		l.zapLog.Warn("store operation degraded", fields...)
	default:
		l.zapLog.Info("store operation", fields...)
	}
}
