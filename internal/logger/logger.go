// Package logger holds the slog logger shared by eriplots and its
// sub-packages. The root package re-exports it as eriplots.SetLogger and
// eriplots.Logger.
package logger

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false so callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNop() *slog.Logger { return slog.New(nopHandler{}) }

var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(newNop())
}

// Set installs l as the active logger. A nil l restores the silent default.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNop()
	}
	ptr.Store(l)
}

// Get returns the active logger. It never returns nil.
func Get() *slog.Logger {
	return ptr.Load()
}
