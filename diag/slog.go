package diag

import "log/slog"

// Slog adapts a slog.Logger to the Sink interface.
type Slog struct {
	L *slog.Logger
}

func FromSlog(l *slog.Logger) Slog {
	return Slog{L: l}
}

func (s Slog) Warn(msg string, attrs ...any) {
	s.L.Warn(msg, attrs...)
}

func (s Slog) Error(msg string, attrs ...any) {
	s.L.Error(msg, attrs...)
}
