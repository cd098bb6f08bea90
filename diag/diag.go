// Package diag defines the diagnostics sink the library reports
// through. Resolution misses, merge errors and index collisions are
// never fatal; they flow to an injected Sink so the owning pipeline
// decides what a diagnostic means.
//
// The interface follows the log/slog convention of variadic key-value
// attribute pairs, so adapters for slog, zap or zerolog are one-liners.
package diag

type Sink interface {
	// Warn reports a recoverable oddity, such as a duplicate name
	// registration or a silenced resolution miss.
	Warn(msg string, attrs ...any)

	// Error reports a failed operation, such as a scalar write to an
	// element with children. The operation's siblings still proceed.
	Error(msg string, attrs ...any)
}

// Nop discards all diagnostics. It is the default sink.
type Nop struct{}

func (Nop) Warn(string, ...any)  {}
func (Nop) Error(string, ...any) {}

// Or returns s, or Nop when s is nil.
func Or(s Sink) Sink {
	if s == nil {
		return Nop{}
	}
	return s
}
