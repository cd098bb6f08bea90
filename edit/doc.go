// Package edit mutates document trees in place: create-or-merge of
// value trees onto elements, destructive array rebuilds, dotted-path
// section creation with anchored insertion, and the whitespace
// synthesis that keeps new content visually aligned with the original
// layout.
//
// Failures are diagnostics, not errors: a configuration patch applies
// as much as it safely can, and every operation reports what it had to
// skip through the injected diag.Sink.
package edit
