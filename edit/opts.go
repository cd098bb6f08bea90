package edit

import (
	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/ir"
)

type config struct {
	defaults *ir.Value
	vectors  bool
	sink     diag.Sink
}

type Option func(*config)

// Defaults supplies a value tree whose keys are merged first: keys
// present in the defaults determine the merge order, and a missing
// element is created from its default before any supplied value is
// applied.
func Defaults(d *ir.Value) Option {
	return func(c *config) { c.defaults = d }
}

// Vectors enables flattening of sequence values onto sibling leaves
// suffixed .x .y .z .w with fixed 6-decimal formatting.
func Vectors() Option {
	return func(c *config) { c.vectors = true }
}

func WithSink(s diag.Sink) Option {
	return func(c *config) { c.sink = s }
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, f := range opts {
		f(c)
	}
	c.sink = diag.Or(c.sink)
	return c
}
