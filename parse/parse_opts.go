package parse

type parseOpts struct {
	multiRoot bool
}

type ParseOption func(*parseOpts)

// ParseMultiRoot wraps the input in a synthetic root before scanning,
// tolerating markup with several top-level elements.
func ParseMultiRoot() ParseOption {
	return func(o *parseOpts) { o.multiRoot = true }
}
