package confpatch

import (
	"bytes"
	"os"

	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/edit"
	"github.com/confpatch/confpatch/encode"
	"github.com/confpatch/confpatch/ir"
	"github.com/confpatch/confpatch/parse"
	"github.com/confpatch/confpatch/xpath"
)

// Document owns a loaded configuration tree plus the derived name
// index. All mutation methods edit the tree in place; String renders
// it back out, byte-identical for anything untouched.
type Document struct {
	root    *ir.Node
	source  []byte
	wrapped bool
	vectors bool
	names   map[string]*ir.Node
	sink    diag.Sink
}

type loadOpts struct {
	multiRoot bool
	vectors   bool
	sink      diag.Sink
}

type LoadOption func(*loadOpts)

// MultiRoot loads the document in the wrapped flavor: input may have
// several top-level elements, held together by a synthetic root that
// rendering strips back out.
func MultiRoot() LoadOption {
	return func(o *loadOpts) { o.multiRoot = true }
}

// Vectors enables coordinate-array flattening in Set operations
// (sequence values become .x .y .z .w sibling leaves).
func Vectors() LoadOption {
	return func(o *loadOpts) { o.vectors = true }
}

// WithSink routes the document's diagnostics to s instead of
// discarding them.
func WithSink(s diag.Sink) LoadOption {
	return func(o *loadOpts) { o.sink = s }
}

// Load parses text into a Document. This is the one fatal path:
// malformed markup returns an error wrapping ir.ErrParse, since no
// tree exists to operate on.
func Load(data []byte, opts ...LoadOption) (*Document, error) {
	o := &loadOpts{}
	for _, f := range opts {
		f(o)
	}
	var pOpts []parse.ParseOption
	if o.multiRoot {
		pOpts = append(pOpts, parse.ParseMultiRoot())
	}
	root, err := parse.Parse(data, pOpts...)
	if err != nil {
		return nil, err
	}
	d := &Document{
		root:    root,
		source:  append([]byte(nil), data...),
		wrapped: o.multiRoot,
		vectors: o.vectors,
		sink:    diag.Or(o.sink),
	}
	d.RebuildNames()
	return d, nil
}

// LoadFile reads and parses the file at path.
func LoadFile(path string, opts ...LoadOption) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Load(data, opts...)
}

// Root exposes the document tree for direct traversal.
func (d *Document) Root() *ir.Node {
	return d.root
}

// resolveRoot is the node queries start from: the synthetic wrapper
// for wrapped documents, so that its children are the top-level
// elements either way.
func (d *Document) resolveRoot() *ir.Node {
	if d.wrapped {
		if w := d.root.Child(parse.SyntheticTag); w != nil {
			return w
		}
	}
	return d.root
}

type findOpts struct {
	silent bool
}

type FindOption func(*findOpts)

// Silent suppresses the not-found diagnostic of a failed resolution.
func Silent() FindOption {
	return func(o *findOpts) { o.silent = true }
}

// FindElement resolves a path against the document and returns the
// matching element, or nil. A miss is reported through the sink unless
// silenced.
func (d *Document) FindElement(path string, opts ...FindOption) *ir.Node {
	o := &findOpts{}
	for _, f := range opts {
		f(o)
	}
	rOpts := []xpath.ResolveOption{xpath.WithSink(d.sink)}
	if o.silent {
		rOpts = append(rOpts, xpath.Silent())
	}
	return xpath.Resolve(d.resolveRoot(), xpath.Parse(path), rOpts...)
}

// Set resolves a path and merges a value tree into the matching
// element. It reports success; failures and partial applications
// surface as diagnostics on the sink.
func (d *Document) Set(path string, values *ir.Value, opts ...edit.Option) bool {
	node := d.FindElement(path)
	if node == nil {
		return false
	}
	return d.SetNode(node, values, opts...)
}

// SetNode merges a value tree into an already-resolved element.
func (d *Document) SetNode(node *ir.Node, values *ir.Value, opts ...edit.Option) bool {
	return edit.Set(node, values, d.editOpts(opts)...)
}

// SetValue merges a value tree into the element registered under name
// in the name index.
func (d *Document) SetValue(name string, values *ir.Value, opts ...edit.Option) bool {
	node := d.names[name]
	if node == nil {
		d.sink.Warn("name not found", "name", name)
		return false
	}
	return d.SetNode(node, values, opts...)
}

// CreateChild appends a new empty element under parent with
// synthesized indentation.
func (d *Document) CreateChild(parent *ir.Node, tag string) *ir.Node {
	return edit.CreateChild(parent, tag)
}

// SetArray resets node's children and rebuilds them as one element
// named tag per value.
func (d *Document) SetArray(node *ir.Node, tag string, values []*ir.Value, opts ...edit.Option) bool {
	return edit.SetArray(node, tag, values, d.editOpts(opts)...)
}

// EnsureSection walks a dot-separated path from the document root,
// creating missing segments per the inserts.
func (d *Document) EnsureSection(path string, inserts []edit.Insert, opts ...edit.Option) (*ir.Node, bool) {
	return edit.EnsureSection(d.resolveRoot(), path, inserts, d.editOpts(opts)...)
}

func (d *Document) editOpts(opts []edit.Option) []edit.Option {
	base := []edit.Option{edit.WithSink(d.sink)}
	if d.vectors {
		base = append(base, edit.Vectors())
	}
	return append(base, opts...)
}

// String renders the document. For wrapped documents exactly the
// synthetic wrapper bytes the loader added are removed.
func (d *Document) String() string {
	return string(d.Bytes())
}

// Bytes renders the document to a byte slice.
func (d *Document) Bytes() []byte {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(d.root, buf, encode.EncodeStripRoot()); err != nil {
		// The only writer involved is a bytes.Buffer.
		panic(err)
	}
	return buf.Bytes()
}
