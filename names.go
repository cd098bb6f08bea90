package confpatch

import (
	"slices"

	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/ir"
)

// RebuildNames rescans the tree and replaces the name index. The index
// is valid only until the next mutation; callers needing fresh names
// after edits rebuild explicitly.
func (d *Document) RebuildNames() {
	d.names = buildNames(d.root, d.sink)
}

// Node returns the element registered under name, or nil. The answer
// reflects the tree as of the last RebuildNames.
func (d *Document) Node(name string) *ir.Node {
	return d.names[name]
}

// NodeNames returns the sorted registered names accepted by pred. A
// nil pred accepts everything.
func (d *Document) NodeNames(pred func(string) bool) []string {
	var res []string
	for name := range d.names {
		if pred == nil || pred(name) {
			res = append(res, name)
		}
	}
	slices.Sort(res)
	return res
}

// buildNames registers every element under the trimmed text of its
// Name child. First registration wins; collisions are reported and
// dropped.
func buildNames(root *ir.Node, sink diag.Sink) map[string]*ir.Node {
	names := map[string]*ir.Node{}
	root.Walk(func(n *ir.Node) bool {
		nc := n.Child(ir.NameTag)
		if nc == nil {
			return true
		}
		name := nc.Value()
		if name == "" {
			return true
		}
		if _, ok := names[name]; ok {
			sink.Warn("duplicate name registration dropped", "name", name, "tag", n.Tag)
			return true
		}
		names[name] = n
		return true
	})
	return names
}
