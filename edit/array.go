package edit

import "github.com/confpatch/confpatch/ir"

// SetArray rewrites node's contents as an array-valued section: every
// existing child is discarded, then one fresh element named tag is
// created per value, in order, with the value merged into it. This is
// a destructive, non-incremental rewrite of the parent.
func SetArray(node *ir.Node, tag string, values []*ir.Value, opts ...Option) bool {
	node.Children = nil
	ok := true
	for _, v := range values {
		child := CreateChild(node, tag)
		if v == nil {
			continue
		}
		if !Set(child, v, opts...) {
			ok = false
		}
	}
	return ok
}
