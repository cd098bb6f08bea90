package edit

import (
	"strings"

	"github.com/confpatch/confpatch/ir"
)

// Insert directs the creation of one missing segment during
// EnsureSection: where to place it and what to merge into it once
// created.
type Insert struct {
	// Position is empty for plain append, or an "<sibling>:after"
	// hint placing the new element immediately after the named
	// sibling. The "after:<sibling>" spelling is accepted too.
	Position string

	// Defaults, when given, is merged into the newly created element.
	Defaults *ir.Value
}

// EnsureSection walks a dot-separated path from root, creating every
// missing segment. Inserts are indexed by segment. A missing "after"
// anchor skips that segment's creation and fails the rest of the walk.
func EnsureSection(root *ir.Node, path string, inserts []Insert, opts ...Option) (*ir.Node, bool) {
	cfg := newConfig(opts)
	cur := root
	for i, seg := range strings.Split(path, ".") {
		if cur == nil {
			cfg.sink.Error("cannot create section under missing parent", "segment", seg, "path", path)
			return nil, false
		}
		if next := cur.Child(seg); next != nil {
			cur = next
			continue
		}
		var ins *Insert
		if i < len(inserts) {
			ins = &inserts[i]
		}
		var next *ir.Node
		if anchor := insertAnchor(ins); anchor != "" {
			sib := findAnchor(cur, anchor)
			if sib == nil {
				cfg.sink.Error("insertion anchor not found", "anchor", anchor, "segment", seg, "path", path)
				cur = nil
				continue
			}
			next = InsertAfter(cur, sib, seg)
		} else {
			next = CreateChild(cur, seg)
		}
		if ins != nil && ins.Defaults != nil {
			Set(next, ins.Defaults, opts...)
		}
		cur = next
	}
	if cur == nil {
		return nil, false
	}
	return cur, true
}

// insertAnchor extracts the sibling name from a position hint.
func insertAnchor(ins *Insert) string {
	if ins == nil || ins.Position == "" {
		return ""
	}
	before, after, found := strings.Cut(ins.Position, ":")
	if !found {
		return ""
	}
	if before == "after" {
		return after
	}
	if after == "after" {
		return before
	}
	return ""
}

// findAnchor locates the sibling a hint names: a direct child with
// that tag, or failing that one whose Name child carries that text.
func findAnchor(parent *ir.Node, anchor string) *ir.Node {
	if c := parent.Child(anchor); c != nil {
		return c
	}
	for _, c := range parent.Elements() {
		if nc := c.Child(ir.NameTag); nc != nil && nc.Value() == anchor {
			return c
		}
	}
	return nil
}
