package xpath

import (
	"strings"

	"github.com/confpatch/confpatch/debug"
	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/ir"
)

type resolveOpts struct {
	silent bool
	sink   diag.Sink
}

type ResolveOption func(*resolveOpts)

// Silent suppresses the not-found diagnostic.
func Silent() ResolveOption {
	return func(o *resolveOpts) { o.silent = true }
}

func WithSink(s diag.Sink) ResolveOption {
	return func(o *resolveOpts) { o.sink = s }
}

// candidate is one frontier entry of the backtracking search: the
// node whose children are matched next, the unconsumed steps, and the
// tag trail used only for diagnostics.
type candidate struct {
	node  *ir.Node
	steps []Step
	trail []string
}

// Resolve evaluates a path against the tree rooted at root and
// returns the matching node, or nil when no complete match exists.
//
// The frontier is a stack, so among siblings matching one step the
// last in document order is explored to completion first. When several
// complete matches exist, the one found by this reverse-first
// depth-first order wins. That tie-break is load-bearing for
// compatibility and is covered by tests; do not switch the frontier to
// a queue without revisiting callers.
func Resolve(root *ir.Node, p *Path, opts ...ResolveOption) *ir.Node {
	o := &resolveOpts{}
	for _, f := range opts {
		f(o)
	}
	sink := diag.Or(o.sink)

	var frontier []candidate
	if p.Anchored {
		frontier = append(frontier, candidate{node: root, steps: p.Steps})
	} else {
		// Anywhere-search: every element is a potential context node.
		// Pre-order push keeps the stack discipline consistent with
		// the anchored case.
		root.Walk(func(n *ir.Node) bool {
			frontier = append(frontier, candidate{node: n, steps: p.Steps})
			return true
		})
	}

	var deepest []string
	for len(frontier) > 0 {
		c := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if len(c.steps) == 0 {
			if debug.Resolve() {
				debug.Logf("resolve %q: match after %s\n", p, strings.Join(c.trail, "/"))
			}
			return c.node
		}
		st := c.steps[0]
		for _, ch := range c.node.Children {
			if ch.Type != ir.ElementType || ch.Tag != st.Tag {
				continue
			}
			if !predsMatch(ch, st.Preds) {
				continue
			}
			trail := append(append([]string{}, c.trail...), st.Tag)
			if len(trail) > len(deepest) {
				deepest = trail
			}
			frontier = append(frontier, candidate{node: ch, steps: c.steps[1:], trail: trail})
		}
	}
	if !o.silent {
		sink.Warn("path not found", "path", p.String(), "reached", strings.Join(deepest, "/"))
	}
	return nil
}

// predsMatch evaluates a step's predicates against one element: each
// condition reads the first text value of the named child and compares
// it, trimmed, to the literal.
func predsMatch(n *ir.Node, preds []Predicate) bool {
	for _, pr := range preds {
		cond := n.Child(pr.Tag)
		if cond == nil {
			return false
		}
		if cond.Value() != pr.Value {
			return false
		}
	}
	return true
}
