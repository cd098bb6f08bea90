package edit

import (
	"strings"

	"github.com/confpatch/confpatch/debug"
	"github.com/confpatch/confpatch/ir"
)

// indentCol returns the column new children of parent indent relative
// to. The document container and the synthetic wrapper contribute no
// markup of their own, so their children sit two columns to the left
// of where a real element's would.
func indentCol(parent *ir.Node) int {
	if parent.Tag == "" || parent.Synthetic {
		return -2
	}
	return parent.OpenCol
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func newElementAt(tag string, col int) *ir.Node {
	el := ir.Element(tag)
	el.OpenCol = col
	el.ContentCol = col + len(el.RawOpen)
	return el
}

// ensureContainer converts a self-closing or close-less element into
// open/close form so it can hold children.
func ensureContainer(n *ir.Node) {
	if n.SelfClose {
		n.SelfClose = false
		open := strings.TrimSuffix(n.RawOpen, ">")
		open = strings.TrimSuffix(open, "/")
		n.RawOpen = strings.TrimRight(open, " \t") + ">"
	}
	if n.RawClose == "" && n.Tag != "" {
		n.RawClose = "</" + n.Tag + ">"
	}
}

// CreateChild appends a new empty element under parent, synthesizing
// the surrounding whitespace: the child lands two columns beyond the
// parent's own opening column and the closing tag returns to the
// parent's column. A parent that was empty or single-line first gains
// a line break so it becomes multi-line.
func CreateChild(parent *ir.Node, tag string) *ir.Node {
	ensureContainer(parent)
	col := indentCol(parent)
	el := newElementAt(tag, col+2)
	if debug.Indent() {
		debug.Logf("createChild %s under %s at col %d\n", tag, parent.Tag, col+2)
	}
	if len(parent.Children) <= 1 {
		parent.Append(ir.Text("\n"+spaces(col+2)), el, ir.Text("\n"+spaces(col)))
	} else {
		// The existing trailing whitespace already returns to the
		// parent's column; two more spaces land the child at col+2.
		parent.Append(ir.Text("  "), el, ir.Text("\n"+spaces(col)))
	}
	return el
}

// InsertAfter splices a new element directly after sibling in parent's
// child list, reusing the whitespace run that already followed the
// sibling so later siblings keep their exact layout.
func InsertAfter(parent, sibling *ir.Node, tag string) *ir.Node {
	i := parent.IndexOf(sibling)
	if i < 0 {
		return nil
	}
	el := newElementAt(tag, sibling.OpenCol)
	if i+1 < len(parent.Children) && parent.Children[i+1].IsText() {
		ws := parent.Children[i+1].Raw
		parent.InsertAt(i+2, el, ir.Text(ws))
	} else {
		parent.InsertAt(i+1, ir.Text("\n"+spaces(sibling.OpenCol)), el)
	}
	return el
}
