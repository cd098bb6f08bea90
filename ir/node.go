package ir

import "strings"

// Node is one element or text run in a parsed document. A node owns
// its children; parents are reached only through the traversal that
// found the node, never through a stored back pointer.
type Node struct {
	Type Type

	// Tag is the element name. Empty for text nodes and for the
	// implicit document container returned by parse.
	Tag string

	// Raw holds the exact source bytes of a text node.
	Raw string

	// RawOpen and RawClose hold the exact open/close tag text of an
	// element, attributes included. Empty RawOpen means the tag is
	// synthesized from Tag on encode.
	RawOpen  string
	RawClose string

	// SelfClose marks elements scanned in <Tag/> form. Creating a
	// child under such an element converts it to open/close form.
	SelfClose bool

	// Synthetic marks the wrapper element introduced at load time to
	// tolerate multi-root input. The encoder strips exactly the bytes
	// the loader added for it.
	Synthetic bool

	Children []*Node

	// OpenCol is the source column of the opening '<'; ContentCol the
	// column just past the open tag. Both come from the scan and are
	// used to derive indentation for newly created siblings.
	OpenCol    int
	ContentCol int
}

func Text(raw string) *Node {
	return &Node{Type: TextType, Raw: raw}
}

// Element returns a new empty element with synthesized open/close
// tags.
func Element(tag string) *Node {
	return &Node{
		Type:     ElementType,
		Tag:      tag,
		RawOpen:  "<" + tag + ">",
		RawClose: "</" + tag + ">",
	}
}

func (n *Node) IsElement() bool {
	return n != nil && n.Type == ElementType
}

func (n *Node) IsText() bool {
	return n != nil && n.Type == TextType
}

// Child returns the first direct element child with the given tag, or
// nil.
func (n *Node) Child(tag string) *Node {
	for _, c := range n.Children {
		if c.Type == ElementType && c.Tag == tag {
			return c
		}
	}
	return nil
}

// Elements returns the direct element children in document order.
func (n *Node) Elements() []*Node {
	var res []*Node
	for _, c := range n.Children {
		if c.Type == ElementType {
			res = append(res, c)
		}
	}
	return res
}

// FirstText returns the raw bytes of the first text child, or "".
func (n *Node) FirstText() string {
	for _, c := range n.Children {
		if c.Type == TextType {
			return c.Raw
		}
	}
	return ""
}

// Value returns the node's scalar text, trimmed. This is the value
// path predicates and the name index read.
func (n *Node) Value() string {
	return strings.TrimSpace(n.FirstText())
}

func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// InsertAt splices nodes into the child list at index i.
func (n *Node) InsertAt(i int, nodes ...*Node) {
	n.Children = append(n.Children[:i], append(append([]*Node{}, nodes...), n.Children[i:]...)...)
}

// IndexOf returns the child's index in the child list, or -1.
func (n *Node) IndexOf(child *Node) int {
	for i, c := range n.Children {
		if c == child {
			return i
		}
	}
	return -1
}

// Walk visits n and every descendant element in document order,
// stopping early if f returns false.
func (n *Node) Walk(f func(*Node) bool) bool {
	if !f(n) {
		return false
	}
	for _, c := range n.Children {
		if c.Type != ElementType {
			continue
		}
		if !c.Walk(f) {
			return false
		}
	}
	return true
}
