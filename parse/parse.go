// Package parse provides document loading for configuration markup.
package parse

import (
	"fmt"

	"github.com/confpatch/confpatch/ir"
	"github.com/confpatch/confpatch/token"
)

// SyntheticTag names the wrapper element the loader introduces around
// multi-root input. The encoder strips exactly the bytes added for it.
const SyntheticTag = "__document__"

// WrapPrefix and WrapSuffix are the exact byte sequences the loader
// prepends/appends in multi-root mode.
const (
	WrapPrefix = "<" + SyntheticTag + ">\n"
	WrapSuffix = "\n</" + SyntheticTag + ">"
)

// Parse loads markup into a node tree. The returned node is an
// implicit document container whose children are the top-level text
// runs and elements; it contributes no bytes of its own on encode.
//
// Parsing fails only on malformed markup: unbalanced or unterminated
// tags. Everything else round-trips.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.multiRoot {
		wrapped := make([]byte, 0, len(WrapPrefix)+len(d)+len(WrapSuffix))
		wrapped = append(wrapped, WrapPrefix...)
		wrapped = append(wrapped, d...)
		wrapped = append(wrapped, WrapSuffix...)
		d = wrapped
	}
	toks, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ir.ErrParse, err)
	}
	root, err := build(toks)
	if err != nil {
		return nil, err
	}
	if pOpts.multiRoot {
		wrapper := root.Child(SyntheticTag)
		if wrapper == nil {
			return nil, fmt.Errorf("%w: synthetic root lost", ir.ErrParse)
		}
		wrapper.Synthetic = true
	}
	return root, nil
}

func build(toks []token.Token) (*ir.Node, error) {
	root := &ir.Node{Type: ir.ElementType}
	stack := []*ir.Node{root}
	for i := range toks {
		t := &toks[i]
		cur := stack[len(stack)-1]
		switch t.Type {
		case token.TText:
			cur.Append(ir.Text(string(t.Bytes)))
		case token.TSelfClose:
			cur.Append(element(t))
		case token.TOpen:
			el := element(t)
			cur.Append(el)
			stack = append(stack, el)
		case token.TClose:
			if len(stack) == 1 {
				return nil, fmt.Errorf("%w: unmatched </%s> at %s", ir.ErrParse, t.Tag, t.Pos)
			}
			if cur.Tag != t.Tag {
				return nil, fmt.Errorf("%w: <%s> closed by </%s> at %s", ir.ErrParse, cur.Tag, t.Tag, t.Pos)
			}
			cur.RawClose = string(t.Bytes)
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 1 {
		open := stack[len(stack)-1]
		return nil, fmt.Errorf("%w: unclosed <%s>", ir.ErrParse, open.Tag)
	}
	return root, nil
}

func element(t *token.Token) *ir.Node {
	return &ir.Node{
		Type:       ir.ElementType,
		Tag:        t.Tag,
		RawOpen:    string(t.Bytes),
		SelfClose:  t.Type == token.TSelfClose,
		OpenCol:    t.Pos.Col,
		ContentCol: t.Pos.Col + len(t.Bytes),
	}
}
