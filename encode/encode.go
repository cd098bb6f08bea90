// Package encode renders node trees back to markup text.
//
// Encoding is the inverse of parse: unedited subtrees reproduce their
// source bytes exactly, and the synthetic multi-root wrapper is
// stripped on request so the loader's additions never leak into
// output.
package encode

import (
	"bytes"
	"io"
	"strings"

	"github.com/confpatch/confpatch/ir"
	"github.com/confpatch/confpatch/parse"
)

type EncState struct {
	stripRoot bool
}

type EncodeOption func(*EncState)

// EncodeStripRoot removes the synthetic wrapper bytes from the
// rendered text when the tree carries one.
func EncodeStripRoot() EncodeOption {
	return func(es *EncState) { es.stripRoot = true }
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if !es.stripRoot {
		return encode(node, w)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode(node, buf); err != nil {
		return err
	}
	s := buf.String()
	if hasSynthetic(node) {
		s = strings.TrimPrefix(s, parse.WrapPrefix)
		s = strings.TrimSuffix(s, parse.WrapSuffix)
	}
	_, err := io.WriteString(w, s)
	return err
}

func encode(node *ir.Node, w io.Writer) error {
	switch node.Type {
	case ir.TextType:
		_, err := io.WriteString(w, node.Raw)
		return err
	case ir.ElementType:
		if node.Tag != "" {
			open := node.RawOpen
			if open == "" {
				open = "<" + node.Tag + ">"
			}
			if _, err := io.WriteString(w, open); err != nil {
				return err
			}
			if node.SelfClose {
				return nil
			}
		}
		for _, c := range node.Children {
			if err := encode(c, w); err != nil {
				return err
			}
		}
		if node.Tag != "" {
			cl := node.RawClose
			if cl == "" {
				cl = "</" + node.Tag + ">"
			}
			if _, err := io.WriteString(w, cl); err != nil {
				return err
			}
		}
		return nil
	}
	return nil
}

func hasSynthetic(node *ir.Node) bool {
	if node.Synthetic {
		return true
	}
	for _, c := range node.Children {
		if c.Type == ir.ElementType && c.Synthetic {
			return true
		}
	}
	return false
}
