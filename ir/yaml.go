package ir

import (
	"fmt"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ValueFromYAML builds a Value from YAML text, preserving mapping key
// order. It lets patch payloads be authored in YAML files instead of
// constructed in code.
func ValueFromYAML(d []byte) (*Value, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(f.Docs) == 0 || f.Docs[0].Body == nil {
		return nil, fmt.Errorf("%w: empty yaml document", ErrParse)
	}
	return fromYAMLNode(f.Docs[0].Body)
}

func fromYAMLNode(n ast.Node) (*Value, error) {
	switch x := n.(type) {
	case *ast.MappingNode:
		res := &Value{Kind: MappingKind}
		for _, kv := range x.Values {
			f, err := fromYAMLPair(kv)
			if err != nil {
				return nil, err
			}
			res.Fields = append(res.Fields, f)
		}
		return res, nil
	case *ast.MappingValueNode:
		f, err := fromYAMLPair(x)
		if err != nil {
			return nil, err
		}
		return &Value{Kind: MappingKind, Fields: []MapField{f}}, nil
	case *ast.SequenceNode:
		res := &Value{Kind: SequenceKind}
		for _, item := range x.Values {
			v, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			res.Items = append(res.Items, v)
		}
		return res, nil
	case *ast.StringNode:
		return String(x.Value), nil
	case *ast.LiteralNode:
		return String(x.Value.Value), nil
	case *ast.NullNode:
		return nil, nil
	case *ast.TagNode:
		return fromYAMLNode(x.Value)
	case *ast.AnchorNode:
		return fromYAMLNode(x.Value)
	default:
		// Integers, floats and booleans keep their source spelling.
		return String(n.GetToken().Value), nil
	}
}

func fromYAMLPair(kv *ast.MappingValueNode) (MapField, error) {
	key, ok := kv.Key.(*ast.StringNode)
	var k string
	if ok {
		k = key.Value
	} else {
		k = kv.Key.GetToken().Value
	}
	v, err := fromYAMLNode(kv.Value)
	if err != nil {
		return MapField{}, err
	}
	return MapField{Key: k, Value: v}, nil
}
