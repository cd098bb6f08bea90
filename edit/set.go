package edit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/confpatch/confpatch/debug"
	"github.com/confpatch/confpatch/diag"
	"github.com/confpatch/confpatch/ir"
)

// Set merges a value tree onto node, creating missing elements and
// overwriting scalar text. It returns false when any key failed;
// failed keys never abort their siblings.
//
// Merge order: keys present in the Defaults option first, in their
// given order, then supplied keys not already listed. A key's '_'
// characters address tags spelled with '.', so identifier-safe keys
// can reach dotted element names.
func Set(node *ir.Node, values *ir.Value, opts ...Option) bool {
	cfg := newConfig(opts)
	if values == nil {
		return true
	}
	if debug.Set() {
		debug.Logf("set %s: %s value\n", node.Tag, values.Kind)
	}
	switch values.Kind {
	case ir.ScalarKind:
		return setScalar(node, values.Scalar, node.Tag, cfg.sink)
	case ir.SequenceKind:
		cfg.sink.Error("sequence cannot be merged onto an element", "tag", node.Tag)
		return false
	}
	return setMapping(node, values, cfg.defaults, cfg)
}

func setMapping(node *ir.Node, values, defaults *ir.Value, cfg *config) bool {
	ok := true
	for _, key := range mergeKeys(defaults, values) {
		tag := strings.ReplaceAll(key, "_", ".")
		dv := defaults.Field(key)
		v := values.Field(key)

		if v != nil && v.Kind == ir.SequenceKind {
			if !cfg.vectors {
				cfg.sink.Error("array value unsupported for key", "key", key)
				ok = false
				continue
			}
			if !setVector(node, tag, v, cfg.sink) {
				ok = false
			}
			continue
		}

		child := node.Child(tag)
		if child == nil {
			child = CreateChild(node, tag)
			switch {
			case dv == nil:
			case dv.Kind == ir.ScalarKind:
				if !setScalar(child, dv.Scalar, tag, cfg.sink) {
					ok = false
				}
			case dv.Kind == ir.MappingKind:
				if !setMapping(child, dv, nil, cfg) {
					ok = false
				}
			default:
				cfg.sink.Error("array default unsupported for key", "key", key)
				ok = false
			}
		}
		if v == nil {
			continue
		}
		switch v.Kind {
		case ir.ScalarKind:
			if !setScalar(child, v.Scalar, tag, cfg.sink) {
				ok = false
			}
		case ir.MappingKind:
			if len(v.Fields) == 0 {
				continue
			}
			if !setMapping(child, v, nil, cfg) {
				ok = false
			}
		}
	}
	return ok
}

// mergeKeys computes the merge order: defaults keys first, then
// supplied keys not already listed.
func mergeKeys(defaults, values *ir.Value) []string {
	var keys []string
	seen := map[string]bool{}
	if defaults != nil && defaults.Kind == ir.MappingKind {
		for _, f := range defaults.Fields {
			keys = append(keys, f.Key)
			seen[f.Key] = true
		}
	}
	for _, f := range values.Fields {
		if !seen[f.Key] {
			keys = append(keys, f.Key)
		}
	}
	return keys
}

// setScalar overwrites the sole text content of an element. An element
// that already holds element children cannot take a scalar; the write
// is reported and skipped.
func setScalar(n *ir.Node, s, tag string, sink diag.Sink) bool {
	if len(n.Elements()) > 0 {
		sink.Error("scalar write to element with children", "tag", tag)
		return false
	}
	ensureContainer(n)
	switch len(n.Children) {
	case 0:
		n.Append(ir.Text(s))
	case 1:
		n.Children[0].Raw = s
	default:
		sink.Error("scalar write to multi-child element", "tag", tag)
		return false
	}
	return true
}

var vectorAxes = [4]string{"x", "y", "z", "w"}

// setVector flattens a numeric sequence onto sibling leaves named
// tag.x through tag.w, each formatted with fixed 6-decimal precision.
// Components beyond the fourth are dropped.
func setVector(node *ir.Node, tag string, seq *ir.Value, sink diag.Sink) bool {
	ok := true
	n := len(seq.Items)
	if n > len(vectorAxes) {
		sink.Warn("vector components beyond w dropped", "key", tag, "len", n)
		n = len(vectorAxes)
	}
	for i := 0; i < n; i++ {
		item := seq.Items[i]
		leaf := tag + "." + vectorAxes[i]
		if item == nil || item.Kind != ir.ScalarKind {
			sink.Error("vector component is not a scalar", "key", leaf)
			ok = false
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(item.Scalar), 64)
		if err != nil {
			sink.Error("vector component is not numeric", "key", leaf, "value", item.Scalar)
			ok = false
			continue
		}
		child := node.Child(leaf)
		if child == nil {
			child = CreateChild(node, leaf)
		}
		if !setScalar(child, fmt.Sprintf("%.6f", f), leaf, sink) {
			ok = false
		}
	}
	return ok
}
