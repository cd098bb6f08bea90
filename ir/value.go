package ir

import "strconv"

// Kind discriminates the shapes a patch payload can take.
type Kind int

const (
	ScalarKind Kind = iota
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	}
	return "unknown"
}

// Value is the caller-supplied data merged into a node: a scalar, an
// ordered mapping with unique keys, or a sequence.
type Value struct {
	Kind   Kind
	Scalar string
	Fields []MapField
	Items  []*Value
}

type MapField struct {
	Key   string
	Value *Value
}

func String(s string) *Value {
	return &Value{Kind: ScalarKind, Scalar: s}
}

func Int(i int64) *Value {
	return &Value{Kind: ScalarKind, Scalar: strconv.FormatInt(i, 10)}
}

func Float(f float64) *Value {
	return &Value{Kind: ScalarKind, Scalar: strconv.FormatFloat(f, 'g', -1, 64)}
}

func Map(fields ...MapField) *Value {
	return &Value{Kind: MappingKind, Fields: fields}
}

func Field(key string, v *Value) MapField {
	return MapField{Key: key, Value: v}
}

func Seq(items ...*Value) *Value {
	return &Value{Kind: SequenceKind, Items: items}
}

// Field returns the value for key, or nil when the key is absent or
// the value is not a mapping.
func (v *Value) Field(key string) *Value {
	if v == nil || v.Kind != MappingKind {
		return nil
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Has reports whether a mapping carries the key at all, even with a
// nil value.
func (v *Value) Has(key string) bool {
	if v == nil || v.Kind != MappingKind {
		return false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return true
		}
	}
	return false
}
