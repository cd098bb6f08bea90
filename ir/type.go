package ir

type Type int

const (
	TextType Type = iota
	ElementType
)

func (t Type) String() string {
	switch t {
	case TextType:
		return "text"
	case ElementType:
		return "element"
	}
	return "unknown"
}

func Types() []Type {
	return []Type{TextType, ElementType}
}
