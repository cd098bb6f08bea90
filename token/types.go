package token

type Type int

const (
	TText Type = iota
	TOpen
	TClose
	TSelfClose
)

func (t Type) String() string {
	switch t {
	case TText:
		return "text"
	case TOpen:
		return "open"
	case TClose:
		return "close"
	case TSelfClose:
		return "self-close"
	}
	return "unknown"
}

type Token struct {
	Type Type
	// Tag is the element name for TOpen, TClose and TSelfClose.
	Tag string
	// Bytes holds the exact source bytes of the token, including
	// the surrounding angle brackets for tag tokens.
	Bytes []byte
	Pos   Pos
}

func (t *Token) String() string {
	return string(t.Bytes)
}
