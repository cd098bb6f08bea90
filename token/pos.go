package token

import "strconv"

// Pos locates a token in the source. Line and Col are zero based;
// Col counts bytes from the start of the line.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line+1) + ":" + strconv.Itoa(p.Col+1)
}
