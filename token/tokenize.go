package token

import (
	"bytes"
	"fmt"
)

// Tokenize scans d into a flat token stream. Text runs between tags,
// comments and processing instructions become TText tokens; tags become
// TOpen, TClose or TSelfClose tokens. The concatenation of all token
// bytes is d.
func Tokenize(d []byte) ([]Token, error) {
	s := &scanner{d: d}
	var toks []Token
	for !s.eof() {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

type scanner struct {
	d    []byte
	off  int
	line int
	col  int
}

func (s *scanner) eof() bool {
	return s.off >= len(s.d)
}

func (s *scanner) pos() Pos {
	return Pos{Off: s.off, Line: s.line, Col: s.col}
}

// advance moves past the n bytes starting at the current offset,
// keeping the line/column accounting in step.
func (s *scanner) advance(n int) {
	for i := 0; i < n; i++ {
		if s.d[s.off+i] == '\n' {
			s.line++
			s.col = 0
		} else {
			s.col++
		}
	}
	s.off += n
}

func (s *scanner) next() (Token, error) {
	start := s.pos()
	if s.d[s.off] != '<' {
		return s.text(start), nil
	}
	rest := s.d[s.off:]
	switch {
	case bytes.HasPrefix(rest, []byte("<!--")):
		return s.rawUntil(start, []byte("-->"))
	case bytes.HasPrefix(rest, []byte("<!")), bytes.HasPrefix(rest, []byte("<?")):
		return s.rawUntil(start, []byte(">"))
	case bytes.HasPrefix(rest, []byte("</")):
		return s.closeTag(start)
	default:
		return s.openTag(start)
	}
}

// text consumes a run of character data up to the next '<' or EOF.
func (s *scanner) text(start Pos) Token {
	end := bytes.IndexByte(s.d[s.off:], '<')
	if end < 0 {
		end = len(s.d) - s.off
	}
	raw := s.d[s.off : s.off+end]
	s.advance(end)
	return Token{Type: TText, Bytes: raw, Pos: start}
}

// rawUntil consumes bytes through the first occurrence of term,
// emitting the whole span as a text token. Comments and processing
// instructions take this path.
func (s *scanner) rawUntil(start Pos, term []byte) (Token, error) {
	end := bytes.Index(s.d[s.off:], term)
	if end < 0 {
		return Token{}, fmt.Errorf("%w: unterminated %q at %s", ErrScan, s.d[s.off:s.off+2], start)
	}
	n := end + len(term)
	raw := s.d[s.off : s.off+n]
	s.advance(n)
	return Token{Type: TText, Bytes: raw, Pos: start}, nil
}

func (s *scanner) closeTag(start Pos) (Token, error) {
	end := bytes.IndexByte(s.d[s.off:], '>')
	if end < 0 {
		return Token{}, fmt.Errorf("%w: unterminated close tag at %s", ErrScan, start)
	}
	raw := s.d[s.off : s.off+end+1]
	tag := string(bytes.TrimSpace(raw[2 : len(raw)-1]))
	if tag == "" {
		return Token{}, fmt.Errorf("%w: empty close tag at %s", ErrScan, start)
	}
	s.advance(end + 1)
	return Token{Type: TClose, Tag: tag, Bytes: raw, Pos: start}, nil
}

// openTag consumes an open or self-closing tag, honoring quoted
// attribute values so that '>' inside quotes does not end the tag.
func (s *scanner) openTag(start Pos) (Token, error) {
	i := s.off + 1
	var quote byte
	for ; i < len(s.d); i++ {
		c := s.d[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		if c == '"' || c == '\'' {
			quote = c
			continue
		}
		if c == '>' {
			break
		}
	}
	if i >= len(s.d) {
		return Token{}, fmt.Errorf("%w: unterminated tag at %s", ErrScan, start)
	}
	raw := s.d[s.off : i+1]
	typ := TOpen
	if raw[len(raw)-2] == '/' {
		typ = TSelfClose
	}
	tag := tagName(raw)
	if tag == "" {
		return Token{}, fmt.Errorf("%w: missing tag name at %s", ErrScan, start)
	}
	s.advance(len(raw))
	return Token{Type: typ, Tag: tag, Bytes: raw, Pos: start}, nil
}

// tagName extracts the element name from a raw tag like <Name attr="v">.
func tagName(raw []byte) string {
	i := 1
	for i < len(raw) && isNameByte(raw[i]) {
		i++
	}
	return string(raw[1:i])
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '.', c == '-', c == ':':
		return true
	}
	return false
}
