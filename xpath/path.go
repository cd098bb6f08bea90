package xpath

import "strings"

// Predicate is one equality condition on the text of a step's child
// element.
type Predicate struct {
	Tag   string
	Value string
}

// Step is one tag plus its predicate list.
type Step struct {
	Tag   string
	Preds []Predicate
}

// Path is a parsed query. Anchored paths start at the document root;
// unanchored paths search the whole tree.
type Path struct {
	Anchored bool
	Steps    []Step
}

// Parse builds a Path from its string form. Parsing is best effort
// and never fails: a condition without '=' becomes a predicate with an
// empty value, and an unterminated bracket is treated as one opaque
// condition.
func Parse(s string) *Path {
	p := &Path{}
	if strings.HasPrefix(s, "/") {
		p.Anchored = true
	}
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			continue
		}
		p.Steps = append(p.Steps, parseStep(seg))
	}
	return p
}

func parseStep(seg string) Step {
	br := strings.IndexByte(seg, '[')
	if br < 0 {
		return Step{Tag: strings.TrimSpace(seg)}
	}
	st := Step{Tag: strings.TrimSpace(seg[:br])}
	inner := seg[br+1:]
	if i := strings.LastIndexByte(inner, ']'); i >= 0 {
		inner = inner[:i]
	}
	for _, cond := range strings.Split(inner, " and ") {
		st.Preds = append(st.Preds, parseCond(cond))
	}
	return st
}

func parseCond(cond string) Predicate {
	eq := strings.IndexByte(cond, '=')
	if eq < 0 {
		return Predicate{Tag: strings.TrimSpace(cond)}
	}
	return Predicate{
		Tag:   strings.TrimSpace(cond[:eq]),
		Value: trimLiteral(cond[eq+1:]),
	}
}

// trimLiteral strips surrounding whitespace and one matching pair of
// single or double quotes.
func trimLiteral(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// String renders the path in canonical form for diagnostics.
func (p *Path) String() string {
	var b strings.Builder
	if p.Anchored {
		b.WriteByte('/')
	}
	for i, st := range p.Steps {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(st.Tag)
		if len(st.Preds) > 0 {
			b.WriteByte('[')
			for j, pr := range st.Preds {
				if j > 0 {
					b.WriteString(" and ")
				}
				b.WriteString(pr.Tag)
				b.WriteString("='")
				b.WriteString(pr.Value)
				b.WriteByte('\'')
			}
			b.WriteByte(']')
		}
	}
	return b.String()
}
