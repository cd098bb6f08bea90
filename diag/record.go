package diag

import "fmt"

// Level tags a recorded diagnostic.
type Level int

const (
	WarnLevel Level = iota
	ErrorLevel
)

type Entry struct {
	Level Level
	Msg   string
	Attrs []any
}

// String renders the entry the way Console would, uncolored.
func (e Entry) String() string {
	prefix := "warn"
	if e.Level == ErrorLevel {
		prefix = "error"
	}
	return fmt.Sprintf("%s: %s%s", prefix, e.Msg, formatAttrs(e.Attrs))
}

// Recorder captures diagnostics for test assertions.
type Recorder struct {
	Entries []Entry
}

func (r *Recorder) Warn(msg string, attrs ...any) {
	r.Entries = append(r.Entries, Entry{Level: WarnLevel, Msg: msg, Attrs: attrs})
}

func (r *Recorder) Error(msg string, attrs ...any) {
	r.Entries = append(r.Entries, Entry{Level: ErrorLevel, Msg: msg, Attrs: attrs})
}

// Errors returns the recorded error-level entries.
func (r *Recorder) Errors() []Entry {
	var res []Entry
	for _, e := range r.Entries {
		if e.Level == ErrorLevel {
			res = append(res, e)
		}
	}
	return res
}

// Warns returns the recorded warn-level entries.
func (r *Recorder) Warns() []Entry {
	var res []Entry
	for _, e := range r.Entries {
		if e.Level == WarnLevel {
			res = append(res, e)
		}
	}
	return res
}

// Reset drops all recorded entries.
func (r *Recorder) Reset() {
	r.Entries = nil
}
