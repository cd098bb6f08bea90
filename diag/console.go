package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Console writes diagnostics to a writer, one line each, colorized
// when the writer is a terminal.
type Console struct {
	w     io.Writer
	warn  func(format string, a ...any) string
	errf  func(format string, a ...any) string
}

// NewConsole returns a console sink on stderr.
func NewConsole() *Console {
	return NewConsoleWriter(os.Stderr)
}

func NewConsoleWriter(w io.Writer) *Console {
	c := &Console{w: w, warn: fmt.Sprintf, errf: fmt.Sprintf}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		c.warn = color.New(color.FgYellow).Sprintf
		c.errf = color.New(color.FgRed).Sprintf
	}
	return c
}

func (c *Console) Warn(msg string, attrs ...any) {
	fmt.Fprintln(c.w, c.warn("warn: %s%s", msg, formatAttrs(attrs)))
}

func (c *Console) Error(msg string, attrs ...any) {
	fmt.Fprintln(c.w, c.errf("error: %s%s", msg, formatAttrs(attrs)))
}

func formatAttrs(attrs []any) string {
	if len(attrs) == 0 {
		return ""
	}
	var b strings.Builder
	for i := 0; i+1 < len(attrs); i += 2 {
		fmt.Fprintf(&b, " %v=%v", attrs[i], attrs[i+1])
	}
	if len(attrs)%2 != 0 {
		fmt.Fprintf(&b, " %v", attrs[len(attrs)-1])
	}
	return b.String()
}
