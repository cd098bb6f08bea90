package diag

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Warn("something odd", "name", "dup")
	r.Error("operation failed", "key", "Sub")
	assert.Len(t, r.Warns(), 1)
	assert.Len(t, r.Errors(), 1)
	assert.Equal(t, "warn: something odd name=dup", r.Warns()[0].String())
	assert.Equal(t, "error: operation failed key=Sub", r.Errors()[0].String())
	r.Reset()
	assert.Empty(t, r.Entries)
}

func TestConsoleWriter(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	c := NewConsoleWriter(buf)
	c.Warn("path not found", "path", "A/B")
	c.Error("bad write")
	assert.Equal(t, "warn: path not found path=A/B\nerror: bad write\n", buf.String())
}

func TestOr(t *testing.T) {
	assert.Equal(t, Nop{}, Or(nil))
	r := &Recorder{}
	assert.Equal(t, Sink(r), Or(r))
}
