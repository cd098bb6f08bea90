package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Resolve bool
	Set     bool
	Indent  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Resolve = boolEnv("CONFPATCH_DEBUG_RESOLVE")
	d.Set = boolEnv("CONFPATCH_DEBUG_SET")
	d.Indent = boolEnv("CONFPATCH_DEBUG_INDENT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Resolve() bool {
	return d.Resolve
}
func Set() bool {
	return d.Set
}
func Indent() bool {
	return d.Indent
}
