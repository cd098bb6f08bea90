package confpatch

import (
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOriginal returns the textual delta between the loaded source and
// the current render, in unidiff-like patch form. An unedited document
// yields "". This is the diff-minimal property made inspectable: a
// pipeline can log or gate on how much of a vendor file its patches
// actually touched.
func (d *Document) DiffOriginal() string {
	cur := d.String()
	src := string(d.source)
	if cur == src {
		return ""
	}
	dmp := diffpatch.New()
	return dmp.PatchToText(dmp.PatchMake(src, cur))
}
