// Package confpatch applies targeted, format-preserving edits to game
// configuration documents.
//
// A [Document] is loaded from XML-like text, addressed through a
// restricted path language or through a name index, mutated in place,
// and rendered back out. Every byte the edits did not touch appears in
// the output exactly as it appeared in the source, so a build pipeline
// patching large vendor-authored files produces diff-minimal results.
//
// Two document flavors are supported. Multi-root documents are loaded
// with [MultiRoot]: the loader wraps the text in a synthetic root that
// rendering strips back out, and elements are addressed by path.
// Single-root documents skip the wrapping and additionally expose the
// name-indexed operations ([Document.SetValue], [Document.SetArray],
// [Document.EnsureSection]) and coordinate-vector flattening.
//
// A Document is not safe for concurrent use; the owning pipeline
// sequences all edits between one load and one render.
package confpatch
