// Package ir defines the in-memory representation of configuration
// documents and of the value trees merged into them.
//
// A document is a tree of [Node]. Text runs, whitespace and comments
// are first-class text nodes, so re-encoding an unedited tree
// reproduces the source byte for byte. Patch payloads are represented
// by [Value], a tagged union over scalars, ordered mappings and
// sequences.
package ir
