// Package token provides lexical scanning of configuration markup.
//
// The scanner is raw-preserving: every byte of the input appears in
// exactly one token, so that a parse tree built from the token stream
// can reproduce the source byte for byte. Character data, whitespace,
// comments and processing instructions are all emitted as text tokens;
// only element tags are structurally interpreted.
package token
