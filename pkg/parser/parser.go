// Package parser is the public entry point into the Spearmint front end: it
// turns source text into an AST program, wrapping the internal builder so
// callers never need to import internal/lexer or internal/builder directly.
package parser

import (
	"io"

	"github.com/jeje1197/spearmint/internal/builder"
	"github.com/jeje1197/spearmint/pkg/ast"
)

// Parse lexes and parses Spearmint source under filename, returning the
// program as a *ast.VectorWrapper of top-level statements. filename is used
// only for error positions; it need not name a real file (the REPL passes
// "Console").
func Parse(filename, input string) (*ast.VectorWrapper, error) {
	b, err := builder.New(filename, input)
	if err != nil {
		return nil, err
	}
	return b.Build()
}

// ParseReader reads all of r and parses it as Spearmint source under filename.
func ParseReader(filename string, r io.Reader) (*ast.VectorWrapper, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(filename, string(content))
}
