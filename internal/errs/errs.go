// Package errs defines the uniform error taxonomy shared by every stage of
// the Spearmint pipeline: lexer, parser and evaluator all raise *Error
// values distinguished only by Kind.
package errs

import "fmt"

// Kind distinguishes the six error categories the pipeline can raise.
type Kind string

const (
	LexError   Kind = "LexError"
	ParseError Kind = "ParseError"
	NameError  Kind = "NameError"
	TypeError  Kind = "TypeError"
	ArityError Kind = "ArityError"
	BoundsError Kind = "BoundsError"
)

// Position locates an error in source text. Zero value means "no position".
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.File == ""
}

// Error is the single error type every Spearmint stage returns.
type Error struct {
	Kind    Kind
	Message string
	Pos     Position
	HasPos  bool
}

func (e *Error) Error() string {
	if e.HasPos {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func At(kind Kind, message string, pos Position) *Error {
	return &Error{Kind: kind, Message: message, Pos: pos, HasPos: true}
}

func Lexf(pos Position, format string, args ...any) *Error {
	return At(LexError, fmt.Sprintf(format, args...), pos)
}

func Parsef(pos Position, format string, args ...any) *Error {
	return At(ParseError, fmt.Sprintf(format, args...), pos)
}

func Namef(format string, args ...any) *Error {
	return New(NameError, fmt.Sprintf(format, args...))
}

func Typef(format string, args ...any) *Error {
	return New(TypeError, fmt.Sprintf(format, args...))
}

func Arityf(format string, args ...any) *Error {
	return New(ArityError, fmt.Sprintf(format, args...))
}

func Boundsf(format string, args ...any) *Error {
	return New(BoundsError, fmt.Sprintf(format, args...))
}

// Is reports whether err is itself a *Error of the given Kind, so callers can
// do errs.Is(err, errs.NameError). Wrapped errors are not unwrapped.
func Is(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}
