package eval

import "github.com/jeje1197/spearmint/pkg/values"

// Kind distinguishes the four StepResult shapes the evaluator threads
// through block execution (§9 REDESIGN: replaces the source's mutable
// should_return/should_break/should_continue flags).
type Kind int

const (
	Normal Kind = iota
	Returning
	Breaking
	Continuing
)

// StepResult is returned by every statement-visiting method. A block stops
// executing and propagates the first non-Normal result it receives
// unchanged; loops consume Breaking/Continuing, and function calls consume
// Returning.
type StepResult struct {
	Kind  Kind
	Value values.Value
}

func normal(v values.Value) StepResult { return StepResult{Kind: Normal, Value: v} }
func returning(v values.Value) StepResult { return StepResult{Kind: Returning, Value: v} }

var breaking = StepResult{Kind: Breaking, Value: values.NullValue}
var continuing = StepResult{Kind: Continuing, Value: values.NullValue}
