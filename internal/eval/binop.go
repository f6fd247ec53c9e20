package eval

import (
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/pkg/values"
)

// applyBinOp dispatches a BinOp's operator to the matching values package
// function. Both operands are already evaluated by the caller, in
// left-to-right order, before this is reached — so '&&'/'||' here are
// non-short-circuiting purely because their operands were eagerly evaluated
// upstream, faithfully reproducing the source (§9 Open Question).
func applyBinOp(op string, left, right values.Value) (values.Value, error) {
	var result values.Value
	var err error

	switch op {
	case "+":
		result, err = values.Add(left, right)
	case "-":
		result, err = values.Sub(left, right)
	case "*":
		result, err = values.Mul(left, right)
	case "/":
		result, err = values.Div(left, right)
	case "%":
		result, err = values.Mod(left, right)
	case "^":
		result, err = values.Pow(left, right)
	case "<":
		result, err = values.Lt(left, right)
	case ">":
		result, err = values.Gt(left, right)
	case "<=":
		result, err = values.Lte(left, right)
	case ">=":
		result, err = values.Gte(left, right)
	case "==":
		result, err = values.Eq(left, right)
	case "!=":
		result, err = values.Ne(left, right)
	case "&&":
		result, err = values.And(left, right)
	case "||":
		result, err = values.Or(left, right)
	default:
		return nil, errs.Typef("unknown binary operator '%s'", op)
	}

	if err != nil {
		// List index-removal failures are index errors, like '[]' access.
		if _, isList := left.(*values.List); isList && op == "-" {
			return nil, errs.Boundsf("%s", err.Error())
		}
		return nil, errs.Typef("%s", err.Error())
	}
	return result, nil
}
