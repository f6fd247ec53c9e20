package values

import (
	"fmt"
	"math"
)

func illegalOp(op string, left Value) error {
	return fmt.Errorf("operation '%s' cannot be performed on %s", op, left.Type())
}

func asFloat(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n.Value), true
	case Float:
		return n.Value, true
	default:
		return 0, false
	}
}

// Add implements '+': numeric widening to Float when either side is Float,
// string coercion-and-concatenation when either side is a String, and the
// source's deliberately surprising List overload — appending in place and
// returning Null rather than a new list (a List on the left appends even a
// String right operand).
func Add(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int{Value: l.Value + r.Value}, nil
		case Float:
			return Float{Value: float64(l.Value) + r.Value}, nil
		case String:
			return String{Value: l.String() + r.Value}, nil
		}
	case Float:
		switch r := right.(type) {
		case Int, Float:
			rf, _ := asFloat(r)
			return Float{Value: l.Value + rf}, nil
		case String:
			return String{Value: l.String() + r.Value}, nil
		}
	case String:
		return String{Value: l.Value + right.String()}, nil
	case *List:
		l.Elements = append(l.Elements, right)
		return NullValue, nil
	case *Function:
		if r, ok := right.(String); ok {
			return String{Value: l.String() + r.Value}, nil
		}
	case *StructureDefinition:
		if r, ok := right.(String); ok {
			return String{Value: l.String() + r.Value}, nil
		}
	case Null, Boolean:
		if r, ok := right.(String); ok {
			return String{Value: l.String() + r.Value}, nil
		}
	}
	return nil, illegalOp("+", left)
}

// Sub implements '-': numeric subtraction, or List index-removal when the
// right operand is an Int (bounds-checked — a fix over the source, which
// erases unchecked; see also Index for the matching '[]' bounds check).
func Sub(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int{Value: l.Value - r.Value}, nil
		case Float:
			return Float{Value: float64(l.Value) - r.Value}, nil
		}
	case Float:
		if rf, ok := asFloat(right); ok {
			return Float{Value: l.Value - rf}, nil
		}
	case *List:
		idx, ok := right.(Int)
		if !ok {
			return nil, fmt.Errorf("list remove method requires an int argument")
		}
		if idx.Value < 0 || int(idx.Value) >= len(l.Elements) {
			return nil, fmt.Errorf("index %d is out of list bounds", idx.Value)
		}
		l.Elements = append(l.Elements[:idx.Value], l.Elements[idx.Value+1:]...)
		return NullValue, nil
	}
	return nil, illegalOp("-", left)
}

func Mul(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			return Int{Value: l.Value * r.Value}, nil
		case Float:
			return Float{Value: float64(l.Value) * r.Value}, nil
		}
	case Float:
		if rf, ok := asFloat(right); ok {
			return Float{Value: l.Value * rf}, nil
		}
	}
	return nil, illegalOp("*", left)
}

func Div(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Int:
		switch r := right.(type) {
		case Int:
			if r.Value == 0 {
				return nil, fmt.Errorf("division by zero")
			}
			return Int{Value: l.Value / r.Value}, nil
		case Float:
			return Float{Value: float64(l.Value) / r.Value}, nil
		}
	case Float:
		if rf, ok := asFloat(right); ok {
			return Float{Value: l.Value / rf}, nil
		}
	}
	return nil, illegalOp("/", left)
}

// Pow and Mod always produce Float regardless of operand kinds, a behavior
// preserved directly from the source's Int/Float::pow and ::mod.
func Pow(left, right Value) (Value, error) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, illegalOp("^", left)
	}
	return Float{Value: math.Pow(lf, rf)}, nil
}

func Mod(left, right Value) (Value, error) {
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, illegalOp("%", left)
	}
	return Float{Value: math.Mod(lf, rf)}, nil
}

// numericCompare dispatches '<','>','<=','>=': String operands compare
// lexically against another String, everything else compares as Float.
func numericCompare(op string, left, right Value, numCmp func(a, b float64) bool, strCmp func(a, b string) bool) (Value, error) {
	if l, ok := left.(String); ok {
		r, ok := right.(String)
		if !ok {
			return nil, illegalOp(op, left)
		}
		return Boolean{Value: strCmp(l.Value, r.Value)}, nil
	}
	lf, lok := asFloat(left)
	rf, rok := asFloat(right)
	if !lok || !rok {
		return nil, illegalOp(op, left)
	}
	return Boolean{Value: numCmp(lf, rf)}, nil
}

func Lt(left, right Value) (Value, error) {
	return numericCompare("<", left, right,
		func(a, b float64) bool { return a < b },
		func(a, b string) bool { return a < b })
}
func Gt(left, right Value) (Value, error) {
	return numericCompare(">", left, right,
		func(a, b float64) bool { return a > b },
		func(a, b string) bool { return a > b })
}
func Lte(left, right Value) (Value, error) {
	return numericCompare("<=", left, right,
		func(a, b float64) bool { return a <= b },
		func(a, b string) bool { return a <= b })
}
func Gte(left, right Value) (Value, error) {
	return numericCompare(">=", left, right,
		func(a, b float64) bool { return a >= b },
		func(a, b string) bool { return a >= b })
}

// Eq implements '==': numeric pairs compare by value, Strings by content,
// Function/StructureDefinition by identity, and two Nulls are always equal
// (the deliberate fix §9 calls for — the source leaves Null equality
// unreachable); a Null left operand compares false against any non-Null
// right operand. Any other type mismatch is a TypeError, not a false result — mirrors
// the source's Int/Float/String::compare_ee, which calls illegalOperation()
// rather than returning false when the other operand isn't comparable.
// Boolean has no compare_ee override in the source at all, so every Boolean
// '==' is illegal, not just a mismatched one (documented in DESIGN.md).
func Eq(left, right Value) (Value, error) {
	switch l := left.(type) {
	case Null:
		_, ok := right.(Null)
		return Boolean{Value: ok}, nil
	case String:
		r, ok := right.(String)
		if !ok {
			return nil, illegalOp("==", left)
		}
		return Boolean{Value: l.Value == r.Value}, nil
	case Int, Float:
		rf, rok := asFloat(right)
		if !rok {
			return nil, illegalOp("==", left)
		}
		lf, _ := asFloat(left)
		return Boolean{Value: lf == rf}, nil
	case *Function:
		r, ok := right.(*Function)
		if !ok {
			return nil, illegalOp("==", left)
		}
		return Boolean{Value: l == r}, nil
	case *StructureDefinition:
		r, ok := right.(*StructureDefinition)
		if !ok {
			return nil, illegalOp("==", left)
		}
		return Boolean{Value: l == r}, nil
	}
	return nil, illegalOp("==", left)
}

func Ne(left, right Value) (Value, error) {
	eq, err := Eq(left, right)
	if err != nil {
		return nil, illegalOp("!=", left)
	}
	return Boolean{Value: !eq.(Boolean).Value}, nil
}

// And and Or implement '&&'/'||' WITHOUT short-circuiting: both operands are
// always evaluated by the caller before either is passed here, faithfully
// reproducing the source's Boolean::anded_by/ored_by (§9 Open Question,
// resolved toward source fidelity).
func And(left, right Value) (Value, error) {
	return Boolean{Value: left.IsTrue() && right.IsTrue()}, nil
}

func Or(left, right Value) (Value, error) {
	return Boolean{Value: left.IsTrue() || right.IsTrue()}, nil
}

// Not implements unary '!'.
func Not(v Value) (Value, error) {
	return Boolean{Value: !v.IsTrue()}, nil
}

// Negate implements unary '-' directly on numeric variants rather than via
// multiplication by Int(-1), avoiding a spurious TypeError path on
// non-numerics (§9 Design Notes).
func Negate(v Value) (Value, error) {
	switch n := v.(type) {
	case Int:
		return Int{Value: -n.Value}, nil
	case Float:
		return Float{Value: -n.Value}, nil
	}
	return nil, illegalOp("-", v)
}

// Len returns the Int length of a String or List.
func Len(v Value) (Value, error) {
	switch t := v.(type) {
	case String:
		return Int{Value: int64(len(t.Value))}, nil
	case *List:
		return Int{Value: int64(len(t.Elements))}, nil
	}
	return nil, fmt.Errorf("len() is not defined for %s", v.Type())
}

// Index implements '[]' on List and String: both require an Int index in
// [0, length) and String indexing yields a single-character String.
func Index(target, index Value) (Value, error) {
	idx, ok := index.(Int)
	if !ok {
		return nil, fmt.Errorf("index must be an Int, got %s", index.Type())
	}
	switch t := target.(type) {
	case *List:
		if idx.Value < 0 || int(idx.Value) >= len(t.Elements) {
			return nil, fmt.Errorf("index %d is out of list bounds", idx.Value)
		}
		return t.Elements[idx.Value], nil
	case String:
		if idx.Value < 0 || int(idx.Value) >= len(t.Value) {
			return nil, fmt.Errorf("index %d is out of string bounds", idx.Value)
		}
		return String{Value: string(t.Value[idx.Value])}, nil
	}
	return nil, fmt.Errorf("'%s' does not support indexing", target.Type())
}
