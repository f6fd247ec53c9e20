// Package builtins registers Spearmint's built-in functions into the root
// environment at evaluator construction, each backed by the injected Host
// for I/O and process control.
package builtins

import (
	"strconv"

	"github.com/jeje1197/spearmint/internal/environment"
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/host"
	"github.com/jeje1197/spearmint/pkg/values"
)

// Register binds print, println, typeof, stoi, stof, intToFloat,
// floatToInt, isNull, len, input, and exit as const cells in root.
func Register(root *environment.Environment, h host.Host) {
	bind(root, "print", []string{"text"}, func(args []values.Value) (values.Value, error) {
		if err := arity("print", args, 1); err != nil {
			return nil, err
		}
		h.WriteOut(args[0].String())
		return values.NullValue, nil
	})

	bind(root, "println", []string{"text"}, func(args []values.Value) (values.Value, error) {
		if err := arity("println", args, 1); err != nil {
			return nil, err
		}
		h.WriteLine(args[0].String())
		return values.NullValue, nil
	})

	bind(root, "typeof", []string{"object"}, func(args []values.Value) (values.Value, error) {
		if err := arity("typeof", args, 1); err != nil {
			return nil, err
		}
		return values.String{Value: string(args[0].Type())}, nil
	})

	bind(root, "stoi", []string{"string"}, func(args []values.Value) (values.Value, error) {
		if err := arity("stoi", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(values.String)
		if !ok {
			return nil, errs.Typef("stoi() requires a String argument, got %s", args[0].Type())
		}
		n, err := strconv.ParseInt(s.Value, 10, 64)
		if err != nil {
			return nil, errs.Typef("'%s' is not a valid integer", s.Value)
		}
		return values.Int{Value: n}, nil
	})

	bind(root, "stof", []string{"string"}, func(args []values.Value) (values.Value, error) {
		if err := arity("stof", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(values.String)
		if !ok {
			return nil, errs.Typef("stof() requires a String argument, got %s", args[0].Type())
		}
		n, err := strconv.ParseFloat(s.Value, 64)
		if err != nil {
			return nil, errs.Typef("'%s' is not a valid float", s.Value)
		}
		return values.Float{Value: n}, nil
	})

	bind(root, "intToFloat", []string{"int"}, func(args []values.Value) (values.Value, error) {
		if err := arity("intToFloat", args, 1); err != nil {
			return nil, err
		}
		i, ok := args[0].(values.Int)
		if !ok {
			return nil, errs.Typef("intToFloat() requires an Int argument, got %s", args[0].Type())
		}
		return values.Float{Value: float64(i.Value)}, nil
	})

	bind(root, "floatToInt", []string{"float"}, func(args []values.Value) (values.Value, error) {
		if err := arity("floatToInt", args, 1); err != nil {
			return nil, err
		}
		f, ok := args[0].(values.Float)
		if !ok {
			return nil, errs.Typef("floatToInt() requires a Float argument, got %s", args[0].Type())
		}
		return values.Int{Value: int64(f.Value)}, nil
	})

	bind(root, "isNull", []string{"object"}, func(args []values.Value) (values.Value, error) {
		if err := arity("isNull", args, 1); err != nil {
			return nil, err
		}
		return values.Boolean{Value: args[0].Type() == values.TypeNull}, nil
	})

	bind(root, "len", []string{"object"}, func(args []values.Value) (values.Value, error) {
		if err := arity("len", args, 1); err != nil {
			return nil, err
		}
		return values.Len(args[0])
	})

	bind(root, "input", nil, func(args []values.Value) (values.Value, error) {
		if err := arity("input", args, 0); err != nil {
			return nil, err
		}
		line, _ := h.ReadLine()
		return values.String{Value: line}, nil
	})

	bind(root, "exit", nil, func(args []values.Value) (values.Value, error) {
		if err := arity("exit", args, 0); err != nil {
			return nil, err
		}
		h.Terminate(0)
		return values.NullValue, nil
	})
}

func bind(root *environment.Environment, name string, paramNames []string, fn values.BuiltinFunc) {
	root.AddGlobal(name, values.NewConstCell(&values.Function{
		Name:       name,
		ParamNames: paramNames,
		Builtin:    fn,
	}))
}

func arity(name string, args []values.Value, want int) error {
	if len(args) != want {
		return errs.Arityf("function '%s' expected %d args, but received %d args", name, want, len(args))
	}
	return nil
}
