// Package eval implements the tree-walking evaluator: it walks an AST
// program over a chain of environments, dispatching on each node's
// concrete Go type via a type switch (§9 REDESIGN: no virtual dispatch).
package eval

import (
	"github.com/jeje1197/spearmint/internal/environment"
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/internal/host"
	"github.com/jeje1197/spearmint/pkg/ast"
	"github.com/jeje1197/spearmint/pkg/values"
)

// Evaluator walks an AST program against a root Environment pre-populated
// with true/false/null and the built-in functions.
type Evaluator struct {
	Host host.Host
	Root *environment.Environment
}

// New builds an Evaluator whose root scope has true, false, null bound as
// const cells, plus whatever built-ins register(root) adds.
func New(h host.Host, register func(root *environment.Environment, h host.Host)) *Evaluator {
	root := environment.New()
	root.AddGlobal("true", values.NewConstCell(values.Boolean{Value: true}))
	root.AddGlobal("false", values.NewConstCell(values.Boolean{Value: false}))
	root.AddGlobal("null", values.NewConstCell(values.NullValue))
	if register != nil {
		register(root, h)
	}
	return &Evaluator{Host: h, Root: root}
}

// Run evaluates program in a fresh child of the root scope, matching the
// driver contract that no state survives between runs.
func (e *Evaluator) Run(program *ast.VectorWrapper) (values.Value, error) {
	result, err := e.eval(program, e.Root.Child())
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func (e *Evaluator) eval(node ast.Node, env *environment.Environment) (StepResult, error) {
	switch n := node.(type) {

	case *ast.VectorWrapper:
		for _, stmt := range n.Statements {
			result, err := e.eval(stmt, env)
			if err != nil {
				return StepResult{}, err
			}
			if result.Kind != Normal {
				return result, nil
			}
		}
		return normal(values.NullValue), nil

	case *ast.IntLiteral:
		return normal(values.Int{Value: n.Value}), nil

	case *ast.FloatLiteral:
		return normal(values.Float{Value: n.Value}), nil

	case *ast.StringLiteral:
		return normal(values.String{Value: n.Value}), nil

	case *ast.ListLiteral:
		elements := make([]values.Value, 0, len(n.Elements))
		for _, elNode := range n.Elements {
			v, err := e.evalExpr(elNode, env)
			if err != nil {
				return StepResult{}, err
			}
			elements = append(elements, v)
		}
		return normal(values.NewList(elements...)), nil

	case *ast.UnaryOp:
		operand, err := e.evalExpr(n.Operand, env)
		if err != nil {
			return StepResult{}, err
		}
		var result values.Value
		switch n.Op {
		case "-":
			result, err = values.Negate(operand)
		case "!":
			result, err = values.Not(operand)
		case "+":
			result = operand
		default:
			err = errs.Typef("unknown unary operator '%s'", n.Op)
		}
		if err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(result), nil

	case *ast.BinOp:
		left, err := e.evalExpr(n.Left, env)
		if err != nil {
			return StepResult{}, err
		}
		right, err := e.evalExpr(n.Right, env)
		if err != nil {
			return StepResult{}, err
		}
		result, err := applyBinOp(n.Op, left, right)
		if err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(result), nil

	case *ast.VarDeclaration:
		value, err := e.evalExpr(n.Initializer, env)
		if err != nil {
			return StepResult{}, err
		}
		if err := env.AddLocal(n.Name, value, n.IsConst); err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(values.NullValue), nil

	case *ast.VarAssign:
		value, err := e.evalExpr(n.Expression, env)
		if err != nil {
			return StepResult{}, err
		}
		if err := env.Update(n.Name, value); err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(values.NullValue), nil

	case *ast.VarAccess:
		value, err := env.Get(n.Name)
		if err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(value), nil

	case *ast.AttributeAccess:
		value, err := e.evalAttributeAccess(n, env)
		if err != nil {
			return StepResult{}, err
		}
		return normal(value), nil

	case *ast.AttributeAssign:
		value, err := e.evalExpr(n.Value, env)
		if err != nil {
			return StepResult{}, err
		}
		if err := e.evalAttributeAssign(n, value, env); err != nil {
			return StepResult{}, err
		}
		return normal(value), nil

	case *ast.IndexAccess:
		target, err := e.evalExpr(n.Target, env)
		if err != nil {
			return StepResult{}, err
		}
		index, err := e.evalExpr(n.Index, env)
		if err != nil {
			return StepResult{}, err
		}
		result, err := values.Index(target, index)
		if err != nil {
			return StepResult{}, wrapErr(errs.Boundsf("%s", err.Error()), n.Pos)
		}
		return normal(result), nil

	case *ast.If:
		for _, c := range n.Cases {
			cond, err := e.evalExpr(c.Condition, env)
			if err != nil {
				return StepResult{}, err
			}
			if cond.IsTrue() {
				return e.eval(c.Body, env.Child())
			}
		}
		if n.Else != nil {
			return e.eval(n.Else, env.Child())
		}
		return normal(values.NullValue), nil

	case *ast.For:
		loopScope := env.Child()
		if _, err := e.eval(n.Init, loopScope); err != nil {
			return StepResult{}, err
		}
		for {
			cond, err := e.evalExpr(n.Cond, loopScope)
			if err != nil {
				return StepResult{}, err
			}
			if !cond.IsTrue() {
				break
			}
			iterScope := loopScope.Child()
			result, err := e.eval(n.Body, iterScope)
			if err != nil {
				return StepResult{}, err
			}
			if result.Kind == Breaking {
				break
			}
			if result.Kind == Returning {
				return result, nil
			}
			if _, err := e.eval(n.Update, iterScope); err != nil {
				return StepResult{}, err
			}
		}
		return normal(values.NullValue), nil

	case *ast.While:
		for {
			cond, err := e.evalExpr(n.Cond, env)
			if err != nil {
				return StepResult{}, err
			}
			if !cond.IsTrue() {
				break
			}
			result, err := e.eval(n.Body, env.Child())
			if err != nil {
				return StepResult{}, err
			}
			if result.Kind == Breaking {
				break
			}
			if result.Kind == Returning {
				return result, nil
			}
		}
		return normal(values.NullValue), nil

	case *ast.FunctionDef:
		fn := &values.Function{Name: n.Name, ParamNames: n.ParamNames, Body: n.Body}
		if err := env.AddLocal(n.Name, fn, false); err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(values.NullValue), nil

	case *ast.FunctionCall:
		return e.evalFunctionCall(n, env)

	case *ast.Return:
		if n.Expression == nil {
			return returning(values.NullValue), nil
		}
		value, err := e.evalExpr(n.Expression, env)
		if err != nil {
			return StepResult{}, err
		}
		return returning(value), nil

	case *ast.Break:
		return breaking, nil

	case *ast.Continue:
		return continuing, nil

	case *ast.StructureDef:
		if err := e.evalStructureDef(n, env); err != nil {
			return StepResult{}, err
		}
		return normal(values.NullValue), nil

	case *ast.ConstructorCall:
		target, err := e.evalExpr(n.Expression, env)
		if err != nil {
			return StepResult{}, err
		}
		def, ok := target.(*values.StructureDefinition)
		if !ok {
			return StepResult{}, wrapErr(errs.Typef("'new' requires a structure type, got %s", target.Type()), n.Pos)
		}
		return normal(def.CreateInstance()), nil

	case *ast.Import:
		return normal(values.NullValue), nil

	default:
		return StepResult{}, wrapErr(errs.Typef("unhandled AST node %T", n), node.GetPos())
	}
}

// evalExpr evaluates a node expected to produce a plain value with no
// control-flow signal (every expression-position node always yields Normal).
func (e *Evaluator) evalExpr(node ast.Node, env *environment.Environment) (values.Value, error) {
	result, err := e.eval(node, env)
	if err != nil {
		return nil, err
	}
	return result.Value, nil
}

func (e *Evaluator) evalAttributeAccess(n *ast.AttributeAccess, env *environment.Environment) (values.Value, error) {
	target, err := e.evalExpr(n.Target, env)
	if err != nil {
		return nil, err
	}
	def, ok := target.(*values.StructureDefinition)
	if !ok {
		return nil, wrapErr(errs.Typef("'%s' has no fields (type %s)", n.Field, target.Type()), n.Pos)
	}
	cell := def.Field(n.Field)
	if cell == nil {
		return nil, wrapErr(errs.Namef("%s does not have a '%s' field", def.Name, n.Field), n.Pos)
	}
	return cell.Value, nil
}

func (e *Evaluator) evalAttributeAssign(n *ast.AttributeAssign, value values.Value, env *environment.Environment) error {
	target, err := e.evalExpr(n.Target.Target, env)
	if err != nil {
		return err
	}
	def, ok := target.(*values.StructureDefinition)
	if !ok {
		return wrapErr(errs.Typef("'%s' has no fields (type %s)", n.Target.Field, target.Type()), n.Pos)
	}
	cell := def.Field(n.Target.Field)
	if cell == nil {
		return wrapErr(errs.Namef("%s does not have a '%s' field", def.Name, n.Target.Field), n.Pos)
	}
	if cell.Const {
		return wrapErr(errs.Namef("'%s' is const and cannot be reassigned", n.Target.Field), n.Pos)
	}
	cell.Value = value
	return nil
}

func (e *Evaluator) evalStructureDef(n *ast.StructureDef, env *environment.Environment) error {
	if env.ContainsAnywhere(n.Name) {
		return wrapErr(errs.Namef("'%s' is already in scope", n.Name), n.Pos)
	}
	def := values.NewStructureDefinition(n.Name, values.RoleTemplate)
	memberScope := env.Child()

	for _, member := range n.Members {
		switch m := member.(type) {
		case *ast.VarDeclaration:
			initial, err := e.evalExpr(m.Initializer, memberScope)
			if err != nil {
				return err
			}
			// Member const flag is forced false on declaration, matching
			// the source's StructureDefinition field behavior.
			if err := def.AddField(m.Name, values.NewCell(initial)); err != nil {
				return wrapErr(errs.Namef("%s", err.Error()), m.Pos)
			}
		case *ast.FunctionDef:
			fn := &values.Function{Name: m.Name, ParamNames: m.ParamNames, Body: m.Body}
			if err := def.AddField(m.Name, values.NewCell(fn)); err != nil {
				return wrapErr(errs.Namef("%s", err.Error()), m.Pos)
			}
		default:
			return wrapErr(errs.Typef("only variable declarations and function definitions are allowed in a type block"), n.Pos)
		}
	}

	if err := env.AddLocal(n.Name, def, true); err != nil {
		return wrapErr(err, n.Pos)
	}
	return nil
}

func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall, env *environment.Environment) (StepResult, error) {
	callee, err := e.evalExpr(n.Callee, env)
	if err != nil {
		return StepResult{}, err
	}
	fn, ok := callee.(*values.Function)
	if !ok {
		return StepResult{}, wrapErr(errs.Typef("'%s' is not callable", callee.Type()), n.Pos)
	}

	args := make([]values.Value, 0, len(n.Args))
	for _, argNode := range n.Args {
		v, err := e.evalExpr(argNode, env)
		if err != nil {
			return StepResult{}, err
		}
		args = append(args, v)
	}

	if fn.IsBuiltin() {
		result, err := fn.Builtin(args)
		if err != nil {
			return StepResult{}, wrapErr(err, n.Pos)
		}
		return normal(result), nil
	}

	if len(args) != len(fn.ParamNames) {
		return StepResult{}, wrapErr(errs.Arityf("function '%s' expected %d args, but received %d args", fn.Name, len(fn.ParamNames), len(args)), n.Pos)
	}

	// Caller-scoped closures (§9 Open Question, resolved toward source
	// fidelity): the call frame is a child of the CALLER's environment, not
	// of any scope captured at definition time.
	callScope := env.Child()
	for i, param := range fn.ParamNames {
		_ = callScope.AddLocal(param, args[i], false)
	}

	result, err := e.eval(fn.Body, callScope)
	if err != nil {
		return StepResult{}, err
	}
	if result.Kind == Returning {
		return normal(result.Value), nil
	}
	return normal(values.NullValue), nil
}

func wrapErr(err error, pos errs.Position) error {
	if se, ok := err.(*errs.Error); ok && !se.HasPos && !pos.IsZero() {
		return errs.At(se.Kind, se.Message, pos)
	}
	return err
}
