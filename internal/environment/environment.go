// Package environment implements Spearmint's chained scope model: each
// executed block gets a child Environment over its parent, and a name
// resolves by walking up the chain until it is found or the chain is
// exhausted.
package environment

import (
	"github.com/jeje1197/spearmint/internal/errs"
	"github.com/jeje1197/spearmint/pkg/values"
)

// Environment is a name -> *values.Cell mapping with a parent pointer. The
// bindings live in a plain Go map, so they have no defined iteration order. The root environment has a nil parent and lives for the whole
// run; every other environment is released when its owning block exits.
type Environment struct {
	parent *Environment
	cells  map[string]*values.Cell
}

// New creates a root environment with no parent.
func New() *Environment {
	return &Environment{cells: make(map[string]*values.Cell)}
}

// Child creates a new environment scoped under e, used for every block
// (if/else bodies, loop iterations, function-call frames, struct-def
// evaluation).
func (e *Environment) Child() *Environment {
	return &Environment{parent: e, cells: make(map[string]*values.Cell)}
}

// ContainsLocal reports whether name is bound directly in e, ignoring
// parents.
func (e *Environment) ContainsLocal(name string) bool {
	_, ok := e.cells[name]
	return ok
}

// ContainsAnywhere reports whether name resolves anywhere in the chain.
func (e *Environment) ContainsAnywhere(name string) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.cells[name]; ok {
			return true
		}
	}
	return false
}

// Get resolves name up the chain and returns its current value, unwrapped
// from its cell. It errors with NameError if name is unresolved anywhere.
func (e *Environment) Get(name string) (values.Value, error) {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.cells[name]; ok {
			return cell.Value, nil
		}
	}
	return nil, errs.Namef("'%s' is not defined", name)
}

// AddLocal binds name to a new cell in e's own scope. It errors if name is
// already declared locally (duplicate declaration in the same scope).
func (e *Environment) AddLocal(name string, value values.Value, isConst bool) error {
	if e.ContainsLocal(name) {
		return errs.Namef("'%s' is already in scope", name)
	}
	e.cells[name] = &values.Cell{Value: value, Const: isConst}
	return nil
}

// Update walks up the chain and replaces the value in the nearest scope
// that declares name. It errors if name is unresolved, or if the owning
// cell is const.
func (e *Environment) Update(name string, value values.Value) error {
	for env := e; env != nil; env = env.parent {
		if cell, ok := env.cells[name]; ok {
			if cell.Const {
				return errs.Namef("'%s' is const and cannot be reassigned", name)
			}
			cell.Value = value
			return nil
		}
	}
	return errs.Namef("'%s' is not defined", name)
}

// AddGlobal injects a cell directly at the root of the chain, bypassing
// normal declaration rules. Reserved for host/built-in setup only.
func (e *Environment) AddGlobal(name string, cell *values.Cell) {
	root := e
	for root.parent != nil {
		root = root.parent
	}
	root.cells[name] = cell
}

// Remove deletes a local binding; it does not search parents.
func (e *Environment) Remove(name string) {
	delete(e.cells, name)
}
