// Package values defines Spearmint's closed runtime value algebra: Null,
// Boolean, Int, Float, String, List, Function, and StructureDefinition. The
// set is closed and dispatch over it is a plain Go type switch (see ops.go),
// not virtual method resolution — there is no Value base class to override.
package values

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeje1197/spearmint/pkg/ast"
)

// Type tags a Value's runtime kind, used for typeof() and dispatch errors.
type Type string

const (
	TypeNull                Type = "Null"
	TypeBoolean             Type = "Boolean"
	TypeInt                 Type = "Int"
	TypeFloat               Type = "Float"
	TypeString              Type = "String"
	TypeList                Type = "List"
	TypeFunction            Type = "Function"
	TypeStructureDefinition Type = "StructureDefinition"
)

// Value is satisfied by every runtime value variant. The family is closed:
// code dispatching on a Value should type-switch over exactly these eight
// concrete types and fall back to a TypeError default.
type Value interface {
	Type() Type
	String() string
	IsTrue() bool
}

// Cell is the sole unit of storage inside an environment and inside a
// StructureDefinition's field map. It is never itself a Value — reading a
// name unwraps to Cell.Value, and Cell never satisfies the Value interface.
type Cell struct {
	Value Value
	Const bool
}

// NewCell wraps value in a non-const cell.
func NewCell(value Value) *Cell { return &Cell{Value: value} }

// NewConstCell wraps value in a const cell.
func NewConstCell(value Value) *Cell { return &Cell{Value: value, Const: true} }

// Null is the singleton-like absence of a value; any instance compares equal
// to any other by type alone (a deliberate fix over the source, where Null
// has no equality override at all).
type Null struct{}

func (Null) Type() Type     { return TypeNull }
func (Null) String() string { return "null" }
func (Null) IsTrue() bool   { return false }

// NullValue is the canonical Null instance; built-ins and the evaluator
// return this rather than allocating a fresh struct each time.
var NullValue = Null{}

type Boolean struct{ Value bool }

func (b Boolean) Type() Type { return TypeBoolean }
func (b Boolean) String() string {
	if b.Value {
		return "true"
	}
	return "false"
}
func (b Boolean) IsTrue() bool { return b.Value }

// Int wraps a 64-bit signed integer (the source uses 32-bit; this widens
// consistently per §3's "preserve behavior or widen" allowance).
type Int struct{ Value int64 }

func (i Int) Type() Type     { return TypeInt }
func (i Int) String() string { return strconv.FormatInt(i.Value, 10) }
func (i Int) IsTrue() bool   { return i.Value != 0 }

type Float struct{ Value float64 }

func (f Float) Type() Type     { return TypeFloat }
func (f Float) String() string { return strconv.FormatFloat(f.Value, 'f', -1, 64) }
func (f Float) IsTrue() bool   { return f.Value != 0 }

type String struct{ Value string }

func (s String) Type() Type     { return TypeString }
func (s String) String() string { return s.Value }
func (s String) IsTrue() bool   { return len(s.Value) != 0 }

// List is mutable in place and shared by reference: two names bound to the
// same List observe each other's in-place mutations, so List is always
// passed around as *List rather than by value.
type List struct {
	Elements []Value
}

func NewList(elements ...Value) *List {
	return &List{Elements: elements}
}

func (l *List) Type() Type   { return TypeList }
func (l *List) IsTrue() bool { return len(l.Elements) != 0 }
func (l *List) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, el := range l.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.String())
	}
	sb.WriteString("]")
	return sb.String()
}

// BuiltinFunc is the signature a host-provided built-in callback must
// implement; args are already-evaluated argument values.
type BuiltinFunc func(args []Value) (Value, error)

// Function is either a user-defined, AST-backed function or a built-in
// wrapping a Go callback. Equality between two Function values is identity
// (pointer) comparison, matching the source's address-based compare_ee.
type Function struct {
	Name       string
	ParamNames []string
	Body       *ast.VectorWrapper // nil when Builtin is set
	Builtin    BuiltinFunc        // nil for user-defined functions
}

func (f *Function) Type() Type { return TypeFunction }
func (f *Function) IsTrue() bool { return true }
func (f *Function) String() string {
	return fmt.Sprintf("Function '%s' (%d) at %p", f.Name, len(f.ParamNames), f)
}

func (f *Function) IsBuiltin() bool { return f.Builtin != nil }

// StructureDefinition doubles as both a type's template and its instances
// (§9 Design Notes): Role distinguishes the two for documentation purposes
// only — attribute access and assignment work identically on either, but
// only an instance is meaningful to mutate in practice.
type Role string

const (
	RoleTemplate Role = "template"
	RoleInstance Role = "instance"
)

// StructureDefinition holds an ordered field map: a slice of field names in
// declaration order plus a name -> *Cell map for O(1) lookup (a
// deliberate fix over the source's unordered_map, per the REDESIGN flag).
type StructureDefinition struct {
	Name   string
	Role   Role
	order  []string
	fields map[string]*Cell
}

func NewStructureDefinition(name string, role Role) *StructureDefinition {
	return &StructureDefinition{Name: name, Role: role, fields: make(map[string]*Cell)}
}

func (s *StructureDefinition) Type() Type     { return TypeStructureDefinition }
func (s *StructureDefinition) IsTrue() bool   { return true }
func (s *StructureDefinition) String() string { return fmt.Sprintf("Structure <%s>", s.Name) }

// HasField reports whether name is already a declared field.
func (s *StructureDefinition) HasField(name string) bool {
	_, ok := s.fields[name]
	return ok
}

// AddField declares a new field; it is an error to redeclare one (matching
// the source's StructureDefinition::addField).
func (s *StructureDefinition) AddField(name string, cell *Cell) error {
	if s.HasField(name) {
		return fmt.Errorf("class '%s' already has a '%s' field", s.Name, name)
	}
	s.order = append(s.order, name)
	s.fields[name] = cell
	return nil
}

// Field returns the cell for name, or nil if undeclared.
func (s *StructureDefinition) Field(name string) *Cell {
	return s.fields[name]
}

// FieldNames returns field names in declaration order.
func (s *StructureDefinition) FieldNames() []string {
	return s.order
}

// CreateInstance deep-copies the field map into a fresh instance: each field
// gets a new Cell holding the same value handle but preserving the source
// cell's const flag (§3: "field values themselves are not deep-cloned beyond
// taking a handle").
func (s *StructureDefinition) CreateInstance() *StructureDefinition {
	instance := NewStructureDefinition(s.Name, RoleInstance)
	for _, name := range s.order {
		src := s.fields[name]
		instance.order = append(instance.order, name)
		instance.fields[name] = &Cell{Value: src.Value, Const: src.Const}
	}
	return instance
}
