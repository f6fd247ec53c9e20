package values

import "testing"

func TestAddNumericWidening(t *testing.T) {
	v, err := Add(Int{Value: 1}, Float{Value: 2.5})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	f, ok := v.(Float)
	if !ok || f.Value != 3.5 {
		t.Fatalf("expected Float(3.5), got %#v", v)
	}
}

func TestAddStringCoercion(t *testing.T) {
	v, err := Add(Int{Value: 1}, String{Value: "x"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if s, ok := v.(String); !ok || s.Value != "1x" {
		t.Fatalf("expected String(\"1x\"), got %#v", v)
	}
}

func TestAddListAppendsAndReturnsNull(t *testing.T) {
	l := NewList(Int{Value: 1})
	v, err := Add(l, Int{Value: 2})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, ok := v.(Null); !ok {
		t.Fatalf("expected Null result, got %#v", v)
	}
	if len(l.Elements) != 2 {
		t.Fatalf("expected list to be mutated in place, got %v", l.Elements)
	}
}

func TestSubListRemovesByIndex(t *testing.T) {
	l := NewList(Int{Value: 10}, Int{Value: 20}, Int{Value: 30})
	if _, err := Sub(l, Int{Value: 1}); err != nil {
		t.Fatalf("Sub failed: %v", err)
	}
	if len(l.Elements) != 2 || l.Elements[1].(Int).Value != 30 {
		t.Fatalf("unexpected list after removal: %v", l.Elements)
	}
}

func TestSubListOutOfBounds(t *testing.T) {
	l := NewList(Int{Value: 1})
	if _, err := Sub(l, Int{Value: 5}); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
}

func TestPowAndModAlwaysFloat(t *testing.T) {
	v, err := Pow(Int{Value: 2}, Int{Value: 3})
	if err != nil {
		t.Fatalf("Pow failed: %v", err)
	}
	if _, ok := v.(Float); !ok {
		t.Fatalf("expected Float result from Pow, got %#v", v)
	}

	v, err = Mod(Int{Value: 5}, Int{Value: 2})
	if err != nil {
		t.Fatalf("Mod failed: %v", err)
	}
	if _, ok := v.(Float); !ok {
		t.Fatalf("expected Float result from Mod, got %#v", v)
	}
}

func TestIndexListOutOfBounds(t *testing.T) {
	l := NewList(Int{Value: 1}, Int{Value: 2})
	if _, err := Index(l, Int{Value: 5}); err == nil {
		t.Fatal("expected an out-of-bounds error")
	}
}

func TestIndexStringYieldsSingleChar(t *testing.T) {
	v, err := Index(String{Value: "abc"}, Int{Value: 1})
	if err != nil {
		t.Fatalf("Index failed: %v", err)
	}
	if s, ok := v.(String); !ok || s.Value != "b" {
		t.Fatalf("expected String(\"b\"), got %#v", v)
	}
}

func TestEqNullAlwaysEqual(t *testing.T) {
	v, err := Eq(NullValue, Null{})
	if err != nil {
		t.Fatalf("Eq failed: %v", err)
	}
	if b, ok := v.(Boolean); !ok || !b.Value {
		t.Fatalf("expected two nulls to compare equal, got %#v", v)
	}
}

func TestEqFunctionIsIdentity(t *testing.T) {
	f1 := &Function{Name: "f"}
	f2 := &Function{Name: "f"}
	v, err := Eq(f1, f1)
	if err != nil || !v.(Boolean).Value {
		t.Fatalf("expected f1 == f1 to be true")
	}
	v, err = Eq(f1, f2)
	if err != nil || v.(Boolean).Value {
		t.Fatalf("expected distinct Function values to compare unequal")
	}
}

func TestEqMismatchedKindsIsTypeError(t *testing.T) {
	if _, err := Eq(Int{Value: 1}, String{Value: "1"}); err == nil {
		t.Fatalf("expected Eq(Int, String) to error, got no error")
	}
	if _, err := Eq(String{Value: "1"}, Int{Value: 1}); err == nil {
		t.Fatalf("expected Eq(String, Int) to error, got no error")
	}
}

func TestEqBooleanIsAlwaysIllegal(t *testing.T) {
	if _, err := Eq(Boolean{Value: true}, Boolean{Value: true}); err == nil {
		t.Fatalf("expected Eq(Boolean, Boolean) to error, got no error")
	}
}

func TestAndOrDoNotShortCircuitSemantically(t *testing.T) {
	v, err := And(Boolean{Value: false}, Boolean{Value: true})
	if err != nil {
		t.Fatalf("And failed: %v", err)
	}
	if v.(Boolean).Value {
		t.Fatal("expected false && true to be false")
	}
}

func TestNegateNumeric(t *testing.T) {
	v, err := Negate(Int{Value: 5})
	if err != nil || v.(Int).Value != -5 {
		t.Fatalf("expected Int(-5), got %#v, err=%v", v, err)
	}
}

func TestNegateIllegalOnNonNumeric(t *testing.T) {
	if _, err := Negate(String{Value: "x"}); err == nil {
		t.Fatal("expected an illegal operation error")
	}
}

func TestStructureDefinitionCreateInstancePreservesConstFlag(t *testing.T) {
	tmpl := NewStructureDefinition("Point", RoleTemplate)
	_ = tmpl.AddField("x", NewCell(Int{Value: 0}))
	_ = tmpl.AddField("id", NewConstCell(String{Value: "p"}))

	inst := tmpl.CreateInstance()
	if inst == tmpl {
		t.Fatal("expected a distinct instance")
	}
	if inst.Field("id").Const != true {
		t.Fatal("expected const flag to be preserved on instance")
	}
	if len(inst.FieldNames()) != 2 || inst.FieldNames()[0] != "x" {
		t.Fatalf("expected field order preserved, got %v", inst.FieldNames())
	}
}

func TestStructureDefinitionAddFieldRejectsDuplicate(t *testing.T) {
	s := NewStructureDefinition("P", RoleTemplate)
	if err := s.AddField("x", NewCell(Int{Value: 0})); err != nil {
		t.Fatalf("first AddField failed: %v", err)
	}
	if err := s.AddField("x", NewCell(Int{Value: 1})); err == nil {
		t.Fatal("expected an error on duplicate field")
	}
}
