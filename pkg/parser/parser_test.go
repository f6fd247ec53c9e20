package parser

import (
	"testing"

	"github.com/jeje1197/spearmint/pkg/ast"
)

func TestParseVarDeclarationAndExpression(t *testing.T) {
	input := `var x = 1 + 2 * 3;`

	program, err := Parse("test.sm", input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(program.Statements))
	}

	decl, ok := program.Statements[0].(*ast.VarDeclaration)
	if !ok {
		t.Fatalf("expected *ast.VarDeclaration, got %T", program.Statements[0])
	}
	if decl.Name != "x" {
		t.Errorf("expected name 'x', got %q", decl.Name)
	}

	bin, ok := decl.Initializer.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected *ast.BinOp initializer, got %T", decl.Initializer)
	}
	if bin.Op != "+" {
		t.Errorf("expected top-level '+' (lower precedence than '*'), got %q", bin.Op)
	}
}

func TestParsePowerIsRightAssociative(t *testing.T) {
	program, err := Parse("test.sm", `var x = 2 ^ 3 ^ 2;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	decl := program.Statements[0].(*ast.VarDeclaration)
	top := decl.Initializer.(*ast.BinOp)
	if top.Op != "^" {
		t.Fatalf("expected '^' at top, got %q", top.Op)
	}
	if _, ok := top.Right.(*ast.BinOp); !ok {
		t.Fatalf("expected right-associative nesting, right operand was %T", top.Right)
	}
	if _, ok := top.Left.(*ast.IntLiteral); !ok {
		t.Fatalf("expected left operand to be a bare literal, got %T", top.Left)
	}
}

func TestParseIfElseIfElse(t *testing.T) {
	input := `
		if (x < 1) {
			y = 1;
		} else if (x < 2) {
			y = 2;
		} else {
			y = 3;
		}
	`
	program, err := Parse("test.sm", input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	ifNode, ok := program.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("expected *ast.If, got %T", program.Statements[0])
	}
	if len(ifNode.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(ifNode.Cases))
	}
	if ifNode.Else == nil {
		t.Fatal("expected an else block")
	}
}

func TestParseFunctionDefAndCallChain(t *testing.T) {
	input := `
		fn add(a, b) {
			return a + b;
		}
		var result = add(1, 2).toString();
	`
	program, err := Parse("test.sm", input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}

	fn, ok := program.Statements[0].(*ast.FunctionDef)
	if !ok {
		t.Fatalf("expected *ast.FunctionDef, got %T", program.Statements[0])
	}
	if fn.Name != "add" || len(fn.ParamNames) != 2 {
		t.Errorf("unexpected function signature: %+v", fn)
	}

	decl := program.Statements[1].(*ast.VarDeclaration)
	call, ok := decl.Initializer.(*ast.FunctionCall)
	if !ok {
		t.Fatalf("expected outer *ast.FunctionCall for the trailing '()', got %T", decl.Initializer)
	}
	access, ok := call.Callee.(*ast.AttributeAccess)
	if !ok {
		t.Fatalf("expected *ast.AttributeAccess callee, got %T", call.Callee)
	}
	if access.Field != "toString" {
		t.Errorf("expected field 'toString', got %q", access.Field)
	}
	if _, ok := access.Target.(*ast.FunctionCall); !ok {
		t.Errorf("expected call chain target to be *ast.FunctionCall, got %T", access.Target)
	}
}

func TestParseNewExpressionDiscardsConstructorArgs(t *testing.T) {
	program, err := Parse("test.sm", `var p = new Point(1, 2);`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	decl := program.Statements[0].(*ast.VarDeclaration)
	ctor, ok := decl.Initializer.(*ast.ConstructorCall)
	if !ok {
		t.Fatalf("expected *ast.ConstructorCall, got %T", decl.Initializer)
	}
	ref, ok := ctor.Expression.(*ast.VarAccess)
	if !ok {
		t.Fatalf("expected *ast.VarAccess, got %T", ctor.Expression)
	}
	if ref.Name != "Point" {
		t.Errorf("expected type name 'Point', got %q", ref.Name)
	}
}

func TestParseAttributeAssignTerminatesChain(t *testing.T) {
	program, err := Parse("test.sm", `p.x = 5;`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	assign, ok := program.Statements[0].(*ast.AttributeAssign)
	if !ok {
		t.Fatalf("expected *ast.AttributeAssign, got %T", program.Statements[0])
	}
	if assign.Target.Field != "x" {
		t.Errorf("expected field 'x', got %q", assign.Target.Field)
	}
}

func TestParseOptionalSemicolonAfterBlockLikeStatements(t *testing.T) {
	input := `
		if (true) {
			x = 1;
		}
		var y = 2;
	`
	program, err := Parse("test.sm", input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(program.Statements) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(program.Statements))
	}
}

func TestParseMissingSemicolonIsParseError(t *testing.T) {
	_, err := Parse("test.sm", `var x = 1
	var y = 2;`)
	if err == nil {
		t.Fatal("expected a parse error for missing ';' after non-block-like statement")
	}
}

func TestParseTypeDefRejectsIllegalMember(t *testing.T) {
	_, err := Parse("test.sm", `
		type Point {
			if (true) {}
		}
	`)
	if err == nil {
		t.Fatal("expected a parse error for an illegal type member")
	}
}

func TestParsePrintRoundTrip(t *testing.T) {
	input := `var x = (1 + 2) * 3;`
	program, err := Parse("test.sm", input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	printed := ast.Print(program)

	reparsed, err := Parse("test.sm", printed)
	if err != nil {
		t.Fatalf("re-parse of printed output failed: %v\nprinted:\n%s", err, printed)
	}
	if ast.Print(reparsed) != printed {
		t.Errorf("printing is not idempotent:\nfirst:  %s\nsecond: %s", printed, ast.Print(reparsed))
	}
}
