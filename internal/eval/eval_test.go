package eval_test

import (
	"strings"
	"testing"

	"github.com/jeje1197/spearmint/internal/builtins"
	"github.com/jeje1197/spearmint/internal/eval"
	"github.com/jeje1197/spearmint/internal/host"
	"github.com/jeje1197/spearmint/pkg/parser"
)

func runCapture(t *testing.T, src string) string {
	t.Helper()
	var out strings.Builder
	h := host.NewStdio(&out, strings.NewReader(""), func(int) {})
	e := eval.New(h, builtins.Register)

	program, err := parser.Parse("test.sm", src)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if _, err := e.Run(program); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func runExpectError(t *testing.T, src string) error {
	t.Helper()
	var out strings.Builder
	h := host.NewStdio(&out, strings.NewReader(""), func(int) {})
	e := eval.New(h, builtins.Register)

	program, err := parser.Parse("test.sm", src)
	if err != nil {
		return err
	}
	_, err = e.Run(program)
	return err
}

func TestPrintln(t *testing.T) {
	if got := runCapture(t, `println("hello");`); got != "hello\n" {
		t.Errorf("got %q", got)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	if got := runCapture(t, `var x = 1+2*3; println(x);`); got != "7\n" {
		t.Errorf("got %q", got)
	}
}

func TestForLoopStringConcat(t *testing.T) {
	src := `var s = ""; for(var i=0; i<3; i=i+1){ s = s+i; } println(s);`
	if got := runCapture(t, src); got != "012\n" {
		t.Errorf("got %q", got)
	}
}

func TestRecursiveFactorial(t *testing.T) {
	src := `fn fact(n){ if(n<=1){ return 1; } return n*fact(n-1); } println(fact(5));`
	if got := runCapture(t, src); got != "120\n" {
		t.Errorf("got %q", got)
	}
}

func TestStructureDefAndConstructor(t *testing.T) {
	src := `type P { var x = 0; var y = 0; } var p = new P(); p.x = 3; println(p.x);`
	if got := runCapture(t, src); got != "3\n" {
		t.Errorf("got %q", got)
	}
}

func TestListLiteralAndIndex(t *testing.T) {
	if got := runCapture(t, `var a = [10,20,30]; println(a[1]);`); got != "20\n" {
		t.Errorf("got %q", got)
	}
}

func TestDuplicateDeclarationIsNameError(t *testing.T) {
	err := runExpectError(t, `var x = 1; var x = 2;`)
	if err == nil || !strings.Contains(err.Error(), "already in scope") {
		t.Fatalf("expected NameError mentioning 'already in scope', got %v", err)
	}
}

func TestConstReassignmentIsNameError(t *testing.T) {
	err := runExpectError(t, `const var k = 1; k = 2;`)
	if err == nil || !strings.Contains(err.Error(), "const") {
		t.Fatalf("expected NameError mentioning const, got %v", err)
	}
}

func TestListIndexOutOfBoundsIsBoundsError(t *testing.T) {
	err := runExpectError(t, `var a = [1,2]; println(a[5]);`)
	if err == nil || !strings.Contains(err.Error(), "out of") {
		t.Fatalf("expected BoundsError, got %v", err)
	}
}

func TestAddIntAndStringCoerces(t *testing.T) {
	if got := runCapture(t, `println(1 + "x");`); got != "1x\n" {
		t.Errorf("got %q", got)
	}
}

func TestScopeIsolation(t *testing.T) {
	src := `var x = 1; if (true) { var x = 2; } println(x);`
	if got := runCapture(t, src); got != "1\n" {
		t.Errorf("expected outer x to be unaffected, got %q", got)
	}
}

func TestBreakOnlyAffectsNearestLoop(t *testing.T) {
	src := `
		var count = 0;
		while (count < 3) {
			if (count == 1) {
				break;
			}
			count = count + 1;
		}
		println(count);
	`
	if got := runCapture(t, src); got != "1\n" {
		t.Errorf("got %q", got)
	}
}

func TestReturnUnwindsOnlyEnclosingFunction(t *testing.T) {
	src := `
		fn f() {
			var i = 0;
			while (i < 5) {
				if (i == 2) {
					return i;
				}
				i = i + 1;
			}
			return -1;
		}
		println(f());
	`
	if got := runCapture(t, src); got != "2\n" {
		t.Errorf("got %q", got)
	}
}

func TestCallerScopedClosures(t *testing.T) {
	// The source's caller-scoped environment model means a function does
	// NOT see variables from its definition scope, only globals and
	// whatever the caller's own scope happens to contain.
	src := `
		var shared = "outer";
		fn show() {
			println(shared);
		}
		fn wrapper() {
			var shared = "inner";
			show();
		}
		wrapper();
	`
	if got := runCapture(t, src); got != "inner\n" {
		t.Errorf("expected caller-scoped capture to see 'inner', got %q", got)
	}
}

func TestNonShortCircuitAndEvaluatesBothSides(t *testing.T) {
	src := `
		var calls = "";
		fn sideEffect() {
			calls = calls + "x";
			return false;
		}
		var r = sideEffect() && sideEffect();
		println(calls);
	`
	if got := runCapture(t, src); got != "xx\n" {
		t.Errorf("expected both operands evaluated ('xx'), got %q", got)
	}
}
