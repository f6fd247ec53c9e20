package imports

import "testing"

func TestDetectSingleImport(t *testing.T) {
	d, err := Detect(`import "math"; var x = 1;`)
	if err != nil {
		t.Fatalf("Detect failed: %v", err)
	}
	if d.ModuleName != "math" {
		t.Errorf("expected module name 'math', got %q", d.ModuleName)
	}
}

func TestDetectNoImport(t *testing.T) {
	if _, err := Detect(`var x = 1;`); err == nil {
		t.Fatal("expected an error when no import directive is present")
	}
}

func TestDetectAllPreservesOrder(t *testing.T) {
	src := `
		import "alpha";
		import "beta";
		var x = 1;
		import "gamma";
	`
	directives, err := DetectAll(src)
	if err != nil {
		t.Fatalf("DetectAll failed: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(directives) != len(want) {
		t.Fatalf("expected %d directives, got %d", len(want), len(directives))
	}
	for i, d := range directives {
		if d.ModuleName != want[i] {
			t.Errorf("directive %d: expected %q, got %q", i, want[i], d.ModuleName)
		}
	}
}

func TestModuleNamesDropsDuplicates(t *testing.T) {
	src := `import "alpha"; import "alpha"; import "beta";`
	names := ModuleNames(src)
	if len(names) != 2 {
		t.Fatalf("expected 2 unique names, got %d (%v)", len(names), names)
	}
}

func TestModuleNamesNilOnNoMatch(t *testing.T) {
	if names := ModuleNames(`var x = 1;`); names != nil {
		t.Errorf("expected nil, got %v", names)
	}
}
