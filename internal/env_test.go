package internal

import "testing"

func TestEnvLookupByDistance(t *testing.T) {
	root := newEnv(nil)
	root.define("a", true, loxNumber(1))
	child := newEnv(root)
	child.define("a", false, loxString("shadow"))
	grandchild := newEnv(child)

	if v := grandchild.getAt(1, "a"); v != loxString("shadow") {
		t.Errorf("expected the shadowing binding, got %v", v)
	}
	if v := grandchild.getAt(2, "a"); v != loxNumber(1) {
		t.Errorf("expected the root binding, got %v", v)
	}
}

func TestEnvAssign(t *testing.T) {
	root := newEnv(nil)
	root.define("a", true, loxNumber(1))
	root.define("c", false, loxNumber(1))
	child := newEnv(root)

	name := &token{token: tkIdentifier, lexeme: "a", offset: 4, length: 1}
	if err := child.assignAt(1, name, loxNumber(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := root.getAt(0, "a"); v != loxNumber(2) {
		t.Errorf("assignment should be visible through the shared scope, got %v", v)
	}

	name = &token{token: tkIdentifier, lexeme: "c", offset: 4, length: 1}
	err := child.assignAt(1, name, loxNumber(2))
	if err == nil {
		t.Fatal("assigning a const should fail")
	}
	if d := err.(*Diagnostic); d.Message != "Cannot reassign a const number `c`" || d.Offset != 4 {
		t.Errorf("unexpected diagnostic %+v", *d)
	}
	if v := root.getAt(0, "c"); v != loxNumber(1) {
		t.Errorf("const should keep its value, got %v", v)
	}
}

func TestEnvMissingBindingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("a miss on a resolved lookup should panic")
		}
	}()
	newEnv(newEnv(nil)).getAt(1, "nope")
}
