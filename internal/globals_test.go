package internal

import (
	"strings"
	"testing"
)

func TestGlobals(t *testing.T) {
	t.Run("str", func(t *testing.T) {
		checkExpression(t, `str(1.5) + "x"`, "1.5x")
		checkExpression(t, `str([1, 'a'])`, "[ 1, a ]")
		checkExpression(t, `str("s") == "s"`, "true")
	})

	t.Run("typeof", func(t *testing.T) {
		checkExpression(t, "typeof(1)", "number")
		checkExpression(t, `typeof("s")`, "string")
		checkExpression(t, "typeof('c')", "char")
		checkExpression(t, "typeof(nil)", "nil")
		checkExpression(t, "typeof(true)", "boolean")
		checkExpression(t, "typeof([])", "list")
		checkExpression(t, "typeof({})", "class instance")
		checkExpression(t, "typeof(str)", "function")
		checkExpression(t, "typeof(fun () {})", "function")
		checkStatements(t, "class A {} let t = typeof(A);", "t", "class")
	})

	t.Run("number", func(t *testing.T) {
		checkExpression(t, `number("42")`, "42")
		checkExpression(t, `number(" 2.5 ")`, "2.5")
		checkExpression(t, `number("abc")`, "NaN")
		checkExpression(t, "number('7')", "7")
		checkExpression(t, "number('x')", "NaN")
		checkExpression(t, "number(3)", "3")
		checkErrorMsg(t, "number(nil);", StageRuntime, "Can't parse nil to number")
	})

	t.Run("len", func(t *testing.T) {
		checkExpression(t, `len("héllo")`, "5")
		checkExpression(t, "len([1, 2])", "2")
		checkExpression(t, "len([])", "0")
		checkErrorMsg(t, "len(1);", StageRuntime, "Can't get length of number")
	})

	t.Run("expand", func(t *testing.T) {
		checkExpression(t, `expand("ab")`, "[ a, b ]")
		checkExpression(t, "expand({ a: 1, b: 2 })", "[ a, b ]")
		checkErrorMsg(t, "expand(1);", StageRuntime, "Can't use expand on number")
	})

	t.Run("push and extend", func(t *testing.T) {
		checkExpression(t, "push([1], 2)", "[ 1, 2 ]")
		checkStatements(t, "let a = [1]; extend(a, [2, 3]);", "a", "[ 1, 2, 3 ]")
		checkStatements(t, "let a = [1, 2]; extend(a, a);", "a", "[ 1, 2, 1, 2 ]")
		checkErrorMsg(t, "push(1, 2);", StageRuntime, "Expected a list as argument 1, got number")
		checkErrorMsg(t, "extend([], nil);", StageRuntime, "Expected a list as argument 2, got nil")
	})

	t.Run("from_chars", func(t *testing.T) {
		checkExpression(t, `from_chars(expand("abc"))`, "abc")
		checkExpression(t, "from_chars([])", "")
		checkErrorMsg(t, "from_chars([1]);", StageRuntime, "Cannot convert from number to char")
	})

	t.Run("deep_copy", func(t *testing.T) {
		checkStatements(t, "let a = [[1]]; let b = deep_copy(a); push(b[0], 2);", "len(a[0])", "1")
		checkOutput(t, `
			class P { constructor() { this.v = [1]; } }
			let p = P();
			let q = deep_copy(p);
			push(q.v, 2);
			print len(p.v);
			print q;
			print q == p;
			`, "1", "instance of class P", "false")
		checkExpression(t, "deep_copy(1)", "1")
	})

	t.Run("math", func(t *testing.T) {
		checkExpression(t, "is_nan(0 / 0)", "true")
		checkExpression(t, "is_nan(1)", "false")
		checkExpression(t, "floor(1.7)", "1")
		checkExpression(t, "floor(-1.5)", "-2")
		checkExpression(t, "ceil(1.2)", "2")
		checkErrorMsg(t, `floor("1");`, StageRuntime, "Cannot use floor on string")
		checkErrorMsg(t, "is_nan(nil);", StageRuntime, "Cannot use is_nan on nil")
	})

	t.Run("has", func(t *testing.T) {
		checkExpression(t, `has({ a: 1 }, "a")`, "true")
		checkExpression(t, `has({ a: 1 }, "b")`, "false")
		checkExpression(t, "has([1, 2], 2)", "true")
		checkExpression(t, `has([1, 2], "2")`, "false")
		checkExpression(t, `has("hello", "ell")`, "true")
		checkExpression(t, "has(\"hello\", 'z')", "false")
		checkErrorMsg(t, "has(1, 2);", StageRuntime, "Cannot use has with number and number")
	})

	t.Run("unset", func(t *testing.T) {
		checkOutput(t, `let o = { a: 1, b: 2 }; print unset(o, "a"); print o; print unset(o, "z");`, "1", "{ b: 2 }", "nil")
		checkErrorMsg(t, "unset([], 1);", StageRuntime, "Cannot use unset with list and number")
	})

	t.Run("read", func(t *testing.T) {
		tp := &testPrinter{}
		i := NewInterpreter(tp, WithInput(strings.NewReader("first\nsecond")))
		if errs := i.Run(`let a = read("> "); let b = read(nil); let c = read(nil); print len(a); print b; print len(c);`); len(errs) > 0 {
			t.Fatalf("unexpected diagnostics: %v", errs)
		}
		if !tp.Equals("> 6\nsecond\n0") {
			t.Errorf("unexpected output %q", tp.printed)
		}
	})

	t.Run("natives are mutable bindings", func(t *testing.T) {
		checkStatements(t, "str = 1;", "str", "1")
	})

	t.Run("arity is checked before the call", func(t *testing.T) {
		checkErrorMsg(t, "len();", StageRuntime, "Not enough arguments (expected 1, got 0)")
		checkErrorMsg(t, "push([], 1, 2);", StageRuntime, "Too many arguments (expected 2, got 3)")
	})
}
