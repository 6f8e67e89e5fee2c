package internal

import "testing"

func resolveSource(t *testing.T, source string) *interpreterState {
	t.Helper()
	state := parseSource(source)
	if !state.Valid() {
		t.Fatalf("unexpected parse diagnostics: %v", state.errors)
	}
	root := make(scope)
	root["str"] = true
	newResolver(state, root).resolve()
	return state
}

func TestResolveBlockDepths(t *testing.T) {
	state := resolveSource(t, "let a = 1; { let b = 2; { print a + b; } }")
	if !state.Valid() {
		t.Fatalf("unexpected diagnostics: %v", state.errors)
	}
	outer := state.stmts[1].(*blockStmt)
	inner := outer.stmts[1].(*blockStmt)
	sum := inner.stmts[0].(*printStmt).expression.(*binaryExpr)
	if depth := sum.left.(*variableExpr).depth; depth != 2 {
		t.Errorf("a should be 2 scopes up, got %d", depth)
	}
	if depth := sum.right.(*variableExpr).depth; depth != 1 {
		t.Errorf("b should be 1 scope up, got %d", depth)
	}
}

func TestResolveFunctionDepths(t *testing.T) {
	state := resolveSource(t, "let g = 1; fun f(x) { x = g; return str(x); }")
	if !state.Valid() {
		t.Fatalf("unexpected diagnostics: %v", state.errors)
	}
	fn := state.stmts[1].(*exprStmt).expression.(*functionExpr)
	assign := fn.body[0].(*exprStmt).expression.(*assignExpr)
	if assign.depth != 0 {
		t.Errorf("parameter should live in the function scope, got %d", assign.depth)
	}
	if depth := assign.value.(*variableExpr).depth; depth != 1 {
		t.Errorf("global should be 1 scope up, got %d", depth)
	}
	call := fn.body[1].(*returnStmt).value.(*callExpr)
	if depth := call.callee.(*variableExpr).depth; depth != 1 {
		t.Errorf("native should resolve to the root scope, got %d", depth)
	}
}

func TestResolveClassDepths(t *testing.T) {
	state := resolveSource(t, "class A { m() { return this; } } class B extends A { m() { return super.m; } }")
	if !state.Valid() {
		t.Fatalf("unexpected diagnostics: %v", state.errors)
	}
	a := state.stmts[0].(*classStmt)
	this := a.methods[0].body[0].(*returnStmt).value.(*thisExpr)
	if this.depth != 1 {
		t.Errorf("this should be 1 scope above the method body, got %d", this.depth)
	}
	b := state.stmts[1].(*classStmt)
	super := b.methods[0].body[0].(*returnStmt).value.(*superExpr)
	if super.depth != 2 {
		t.Errorf("super should be 2 scopes above the method body, got %d", super.depth)
	}
	if b.superclass.depth != 0 {
		t.Errorf("superclass should resolve in the root scope, got %d", b.superclass.depth)
	}
}

func TestResolveForLoopDepths(t *testing.T) {
	state := resolveSource(t, "for (let i = 0; i < 3; i = i + 1) { print i; }")
	if !state.Valid() {
		t.Fatalf("unexpected diagnostics: %v", state.errors)
	}
	loop := state.stmts[0].(*blockStmt).stmts[1].(*forStmt)
	if depth := loop.condition.(*binaryExpr).left.(*variableExpr).depth; depth != 0 {
		t.Errorf("condition sees the initializer scope, got %d", depth)
	}
	body := loop.body.(*blockStmt)
	if depth := body.stmts[0].(*printStmt).expression.(*variableExpr).depth; depth != 1 {
		t.Errorf("body is one scope inside the initializer, got %d", depth)
	}
}

func TestResolveErrors(t *testing.T) {
	checkErrorMsg(t, "print y;", StageResolve, "Undeclared identifier `y`")
	checkErrorMsg(t, "y = 1;", StageResolve, "Undeclared identifier `y`")
	checkErrorMsg(t, "let a = a;", StageResolve, "Undeclared identifier `a`")
	checkErrorMsg(t, "const x = 1; x = 2;", StageResolve, "Cannot assign to a const `x`")
	checkErrorMsg(t, "fun f() {} f = 1;", StageResolve, "Cannot assign to a const `f`")
	checkErrorMsg(t, "class A {} A = 1;", StageResolve, "Cannot assign to a const `A`")
	checkErrorMsg(t, "class A extends A {}", StageResolve, "A class cannot inherit from itself")
	checkErrorMsg(t, "print this;", StageResolve, "Cannot use `this` outside of a method")
	checkErrorMsg(t, "fun f() { return super.x; }", StageResolve, "Cannot use `super` outside of a method")
	checkErrorMsg(t, "class A { m() { return super.m(); } }", StageResolve, "Cannot use `super` in a class with no superclass")
	checkErrorMsg(t, "fun f() { return g(); } fun g() { return 1; }", StageResolve, "Undeclared identifier `g`")
	checkErrorMsg(t, "{ let a = 1; } print a;", StageResolve, "Undeclared identifier `a`")
}

func TestResolveCollectsAllErrors(t *testing.T) {
	state := resolveSource(t, "print a; print b; const c = 1; c = 2;")
	if len(state.errors) != 3 {
		t.Errorf("expected three diagnostics, got %v", state.errors)
	}
}

func TestResolveBlocksExecution(t *testing.T) {
	tp := &testPrinter{}
	errs := RunSourceWithPrinter("print 1; print nope;", tp)
	if len(errs) != 1 || errs[0].Stage != StageResolve {
		t.Fatalf("expected a resolve diagnostic, got %v", errs)
	}
	if tp.printed != "" {
		t.Errorf("nothing should run after a resolve diagnostic, printed %q", tp.printed)
	}
}
