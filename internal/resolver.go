package internal

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

type classType int

const (
	classNone classType = iota
	classPlain
	classSubclass
)

// scope maps a declared name to whether it can be reassigned
type scope map[string]bool

// resolver computes, for every identifier, this, and super, how many
// scopes separate the use from its declaration. Scopes are pushed exactly
// where the evaluator forks environments.
type resolver struct {
	scopes       *arraystack.Stack
	currentClass classType

	state *interpreterState
}

func newResolver(state *interpreterState, root scope) *resolver {
	scopes := arraystack.New()
	scopes.Push(root)
	return &resolver{
		scopes: scopes,
		state:  state,
	}
}

func (r *resolver) resolve() {
	r.resolveStmts(r.state.stmts)
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	if s != nil {
		s.accept(r)
	}
}

func (r *resolver) resolveExpr(e expr) {
	if e != nil {
		e.accept(r)
	}
}

func (r *resolver) beginScope() {
	r.scopes.Push(make(scope))
}

func (r *resolver) endScope() {
	r.scopes.Pop()
}

func (r *resolver) declare(name string, mutable bool) {
	top, _ := r.scopes.Peek()
	top.(scope)[name] = mutable
}

// lookup returns the hop count to the innermost scope declaring name
func (r *resolver) lookup(name string) (depth int, mutable bool, ok bool) {
	it := r.scopes.Iterator()
	for it.Next() {
		if mutable, ok := it.Value().(scope)[name]; ok {
			return it.Index(), mutable, true
		}
	}
	return unresolved, false, false
}

func (r *resolver) visitExprStmt(stmt *exprStmt) (R, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *resolver) visitPrintStmt(stmt *printStmt) (R, error) {
	r.resolveExpr(stmt.expression)
	return nil, nil
}

func (r *resolver) visitLetStmt(stmt *letStmt) (R, error) {
	r.resolveExpr(stmt.initializer)
	r.declare(stmt.name.lexeme, stmt.mutable)
	return nil, nil
}

func (r *resolver) visitBlockStmt(stmt *blockStmt) (R, error) {
	r.beginScope()
	r.resolveStmts(stmt.stmts)
	r.endScope()
	return nil, nil
}

func (r *resolver) visitIfStmt(stmt *ifStmt) (R, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.thenBranch)
	r.resolveStmt(stmt.elseBranch)
	return nil, nil
}

func (r *resolver) visitForStmt(stmt *forStmt) (R, error) {
	r.resolveExpr(stmt.condition)
	r.resolveStmt(stmt.body)
	r.resolveStmt(stmt.closer)
	return nil, nil
}

func (r *resolver) visitReturnStmt(stmt *returnStmt) (R, error) {
	r.resolveExpr(stmt.value)
	return nil, nil
}

func (r *resolver) visitBreakStmt(stmt *breakStmt) (R, error) {
	return nil, nil
}

func (r *resolver) visitContinueStmt(stmt *continueStmt) (R, error) {
	return nil, nil
}

func (r *resolver) visitClassStmt(stmt *classStmt) (R, error) {
	enclosingClass := r.currentClass
	r.currentClass = classPlain
	defer func() { r.currentClass = enclosingClass }()

	r.declare(stmt.name.lexeme, false)

	if stmt.superclass != nil {
		if stmt.superclass.name.lexeme == stmt.name.lexeme {
			r.state.setError(StageResolve, stmt.superclass.name, "A class cannot inherit from itself")
		}
		r.currentClass = classSubclass
		r.resolveExpr(stmt.superclass)

		r.beginScope()
		r.declare("super", false)
		defer r.endScope()
	}

	r.beginScope()
	r.declare("this", false)
	for _, method := range stmt.methods {
		r.resolveFunction(method)
	}
	r.endScope()

	return nil, nil
}

func (r *resolver) resolveFunction(fn *functionExpr) {
	r.beginScope()
	for _, param := range fn.params {
		r.declare(param.lexeme, true)
	}
	r.resolveStmts(fn.body)
	r.endScope()
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) (R, error) {
	return nil, nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) (R, error) {
	r.resolveExpr(expr.expression)
	return nil, nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) (R, error) {
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) (R, error) {
	depth, _, ok := r.lookup(expr.name.lexeme)
	if !ok {
		r.state.setError(StageResolve, expr.name, "Undeclared identifier `%s`", expr.name.lexeme)
		return nil, nil
	}
	expr.depth = depth
	return nil, nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) (R, error) {
	r.resolveExpr(expr.value)
	depth, mutable, ok := r.lookup(expr.name.lexeme)
	if !ok {
		r.state.setError(StageResolve, expr.name, "Undeclared identifier `%s`", expr.name.lexeme)
		return nil, nil
	}
	if !mutable {
		r.state.setError(StageResolve, expr.name, "Cannot assign to a const `%s`", expr.name.lexeme)
		return nil, nil
	}
	expr.depth = depth
	return nil, nil
}

func (r *resolver) visitCallExpr(expr *callExpr) (R, error) {
	r.resolveExpr(expr.callee)
	for _, arg := range expr.arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *resolver) visitFunctionExpr(expr *functionExpr) (R, error) {
	if expr.name != nil {
		r.declare(expr.name.lexeme, false)
	}
	r.resolveFunction(expr)
	return nil, nil
}

func (r *resolver) visitGetExpr(expr *getExpr) (R, error) {
	r.resolveExpr(expr.object)
	r.resolveExpr(expr.key)
	return nil, nil
}

func (r *resolver) visitAccessExpr(expr *accessExpr) (R, error) {
	r.resolveExpr(expr.object)
	r.resolveExpr(expr.index)
	return nil, nil
}

func (r *resolver) visitSetExpr(expr *setExpr) (R, error) {
	r.resolveExpr(expr.value)
	r.resolveExpr(expr.target)
	return nil, nil
}

func (r *resolver) visitThisExpr(expr *thisExpr) (R, error) {
	if r.currentClass == classNone {
		r.state.setError(StageResolve, expr.keyword, "Cannot use `this` outside of a method")
		return nil, nil
	}
	expr.depth, _, _ = r.lookup("this")
	return nil, nil
}

func (r *resolver) visitSuperExpr(expr *superExpr) (R, error) {
	switch r.currentClass {
	case classNone:
		r.state.setError(StageResolve, expr.keyword, "Cannot use `super` outside of a method")
		return nil, nil
	case classPlain:
		r.state.setError(StageResolve, expr.keyword, "Cannot use `super` in a class with no superclass")
		return nil, nil
	}
	expr.depth, _, _ = r.lookup("super")
	return nil, nil
}

func (r *resolver) visitObjectExpr(expr *objectExpr) (R, error) {
	for _, value := range expr.values {
		r.resolveExpr(value)
	}
	return nil, nil
}

func (r *resolver) visitListExpr(expr *listExpr) (R, error) {
	for _, el := range expr.elements {
		r.resolveExpr(el)
	}
	return nil, nil
}
