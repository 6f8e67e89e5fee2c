package internal

import (
	"fmt"
	"strings"
)

// R generic type
type R interface{}

// stringVisitor renders statements and expressions as S-expressions
type stringVisitor struct{}

func (v stringVisitor) stmt(s stmt) string {
	if s == nil {
		return "()"
	}
	out, _ := s.accept(v)
	return out.(string)
}

func (v stringVisitor) expr(e expr) string {
	if e == nil {
		return "nil"
	}
	out, _ := e.accept(v)
	return out.(string)
}

func (v stringVisitor) stmts(stmts []stmt) string {
	out := ""
	for _, s := range stmts {
		out += " " + v.stmt(s)
	}
	return out
}

func (v stringVisitor) visitExprStmt(stmt *exprStmt) (R, error) {
	return v.expr(stmt.expression), nil
}

func (v stringVisitor) visitPrintStmt(stmt *printStmt) (R, error) {
	return fmt.Sprintf("(print %s)", v.expr(stmt.expression)), nil
}

func (v stringVisitor) visitLetStmt(stmt *letStmt) (R, error) {
	keyword := "const"
	if stmt.mutable {
		keyword = "let"
	}
	return fmt.Sprintf("(%s %s %s)", keyword, stmt.name.lexeme, v.expr(stmt.initializer)), nil
}

func (v stringVisitor) visitBlockStmt(stmt *blockStmt) (R, error) {
	return "(scope" + v.stmts(stmt.stmts) + ")", nil
}

func (v stringVisitor) visitIfStmt(stmt *ifStmt) (R, error) {
	out := fmt.Sprintf("(if %s %s", v.expr(stmt.condition), v.stmt(stmt.thenBranch))
	if stmt.elseBranch != nil {
		out += " " + v.stmt(stmt.elseBranch)
	}
	return out + ")", nil
}

func (v stringVisitor) visitForStmt(stmt *forStmt) (R, error) {
	return fmt.Sprintf(
		"(for %s %s %s)",
		v.expr(stmt.condition),
		v.stmt(stmt.closer),
		v.stmt(stmt.body),
	), nil
}

func (v stringVisitor) visitReturnStmt(stmt *returnStmt) (R, error) {
	if stmt.value == nil {
		return "(return)", nil
	}
	return fmt.Sprintf("(return %s)", v.expr(stmt.value)), nil
}

func (v stringVisitor) visitBreakStmt(stmt *breakStmt) (R, error) {
	return "(break)", nil
}

func (v stringVisitor) visitContinueStmt(stmt *continueStmt) (R, error) {
	return "(continue)", nil
}

func (v stringVisitor) visitClassStmt(stmt *classStmt) (R, error) {
	out := "(class " + stmt.name.lexeme
	if stmt.superclass != nil {
		out += " < " + stmt.superclass.name.lexeme
	}
	for _, method := range stmt.methods {
		out += " " + v.expr(method)
	}
	return out + ")", nil
}

func (v stringVisitor) visitLiteralExpr(expr *literalExpr) (R, error) {
	switch value := expr.value.(type) {
	case loxString:
		return fmt.Sprintf("%q", string(value)), nil
	case loxChar:
		return fmt.Sprintf("'%c'", rune(value)), nil
	}
	return stringify(expr.value), nil
}

func (v stringVisitor) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return fmt.Sprintf("(group %s)", v.expr(expr.expression)), nil
}

func (v stringVisitor) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s)", expr.operator.lexeme, v.expr(expr.right)), nil
}

func (v stringVisitor) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right)), nil
}

func (v stringVisitor) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return fmt.Sprintf("(%s %s %s)", expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right)), nil
}

func (v stringVisitor) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}

func (v stringVisitor) visitAssignExpr(expr *assignExpr) (R, error) {
	return fmt.Sprintf("(= %s %s)", expr.name.lexeme, v.expr(expr.value)), nil
}

func (v stringVisitor) visitCallExpr(expr *callExpr) (R, error) {
	out := "(call " + v.expr(expr.callee)
	for _, arg := range expr.arguments {
		out += " " + v.expr(arg)
	}
	return out + ")", nil
}

func (v stringVisitor) visitFunctionExpr(expr *functionExpr) (R, error) {
	name := "anonymous"
	if expr.name != nil {
		name = expr.name.lexeme
	}
	params := make([]string, len(expr.params))
	for i, param := range expr.params {
		params[i] = param.lexeme
	}
	return fmt.Sprintf("(fn %s (%s)%s)", name, strings.Join(params, ", "), v.stmts(expr.body)), nil
}

func (v stringVisitor) visitGetExpr(expr *getExpr) (R, error) {
	if expr.key != nil {
		return fmt.Sprintf("(. %s (%s))", v.expr(expr.object), v.expr(expr.key)), nil
	}
	return fmt.Sprintf("(. %s %s)", v.expr(expr.object), expr.name.lexeme), nil
}

func (v stringVisitor) visitAccessExpr(expr *accessExpr) (R, error) {
	return fmt.Sprintf("([] %s %s)", v.expr(expr.object), v.expr(expr.index)), nil
}

func (v stringVisitor) visitSetExpr(expr *setExpr) (R, error) {
	return fmt.Sprintf("(= %s %s)", v.expr(expr.target), v.expr(expr.value)), nil
}

func (v stringVisitor) visitThisExpr(expr *thisExpr) (R, error) {
	return "this", nil
}

func (v stringVisitor) visitSuperExpr(expr *superExpr) (R, error) {
	return fmt.Sprintf("(super %s)", expr.method.lexeme), nil
}

func (v stringVisitor) visitObjectExpr(expr *objectExpr) (R, error) {
	out := "({}"
	for i, key := range expr.keys {
		out += fmt.Sprintf(" (%s %s)", key, v.expr(expr.values[i]))
	}
	return out + ")", nil
}

func (v stringVisitor) visitListExpr(expr *listExpr) (R, error) {
	out := "(list"
	for _, el := range expr.elements {
		out += " " + v.expr(el)
	}
	return out + ")", nil
}
