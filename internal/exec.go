package internal

import (
	"bufio"
	"math"
)

// DefaultMaxCallDepth bounds guest recursion unless WithMaxCallDepth says otherwise
const DefaultMaxCallDepth = 10000

type resultKind int

const (
	resultNormal resultKind = iota
	resultReturn
	resultBreak
	resultContinue
)

// stmtResult tells the enclosing statement how control left a statement
type stmtResult struct {
	kind    resultKind
	keyword *token
	value   interface{}
}

var normal = stmtResult{kind: resultNormal}

type exec struct {
	globals *env
	env     *env

	printer      IPrinter
	input        *bufio.Reader
	maxCallDepth int
	callDepth    int
}

func (e *exec) interpret(stmts []stmt) error {
	e.env = e.globals
	for _, s := range stmts {
		result, err := e.execute(s)
		if err != nil {
			return err
		}
		switch result.kind {
		case resultBreak:
			return runtimeErr(result.keyword, "Cannot use `break` outside of a loop")
		case resultContinue:
			return runtimeErr(result.keyword, "Cannot use `continue` outside of a loop")
		case resultReturn:
			return runtimeErr(result.keyword, "Cannot use `return` outside of a function")
		}
	}
	return nil
}

func (e *exec) execute(s stmt) (stmtResult, error) {
	if s == nil {
		return normal, nil
	}
	result, err := s.accept(e)
	if err != nil {
		return normal, err
	}
	return result.(stmtResult), nil
}

func (e *exec) evaluate(ex expr) (interface{}, error) {
	return ex.accept(e)
}

func (e *exec) executeBlock(stmts []stmt, scope *env) (stmtResult, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = scope
	for _, s := range stmts {
		result, err := e.execute(s)
		if err != nil || result.kind != resultNormal {
			return result, err
		}
	}
	return normal, nil
}

func (e *exec) visitExprStmt(stmt *exprStmt) (R, error) {
	if _, err := e.evaluate(stmt.expression); err != nil {
		return nil, err
	}
	return normal, nil
}

func (e *exec) visitPrintStmt(stmt *printStmt) (R, error) {
	value, err := e.evaluate(stmt.expression)
	if err != nil {
		return nil, err
	}
	e.printer.Println(stringify(value))
	return normal, nil
}

func (e *exec) visitLetStmt(stmt *letStmt) (R, error) {
	var value interface{}
	if stmt.initializer != nil {
		var err error
		if value, err = e.evaluate(stmt.initializer); err != nil {
			return nil, err
		}
	}
	e.env.define(stmt.name.lexeme, stmt.mutable, value)
	return normal, nil
}

func (e *exec) visitBlockStmt(stmt *blockStmt) (R, error) {
	return e.executeBlock(stmt.stmts, newEnv(e.env))
}

func (e *exec) visitIfStmt(stmt *ifStmt) (R, error) {
	condition, err := e.evaluate(stmt.condition)
	if err != nil {
		return nil, err
	}
	if isTrue(condition) {
		return e.execute(stmt.thenBranch)
	}
	return e.execute(stmt.elseBranch)
}

func (e *exec) visitForStmt(stmt *forStmt) (R, error) {
	for {
		if stmt.condition != nil {
			condition, err := e.evaluate(stmt.condition)
			if err != nil {
				return nil, err
			}
			if !isTrue(condition) {
				break
			}
		}

		result, err := e.execute(stmt.body)
		if err != nil {
			return nil, err
		}
		switch result.kind {
		case resultBreak:
			return normal, nil
		case resultReturn:
			return result, nil
		}

		if _, err := e.execute(stmt.closer); err != nil {
			return nil, err
		}
	}
	return normal, nil
}

func (e *exec) visitReturnStmt(stmt *returnStmt) (R, error) {
	var value interface{}
	if stmt.value != nil {
		var err error
		if value, err = e.evaluate(stmt.value); err != nil {
			return nil, err
		}
	}
	return stmtResult{kind: resultReturn, keyword: stmt.keyword, value: value}, nil
}

func (e *exec) visitBreakStmt(stmt *breakStmt) (R, error) {
	return stmtResult{kind: resultBreak, keyword: stmt.keyword}, nil
}

func (e *exec) visitContinueStmt(stmt *continueStmt) (R, error) {
	return stmtResult{kind: resultContinue, keyword: stmt.keyword}, nil
}

func (e *exec) visitClassStmt(stmt *classStmt) (R, error) {
	class := &loxClass{
		name:    stmt.name.lexeme,
		methods: make(map[string]*loxFunction),
	}

	closure := e.env
	if stmt.superclass != nil {
		value, err := e.evaluate(stmt.superclass)
		if err != nil {
			return nil, err
		}
		superclass, ok := value.(*loxClass)
		if !ok {
			return nil, runtimeErr(stmt.superclass.name, "Cannot inherit from %s", typeName(value))
		}
		class.superclass = superclass
		closure = newEnv(e.env)
		closure.define("super", false, superclass)
	}

	for _, method := range stmt.methods {
		fn := &loxFunction{
			declaration: method,
			closure:     closure,
		}
		if method.name.lexeme == constructorName {
			class.constructor = fn
		} else {
			class.methods[method.name.lexeme] = fn
		}
	}

	e.env.define(stmt.name.lexeme, false, class)
	return normal, nil
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	switch expr.operator.token {
	case tkMinus:
		if n, ok := right.(loxNumber); ok {
			return -n, nil
		}
	case tkBang:
		if b, ok := right.(loxBool); ok {
			return !b, nil
		}
	}
	return nil, runtimeErr(expr.operator, "Cannot use `%s` on %s", expr.operator.lexeme, typeName(right))
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}

	switch expr.operator.token {
	case tkEqualEqual:
		return loxBool(equal(left, right)), nil
	case tkBangEqual:
		return loxBool(!equal(left, right)), nil
	}

	if l, ok := left.(loxNumber); ok {
		if r, ok := right.(loxNumber); ok {
			return numberOperation(expr.operator.token, l, r), nil
		}
	}

	if l, ok := left.(loxString); ok {
		if r, ok := right.(loxString); ok {
			if expr.operator.token == tkPlus {
				return l + r, nil
			}
			return nil, runtimeErr(expr.operator, "You cannot use `%s` on two strings. Did you mean `+`?", expr.operator.lexeme)
		}
	}

	return nil, runtimeErr(
		expr.operator,
		"Cannot use `%s` on %s and %s",
		expr.operator.lexeme,
		typeName(left),
		typeName(right),
	)
}

func numberOperation(op tokenType, l, r loxNumber) interface{} {
	switch op {
	case tkPlus:
		return l + r
	case tkMinus:
		return l - r
	case tkStar:
		return l * r
	case tkSlash:
		return l / r
	case tkMod:
		return loxNumber(math.Mod(float64(l), float64(r)))
	case tkGreater:
		return loxBool(l > r)
	case tkGreaterEqual:
		return loxBool(l >= r)
	case tkLess:
		return loxBool(l < r)
	case tkLessEqual:
		return loxBool(l <= r)
	}
	panic("unknown binary operator " + op.String())
}

func (e *exec) visitLogicalExpr(expr *logicalExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	if expr.operator.token == tkOr {
		if isTrue(left) {
			return left, nil
		}
	} else if !isTrue(left) {
		return left, nil
	}
	return e.evaluate(expr.right)
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	return e.env.getAt(expr.depth, expr.name.lexeme), nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	value, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if err := e.env.assignAt(expr.depth, expr.name, value); err != nil {
		return nil, err
	}
	return value, nil
}

func (e *exec) visitCallExpr(expr *callExpr) (R, error) {
	callee, err := e.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	fn, ok := callee.(callable)
	if !ok {
		return nil, runtimeErr(expr.paren, "Cannot call %s", typeName(callee))
	}

	arguments := make([]interface{}, len(expr.arguments))
	for i, arg := range expr.arguments {
		if arguments[i], err = e.evaluate(arg); err != nil {
			return nil, err
		}
	}

	if len(arguments) > fn.arity() {
		return nil, runtimeErr(expr.paren, "Too many arguments (expected %d, got %d)", fn.arity(), len(arguments))
	}
	if len(arguments) < fn.arity() {
		return nil, runtimeErr(expr.paren, "Not enough arguments (expected %d, got %d)", fn.arity(), len(arguments))
	}

	if e.callDepth >= e.maxCallDepth {
		return nil, runtimeErr(expr.paren, "Maximum call depth exceeded")
	}
	e.callDepth++
	defer func() { e.callDepth-- }()

	return fn.call(e, arguments, expr.paren)
}

func (e *exec) visitFunctionExpr(expr *functionExpr) (R, error) {
	fn := &loxFunction{
		declaration: expr,
		closure:     e.env,
	}
	if expr.name != nil {
		e.env.define(expr.name.lexeme, false, fn)
	}
	return fn, nil
}

// propertyName returns the name of a .name or .(expr) access
func (e *exec) propertyName(expr *getExpr) (string, error) {
	if expr.key == nil {
		return expr.name.lexeme, nil
	}
	key, err := e.evaluate(expr.key)
	if err != nil {
		return "", err
	}
	return stringify(key), nil
}

func (e *exec) visitGetExpr(expr *getExpr) (R, error) {
	object, err := e.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	name, err := e.propertyName(expr)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*loxInstance)
	if !ok {
		return nil, runtimeErr(expr.name, "Cannot access properties of %s", typeName(object))
	}
	value, found := instance.get(name)
	if !found {
		return nil, runtimeErr(expr.name, "Undefined property `%s`", name)
	}
	return value, nil
}

func (e *exec) visitAccessExpr(expr *accessExpr) (R, error) {
	object, err := e.evaluate(expr.object)
	if err != nil {
		return nil, err
	}
	index, err := e.evaluate(expr.index)
	if err != nil {
		return nil, err
	}
	switch target := object.(type) {
	case *loxList:
		return target.get(expr.brace, index)
	case loxString:
		return indexString(expr.brace, target, index)
	}
	return nil, runtimeErr(expr.brace, "Cannot index into %s", typeName(object))
}

func (e *exec) visitSetExpr(expr *setExpr) (R, error) {
	switch target := expr.target.(type) {
	case *getExpr:
		object, err := e.evaluate(target.object)
		if err != nil {
			return nil, err
		}
		name, err := e.propertyName(target)
		if err != nil {
			return nil, err
		}
		instance, ok := object.(*loxInstance)
		if !ok {
			return nil, runtimeErr(target.name, "Cannot access properties of %s", typeName(object))
		}
		value, err := e.evaluate(expr.value)
		if err != nil {
			return nil, err
		}
		instance.set(name, value)
		return value, nil

	case *accessExpr:
		object, err := e.evaluate(target.object)
		if err != nil {
			return nil, err
		}
		index, err := e.evaluate(target.index)
		if err != nil {
			return nil, err
		}
		list, ok := object.(*loxList)
		if !ok {
			if _, isString := object.(loxString); isString {
				return nil, runtimeErr(target.brace, "Cannot assign into a string, strings are immutable")
			}
			return nil, runtimeErr(target.brace, "Cannot index into %s", typeName(object))
		}
		value, err := e.evaluate(expr.value)
		if err != nil {
			return nil, err
		}
		if err := list.set(target.brace, index, value); err != nil {
			return nil, err
		}
		return value, nil
	}
	panic("set target must be a property or subscript access")
}

func (e *exec) visitThisExpr(expr *thisExpr) (R, error) {
	return e.env.getAt(expr.depth, "this"), nil
}

func (e *exec) visitSuperExpr(expr *superExpr) (R, error) {
	superclass := e.env.getAt(expr.depth, "super").(*loxClass)
	instance := e.env.getAt(expr.depth-1, "this").(*loxInstance)

	if expr.method.lexeme == constructorName {
		if superclass.constructor == nil {
			return &nativeFn{
				name:       constructorName,
				arityValue: 0,
				callFn: func(*exec, []interface{}, *token) (interface{}, error) {
					return nil, nil
				},
			}, nil
		}
		return superclass.constructor.bind(instance), nil
	}

	method := superclass.findMethod(expr.method.lexeme)
	if method == nil {
		return nil, runtimeErr(expr.method, "Undefined property `%s`", expr.method.lexeme)
	}
	return method.bind(instance), nil
}

func (e *exec) visitObjectExpr(expr *objectExpr) (R, error) {
	instance := newInstance(nil)
	for i, key := range expr.keys {
		value, err := e.evaluate(expr.values[i])
		if err != nil {
			return nil, err
		}
		instance.set(key, value)
	}
	return instance, nil
}

func (e *exec) visitListExpr(expr *listExpr) (R, error) {
	elements := make([]interface{}, len(expr.elements))
	for i, el := range expr.elements {
		value, err := e.evaluate(el)
		if err != nil {
			return nil, err
		}
		elements[i] = value
	}
	return newList(elements), nil
}
