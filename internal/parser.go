package internal

import (
	"fmt"
	"strings"
)

// unresolved marks a resolution slot the resolver has not written yet
const unresolved = -1

const maxFunctionParams = 255

// parseBailout unwinds a failing statement back to parseStmt
type parseBailout struct{}

// parser stores parser data
type parser struct {
	current int

	state *interpreterState
}

func (p *parser) parse() {
	for !p.isAtEnd() {
		st := p.parseStmt()
		// Empty blocks and lone semicolons produce nil statements,
		// they carry no behaviour so they are dropped here
		if st != nil {
			p.state.stmts = append(p.state.stmts, st)
		}
	}
}

func (p *parser) parseStmt() (st stmt) {
	start := p.current
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseBailout); !ok {
				panic(r)
			}
			if p.current == start {
				p.advance()
			}
			p.synchronize()
			st = nil
		}
	}()
	return p.declaration()
}

func (p *parser) fail(tk *token, format string, a ...interface{}) {
	p.state.setError(StageParse, tk, format, a...)
	panic(parseBailout{})
}

func (p *parser) declaration() stmt {
	if p.match(tkLet, tkConst) {
		return p.let()
	}
	return p.statement()
}

func (p *parser) let() stmt {
	mutable := p.previous().token == tkLet
	name := p.consume(tkIdentifier, "Expected identifier")

	var init expr
	if p.match(tkEqual) {
		init = p.expression()
	}

	p.consume(tkSemicolon, "")

	return &letStmt{
		name:        name,
		initializer: init,
		mutable:     mutable,
	}
}

func (p *parser) statement() stmt {
	if p.match(tkIf) {
		return p.ifStmt()
	}
	if p.match(tkFor) {
		return p.forLoop()
	}
	if p.match(tkPrint) {
		return p.print()
	}
	if p.match(tkClass) {
		return p.class()
	}
	if p.match(tkLeftCurlyBrace) {
		return p.blockStatement()
	}
	if p.match(tkBreak) {
		keyword := p.previous()
		p.consume(tkSemicolon, "")
		return &breakStmt{keyword: keyword}
	}
	if p.match(tkContinue) {
		keyword := p.previous()
		p.consume(tkSemicolon, "")
		return &continueStmt{keyword: keyword}
	}
	if p.match(tkReturn) {
		return p.ret()
	}
	// Trails of semicolons are empty statements
	if p.match(tkSemicolon) {
		return nil
	}
	return p.expressionStmt()
}

func (p *parser) print() stmt {
	keyword := p.previous()
	value := p.expression()
	p.consume(tkSemicolon, "")
	return &printStmt{
		keyword:    keyword,
		expression: value,
	}
}

func (p *parser) expressionStmt() stmt {
	value := p.expression()
	// function declarations read like statements and need no semicolon
	if _, isFn := value.(*functionExpr); !isFn {
		p.consume(tkSemicolon, "")
	}
	return &exprStmt{expression: value}
}

func (p *parser) ifStmt() stmt {
	keyword := p.previous()
	condition := p.expression()

	p.consume(tkLeftCurlyBrace, "Expected then block")
	thenBranch := p.blockStatement()

	var elseBranch stmt
	if p.match(tkElse) {
		if p.match(tkIf) {
			elseBranch = p.ifStmt()
		} else {
			p.consume(tkLeftCurlyBrace, "Expected `{` or `if` after `else`")
			elseBranch = p.blockStatement()
		}
	}

	if thenBranch == nil && elseBranch == nil {
		return nil
	}

	return &ifStmt{
		keyword:    keyword,
		condition:  condition,
		thenBranch: thenBranch,
		elseBranch: elseBranch,
	}
}

func (p *parser) forLoop() stmt {
	keyword := p.previous()
	parens := p.match(tkLeftParen)

	if !p.check(tkSemicolon) && !p.check(tkLet) && !p.check(tkConst) {
		p.fail(p.peek(), "Expected `let`, `const`, or `;` to omit declaration")
	}

	var init stmt
	if p.match(tkLet, tkConst) {
		init = p.let()
	} else {
		p.advance()
	}

	var cond expr
	if !p.match(tkSemicolon) {
		cond = p.expression()
		p.consume(tkSemicolon, "")
	}

	closerEnd := tkLeftCurlyBrace
	if parens {
		closerEnd = tkRightParen
	}
	var closer stmt
	if !p.check(closerEnd) {
		closer = &exprStmt{expression: p.expression()}
	}
	if parens {
		p.consume(tkRightParen, "")
	}

	p.consume(tkLeftCurlyBrace, "Expected for's body")
	body := p.blockStatement()
	if body == nil {
		return nil
	}

	loop := &forStmt{
		keyword:   keyword,
		condition: cond,
		body:      body,
		closer:    closer,
	}

	if init == nil {
		return loop
	}
	return &blockStmt{stmts: []stmt{init, loop}}
}

func (p *parser) ret() stmt {
	keyword := p.previous()
	var value expr
	if !p.check(tkSemicolon) {
		value = p.expression()
	}
	p.consume(tkSemicolon, "")
	return &returnStmt{
		keyword: keyword,
		value:   value,
	}
}

func (p *parser) class() stmt {
	name := p.consume(tkIdentifier, "Expected class name")

	var superclass *variableExpr
	if p.match(tkExtends) {
		class := p.consume(tkIdentifier, "Expected identifier")
		superclass = &variableExpr{
			name:  class,
			depth: unresolved,
		}
	}

	p.consume(tkLeftCurlyBrace, "")

	var methods []*functionExpr
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		methods = append(methods, p.function(true))
	}

	p.consume(tkRightCurlyBrace, "")

	return &classStmt{
		name:       name,
		superclass: superclass,
		methods:    methods,
	}
}

// blockStatement parses the rest of a block whose '{' was consumed.
// An empty block collapses to nil.
func (p *parser) blockStatement() stmt {
	stmts := p.block()
	if len(stmts) == 0 {
		return nil
	}
	return &blockStmt{stmts: stmts}
}

func (p *parser) block() []stmt {
	var stmts []stmt
	for !p.check(tkRightCurlyBrace) && !p.isAtEnd() {
		if st := p.declaration(); st != nil {
			stmts = append(stmts, st)
		}
	}
	p.consume(tkRightCurlyBrace, "")
	return stmts
}

func (p *parser) expression() expr {
	return p.assignment()
}

func (p *parser) assignment() expr {
	target := p.or()
	if p.match(tkEqual) {
		equal := p.previous()
		switch t := target.(type) {
		case *variableExpr:
			return &assignExpr{
				name:  t.name,
				value: p.assignment(),
				depth: unresolved,
			}
		case *getExpr, *accessExpr:
			return &setExpr{
				target: target,
				equal:  equal,
				value:  p.assignment(),
			}
		}
		p.fail(equal, "Invalid l-value. Cannot assign to %s", describeExpr(target))
	}
	return target
}

func (p *parser) or() expr {
	left := p.and()
	for p.match(tkOr) {
		operator := p.previous()
		right := p.and()
		left = &logicalExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left
}

func (p *parser) and() expr {
	left := p.equality()
	for p.match(tkAnd) {
		operator := p.previous()
		right := p.equality()
		left = &logicalExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left
}

func (p *parser) equality() expr {
	return p.binary(p.comparison, tkEqualEqual, tkBangEqual)
}

func (p *parser) comparison() expr {
	return p.binary(p.term, tkGreater, tkGreaterEqual, tkLess, tkLessEqual)
}

func (p *parser) term() expr {
	return p.binary(p.factor, tkPlus, tkMinus, tkMod)
}

func (p *parser) factor() expr {
	return p.binary(p.unary, tkSlash, tkStar)
}

func (p *parser) binary(operand func() expr, operators ...tokenType) expr {
	left := operand()
	for p.match(operators...) {
		operator := p.previous()
		right := operand()
		left = &binaryExpr{
			left:     left,
			operator: operator,
			right:    right,
		}
	}
	return left
}

func (p *parser) unary() expr {
	if p.match(tkBang, tkMinus) {
		operator := p.previous()
		right := p.unary()
		return &unaryExpr{
			operator: operator,
			right:    right,
		}
	}
	if p.match(tkFun) {
		return p.function(false)
	}
	return p.call()
}

// function parses a function literal. Methods have no 'fun' keyword, their
// name token takes its place.
func (p *parser) function(method bool) *functionExpr {
	var keyword, name *token
	if method {
		keyword = p.consume(tkIdentifier, "Expected method name")
		name = keyword
	} else {
		keyword = p.previous()
		if p.match(tkIdentifier) {
			name = p.previous()
		}
	}

	p.consume(tkLeftParen, "")

	var params []*token
	for !p.check(tkRightParen) {
		if len(params) >= maxFunctionParams {
			p.fail(p.peek(), "Max number of parameters is %d", maxFunctionParams)
		}
		params = append(params, p.consume(tkIdentifier, "Expected parameter name"))
		if !p.match(tkComma) {
			break
		}
	}
	p.consume(tkRightParen, "")

	p.consume(tkLeftCurlyBrace, "")
	body := p.block()

	return &functionExpr{
		keyword: keyword,
		name:    name,
		params:  params,
		body:    body,
	}
}

func (p *parser) call() expr {
	object := p.primary()
	for {
		if p.match(tkLeftParen) {
			object = p.finishCall(object)
		} else if p.match(tkDot) {
			object = p.finishGet(object)
		} else if p.match(tkLeftBrace) {
			object = p.finishAccess(object)
		} else {
			break
		}
	}
	return object
}

func (p *parser) finishCall(callee expr) expr {
	var arguments []expr
	for !p.check(tkRightParen) {
		if len(arguments) >= maxFunctionParams {
			p.fail(p.peek(), "Max number of arguments is %d", maxFunctionParams)
		}
		arguments = append(arguments, p.expression())
		if !p.match(tkComma) {
			break
		}
	}
	paren := p.consume(tkRightParen, "")
	return &callExpr{
		callee:    callee,
		paren:     paren,
		arguments: arguments,
	}
}

func (p *parser) finishGet(object expr) expr {
	if p.match(tkIdentifier) {
		return &getExpr{
			object: object,
			name:   p.previous(),
		}
	}
	if p.match(tkLeftParen) {
		paren := p.previous()
		key := p.expression()
		p.consume(tkRightParen, "")
		return &getExpr{
			object: object,
			name:   paren,
			key:    key,
		}
	}
	p.fail(p.peek(), "Expected identifier or a parenthesized expression to evaluate")
	return nil
}

func (p *parser) finishAccess(object expr) expr {
	open := p.previous()
	index := p.expression()
	closing := p.consume(tkRightBrace, "")
	return &accessExpr{
		object: object,
		brace:  spanTokens(open, closing),
		index:  index,
	}
}

func (p *parser) primary() expr {
	if p.match(tkFalse) {
		return &literalExpr{value: loxBool(false)}
	}
	if p.match(tkTrue) {
		return &literalExpr{value: loxBool(true)}
	}
	if p.match(tkNil) {
		return &literalExpr{value: nil}
	}
	if p.match(tkNumber) {
		return &literalExpr{value: loxNumber(p.previous().literal.(float64))}
	}
	if p.match(tkString) {
		return &literalExpr{value: loxString(p.previous().literal.(string))}
	}
	if p.match(tkChar) {
		return &literalExpr{value: loxChar(p.previous().literal.(rune))}
	}
	if p.match(tkIdentifier) {
		return &variableExpr{name: p.previous(), depth: unresolved}
	}
	if p.match(tkLeftParen) {
		inner := p.expression()
		p.consume(tkRightParen, "")
		return &groupingExpr{expression: inner}
	}
	if p.match(tkThis) {
		return &thisExpr{keyword: p.previous(), depth: unresolved}
	}
	if p.match(tkLeftBrace) {
		return p.list()
	}
	if p.match(tkLeftCurlyBrace) {
		return p.object()
	}
	if p.match(tkSuper) {
		return p.superExpr()
	}

	p.fail(p.peek(), "Expected expression")
	return nil
}

func (p *parser) list() expr {
	brace := p.previous()
	var elements []expr
	for !p.check(tkRightBrace) {
		elements = append(elements, p.expression())
		if !p.match(tkComma) {
			break
		}
	}
	p.consume(tkRightBrace, "")
	return &listExpr{
		brace:    brace,
		elements: elements,
	}
}

func (p *parser) object() expr {
	obj := &objectExpr{brace: p.previous()}
	for !p.check(tkRightCurlyBrace) {
		if !p.match(tkIdentifier, tkString) {
			p.fail(p.peek(), "Expected property name")
		}
		key := p.previous()

		var value expr
		if p.match(tkColon) {
			value = p.expression()
		} else if key.token == tkIdentifier {
			value = &variableExpr{name: key, depth: unresolved}
		} else {
			p.fail(key, "Cannot use short property declaration with string")
		}

		name := key.lexeme
		if key.token == tkString {
			name = key.literal.(string)
		}
		obj.keys = append(obj.keys, name)
		obj.values = append(obj.values, value)

		if !p.match(tkComma) {
			break
		}
	}
	p.consume(tkRightCurlyBrace, "")
	return obj
}

func (p *parser) superExpr() expr {
	keyword := p.previous()
	// super(...) calls the superclass constructor, the call itself is
	// parsed by the call chain
	if p.check(tkLeftParen) {
		return &superExpr{
			keyword: keyword,
			method: &token{
				token:  tkIdentifier,
				lexeme: constructorName,
				offset: keyword.offset,
				length: keyword.length,
			},
			depth: unresolved,
		}
	}
	if !p.match(tkDot) {
		p.fail(keyword, "Expected `.` or `(...args)` (constructor call) after `super`")
	}
	method := p.consume(tkIdentifier, "Expected a superclass method name")
	return &superExpr{
		keyword: keyword,
		method:  method,
		depth:   unresolved,
	}
}

// consume advances over the expected token or fails the statement. An empty
// message produces the generic "Expected: `x`" text.
func (p *parser) consume(tk tokenType, message string) *token {
	if p.check(tk) {
		return p.advance()
	}
	if message == "" {
		message = expectedMessage(tk)
	}
	p.fail(p.peek(), "%s", message)
	return nil
}

func (p *parser) advance() *token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *parser) match(tokens ...tokenType) bool {
	for _, tk := range tokens {
		if p.check(tk) {
			p.current++
			return true
		}
	}
	return false
}

func (p *parser) check(tk tokenType) bool {
	return p.peek().token == tk
}

func (p *parser) peek() *token {
	return &p.state.tokens[p.current]
}

func (p *parser) previous() *token {
	return &p.state.tokens[p.current-1]
}

func (p *parser) isAtEnd() bool {
	return p.peek().token == tkEOF
}

// synchronize discards tokens until a statement boundary
func (p *parser) synchronize() {
	for !p.isAtEnd() {
		switch p.peek().token {
		case tkClass, tkFun, tkLet, tkConst, tkFor, tkIf, tkPrint, tkReturn:
			return
		}
		if p.advance().token == tkSemicolon {
			return
		}
	}
}

func expectedMessage(expected ...tokenType) string {
	names := make([]string, len(expected))
	for i, tk := range expected {
		names[i] = "`" + tk.String() + "`"
	}
	if len(expected) > 1 {
		return "Expected one of: " + strings.Join(names, ", ")
	}
	return "Expected: " + names[0]
}

// spanTokens returns a token covering everything from first to last
func spanTokens(first, last *token) *token {
	return &token{
		token:  first.token,
		lexeme: first.lexeme,
		offset: first.offset,
		length: last.offset + last.length - first.offset,
	}
}

func describeExpr(e expr) string {
	switch e.(type) {
	case *assignExpr:
		return "an assignment"
	case *binaryExpr, *logicalExpr:
		return "a binary expression"
	case *groupingExpr:
		return "a grouping"
	case *literalExpr:
		return "a literal"
	case *unaryExpr:
		return "a unary expression"
	case *variableExpr:
		return "an identifier"
	case *callExpr:
		return "a function/method call"
	case *functionExpr:
		return "a function/method declaration"
	case *getExpr, *accessExpr:
		return "property getter"
	case *setExpr:
		return "property setter"
	case *thisExpr:
		return "a this expression"
	case *superExpr:
		return "a super expression"
	case *objectExpr:
		return "an object definition"
	case *listExpr:
		return "a list"
	}
	return fmt.Sprintf("%T", e)
}
