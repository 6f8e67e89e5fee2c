package internal

const constructorName = "constructor"

type callable interface {
	arity() int
	call(exec *exec, arguments []interface{}, blame *token) (interface{}, error)
}

// loxFunction is a function literal closed over the scope it was evaluated in
type loxFunction struct {
	declaration *functionExpr
	closure     *env
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, arguments []interface{}, blame *token) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}, blame *token) (interface{}, error) {
	return n.callFn(exec, arguments, blame)
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

func (f *loxFunction) call(exec *exec, arguments []interface{}, blame *token) (interface{}, error) {
	scope := newEnv(f.closure)
	for i, param := range f.declaration.params {
		scope.define(param.lexeme, true, arguments[i])
	}

	result, err := exec.executeBlock(f.declaration.body, scope)
	if err != nil {
		return nil, err
	}

	switch result.kind {
	case resultReturn:
		return result.value, nil
	case resultBreak:
		return nil, runtimeErr(result.keyword, "Cannot use `break` outside of a loop")
	case resultContinue:
		return nil, runtimeErr(result.keyword, "Cannot use `continue` outside of a loop")
	}
	return nil, nil
}

// bind returns a copy of the method whose closure defines this
func (f *loxFunction) bind(instance *loxInstance) *loxFunction {
	scope := newEnv(f.closure)
	scope.define("this", false, instance)
	return &loxFunction{
		declaration: f.declaration,
		closure:     scope,
	}
}
