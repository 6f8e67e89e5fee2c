package internal

import "fmt"

type declaration struct {
	mutable bool
	value   interface{}
}

type env struct {
	enclosing *env
	values    map[string]declaration
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]declaration),
	}
}

func (e *env) define(name string, mutable bool, value interface{}) {
	e.values[name] = declaration{mutable: mutable, value: value}
}

// ancestor walks distance links up the chain. The resolver guarantees the
// chain is long enough, so running out of scopes is an interpreter fault.
func (e *env) ancestor(distance int) *env {
	scope := e
	for i := 0; i < distance; i++ {
		if scope.enclosing == nil {
			panic(fmt.Sprintf("env: no scope %d levels up", distance))
		}
		scope = scope.enclosing
	}
	return scope
}

func (e *env) getAt(distance int, name string) interface{} {
	decl, ok := e.ancestor(distance).values[name]
	if !ok {
		panic(fmt.Sprintf("env: %q not found %d levels up", name, distance))
	}
	return decl.value
}

func (e *env) assignAt(distance int, name *token, value interface{}) error {
	scope := e.ancestor(distance)
	decl, ok := scope.values[name.lexeme]
	if !ok {
		panic(fmt.Sprintf("env: %q not found %d levels up", name.lexeme, distance))
	}
	if !decl.mutable {
		return runtimeErr(name, "Cannot reassign a const %s `%s`", typeName(decl.value), name.lexeme)
	}
	scope.values[name.lexeme] = declaration{mutable: true, value: value}
	return nil
}
