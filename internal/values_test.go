package internal

import (
	"math"
	"testing"
)

func TestStringify(t *testing.T) {
	class := &loxClass{name: "A", methods: map[string]*loxFunction{}}
	object := newInstance(nil)
	object.set("a", loxNumber(1))
	object.set("l", newList([]interface{}{loxNumber(1)}))

	tests := []struct {
		value    interface{}
		expected string
	}{
		{loxNumber(3), "3"},
		{loxNumber(-0.5), "-0.5"},
		{loxNumber(1e21), "1000000000000000000000"},
		{loxNumber(math.NaN()), "NaN"},
		{loxNumber(math.Inf(1)), "+Inf"},
		{loxString("raw \"text\""), "raw \"text\""},
		{loxChar('ü'), "ü"},
		{loxBool(true), "true"},
		{nil, "nil"},
		{class, "class A"},
		{newInstance(class), "instance of class A"},
		{object, "{ a: 1, l: [ ...1 hidden ] }"},
		{&nativeFn{name: "str"}, "function"},
		{newList(nil), "[ ]"},
	}
	for _, test := range tests {
		if got := stringify(test.value); got != test.expected {
			t.Errorf("expected %q, got %q", test.expected, got)
		}
	}
}

func TestEqual(t *testing.T) {
	list := newList(nil)
	decl := &functionExpr{}
	f1 := &loxFunction{declaration: decl, closure: newEnv(nil)}
	f2 := &loxFunction{declaration: decl, closure: newEnv(nil)}
	f3 := &loxFunction{declaration: &functionExpr{}, closure: f1.closure}

	tests := []struct {
		a, b     interface{}
		expected bool
	}{
		{loxNumber(1), loxNumber(1), true},
		{loxNumber(math.NaN()), loxNumber(math.NaN()), false},
		{loxString("a"), loxString("a"), true},
		{loxString("a"), loxChar('a'), false},
		{nil, nil, true},
		{nil, loxBool(false), false},
		{list, list, true},
		{list, newList(nil), false},
		{f1, f2, true},
		{f1, f3, false},
		{f1, nil, false},
	}
	for i, test := range tests {
		if got := equal(test.a, test.b); got != test.expected {
			t.Errorf("case %d: expected %v, got %v", i, test.expected, got)
		}
	}
}

func TestCheckIndex(t *testing.T) {
	blame := &token{lexeme: "["}
	tests := []struct {
		index   interface{}
		message string
	}{
		{loxNumber(3), "Index 3 out of range for length 3"},
		{loxNumber(-1), "Index must not be negative, got -1"},
		{loxNumber(1.5), "Index must be an integer, got 1.5"},
		{loxNumber(math.NaN()), "Index must be an integer, got NaN"},
		{loxNumber(math.Inf(1)), "Index must be an integer, got +Inf"},
		{loxString("1"), "Index must be a number, got string"},
	}
	for _, test := range tests {
		_, err := checkIndex(blame, test.index, 3)
		if err == nil {
			t.Errorf("%v: expected an error", test.index)
			continue
		}
		if msg := err.(*Diagnostic).Message; msg != test.message {
			t.Errorf("expected %q, got %q", test.message, msg)
		}
	}
	if i, err := checkIndex(blame, loxNumber(2), 3); err != nil || i != 2 {
		t.Errorf("index 2 should be valid, got %d, %v", i, err)
	}
}
