package internal

import (
	"math"
	"unicode/utf8"
)

type loxList struct {
	elements []interface{}
}

func newList(elements []interface{}) *loxList {
	if elements == nil {
		elements = make([]interface{}, 0)
	}
	return &loxList{elements: elements}
}

func (l *loxList) get(blame *token, index interface{}) (interface{}, error) {
	i, err := checkIndex(blame, index, len(l.elements))
	if err != nil {
		return nil, err
	}
	return l.elements[i], nil
}

func (l *loxList) set(blame *token, index interface{}, value interface{}) error {
	i, err := checkIndex(blame, index, len(l.elements))
	if err != nil {
		return err
	}
	l.elements[i] = value
	return nil
}

func (l *loxList) contains(value interface{}) bool {
	for _, el := range l.elements {
		if equal(el, value) {
			return true
		}
	}
	return false
}

// indexString reads the char at a rune index
func indexString(blame *token, s loxString, index interface{}) (interface{}, error) {
	i, err := checkIndex(blame, index, utf8.RuneCountInString(string(s)))
	if err != nil {
		return nil, err
	}
	for _, c := range string(s) {
		if i == 0 {
			return loxChar(c), nil
		}
		i--
	}
	panic("unreachable: index checked against rune count")
}

// checkIndex accepts only exact non-negative integers below length
func checkIndex(blame *token, index interface{}, length int) (int, error) {
	n, ok := index.(loxNumber)
	if !ok {
		return 0, runtimeErr(blame, "Index must be a number, got %s", typeName(index))
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, runtimeErr(blame, "Index must be an integer, got %s", stringify(n))
	}
	if f < 0 {
		return 0, runtimeErr(blame, "Index must not be negative, got %s", stringify(n))
	}
	if f >= float64(length) {
		return 0, runtimeErr(blame, "Index %s out of range for length %d", stringify(n), length)
	}
	return int(f), nil
}
