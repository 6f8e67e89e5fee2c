package internal

import (
	"io"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func defineGlobals(e *env) {
	defineConversions(e)
	defineCollections(e)
	defineMath(e)
	defineIo(e)
}

func defineNative(e *env, name string, arity int, fn func(exec *exec, arguments []interface{}, blame *token) (interface{}, error)) {
	e.define(name, true, &nativeFn{
		name:       name,
		arityValue: arity,
		callFn:     fn,
	})
}

func defineConversions(e *env) {
	defineNative(e, "str", 1, func(_ *exec, arguments []interface{}, _ *token) (interface{}, error) {
		if s, ok := arguments[0].(loxString); ok {
			return s, nil
		}
		return loxString(stringify(arguments[0])), nil
	})

	defineNative(e, "typeof", 1, func(_ *exec, arguments []interface{}, _ *token) (interface{}, error) {
		return loxString(typeName(arguments[0])), nil
	})

	defineNative(e, "number", 1, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		switch value := arguments[0].(type) {
		case loxNumber:
			return value, nil
		case loxString:
			n, err := strconv.ParseFloat(strings.TrimSpace(string(value)), 64)
			if err != nil {
				return loxNumber(math.NaN()), nil
			}
			return loxNumber(n), nil
		case loxChar:
			if value >= '0' && value <= '9' {
				return loxNumber(value - '0'), nil
			}
			return loxNumber(math.NaN()), nil
		}
		return nil, runtimeErr(blame, "Can't parse %s to number", typeName(arguments[0]))
	})

	defineNative(e, "from_chars", 1, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		list, ok := arguments[0].(*loxList)
		if !ok {
			return nil, expectedList(blame, 1, arguments[0])
		}
		var b strings.Builder
		for _, el := range list.elements {
			c, ok := el.(loxChar)
			if !ok {
				return nil, runtimeErr(blame, "Cannot convert from %s to char", typeName(el))
			}
			b.WriteRune(rune(c))
		}
		return loxString(b.String()), nil
	})
}

func defineCollections(e *env) {
	defineNative(e, "len", 1, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		switch value := arguments[0].(type) {
		case loxString:
			return loxNumber(utf8.RuneCountInString(string(value))), nil
		case *loxList:
			return loxNumber(len(value.elements)), nil
		}
		return nil, runtimeErr(blame, "Can't get length of %s", typeName(arguments[0]))
	})

	defineNative(e, "expand", 1, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		switch value := arguments[0].(type) {
		case loxString:
			chars := make([]interface{}, 0, len(value))
			for _, c := range string(value) {
				chars = append(chars, loxChar(c))
			}
			return newList(chars), nil
		case *loxInstance:
			return newList(value.keys()), nil
		}
		return nil, runtimeErr(blame, "Can't use expand on %s", typeName(arguments[0]))
	})

	defineNative(e, "push", 2, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		list, ok := arguments[0].(*loxList)
		if !ok {
			return nil, expectedList(blame, 1, arguments[0])
		}
		list.elements = append(list.elements, arguments[1])
		return list, nil
	})

	defineNative(e, "extend", 2, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		list, ok := arguments[0].(*loxList)
		if !ok {
			return nil, expectedList(blame, 1, arguments[0])
		}
		other, ok := arguments[1].(*loxList)
		if !ok {
			return nil, expectedList(blame, 2, arguments[1])
		}
		// copy first so extending a list with itself doubles it once
		items := append([]interface{}(nil), other.elements...)
		list.elements = append(list.elements, items...)
		return list, nil
	})

	defineNative(e, "deep_copy", 1, func(_ *exec, arguments []interface{}, _ *token) (interface{}, error) {
		return deepCopy(arguments[0]), nil
	})

	defineNative(e, "has", 2, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		switch searchee := arguments[0].(type) {
		case *loxInstance:
			return loxBool(searchee.has(stringify(arguments[1]))), nil
		case *loxList:
			return loxBool(searchee.contains(arguments[1])), nil
		case loxString:
			switch value := arguments[1].(type) {
			case loxString:
				return loxBool(strings.Contains(string(searchee), string(value))), nil
			case loxChar:
				return loxBool(strings.ContainsRune(string(searchee), rune(value))), nil
			}
		}
		return nil, runtimeErr(blame, "Cannot use has with %s and %s", typeName(arguments[0]), typeName(arguments[1]))
	})

	defineNative(e, "unset", 2, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
		instance, isInstance := arguments[0].(*loxInstance)
		key, isString := arguments[1].(loxString)
		if !isInstance || !isString {
			return nil, runtimeErr(blame, "Cannot use unset with %s and %s", typeName(arguments[0]), typeName(arguments[1]))
		}
		return instance.unset(string(key)), nil
	})
}

func defineMath(e *env) {
	numeric := func(name string, fn func(float64) interface{}) {
		defineNative(e, name, 1, func(_ *exec, arguments []interface{}, blame *token) (interface{}, error) {
			n, ok := arguments[0].(loxNumber)
			if !ok {
				return nil, runtimeErr(blame, "Cannot use %s on %s", name, typeName(arguments[0]))
			}
			return fn(float64(n)), nil
		})
	}
	numeric("is_nan", func(n float64) interface{} { return loxBool(math.IsNaN(n)) })
	numeric("floor", func(n float64) interface{} { return loxNumber(math.Floor(n)) })
	numeric("ceil", func(n float64) interface{} { return loxNumber(math.Ceil(n)) })
}

func defineIo(e *env) {
	defineNative(e, "read", 1, func(exec *exec, arguments []interface{}, blame *token) (interface{}, error) {
		if arguments[0] != nil {
			if _, err := exec.printer.Print(stringify(arguments[0])); err != nil {
				return nil, runtimeErr(blame, "%s", err.Error())
			}
		}
		line, err := exec.input.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, runtimeErr(blame, "%s", err.Error())
		}
		return loxString(line), nil
	})
}

func expectedList(blame *token, position int, got interface{}) error {
	return runtimeErr(blame, "Expected a list as argument %d, got %s", position, typeName(got))
}

func deepCopy(value interface{}) interface{} {
	switch v := value.(type) {
	case *loxList:
		elements := make([]interface{}, len(v.elements))
		for i, el := range v.elements {
			elements[i] = deepCopy(el)
		}
		return newList(elements)
	case *loxInstance:
		copied := newInstance(v.class)
		it := v.fields.Iterator()
		for it.Next() {
			copied.set(it.Key().(string), deepCopy(it.Value()))
		}
		return copied
	}
	return value
}
