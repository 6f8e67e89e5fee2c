package internal

import (
	"fmt"
	"strconv"
	"strings"
)

type loxNumber float64

type loxString string

type loxChar rune

type loxBool bool

// maxPrintedItems bounds how many list items or object properties are printed
const maxPrintedItems = 100

func typeName(value interface{}) string {
	switch value.(type) {
	case loxBool:
		return "boolean"
	case *loxInstance:
		return "class instance"
	case *loxFunction, *nativeFn:
		return "function"
	case *loxClass:
		return "class"
	case loxString:
		return "string"
	case loxNumber:
		return "number"
	case *loxList:
		return "list"
	case loxChar:
		return "char"
	case nil:
		return "nil"
	}
	panic(fmt.Sprintf("unknown runtime value %T", value))
}

func stringify(value interface{}) string {
	return repr(value, false)
}

// repr prints a value. Containers nested inside other containers are
// summarised instead of expanded.
func repr(value interface{}, nested bool) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case loxNumber:
		return strconv.FormatFloat(float64(v), 'f', -1, 64)
	case loxString:
		return string(v)
	case loxChar:
		return string(rune(v))
	case loxBool:
		if v {
			return "true"
		}
		return "false"
	case *loxList:
		items := make([]string, 0, len(v.elements))
		for _, el := range v.elements {
			if nested || len(items) == maxPrintedItems {
				break
			}
			items = append(items, repr(el, true))
		}
		return container("[", "]", items, len(v.elements))
	case *loxInstance:
		if v.class != nil {
			return "instance of " + repr(v.class, true)
		}
		items := make([]string, 0, v.fields.Size())
		it := v.fields.Iterator()
		for it.Next() {
			if nested || len(items) == maxPrintedItems {
				break
			}
			items = append(items, fmt.Sprintf("%s: %s", it.Key(), repr(it.Value(), true)))
		}
		return container("{", "}", items, v.fields.Size())
	case *loxClass:
		return "class " + v.name
	case *loxFunction, *nativeFn:
		return "function"
	}
	panic(fmt.Sprintf("unknown runtime value %T", value))
}

func container(open, closing string, items []string, total int) string {
	if total == 0 {
		return open + " " + closing
	}
	var b strings.Builder
	b.WriteString(open + " ")
	b.WriteString(strings.Join(items, ", "))
	if hidden := total - len(items); hidden > 0 {
		if len(items) > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "...%d hidden", hidden)
	}
	b.WriteString(" " + closing)
	return b.String()
}

// equal implements == for runtime values
func equal(a, b interface{}) bool {
	fa, okA := a.(*loxFunction)
	fb, okB := b.(*loxFunction)
	if okA || okB {
		return okA && okB && fa.declaration == fb.declaration
	}
	return a == b
}

func isTrue(value interface{}) bool {
	b, ok := value.(loxBool)
	return ok && bool(b)
}
