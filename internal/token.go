package internal

import "fmt"

type tokenType int

const (
	tkEOF tokenType = iota - 1

	// Single-character tokens.
	// (, ), {, }, [, ], ',', ., -, +, %, ;, :, /, *
	tkLeftParen
	tkRightParen
	tkLeftCurlyBrace
	tkRightCurlyBrace
	tkLeftBrace
	tkRightBrace
	tkComma
	tkDot
	tkMinus
	tkPlus
	tkMod
	tkSemicolon
	tkColon
	tkSlash
	tkStar

	// One or two character tokens.
	// !, !=, =, ==, >, >=, <, <=
	tkBang
	tkBangEqual
	tkEqual
	tkEqualEqual
	tkGreater
	tkGreaterEqual
	tkLess
	tkLessEqual

	// Literals.
	// *variable*, string, char, number
	tkIdentifier
	tkString
	tkChar
	tkNumber

	// Keywords.
	tkAnd
	tkClass
	tkElse
	tkFalse
	tkFor
	tkFun
	tkIf
	tkNil
	tkOr
	tkPrint
	tkReturn
	tkSuper
	tkThis
	tkTrue
	tkLet
	tkConst
	tkBreak
	tkContinue
	tkExtends
)

var keywords = map[string]tokenType{
	"and":      tkAnd,
	"class":    tkClass,
	"else":     tkElse,
	"false":    tkFalse,
	"for":      tkFor,
	"fun":      tkFun,
	"if":       tkIf,
	"nil":      tkNil,
	"or":       tkOr,
	"print":    tkPrint,
	"return":   tkReturn,
	"super":    tkSuper,
	"this":     tkThis,
	"true":     tkTrue,
	"let":      tkLet,
	"const":    tkConst,
	"break":    tkBreak,
	"continue": tkContinue,
	"extends":  tkExtends,
}

var tokenNames = map[tokenType]string{
	tkEOF:             "end of input",
	tkLeftParen:       "(",
	tkRightParen:      ")",
	tkLeftCurlyBrace:  "{",
	tkRightCurlyBrace: "}",
	tkLeftBrace:       "[",
	tkRightBrace:      "]",
	tkComma:           ",",
	tkDot:             ".",
	tkMinus:           "-",
	tkPlus:            "+",
	tkMod:             "%",
	tkSemicolon:       ";",
	tkColon:           ":",
	tkSlash:           "/",
	tkStar:            "*",
	tkBang:            "!",
	tkBangEqual:       "!=",
	tkEqual:           "=",
	tkEqualEqual:      "==",
	tkGreater:         ">",
	tkGreaterEqual:    ">=",
	tkLess:            "<",
	tkLessEqual:       "<=",
	tkIdentifier:      "identifier",
	tkString:          "string",
	tkChar:            "char",
	tkNumber:          "number",
}

func (t tokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	for word, tk := range keywords {
		if tk == t {
			return word
		}
	}
	return fmt.Sprintf("token(%d)", int(t))
}

// token is a scanned lexeme together with its exact byte span in the source
type token struct {
	token   tokenType
	lexeme  string
	literal interface{}
	offset  int
	length  int
}

func (t *token) String() string {
	switch t.token {
	case tkIdentifier, tkString, tkChar, tkNumber:
		return fmt.Sprintf("%s %q\tfrom: %d\tto: %d", t.token, t.lexeme, t.offset, t.offset+t.length)
	}
	return fmt.Sprintf("%s\tfrom: %d\tto: %d", t.token, t.offset, t.offset+t.length)
}
