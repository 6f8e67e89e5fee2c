package internal

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

type lexer struct {
	start   int
	current int

	state *interpreterState
}

func (l *lexer) scan() {
	for !l.isAtEnd() {
		l.start = l.current
		l.scanToken()
	}
	l.state.tokens = append(l.state.tokens, token{
		token:  tkEOF,
		offset: len(l.state.source),
	})
}

func (l *lexer) scanToken() {
	c := l.advance()
	switch c {
	case '(':
		l.emit(tkLeftParen, nil)
	case ')':
		l.emit(tkRightParen, nil)
	case '{':
		l.emit(tkLeftCurlyBrace, nil)
	case '}':
		l.emit(tkRightCurlyBrace, nil)
	case '[':
		l.emit(tkLeftBrace, nil)
	case ']':
		l.emit(tkRightBrace, nil)
	case ',':
		l.emit(tkComma, nil)
	case '.':
		l.emit(tkDot, nil)
	case '-':
		l.emit(tkMinus, nil)
	case '+':
		l.emit(tkPlus, nil)
	case '%':
		l.emit(tkMod, nil)
	case ';':
		l.emit(tkSemicolon, nil)
	case ':':
		l.emit(tkColon, nil)
	case '*':
		l.emit(tkStar, nil)
	case '/':
		if l.match('/') {
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		} else {
			l.emit(tkSlash, nil)
		}
	case '!':
		if l.match('=') {
			l.emit(tkBangEqual, nil)
		} else {
			l.emit(tkBang, nil)
		}
	case '=':
		if l.match('=') {
			l.emit(tkEqualEqual, nil)
		} else {
			l.emit(tkEqual, nil)
		}
	case '<':
		if l.match('=') {
			l.emit(tkLessEqual, nil)
		} else {
			l.emit(tkLess, nil)
		}
	case '>':
		if l.match('=') {
			l.emit(tkGreaterEqual, nil)
		} else {
			l.emit(tkGreater, nil)
		}

	case '"':
		l.string()

	case '\'':
		l.char()

	default:
		switch {
		case unicode.IsSpace(c):
		case isDigit(c):
			l.number()
		case isAlpha(c):
			l.identifier()
		default:
			l.state.setErrorAt(StageScan, l.start, l.current-l.start, "Unexpected character %q", c)
		}
	}
}

func (l *lexer) string() {
	for !l.isAtEnd() && l.peek() != '"' {
		l.advance()
	}

	if l.isAtEnd() {
		l.state.setErrorAt(StageScan, l.start, 1, "Unterminated string literal")
		return
	}

	// Consume ending "
	l.advance()

	l.emit(tkString, l.state.source[l.start+1:l.current-1])
}

func (l *lexer) char() {
	if l.isAtEnd() {
		l.state.setErrorAt(StageScan, l.start, 1, "Unterminated char literal")
		return
	}
	c := l.advance()
	if c != '\'' && l.match('\'') {
		l.emit(tkChar, c)
		return
	}

	// get rid of remaining chars up to the closing quote
	if c != '\'' {
		for !l.isAtEnd() && l.peek() != '\'' {
			l.advance()
		}
		if l.isAtEnd() {
			l.state.setErrorAt(StageScan, l.start, 1, "Unterminated char literal")
			return
		}
		l.advance()
	}
	l.state.setErrorAt(StageScan, l.start, 1, "Expected closing ' after char")
}

func (l *lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if l.peek() == '.' && isDigit(l.peekNext()) {
		for l.peek() == '.' || isDigit(l.peek()) {
			l.advance()
		}
		l.state.setErrorAt(StageScan, l.start, l.current-l.start, "Malformed number literal")
		return
	}

	literal, err := strconv.ParseFloat(l.state.source[l.start:l.current], 64)
	if err != nil {
		l.state.setErrorAt(StageScan, l.start, l.current-l.start, "Malformed number literal")
		return
	}

	l.emit(tkNumber, literal)
}

func (l *lexer) identifier() {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}

	identifier := l.state.source[l.start:l.current]

	tokenType, ok := keywords[identifier]
	if !ok {
		tokenType = tkIdentifier
	}

	l.emit(tokenType, nil)
}

func (l *lexer) advance() rune {
	c, size := utf8.DecodeRuneInString(l.state.source[l.current:])
	l.current += size
	return c
}

func (l *lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

func (l *lexer) peek() rune {
	if l.isAtEnd() {
		return utf8.RuneError
	}
	c, _ := utf8.DecodeRuneInString(l.state.source[l.current:])
	return c
}

func (l *lexer) peekNext() rune {
	if l.isAtEnd() {
		return utf8.RuneError
	}
	_, size := utf8.DecodeRuneInString(l.state.source[l.current:])
	if l.current+size >= len(l.state.source) {
		return utf8.RuneError
	}
	c, _ := utf8.DecodeRuneInString(l.state.source[l.current+size:])
	return c
}

func (l *lexer) emit(tk tokenType, literal interface{}) {
	l.state.tokens = append(l.state.tokens, token{
		token:   tk,
		lexeme:  l.state.source[l.start:l.current],
		literal: literal,
		offset:  l.start,
		length:  l.current - l.start,
	})
}

func (l *lexer) isAtEnd() bool {
	return l.current >= len(l.state.source)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}
