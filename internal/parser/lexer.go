package parser

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenName
	tokenKeyword
	tokenNumber
	tokenString // text holds the decoded value
	tokenSymbol
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

var keywords = map[string]bool{
	"and": true, "break": true, "do": true, "else": true,
	"elseif": true, "end": true, "false": true, "for": true,
	"function": true, "if": true, "in": true, "local": true,
	"nil": true, "not": true, "or": true, "repeat": true,
	"return": true, "then": true, "true": true, "until": true,
	"while": true,
}

type lexer struct {
	source []byte
	pos    int
	line   int
	col    int
}

func newLexer(source []byte) *lexer {
	return &lexer{source: source, line: 1, col: 1}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%d:%d: %s", l.line, l.col, fmt.Sprintf(format, args...))
}

func (l *lexer) peekByte() byte {
	if l.pos >= len(l.source) {
		return 0
	}
	return l.source[l.pos]
}

func (l *lexer) peekByteAt(offset int) byte {
	if l.pos+offset >= len(l.source) {
		return 0
	}
	return l.source[l.pos+offset]
}

func (l *lexer) advanceByte() byte {
	c := l.source[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

// next returns the next token, skipping whitespace and comments.
func (l *lexer) next() (token, error) {
	if err := l.skipSpaceAndComments(); err != nil {
		return token{}, err
	}
	start := token{line: l.line, col: l.col}
	if l.pos >= len(l.source) {
		start.kind = tokenEOF
		return start, nil
	}

	c := l.peekByte()
	switch {
	case isNameStart(c):
		return l.lexName(start), nil
	case isDigit(c) || (c == '.' && isDigit(l.peekByteAt(1))):
		return l.lexNumber(start)
	case c == '"' || c == '\'':
		return l.lexString(start)
	case c == '[' && (l.peekByteAt(1) == '[' || l.peekByteAt(1) == '='):
		if value, ok, err := l.lexLongString(start); err != nil {
			return token{}, err
		} else if ok {
			start.kind = tokenString
			start.text = value
			return start, nil
		}
		// '[' not opening a long bracket, fall through as symbol
		fallthrough
	default:
		return l.lexSymbol(start)
	}
}

func (l *lexer) skipSpaceAndComments() error {
	for l.pos < len(l.source) {
		c := l.peekByte()
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			l.advanceByte()
			continue
		}
		if c == '-' && l.peekByteAt(1) == '-' {
			l.advanceByte()
			l.advanceByte()
			if l.peekByte() == '[' {
				if _, ok, err := l.lexLongString(token{line: l.line, col: l.col}); err != nil {
					return err
				} else if ok {
					continue
				}
			}
			for l.pos < len(l.source) && l.peekByte() != '\n' {
				l.advanceByte()
			}
			continue
		}
		return nil
	}
	return nil
}

func (l *lexer) lexName(start token) token {
	begin := l.pos
	for l.pos < len(l.source) && isNameByte(l.peekByte()) {
		l.advanceByte()
	}
	start.text = string(l.source[begin:l.pos])
	if keywords[start.text] {
		start.kind = tokenKeyword
	} else {
		start.kind = tokenName
	}
	return start
}

func (l *lexer) lexNumber(start token) (token, error) {
	begin := l.pos
	if l.peekByte() == '0' && (l.peekByteAt(1) == 'x' || l.peekByteAt(1) == 'X') {
		l.advanceByte()
		l.advanceByte()
		if !isHexDigit(l.peekByte()) {
			return token{}, l.errorf("malformed number")
		}
		for l.pos < len(l.source) && isHexDigit(l.peekByte()) {
			l.advanceByte()
		}
	} else {
		for l.pos < len(l.source) && isDigit(l.peekByte()) {
			l.advanceByte()
		}
		if l.peekByte() == '.' {
			l.advanceByte()
			for l.pos < len(l.source) && isDigit(l.peekByte()) {
				l.advanceByte()
			}
		}
		if c := l.peekByte(); c == 'e' || c == 'E' {
			l.advanceByte()
			if c := l.peekByte(); c == '+' || c == '-' {
				l.advanceByte()
			}
			if !isDigit(l.peekByte()) {
				return token{}, l.errorf("malformed number")
			}
			for l.pos < len(l.source) && isDigit(l.peekByte()) {
				l.advanceByte()
			}
		}
	}
	if isNameStart(l.peekByte()) {
		return token{}, l.errorf("malformed number")
	}
	start.kind = tokenNumber
	start.text = string(l.source[begin:l.pos])
	return start, nil
}

func (l *lexer) lexString(start token) (token, error) {
	quote := l.advanceByte()
	var value strings.Builder
	for {
		if l.pos >= len(l.source) {
			return token{}, l.errorf("unfinished string")
		}
		c := l.advanceByte()
		if c == quote {
			break
		}
		if c == '\n' {
			return token{}, l.errorf("unfinished string")
		}
		if c != '\\' {
			value.WriteByte(c)
			continue
		}
		if l.pos >= len(l.source) {
			return token{}, l.errorf("unfinished string")
		}
		e := l.advanceByte()
		switch e {
		case 'a':
			value.WriteByte(7)
		case 'b':
			value.WriteByte(8)
		case 'f':
			value.WriteByte(12)
		case 'n':
			value.WriteByte('\n')
		case 'r':
			value.WriteByte('\r')
		case 't':
			value.WriteByte('\t')
		case 'v':
			value.WriteByte(11)
		case '\n':
			value.WriteByte('\n')
		case '\\', '"', '\'':
			value.WriteByte(e)
		default:
			if !isDigit(e) {
				return token{}, l.errorf("invalid escape sequence '\\%c'", e)
			}
			n := int(e - '0')
			for i := 0; i < 2 && isDigit(l.peekByte()); i++ {
				n = n*10 + int(l.advanceByte()-'0')
			}
			if n > 255 {
				return token{}, l.errorf("escape sequence too large")
			}
			value.WriteByte(byte(n))
		}
	}
	start.kind = tokenString
	start.text = value.String()
	return start, nil
}

// lexLongString reads a [[..]] or [=[..]=] bracket at the current
// position. It reports ok=false without consuming input when the
// brackets do not actually open a long string.
func (l *lexer) lexLongString(start token) (string, bool, error) {
	mark := *l
	if l.peekByte() != '[' {
		return "", false, nil
	}
	l.advanceByte()
	level := 0
	for l.peekByte() == '=' {
		level++
		l.advanceByte()
	}
	if l.peekByte() != '[' {
		*l = mark
		return "", false, nil
	}
	l.advanceByte()
	if l.peekByte() == '\n' {
		l.advanceByte()
	}

	closing := "]" + strings.Repeat("=", level) + "]"
	begin := l.pos
	for {
		if l.pos >= len(l.source) {
			return "", false, fmt.Errorf("%d:%d: unfinished long bracket", start.line, start.col)
		}
		if l.peekByte() == ']' && l.pos+len(closing) <= len(l.source) &&
			string(l.source[l.pos:l.pos+len(closing)]) == closing {
			value := string(l.source[begin:l.pos])
			for i := 0; i < len(closing); i++ {
				l.advanceByte()
			}
			return value, true, nil
		}
		l.advanceByte()
	}
}

func (l *lexer) lexSymbol(start token) (token, error) {
	two := ""
	if l.pos+1 < len(l.source) {
		two = string(l.source[l.pos : l.pos+2])
	}
	switch two {
	case "==", "~=", "<=", ">=":
		l.advanceByte()
		l.advanceByte()
		start.kind = tokenSymbol
		start.text = two
		return start, nil
	case "..":
		l.advanceByte()
		l.advanceByte()
		if l.peekByte() == '.' {
			l.advanceByte()
			start.text = "..."
		} else {
			start.text = ".."
		}
		start.kind = tokenSymbol
		return start, nil
	}

	c := l.peekByte()
	switch c {
	case '+', '-', '*', '/', '%', '^', '#', '<', '>', '=',
		'(', ')', '{', '}', '[', ']', ';', ':', ',', '.':
		l.advanceByte()
		start.kind = tokenSymbol
		start.text = string(c)
		return start, nil
	}
	return token{}, l.errorf("unexpected character %q", c)
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameByte(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
