package ast

import "strings"

// Generator accumulates compact source text. It tracks the last byte
// written so that two adjacent tokens are separated by a space only
// when gluing them together would change how the output lexes.
type Generator struct {
	output strings.Builder
	last   byte
}

// NewGenerator creates an empty generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// PushStr appends a token, inserting a single space first if the token
// would otherwise merge with the previously written byte.
func (g *Generator) PushStr(s string) {
	if s == "" {
		return
	}
	if needsSpace(g.last, s[0]) {
		g.output.WriteByte(' ')
	}
	g.output.WriteString(s)
	g.last = s[len(s)-1]
}

// PushByte appends a single byte with the same separation discipline
// as PushStr.
func (g *Generator) PushByte(c byte) {
	if needsSpace(g.last, c) {
		g.output.WriteByte(' ')
	}
	g.output.WriteByte(c)
	g.last = c
}

// PushNames renders each name with a single comma between consecutive
// entries, never before the first or after the last.
func (g *Generator) PushNames(names []string) {
	for i, name := range names {
		if i > 0 {
			g.PushByte(',')
		}
		g.PushStr(name)
	}
}

// PushExpressions renders each expression with a single comma between
// consecutive entries, never before the first or after the last.
func (g *Generator) PushExpressions(expressions []Expression) {
	for i, expression := range expressions {
		if i > 0 {
			g.PushByte(',')
		}
		expression.Render(g)
	}
}

// String returns the accumulated text.
func (g *Generator) String() string {
	return g.output.String()
}

func needsSpace(prev, next byte) bool {
	if isWordByte(prev) && isWordByte(next) {
		return true
	}
	// "--" would open a comment, a digit followed by '.' would merge a
	// number literal with a concatenation operator, and two adjacent
	// dots would merge into a longer dot operator.
	if prev == '-' && next == '-' {
		return true
	}
	if isDigit(prev) && next == '.' {
		return true
	}
	if prev == '.' && next == '.' {
		return true
	}
	return false
}

func isWordByte(c byte) bool {
	return c == '_' || isDigit(c) ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
