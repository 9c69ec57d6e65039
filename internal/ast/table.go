package ast

import (
	"fmt"
	"strings"
)

// TableEntry is the closed set of table constructor entry variants.
type TableEntry interface {
	Node
	tableEntryNode()
}

// TableValueEntry is a positional entry: {value}.
type TableValueEntry struct {
	value Expression
}

func NewTableValueEntry(value Expression) *TableValueEntry {
	return &TableValueEntry{value: value}
}

func (e *TableValueEntry) Value() Expression { return e.value }

func (e *TableValueEntry) SetValue(value Expression) { e.value = value }

func (e *TableValueEntry) tableEntryNode() {}

func (e *TableValueEntry) Render(g *Generator) {
	e.value.Render(g)
}

// TableFieldEntry is a named entry: {name=value}.
type TableFieldEntry struct {
	name  string
	value Expression
}

func NewTableFieldEntry(name string, value Expression) *TableFieldEntry {
	return &TableFieldEntry{name: name, value: value}
}

func (e *TableFieldEntry) Name() string { return e.name }

func (e *TableFieldEntry) Value() Expression { return e.value }

func (e *TableFieldEntry) SetValue(value Expression) { e.value = value }

func (e *TableFieldEntry) tableEntryNode() {}

func (e *TableFieldEntry) Render(g *Generator) {
	g.PushStr(e.name)
	g.PushByte('=')
	e.value.Render(g)
}

// TableIndexEntry is a computed-key entry: {[key]=value}.
type TableIndexEntry struct {
	key   Expression
	value Expression
}

func NewTableIndexEntry(key, value Expression) *TableIndexEntry {
	return &TableIndexEntry{key: key, value: value}
}

func (e *TableIndexEntry) Key() Expression { return e.key }

func (e *TableIndexEntry) SetKey(key Expression) { e.key = key }

func (e *TableIndexEntry) Value() Expression { return e.value }

func (e *TableIndexEntry) SetValue(value Expression) { e.value = value }

func (e *TableIndexEntry) tableEntryNode() {}

func (e *TableIndexEntry) Render(g *Generator) {
	g.PushByte('[')
	e.key.Render(g)
	g.PushByte(']')
	g.PushByte('=')
	e.value.Render(g)
}

// TableExpression is a table constructor.
type TableExpression struct {
	entries []TableEntry
}

func NewTable(entries ...TableEntry) *TableExpression {
	return &TableExpression{entries: entries}
}

// Entries returns the table's backing entry slice.
func (e *TableExpression) Entries() []TableEntry { return e.entries }

func (e *TableExpression) expressionNode() {}

func (e *TableExpression) Render(g *Generator) {
	g.PushByte('{')
	for i, entry := range e.entries {
		if i > 0 {
			g.PushByte(',')
		}
		entry.Render(g)
	}
	g.PushByte('}')
}

// quoteString renders a string value as a double-quoted Lua literal.
func quoteString(value string) string {
	var builder strings.Builder
	builder.Grow(len(value) + 2)
	builder.WriteByte('"')
	for i := 0; i < len(value); i++ {
		c := value[i]
		switch c {
		case '"':
			builder.WriteString(`\"`)
		case '\\':
			builder.WriteString(`\\`)
		case '\n':
			builder.WriteString(`\n`)
		case '\r':
			builder.WriteString(`\r`)
		case '\t':
			builder.WriteString(`\t`)
		default:
			if c < 0x20 {
				// Pad when a digit follows so the escape stays
				// three digits at most and unambiguous.
				if i+1 < len(value) && isDigit(value[i+1]) {
					fmt.Fprintf(&builder, `\%03d`, c)
				} else {
					fmt.Fprintf(&builder, `\%d`, c)
				}
			} else {
				builder.WriteByte(c)
			}
		}
	}
	builder.WriteByte('"')
	return builder.String()
}
