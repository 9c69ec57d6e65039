// Package rule contains the mutation passes applied to a block, the
// registry of known rule kinds and the configuration codec.
package rule

import (
	"sort"

	"github.com/minlua/minlua/internal/ast"
)

// Rule is a named, configurable mutation pass over a block. Every rule
// must preserve the observable behavior of the processed program.
type Rule interface {
	// Process mutates the given block in place to apply the rule.
	Process(block *ast.Block)

	// Configure applies a parsed configuration document's extra fields
	// onto a freshly constructed instance. It is called at most once,
	// before the first Process call.
	Configure(properties Properties) error

	// Name returns the unique registry name of the rule.
	Name() string

	// Properties returns the properties whose current value differs
	// from the rule's defaults, such that configuring a fresh instance
	// with them reproduces an equivalent rule.
	Properties() Properties
}

// PropertyKind discriminates the two value kinds a rule configuration
// may carry.
type PropertyKind int

const (
	PropertyText PropertyKind = iota
	PropertyUint
)

// PropertyValue is a tagged union over text and unsigned integer. No
// further nesting is supported.
type PropertyValue struct {
	kind   PropertyKind
	text   string
	number uint64
}

// TextValue creates a text property value.
func TextValue(text string) PropertyValue {
	return PropertyValue{kind: PropertyText, text: text}
}

// UintValue creates an unsigned integer property value.
func UintValue(number uint64) PropertyValue {
	return PropertyValue{kind: PropertyUint, number: number}
}

// Kind returns the value's kind tag.
func (v PropertyValue) Kind() PropertyKind { return v.kind }

// Text returns the text value, reporting whether the value holds text.
func (v PropertyValue) Text() (string, bool) {
	return v.text, v.kind == PropertyText
}

// Uint returns the integer value, reporting whether the value holds an
// unsigned integer.
func (v PropertyValue) Uint() (uint64, bool) {
	return v.number, v.kind == PropertyUint
}

// Properties maps property names to their weakly-typed values.
type Properties map[string]PropertyValue

// Keys returns the property names in lexicographic order, so that
// validation reports the same violation regardless of map iteration
// order.
func (p Properties) Keys() []string {
	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// ExpectText returns the text value bound to key, or a TextExpectedError
// when the value holds another kind.
func (p Properties) ExpectText(key string) (string, error) {
	text, ok := p[key].Text()
	if !ok {
		return "", &TextExpectedError{Property: key}
	}
	return text, nil
}

// ExpectUint returns the unsigned integer bound to key, or a
// UintExpectedError when the value holds another kind.
func (p Properties) ExpectUint(key string) (uint64, error) {
	number, ok := p[key].Uint()
	if !ok {
		return 0, &UintExpectedError{Property: key}
	}
	return number, nil
}
