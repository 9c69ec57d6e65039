package rule

import (
	"errors"
	"fmt"
)

// ErrMissingRuleField is returned when a rule object has no "rule"
// field naming the rule kind.
var ErrMissingRuleField = errors.New("missing field 'rule' in rule object")

// UnexpectedPropertyError reports a property the rule does not
// recognize.
type UnexpectedPropertyError struct {
	Property string
}

func (e *UnexpectedPropertyError) Error() string {
	return fmt.Sprintf("unexpected field '%s'", e.Property)
}

// TextExpectedError reports a recognized property bound to something
// other than text.
type TextExpectedError struct {
	Property string
}

func (e *TextExpectedError) Error() string {
	return fmt.Sprintf("string value expected for field '%s'", e.Property)
}

// UintExpectedError reports a recognized property bound to something
// other than an unsigned integer.
type UintExpectedError struct {
	Property string
}

func (e *UintExpectedError) Error() string {
	return fmt.Sprintf("unsigned integer expected for field '%s'", e.Property)
}

// UnknownRuleError reports a name that does not resolve in the
// registry.
type UnknownRuleError struct {
	Name string
}

func (e *UnknownRuleError) Error() string {
	return fmt.Sprintf("invalid rule name: %s", e.Name)
}

// DuplicateFieldError reports a field that appears more than once in a
// rule object.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("duplicate field '%s' in rule object", e.Field)
}
