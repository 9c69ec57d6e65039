package rule

import "sort"

type constructor func() Rule

// constructors maps every known rule name to a builder for its
// default-configured instance. Adding a rule kind means adding one
// entry here; nothing else changes.
var constructors = map[string]constructor{
	RemoveEmptyDoName:         func() Rule { return NewRemoveEmptyDo() },
	GroupLocalAssignmentsName: func() Rule { return NewGroupLocalAssignments() },
	InjectGlobalValueName:     func() Rule { return NewInjectGlobalValue() },
}

// New constructs a default instance of the named rule. Unknown names
// yield an UnknownRuleError.
func New(name string) (Rule, error) {
	build, ok := constructors[name]
	if !ok {
		return nil, &UnknownRuleError{Name: name}
	}
	return build(), nil
}

// Names returns every registered rule name in lexicographic order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the built-in ordered rule sequence used when no
// configuration overrides it. Every rule here preserves all the
// functionality of the original code after being applied.
func Default() []Rule {
	return []Rule{
		NewRemoveEmptyDo(),
	}
}
