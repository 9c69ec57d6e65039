package minify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/minlua/minlua/internal/rule"
)

// Config is the persisted configuration. A nil Rules slice means the
// `rules` key was absent and the default pipeline applies.
type Config struct {
	Name  string     `yaml:"name,omitempty"`
	Rules []RuleSpec `yaml:"rules,omitempty"`
}

// RuleInstances returns the configured rule sequence, or nil when the
// configuration does not override the default pipeline.
func (c Config) RuleInstances() []rule.Rule {
	if c.Rules == nil {
		return nil
	}
	rules := make([]rule.Rule, len(c.Rules))
	for i, spec := range c.Rules {
		rules[i] = spec.Rule
	}
	return rules
}

// DefaultConfig returns a configuration spelling out the default
// pipeline, used by `minlua init`.
func DefaultConfig() Config {
	defaults := rule.Default()
	specs := make([]RuleSpec, len(defaults))
	for i, r := range defaults {
		specs[i] = RuleSpec{Rule: r}
	}
	return Config{Name: "minlua", Rules: specs}
}

// RuleSpec binds one rule entry of the configuration document to a
// live rule instance through the carrier-agnostic codec.
type RuleSpec struct {
	Rule rule.Rule
}

// UnmarshalYAML accepts the compact form (a bare rule name) or the
// verbose form (a map with a "rule" key plus properties).
func (s *RuleSpec) UnmarshalYAML(node *yaml.Node) error {
	document, err := documentFromYAML(node)
	if err != nil {
		return err
	}
	r, err := rule.Decode(document)
	if err != nil {
		return err
	}
	s.Rule = r
	return nil
}

// MarshalYAML emits the compact form whenever the rule has no
// customized properties.
func (s RuleSpec) MarshalYAML() (interface{}, error) {
	return documentToYAML(rule.Encode(s.Rule)), nil
}

// documentFromYAML translates a yaml node into a rule document,
// walking the raw mapping content so duplicate keys are preserved for
// the codec to reject.
func documentFromYAML(node *yaml.Node) (rule.Document, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var name string
		if err := node.Decode(&name); err != nil {
			return rule.Document{}, err
		}
		return rule.NameDocument(name), nil
	case yaml.MappingNode:
		fields := make([]rule.Field, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			valueNode := node.Content[i+1]

			var key string
			if err := keyNode.Decode(&key); err != nil {
				return rule.Document{}, err
			}
			value, err := propertyFromYAML(key, valueNode)
			if err != nil {
				return rule.Document{}, err
			}
			fields = append(fields, rule.Field{Key: key, Value: value})
		}
		return rule.ObjectDocument(fields...), nil
	}
	return rule.Document{}, fmt.Errorf("line %d: rule entry must be a name or a mapping", node.Line)
}

func propertyFromYAML(key string, node *yaml.Node) (rule.PropertyValue, error) {
	if node.Kind != yaml.ScalarNode {
		return rule.PropertyValue{}, fmt.Errorf("line %d: field '%s' must be a string or an unsigned integer", node.Line, key)
	}
	switch node.Tag {
	case "!!int":
		var number uint64
		if err := node.Decode(&number); err != nil {
			return rule.PropertyValue{}, &rule.UintExpectedError{Property: key}
		}
		return rule.UintValue(number), nil
	case "!!str":
		var text string
		if err := node.Decode(&text); err != nil {
			return rule.PropertyValue{}, err
		}
		return rule.TextValue(text), nil
	}
	return rule.PropertyValue{}, fmt.Errorf("line %d: field '%s' must be a string or an unsigned integer", node.Line, key)
}

func documentToYAML(document rule.Document) *yaml.Node {
	if document.Kind == rule.DocumentName {
		return scalarYAML(rule.TextValue(document.Name))
	}
	mapping := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, field := range document.Fields {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: field.Key}
		mapping.Content = append(mapping.Content, keyNode, scalarYAML(field.Value))
	}
	return mapping
}

func scalarYAML(value rule.PropertyValue) *yaml.Node {
	if number, ok := value.Uint(); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", number)}
	}
	text, _ := value.Text()
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: text}
	return node
}

// LoadConfig reads and parses a configuration file. An empty path
// yields the zero Config, which selects the default pipeline.
func LoadConfig(configurationPath string) (Config, error) {
	var config Config
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("error parsing configuration: %w", err)
	}
	return config, nil
}
