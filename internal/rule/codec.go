package rule

import "sort"

// DocumentKind discriminates the two persisted forms of a rule.
type DocumentKind int

const (
	// DocumentName is the compact form: a bare rule name.
	DocumentName DocumentKind = iota
	// DocumentObject is the verbose form: an ordered field list
	// holding the reserved "rule" field plus one field per property.
	DocumentObject
)

// Field is one key/value pair of a rule object, in document order.
// Duplicate keys are representable so decoding can reject them.
type Field struct {
	Key   string
	Value PropertyValue
}

// Document is the structured, carrier-agnostic form of one rule entry
// in a configuration document. Concrete syntax layers (YAML, JSON, ...)
// translate their parse trees into this shape.
type Document struct {
	Kind   DocumentKind
	Name   string  // set for DocumentName
	Fields []Field // set for DocumentObject
}

// NameDocument creates a compact-form document.
func NameDocument(name string) Document {
	return Document{Kind: DocumentName, Name: name}
}

// ObjectDocument creates a verbose-form document from ordered fields.
func ObjectDocument(fields ...Field) Document {
	return Document{Kind: DocumentObject, Fields: fields}
}

// Encode serializes a rule instance. A rule with no customized
// properties encodes to its bare name; otherwise to an object holding
// the "rule" field first and the properties sorted by key, so output
// is reproducible.
func Encode(r Rule) Document {
	properties := r.Properties()
	if len(properties) == 0 {
		return NameDocument(r.Name())
	}

	fields := make([]Field, 0, len(properties)+1)
	fields = append(fields, Field{Key: "rule", Value: TextValue(r.Name())})

	keys := make([]string, 0, len(properties))
	for key := range properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fields = append(fields, Field{Key: key, Value: properties[key]})
	}
	return ObjectDocument(fields...)
}

// Decode builds a configured rule instance from either document form.
// The first configuration error aborts decoding and is returned
// verbatim.
func Decode(document Document) (Rule, error) {
	if document.Kind == DocumentName {
		return New(document.Name)
	}

	var name string
	seenRule := false
	properties := make(Properties, len(document.Fields))

	for _, field := range document.Fields {
		if field.Key == "rule" {
			if seenRule {
				return nil, &DuplicateFieldError{Field: "rule"}
			}
			text, ok := field.Value.Text()
			if !ok {
				return nil, &TextExpectedError{Property: "rule"}
			}
			name = text
			seenRule = true
			continue
		}
		if _, exists := properties[field.Key]; exists {
			return nil, &DuplicateFieldError{Field: field.Key}
		}
		properties[field.Key] = field.Value
	}

	if !seenRule {
		return nil, ErrMissingRuleField
	}

	r, err := New(name)
	if err != nil {
		return nil, err
	}
	if err := r.Configure(properties); err != nil {
		return nil, err
	}
	return r, nil
}

// DecodeList decodes a full rule sequence, aborting at the first
// failing entry. No partial sequence is produced on error.
func DecodeList(documents []Document) ([]Rule, error) {
	rules := make([]Rule, 0, len(documents))
	for _, document := range documents {
		r, err := Decode(document)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}
