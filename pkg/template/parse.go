package template

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// envelope is the on-disk wrapper: { "receipt_template": { ... } }.
// Parse also accepts a bare template object.
type envelope struct {
	ReceiptTemplate *Template `json:"receipt_template" yaml:"receipt_template"`
}

// Parse parses a template document from a byte slice. JSON is tried
// first, then YAML. Layout defaults are applied; structural problems
// beyond that are left to Validate.
func Parse(data []byte) (*Template, error) {
	t, err := unmarshal(data, json.Unmarshal)
	if err != nil {
		// Not JSON; YAML also accepts JSON but keeping the JSON path
		// first preserves json.Unmarshal's error messages for the
		// common case.
		t, err = unmarshal(data, yaml.Unmarshal)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template: %w", err)
		}
	}

	applyDefaults(t)
	return t, nil
}

// ParseFile parses a template document from disk.
func ParseFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}

	return Parse(data)
}

// ToJSON converts a Template back to its enveloped JSON form.
func (t *Template) ToJSON() ([]byte, error) {
	return json.MarshalIndent(envelope{ReceiptTemplate: t}, "", "  ")
}

func unmarshal(data []byte, fn func([]byte, interface{}) error) (*Template, error) {
	var env envelope
	if err := fn(data, &env); err != nil {
		return nil, err
	}
	if env.ReceiptTemplate != nil {
		return env.ReceiptTemplate, nil
	}

	// No envelope: treat the document as a bare template object.
	var t Template
	if err := fn(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func applyDefaults(t *Template) {
	if t.CharacterWidth == 0 {
		t.CharacterWidth = DefaultCharacterWidth
	}
	if t.CharacterWidth < MinCharacterWidth {
		t.CharacterWidth = MinCharacterWidth
	}
	if t.CharacterWidth > MaxCharacterWidth {
		t.CharacterWidth = MaxCharacterWidth
	}
	if t.PaperWidth == 0 {
		t.PaperWidth = DefaultPaperWidth
	}
}
