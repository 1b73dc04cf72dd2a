package template

import "fmt"

// Result is the outcome of Validate. Errors are structural problems
// that make the template unusable; warnings note absent fields that
// have defined defaults.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate checks a template's structure. It is the only place in the
// engine that reports problems: both render backends degrade
// gracefully instead of failing, so a caller that wants diagnostics
// runs Validate first.
func Validate(t *Template) Result {
	r := Result{Errors: []string{}, Warnings: []string{}}

	if t == nil {
		r.Errors = append(r.Errors, "template is missing")
		return r
	}

	if t.Elements == nil {
		r.Errors = append(r.Errors, "elements array is required")
	}

	if t.CharacterWidth == 0 {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("characterWidth not set, defaulting to %d", DefaultCharacterWidth))
	} else if t.CharacterWidth < MinCharacterWidth || t.CharacterWidth > MaxCharacterWidth {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("characterWidth %d outside %d-%d, will be clamped",
				t.CharacterWidth, MinCharacterWidth, MaxCharacterWidth))
	}

	if t.PaperWidth == 0 {
		r.Warnings = append(r.Warnings,
			fmt.Sprintf("paperWidth not set, defaulting to %dmm", DefaultPaperWidth))
	}

	for i, el := range t.Elements {
		if el.Type == "" {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("element[%d]: missing type, will render as no-op", i))
		}
		if el.Alignment != "" && el.Alignment != AlignLeft && el.Alignment != AlignCenter && el.Alignment != AlignRight {
			r.Warnings = append(r.Warnings,
				fmt.Sprintf("element[%d]: unknown alignment '%s'", i, el.Alignment))
		}
	}

	r.Valid = len(r.Errors) == 0
	return r
}
