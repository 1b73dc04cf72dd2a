package template

import (
	"reflect"
	"testing"
)

func TestValidate_ValidTemplate(t *testing.T) {
	tpl := &Template{
		CharacterWidth: 32,
		PaperWidth:     58,
		Elements: []Element{
			{Type: TypeText, Value: "Hello"},
			{Type: TypeCutPaper},
		},
	}

	r := Validate(tpl)
	if !r.Valid {
		t.Errorf("Expected valid template, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("Expected no warnings, got: %v", r.Warnings)
	}
}

func TestValidate_MissingElements(t *testing.T) {
	r := Validate(&Template{CharacterWidth: 32, PaperWidth: 58})
	if r.Valid {
		t.Error("Expected invalid result for missing elements")
	}
	if len(r.Errors) == 0 {
		t.Error("Expected at least one error for missing elements")
	}
}

func TestValidate_EmptyElementsIsValid(t *testing.T) {
	// An empty sequence is structurally fine; only a missing one fails.
	r := Validate(&Template{CharacterWidth: 32, PaperWidth: 58, Elements: []Element{}})
	if !r.Valid {
		t.Errorf("Expected valid result for empty elements, got errors: %v", r.Errors)
	}
}

func TestValidate_NilTemplate(t *testing.T) {
	r := Validate(nil)
	if r.Valid {
		t.Error("Expected invalid result for nil template")
	}
}

func TestValidate_WarnsOnMissingWidths(t *testing.T) {
	r := Validate(&Template{Elements: []Element{}})
	if !r.Valid {
		t.Errorf("Expected valid result, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 2 {
		t.Errorf("Expected 2 warnings (characterWidth, paperWidth), got: %v", r.Warnings)
	}
}

func TestValidate_WarnsOnUnknownAlignment(t *testing.T) {
	tpl := &Template{
		CharacterWidth: 32,
		PaperWidth:     58,
		Elements:       []Element{{Type: TypeText, Alignment: "middle"}},
	}

	r := Validate(tpl)
	if !r.Valid {
		t.Errorf("Expected valid result, got errors: %v", r.Errors)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("Expected 1 warning, got: %v", r.Warnings)
	}
}

func TestExtractVariables_RoundTrip(t *testing.T) {
	tpl := &Template{
		Elements: []Element{
			{Type: TypeText, Value: "Hello ${a} and ${b}"},
			{Type: TypeStaticText, Value: "no vars here"},
			{Type: TypeText, Value: "${ c } again ${a}"},
		},
	}

	got := ExtractVariables(tpl)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractVariables() = %v, want %v", got, want)
	}
}

func TestExtractVariables_Empty(t *testing.T) {
	if got := ExtractVariables(&Template{}); len(got) != 0 {
		t.Errorf("Expected no variables, got %v", got)
	}
	if got := ExtractVariables(nil); len(got) != 0 {
		t.Errorf("Expected no variables for nil template, got %v", got)
	}
}
