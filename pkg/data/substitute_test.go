package data

import "testing"

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name string
		text string
		ctx  Context
		want string
	}{
		{
			"simple replacement",
			"Hello ${name}",
			Context{"name": "World"},
			"Hello World",
		},
		{
			"unresolved token preserved",
			"Hello ${missing}",
			Context{"name": "World"},
			"Hello ${missing}",
		},
		{
			"nil value preserved",
			"Hello ${name}",
			Context{"name": nil},
			"Hello ${name}",
		},
		{
			"identifier trimmed",
			"Total: ${ total }",
			Context{"total": 42.5},
			"Total: 42.5",
		},
		{
			"multiple tokens",
			"${a}-${b}",
			Context{"a": "x", "b": "y"},
			"x-y",
		},
		{
			"no recursion",
			"${outer}",
			Context{"outer": "${inner}", "inner": "nope"},
			"${inner}",
		},
		{
			"empty identifier preserved",
			"${}",
			Context{"": "x"},
			"${}",
		},
		{
			"nil context",
			"Hello ${name}",
			nil,
			"Hello ${name}",
		},
		{
			"no placeholders",
			"plain text",
			Context{"name": "World"},
			"plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(tt.text, tt.ctx); got != tt.want {
				t.Errorf("Substitute(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
