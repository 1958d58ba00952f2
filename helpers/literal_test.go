package helpers

import "testing"

func TestValidLiteral(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "empty", input: "", ok: false},
		{name: "whitespace only", input: "   ", ok: false},
		{name: "lowercase nan", input: "nan", ok: false},
		{name: "mixed case NaN", input: "NaN", ok: false},
		{name: "padded nan", input: "  nan  ", ok: false},
		{name: "plain value", input: "x", expected: "x", ok: true},
		{name: "trims whitespace", input: "  x  ", expected: "x", ok: true},
		{name: "keeps original case", input: "  NaNo technology ", expected: "NaNo technology", ok: true},
		{name: "zero is valid", input: "0", expected: "0", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ValidLiteral(tt.input)
			if ok != tt.ok {
				t.Fatalf("ValidLiteral(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("ValidLiteral(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
