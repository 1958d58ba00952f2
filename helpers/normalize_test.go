package helpers

import (
	"regexp"
	"testing"
)

func TestSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input yields sentinel",
			input:    "",
			expected: "unknown",
		},
		{
			name:     "simple text",
			input:    "Deep Learning",
			expected: "deep_learning",
		},
		{
			name:     "accented lowercase vowels fold",
			input:    "áéíóúüñ",
			expected: "aeiouun",
		},
		{
			name:     "accented uppercase vowels fold",
			input:    "ÁÉÍÓÚÜÑ",
			expected: "aeiouun",
		},
		{
			name:     "mixed accents in words",
			input:    "Investigación y Desarrollo",
			expected: "investigacion_y_desarrollo",
		},
		{
			name:     "punctuation stripped",
			input:    `Deep Learning: A Survey.`,
			expected: "deep_learning_a_survey",
		},
		{
			name:     "inverted name",
			input:    "Smith, J.",
			expected: "smith_j",
		},
		{
			name:     "slashes and brackets",
			input:    "AI/ML [2nd ed.]",
			expected: "aiml_2nd_ed",
		},
		{
			name:     "curly quote and apostrophe",
			input:    "O'Brien’s method",
			expected: "obriens_method",
		},
		{
			name:     "whitespace runs collapse to one underscore",
			input:    "a  \t b",
			expected: "a_b",
		},
		{
			name:     "underscore runs collapse",
			input:    "a _ b",
			expected: "a_b",
		},
		{
			name:     "hyphen and digits kept",
			input:    "COVID-19",
			expected: "covid-19",
		},
		{
			name:     "only punctuation collapses to empty",
			input:    "...",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slug(tt.input)
			if got != tt.expected {
				t.Errorf("Slug(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestSlugOutputCharset(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9_-]*$`)

	inputs := []string{
		"", "Deep Learning", "áéíóúüñÁÉÍÓÚÜÑ", `<>:"/\|?*(){}[].,;'’`,
		"Smith, J. (57190184000)", "日本語テキスト", "a\nb\tc", "World Bank (WB)",
	}
	for _, input := range inputs {
		got := Slug(input)
		if got != UnknownToken && !valid.MatchString(got) {
			t.Errorf("Slug(%q) = %q contains characters outside [a-z0-9_-]", input, got)
		}
	}
}

func TestSlugIdempotent(t *testing.T) {
	inputs := []string{
		"", "Deep Learning", "áéíóúüñ", "Smith, J.", "COVID-19", "a  b __ c",
	}
	for _, input := range inputs {
		once := Slug(input)
		twice := Slug(once)
		if once != twice {
			t.Errorf("Slug not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestCollapseSpaces(t *testing.T) {
	if got := CollapseSpaces("  a   b \t c  "); got != "a b c" {
		t.Errorf("CollapseSpaces = %q, want %q", got, "a b c")
	}
}
