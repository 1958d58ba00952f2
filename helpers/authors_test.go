package helpers

import "testing"

func TestParseAuthorFullNames(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]string
	}{
		{
			name:  "two entries",
			input: "Smith, J. (1); Lee, K. (2)",
			expected: map[string]string{
				"1": "Smith, J.",
				"2": "Lee, K.",
			},
		},
		{
			name:  "real-style numeric ids",
			input: "García Márquez, G. (57190184000)",
			expected: map[string]string{
				"57190184000": "García Márquez, G.",
			},
		},
		{
			name:     "entry without id skipped",
			input:    "Anonymous; Smith, J. (1)",
			expected: map[string]string{"1": "Smith, J."},
		},
		{
			name:     "non-numeric id skipped",
			input:    "Smith, J. (abc)",
			expected: map[string]string{},
		},
		{
			name:     "empty input",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:     "trailing text after id ignored",
			input:    "Smith, J. (1) extra",
			expected: map[string]string{"1": "Smith, J."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAuthorFullNames(tt.input)
			if len(got) != len(tt.expected) {
				t.Fatalf("ParseAuthorFullNames(%q) = %v, want %v", tt.input, got, tt.expected)
			}
			for id, name := range tt.expected {
				if got[id] != name {
					t.Errorf("ParseAuthorFullNames(%q)[%s] = %q, want %q", tt.input, id, got[id], name)
				}
			}
		})
	}
}
