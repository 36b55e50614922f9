package util

import "testing"

func TestNormalizeTagName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		// Basic normalization
		{"lowercase", "QUIET", "quiet"},
		{"already normalized", "quiet", "quiet"},
		{"mixed case", "DogFriendly", "dogfriendly"},

		// Whitespace handling
		{"trim whitespace", " Quiet ", "quiet"},
		{"trim tabs", "\tquiet\t", "quiet"},
		{"inner spaces preserved", "dog friendly", "dog friendly"},

		// Edge cases
		{"empty string", "", ""},
		{"only spaces", "   ", ""},
		{"numbers allowed", "top10", "top10"},

		// Real-world examples
		{"good coffee", "Good Coffee", "good coffee"},
		{"study spot", "  Study Spot", "study spot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeTagName(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeTagName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
