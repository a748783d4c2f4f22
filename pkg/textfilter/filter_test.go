package textfilter

import "testing"

func TestFilter_Clean(t *testing.T) {
	f := New()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "clean text passes through",
			input:    "A lovely drive along the coast.",
			expected: "A lovely drive along the coast.",
		},
		{
			name:     "lowercase word replaced",
			input:    "what the hell, a flat tire",
			expected: "what the heck, a flat tire",
		},
		{
			name:     "title case preserved",
			input:    "Damn, that view!",
			expected: "Dang, that view!",
		},
		{
			name:     "all caps preserved",
			input:    "This traffic is BULLSHIT",
			expected: "This traffic is BALONEY",
		},
		{
			name:     "word boundaries respected",
			input:    "The Shellfish Shack and the classy passengers",
			expected: "The Shellfish Shack and the classy passengers",
		},
		{
			name:     "multiple words in one message",
			input:    "damn pothole, crap suspension",
			expected: "dang pothole, crud suspension",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
