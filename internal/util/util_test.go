package util

import "testing"

func TestStripRunes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		cutset   string
		expected string
	}{
		{name: "dashes and spaces", input: "050-123 4567", cutset: "- ", expected: "0501234567"},
		{name: "nothing to strip", input: "0501234567", cutset: "- ", expected: "0501234567"},
		{name: "only separators", input: " - - ", cutset: "- ", expected: ""},
		{name: "keeps other punctuation", input: "+972-50", cutset: "- ", expected: "+97250"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripRunes(tt.input, tt.cutset); got != tt.expected {
				t.Fatalf("StripRunes(%q, %q) = %q, want %q", tt.input, tt.cutset, got, tt.expected)
			}
		})
	}
}

func TestIsDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{input: "0501234567", expected: true},
		{input: "", expected: false},
		{input: "050a", expected: false},
		{input: "+97250", expected: false},
		{input: "٣٤٥", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := IsDigits(tt.input); got != tt.expected {
				t.Fatalf("IsDigits(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short string", input: "Photosynthesis", max: 20, expected: "Photosynthesis"},
		{name: "cut string", input: "Photosynthesis", max: 5, expected: "Photo..."},
		{name: "multibyte", input: "שלום עולם", max: 4, expected: "שלום..."},
		{name: "zero max", input: "abc", max: 0, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Truncate(tt.input, tt.max); got != tt.expected {
				t.Fatalf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}
