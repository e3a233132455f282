package questions

import "testing"

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		expected string
		want     bool
	}{
		{"exact match", "56", "56", true},
		{"case folded", "Paris", "paris", true},
		{"whitespace trimmed", "  56\t", "56", true},
		{"both sides trimmed", " x ", "x", true},
		{"mismatch", "54", "56", false},
		{"numeric equivalence not recognized", "6.0", "6", false},
		{"interior whitespace significant", "5 6", "56", false},
		{"empty matches empty", "   ", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Evaluate(tt.selected, tt.expected); got != tt.want {
				t.Errorf("Evaluate(%q, %q) = %v, want %v", tt.selected, tt.expected, got, tt.want)
			}
		})
	}
}
