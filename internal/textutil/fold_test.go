package textutil

import "testing"

func TestFold(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"English", "english"},
		{"FRANÇAIS", "francais"},
		{"Español", "espanol"},
		{"Português", "portugues"},
		{"already plain", "already plain"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Fold(tt.input); got != tt.expected {
				t.Errorf("Fold(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"  ", ""},
		{"Brazilian_Portuguese", "brazilian portuguese"},
		{"english.sdh", "english sdh"},
		{"Director's Cut", "directors cut"},
		{"DIRECTOR’S-CUT", "directors cut"},
		{"The.Movie (2010)", "the movie 2010"},
		{"__Français__", "francais"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLabel(tt.input); got != tt.expected {
				t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
