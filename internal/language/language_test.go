package language

import (
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		// 2-letter codes
		{"en", "en", true},
		{"EN", "en", true},
		{"es", "es", true},
		// 3-letter codes, both bibliographic and terminology forms
		{"eng", "en", true},
		{"ENG", "en", true},
		{"fra", "fr", true},
		{"fre", "fr", true},
		{"deu", "de", true},
		{"ger", "de", true},
		{"chi", "zh", true},
		{"zho", "zh", true},
		{"dut", "nl", true},
		// Names, any case
		{"English", "en", true},
		{"english", "en", true},
		{"ENGLISH", "en", true},
		{"Français", "fr", true},
		{"francais", "fr", true},
		{"Deutsch", "de", true},
		{"Español", "es", true},
		{"日本語", "ja", true},
		{"Русский", "ru", true},
		// Separators normalize to spaces
		{"Brazilian_Portuguese", "pt", true},
		{"brazilian.portuguese", "pt", true},
		{"pt-BR", "pt", true},
		{"zh_Hans", "zh", true},
		{"  spanish  ", "es", true},
		// Trailing qualifiers are tolerated
		{"English SDH", "en", true},
		{"eng_forced", "en", true},
		{"english.hi", "en", true},
		{"French CC Full", "fr", true},
		// "hi" alone is Hindi, not a qualifier
		{"hi", "hi", true},
		// Unknown labels
		{"xy", "", false},
		{"xyz", "", false},
		{"klingon", "", false},
		{"sdh", "", false},
		{"forced english", "", false},
		{"", "", false},
		{" ", "", false},
		{"___", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			code, ok := Resolve(tt.input)
			if code != tt.expected || ok != tt.ok {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, %v)", tt.input, code, ok, tt.expected, tt.ok)
			}
		})
	}
}

func TestResolveIsConsistentAcrossAliases(t *testing.T) {
	for _, e := range languages {
		labels := append([]string{e.code2, e.code3, e.display}, e.words...)
		if e.alt3 != "" {
			labels = append(labels, e.alt3)
		}
		for _, label := range labels {
			code, ok := Resolve(label)
			if !ok || code != e.code2 {
				t.Errorf("Resolve(%q) = (%q, %v), want (%q, true)", label, code, ok, e.code2)
			}
		}
	}
}

func TestResolveReturnsTwoLetterCodes(t *testing.T) {
	for _, code := range Codes() {
		if len(code) != 2 {
			t.Errorf("table code %q is not ISO 639-1", code)
		}
		got, ok := Resolve(code)
		if !ok || got != code {
			t.Errorf("Resolve(%q) = (%q, %v), want identity", code, got, ok)
		}
	}
}

func TestToISO3(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "eng"},
		{"es", "spa"},
		{"fr", "fra"},
		{"de", "deu"},
		{"zh", "zho"},
		{"eng", "eng"},
		{"spa", "spa"},
		{"german", "deu"},
		{"xyz", "und"},
		{"xy", "und"},
		{"", "und"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ToISO3(tt.input)
			if result != tt.expected {
				t.Errorf("ToISO3(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"eng", "English"},
		{"es", "Spanish"},
		{"fr", "French"},
		{"fre", "French"},
		{"de", "German"},
		{"ger", "German"},
		{"ja", "Japanese"},
		{"zh", "Chinese"},
		{"nl", "Dutch"},
		{"pt", "Portuguese"},
		{"", "Unknown"},
		{"xyz", "XYZ"},
		{"english", "English"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := DisplayName(tt.input)
			if result != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}
