package subtitles_test

import (
	"testing"

	"sublink/internal/subtitles"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		name       string
		wantPrefix string
		wantLabel  string
	}{
		{"2_English.srt", "2", "English"},
		{"02_English.srt", "02", "English"},
		{"0000123_English.srt", "0000123", "English"},
		{"7-French.ass", "7", "French"},
		{"3 German.srt", "3", "German"},
		{"4.es.vtt", "4", "es"},
		{"English.srt", "", "English"},
		{"eng.SRT", "", "eng"},
		{"12.srt", "", "12"},
		{"2_Brazilian_Portuguese.srt", "2", "Brazilian_Portuguese"},
		{"English_2.srt", "", "English_2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefix, label := subtitles.ParseName(tt.name)
			if prefix != tt.wantPrefix || label != tt.wantLabel {
				t.Fatalf("ParseName(%q) = %q, %q; want %q, %q", tt.name, prefix, label, tt.wantPrefix, tt.wantLabel)
			}
		})
	}
}

func TestIsSubtitle(t *testing.T) {
	for _, name := range []string{"a.srt", "a.ASS", "a.ssa", "a.sub", "a.vtt", "a.smi", "a.sup"} {
		if !subtitles.IsSubtitle(name) {
			t.Errorf("IsSubtitle(%q) = false", name)
		}
	}
	for _, name := range []string{"a.mkv", "a.idx", "a.txt", "srt", "a.srt.bak"} {
		if subtitles.IsSubtitle(name) {
			t.Errorf("IsSubtitle(%q) = true", name)
		}
	}
}
