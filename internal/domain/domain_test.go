package domain

import "testing"

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Language
		ok    bool
	}{
		{"Lowercase english", "english", LanguageEnglish, true},
		{"Capitalized", "English", LanguageEnglish, true},
		{"Uppercase hebrew", "HEBREW", LanguageHebrew, true},
		{"Surrounding whitespace", "  hebrew ", LanguageHebrew, true},
		{"Unknown language", "french", "", false},
		{"Empty input", "", "", false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, ok := ParseLanguage(test.input)
			if got != test.want || ok != test.ok {
				t.Errorf("ParseLanguage(%q) = (%q, %v), want (%q, %v)",
					test.input, got, ok, test.want, test.ok)
			}
		})
	}
}

func TestLanguageTitle(t *testing.T) {
	if got := LanguageEnglish.Title(); got != "English" {
		t.Errorf("Title = %q, want English", got)
	}

	if got := LanguageHebrew.Title(); got != "Hebrew" {
		t.Errorf("Title = %q, want Hebrew", got)
	}
}
