package domain

import "strings"

// Language is the output language of a summary.
type Language string

const (
	LanguageEnglish Language = "english"
	LanguageHebrew  Language = "hebrew"
)

// ParseLanguage maps free-form user input to a supported language.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageEnglish:
		return LanguageEnglish, true
	case LanguageHebrew:
		return LanguageHebrew, true
	default:
		return "", false
	}
}

// Title returns the human-readable language name.
func (l Language) Title() string {
	switch l {
	case LanguageHebrew:
		return "Hebrew"
	default:
		return "English"
	}
}

// SummaryRequest describes one summarization attempt. It lives for the
// duration of a single inbound event and is never persisted.
type SummaryRequest struct {
	Caller   int64
	URL      string
	Language Language
}

// SummaryResult holds the ordered bullet points returned by a summarizer.
type SummaryResult struct {
	Bullets  []string
	Language Language
}
