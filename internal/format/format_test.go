package format

import (
	"strings"
	"testing"

	"linkbrief/internal/domain"
)

func TestSummaryRendersAllBullets(t *testing.T) {
	result := domain.SummaryResult{
		Bullets: []string{
			"First point",
			"Second point",
			"Third point",
			"Fourth point",
		},
		Language: domain.LanguageEnglish,
	}

	message := Summary(result, "Example article")

	if !strings.HasPrefix(message, "📝 *Example article*\n") {
		t.Errorf("Expected bold title header, got %q", message)
	}

	for _, bullet := range result.Bullets {
		if !strings.Contains(message, "– "+bullet) {
			t.Errorf("Expected message to contain bullet %q, got %q", bullet, message)
		}
	}

	if got := strings.Count(message, "– "); got != len(result.Bullets) {
		t.Errorf("Expected %d bullets, got %d", len(result.Bullets), got)
	}
}

func TestSummaryEscapesMarkdownV2(t *testing.T) {
	result := domain.SummaryResult{
		Bullets:  []string{"Price dropped 5-10% (quarterly)."},
		Language: domain.LanguageEnglish,
	}

	message := Summary(result, "Q1.2 report!")

	if !strings.Contains(message, `Q1\.2 report\!`) {
		t.Errorf("Expected escaped title, got %q", message)
	}

	if !strings.Contains(message, `5\-10% \(quarterly\)\.`) {
		t.Errorf("Expected escaped bullet, got %q", message)
	}
}

func TestSummaryDefaultTitlePerLanguage(t *testing.T) {
	english := Summary(domain.SummaryResult{
		Bullets:  []string{"A point"},
		Language: domain.LanguageEnglish,
	}, "")

	if !strings.Contains(english, "*Summary*") {
		t.Errorf("Expected English default title, got %q", english)
	}

	hebrew := Summary(domain.SummaryResult{
		Bullets:  []string{"נקודה"},
		Language: domain.LanguageHebrew,
	}, "")

	if !strings.Contains(hebrew, "*סיכום*") {
		t.Errorf("Expected Hebrew default title, got %q", hebrew)
	}
}

func TestSummarySkipsEmptyBullets(t *testing.T) {
	message := Summary(domain.SummaryResult{
		Bullets:  []string{"Kept", "  ", ""},
		Language: domain.LanguageEnglish,
	}, "")

	if got := strings.Count(message, "– "); got != 1 {
		t.Errorf("Expected a single bullet, got %d in %q", got, message)
	}
}
