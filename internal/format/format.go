package format

import (
	"fmt"
	"strings"

	"linkbrief/internal/domain"
	"linkbrief/internal/markdown"
)

const (
	defaultEnglishTitle = "Summary"
	defaultHebrewTitle  = "סיכום"
)

// Summary renders a bullet summary as a Telegram MarkdownV2 message: a bold
// title line followed by one en-dash bullet per point. Bullets that already
// carry their own emoji marker are kept as-is after the dash.
func Summary(result domain.SummaryResult, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		title = defaultEnglishTitle
		if result.Language == domain.LanguageHebrew {
			title = defaultHebrewTitle
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📝 *%s*\n", markdown.EscapeV2(title)))

	for _, bullet := range result.Bullets {
		bullet = strings.TrimSpace(bullet)
		if bullet == "" {
			continue
		}

		b.WriteString(fmt.Sprintf("\n– %s\n", markdown.EscapeV2(bullet)))
	}

	return b.String()
}
