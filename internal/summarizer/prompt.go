package summarizer

import (
	"strings"

	"linkbrief/internal/domain"
)

const englishInstructions = `Summarize the article in 3-5 short bullet points.

Rules:
- One key point per bullet, one sentence each.
- Keep critical context (dates, numbers, names).
- Neutral tone, plain text, no markdown markup.
- Start every bullet with a dash (-).
- Write the bullets in English.`

const hebrewInstructions = `סכם את המאמר ב-3 עד 5 נקודות קצרות.

כללים:
- נקודה מרכזית אחת בכל שורה, משפט אחד לכל נקודה.
- שמור על הקשר חיוני (תאריכים, מספרים, שמות).
- טון ניטרלי, טקסט פשוט, ללא עיצוב Markdown.
- התחל כל נקודה במקף (-).
- כתוב את הנקודות בעברית.`

func instructions(language domain.Language) string {
	if language == domain.LanguageHebrew {
		return hebrewInstructions
	}

	return englishInstructions
}

func userPrompt(input Input) string {
	var b strings.Builder

	if sourceURL := strings.TrimSpace(input.SourceURL); sourceURL != "" {
		b.WriteString("Source:\n")
		b.WriteString(sourceURL)
		b.WriteString("\n")
	}

	b.WriteString("Article:\n")
	b.WriteString(strings.TrimSpace(input.Text))

	return b.String()
}
