package summarizer

import "strings"

var bulletMarkers = []string{"-", "–", "—", "•", "*"}

// parseBullets splits model output into bullet strings, one per line,
// stripping the leading list marker. Lines without a marker are kept as-is so
// models that number or emoji-prefix their bullets still come through.
func parseBullets(output string) []string {
	var bullets []string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		for _, marker := range bulletMarkers {
			if rest, ok := strings.CutPrefix(line, marker); ok {
				line = strings.TrimSpace(rest)
				break
			}
		}

		if line != "" {
			bullets = append(bullets, line)
		}
	}

	return bullets
}
