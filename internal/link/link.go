package link

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/xurls/v2"
)

// ErrNoLink means the message text carries no parseable URL.
var ErrNoLink = errors.New("no link found")

// Entity is the transport-agnostic view of a Telegram message entity. A
// text_link entity carries a URL that never appears literally in the text
// (a hyperlinked caption); a url entity marks a literal URL by its offset
// and length, counted in UTF-16 code units per the Bot API.
type Entity struct {
	Type   string
	Offset int
	Length int
	URL    string
}

const (
	entityTypeTextLink = "text_link"
	entityTypeURL      = "url"
)

// Extract returns the first URL found in the text, unmodified, so the fetch
// call sees exactly the bytes the user sent. Messages with several URLs are
// ambiguous; the first match wins.
func Extract(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrNoLink
	}

	urlRe, err := xurls.StrictMatchingScheme("https?://")
	if err != nil {
		return "", fmt.Errorf("create regexp: %w", err)
	}

	found := urlRe.FindString(text)
	if found == "" {
		return "", ErrNoLink
	}

	return found, nil
}

// ExtractWithEntities prefers entity-carried URLs and falls back to scanning
// the text. The first usable entity wins, mirroring the first-match policy
// of Extract.
func ExtractWithEntities(text string, entities []Entity) (string, error) {
	for _, entity := range entities {
		switch entity.Type {
		case entityTypeTextLink:
			if url := strings.TrimSpace(entity.URL); url != "" {
				return url, nil
			}
		case entityTypeURL:
			if url := strings.TrimSpace(utf16Slice(text, entity.Offset, entity.Length)); url != "" {
				return url, nil
			}
		}
	}

	return Extract(text)
}

// utf16Slice cuts text by UTF-16 code unit offsets without assuming the
// text is ASCII; an emoji before the URL shifts byte offsets but not the
// entity's UTF-16 ones.
func utf16Slice(text string, offset, length int) string {
	if offset < 0 || length <= 0 {
		return ""
	}

	var b strings.Builder
	units := 0

	for _, r := range text {
		if units >= offset+length {
			break
		}

		if units >= offset {
			b.WriteRune(r)
		}

		units++
		if r > 0xFFFF {
			units++
		}
	}

	return b.String()
}
