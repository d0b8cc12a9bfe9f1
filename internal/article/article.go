package article

import (
	"context"
	"fmt"
)

// Article is the extracted plain-text content of a web page.
type Article struct {
	Title string
	Text  string
}

// Reason classifies why an article could not be fetched.
type Reason string

const (
	ReasonUnreachable Reason = "unreachable"
	ReasonBlocked     Reason = "blocked"
	ReasonEmpty       Reason = "empty"
	ReasonTimeout     Reason = "timeout"
)

// FetchError carries the failure class plus the underlying cause. The cause
// is for logs only and must never reach the end user.
type FetchError struct {
	Reason Reason
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch article: %s", e.Reason)
	}

	return fmt.Sprintf("fetch article: %s: %v", e.Reason, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Fetcher retrieves the readable text of the page behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (Article, error)
}
