package summarizer

import (
	"context"
	"fmt"

	"linkbrief/internal/domain"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the extracted article text to summarise.
	Text string
	// SourceURL is optional metadata that helps the model reference the origin.
	SourceURL string
	// Language selects the output language of the bullets.
	Language domain.Language
}

// Summarizer turns article text into an ordered list of short bullet points.
// Three to five bullets are requested; the backends do not re-prompt when the
// model returns a different count.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) ([]string, error)
}

// Reason classifies why a summarization attempt failed.
type Reason string

const (
	ReasonQuota     Reason = "quota"
	ReasonTimeout   Reason = "timeout"
	ReasonMalformed Reason = "malformed"
)

// SummarizeError carries the failure class plus the underlying cause. The
// cause is for logs only and must never reach the end user.
type SummarizeError struct {
	Reason Reason
	Err    error
}

func (e *SummarizeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("summarize: %s", e.Reason)
	}

	return fmt.Sprintf("summarize: %s: %v", e.Reason, e.Err)
}

func (e *SummarizeError) Unwrap() error {
	return e.Err
}
