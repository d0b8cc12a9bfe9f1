package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
)

const (
	baseMaxOutputTokens  int64 = 512
	limitMaxOutputTokens int64 = 2048
)

// OpenAISummarizer calls OpenAI's Responses API to produce bullet summaries.
type OpenAISummarizer struct {
	client openai.Client
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(apiKey string) (*OpenAISummarizer, error) {
	return &OpenAISummarizer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
	}, nil
}

// Summarize produces 3-5 bullet points for the given article text.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) ([]string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, &SummarizeError{Reason: ReasonMalformed, Err: errors.New("input is empty")}
	}

	maxOutputTokens := baseMaxOutputTokens
	for {
		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           openai.ChatModelGPT5Mini2025_08_07,
			ServiceTier:     responses.ResponseNewParamsServiceTierFlex,
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Reasoning: responses.ReasoningParam{
				Effort: openai.ReasoningEffortLow,
			},
			Instructions: openai.String(instructions(input.Language)),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(userPrompt(input)),
			},
		})
		if err != nil {
			return nil, &SummarizeError{
				Reason: classifyOpenAIError(err),
				Err:    fmt.Errorf("do request: %w", err),
			}
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens *= 2
				if maxOutputTokens > limitMaxOutputTokens {
					maxOutputTokens = limitMaxOutputTokens
				}
				continue
			}
			return nil, &SummarizeError{
				Reason: ReasonMalformed,
				Err: fmt.Errorf(
					"response is incomplete (reason = %s, maxOutputTokens = %d)",
					resp.IncompleteDetails.Reason,
					maxOutputTokens,
				),
			}
		}

		bullets := parseBullets(resp.OutputText())
		if len(bullets) == 0 {
			return nil, &SummarizeError{
				Reason: ReasonMalformed,
				Err:    fmt.Errorf("output text is missing (status = %s)", resp.Status),
			}
		}
		return bullets, nil
	}
}

func classifyOpenAIError(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		return ReasonQuota
	}

	return ReasonMalformed
}
