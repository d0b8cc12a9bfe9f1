package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash-latest"

// GeminiSummarizer calls Google's Gemini API to produce bullet summaries.
type GeminiSummarizer struct {
	apiKey string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiSummarizer builds a new summarizer instance. The underlying
// client is created lazily on first use because genai.NewClient needs a
// context.
func NewGeminiSummarizer(apiKey string) (*GeminiSummarizer, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("API key is empty")
	}

	return &GeminiSummarizer{apiKey: apiKey}, nil
}

// Summarize produces 3-5 bullet points for the given article text.
func (s *GeminiSummarizer) Summarize(
	ctx context.Context,
	input Input,
) ([]string, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, &SummarizeError{Reason: ReasonMalformed, Err: errors.New("input is empty")}
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return nil, &SummarizeError{
			Reason: ReasonMalformed,
			Err:    fmt.Errorf("create client: %w", err),
		}
	}

	model := client.GenerativeModel(geminiModel)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(instructions(input.Language))},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(userPrompt(input)))
	if err != nil {
		return nil, &SummarizeError{
			Reason: classifyGeminiError(err),
			Err:    fmt.Errorf("generate content: %w", err),
		}
	}

	output := collectText(resp)

	bullets := parseBullets(output)
	if len(bullets) == 0 {
		return nil, &SummarizeError{
			Reason: ReasonMalformed,
			Err:    errors.New("response carries no text parts"),
		}
	}

	return bullets, nil
}

func (s *GeminiSummarizer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}

	err := s.client.Close()
	s.client = nil

	return err
}

func (s *GeminiSummarizer) getClient(ctx context.Context) (*genai.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, err
	}

	s.client = client

	return client, nil
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}

		for _, part := range candidate.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
				b.WriteString("\n")
			}
		}

		break
	}

	return b.String()
}

func classifyGeminiError(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests {
		return ReasonQuota
	}

	return ReasonMalformed
}
