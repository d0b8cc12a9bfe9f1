package article

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	defaultClientTimeout = 20 * time.Second
	maxBodyBytes         = 5 << 20

	// Pages shorter than this rarely carry the actual article (cookie
	// walls, paywall stubs, "enable JavaScript" shells).
	minArticleChars = 100

	userAgent = "Mozilla/5.0 (compatible; linkbrief/1.0)"
)

// ReadabilityFetcher downloads a page and extracts its readable text with
// go-readability, falling back to a paragraph scrape for pages readability
// cannot parse.
type ReadabilityFetcher struct {
	client *http.Client
	log    *slog.Logger
}

func NewReadabilityFetcher(timeout time.Duration, log *slog.Logger) *ReadabilityFetcher {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	return &ReadabilityFetcher{
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

func (f *ReadabilityFetcher) Fetch(ctx context.Context, rawURL string) (Article, error) {
	pageURL, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return Article{}, &FetchError{Reason: ReasonUnreachable, Err: fmt.Errorf("parse URL: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL.String(), nil)
	if err != nil {
		return Article{}, &FetchError{Reason: ReasonUnreachable, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return Article{}, &FetchError{Reason: classifyTransportError(err), Err: fmt.Errorf("do request: %w", err)}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			f.log.WarnContext(ctx, "Failed to close response body",
				"error", closeErr,
				"url", pageURL.String())
		}
	}()

	if reason, ok := classifyStatus(resp.StatusCode); ok {
		return Article{}, &FetchError{
			Reason: reason,
			Err:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Article{}, &FetchError{Reason: classifyTransportError(err), Err: fmt.Errorf("read body: %w", err)}
	}

	title, text := f.extract(ctx, body, pageURL)

	text = strings.TrimSpace(text)
	if len(text) < minArticleChars {
		return Article{}, &FetchError{
			Reason: ReasonEmpty,
			Err:    fmt.Errorf("extracted %d chars, need at least %d", len(text), minArticleChars),
		}
	}

	return Article{Title: strings.TrimSpace(title), Text: text}, nil
}

func (f *ReadabilityFetcher) extract(
	ctx context.Context,
	body []byte,
	pageURL *url.URL,
) (string, string) {
	parsed, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(parsed.TextContent) != "" {
		return parsed.Title, parsed.TextContent
	}

	if err != nil {
		f.log.DebugContext(ctx, "Readability parse failed, falling back to paragraph scrape",
			"error", err,
			"url", pageURL.String())
	}

	return scrapeParagraphs(body)
}

// scrapeParagraphs is the last-resort extractor: the page title plus the
// concatenated text of all <p> elements.
func scrapeParagraphs(body []byte) (string, string) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", ""
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	return strings.TrimSpace(doc.Find("title").First().Text()), strings.Join(paragraphs, "\n\n")
}

func classifyTransportError(err error) Reason {
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ReasonTimeout
	}

	return ReasonUnreachable
}

func classifyStatus(statusCode int) (Reason, bool) {
	switch {
	case statusCode == http.StatusUnauthorized,
		statusCode == http.StatusForbidden,
		statusCode == http.StatusPaymentRequired,
		statusCode == http.StatusUnavailableForLegalReasons,
		statusCode == http.StatusTooManyRequests:
		return ReasonBlocked, true
	case statusCode >= http.StatusBadRequest:
		return ReasonUnreachable, true
	default:
		return "", false
	}
}
