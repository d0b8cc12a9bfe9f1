package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"linkbrief/internal/article"
	"linkbrief/internal/auth"
	"linkbrief/internal/domain"
	"linkbrief/internal/format"
	"linkbrief/internal/link"
	"linkbrief/internal/prefs"
	"linkbrief/internal/summarizer"
)

const (
	defaultFetchTimeout     = 30 * time.Second
	defaultSummarizeTimeout = 60 * time.Second

	minRequestedBullets = 3
	maxRequestedBullets = 5
)

// Reply is the single outbound message produced for an inbound event.
// AskLanguage tells the transport to attach the language selection keyboard.
type Reply struct {
	Text        string
	AskLanguage bool
}

// Config carries the pipeline's collaborators and policies. Everything is an
// already-resolved in-memory value, so the pipeline stays constructible in
// tests without environment setup.
type Config struct {
	Authorizer       *auth.Authorizer
	Prefs            prefs.Store
	Fetcher          article.Fetcher
	Summarizer       summarizer.Summarizer
	FetchTimeout     time.Duration
	SummarizeTimeout time.Duration
}

// Pipeline runs the linear authorize -> resolve language -> extract link ->
// fetch -> summarize -> format flow for each inbound event. Every terminal
// state, success or failure, yields exactly one Reply and no retry.
type Pipeline struct {
	authorizer       *auth.Authorizer
	prefs            prefs.Store
	fetcher          article.Fetcher
	summarizer       summarizer.Summarizer
	fetchTimeout     time.Duration
	summarizeTimeout time.Duration
	log              *slog.Logger

	mu       sync.Mutex
	inFlight map[int64]struct{}
}

func New(cfg Config, log *slog.Logger) *Pipeline {
	fetchTimeout := cfg.FetchTimeout
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}

	summarizeTimeout := cfg.SummarizeTimeout
	if summarizeTimeout <= 0 {
		summarizeTimeout = defaultSummarizeTimeout
	}

	return &Pipeline{
		authorizer:       cfg.Authorizer,
		prefs:            cfg.Prefs,
		fetcher:          cfg.Fetcher,
		summarizer:       cfg.Summarizer,
		fetchTimeout:     fetchTimeout,
		summarizeTimeout: summarizeTimeout,
		log:              log,
		inFlight:         make(map[int64]struct{}),
	}
}

// Start handles the /start command.
func (p *Pipeline) Start(ctx context.Context, userID int64) Reply {
	if !p.authorizer.Allowed(userID) {
		return p.rejected(ctx, userID)
	}

	return Reply{Text: welcomeText, AskLanguage: true}
}

// ChooseLanguage handles the /language command.
func (p *Pipeline) ChooseLanguage(ctx context.Context, userID int64) Reply {
	if !p.authorizer.Allowed(userID) {
		return p.rejected(ctx, userID)
	}

	return Reply{Text: chooseLanguageText, AskLanguage: true}
}

// SelectLanguage stores the user's choice. Selecting the same language twice
// is a no-op beyond the confirmation reply.
func (p *Pipeline) SelectLanguage(
	ctx context.Context,
	userID int64,
	language domain.Language,
) Reply {
	if !p.authorizer.Allowed(userID) {
		return p.rejected(ctx, userID)
	}

	if err := p.prefs.Set(ctx, userID, language); err != nil {
		p.log.ErrorContext(ctx, "Failed to store language preference",
			"error", err,
			"userID", userID,
			"language", language)

		return Reply{Text: replyFailed}
	}

	return Reply{Text: fmt.Sprintf(replyLanguageSet, language.Title())}
}

// Summarize runs the full pipeline for a message (or caption) text and its
// entities; a hyperlinked caption carries its URL only in a text_link entity.
// At most one request per user is in flight at a time; overlapping requests
// from the same user are rejected with a busy reply, different users proceed
// independently.
func (p *Pipeline) Summarize(
	ctx context.Context,
	userID int64,
	text string,
	entities []link.Entity,
) Reply {
	if !p.authorizer.Allowed(userID) {
		return p.rejected(ctx, userID)
	}

	if !p.begin(userID) {
		p.log.DebugContext(ctx, "Request is already in flight",
			"userID", userID)

		return Reply{Text: replyBusy}
	}
	defer p.end(userID)

	language, ok, err := p.prefs.Get(ctx, userID)
	if err != nil {
		p.log.ErrorContext(ctx, "Failed to read language preference",
			"error", err,
			"userID", userID)

		return Reply{Text: replyFailed}
	}
	if !ok {
		return Reply{Text: replySelectLanguageFirst, AskLanguage: true}
	}

	if strings.TrimSpace(text) == "" {
		return Reply{Text: replyUnsupportedInput}
	}

	url, err := link.ExtractWithEntities(text, entities)
	if err != nil {
		if !errors.Is(err, link.ErrNoLink) {
			p.log.ErrorContext(ctx, "Failed to extract link",
				"error", err,
				"userID", userID)
		}

		return Reply{Text: replyNoLinkFound}
	}

	request := domain.SummaryRequest{Caller: userID, URL: url, Language: language}

	fetched, reply, ok := p.fetch(ctx, request)
	if !ok {
		return reply
	}

	result, reply, ok := p.summarize(ctx, request, fetched)
	if !ok {
		return reply
	}

	return Reply{Text: format.Summary(result, fetched.Title)}
}

func (p *Pipeline) fetch(
	ctx context.Context,
	request domain.SummaryRequest,
) (article.Article, Reply, bool) {
	fetchCtx, cancel := context.WithTimeout(ctx, p.fetchTimeout)
	defer cancel()

	fetched, err := p.fetcher.Fetch(fetchCtx, request.URL)
	if err != nil {
		p.log.WarnContext(ctx, "Failed to fetch article",
			"error", err,
			"userID", request.Caller,
			"url", request.URL)

		return article.Article{}, Reply{Text: replyFetchFailed}, false
	}

	return fetched, Reply{}, true
}

func (p *Pipeline) summarize(
	ctx context.Context,
	request domain.SummaryRequest,
	fetched article.Article,
) (domain.SummaryResult, Reply, bool) {
	summarizeCtx, cancel := context.WithTimeout(ctx, p.summarizeTimeout)
	defer cancel()

	bullets, err := p.summarizer.Summarize(summarizeCtx, summarizer.Input{
		Text:      fetched.Text,
		SourceURL: request.URL,
		Language:  request.Language,
	})
	if err != nil {
		p.log.WarnContext(ctx, "Failed to summarize article",
			"error", err,
			"userID", request.Caller,
			"url", request.URL)

		return domain.SummaryResult{}, Reply{Text: replySummarizeFailed}, false
	}

	// 3-5 bullets are requested, not guaranteed. Whatever came back is
	// passed through.
	if len(bullets) < minRequestedBullets || len(bullets) > maxRequestedBullets {
		p.log.DebugContext(ctx, "Bullet count is outside the requested range",
			"userID", request.Caller,
			"url", request.URL,
			"bullets", len(bullets))
	}

	return domain.SummaryResult{Bullets: bullets, Language: request.Language}, Reply{}, true
}

func (p *Pipeline) rejected(ctx context.Context, userID int64) Reply {
	p.log.DebugContext(ctx, "User is not allowed",
		"userID", userID)

	return Reply{Text: replyUnauthorized}
}

func (p *Pipeline) begin(userID int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.inFlight[userID]; ok {
		return false
	}

	p.inFlight[userID] = struct{}{}

	return true
}

func (p *Pipeline) end(userID int64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.inFlight, userID)
}
