package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkbrief/internal/article"
	"linkbrief/internal/auth"
	"linkbrief/internal/bot"
	"linkbrief/internal/config"
	"linkbrief/internal/database"
	"linkbrief/internal/pipeline"
	"linkbrief/internal/prefs"
	"linkbrief/internal/summarizer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	start := time.Now()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.ErrorContext(ctx, "Failed to load config",
			"error", err)

		return
	}
	log.InfoContext(ctx, "Config is loaded",
		"allowedUsersCount", len(cfg.AllowedUsers),
		"dbPath", cfg.DBPath)

	store, closeStore, err := initStore(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize preference store",
			"error", err,
			"dbPath", cfg.DBPath)

		return
	}
	defer closeStore()

	summ, err := initSummarizer(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize summarizer",
			"error", err)

		return
	}

	p := pipeline.New(pipeline.Config{
		Authorizer:       auth.New(cfg.AllowedUsers),
		Prefs:            store,
		Fetcher:          article.NewReadabilityFetcher(cfg.FetchTimeout, log),
		Summarizer:       summ,
		FetchTimeout:     cfg.FetchTimeout,
		SummarizeTimeout: cfg.SummarizeTimeout,
	}, log)

	botInst, err := bot.New(cfg.Token, p, log)
	if err != nil {
		log.ErrorContext(ctx, "Failed to initialize bot",
			"error", err,
			"allowedUsersCount", len(cfg.AllowedUsers))

		return
	}
	log.InfoContext(ctx, "Bot is initialized",
		"allowedUsersCount", len(cfg.AllowedUsers))

	go func() {
		botInst.Start(ctx)
	}()
	log.InfoContext(ctx, "Bot is started",
		"updateTimeoutSeconds", bot.BotUpdateTimeout)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	sig := <-c
	log.InfoContext(ctx, "Shutdown signal is received",
		"signal", sig.String())
	cancel()

	botInst.Stop()
	log.InfoContext(ctx, "Bot is stopped",
		"uptimeSeconds", time.Since(start).Seconds())
}

func initStore(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (prefs.Store, func(), error) {
	if cfg.DBPath == "" {
		log.InfoContext(ctx, "Using in-memory preference store")

		return prefs.NewMemoryStore(), func() {}, nil
	}

	db, err := database.New(ctx, cfg.DBPath, log)
	if err != nil {
		return nil, nil, err
	}

	closeStore := func() {
		if err := db.Close(); err != nil {
			log.ErrorContext(ctx, "Failed to close db",
				"error", err,
				"dbPath", cfg.DBPath)
		}
	}

	return db, closeStore, nil
}

func initSummarizer(
	ctx context.Context,
	cfg config.Config,
	log *slog.Logger,
) (summarizer.Summarizer, error) {
	if cfg.OpenAIAPIKey != "" {
		s, err := summarizer.NewOpenAISummarizer(cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}

		log.InfoContext(ctx, "Summarizer is initialized",
			"provider", "openai")

		return s, nil
	}

	s, err := summarizer.NewGeminiSummarizer(cfg.GeminiAPIKey)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "Summarizer is initialized",
		"provider", "gemini")

	return s, nil
}
