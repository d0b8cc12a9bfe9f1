package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"linkbrief/internal/domain"
)

const languageCallbackPrefix = "lang_"

func (b *Bot) handleCallbackQuery(ctx context.Context, callback *tgbotapi.CallbackQuery) error {
	chatID := callbackChatID(callback)
	if chatID == 0 {
		return errors.New("callback query carries no chat")
	}

	return b.withSpinner(ctx, chatID, func() error {
		data := strings.TrimSpace(callback.Data)

		if languageStr, ok := strings.CutPrefix(data, languageCallbackPrefix); ok {
			return b.handleLanguageQuery(ctx, languageStr, chatID, callback)
		}

		return nil
	})
}

func (b *Bot) handleLanguageQuery(
	ctx context.Context,
	languageStr string,
	chatID int64,
	callback *tgbotapi.CallbackQuery,
) error {
	language, ok := domain.ParseLanguage(languageStr)
	if !ok {
		return b.errorCallbackAnswer(callback, fmt.Errorf("parse language %q", languageStr))
	}

	reply := b.pipeline.SelectLanguage(ctx, callback.From.ID, language)

	var errs []error

	if _, err := b.rateLimiter.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
		errs = append(errs, fmt.Errorf("send request: %w", err))
	}

	if err := b.sendReply(chatID, reply); err != nil {
		errs = append(errs, fmt.Errorf("send reply: %w", err))
	}

	return errors.Join(errs...)
}

func (b *Bot) errorCallbackAnswer(
	callback *tgbotapi.CallbackQuery,
	err error,
) error {
	if _, sendErr := b.rateLimiter.Request(tgbotapi.NewCallback(callback.ID, "❌ Failed.")); sendErr != nil {
		return errors.Join(err, fmt.Errorf("send request: %w", sendErr))
	}
	return err
}
