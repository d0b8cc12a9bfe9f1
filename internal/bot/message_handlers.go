package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"linkbrief/internal/domain"
	"linkbrief/internal/link"
)

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) error {
	return b.withSpinner(ctx, message.Chat.ID, func() error {
		text := message.Text
		entities := message.Entities
		if strings.TrimSpace(text) == "" {
			// Images and other attachments carry the link in the caption.
			text = message.Caption
			entities = message.CaptionEntities
		}

		// Entity offsets are relative to the untrimmed text, so routing uses
		// a trimmed copy and extraction gets the original.
		trimmed := strings.TrimSpace(text)

		chatID := message.Chat.ID
		userID := message.From.ID

		switch {
		case strings.HasPrefix(trimmed, "/start"):
			return b.sendReply(chatID, b.pipeline.Start(ctx, userID))
		case strings.HasPrefix(trimmed, "/language"):
			return b.sendReply(chatID, b.pipeline.ChooseLanguage(ctx, userID))
		default:
			// A typed language name works the same as the keyboard.
			if language, ok := domain.ParseLanguage(trimmed); ok {
				return b.sendReply(chatID, b.pipeline.SelectLanguage(ctx, userID, language))
			}

			return b.sendReply(chatID, b.pipeline.Summarize(ctx, userID, text, linkEntities(entities)))
		}
	})
}

func linkEntities(entities []tgbotapi.MessageEntity) []link.Entity {
	if len(entities) == 0 {
		return nil
	}

	converted := make([]link.Entity, 0, len(entities))
	for _, entity := range entities {
		converted = append(converted, link.Entity{
			Type:   entity.Type,
			Offset: entity.Offset,
			Length: entity.Length,
			URL:    entity.URL,
		})
	}

	return converted
}
