package bot

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"linkbrief/internal/pipeline"
)

func (b *Bot) sendReply(chatID int64, reply pipeline.Reply) error {
	if reply.AskLanguage {
		return b.sendMessageWithKeyboard(chatID, reply.Text, b.languageKeyboard)
	}

	return b.sendMessage(chatID, reply.Text)
}

func (b *Bot) sendMessage(chatID int64, text string) error {
	message := b.newMessage(chatID, text)

	_, err := b.rateLimiter.Send(message)
	return err
}

func (b *Bot) sendMessageWithKeyboard(
	chatID int64,
	text string,
	keyboard [][]tgbotapi.InlineKeyboardButton,
) error {
	message := b.newMessage(chatID, text)
	message.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(keyboard...)

	_, err := b.rateLimiter.Send(message)
	return err
}

func (b *Bot) newMessage(chatID int64, text string) tgbotapi.MessageConfig {
	normalizedText := strings.ToValidUTF8(text, "?")
	if normalizedText != text {
		b.log.Warn("Message text had invalid UTF-8 and was normalized",
			"chatID", chatID,
			"originalLen", len(text),
			"normalizedLen", len(normalizedText))
	}

	message := tgbotapi.NewMessage(chatID, normalizedText)

	// See https://core.telegram.org/bots/api#markdownv2-style.
	message.ParseMode = tgbotapi.ModeMarkdownV2

	message.DisableWebPagePreview = true

	return message
}

func getLanguageKeyboard() [][]tgbotapi.InlineKeyboardButton {
	return [][]tgbotapi.InlineKeyboardButton{
		{
			tgbotapi.NewInlineKeyboardButtonData("🇬🇧 English", "lang_english"),
			tgbotapi.NewInlineKeyboardButtonData("🇮🇱 עברית", "lang_hebrew"),
		},
	}
}
