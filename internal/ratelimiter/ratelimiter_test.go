package ratelimiter

import (
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestSendAfterStopReturnsError(t *testing.T) {
	rl := New(nil, slog.Default())

	rl.Stop()

	// Give the queue goroutine time to observe cancellation and exit.
	time.Sleep(50 * time.Millisecond)

	_, err := rl.Send(tgbotapi.NewMessage(42, "hello"))
	if !errors.Is(err, rl.ctx.Err()) {
		t.Errorf("Send after Stop error = %v, want %v", err, rl.ctx.Err())
	}
}

func TestConcurrentSendDuringStopDoesNotPanic(t *testing.T) {
	rl := New(nil, slog.Default())

	rl.Stop()
	time.Sleep(50 * time.Millisecond)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if _, err := rl.Send(tgbotapi.NewMessage(42, "hello")); err == nil {
				t.Error("Expected an error from Send after Stop")
			}
		}()
	}

	wg.Wait()
}

func TestGetDelay(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		chatID   int64
		lastSent time.Time
		wantZero bool
	}{
		{
			"Private chat - no delay needed",
			123456789,
			now.Add(-2 * time.Second),
			true,
		},
		{
			"Private chat - delay needed",
			123456789,
			now.Add(-500 * time.Millisecond),
			false,
		},
		{
			"Group chat - no delay needed",
			-123456789,
			now.Add(-4 * time.Second),
			true,
		},
		{
			"Group chat - delay needed",
			-123456789,
			now.Add(-1 * time.Second),
			false,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := getDelay(test.chatID, test.lastSent)

			if test.wantZero && got > 0 {
				t.Errorf("Expected zero delay, got %v", got)
			}

			if !test.wantZero && got <= 0 {
				t.Errorf("Expected positive delay, got %v", got)
			}
		})
	}
}

func TestGetChatID(t *testing.T) {
	tests := []struct {
		name    string
		message tgbotapi.Chattable
		want    int64
	}{
		{
			"Message config",
			tgbotapi.NewMessage(42, "hello"),
			42,
		},
		{
			"Chat action config",
			tgbotapi.NewChatAction(-100, tgbotapi.ChatTyping),
			-100,
		},
		{
			"Unknown chattable",
			tgbotapi.NewCallback("id", "text"),
			0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := getChatID(test.message); got != test.want {
				t.Errorf("getChatID = %d, want %d", got, test.want)
			}
		})
	}
}
