package prefs

import (
	"context"

	"linkbrief/internal/domain"
)

// Store keeps each user's selected output language. A preference is absent
// until the user explicitly picks one; writes are last-write-wins.
type Store interface {
	Set(ctx context.Context, userID int64, language domain.Language) error
	Get(ctx context.Context, userID int64) (domain.Language, bool, error)
}
