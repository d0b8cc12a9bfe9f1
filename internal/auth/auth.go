package auth

// Authorizer answers whether a Telegram user may use the bot. The allow-list
// is fixed at construction time and never mutated afterwards.
type Authorizer struct {
	allowed map[int64]struct{}
}

func New(allowedUsers []int64) *Authorizer {
	allowed := make(map[int64]struct{}, len(allowedUsers))
	for _, userID := range allowedUsers {
		allowed[userID] = struct{}{}
	}

	return &Authorizer{allowed: allowed}
}

func (a *Authorizer) Allowed(userID int64) bool {
	_, ok := a.allowed[userID]
	return ok
}
