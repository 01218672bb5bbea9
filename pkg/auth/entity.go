package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing a registered surfer.
type User struct {
	ID             uuid.UUID
	Username       string
	Email          string
	PasswordHash   string
	SkillLevel     string
	FavoritePlaces []string
	CreatedAt      time.Time
}

// TokenPair bundles a short-lived access token and a long-lived refresh
// token. Each is independently verifiable; neither is stored server-side,
// so a pair stays valid until its embedded expiry.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}
