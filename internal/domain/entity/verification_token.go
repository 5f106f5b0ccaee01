package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailVerificationToken is a short-lived, single-use token mailed to a
// freshly registered user. It is hard-deleted on consumption, so a second
// verification attempt with the same token cannot succeed.
type EmailVerificationToken struct {
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token is past its TTL at the given instant.
func (t *EmailVerificationToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
