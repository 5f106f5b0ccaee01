package repository

import (
	"context"
	"errors"

	"memoria/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrVerificationTokenNotFound is returned when a token does not exist,
// has expired, or was already consumed.
var ErrVerificationTokenNotFound = errors.New("verification token not found")

// VerificationTokenRepository persists email verification tokens.
type VerificationTokenRepository interface {
	// Create stores a freshly issued token.
	Create(ctx context.Context, token *entity.EmailVerificationToken) error

	// Consume atomically deletes the token and returns it. A token can be
	// consumed exactly once; expired or already-consumed tokens report
	// ErrVerificationTokenNotFound.
	Consume(ctx context.Context, token string) (*entity.EmailVerificationToken, error)

	// DeleteByUserID discards any outstanding tokens for the user, used
	// when a duplicate unverified registration re-issues a fresh one.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}
