package usecase

import (
	"context"

	"memoria/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	Token string
	User  *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an unverified account and emails a verification link.
	// Registering again with an unverified email re-issues the link.
	Register(ctx context.Context, input *RegisterInput) error

	// Login authenticates a verified user and returns a signed access token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyEmail consumes a verification token and activates the account.
	VerifyEmail(ctx context.Context, token string) error

	// CurrentUser loads the authenticated user's profile.
	CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
}
