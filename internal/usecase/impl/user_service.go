package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"net/url"
	"time"

	"memoria/config"
	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	"memoria/internal/domain/service"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// verificationTokenTTL bounds how long a mailed verification link stays valid.
const verificationTokenTTL = time.Hour

// userService implements the UserUsecase interface.
type userService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	mailer        service.Mailer
	verifyBaseURL string
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	verifyBaseURL := ""
	if params.Config != nil && params.Config.Mail != nil {
		verifyBaseURL = params.Config.Mail.VerifyBaseURL
	}

	return &userService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		verifyBaseURL: verifyBaseURL,
		logger:        params.Logger,
	}
}

// Register creates an unverified account and emails a verification link. A
// duplicate registration against an unverified account re-issues the link
// instead of failing, so users who lost the first mail can retry signup.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.logger.InfoContext(ctx, "Starting user registration", slog.String("email", input.Email))

	// Hash outside the transaction, bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.ErrorContext(ctx, "Failed to hash password during registration", slog.Any("error", err))

		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	var pendingUser *entity.User
	var verificationToken string

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		tokenRepo := repoFactory.TokenRepo()

		existing, err := userRepo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "failed to find user by email")
		}

		if existing != nil {
			if existing.Verified {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			}

			// Unverified duplicate: keep the account, refresh the link.
			verificationToken, err = srv.issueVerificationToken(ctx, tokenRepo, existing.ID)
			if err != nil {
				return err
			}
			pendingUser = existing

			return nil
		}

		newUser := &entity.User{
			Name:         input.Name,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		verificationToken, err = srv.issueVerificationToken(ctx, tokenRepo, newUser.ID)
		if err != nil {
			return err
		}
		pendingUser = newUser

		return nil
	})
	if err != nil {
		srv.logger.ErrorContext(ctx, "Failed to execute registration transaction",
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return err
	}

	// The account is committed either way; mail delivery happens outside the
	// transaction so an SMTP hiccup cannot roll back the registration.
	if err := srv.mailer.SendVerificationMail(ctx, pendingUser.Name, pendingUser.Email, srv.verifyURL(verificationToken)); err != nil {
		srv.logger.ErrorContext(ctx, "Failed to send verification mail",
			slog.String("email", pendingUser.Email),
			slog.Any("error", err),
		)

		return err
	}

	srv.logger.DebugContext(ctx, "User registered, verification mail sent", slog.Any("userID", pendingUser.ID))

	return nil
}

// issueVerificationToken discards any outstanding tokens for the user and
// stores a fresh single-use one.
func (srv *userService) issueVerificationToken(ctx context.Context, tokenRepo repository.VerificationTokenRepository, userID uuid.UUID) (string, error) {
	if err := tokenRepo.DeleteByUserID(ctx, userID); err != nil {
		return "", errors.Wrap(err, "failed to discard outstanding verification tokens")
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", errors.Wrap(err, "failed to generate verification token")
	}
	token := hex.EncodeToString(raw)

	newToken := &entity.EmailVerificationToken{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(verificationTokenTTL),
	}
	if err := tokenRepo.Create(ctx, newToken); err != nil {
		return "", errors.Wrap(err, "failed to store verification token")
	}

	return token, nil
}

func (srv *userService) verifyURL(token string) string {
	return srv.verifyBaseURL + "?token=" + url.QueryEscape(token)
}

// Login authenticates a verified user and returns a signed access token.
// Unknown email and wrong password collapse into the same credential error.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.logger.DebugContext(ctx, "Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.WarnContext(ctx, "Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	if !user.Verified {
		return nil, domainerrors.ErrEmailNotVerified.WrapMessage("login blocked until email verification")
	}

	token, err := srv.tokenService.GenerateToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.logger.DebugContext(ctx, "User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		Token: token,
		User:  user,
	}, nil
}

// VerifyEmail consumes a verification token and activates the account. The
// token row is deleted in the same transaction that flips the flag, so a
// link can only ever be used once.
func (srv *userService) VerifyEmail(ctx context.Context, token string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.TokenRepo()
		userRepo := repoFactory.UserRepo()

		consumed, err := tokenRepo.Consume(ctx, token)
		if err != nil {
			if errors.Is(err, repository.ErrVerificationTokenNotFound) {
				return domainerrors.ErrVerificationTokenInvalid
			}

			return errors.Wrap(err, "failed to consume verification token")
		}

		user, err := userRepo.FindByID(ctx, consumed.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user for verification")
		}

		user.Verified = true
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to mark user verified")
		}

		srv.logger.InfoContext(ctx, "Email verified", slog.Any("userID", user.ID))

		return nil
	})
	if err != nil {
		srv.logger.WarnContext(ctx, "Email verification failed", slog.Any("error", err))

		return err
	}

	return nil
}

// CurrentUser loads the authenticated user's profile.
func (srv *userService) CurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}
