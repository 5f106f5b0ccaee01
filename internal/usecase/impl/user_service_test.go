package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	mockRepo "memoria/internal/mocks/repository"
	mockSvc "memoria/internal/mocks/service"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service   usecase.UserUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	tokenRepo *mockRepo.MockVerificationTokenRepository
	hasher    *mockSvc.MockPasswordHasher
	tokenSvc  *mockSvc.MockTokenService
	mailer    *mockSvc.MockMailer
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockVerificationTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	mailer := mockSvc.NewMockMailer(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenSvc,
		Mailer:       mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:   svc,
		txManager: txManager,
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		hasher:    hasher,
		tokenSvc:  tokenSvc,
		mailer:    mailer,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// the fixture's repository mocks, as the real manager would against tx-scoped
// repositories.
func (fx userServiceFixtures) expectTransaction(t *testing.T) {
	t.Helper()

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	factory.EXPECT().TokenRepo().Return(fx.tokenRepo).Maybe()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestUserService_Register_NewUser(t *testing.T) {
	fx := createTestUserService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	newID := uuid.New()

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			assert.Equal(t, "Ada", user.Name)
			assert.Equal(t, "hashed-secret", user.PasswordHash)
			assert.False(t, user.Verified)
			user.ID = newID

			return nil
		})
	fx.tokenRepo.EXPECT().DeleteByUserID(ctx, newID).Return(nil)

	var issuedToken string
	fx.tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailVerificationToken")).
		RunAndReturn(func(_ context.Context, token *entity.EmailVerificationToken) error {
			assert.Equal(t, newID, token.UserID)
			assert.Len(t, token.Token, 64)
			assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt, time.Minute)
			issuedToken = token.Token

			return nil
		})

	fx.mailer.EXPECT().
		SendVerificationMail(ctx, "Ada", "ada@example.com", mock.AnythingOfType("string")).
		RunAndReturn(func(_ context.Context, _ string, _ string, verifyURL string) error {
			assert.True(t, strings.HasPrefix(verifyURL, "https://memoria.example.com/verify-email?token="))
			assert.Contains(t, verifyURL, issuedToken)

			return nil
		})

	require.NoError(t, fx.service.Register(ctx, input))
}

func TestUserService_Register_VerifiedDuplicate(t *testing.T) {
	fx := createTestUserService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().
		FindByEmail(ctx, input.Email).
		Return(&entity.User{ID: uuid.New(), Email: input.Email, Verified: true}, nil)

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	fx.mailer.AssertNotCalled(t, "SendVerificationMail", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_Register_UnverifiedDuplicateReissuesLink(t *testing.T) {
	fx := createTestUserService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}
	existing := &entity.User{ID: uuid.New(), Name: "Ada", Email: input.Email, Verified: false}

	fx.hasher.EXPECT().Hash("secret123").Return("hashed-secret", nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(existing, nil)
	fx.tokenRepo.EXPECT().DeleteByUserID(ctx, existing.ID).Return(nil)
	fx.tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.EmailVerificationToken")).
		Return(nil)
	fx.mailer.EXPECT().
		SendVerificationMail(ctx, "Ada", "ada@example.com", mock.AnythingOfType("string")).
		Return(nil)

	require.NoError(t, fx.service.Register(ctx, input))
	fx.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "secret123"}

	fx.hasher.EXPECT().Hash("secret123").Return("", errors.New("bcrypt exploded"))

	err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed", Verified: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	fx.tokenSvc.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestUserService_Login_UnverifiedEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed", Verified: false}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailNotVerified))
	fx.tokenSvc.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", PasswordHash: "hashed", Verified: true}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("secret123", "hashed").Return(true)
	fx.tokenSvc.EXPECT().GenerateToken(user).Return("signed.jwt.token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "secret123"})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.Token)
	assert.Equal(t, user, output.User)
}

func TestUserService_VerifyEmail_Success(t *testing.T) {
	fx := createTestUserService(t)
	fx.expectTransaction(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Email: "ada@example.com", Verified: false}

	fx.tokenRepo.EXPECT().
		Consume(ctx, "valid-token").
		Return(&entity.EmailVerificationToken{Token: "valid-token", UserID: userID}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, updated *entity.User) error {
			assert.True(t, updated.Verified)

			return nil
		})

	require.NoError(t, fx.service.VerifyEmail(ctx, "valid-token"))
}

func TestUserService_VerifyEmail_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)
	fx.expectTransaction(t)

	ctx := context.Background()

	fx.tokenRepo.EXPECT().
		Consume(ctx, "spent-token").
		Return(nil, repository.ErrVerificationTokenNotFound)

	err := fx.service.VerifyEmail(ctx, "spent-token")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrVerificationTokenInvalid))
	fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_CurrentUser(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Verified: true}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	found, err := fx.service.CurrentUser(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user, found)
}

func TestUserService_CurrentUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	unknownID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, unknownID).Return(nil, repository.ErrUserNotFound)

	found, err := fx.service.CurrentUser(ctx, unknownID)

	require.Error(t, err)
	assert.Nil(t, found)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
