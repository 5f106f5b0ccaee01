package postgres

import (
	"context"
	"time"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	"memoria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// verificationTokenRepository implements the domain.VerificationTokenRepository interface using GORM.
type verificationTokenRepository struct {
	db *gorm.DB
}

// NewVerificationTokenRepository is the constructor for verificationTokenRepository.
func NewVerificationTokenRepository(db *gorm.DB) repository.VerificationTokenRepository {
	return &verificationTokenRepository{db: db}
}

// Create stores a freshly issued token.
func (repo *verificationTokenRepository) Create(ctx context.Context, token *entity.EmailVerificationToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			// 32 random bytes colliding means the token source is broken,
			// not that the caller raced anyone.
			return domainerrors.NewDatabaseExecuteError(err, "verification token collision")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create verification token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Consume deletes the token row and returns it in one statement. The
// DELETE ... RETURNING round trip is what makes single consumption hold:
// two concurrent consumers race on the row delete, and exactly one wins.
func (repo *verificationTokenRepository) Consume(ctx context.Context, token string) (*entity.EmailVerificationToken, error) {
	var tokenM model.VerificationTokenModel
	result := repo.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("token = ? AND expires_at > ?", token, time.Now()).
		Delete(&tokenM)
	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to consume verification token")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrVerificationTokenNotFound
	}

	return toTokenDomain(&tokenM), nil
}

// DeleteByUserID discards any outstanding tokens for the user.
func (repo *verificationTokenRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.VerificationTokenModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete verification tokens")
	}

	return nil
}

// --- Mapper Functions ---

func toTokenDomain(data *model.VerificationTokenModel) *entity.EmailVerificationToken {
	if data == nil {
		return nil
	}

	return &entity.EmailVerificationToken{
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromTokenDomain(data *entity.EmailVerificationToken) *model.VerificationTokenModel {
	if data == nil {
		return nil
	}

	return &model.VerificationTokenModel{
		Token:     data.Token,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
