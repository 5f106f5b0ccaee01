package postgres

import (
	"context"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	"memoria/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// journalRepository implements the domain.JournalRepository interface using GORM.
type journalRepository struct {
	db *gorm.DB
}

// NewJournalRepository is the constructor for journalRepository.
func NewJournalRepository(db *gorm.DB) repository.JournalRepository {
	return &journalRepository{db: db}
}

// Upsert inserts the entry, or replaces the row for the same (user_id, date),
// in a single INSERT ... ON CONFLICT statement. RETURNING hands back the
// store-side identity and timestamps, which is how callers learn whether the
// row was created (created_at == updated_at) or replaced.
func (repo *journalRepository) Upsert(ctx context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
	journalM := fromJournalDomain(entry)

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
				DoUpdates: clause.AssignmentColumns([]string{
					"title",
					"content_kind",
					"content_payload",
					"thumbnail",
					"snap_photos",
					"productivity_rating",
					"mood_emoji",
					"mood_label",
					"updated_at",
				}),
			},
			clause.Returning{},
		).
		Create(journalM).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "missing required journal fields")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert journal entry")
	}

	return toJournalDomain(journalM), nil
}

// FindByOwnerAndDate retrieves the single entry for (owner, date).
func (repo *journalRepository) FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date string) (*entity.JournalEntry, error) {
	var journalM model.JournalModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", ownerID, date).
		First(&journalM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJournalNotFound
		}

		return nil, errors.Wrap(err, "failed to find journal entry")
	}

	return toJournalDomain(&journalM), nil
}

// DeleteByOwnerAndDate removes the entry row permanently.
func (repo *journalRepository) DeleteByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date string) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", ownerID, date).
		Delete(&model.JournalModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete journal entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJournalNotFound
	}

	return nil
}

// ListDates returns every date the owner has an entry for, ascending.
func (repo *journalRepository) ListDates(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	var dates []string
	if err := repo.db.WithContext(ctx).
		Model(&model.JournalModel{}).
		Where("user_id = ?", ownerID).
		Order("date ASC").
		Pluck("date", &dates).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list journal dates")
	}

	return dates, nil
}

// FindPage returns up to limit entries sorted by date descending, skipping
// offset entries.
func (repo *journalRepository) FindPage(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.JournalEntry, error) {
	var journalMs []*model.JournalModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&journalMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find journal page")
	}

	entries := make([]*entity.JournalEntry, 0, len(journalMs))
	for _, journalM := range journalMs {
		entries = append(entries, toJournalDomain(journalM))
	}

	return entries, nil
}

// CountByOwner returns the total number of entries for the owner.
func (repo *journalRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JournalModel{}).
		Where("user_id = ?", ownerID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count journal entries")
	}

	return count, nil
}

// CountByDateRange counts entries with from <= date < to. Dates are stored
// as ISO strings, so lexicographic comparison is chronological comparison.
func (repo *journalRepository) CountByDateRange(ctx context.Context, ownerID uuid.UUID, from, to string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JournalModel{}).
		Where("user_id = ? AND date >= ? AND date < ?", ownerID, from, to).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count journal entries by date range")
	}

	return count, nil
}

// CountByMoodLabel counts entries whose mood label equals label.
func (repo *journalRepository) CountByMoodLabel(ctx context.Context, ownerID uuid.UUID, label string) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.JournalModel{}).
		Where("user_id = ? AND mood_label = ?", ownerID, label).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count journal entries by mood")
	}

	return count, nil
}

// --- Mapper Functions ---

// toJournalDomain converts a GORM JournalModel to a domain JournalEntry entity.
func toJournalDomain(data *model.JournalModel) *entity.JournalEntry {
	if data == nil {
		return nil
	}

	return &entity.JournalEntry{
		ID:     data.ID,
		UserID: data.UserID,
		Date:   data.Date,
		Title:  data.Title,
		Content: entity.JournalContent{
			Kind:    entity.ContentKind(data.ContentKind),
			Payload: data.ContentPayload,
		},
		Thumbnail:          data.Thumbnail,
		SnapPhotos:         data.SnapPhotos,
		ProductivityRating: data.ProductivityRating,
		Mood: entity.Mood{
			Emoji: data.MoodEmoji,
			Label: data.MoodLabel,
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromJournalDomain converts a domain JournalEntry entity to a GORM JournalModel.
func fromJournalDomain(data *entity.JournalEntry) *model.JournalModel {
	if data == nil {
		return nil
	}

	return &model.JournalModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		Date:               data.Date,
		Title:              data.Title,
		ContentKind:        string(data.Content.Kind),
		ContentPayload:     data.Content.Payload,
		Thumbnail:          data.Thumbnail,
		SnapPhotos:         data.SnapPhotos,
		ProductivityRating: data.ProductivityRating,
		MoodEmoji:          data.Mood.Emoji,
		MoodLabel:          data.Mood.Label,
	}
}
