package repository

import (
	"context"
	"errors"

	"memoria/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJournalNotFound is returned when no entry exists for a given (owner, date).
var ErrJournalNotFound = errors.New("journal entry not found")

// JournalRepository defines persistence for journal entries. Uniqueness of
// (owner, date) is enforced by the store itself: Upsert is a single atomic
// insert-or-replace, never a read-then-write in application code.
type JournalRepository interface {
	// Upsert inserts the entry, or replaces the existing row for the same
	// (owner, date), atomically. The returned entry carries the store's
	// identity and timestamps; CreatedAt == UpdatedAt signals an insert.
	Upsert(ctx context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error)

	// FindByOwnerAndDate retrieves the single entry for (owner, date).
	FindByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date string) (*entity.JournalEntry, error)

	// DeleteByOwnerAndDate removes the entry row permanently.
	DeleteByOwnerAndDate(ctx context.Context, ownerID uuid.UUID, date string) error

	// ListDates returns every date the owner has an entry for, ascending.
	ListDates(ctx context.Context, ownerID uuid.UUID) ([]string, error)

	// FindPage returns up to limit entries sorted by date descending,
	// skipping offset entries.
	FindPage(ctx context.Context, ownerID uuid.UUID, offset, limit int) ([]*entity.JournalEntry, error)

	// CountByOwner returns the total number of entries for the owner.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// CountByDateRange counts entries with from <= date < to.
	CountByDateRange(ctx context.Context, ownerID uuid.UUID, from, to string) (int64, error)

	// CountByMoodLabel counts entries whose mood label equals label.
	CountByMoodLabel(ctx context.Context, ownerID uuid.UUID, label string) (int64, error)
}
