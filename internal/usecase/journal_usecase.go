// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"memoria/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SubmitJournalInput defines the data required to add or update a journal
// entry. Staged files carry the binaries; TextPayload carries the inline
// body when ContentType is "text".
type SubmitJournalInput struct {
	Date               string
	Title              string
	ContentType        string
	TextPayload        string
	ProductivityRating int
	Mood               *entity.Mood
}

// --- Output DTOs ---

// SubmitJournalOutput reports whether the submission created a new entry or
// replaced an existing one, along with the persisted state.
type SubmitJournalOutput struct {
	Created bool
	Journal *entity.JournalEntry
}

// PaginatedJournalsOutput is one page of entries plus the has-more flag the
// infinite scroll UI keys on.
type PaginatedJournalsOutput struct {
	Journals []*entity.JournalEntry
	HasMore  bool
}

// JournalMetricsOutput aggregates the dashboard counters.
type JournalMetricsOutput struct {
	TotalJournals     int64
	ThisMonthJournals int64
	HappyMoodDays     int64
}

// JournalUsecase defines the interface for journal-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type JournalUsecase interface {
	// Submit validates the draft, reconciles remote assets, and atomically
	// inserts or replaces the entry for (owner, input.Date). Staged files
	// are always removed before Submit returns, on every path.
	Submit(ctx context.Context, ownerID uuid.UUID, input *SubmitJournalInput, files []*entity.UploadFile) (*SubmitJournalOutput, error)

	// ByDate fetches the single entry for (owner, date).
	ByDate(ctx context.Context, ownerID uuid.UUID, date string) (*entity.JournalEntry, error)

	// Paginated returns one page of entries, newest date first.
	Paginated(ctx context.Context, ownerID uuid.UUID, skip int) (*PaginatedJournalsOutput, error)

	// EntryDates lists every date the owner journaled on, ascending.
	EntryDates(ctx context.Context, ownerID uuid.UUID) ([]string, error)

	// Metrics computes the dashboard counters for the owner.
	Metrics(ctx context.Context, ownerID uuid.UUID) (*JournalMetricsOutput, error)

	// Delete removes the entry for (owner, date) together with its remote assets.
	Delete(ctx context.Context, ownerID uuid.UUID, date string) error
}
