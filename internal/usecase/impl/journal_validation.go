// Package impl contains the implementation of the application's business logic.
package impl

import (
	"strings"
	"time"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/usecase"
)

// validateDraft checks a journal submission field by field and returns the
// first failing reason as a validation error. The check order and the
// message strings are part of the API contract, so clients can rely on
// which complaint surfaces first.
func validateDraft(input *usecase.SubmitJournalInput, now time.Time) error {
	if input.Date == "" {
		return domainerrors.NewValidationError("Journal entry date is required")
	}
	if _, err := time.Parse(entity.DateLayout, input.Date); err != nil {
		return domainerrors.NewValidationError("Invalid date format")
	}

	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.NewValidationError("Title is required")
	}

	if input.ContentType == "" {
		return domainerrors.NewValidationError("Content and its type are required")
	}
	if input.ContentType == "text" && strings.TrimSpace(input.TextPayload) == "" {
		return domainerrors.NewValidationError("Content and its type are required")
	}

	// Entries are append-only at the calendar level: today and future dates
	// only. ISO dates compare lexicographically, so string comparison is a
	// chronological comparison.
	if input.Date < now.UTC().Format(entity.DateLayout) {
		return domainerrors.NewValidationError("Cannot add or update journals for past dates")
	}

	if input.ProductivityRating == 0 {
		return domainerrors.NewValidationError("Productivity rating is required")
	}
	if input.ProductivityRating < 1 || input.ProductivityRating > 10 {
		return domainerrors.NewValidationError("Productivity rating must be between 1 and 10")
	}

	if input.Mood == nil || input.Mood.Emoji == "" || input.Mood.Label == "" {
		return domainerrors.NewValidationError("Mood is required")
	}

	return nil
}
