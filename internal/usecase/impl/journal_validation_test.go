package impl

import (
	"testing"
	"time"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft(date string) *usecase.SubmitJournalInput {
	return &usecase.SubmitJournalInput{
		Date:               date,
		Title:              "A good day",
		ContentType:        "text",
		TextPayload:        "Wrote some Go.",
		ProductivityRating: 4,
		Mood:               &entity.Mood{Emoji: "😄", Label: "Happy"},
	}
}

func TestValidateDraft_FirstFailingReasonWins(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	today := now.UTC().Format(entity.DateLayout)

	tests := []struct {
		name    string
		mutate  func(*usecase.SubmitJournalInput)
		message string
	}{
		{
			name:    "missing date",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Date = "" },
			message: "Journal entry date is required",
		},
		{
			name:    "malformed date",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Date = "15-06-2025" },
			message: "Invalid date format",
		},
		{
			name:    "missing title",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Title = "   " },
			message: "Title is required",
		},
		{
			name:    "missing content type",
			mutate:  func(in *usecase.SubmitJournalInput) { in.ContentType = "" },
			message: "Content and its type are required",
		},
		{
			name:    "text content without body",
			mutate:  func(in *usecase.SubmitJournalInput) { in.TextPayload = "" },
			message: "Content and its type are required",
		},
		{
			name:    "backdated entry",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Date = "2025-06-14" },
			message: "Cannot add or update journals for past dates",
		},
		{
			name:    "missing productivity rating",
			mutate:  func(in *usecase.SubmitJournalInput) { in.ProductivityRating = 0 },
			message: "Productivity rating is required",
		},
		{
			name:    "productivity rating above range",
			mutate:  func(in *usecase.SubmitJournalInput) { in.ProductivityRating = 42 },
			message: "Productivity rating must be between 1 and 10",
		},
		{
			name:    "negative productivity rating",
			mutate:  func(in *usecase.SubmitJournalInput) { in.ProductivityRating = -3 },
			message: "Productivity rating must be between 1 and 10",
		},
		{
			name:    "missing mood",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Mood = nil },
			message: "Mood is required",
		},
		{
			name:    "empty mood",
			mutate:  func(in *usecase.SubmitJournalInput) { in.Mood = &entity.Mood{} },
			message: "Mood is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validDraft(today)
			tt.mutate(input)

			err := validateDraft(input, now)
			require.Error(t, err)

			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.message, appErr.Message())
			assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
		})
	}
}

func TestValidateDraft_ValidationOrder(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// Every field is broken at once; the date complaint must surface first.
	input := &usecase.SubmitJournalInput{}

	err := validateDraft(input, now)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Journal entry date is required", appErr.Message())

	// Fix the date, the title complaint is next.
	input.Date = now.Format(entity.DateLayout)
	err = validateDraft(input, now)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Title is required", appErr.Message())

	// Fix the title, content is next.
	input.Title = "Day"
	err = validateDraft(input, now)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Content and its type are required", appErr.Message())
}

func TestValidateDraft_AcceptsTodayAndFuture(t *testing.T) {
	now := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)

	require.NoError(t, validateDraft(validDraft("2025-06-15"), now))
	require.NoError(t, validateDraft(validDraft("2025-07-01"), now))
}

func TestValidateDraft_RecordedContentNeedsNoInlineBody(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	input := validDraft("2025-06-15")
	input.ContentType = "audio/webm"
	input.TextPayload = ""

	// The binary arrives as a staged file; validation only checks the type.
	require.NoError(t, validateDraft(input, now))
}
