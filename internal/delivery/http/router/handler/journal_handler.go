package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"memoria/internal/delivery/http/response"
	"memoria/internal/delivery/http/upload"
	"memoria/internal/domain/entity"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// JournalHandler holds dependencies for journal-related handlers.
type JournalHandler struct {
	uc     usecase.JournalUsecase
	logger *slog.Logger
}

// NewJournalHandler is the constructor for JournalHandler, injected by Fx.
func NewJournalHandler(uc usecase.JournalUsecase, logger *slog.Logger) *JournalHandler {
	return &JournalHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the add-or-update request. Fields arrive as multipart form
// values next to the staged files; field-level validation lives in the
// usecase so its ordered messages stay authoritative.
func (h *JournalHandler) Submit(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	// Text content rides the contentPayload form value; recorded content
	// arrives as a staged file under the same field name.
	input := &usecase.SubmitJournalInput{
		Date:        c.FormValue("journalEntryDate"),
		Title:       c.FormValue("title"),
		ContentType: c.FormValue("contentType"),
		TextPayload: c.FormValue("contentPayload"),
	}

	if rating := c.FormValue("productivityRating"); rating != "" {
		if parsed, err := strconv.Atoi(rating); err == nil {
			input.ProductivityRating = parsed
		}
	}

	// A mood that fails to parse is treated as absent; the usecase reports
	// the missing field with its canonical message.
	if moodJSON := c.FormValue("selectedMood"); moodJSON != "" {
		var mood entity.Mood
		if err := json.Unmarshal([]byte(moodJSON), &mood); err == nil {
			input.Mood = &mood
		}
	}

	output, err := h.uc.Submit(c.Request().Context(), userID, input, upload.StagedFiles(c))
	if err != nil {
		return errors.WithStack(err)
	}

	// Both outcomes answer 200; the message carries the created/updated
	// distinction.
	message := "Journal updated successfully"
	if output.Created {
		message = "Journal added successfully"
	}

	return response.Success(c, http.StatusOK, output.Journal, message)
}

// ByDate returns the single entry for the authenticated user on a date.
func (h *JournalHandler) ByDate(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	date := c.QueryParam("date")
	if date == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Journal entry date is required")
	}

	entry, err := h.uc.ByDate(c.Request().Context(), userID, date)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entry, "Journal retrieved successfully")
}

// Paginated returns one page of entries, newest first.
func (h *JournalHandler) Paginated(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	skip := 0
	if raw := c.QueryParam("skip"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			skip = parsed
		}
	}

	output, err := h.uc.Paginated(c.Request().Context(), userID, skip)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"journals": output.Journals,
		"hasMore":  output.HasMore,
	}, "Journals retrieved successfully")
}

// EntryDates lists every date the user journaled on.
func (h *JournalHandler) EntryDates(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	dates, err := h.uc.EntryDates(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dates, "Journal dates retrieved successfully")
}

// Metrics returns the dashboard counters.
func (h *JournalHandler) Metrics(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	metrics, err := h.uc.Metrics(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{
		"totalJournals":     metrics.TotalJournals,
		"thisMonthJournals": metrics.ThisMonthJournals,
		"happyMoodDays":     metrics.HappyMoodDays,
	}, "Journal metrics retrieved successfully")
}

// deleteJournalRequest carries the target date in the request body, the
// wire shape the web client already speaks.
type deleteJournalRequest struct {
	JournalEntryDate string `json:"journalEntryDate"`
}

// Delete removes the entry for a date together with its remote assets.
func (h *JournalHandler) Delete(c echo.Context) error {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	req := new(deleteJournalRequest)
	if err := c.Bind(req); err != nil {
		return response.BindingError(c, "INVALID_REQUEST", "Invalid request format")
	}
	if req.JournalEntryDate == "" {
		return response.BadRequest(c, "VALIDATION_FAILED", "Journal entry date is required")
	}

	if err := h.uc.Delete(c.Request().Context(), userID, req.JournalEntryDate); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Journal deleted successfully")
}
