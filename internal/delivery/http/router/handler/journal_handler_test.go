package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"memoria/internal/delivery/http/response"
	"memoria/internal/domain/entity"
	mockUsecase "memoria/internal/mocks/usecase"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSubmitContext(t *testing.T, ownerID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	form := url.Values{}
	form.Set("journalEntryDate", "2025-06-15")
	form.Set("title", "A good day")
	form.Set("contentType", "text")
	form.Set("contentPayload", "Wrote some Go.")
	form.Set("productivityRating", "4")
	form.Set("selectedMood", `{"emoji":"😄","label":"Happy"}`)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/journals/addOrUpdate", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("userID", ownerID)

	return c, rec
}

func TestJournalHandler_Submit_StatusOKOnBothOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		created bool
		message string
	}{
		{name: "created", created: true, message: "Journal added successfully"},
		{name: "updated", created: false, message: "Journal updated successfully"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockJournalUsecase(t)
			h := NewJournalHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

			ownerID := uuid.New()
			c, rec := newSubmitContext(t, ownerID)

			entry := &entity.JournalEntry{UserID: ownerID, Date: "2025-06-15", Title: "A good day"}
			uc.EXPECT().
				Submit(mock.Anything, ownerID, mock.AnythingOfType("*usecase.SubmitJournalInput"), mock.Anything).
				RunAndReturn(func(_ context.Context, _ uuid.UUID, input *usecase.SubmitJournalInput, _ []*entity.UploadFile) (*usecase.SubmitJournalOutput, error) {
					assert.Equal(t, "2025-06-15", input.Date)
					assert.Equal(t, "Wrote some Go.", input.TextPayload)
					assert.Equal(t, 4, input.ProductivityRating)
					require.NotNil(t, input.Mood)
					assert.Equal(t, "Happy", input.Mood.Label)

					return &usecase.SubmitJournalOutput{Created: tt.created, Journal: entry}, nil
				})

			require.NoError(t, h.Submit(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var body response.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.True(t, body.Success)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
