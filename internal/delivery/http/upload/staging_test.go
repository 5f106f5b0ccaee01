package upload

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"strings"
	"testing"

	"memoria/config"
	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStager(t *testing.T) *Stager {
	t.Helper()

	cfg := &config.Config{}
	cfg.Upload = &config.UploadConfig{
		Dir:          t.TempDir(),
		MaxBytes:     10 << 20,
		AllowedMIMEs: []string{"image/png", "image/jpeg", "video/webm", "audio/webm"},
	}

	stager, err := NewStager(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return stager
}

func addFilePart(t *testing.T, writer *multipart.Writer, field, filename, mimeType, content string) {
	t.Helper()

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write([]byte(content))
	require.NoError(t, err)
}

// performStage sends the body through the staging middleware and captures
// whatever the downstream handler sees on the context.
func performStage(t *testing.T, stager *Stager, body *bytes.Buffer, contentType string) ([]*entity.UploadFile, error) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/journals/addOrUpdate", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var captured []*entity.UploadFile
	handler := stager.Stage(func(c echo.Context) error {
		captured = StagedFiles(c)

		return c.NoContent(http.StatusOK)
	})

	return captured, handler(c)
}

func TestStager_StagesAllowedFiles(t *testing.T) {
	stager := newTestStager(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	require.NoError(t, writer.WriteField("date", "2025-06-15"))
	addFilePart(t, writer, "thumbnail", "cover.png", "image/png", "png-bytes")
	addFilePart(t, writer, "snapPhotos", "snap1.jpg", "image/jpeg", "jpg-bytes")
	addFilePart(t, writer, "contentPayload", "note.webm", "audio/webm", "webm-bytes")
	require.NoError(t, writer.Close())

	files, err := performStage(t, stager, body, writer.FormDataContentType())

	require.NoError(t, err)
	require.Len(t, files, 3)

	bySlot := make(map[entity.UploadSlot]*entity.UploadFile, len(files))
	for _, file := range files {
		bySlot[file.Slot] = file
	}

	thumb := bySlot[entity.SlotThumbnail]
	require.NotNil(t, thumb)
	assert.Equal(t, "image/png", thumb.MimeType)
	assert.Equal(t, int64(len("png-bytes")), thumb.Size)
	assert.True(t, strings.HasSuffix(thumb.LocalPath, ".png"))

	for _, file := range files {
		_, statErr := os.Stat(file.LocalPath)
		assert.NoError(t, statErr, "staged file must exist on disk")
	}
}

func TestStager_RejectsDisallowedMIME(t *testing.T) {
	stager := newTestStager(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	addFilePart(t, writer, "thumbnail", "cover.png", "image/png", "png-bytes")
	addFilePart(t, writer, "contentPayload", "script.sh", "application/x-sh", "#!/bin/sh")
	require.NoError(t, writer.Close())

	files, err := performStage(t, stager, body, writer.FormDataContentType())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidFileType))
	assert.Nil(t, files, "handler must not run after a rejected upload")

	entries, readErr := os.ReadDir(stager.dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "earlier staged files must be cleaned up on rejection")
}

func TestStager_RejectsTooManySnapPhotos(t *testing.T) {
	stager := newTestStager(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for i := 0; i <= entity.MaxSnapPhotos; i++ {
		addFilePart(t, writer, "snapPhotos", fmt.Sprintf("snap%d.jpg", i), "image/jpeg", "jpg-bytes")
	}
	require.NoError(t, writer.Close())

	_, err := performStage(t, stager, body, writer.FormDataContentType())

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "snapPhotos")
}

func TestStager_NonMultipartPassesThrough(t *testing.T) {
	stager := newTestStager(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/journals/addOrUpdate",
		strings.NewReader(`{"date":"2025-06-15"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handlerRan := false
	handler := stager.Stage(func(c echo.Context) error {
		handlerRan = true
		assert.Nil(t, StagedFiles(c))

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, handlerRan)
}

func TestStager_IgnoresUnknownFileFields(t *testing.T) {
	stager := newTestStager(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	addFilePart(t, writer, "avatar", "avatar.png", "image/png", "png-bytes")
	require.NoError(t, writer.Close())

	files, err := performStage(t, stager, body, writer.FormDataContentType())

	require.NoError(t, err)
	assert.Empty(t, files)
}
