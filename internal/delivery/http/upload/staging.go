// Package upload stages multipart file fields onto local disk before the
// submit workflow pushes them to the remote asset store.
package upload

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"memoria/config"
	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/errors"

	"github.com/labstack/echo/v4"
)

// FilesKey is the echo context key the staged files are stored under.
const FilesKey = "uploadFiles"

// fileField binds a multipart form field to its upload slot and the maximum
// number of files the field accepts.
type fileField struct {
	name string
	slot entity.UploadSlot
	max  int
}

var fileFields = []fileField{
	{name: "thumbnail", slot: entity.SlotThumbnail, max: 1},
	{name: "snapPhotos", slot: entity.SlotSnapshot, max: entity.MaxSnapPhotos},
	{name: "contentPayload", slot: entity.SlotContent, max: 1},
}

// Stager writes multipart uploads into a local staging directory.
type Stager struct {
	dir          string
	allowedMIMEs map[string]struct{}
	logger       *slog.Logger
}

// NewStager is the constructor for Stager. The staging directory is created
// eagerly so the first upload does not race directory creation.
func NewStager(cfg *config.Config, logger *slog.Logger) (*Stager, error) {
	if err := os.MkdirAll(cfg.Upload.Dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create upload staging directory")
	}

	allowed := make(map[string]struct{}, len(cfg.Upload.AllowedMIMEs))
	for _, mime := range cfg.Upload.AllowedMIMEs {
		allowed[mime] = struct{}{}
	}

	return &Stager{
		dir:          cfg.Upload.Dir,
		allowedMIMEs: allowed,
		logger:       logger,
	}, nil
}

// Stage parses the request's multipart form, stages the recognized file
// fields to disk, and stores the staged set on the echo context. A request
// without a multipart body passes through with no staged files.
func (s *Stager) Stage(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		form, err := c.MultipartForm()
		if err != nil {
			c.Set(FilesKey, []*entity.UploadFile(nil))

			return next(c)
		}

		staged := make([]*entity.UploadFile, 0, 2+entity.MaxSnapPhotos)
		for _, field := range fileFields {
			headers := form.File[field.name]
			if len(headers) > field.max {
				s.removeStaged(staged)

				return domainerrors.NewValidationError(
					fmt.Sprintf("Too many files for field %q", field.name))
			}

			for _, header := range headers {
				file, err := s.stageOne(field, header)
				if err != nil {
					s.removeStaged(staged)

					return err
				}
				staged = append(staged, file)
			}
		}

		c.Set(FilesKey, staged)

		return next(c)
	}
}

// StagedFiles reads back the staged set placed on the context by Stage.
func StagedFiles(c echo.Context) []*entity.UploadFile {
	files, _ := c.Get(FilesKey).([]*entity.UploadFile)

	return files
}

func (s *Stager) stageOne(field fileField, header *multipart.FileHeader) (*entity.UploadFile, error) {
	mimeType := header.Header.Get("Content-Type")
	if _, ok := s.allowedMIMEs[mimeType]; !ok {
		return nil, domainerrors.ErrInvalidFileType.WrapMessage(
			fmt.Sprintf("file type %q is not allowed", mimeType))
	}

	src, err := header.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open multipart file")
	}
	defer src.Close()

	localPath := filepath.Join(s.dir, stagedName(field.name, header.Filename))
	dst, err := os.Create(localPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create staged file")
	}

	size, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		os.Remove(localPath)

		return nil, errors.Wrap(err, "failed to write staged file")
	}
	if err := dst.Close(); err != nil {
		os.Remove(localPath)

		return nil, errors.Wrap(err, "failed to close staged file")
	}

	return &entity.UploadFile{
		Slot:      field.slot,
		LocalPath: localPath,
		MimeType:  mimeType,
		Size:      size,
	}, nil
}

func (s *Stager) removeStaged(files []*entity.UploadFile) {
	for _, file := range files {
		if err := os.Remove(file.LocalPath); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("failed to remove staged upload",
				slog.String("path", file.LocalPath),
				slog.Any("error", err),
			)
		}
	}
}

// stagedName builds a collision-resistant staging filename while keeping
// the original extension for MIME hints downstream.
func stagedName(field, original string) string {
	return fmt.Sprintf("%s-%d-%04d%s",
		field,
		time.Now().UnixMilli(),
		rand.Intn(10000),
		filepath.Ext(original),
	)
}
