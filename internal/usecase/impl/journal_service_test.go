package impl

import (
	"context"
	"testing"
	"time"

	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	"memoria/internal/domain/service"
	mockRepo "memoria/internal/mocks/repository"
	mockSvc "memoria/internal/mocks/service"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// journalServiceFixtures holds all test dependencies for journal service tests.
type journalServiceFixtures struct {
	service usecase.JournalUsecase
	repo    *mockRepo.MockJournalRepository
	assets  *mockSvc.MockAssetStore
}

func createTestJournalService(t *testing.T) journalServiceFixtures {
	repo := mockRepo.NewMockJournalRepository(t)
	assets := mockSvc.NewMockAssetStore(t)

	svc := NewJournalService(JournalServiceParams{
		JournalRepo: repo,
		Assets:      assets,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return journalServiceFixtures{
		service: svc,
		repo:    repo,
		assets:  assets,
	}
}

func today() string {
	return time.Now().UTC().Format(entity.DateLayout)
}

func TestJournalService_Submit_CreatesNewTextEntry(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(nil, repository.ErrJournalNotFound)

	now := time.Now()
	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.JournalEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
			persisted := *entry
			persisted.ID = uuid.New()
			persisted.CreatedAt = now
			persisted.UpdatedAt = now

			return &persisted, nil
		})

	output, err := fx.service.Submit(ctx, ownerID, input, nil)

	require.NoError(t, err)
	assert.True(t, output.Created)
	assert.Equal(t, testDefaultThumbnail, output.Journal.Thumbnail)
	assert.Equal(t, entity.ContentText, output.Journal.Content.Kind)
	assert.Equal(t, input.TextPayload, output.Journal.Content.Payload)
}

func TestJournalService_Submit_ReplacesStaleThumbnailExactlyOnce(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())

	staleURL := "https://res.memoria.example.com/memories-journal/thumbnails/old-123.png"
	prior := &entity.JournalEntry{
		UserID:    ownerID,
		Date:      input.Date,
		Thumbnail: staleURL,
		Content:   entity.JournalContent{Kind: entity.ContentText, Payload: "old"},
		CreatedAt: time.Now().Add(-24 * time.Hour),
		UpdatedAt: time.Now().Add(-24 * time.Hour),
	}

	stagedPath := stageTempFile(t, "thumbnail.png")
	files := []*entity.UploadFile{{
		Slot:      entity.SlotThumbnail,
		LocalPath: stagedPath,
		MimeType:  "image/png",
		Size:      7,
	}}

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(prior, nil)

	fx.assets.EXPECT().Destroy(ctx, staleURL).Return(nil).Once()

	freshURL := "https://res.memoria.example.com/memories-journal/thumbnails/new-456.png"
	fx.assets.EXPECT().
		Upload(ctx, service.FolderThumbnails, files[0]).
		Return(freshURL, nil)

	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.JournalEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
			persisted := *entry
			persisted.CreatedAt = prior.CreatedAt
			persisted.UpdatedAt = time.Now()

			return &persisted, nil
		})

	output, err := fx.service.Submit(ctx, ownerID, input, files)

	require.NoError(t, err)
	assert.False(t, output.Created)
	assert.Equal(t, freshURL, output.Journal.Thumbnail)
	assert.False(t, fileExists(stagedPath), "staged file must be removed after submit")
}

func TestJournalService_Submit_ResubmitWithoutFilesResetsAssets(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())

	staleThumbnail := "https://res.memoria.example.com/memories-journal/thumbnails/old-1.png"
	staleSnapshot := "https://res.memoria.example.com/memories-journal/snapshots/old-2.png"
	prior := &entity.JournalEntry{
		UserID:     ownerID,
		Date:       input.Date,
		Thumbnail:  staleThumbnail,
		SnapPhotos: []string{staleSnapshot},
		Content:    entity.JournalContent{Kind: entity.ContentText, Payload: "old"},
	}

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(prior, nil)

	// Every prior asset goes; nothing staged means nothing is uploaded and
	// the entry falls back to the shared placeholder.
	fx.assets.EXPECT().Destroy(ctx, staleThumbnail).Return(nil).Once()
	fx.assets.EXPECT().Destroy(ctx, staleSnapshot).Return(nil).Once()

	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.JournalEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
			persisted := *entry
			persisted.UpdatedAt = time.Now()

			return &persisted, nil
		})

	output, err := fx.service.Submit(ctx, ownerID, input, nil)

	require.NoError(t, err)
	assert.Equal(t, testDefaultThumbnail, output.Journal.Thumbnail)
	assert.Empty(t, output.Journal.SnapPhotos)
	fx.assets.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestJournalService_Submit_NeverDestroysDefaultThumbnail(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())

	prior := &entity.JournalEntry{
		UserID:    ownerID,
		Date:      input.Date,
		Thumbnail: testDefaultThumbnail,
		Content:   entity.JournalContent{Kind: entity.ContentText, Payload: "old"},
	}

	files := []*entity.UploadFile{{
		Slot:      entity.SlotThumbnail,
		LocalPath: stageTempFile(t, "thumbnail.png"),
		MimeType:  "image/png",
	}}

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(prior, nil)

	// No Destroy expectation: destroying the shared placeholder would fail
	// the mock's expectations.
	fx.assets.EXPECT().
		Upload(ctx, service.FolderThumbnails, files[0]).
		Return("https://res.memoria.example.com/memories-journal/thumbnails/new.png", nil)

	fx.repo.EXPECT().
		Upsert(ctx, mock.AnythingOfType("*entity.JournalEntry")).
		RunAndReturn(func(_ context.Context, entry *entity.JournalEntry) (*entity.JournalEntry, error) {
			persisted := *entry
			persisted.UpdatedAt = time.Now()

			return &persisted, nil
		})

	_, err := fx.service.Submit(ctx, ownerID, input, files)
	require.NoError(t, err)
}

func TestJournalService_Submit_ValidationFailureCleansStagedFiles(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())
	input.Title = ""

	stagedPath := stageTempFile(t, "snap.png")
	files := []*entity.UploadFile{{
		Slot:      entity.SlotSnapshot,
		LocalPath: stagedPath,
		MimeType:  "image/png",
	}}

	output, err := fx.service.Submit(ctx, ownerID, input, files)

	require.Error(t, err)
	assert.Nil(t, output)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Title is required", appErr.Message())
	assert.False(t, fileExists(stagedPath), "staged file must be removed on rejection")
	fx.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestJournalService_Submit_RejectsUnknownContentType(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	input := validDraft(today())
	input.ContentType = "image/png"

	_, err := fx.service.Submit(ctx, uuid.New(), input, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidContentType))
}

func TestJournalService_Submit_RecordedContentRequiresStagedFile(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())
	input.ContentType = "video/webm"
	input.TextPayload = ""

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(nil, repository.ErrJournalNotFound)

	_, err := fx.service.Submit(ctx, ownerID, input, nil)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Content and its type are required", appErr.Message())
	fx.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestJournalService_Submit_RequiredUploadFailureAborts(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	input := validDraft(today())

	stagedPath := stageTempFile(t, "thumbnail.png")
	files := []*entity.UploadFile{{
		Slot:      entity.SlotThumbnail,
		LocalPath: stagedPath,
		MimeType:  "image/png",
	}}

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, input.Date).
		Return(nil, repository.ErrJournalNotFound)

	fx.assets.EXPECT().
		Upload(ctx, service.FolderThumbnails, files[0]).
		Return("", errors.New("bucket unreachable"))

	_, err := fx.service.Submit(ctx, ownerID, input, files)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAssetUploadFailed))
	assert.False(t, fileExists(stagedPath))
	fx.repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestJournalService_Paginated_HasMoreFlag(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	firstPage := []*entity.JournalEntry{{Date: "2025-06-15"}, {Date: "2025-06-14"}, {Date: "2025-06-13"}}
	fx.repo.EXPECT().FindPage(ctx, ownerID, 0, 3).Return(firstPage, nil)
	fx.repo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(5), nil).Once()

	output, err := fx.service.Paginated(ctx, ownerID, 0)
	require.NoError(t, err)
	assert.Len(t, output.Journals, 3)
	assert.True(t, output.HasMore)

	lastPage := []*entity.JournalEntry{{Date: "2025-06-12"}, {Date: "2025-06-11"}}
	fx.repo.EXPECT().FindPage(ctx, ownerID, 3, 3).Return(lastPage, nil)
	fx.repo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(5), nil).Once()

	output, err = fx.service.Paginated(ctx, ownerID, 3)
	require.NoError(t, err)
	assert.Len(t, output.Journals, 2)
	assert.False(t, output.HasMore)
}

func TestJournalService_Metrics(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	fx.repo.EXPECT().CountByOwner(ctx, ownerID).Return(int64(5), nil)
	fx.repo.EXPECT().
		CountByDateRange(ctx, ownerID, monthStart.Format(entity.DateLayout), monthEnd.Format(entity.DateLayout)).
		Return(int64(2), nil)
	fx.repo.EXPECT().CountByMoodLabel(ctx, ownerID, "Happy").Return(int64(3), nil)

	metrics, err := fx.service.Metrics(ctx, ownerID)

	require.NoError(t, err)
	assert.Equal(t, int64(5), metrics.TotalJournals)
	assert.Equal(t, int64(2), metrics.ThisMonthJournals)
	assert.Equal(t, int64(3), metrics.HappyMoodDays)
}

func TestJournalService_Delete_DestroysEntryAssets(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	date := "2025-06-15"

	entry := &entity.JournalEntry{
		UserID:     ownerID,
		Date:       date,
		Thumbnail:  "https://res.memoria.example.com/memories-journal/thumbnails/t.png",
		SnapPhotos: []string{"https://res.memoria.example.com/memories-journal/snapshots/s1.png"},
		Content: entity.JournalContent{
			Kind:    entity.ContentVideo,
			Payload: "https://res.memoria.example.com/memories-journal/contents/v.webm",
		},
	}

	fx.repo.EXPECT().FindByOwnerAndDate(ctx, ownerID, date).Return(entry, nil)
	fx.assets.EXPECT().Destroy(ctx, entry.Thumbnail).Return(nil).Once()
	fx.assets.EXPECT().Destroy(ctx, entry.SnapPhotos[0]).Return(nil).Once()
	fx.assets.EXPECT().Destroy(ctx, entry.Content.Payload).Return(nil).Once()
	fx.repo.EXPECT().DeleteByOwnerAndDate(ctx, ownerID, date).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, ownerID, date))
}

func TestJournalService_Delete_NotFound(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, "2025-06-15").
		Return(nil, repository.ErrJournalNotFound)

	err := fx.service.Delete(ctx, ownerID, "2025-06-15")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrJournalNotFound))
	fx.assets.AssertNotCalled(t, "Destroy", mock.Anything, mock.Anything)
}

func TestJournalService_ByDate_NotFound(t *testing.T) {
	fx := createTestJournalService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.repo.EXPECT().
		FindByOwnerAndDate(ctx, ownerID, "2025-06-15").
		Return(nil, repository.ErrJournalNotFound)

	entry, err := fx.service.ByDate(ctx, ownerID, "2025-06-15")

	require.Error(t, err)
	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrJournalNotFound))
}
