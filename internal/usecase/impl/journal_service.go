package impl

import (
	"context"
	"log/slog"
	"os"
	"time"

	"memoria/config"
	"memoria/internal/domain/entity"
	domainerrors "memoria/internal/domain/errors"
	"memoria/internal/domain/repository"
	"memoria/internal/domain/service"
	"memoria/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// journalService implements the JournalUsecase interface.
type journalService struct {
	journalRepo      repository.JournalRepository
	assets           service.AssetStore
	pageSize         int
	defaultThumbnail string
	logger           *slog.Logger
}

// JournalServiceParams holds dependencies for JournalService, injected by Fx.
type JournalServiceParams struct {
	fx.In

	JournalRepo repository.JournalRepository
	Assets      service.AssetStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewJournalService is the constructor for journalService. It receives all dependencies as interfaces.
func NewJournalService(params JournalServiceParams) usecase.JournalUsecase {
	pageSize := 0
	defaultThumbnail := ""
	if params.Config != nil {
		if params.Config.Journal != nil {
			pageSize = params.Config.Journal.PageSize
		}
		if params.Config.Storage != nil {
			defaultThumbnail = params.Config.Storage.DefaultThumbnailURL
		}
	}

	return &journalService{
		journalRepo:      params.JournalRepo,
		assets:           params.Assets,
		pageSize:         pageSize,
		defaultThumbnail: defaultThumbnail,
		logger:           params.Logger,
	}
}

// reconciledAssets carries the remote URLs an upsert will persist after the
// stale-destroy/upload-new pass.
type reconciledAssets struct {
	thumbnail      string
	snapPhotos     []string
	contentPayload string
}

// Submit validates the draft, reconciles remote assets against the prior
// entry for the same date, and atomically inserts or replaces the row.
// Staged files are removed on every path, success or failure, before Submit
// returns.
func (srv *journalService) Submit(ctx context.Context, ownerID uuid.UUID, input *usecase.SubmitJournalInput, files []*entity.UploadFile) (*usecase.SubmitJournalOutput, error) {
	defer srv.cleanupStagedFiles(ctx, files)

	if err := validateDraft(input, time.Now()); err != nil {
		return nil, err
	}

	kind, err := entity.ParseContentKind(input.ContentType)
	if err != nil {
		return nil, domainerrors.ErrInvalidContentType.WrapMessage(err.Error())
	}

	// Load the prior entry so its stale assets can be destroyed. Absence is
	// the normal insert path, not an error.
	prior, err := srv.journalRepo.FindByOwnerAndDate(ctx, ownerID, input.Date)
	if err != nil && !errors.Is(err, repository.ErrJournalNotFound) {
		return nil, errors.Wrap(err, "failed to load prior journal entry")
	}

	assets, err := srv.reconcileAssets(ctx, prior, kind, input, files)
	if err != nil {
		return nil, err
	}

	entry := &entity.JournalEntry{
		UserID: ownerID,
		Date:   input.Date,
		Title:  input.Title,
		Content: entity.JournalContent{
			Kind:    kind,
			Payload: assets.contentPayload,
		},
		Thumbnail:          assets.thumbnail,
		SnapPhotos:         assets.snapPhotos,
		ProductivityRating: input.ProductivityRating,
		Mood:               *input.Mood,
	}

	persisted, err := srv.journalRepo.Upsert(ctx, entry)
	if err != nil {
		srv.logger.ErrorContext(ctx, "journal upsert failed",
			slog.Any("userID", ownerID),
			slog.String("date", input.Date),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to upsert journal entry")
	}

	return &usecase.SubmitJournalOutput{
		Created: persisted.WasCreated(),
		Journal: persisted,
	}, nil
}

// reconcileAssets replaces the prior entry's remote assets with this
// submission's. Every asset the prior entry references is destroyed up
// front (the shared placeholder excepted), then the persisted URLs are
// built from the staged uploads alone: a submission without a thumbnail
// falls back to the placeholder, one without snapshots persists none.
// Destroys are best-effort, uploads are fatal.
func (srv *journalService) reconcileAssets(ctx context.Context, prior *entity.JournalEntry, kind entity.ContentKind, input *usecase.SubmitJournalInput, files []*entity.UploadFile) (*reconciledAssets, error) {
	var thumbnailFile, contentFile *entity.UploadFile
	var snapshotFiles []*entity.UploadFile
	for _, file := range files {
		switch file.Slot {
		case entity.SlotThumbnail:
			thumbnailFile = file
		case entity.SlotSnapshot:
			snapshotFiles = append(snapshotFiles, file)
		case entity.SlotContent:
			contentFile = file
		}
	}

	if prior != nil {
		srv.destroyAsset(ctx, prior.Thumbnail)
		for _, url := range prior.SnapPhotos {
			srv.destroyAsset(ctx, url)
		}
		if prior.Content.Kind.IsRemote() {
			srv.destroyAsset(ctx, prior.Content.Payload)
		}
	}

	assets := &reconciledAssets{thumbnail: srv.defaultThumbnail}

	if thumbnailFile != nil {
		url, err := srv.assets.Upload(ctx, service.FolderThumbnails, thumbnailFile)
		if err != nil {
			return nil, domainerrors.ErrAssetUploadFailed.WrapMessage("thumbnail upload failed: " + err.Error())
		}
		assets.thumbnail = url
	}

	for _, file := range snapshotFiles {
		url, err := srv.assets.Upload(ctx, service.FolderSnapshots, file)
		if err != nil {
			return nil, domainerrors.ErrAssetUploadFailed.WrapMessage("snapshot upload failed: " + err.Error())
		}
		assets.snapPhotos = append(assets.snapPhotos, url)
	}

	// Content slot. Text entries carry their body inline; recorded entries
	// must ship the binary with this submission.
	if !kind.IsRemote() {
		assets.contentPayload = input.TextPayload

		return assets, nil
	}

	if contentFile == nil {
		return nil, domainerrors.NewValidationError("Content and its type are required")
	}
	url, err := srv.assets.Upload(ctx, service.FolderContents, contentFile)
	if err != nil {
		return nil, domainerrors.ErrAssetUploadFailed.WrapMessage("content upload failed: " + err.Error())
	}
	assets.contentPayload = url

	return assets, nil
}

// destroyAsset deletes a remote asset, tolerating failure. The default
// thumbnail is shared by every entry without one and is never deleted.
func (srv *journalService) destroyAsset(ctx context.Context, url string) {
	if url == "" || url == srv.defaultThumbnail {
		return
	}

	if err := srv.assets.Destroy(ctx, url); err != nil {
		srv.logger.WarnContext(ctx, "failed to destroy stale asset",
			slog.String("url", url),
			slog.Any("error", err),
		)
	}
}

// cleanupStagedFiles removes the locally staged uploads of one submission.
func (srv *journalService) cleanupStagedFiles(ctx context.Context, files []*entity.UploadFile) {
	for _, file := range files {
		if err := os.Remove(file.LocalPath); err != nil && !os.IsNotExist(err) {
			srv.logger.WarnContext(ctx, "failed to remove staged upload",
				slog.String("path", file.LocalPath),
				slog.Any("error", err),
			)
		}
	}
}

// ByDate fetches the single entry for (owner, date).
func (srv *journalService) ByDate(ctx context.Context, ownerID uuid.UUID, date string) (*entity.JournalEntry, error) {
	entry, err := srv.journalRepo.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, domainerrors.ErrJournalNotFound
		}

		return nil, errors.Wrap(err, "failed to find journal entry")
	}

	return entry, nil
}

// Paginated returns one page of entries, newest date first, plus whether
// more pages remain past this one.
func (srv *journalService) Paginated(ctx context.Context, ownerID uuid.UUID, skip int) (*usecase.PaginatedJournalsOutput, error) {
	if skip < 0 {
		skip = 0
	}

	entries, err := srv.journalRepo.FindPage(ctx, ownerID, skip, srv.pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load journal page")
	}

	total, err := srv.journalRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count journal entries")
	}

	return &usecase.PaginatedJournalsOutput{
		Journals: entries,
		HasMore:  int64(skip+srv.pageSize) < total,
	}, nil
}

// EntryDates lists every date the owner journaled on, ascending.
func (srv *journalService) EntryDates(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	dates, err := srv.journalRepo.ListDates(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list journal dates")
	}

	return dates, nil
}

// Metrics computes the dashboard counters: all-time entries, entries this
// calendar month, and days marked Happy.
func (srv *journalService) Metrics(ctx context.Context, ownerID uuid.UUID) (*usecase.JournalMetricsOutput, error) {
	total, err := srv.journalRepo.CountByOwner(ctx, ownerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count journal entries")
	}

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	thisMonth, err := srv.journalRepo.CountByDateRange(ctx, ownerID,
		monthStart.Format(entity.DateLayout),
		monthEnd.Format(entity.DateLayout),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count journal entries for this month")
	}

	happy, err := srv.journalRepo.CountByMoodLabel(ctx, ownerID, "Happy")
	if err != nil {
		return nil, errors.Wrap(err, "failed to count happy mood days")
	}

	return &usecase.JournalMetricsOutput{
		TotalJournals:     total,
		ThisMonthJournals: thisMonth,
		HappyMoodDays:     happy,
	}, nil
}

// Delete removes the entry for (owner, date) together with its remote
// assets. Asset destruction is best-effort; the row delete decides the
// outcome.
func (srv *journalService) Delete(ctx context.Context, ownerID uuid.UUID, date string) error {
	entry, err := srv.journalRepo.FindByOwnerAndDate(ctx, ownerID, date)
	if err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return domainerrors.ErrJournalNotFound
		}

		return errors.Wrap(err, "failed to find journal entry for deletion")
	}

	srv.destroyAsset(ctx, entry.Thumbnail)
	for _, url := range entry.SnapPhotos {
		srv.destroyAsset(ctx, url)
	}
	if entry.Content.Kind.IsRemote() {
		srv.destroyAsset(ctx, entry.Content.Payload)
	}

	if err := srv.journalRepo.DeleteByOwnerAndDate(ctx, ownerID, date); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return domainerrors.ErrJournalNotFound
		}

		return errors.Wrap(err, "failed to delete journal entry")
	}

	return nil
}
