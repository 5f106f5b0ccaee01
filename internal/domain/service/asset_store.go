package service

import (
	"context"

	"memoria/internal/domain/entity"
)

// Remote folders for the three asset slots. Keys are deterministic so a
// stored URL can always be mapped back to the object it references.
const (
	FolderThumbnails = "memories-journal/thumbnails"
	FolderSnapshots  = "memories-journal/snapshots"
	FolderContents   = "memories-journal/contents"
)

// AssetStore is the boundary to the external binary object service. The
// store owns the binaries; journal entries only hold the returned URLs.
type AssetStore interface {
	// Upload pushes a staged file into the given folder and returns the
	// public URL of the stored object.
	Upload(ctx context.Context, folder string, file *entity.UploadFile) (string, error)

	// Destroy deletes the object a previously returned URL points at.
	Destroy(ctx context.Context, url string) error
}
