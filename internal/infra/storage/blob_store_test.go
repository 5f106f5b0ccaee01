package storage

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"memoria/internal/domain/entity"
	"memoria/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	"gocloud.dev/blob/memblob"
)

const testPublicBaseURL = "https://res.memoria.example.com"

func createTestStore(t *testing.T) (service.AssetStore, *blob.Bucket) {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return newBlobAssetStore(bucket, testPublicBaseURL+"/", logger), bucket
}

func stageTestFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestBlobAssetStore_UploadReturnsPublicURL(t *testing.T) {
	store, bucket := createTestStore(t)
	ctx := context.Background()

	file := &entity.UploadFile{
		Slot:      entity.SlotThumbnail,
		LocalPath: stageTestFile(t, "thumbnail-abc.png", "png-bytes"),
		MimeType:  "image/png",
		Size:      9,
	}

	url, err := store.Upload(ctx, service.FolderThumbnails, file)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, testPublicBaseURL+"/"+service.FolderThumbnails+"/thumbnail-abc-"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	key := strings.TrimPrefix(url, testPublicBaseURL+"/")
	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(stored))

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobAssetStore_DestroyRemovesObject(t *testing.T) {
	store, bucket := createTestStore(t)
	ctx := context.Background()

	file := &entity.UploadFile{
		Slot:      entity.SlotSnapshot,
		LocalPath: stageTestFile(t, "snap.jpg", "jpg-bytes"),
		MimeType:  "image/jpeg",
	}

	url, err := store.Upload(ctx, service.FolderSnapshots, file)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, url))

	key := strings.TrimPrefix(url, testPublicBaseURL+"/")
	exists, err := bucket.Exists(ctx, key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobAssetStore_DestroyRejectsForeignURL(t *testing.T) {
	store, _ := createTestStore(t)
	ctx := context.Background()

	err := store.Destroy(ctx, "https://images.unsplash.com/photo-1506905925346-21bda4d32df4")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not belong to this asset store")
}

func TestBlobAssetStore_DestroyRejectsBarePrefix(t *testing.T) {
	store, _ := createTestStore(t)

	err := store.Destroy(context.Background(), testPublicBaseURL+"/")

	require.Error(t, err)
}

func TestBlobAssetStore_UploadMissingStagedFile(t *testing.T) {
	store, _ := createTestStore(t)

	file := &entity.UploadFile{
		Slot:      entity.SlotContent,
		LocalPath: filepath.Join(t.TempDir(), "never-staged.webm"),
		MimeType:  "video/webm",
	}

	_, err := store.Upload(context.Background(), service.FolderContents, file)

	require.Error(t, err)
}
