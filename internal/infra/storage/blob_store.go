// Package storage implements the asset store on top of gocloud.dev blob
// buckets, so the same code serves S3 in production and a local directory
// or in-memory bucket in development and tests.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"memoria/config"
	"memoria/internal/domain/entity"
	"memoria/internal/domain/lifecycle"
	"memoria/internal/domain/service"
	"memoria/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
)

// blobAssetStore implements service.AssetStore on a *blob.Bucket.
type blobAssetStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewBlobAssetStore opens the configured bucket and binds its lifetime to
// the application lifecycle.
func NewBlobAssetStore(params Params) (service.AssetStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl is not configured")
	}

	openCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobAssetStore(bucket, params.Config.Storage.PublicBaseURL, params.Logger), nil
}

func newBlobAssetStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.AssetStore {
	return &blobAssetStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload pushes a staged file into the given folder and returns the public
// URL of the stored object. The key embeds a timestamp and a random suffix
// so re-submissions of the same entry never overwrite each other mid-flight.
func (store *blobAssetStore) Upload(ctx context.Context, folder string, file *entity.UploadFile) (string, error) {
	src, err := os.Open(file.LocalPath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open staged upload")
	}
	defer src.Close()

	key := objectKey(folder, file.LocalPath)

	writer, err := store.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: file.MimeType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, src); err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write object")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize object")
	}

	url := store.publicBaseURL + "/" + key
	store.logger.DebugContext(ctx, "asset uploaded",
		slog.String("key", key),
		slog.Int64("size", file.Size),
	)

	return url, nil
}

// Destroy deletes the object a previously returned URL points at. URLs that
// do not live under this bucket's public prefix are rejected so the default
// thumbnail or any foreign URL can never be deleted by mistake.
func (store *blobAssetStore) Destroy(ctx context.Context, url string) error {
	key, ok := store.keyFromURL(url)
	if !ok {
		return errors.Errorf("url %q does not belong to this asset store", url)
	}

	if err := store.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete object %q", key)
	}

	return nil
}

func (store *blobAssetStore) keyFromURL(url string) (string, bool) {
	prefix := store.publicBaseURL + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}

	key := strings.TrimPrefix(url, prefix)

	return key, key != ""
}

func objectKey(folder, localPath string) string {
	base := strings.TrimSuffix(filepath.Base(localPath), filepath.Ext(localPath))

	return fmt.Sprintf("%s/%s-%d-%04d%s",
		folder,
		base,
		time.Now().UnixMilli(),
		rand.Intn(10000),
		filepath.Ext(localPath),
	)
}
