package impl

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"memoria/config"

	"github.com/stretchr/testify/require"
)

const testDefaultThumbnail = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Journal = &config.JournalConfig{PageSize: 3}
	cfg.Storage = &config.StorageConfig{
		PublicBaseURL:       "https://res.memoria.example.com",
		DefaultThumbnailURL: testDefaultThumbnail,
	}
	cfg.Mail = &config.MailConfig{VerifyBaseURL: "https://memoria.example.com/verify-email"}

	return cfg
}

// stageTempFile creates a throwaway staged file on disk so cleanup paths
// have something real to remove.
func stageTempFile(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o600))

	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
