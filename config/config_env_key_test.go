package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"storage": map[string]any{
			"bucketUrl": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Journal.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.Journal.PageSize, defaultPageSize)
	}
	if cfg.Upload.MaxBytes != defaultMaxUpload {
		t.Fatalf("MaxBytes = %d, want %d", cfg.Upload.MaxBytes, defaultMaxUpload)
	}
	if len(cfg.Upload.AllowedMIMEs) == 0 {
		t.Fatal("expected default MIME allow-list")
	}
	if cfg.Storage.PublicBaseURL == "" {
		t.Fatal("expected default public base URL")
	}
}
