package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")

	cfg, err := New()
	require.NoError(t, err)

	require.Equal(t, "3000", cfg.HTTP.Port)
	require.Equal(t, StorageLocal, cfg.Storage.Backend)
	require.Equal(t, "uploads", cfg.Storage.LocalDir)
	require.Equal(t, "/uploads", cfg.Storage.LocalURLPrefix)
	require.Equal(t, 5, cfg.Upload.MaxFiles)
	require.Equal(t, int64(10*1024*1024), cfg.Upload.MaxFileSize)
	require.False(t, cfg.Upload.InspectContent)
	require.False(t, cfg.Kafka.Enabled)
	require.True(t, cfg.Metrics.Enabled)
	require.Equal(t, "submissions", cfg.Cloudinary.Folder)
}

func TestNewRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := New()
	require.Error(t, err)
}

func TestValidateBackends(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "local ok",
			mutate: func(c *Config) {},
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "ftp" },
			wantErr: `unknown STORAGE_BACKEND "ftp"`,
		},
		{
			name:    "cloudinary without credentials",
			mutate:  func(c *Config) { c.Storage.Backend = StorageCloudinary },
			wantErr: "CLOUDINARY_API_SECRET is required",
		},
		{
			name: "cloudinary with credentials",
			mutate: func(c *Config) {
				c.Storage.Backend = StorageCloudinary
				c.Cloudinary = Cloudinary{CloudName: "demo", APIKey: "k", APISecret: "s"}
			},
		},
		{
			name:    "s3 without bucket",
			mutate:  func(c *Config) { c.Storage.Backend = StorageS3 },
			wantErr: "S3_BUCKET is required",
		},
		{
			name:    "kafka without brokers",
			mutate:  func(c *Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "submissions" },
			wantErr: "KAFKA_BROKERS is required",
		},
		{
			name:    "zero max files",
			mutate:  func(c *Config) { c.Upload.MaxFiles = 0 },
			wantErr: "UPLOAD_MAX_FILES must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{
				Storage: Storage{Backend: StorageLocal, LocalDir: "uploads"},
				Upload:  Upload{MaxFiles: 5, MaxFileSize: 1024},
			}
			tt.mutate(c)

			err := c.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}
