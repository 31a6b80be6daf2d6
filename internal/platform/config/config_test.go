package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsInDevMode(t *testing.T) {
	t.Setenv("DEV_AUTH", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.StorageDriver)
	assert.Equal(t, "https://s3.us-east-2.amazonaws.com/", cfg.S3BaseURL)
	assert.Equal(t, 10*time.Second, cfg.UploadTimeout)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATS_TEST_SECRET=0123456789abcdef0123456789abcdef\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CATS_TEST_SECRET") })

	_, _ = Load(path)
	assert.Equal(t, "0123456789abcdef0123456789abcdef", os.Getenv("CATS_TEST_SECRET"))
}

func TestLoad_RequiresSessionSecretOutsideDevMode(t *testing.T) {
	t.Setenv("DEV_AUTH", "false")
	t.Setenv("SESSION_SECRET", "short")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestLoad_PostgresNeedsDSN(t *testing.T) {
	t.Setenv("DEV_AUTH", "false")
	t.Setenv("SESSION_SECRET", "0123456789abcdef0123456789abcdef")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_DSN", "")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DSN")
}

func TestLoad_DevAuthOnlyWithMemoryStore(t *testing.T) {
	for _, driver := range []string{DriverSQLite, DriverPostgres} {
		t.Run(driver, func(t *testing.T) {
			t.Setenv("DEV_AUTH", "true")
			t.Setenv("STORAGE_DRIVER", driver)
			t.Setenv("DB_DSN", "postgres://localhost/cats")

			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DEV_AUTH requires STORAGE_DRIVER=memory")
		})
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("UPLOAD_TIMEOUT", "not-a-duration")

	var cfg Config
	err := ParseEnv(&cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}
