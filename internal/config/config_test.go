// filepath: internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
		hasError bool
	}{
		{"5MB", 5 * 1024 * 1024, false},
		{"512KB", 512 * 1024, false},
		{"1GB", 1 * 1024 * 1024 * 1024, false},
		{"100", 100, false},        // Bytes
		{"1024B", 1024, false},     // Bytes with suffix
		{" 4 MB ", 4194304, false}, // Spaces
		{"8mb", 8388608, false},    // Lowercase
		{"invalid", 0, true},
		{"10XB", 0, true},
		{"-10MB", 0, true}, // Regex expects digits, not negatives
	}

	for _, tc := range tests {
		val, err := parseSize(tc.input)
		if tc.hasError {
			assert.Error(t, err, "Expected error for input: %s", tc.input)
		} else {
			assert.NoError(t, err, "Unexpected error for input: %s", tc.input)
			assert.Equal(t, tc.expected, val, "Mismatch for input: %s", tc.input)
		}
	}
}

func TestConfig_ParseAndValidate(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.ParseAndValidate()
		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "uploads", cfg.Upload.Root)
		assert.Equal(t, "5MB", cfg.Upload.MaxFileSize)
		assert.Equal(t, int64(5<<20), cfg.MaxFileSizeBytes)
		assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
		assert.Equal(t, 20, cfg.RateLimit.Requests)
		assert.Equal(t, time.Minute, cfg.RateLimitWindow)
		assert.True(t, cfg.RateLimitEnabled())
		assert.Equal(t, []string{"http://localhost"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Custom Size", func(t *testing.T) {
		cfg := &Config{Upload: UploadConfig{MaxFileSize: "10MB"}}
		assert.NoError(t, cfg.ParseAndValidate())
		assert.Equal(t, int64(10485760), cfg.MaxFileSizeBytes)
	})

	t.Run("Invalid Size", func(t *testing.T) {
		cfg := &Config{Upload: UploadConfig{MaxFileSize: "NotASize"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid max_file_size")
	})

	t.Run("Zero Size", func(t *testing.T) {
		cfg := &Config{Upload: UploadConfig{MaxFileSize: "0"}}
		assert.Error(t, cfg.ParseAndValidate())
	})

	t.Run("Bad Extension", func(t *testing.T) {
		cfg := &Config{Upload: UploadConfig{AllowedTypes: map[string]string{"image/png": "../png"}}}
		assert.Error(t, cfg.ParseAndValidate())
	})

	t.Run("Bad Window", func(t *testing.T) {
		cfg := &Config{RateLimit: RateLimitConfig{Window: "soon"}}
		err := cfg.ParseAndValidate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate_limit.window")
	})

	t.Run("Rate Limit Disabled", func(t *testing.T) {
		disabled := false
		cfg := &Config{RateLimit: RateLimitConfig{Enabled: &disabled}}
		assert.NoError(t, cfg.ParseAndValidate())
		assert.False(t, cfg.RateLimitEnabled())
	})
}

func TestLoadAndSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
secret_key = "from-file"

[server]
port = 9090

[upload]
root = "/srv/retro/uploads"
max_file_size = "2MB"

[upload.allowed_types]
"image/png" = ".png"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/srv/retro/uploads", cfg.Upload.Root)
	assert.Equal(t, map[string]string{"image/png": ".png"}, cfg.Upload.AllowedTypes)
	assert.Equal(t, "from-file", cfg.SecretKey)

	require.NoError(t, cfg.ParseAndValidate())
	assert.Equal(t, int64(2<<20), cfg.MaxFileSizeBytes)

	savedPath := filepath.Join(t.TempDir(), "saved.toml")
	require.NoError(t, SaveConfig(savedPath, cfg))
	reloaded, err := LoadConfig(savedPath)
	require.NoError(t, err)
	assert.Equal(t, cfg.Upload.Root, reloaded.Upload.Root)
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, os.IsNotExist(err))
}

func TestApplyEnvironment(t *testing.T) {
	t.Run("Prefixed Variables", func(t *testing.T) {
		t.Setenv("RETRO_PORT", "7070")
		t.Setenv("RETRO_UPLOAD_ROOT", "/data/uploads")
		t.Setenv("RETRO_MAX_FILE_SIZE", "1MB")
		t.Setenv("RETRO_AUDIT_ENABLED", "true")
		t.Setenv("RETRO_RATE_LIMIT_ENABLED", "false")
		t.Setenv("RETRO_CORS_ORIGINS", "http://a.test, http://b.test")

		v, err := NewEnvReader("")
		require.NoError(t, err)

		cfg := &Config{Server: ServerConfig{Port: 1}}
		cfg.ApplyEnvironment(v)

		assert.Equal(t, 7070, cfg.Server.Port)
		assert.Equal(t, "/data/uploads", cfg.Upload.Root)
		assert.Equal(t, "1MB", cfg.Upload.MaxFileSize)
		assert.True(t, cfg.Logging.AuditEnabled)
		assert.False(t, cfg.RateLimitEnabled())
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
	})

	t.Run("Secret From Legacy Variable", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "secret_from_env_for_test")

		v, err := NewEnvReader("")
		require.NoError(t, err)
		cfg := &Config{}
		cfg.ApplyEnvironment(v)
		require.NoError(t, cfg.ParseAndValidate())

		assert.Equal(t, "secret_from_env_for_test", cfg.SecretKey)
	})

	t.Run("Secret Default When Unset", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")
		t.Setenv("RETRO_SECRET_KEY", "")

		v, err := NewEnvReader(filepath.Join(t.TempDir(), ".env"))
		require.NoError(t, err, "a missing env file is not an error")
		cfg := &Config{}
		cfg.ApplyEnvironment(v)
		require.NoError(t, cfg.ParseAndValidate())

		assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
	})

	t.Run("Env File", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")
		t.Setenv("RETRO_SECRET_KEY", "")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("SECRET_KEY=from_dotenv\nLOG_LEVEL=debug\n"), 0o600))

		v, err := NewEnvReader(envFile)
		require.NoError(t, err)
		cfg := &Config{}
		cfg.ApplyEnvironment(v)

		assert.Equal(t, "from_dotenv", cfg.SecretKey)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("Env File With Prefixed Keys", func(t *testing.T) {
		t.Setenv("SECRET_KEY", "")
		t.Setenv("RETRO_SECRET_KEY", "")
		t.Setenv("RETRO_LOG_LEVEL", "")
		envFile := filepath.Join(t.TempDir(), ".env")
		content := "RETRO_LOG_LEVEL=debug\nRETRO_UPLOAD_ROOT=/data/x\nRETRO_SECRET_KEY=prefixed\n"
		require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

		v, err := NewEnvReader(envFile)
		require.NoError(t, err)
		cfg := &Config{}
		cfg.ApplyEnvironment(v)

		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, "/data/x", cfg.Upload.Root)
		assert.Equal(t, "prefixed", cfg.SecretKey)
	})

	t.Run("Process Environment Beats Env File", func(t *testing.T) {
		t.Setenv("RETRO_LOG_LEVEL", "warn")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("RETRO_LOG_LEVEL=debug\n"), 0o600))

		v, err := NewEnvReader(envFile)
		require.NoError(t, err)
		cfg := &Config{}
		cfg.ApplyEnvironment(v)

		assert.Equal(t, "warn", cfg.Logging.Level)
	})
}
