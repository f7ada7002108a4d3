// filepath: internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// DefaultSecretKey is only meant for local development.
const DefaultSecretKey = "default_secret_for_local_dev"

// Config holds the application's configuration.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Database  DatabaseConfig  `toml:"database"`
	Upload    UploadConfig    `toml:"upload"`
	Logging   LoggingConfig   `toml:"logging"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	CORS      CORSConfig      `toml:"cors"`

	SecretKey string `toml:"secret_key"`

	MaxFileSizeBytes int64         `toml:"-"` // Runtime computed value
	RateLimitWindow  time.Duration `toml:"-"` // Runtime computed value
}

// ServerConfig holds the server configuration.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// UploadConfig holds the attachment upload settings.
type UploadConfig struct {
	Root         string            `toml:"root"`
	MaxFileSize  string            `toml:"max_file_size"` // e.g. "5MB"
	AllowedTypes map[string]string `toml:"allowed_types"` // mime type -> extension
}

// LoggingConfig holds the logging configuration.
type LoggingConfig struct {
	Level        string `toml:"level"`
	AuditEnabled bool   `toml:"audit_enabled"`
}

// RateLimitConfig holds the per-client request limit.
type RateLimitConfig struct {
	Enabled  *bool  `toml:"enabled"`
	Requests int    `toml:"requests"`
	Window   string `toml:"window"` // Go duration, e.g. "1m"
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

// LoadConfig loads the configuration from a TOML file.
func LoadConfig(path string) (*Config, error) {
	var config Config
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// SaveConfig writes the current configuration back to a TOML file.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file for saving: %w", err)
	}
	defer f.Close()
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config to file: %w", err)
	}
	return nil
}

const envFilePrefix = "retro_"

// NewEnvReader returns a viper instance that reads RETRO_* environment
// variables and, when present, a dotenv file. Environment wins over the file.
func NewEnvReader(envFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("RETRO")
	v.AutomaticEnv()
	// SECRET_KEY without prefix is accepted for compatibility with existing deployments.
	if err := v.BindEnv("secret_key", "RETRO_SECRET_KEY", "SECRET_KEY"); err != nil {
		return nil, err
	}

	if envFile == "" {
		return v, nil
	}
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
	}
	// The env prefix only applies to process lookups; file keys keep their
	// literal names. Prefixed file keys become defaults of the bare key so
	// the real environment still wins.
	for _, key := range v.AllKeys() {
		if bare, ok := strings.CutPrefix(key, envFilePrefix); ok && bare != "" {
			v.SetDefault(bare, v.Get(key))
		}
	}
	return v, nil
}

// ApplyEnvironment overrides file values with whatever v has set.
func (c *Config) ApplyEnvironment(v *viper.Viper) {
	if v.IsSet("host") {
		c.Server.Host = v.GetString("host")
	}
	if v.IsSet("port") {
		if p, err := strconv.Atoi(v.GetString("port")); err == nil {
			c.Server.Port = p
		}
	}
	if v.IsSet("database_path") {
		c.Database.Path = v.GetString("database_path")
	}
	if v.IsSet("upload_root") {
		c.Upload.Root = v.GetString("upload_root")
	}
	if v.IsSet("max_file_size") {
		c.Upload.MaxFileSize = v.GetString("max_file_size")
	}
	if v.IsSet("log_level") {
		c.Logging.Level = v.GetString("log_level")
	}
	if v.IsSet("audit_enabled") {
		if b, err := strconv.ParseBool(v.GetString("audit_enabled")); err == nil {
			c.Logging.AuditEnabled = b
		}
	}
	if v.IsSet("rate_limit_enabled") {
		if b, err := strconv.ParseBool(v.GetString("rate_limit_enabled")); err == nil {
			c.RateLimit.Enabled = &b
		}
	}
	if v.IsSet("rate_limit_requests") {
		if n, err := strconv.Atoi(v.GetString("rate_limit_requests")); err == nil {
			c.RateLimit.Requests = n
		}
	}
	if v.IsSet("rate_limit_window") {
		c.RateLimit.Window = v.GetString("rate_limit_window")
	}
	if v.IsSet("cors_origins") {
		var origins []string
		for _, o := range strings.Split(v.GetString("cors_origins"), ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORS.AllowedOrigins = origins
	}
	if v.IsSet("secret_key") {
		c.SecretKey = v.GetString("secret_key")
	}
}

// RateLimitEnabled reports whether the limiter should be installed.
// Unset means enabled.
func (c *Config) RateLimitEnabled() bool {
	return c.RateLimit.Enabled == nil || *c.RateLimit.Enabled
}

// ParseAndValidate processes configuration strings into runtime values.
// It sets defaults if values are missing and parses human-readable sizes.
func (c *Config) ParseAndValidate() error {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Database.Path == "" {
		c.Database.Path = "retrohub.db"
	}
	if c.Upload.Root == "" {
		c.Upload.Root = "uploads"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.SecretKey == "" {
		c.SecretKey = DefaultSecretKey
	}
	if len(c.CORS.AllowedOrigins) == 0 {
		c.CORS.AllowedOrigins = []string{"http://localhost"}
	}

	if c.Upload.MaxFileSize == "" {
		c.Upload.MaxFileSize = "5MB"
	}
	sizeBytes, err := parseSize(c.Upload.MaxFileSize)
	if err != nil {
		return fmt.Errorf("invalid max_file_size: %w", err)
	}
	if sizeBytes <= 0 {
		return fmt.Errorf("invalid max_file_size: must be greater than zero")
	}
	c.MaxFileSizeBytes = sizeBytes

	for mime, ext := range c.Upload.AllowedTypes {
		if !strings.HasPrefix(ext, ".") || strings.ContainsAny(ext, `/\`) {
			return fmt.Errorf("invalid extension %q for %s", ext, mime)
		}
	}

	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 20
	}
	if c.RateLimit.Requests < 0 {
		return fmt.Errorf("invalid rate_limit.requests: %d", c.RateLimit.Requests)
	}
	if c.RateLimit.Window == "" {
		c.RateLimit.Window = "1m"
	}
	window, err := time.ParseDuration(c.RateLimit.Window)
	if err != nil || window <= 0 {
		return fmt.Errorf("invalid rate_limit.window: %q", c.RateLimit.Window)
	}
	c.RateLimitWindow = window

	return nil
}

// parseSize parses a size string (e.g., "100G", "500MB") into bytes.
func parseSize(sizeStr string) (int64, error) {
	re := regexp.MustCompile(`(?i)^(\d+)\s*(K|M|G|T)?B?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(sizeStr))

	if len(matches) < 2 {
		return 0, fmt.Errorf("invalid size format: %s", sizeStr)
	}

	value, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size number: %s", matches[1])
	}

	unit := ""
	if len(matches) > 2 {
		unit = strings.ToUpper(matches[2])
	}

	switch unit {
	case "T":
		return value * (1 << 40), nil
	case "G":
		return value * (1 << 30), nil
	case "M":
		return value * (1 << 20), nil
	case "K":
		return value * (1 << 10), nil
	default:
		return value, nil
	}
}
