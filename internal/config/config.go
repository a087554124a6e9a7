package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	CORS       CORSConfig
	Parser     ParserConfig
	Policy     PolicyConfig
	Validation ValidationConfig
	S3         S3Config
	Metrics    MetricsConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings for the standard logger.
// Format is one of console, utc or plain; Level debug adds file:line.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Flags returns the log package flags for this config. plain drops the
// timestamp for platforms that stamp each line themselves.
func (l *LogConfig) Flags() int {
	var flags int
	switch strings.ToLower(l.Format) {
	case "plain":
	case "utc":
		flags = log.LstdFlags | log.Lmicroseconds | log.LUTC
	default:
		flags = log.LstdFlags
	}
	if strings.EqualFold(l.Level, "debug") {
		flags |= log.Lshortfile
	}
	return flags
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ParserProviderConfig holds settings for a single LLM extraction provider.
type ParserProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
	MaxChars     int    `mapstructure:"max_chars"`
}

// ParserConfig holds record extraction settings. Secondary is optional and
// used as a fallback when the primary provider fails.
type ParserConfig struct {
	Primary   ParserProviderConfig `mapstructure:"primary"`
	Secondary ParserProviderConfig `mapstructure:"secondary"`
}

// PrimaryConfig returns the primary provider config, or nil if extraction is
// not configured.
func (p *ParserConfig) PrimaryConfig() *ParserProviderConfig {
	if p.Primary.Provider != "" {
		return &p.Primary
	}
	return nil
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (p *ParserConfig) SecondaryConfig() *ParserProviderConfig {
	if p.Secondary.Provider != "" {
		return &p.Secondary
	}
	return nil
}

// PolicyConfig points at an optional YAML policy table. Empty means the
// built-in table.
type PolicyConfig struct {
	File string `mapstructure:"file"`
}

// ValidationConfig bounds the work done by one validation run.
type ValidationConfig struct {
	Workers       int   `mapstructure:"workers"`
	MaxFiles      int   `mapstructure:"max_files"`
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// MaxFileSizeBytes returns the per-file upload limit in bytes.
func (v *ValidationConfig) MaxFileSizeBytes() int64 {
	return v.MaxFileSizeMB * 1024 * 1024
}

// S3Config holds AWS S3 settings for documents referenced by key.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// Enabled reports whether a bucket is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from environment variables with the DOCVAL_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCVAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "300s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Parser defaults
	v.SetDefault("parser.primary.provider", "")
	v.SetDefault("parser.primary.api_key", "")
	v.SetDefault("parser.primary.default_model", "")
	v.SetDefault("parser.primary.timeout_secs", 120)
	v.SetDefault("parser.primary.max_chars", 8000)
	v.SetDefault("parser.secondary.provider", "")
	v.SetDefault("parser.secondary.api_key", "")
	v.SetDefault("parser.secondary.default_model", "")
	v.SetDefault("parser.secondary.timeout_secs", 120)
	v.SetDefault("parser.secondary.max_chars", 8000)

	v.SetDefault("policy.file", "")

	// Validation defaults
	v.SetDefault("validation.workers", 4)
	v.SetDefault("validation.max_files", 20)
	v.SetDefault("validation.max_file_size_mb", 20)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.endpoint", "")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "DOCVAL_SERVER_PORT",
		"server.read_timeout":            "DOCVAL_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "DOCVAL_SERVER_WRITE_TIMEOUT",
		"server.environment":             "DOCVAL_SERVER_ENVIRONMENT",
		"log.level":                      "DOCVAL_LOG_LEVEL",
		"log.format":                     "DOCVAL_LOG_FORMAT",
		"cors.allowed_origins":           "DOCVAL_CORS_ALLOWED_ORIGINS",
		"parser.primary.provider":        "DOCVAL_PARSER_PRIMARY_PROVIDER",
		"parser.primary.api_key":         "DOCVAL_PARSER_PRIMARY_API_KEY",
		"parser.primary.default_model":   "DOCVAL_PARSER_PRIMARY_DEFAULT_MODEL",
		"parser.primary.timeout_secs":    "DOCVAL_PARSER_PRIMARY_TIMEOUT_SECS",
		"parser.primary.max_chars":       "DOCVAL_PARSER_PRIMARY_MAX_CHARS",
		"parser.secondary.provider":      "DOCVAL_PARSER_SECONDARY_PROVIDER",
		"parser.secondary.api_key":       "DOCVAL_PARSER_SECONDARY_API_KEY",
		"parser.secondary.default_model": "DOCVAL_PARSER_SECONDARY_DEFAULT_MODEL",
		"parser.secondary.timeout_secs":  "DOCVAL_PARSER_SECONDARY_TIMEOUT_SECS",
		"parser.secondary.max_chars":     "DOCVAL_PARSER_SECONDARY_MAX_CHARS",
		"policy.file":                    "DOCVAL_POLICY_FILE",
		"validation.workers":             "DOCVAL_VALIDATION_WORKERS",
		"validation.max_files":           "DOCVAL_VALIDATION_MAX_FILES",
		"validation.max_file_size_mb":    "DOCVAL_VALIDATION_MAX_FILE_SIZE_MB",
		"s3.region":                      "DOCVAL_S3_REGION",
		"s3.bucket":                      "DOCVAL_S3_BUCKET",
		"s3.endpoint":                    "DOCVAL_S3_ENDPOINT",
		"s3.access_key":                  "DOCVAL_S3_ACCESS_KEY",
		"s3.secret_key":                  "DOCVAL_S3_SECRET_KEY",
		"metrics.enabled":                "DOCVAL_METRICS_ENABLED",
		"metrics.path":                   "DOCVAL_METRICS_PATH",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCVAL_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCVAL_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Parser = ParserConfig{
		Primary:   providerConfig(v, "parser.primary"),
		Secondary: providerConfig(v, "parser.secondary"),
	}
	cfg.Policy = PolicyConfig{File: v.GetString("policy.file")}
	cfg.Validation = ValidationConfig{
		Workers:       v.GetInt("validation.workers"),
		MaxFiles:      v.GetInt("validation.max_files"),
		MaxFileSizeMB: v.GetInt64("validation.max_file_size_mb"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Metrics = MetricsConfig{
		Enabled: v.GetBool("metrics.enabled"),
		Path:    v.GetString("metrics.path"),
	}

	return cfg, nil
}

func providerConfig(v *viper.Viper, prefix string) ParserProviderConfig {
	return ParserProviderConfig{
		Provider:     v.GetString(prefix + ".provider"),
		APIKey:       v.GetString(prefix + ".api_key"),
		DefaultModel: v.GetString(prefix + ".default_model"),
		TimeoutSecs:  v.GetInt(prefix + ".timeout_secs"),
		MaxChars:     v.GetInt(prefix + ".max_chars"),
	}
}
