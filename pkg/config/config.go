// Package config loads the stonkie CLI configuration. Configuration is read
// once per process; every caller sees the same value.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults applied when neither environment nor config file set a value.
const (
	// DefaultBackendURL points at a locally running Stonkie backend.
	DefaultBackendURL = "http://localhost:8080"

	// DefaultOutputDir is where conversation transcripts are exported.
	DefaultOutputDir = "outputs"

	DefaultLogsLevel = "warn"
)

// Config holds the runtime configuration for the stonkie CLI.
type Config struct {
	// BackendURL is the base URL of the Stonkie analysis backend.
	BackendURL string `mapstructure:"backend_url"`

	// RequestTimeout bounds analyze requests. Zero means no timeout; the
	// request then runs until it settles or the program exits.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// OutputDir is the directory transcripts are exported to.
	OutputDir string `mapstructure:"output_dir"`

	// LogsLevel is one of trace, debug, info, warn, error, off.
	LogsLevel string `mapstructure:"logs_level"`

	// LogsFile receives log output instead of stderr when set.
	LogsFile string `mapstructure:"logs_file"`
}

var (
	loadOnce sync.Once
	loaded   Config
	loadErr  error
)

// Load reads the configuration on first call and returns the cached value
// afterwards. Precedence: environment (STONKIE_* first, then bare
// BACKEND_URL), stonkie.yaml, .env file, built-in defaults.
func Load() (Config, error) {
	loadOnce.Do(func() {
		loaded, loadErr = load()
	})
	return loaded, loadErr
}

func load() (Config, error) {
	// .env is optional and never overrides the real environment.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("stonkie")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "stonkie"))
	}

	v.SetDefault("backend_url", DefaultBackendURL)
	v.SetDefault("request_timeout", time.Duration(0))
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("logs_level", DefaultLogsLevel)
	v.SetDefault("logs_file", "")

	v.SetEnvPrefix("STONKIE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The backend URL is also honored without the prefix; STONKIE_BACKEND_URL
	// wins when both are set.
	if err := v.BindEnv("backend_url", "STONKIE_BACKEND_URL", "BACKEND_URL"); err != nil {
		return Config{}, fmt.Errorf("bind backend_url: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read stonkie.yaml: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	// The API client joins paths onto the base URL itself.
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	return cfg, nil
}
