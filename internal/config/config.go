package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/csheth/safeguard/internal/analyzer"
)

// AppName is used for XDG directory paths.
const AppName = "safeguard"

// DefaultConfigFile is looked up under the XDG config directory.
const DefaultConfigFile = "config.yaml"

var (
	// ErrConfigNotFound is returned when an explicitly requested file is missing.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrInvalidDelay is returned when the analysis delay is not positive.
	ErrInvalidDelay = errors.New("invalid analysis delay: must be positive")
)

// Config holds runtime options for the landing page program.
type Config struct {
	AnalysisDelay time.Duration
	DropDir       string
	StartDir      string
	LogFile       string
	Verbose       bool
	AltScreen     bool
}

// fileConfig mirrors the YAML layout; durations stay strings until parsed.
type fileConfig struct {
	AnalysisDelay string `yaml:"analysis_delay"`
	DropDir       string `yaml:"drop_dir"`
	StartDir      string `yaml:"start_dir"`
	LogFile       string `yaml:"log_file"`
	Verbose       *bool  `yaml:"verbose"`
	AltScreen     *bool  `yaml:"alt_screen"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		AnalysisDelay: analyzer.DefaultDelay,
		StartDir:      ".",
		LogFile:       filepath.Join(xdg.StateHome, AppName, AppName+".log"),
		AltScreen:     true,
	}
}

// XDGConfigPath returns the default config file location,
// eg. ~/.config/safeguard/config.yaml on Linux.
func XDGConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, DefaultConfigFile)
}

// Load layers defaults, the YAML file and the environment. An empty path
// means the XDG location, which may be absent; an explicit path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = XDGConfigPath()
	}
	if err := cfg.mergeFile(path); err != nil {
		if !errors.Is(err, ErrConfigNotFound) || explicit {
			return Config{}, err
		}
	}

	// .env is optional
	_ = godotenv.Load()
	if err := cfg.mergeEnv(); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if fc.AnalysisDelay != "" {
		delay, err := time.ParseDuration(fc.AnalysisDelay)
		if err != nil {
			return fmt.Errorf("analysis_delay: %w", err)
		}
		c.AnalysisDelay = delay
	}
	if fc.DropDir != "" {
		c.DropDir = expandHome(fc.DropDir)
	}
	if fc.StartDir != "" {
		c.StartDir = expandHome(fc.StartDir)
	}
	if fc.LogFile != "" {
		c.LogFile = expandHome(fc.LogFile)
	}
	if fc.Verbose != nil {
		c.Verbose = *fc.Verbose
	}
	if fc.AltScreen != nil {
		c.AltScreen = *fc.AltScreen
	}
	return nil
}

func (c *Config) mergeEnv() error {
	if value := getEnv("SAFEGUARD_ANALYSIS_DELAY", ""); value != "" {
		delay, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("SAFEGUARD_ANALYSIS_DELAY: %w", err)
		}
		c.AnalysisDelay = delay
	}
	c.DropDir = expandHome(getEnv("SAFEGUARD_DROP_DIR", c.DropDir))
	c.StartDir = expandHome(getEnv("SAFEGUARD_START_DIR", c.StartDir))
	c.LogFile = expandHome(getEnv("SAFEGUARD_LOG_FILE", c.LogFile))
	if value := getEnv("SAFEGUARD_VERBOSE", ""); value != "" {
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("SAFEGUARD_VERBOSE: %w", err)
		}
		c.Verbose = verbose
	}
	return nil
}

// Validate checks option ranges.
func (c Config) Validate() error {
	if c.AnalysisDelay <= 0 {
		return ErrInvalidDelay
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return filepath.Join(xdg.Home, strings.TrimPrefix(path, "~"))
	}
	return path
}
