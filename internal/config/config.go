package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Canvas width limits for DEFAULT_CANVAS_WIDTH.
const (
	MinCanvasWidth = 200
	MaxCanvasWidth = 8192
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// DatasetPath is the volcano CSV file.
	DatasetPath string
	// MapImagePath is the equirectangular world background image.
	MapImagePath string
	// DatasetLoadAttempts bounds startup retries while the dataset is missing.
	DatasetLoadAttempts int

	RenderCacheSize    int
	DefaultCanvasWidth int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	cacheSize, err := parsePositiveInt("RENDER_CACHE_SIZE", 128)
	if err != nil {
		return nil, err
	}

	attempts, err := parsePositiveInt("DATASET_LOAD_ATTEMPTS", 3)
	if err != nil {
		return nil, err
	}

	width, err := parseCanvasWidth()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:            sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:            sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:     shutdownTimeout,
		DatasetPath:         sharedcfg.EnvOrDefault("DATASET_PATH", "data/volcano.csv"),
		MapImagePath:        sharedcfg.EnvOrDefault("MAP_IMAGE_PATH", "data/world.png"),
		DatasetLoadAttempts: attempts,
		RenderCacheSize:     cacheSize,
		DefaultCanvasWidth:  width,
	}

	return cfg, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, errors.New("invalid " + key + ": must be a positive integer")
	}
	return n, nil
}

func parseCanvasWidth() (int, error) {
	s := os.Getenv("DEFAULT_CANVAS_WIDTH")
	if s == "" {
		return 1200, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < MinCanvasWidth || n > MaxCanvasWidth {
		return 0, errors.New("invalid DEFAULT_CANVAS_WIDTH: must be 200-8192")
	}
	return n, nil
}
