package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/RyanBlaney/sonido-modal/algorithms/tonal"
	"github.com/RyanBlaney/sonido-modal/algorithms/transform"
	"github.com/RyanBlaney/sonido-modal/logging"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Environment variables read by LoadEnv.
const (
	EnvNumberNotes       = "MODAL_NUMBER_NOTES"
	EnvNumberKeys        = "MODAL_NUMBER_KEYS"
	EnvChunkSizeMS       = "MODAL_CHUNK_SIZE_MS"
	EnvTranslationPolicy = "MODAL_TRANSLATION_POLICY"
	EnvWorkers           = "MODAL_WORKERS"
	EnvLogLevel          = "MODAL_LOG_LEVEL"
)

// Config holds every knob of the key identification and transform pipeline.
type Config struct {
	NumberNotes       int           `json:"number_notes"`       // notes per chord
	NumberKeys        int           `json:"number_keys"`        // max key segments
	ChunkSize         time.Duration `json:"chunk_size"`         // analysis and transform frame length
	TranslationPolicy string        `json:"translation_policy"` // e.g. "major_to_minor(harmonic)"
	Workers           int           `json:"workers"`            // transform worker pool size
	LogLevel          string        `json:"log_level"`
}

// DefaultConfig returns the defaults of the command line tool.
func DefaultConfig() *Config {
	return &Config{
		NumberNotes:       4,
		NumberKeys:        1,
		ChunkSize:         time.Second,
		TranslationPolicy: "major_to_minor(harmonic)",
		Workers:           8,
		LogLevel:          "info",
	}
}

// LoadEnv reads .env files (missing files are ignored) and applies any
// MODAL_* variables found in the environment on top of c.
func (c *Config) LoadEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}

	if err := envInt(EnvNumberNotes, &c.NumberNotes); err != nil {
		return err
	}
	if err := envInt(EnvNumberKeys, &c.NumberKeys); err != nil {
		return err
	}
	var chunkMS int
	if err := envInt(EnvChunkSizeMS, &chunkMS); err != nil {
		return err
	}
	if chunkMS != 0 {
		c.ChunkSize = time.Duration(chunkMS) * time.Millisecond
	}
	if err := envInt(EnvWorkers, &c.Workers); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvTranslationPolicy); ok && v != "" {
		c.TranslationPolicy = v
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	return nil
}

func envInt(name string, dst *int) error {
	v, ok := os.LookupEnv(name)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, name, v)
	}
	*dst = n
	return nil
}

// Validate checks ranges and that the policy and log level parse.
func (c *Config) Validate() error {
	if c.NumberNotes < 1 {
		return fmt.Errorf("%w: number_notes must be at least 1, got %d", ErrInvalidConfig, c.NumberNotes)
	}
	if c.NumberKeys < 1 {
		return fmt.Errorf("%w: number_keys must be at least 1, got %d", ErrInvalidConfig, c.NumberKeys)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk_size must be positive, got %s", ErrInvalidConfig, c.ChunkSize)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	}
	if _, err := transform.ParsePolicy(c.TranslationPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Policy parses TranslationPolicy.
func (c *Config) Policy() (transform.Policy, error) {
	return transform.ParsePolicy(c.TranslationPolicy)
}

// ChunkSeconds is ChunkSize as fractional seconds.
func (c *Config) ChunkSeconds() float64 {
	return c.ChunkSize.Seconds()
}

// ChunkSamples returns how many samples one chunk spans at sampleRate, or an
// error if that is below the minimum the spectral analysis needs.
func (c *Config) ChunkSamples(sampleRate int) (int, error) {
	n := int(float64(sampleRate) * c.ChunkSeconds())
	if n < tonal.MinChunkSamples {
		return 0, fmt.Errorf("%w: chunk_size %s is %d samples at %d Hz, need at least %d",
			ErrInvalidConfig, c.ChunkSize, n, sampleRate, tonal.MinChunkSamples)
	}
	return n, nil
}
