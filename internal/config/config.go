package config

import (
	_ "embed"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/imgprint/imgprint/internal/constants"
)

//go:embed presets.yaml
var presetsYAML []byte

type Config struct {
	Hash    HashConfig
	Dedupe  DedupeConfig
	Server  ServerConfig
	Presets PresetsConfig
}

type HashConfig struct {
	Width     int    // bit columns of the output hash
	Height    int    // bit rows of the output hash
	Factor    int    // oversampling ratio for the perceptual hash
	Algorithm string // phash, ahash or dhash
}

type DedupeConfig struct {
	Threshold int // max Hamming distance for near-duplicates
	Workers   int // parallel hashing workers for directory scans
}

type ServerConfig struct {
	Host     string
	Port     int
	LogLevel string // logrus level name (debug, info, warn, error)
}

type PresetsConfig struct {
	Presets map[string]Preset `yaml:"presets"`
}

// Preset is a named hash geometry shipped with the binary.
type Preset struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Factor int `yaml:"factor"`
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

// envString reads an environment variable with a fallback.
func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func Load() *Config {
	var presets PresetsConfig
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		// This is an embedded file so this error should never happen in practice
		panic("failed to unmarshal embedded presets.yaml: " + err.Error())
	}

	return &Config{
		Hash: HashConfig{
			Width:     envInt("IMGPRINT_WIDTH", constants.DefaultHashSize),
			Height:    envInt("IMGPRINT_HEIGHT", constants.DefaultHashSize),
			Factor:    envInt("IMGPRINT_FACTOR", constants.DefaultFactor),
			Algorithm: envString("IMGPRINT_ALGORITHM", "phash"),
		},
		Dedupe: DedupeConfig{
			Threshold: envInt("IMGPRINT_THRESHOLD", constants.DefaultDuplicateThreshold),
			Workers:   envInt("IMGPRINT_WORKERS", constants.DefaultWorkers),
		},
		Server: ServerConfig{
			Host:     envString("IMGPRINT_HOST", constants.DefaultServerHost),
			Port:     envInt("IMGPRINT_PORT", constants.DefaultServerPort),
			LogLevel: envString("IMGPRINT_LOG_LEVEL", "info"),
		},
		Presets: presets,
	}
}

// GetPreset returns the named hash geometry preset, if it exists.
func (c *Config) GetPreset(name string) (Preset, bool) {
	preset, ok := c.Presets.Presets[name]
	return preset, ok
}
