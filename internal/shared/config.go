package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Paths    PathsConfig    `toml:"paths"`
	Engine   EngineConfig   `toml:"engine"`
	Database DatabaseConfig `toml:"database"`
}

// PathsConfig controls how default input and output paths are derived.
//
// Defaults live in configuration rather than being read from the process
// working directory, so the core stays pure and testable.
type PathsConfig struct {
	TracklistName  string `toml:"tracklist_name"`  // Track list filename looked up inside the album directory
	OutputTemplate string `toml:"output_template"` // Output filename template; {dir} expands to the album directory name
}

// EngineConfig names the external media engine binaries.
type EngineConfig struct {
	FFmpegBin  string `toml:"ffmpeg_bin"`
	FFprobeBin string `toml:"ffprobe_bin"`
}

// DatabaseConfig contains run-history database settings.
type DatabaseConfig struct {
	Path         string `toml:"path"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// OutputFile expands the configured output template for the given album directory.
func (c *Config) OutputFile(albumDir string) string {
	name := c.Paths.OutputTemplate
	if name == "" {
		name = "{dir} - Full Album.flac"
	}
	expanded := strings.ReplaceAll(name, "{dir}", filepath.Base(albumDir))
	return filepath.Join(albumDir, expanded)
}

// TracklistFile returns the track list path inside the given album directory.
func (c *Config) TracklistFile(albumDir string) string {
	name := c.Paths.TracklistName
	if name == "" {
		name = "tracklist.txt"
	}
	return filepath.Join(albumDir, name)
}
