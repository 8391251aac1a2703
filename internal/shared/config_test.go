package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Paths.TracklistName != "tracklist.txt" {
		t.Errorf("TracklistName = %q, want %q", config.Paths.TracklistName, "tracklist.txt")
	}
	if config.Paths.OutputTemplate != "{dir} - Full Album.flac" {
		t.Errorf("OutputTemplate = %q, want %q", config.Paths.OutputTemplate, "{dir} - Full Album.flac")
	}
	if config.Engine.FFmpegBin != "ffmpeg" {
		t.Errorf("FFmpegBin = %q, want %q", config.Engine.FFmpegBin, "ffmpeg")
	}
	if config.Engine.FFprobeBin != "ffprobe" {
		t.Errorf("FFprobeBin = %q, want %q", config.Engine.FFprobeBin, "ffprobe")
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		content := `
[paths]
tracklist_name = "songs.txt"
output_template = "{dir}.flac"

[engine]
ffmpeg_bin = "/opt/ffmpeg/bin/ffmpeg"
ffprobe_bin = "/opt/ffmpeg/bin/ffprobe"

[database]
path = "history.db"
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		config, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig failed: %v", err)
		}

		if config.Paths.TracklistName != "songs.txt" {
			t.Errorf("TracklistName = %q, want %q", config.Paths.TracklistName, "songs.txt")
		}
		if config.Engine.FFmpegBin != "/opt/ffmpeg/bin/ffmpeg" {
			t.Errorf("FFmpegBin = %q, want %q", config.Engine.FFmpegBin, "/opt/ffmpeg/bin/ffmpeg")
		}
		if config.Database.Path != "history.db" {
			t.Errorf("Database.Path = %q, want %q", config.Database.Path, "history.db")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error for missing config file")
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.toml")
		if err := os.WriteFile(path, []byte("[[paths"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Error("expected error for malformed config file")
		}
	})
}

func TestCreateConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("CreateConfigFile failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}

func TestPathHelpers(t *testing.T) {
	config := DefaultConfig()
	albumDir := filepath.Join("music", "Moonrise")

	t.Run("OutputFile", func(t *testing.T) {
		got := config.OutputFile(albumDir)
		want := filepath.Join(albumDir, "Moonrise - Full Album.flac")
		if got != want {
			t.Errorf("OutputFile() = %q, want %q", got, want)
		}
	})

	t.Run("TracklistFile", func(t *testing.T) {
		got := config.TracklistFile(albumDir)
		want := filepath.Join(albumDir, "tracklist.txt")
		if got != want {
			t.Errorf("TracklistFile() = %q, want %q", got, want)
		}
	})

	t.Run("empty templates fall back to defaults", func(t *testing.T) {
		empty := &Config{}
		got := empty.OutputFile("Moonrise")
		want := filepath.Join("Moonrise", "Moonrise - Full Album.flac")
		if got != want {
			t.Errorf("OutputFile() = %q, want %q", got, want)
		}
		if empty.TracklistFile("Moonrise") != filepath.Join("Moonrise", "tracklist.txt") {
			t.Errorf("TracklistFile() fallback mismatch")
		}
	})
}
