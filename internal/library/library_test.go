package library

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScan(t *testing.T) {
	dir := t.TempDir()

	// Untagged files: not valid audio containers, so tag reading degrades
	// to name-only entries.
	for _, name := range []string{"Outro.flac", "Intro.flac"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("not audio"), 0644); err != nil {
			t.Fatalf("failed to create fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "artwork"), 0755); err != nil {
		t.Fatalf("failed to create subdir: %v", err)
	}

	entries, err := Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}

	// Sorted by name.
	wantNames := []string{"Intro.flac", "Outro.flac", "artwork"}
	for i, want := range wantNames {
		if entries[i].Name != want {
			t.Errorf("entries[%d].Name = %q, want %q", i, entries[i].Name, want)
		}
	}

	for _, e := range entries {
		if e.Name == "artwork" {
			if !e.IsDir {
				t.Error("artwork should be a directory entry")
			}
			continue
		}
		if e.Tagged {
			t.Errorf("%s: unreadable tags should degrade to name-only", e.Name)
		}
		if e.Title != "" || e.Artist != "" {
			t.Errorf("%s: expected empty tags, got %q/%q", e.Name, e.Title, e.Artist)
		}
	}
}

func TestScanMissingDirectory(t *testing.T) {
	if _, err := Scan(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}
