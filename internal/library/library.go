// package library inspects album directories, pairing filenames with
// embedded tags to help the user author a track list.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/dhowden/tag"
)

// Entry describes one directory entry and whatever tags could be read from it.
type Entry struct {
	Name   string // Base filename
	Title  string // Embedded title tag, empty when unavailable
	Artist string // Embedded artist tag, empty when unavailable
	Album  string // Embedded album tag, empty when unavailable
	Tagged bool   // Whether tags were readable
	IsDir  bool
}

// Scan lists a directory's immediate entries with their embedded tags.
//
// Tag reading is best-effort: entries whose container is unsupported or
// unreadable degrade to name-only entries rather than failing the scan.
// Results are sorted by name.
func Scan(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entry := Entry{Name: de.Name(), IsDir: de.IsDir()}
		if !de.IsDir() {
			if m, err := readTags(filepath.Join(dir, de.Name())); err == nil {
				entry.Title = m.Title()
				entry.Artist = m.Artist()
				entry.Album = m.Album()
				entry.Tagged = true
			}
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// readTags opens a file and parses its embedded metadata.
func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return tag.ReadFrom(f)
}
