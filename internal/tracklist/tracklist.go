// package tracklist parses and validates ordered album track lists.
//
// A track list is the user-authored play order: one title per line, each
// title naming exactly one audio file in the album directory by prefix.
package tracklist

import (
	"fmt"
	"strconv"
	"strings"

	"albumweld/internal/shared"
)

// TrackList is the ordered sequence of track titles defining the output order.
type TrackList []string

// Parse builds a TrackList from the raw contents of a track list file.
//
// Surrounding whitespace is trimmed from the content as a whole, not per
// line; interior blank lines are preserved and left to the caller.
func Parse(content string) TrackList {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return TrackList{}
	}

	lines := strings.Split(trimmed, "\n")
	list := make(TrackList, 0, len(lines))
	for _, line := range lines {
		list = append(list, strings.TrimSuffix(line, "\r"))
	}
	return list
}

// Validate rejects track lists containing duplicate titles.
//
// Titles are compared case-sensitively and exactly. Validation is pure and
// runs before any filesystem access.
func (t TrackList) Validate() error {
	seen := make(map[string]struct{}, len(t))
	for _, title := range t {
		if _, ok := seen[title]; ok {
			return fmt.Errorf("%w: %q", shared.ErrDuplicateTracks, title)
		}
		seen[title] = struct{}{}
	}
	return nil
}

// IndexDigits returns the uniform zero-pad width for index prefixes:
// the digit count of the track count (9 tracks -> 1, 10-99 -> 2).
func (t TrackList) IndexDigits() int {
	return len(strconv.Itoa(len(t)))
}
