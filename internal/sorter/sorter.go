// package sorter resolves track titles to audio files and renames them into
// canonical play order.
//
// Sorting is all-or-nothing up to the first rename: the full rename plan is
// computed before any filesystem mutation, so a matching failure never
// leaves the directory partially renamed. Only a mid-execution rename error
// can leave partial state, which is surfaced and not rolled back.
package sorter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"albumweld/internal/shared"
	"albumweld/internal/tracklist"
)

// RenameOp is a single planned rename: a matched source file and the
// index-prefixed name it will receive inside the album directory.
type RenameOp struct {
	Title   string // Track title the source was matched against
	Source  string // Absolute or directory-relative path of the matched file
	NewName string // Final base name, e.g. "03 - Interlude.flac"
}

// Plan is an ordered rename plan for one album directory.
//
// Plans are transient: computed, executed, and discarded within a single
// Sort call. Matches are never cached across runs.
type Plan struct {
	Dir string
	Ops []RenameOp
}

// FindTarget resolves a track title to the unique directory entry whose
// name starts with the title as a literal prefix.
//
// The scan is non-recursive and case-sensitive. Zero matches and multiple
// matches are both errors; ambiguity is never auto-resolved.
func FindTarget(title, dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var matched []string
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), title) {
			matched = append(matched, entry.Name())
		}
	}

	if len(matched) > 1 {
		return "", fmt.Errorf("%w for %q: %s", shared.ErrAmbiguousMatch, title, strings.Join(matched, ", "))
	}
	if len(matched) == 0 {
		return "", fmt.Errorf("%w for %q", shared.ErrNoMatch, title)
	}

	return filepath.Join(dir, matched[0]), nil
}

// BuildPlan matches every track title against the directory and returns the
// complete rename plan, in track-list order.
//
// Any validation or matching failure discards the plan; the directory is
// untouched. New names carry a 1-based index, zero-padded to the uniform
// width given by the track count.
func BuildPlan(list tracklist.TrackList, dir string) (*Plan, error) {
	if err := list.Validate(); err != nil {
		return nil, err
	}

	digits := list.IndexDigits()
	plan := &Plan{Dir: dir, Ops: make([]RenameOp, 0, len(list))}

	for i, title := range list {
		source, err := FindTarget(title, dir)
		if err != nil {
			return nil, err
		}
		plan.Ops = append(plan.Ops, RenameOp{
			Title:   title,
			Source:  source,
			NewName: fmt.Sprintf("%0*d - %s", digits, i+1, filepath.Base(source)),
		})
	}

	return plan, nil
}

// Execute performs the planned renames in order and returns the final paths.
//
// The first rename failure stops execution immediately; renames already
// performed in this run are left in place. Recovering from that partial
// state is a manual operation.
func (p *Plan) Execute() ([]string, error) {
	renamed := make([]string, 0, len(p.Ops))
	for _, op := range p.Ops {
		target := filepath.Join(p.Dir, op.NewName)
		if err := os.Rename(op.Source, target); err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrRenameFailed, err)
		}
		renamed = append(renamed, target)
	}
	return renamed, nil
}

// Sort validates the track list, builds the rename plan, and executes it,
// returning the renamed file paths in track-list order.
func Sort(list tracklist.TrackList, dir string) ([]string, error) {
	plan, err := BuildPlan(list, dir)
	if err != nil {
		return nil, err
	}
	return plan.Execute()
}
