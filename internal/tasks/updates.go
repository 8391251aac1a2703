package tasks

import (
	"fmt"

	"albumweld/internal/sorter"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	Validate Phase = iota
	MatchTracks
	RenameTracks
	Concatenate
	Done
)

func (p Phase) String() string {
	switch p {
	case Validate:
		return "validate"
	case MatchTracks:
		return "match_tracks"
	case RenameTracks:
		return "rename_tracks"
	case Concatenate:
		return "concatenate"
	case Done:
		return "done"
	default:
		return ""
	}
}

func validateUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Validate,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Validating track list (%d tracks)...", total),
	}
}

func matchStartUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchTracks,
		Step:    0,
		Total:   total,
		Message: "Matching tracks against directory entries...",
	}
}

func matchedUpdate(step, total int, op sorter.RenameOp) ProgressUpdate {
	return ProgressUpdate{
		Phase:   MatchTracks,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] %s = %s", step, total, op.Title, op.NewName),
		Data:    op,
	}
}

func renameUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   RenameTracks,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Renaming %d files into play order...", total),
	}
}

func concatUpdate(total int, output string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Concatenate,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Concatenating %d tracks into %s...", total, output),
	}
}

func weldDoneUpdate(output string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Done,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Album written to %s", output),
	}
}
