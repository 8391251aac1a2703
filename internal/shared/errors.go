package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Track list and matching errors, all detected before any rename
	ErrDuplicateTracks = fmt.Errorf("track list contains duplicate titles")
	ErrEmptyTrackList  = fmt.Errorf("track list is empty")
	ErrNoMatch         = fmt.Errorf("no matching audio file")
	ErrAmbiguousMatch  = fmt.Errorf("multiple matching audio files")

	// Filesystem and engine errors
	ErrRenameFailed = fmt.Errorf("rename failed")
	ErrConcatFailed = fmt.Errorf("concatenation failed")
	ErrProbeFailed  = fmt.Errorf("probe failed")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
)
