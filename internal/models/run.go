package models

import (
	"fmt"
	"time"
)

// RunStatus describes how a recorded run ended.
type RunStatus string

// Run statuses.
const (
	RunStatusCompleted    RunStatus = "completed"
	RunStatusSortFailed   RunStatus = "sort_failed"
	RunStatusConcatFailed RunStatus = "concat_failed"
)

// Run is a persisted record of one weld or sort invocation: which album
// directory was processed, how many tracks, where the output went, and how
// the run ended.
type Run struct {
	id           string
	sequence     int
	albumDir     string
	outputFile   string
	trackCount   int
	status       RunStatus
	errorMessage string
	createdAt    time.Time
	updatedAt    time.Time
	deletedAt    *time.Time
}

// NewRun creates a Run for the given album directory with timestamps set.
// The ID is assigned by the repository on Create.
func NewRun(sequence int, albumDir string, status RunStatus) *Run {
	now := time.Now()
	return &Run{
		sequence:  sequence,
		albumDir:  albumDir,
		status:    status,
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Run) ID() string            { return r.id }
func (r *Run) Sequence() int         { return r.sequence }
func (r *Run) AlbumDir() string      { return r.albumDir }
func (r *Run) OutputFile() string    { return r.outputFile }
func (r *Run) TrackCount() int       { return r.trackCount }
func (r *Run) Status() RunStatus     { return r.status }
func (r *Run) ErrorMessage() string  { return r.errorMessage }
func (r *Run) CreatedAt() time.Time  { return r.createdAt }
func (r *Run) UpdatedAt() time.Time  { return r.updatedAt }
func (r *Run) DeletedAt() *time.Time { return r.deletedAt }

func (r *Run) SetID(id string)            { r.id = id }
func (r *Run) SetOutputFile(path string)  { r.outputFile = path }
func (r *Run) SetTrackCount(n int)        { r.trackCount = n }
func (r *Run) SetStatus(s RunStatus)      { r.status = s }
func (r *Run) SetErrorMessage(msg string) { r.errorMessage = msg }
func (r *Run) SetCreatedAt(t time.Time)   { r.createdAt = t }
func (r *Run) SetUpdatedAt(t time.Time)   { r.updatedAt = t }
func (r *Run) SetDeletedAt(t *time.Time)  { r.deletedAt = t }

// Validate checks that the run has an album directory and a known status.
func (r *Run) Validate() error {
	if r.albumDir == "" {
		return fmt.Errorf("run requires an album directory")
	}
	switch r.status {
	case RunStatusCompleted, RunStatusSortFailed, RunStatusConcatFailed:
		return nil
	default:
		return fmt.Errorf("invalid run status: %q", r.status)
	}
}
