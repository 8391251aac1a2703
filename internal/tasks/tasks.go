// package tasks orchestrates album sorting and concatenation with real-time progress reporting.
//
// The core abstraction is AlbumEngine, which runs the two pipeline stages in
// sequence: match/rename the album directory against the track list, then
// hand the renamed files to the media engine for concatenation. Any stage
// failure aborts before the next stage runs. Operations emit progress
// updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"time"

	"albumweld/internal/sorter"
	"albumweld/internal/tracklist"
)

// WeldResult contains all data from a full sort-and-concatenate operation.
type WeldResult struct {
	AlbumDir     string        // Album directory that was processed
	OutputFile   string        // Concatenated output path
	TrackCount   int           // Number of tracks welded
	RenamedFiles []string      // Final renamed paths, in play order
	Duration     time.Duration // Probed output duration; zero when unavailable
}

// Concatenator defines the media-engine operations the engine depends on.
// This abstraction allows for easier testing and decoupling from ffmpeg.
type Concatenator interface {
	Concat(ctx context.Context, inputs []string, output string) error
	Probe(ctx context.Context, file string) (time.Duration, error)
}

// AlbumEngine implements the weld pipeline over a media engine.
type AlbumEngine struct {
	media Concatenator
}

// NewAlbumEngine creates a new AlbumEngine with the provided media engine.
func NewAlbumEngine(media Concatenator) *AlbumEngine {
	return &AlbumEngine{media: media}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *AlbumEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
		// Sent successfully
	default:
		// Channel full or closed, skip this update
	}
}

// Plan validates the track list and computes the rename plan without
// touching the filesystem.
func (e *AlbumEngine) Plan(list tracklist.TrackList, dir string, progress chan<- ProgressUpdate) (*sorter.Plan, error) {
	total := len(list)

	e.sendProgress(progress, validateUpdate(total))
	e.sendProgress(progress, matchStartUpdate(total))

	plan, err := sorter.BuildPlan(list, dir)
	if err != nil {
		return nil, err
	}

	for i, op := range plan.Ops {
		e.sendProgress(progress, matchedUpdate(i+1, total, op))
	}

	return plan, nil
}

// Sort matches and renames the album directory against the track list,
// returning the renamed paths in play order.
func (e *AlbumEngine) Sort(list tracklist.TrackList, dir string, progress chan<- ProgressUpdate) ([]string, error) {
	plan, err := e.Plan(list, dir, progress)
	if err != nil {
		return nil, err
	}

	e.sendProgress(progress, renameUpdate(len(plan.Ops)))

	renamed, err := plan.Execute()
	if err != nil {
		return nil, err
	}

	return renamed, nil
}

// Weld runs the full pipeline: sort the directory, then concatenate the
// renamed files into the output. Sorting failures abort before any engine
// invocation; the directory is never touched once concatenation starts.
func (e *AlbumEngine) Weld(ctx context.Context, list tracklist.TrackList, dir, output string, progress chan<- ProgressUpdate) (*WeldResult, error) {
	renamed, err := e.Sort(list, dir, progress)
	if err != nil {
		return nil, err
	}

	result := &WeldResult{
		AlbumDir:     dir,
		OutputFile:   output,
		TrackCount:   len(renamed),
		RenamedFiles: renamed,
	}

	if err := e.Concat(ctx, renamed, output, progress); err != nil {
		return result, err
	}

	if d, err := e.media.Probe(ctx, output); err == nil {
		result.Duration = d
	}

	e.sendProgress(progress, weldDoneUpdate(output))
	return result, nil
}

// Concat concatenates an explicit ordered file list into the output.
func (e *AlbumEngine) Concat(ctx context.Context, files []string, output string, progress chan<- ProgressUpdate) error {
	e.sendProgress(progress, concatUpdate(len(files), output))
	return e.media.Concat(ctx, files, output)
}
