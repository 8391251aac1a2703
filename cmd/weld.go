package main

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"

	"albumweld/internal/models"
	"albumweld/internal/shared"
	"albumweld/internal/tasks"
)

// Weld runs the full pipeline: sort the album directory into play order,
// then concatenate the renamed tracks into a single output file.
func (r *Runner) Weld(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	listPath := cmd.String("tracklist")
	if listPath == "" {
		listPath = r.config.TracklistFile(dir)
	}
	output := cmd.String("output")
	if output == "" {
		output = r.config.OutputFile(dir)
	}

	r.logger.Info("starting weld", "dir", dir, "tracklist", listPath, "output", output)

	list, err := r.loadTrackList(listPath)
	if err != nil {
		return r.exitErr(err)
	}

	r.writePlain("Welding album...\n")
	r.writePlain("Album: %s\n", dir)
	r.writePlain("Tracks: %d\n", len(list))
	r.writePlain("Output: %s\n\n", output)

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progressCh {
			switch update.Phase {
			case tasks.MatchTracks:
				if update.Step == 0 {
					r.writePlain("%s\n", update.Message)
				} else {
					r.writePlain("  %s\n", update.Message)
				}
			case tasks.RenameTracks, tasks.Concatenate:
				r.writePlain("\n%s\n", update.Message)
			}
		}
	}()

	result, err := r.engine.Weld(ctx, list, dir, output, progressCh)
	close(progressCh)
	<-done

	if err != nil {
		if errors.Is(err, shared.ErrConcatFailed) {
			r.recordRun(dir, output, result.TrackCount, models.RunStatusConcatFailed, err)
		} else {
			r.recordRun(dir, output, 0, models.RunStatusSortFailed, err)
		}
		return r.exitErr(err)
	}

	r.recordRun(dir, output, result.TrackCount, models.RunStatusCompleted, nil)

	r.writePlain("\n")
	r.writePlainHeader("Weld Complete!")
	r.writePlain("Album: %s (%d tracks)\n", result.AlbumDir, result.TrackCount)
	r.writePlain("Output: %s\n", result.OutputFile)
	if result.Duration > 0 {
		r.writePlain("Duration: %s\n", result.Duration.Round(time.Second))
	}

	return nil
}

// weldCommand sorts an album directory and concatenates it into one file.
func weldCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "weld",
		Usage:     "Sort an album directory and weld it into a single audio file",
		ArgsUsage: "[album-dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tracklist",
				Aliases: []string{"t"},
				Usage:   "Path to the track list file (default: <album-dir>/tracklist.txt)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output file path (default: \"<album-dir> - Full Album.flac\" inside the album directory)",
			},
		},
		Action: r.Weld,
	}
}
