package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"albumweld/internal/shared"
)

// History lists recorded weld and sort runs, newest first.
func (r *Runner) History(ctx context.Context, cmd *cli.Command) error {
	if r.runs == nil {
		return fmt.Errorf("%w: run-history database not initialized, run 'setup database' first", shared.ErrMissingConfig)
	}

	criteria := map[string]any{
		"status":    cmd.String("status"),
		"album_dir": cmd.String("album"),
	}

	runs, err := r.runs.List(criteria)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		return r.writePlain("No runs recorded.\n")
	}

	if cmd.Bool("json") {
		rows := make([]map[string]any, 0, len(runs))
		for _, run := range runs {
			rows = append(rows, map[string]any{
				"id":          run.ID(),
				"sequence":    run.Sequence(),
				"album_dir":   run.AlbumDir(),
				"output_file": run.OutputFile(),
				"track_count": run.TrackCount(),
				"status":      string(run.Status()),
				"error":       run.ErrorMessage(),
				"created_at":  run.CreatedAt(),
			})
		}
		return r.writeJSON(rows, true)
	}

	r.writePlainHeader(fmt.Sprintf("Run History (%d)", len(runs)))
	for _, run := range runs {
		r.writePlain("%s  %s  %s (%d tracks)\n",
			run.CreatedAt().Format("2006-01-02 15:04"), run.Status(), run.AlbumDir(), run.TrackCount())
		if run.OutputFile() != "" {
			r.writePlain("    output: %s\n", run.OutputFile())
		}
		if run.ErrorMessage() != "" {
			r.writePlain("    error: %s\n", run.ErrorMessage())
		}
	}

	return nil
}

// historyCommand lists recorded runs.
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "List recorded weld and sort runs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "status",
				Usage: "Filter by status (completed, sort_failed, concat_failed)",
			},
			&cli.StringFlag{
				Name:  "album",
				Usage: "Filter by album directory",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: r.History,
	}
}
