package main

import (
	"context"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"albumweld/internal/formatter"
	"albumweld/internal/models"
)

// Sort matches the album directory against the track list and renames the
// files into play order. With --dry-run the plan is rendered without
// touching the filesystem.
func (r *Runner) Sort(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	listPath := cmd.String("tracklist")
	if listPath == "" {
		listPath = r.config.TracklistFile(dir)
	}

	list, err := r.loadTrackList(listPath)
	if err != nil {
		return r.exitErr(err)
	}

	plan, err := r.engine.Plan(list, dir, nil)
	if err != nil {
		r.recordRun(dir, "", 0, models.RunStatusSortFailed, err)
		return r.exitErr(err)
	}

	if cmd.Bool("dry-run") {
		rendered, err := formatter.RenderPlan(plan, cmd.String("format"))
		if err != nil {
			return r.exitErr(err)
		}
		if export := cmd.String("export"); export != "" {
			if err := formatter.WritePlanExport(plan, export, cmd.String("format")); err != nil {
				return r.exitErr(err)
			}
			r.logger.Info("plan exported", "path", export)
		}
		return r.writePlain("%s", rendered)
	}

	renamed, err := plan.Execute()
	if err != nil {
		r.recordRun(dir, "", 0, models.RunStatusSortFailed, err)
		return r.exitErr(err)
	}

	r.recordRun(dir, "", len(renamed), models.RunStatusCompleted, nil)

	r.writePlain("Renamed %d tracks in %s:\n", len(renamed), dir)
	for _, path := range renamed {
		r.writePlain("  %s\n", filepath.Base(path))
	}

	return nil
}

// sortCommand renames album tracks into play order without concatenating.
func sortCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Rename album tracks into play order using the track list",
		ArgsUsage: "[album-dir]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "tracklist",
				Aliases: []string{"t"},
				Usage:   "Path to the track list file (default: <album-dir>/tracklist.txt)",
			},
			&cli.BoolFlag{
				Name:    "dry-run",
				Aliases: []string{"n"},
				Usage:   "Show the rename plan without renaming anything",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Dry-run plan format: text, markdown, or csv",
				Value:   "text",
			},
			&cli.StringFlag{
				Name:  "export",
				Usage: "Write the dry-run plan to a file",
			},
		},
		Action: r.Sort,
	}
}
