package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"albumweld/internal/library"
)

// Inspect lists an album directory's entries with their embedded tags,
// as an aid to authoring the track list.
func (r *Runner) Inspect(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.Args().First()
	if dir == "" {
		dir = "."
	}

	entries, err := library.Scan(dir)
	if err != nil {
		return r.exitErr(err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	r.writePlainHeader(dir)
	for _, entry := range entries {
		switch {
		case entry.IsDir:
			r.writePlain("%s/\n", entry.Name)
		case entry.Tagged:
			r.writePlain("%s\n", entry.Name)
			r.writePlain("    title: %s\n", entry.Title)
			if entry.Artist != "" {
				r.writePlain("    artist: %s\n", entry.Artist)
			}
			if entry.Album != "" {
				r.writePlain("    album: %s\n", entry.Album)
			}
		default:
			r.writePlain("%s (no readable tags)\n", entry.Name)
		}
	}

	return nil
}

// inspectCommand shows directory entries and their embedded tags.
func inspectCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "List an album directory's files with their embedded tags",
		ArgsUsage: "[album-dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output as JSON",
			},
		},
		Action: r.Inspect,
	}
}
