package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	"albumweld/internal/shared"
	"albumweld/internal/ui"
)

// TUI launches the interactive weld workflow: review the rename plan,
// confirm, then watch the weld run.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
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

	list, err := r.loadTrackList(listPath)
	if err != nil {
		return r.exitErr(err)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/albumweld-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	model := ui.NewModel(ctx, r.engine, list, dir, output)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// tuiCommand launches the interactive terminal UI.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "tui",
		Usage:     "Interactively review the rename plan and weld an album",
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
		Action: r.TUI,
	}
}
