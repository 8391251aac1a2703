package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"albumweld/internal/shared"
)

// ConcatFiles concatenates an explicit ordered list of audio files into a
// single output, without any matching or renaming.
func (r *Runner) ConcatFiles(ctx context.Context, cmd *cli.Command) error {
	inputs := cmd.Args().Slice()
	if len(inputs) == 0 {
		return r.exitErr(fmt.Errorf("%w: at least one input file is required", shared.ErrMissingArgument))
	}

	output := cmd.String("output")
	if output == "" {
		return r.exitErr(fmt.Errorf("%w: --output is required", shared.ErrMissingArgument))
	}

	r.logger.Info("concatenating files", "inputs", len(inputs), "output", output)
	r.writePlain("Concatenating %d files into %s...\n", len(inputs), output)

	if err := r.engine.Concat(ctx, inputs, output, nil); err != nil {
		return r.exitErr(err)
	}

	r.writePlain("Done: %s\n", output)
	return nil
}

// concatCommand concatenates already-ordered files directly.
func concatCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "concat",
		Usage:     "Concatenate audio files in the given order into one file",
		ArgsUsage: "<file> [file...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output file path",
				Required: true,
			},
		},
		Action: r.ConcatFiles,
	}
}
