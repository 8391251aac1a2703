package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"albumweld/internal/models"
	"albumweld/internal/repositories"
	"albumweld/internal/shared"
	"albumweld/internal/tasks"
	"albumweld/internal/tracklist"
)

// Exit codes: planning and rename failures abort with 2, engine failures
// with 3. Welded output already on disk is never removed on failure.
const (
	exitSortFailed   = 2
	exitConcatFailed = 3
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	media  tasks.Concatenator
	engine *tasks.AlbumEngine
	runs   *repositories.RunRepository
	logger *log.Logger
	output io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Media  tasks.Concatenator
	Runs   *repositories.RunRepository
	Logger *log.Logger
	Output io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config: opts.Config,
		media:  opts.Media,
		engine: tasks.NewAlbumEngine(opts.Media),
		runs:   opts.Runs,
		logger: opts.Logger,
		output: opts.Output,
	}
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		weldCommand, sortCommand, concatCommand, inspectCommand, historyCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// exitErr maps pipeline failures to process exit codes. Planning, matching
// and rename failures exit 2; engine failures exit 3.
func (r *Runner) exitErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, shared.ErrConcatFailed) {
		return cli.Exit(err.Error(), exitConcatFailed)
	}
	return cli.Exit(err.Error(), exitSortFailed)
}

// recordRun persists a run history row. Recording is best-effort: failures
// are logged and never affect the command's outcome.
func (r *Runner) recordRun(albumDir, outputFile string, trackCount int, status models.RunStatus, runErr error) {
	if r.runs == nil {
		return
	}

	run := models.NewRun(0, albumDir, status)
	run.SetOutputFile(outputFile)
	run.SetTrackCount(trackCount)
	if runErr != nil {
		run.SetErrorMessage(runErr.Error())
	}

	if err := r.runs.Create(run); err != nil {
		r.logger.Warn("failed to record run history", "error", err)
	}
}

// loadTrackList reads and parses a track list file, rejecting empty lists.
func (r *Runner) loadTrackList(path string) (tracklist.TrackList, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read track list: %w", err)
	}

	list := tracklist.Parse(string(content))
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s", shared.ErrEmptyTrackList, path)
	}
	return list, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
