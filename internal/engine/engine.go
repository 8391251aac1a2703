// package engine drives the external media engine (ffmpeg) that performs
// all audio decoding, stream selection, and encoding.
//
// The engine is treated as a collaborator: albumweld describes the desired
// pipeline as an argument list and executes one blocking invocation. No
// resampling, codec negotiation, or gap insertion happens here; streams are
// concatenated back-to-back exactly as the engine decodes them.
package engine

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"albumweld/internal/shared"
)

// CommandRunner executes an external command and returns its combined output.
// Injectable so tests can fake the engine.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// FFmpeg invokes ffmpeg and ffprobe binaries named by configuration.
type FFmpeg struct {
	bin      string
	probeBin string
	logger   *log.Logger
	run      CommandRunner
}

// New creates an FFmpeg engine from configuration.
func New(cfg shared.EngineConfig, logger *log.Logger) *FFmpeg {
	bin := cfg.FFmpegBin
	if bin == "" {
		bin = "ffmpeg"
	}
	probeBin := cfg.FFprobeBin
	if probeBin == "" {
		probeBin = "ffprobe"
	}
	return &FFmpeg{
		bin:      bin,
		probeBin: probeBin,
		logger:   logger,
		run:      defaultCommandRunner,
	}
}

// WithCommandRunner replaces the command runner, for tests.
func (f *FFmpeg) WithCommandRunner(r CommandRunner) {
	if f != nil && r != nil {
		f.run = r
	}
}

// Concat joins the first audio stream of each input, in order, into a
// single output file whose title tag is the output filename stem.
//
// The invocation is a single blocking call. Failures are returned as one
// error wrapping [shared.ErrConcatFailed] with the engine's output folded
// in; a failed run may leave an incomplete output file behind.
func (f *FFmpeg) Concat(ctx context.Context, inputs []string, output string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("%w: no input files", shared.ErrInvalidInput)
	}
	if output == "" {
		return fmt.Errorf("%w: no output file", shared.ErrInvalidInput)
	}

	args := f.buildConcatArgs(inputs, output)

	if f.logger != nil {
		f.logger.Debug("executing concat pipeline", "bin", f.bin, "inputs", len(inputs), "output", output)
	}

	out, err := f.run(ctx, f.bin, args...)
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail != "" {
			return fmt.Errorf("%w: %v: %s", shared.ErrConcatFailed, err, detail)
		}
		return fmt.Errorf("%w: %v", shared.ErrConcatFailed, err)
	}

	return nil
}

// buildConcatArgs constructs the ffmpeg argument list: one -i per input,
// a concat filter over each input's first audio stream (v=0, a=1), and a
// single title metadata field.
func (f *FFmpeg) buildConcatArgs(inputs []string, output string) []string {
	args := make([]string, 0, 2*len(inputs)+8)
	for _, in := range inputs {
		args = append(args, "-i", in)
	}

	var filter strings.Builder
	for i := range inputs {
		fmt.Fprintf(&filter, "[%d:a:0]", i)
	}
	fmt.Fprintf(&filter, "concat=n=%d:v=0:a=1[outa]", len(inputs))

	args = append(args,
		"-filter_complex", filter.String(),
		"-map", "[outa]",
		"-metadata", "title="+Stem(output),
		output,
	)
	return args
}

// Probe returns the container duration of a media file via ffprobe.
//
// Used only for post-weld reporting; callers treat failures as advisory.
func (f *FFmpeg) Probe(ctx context.Context, file string) (time.Duration, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		file,
	}

	out, err := f.run(ctx, f.probeBin, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %s", shared.ErrProbeFailed, err, strings.TrimSpace(string(out)))
	}

	seconds, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: unparseable duration %q", shared.ErrProbeFailed, strings.TrimSpace(string(out)))
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// Stem returns the filename without directory or extension; it becomes the
// title tag of the concatenated output.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// defaultCommandRunner executes engine commands.
func defaultCommandRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	return cmd.CombinedOutput()
}
