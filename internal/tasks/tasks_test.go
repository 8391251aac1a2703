package tasks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"albumweld/internal/shared"
	"albumweld/internal/tracklist"
)

// fakeMedia implements Concatenator, recording calls.
type fakeMedia struct {
	concatInputs []string
	concatOutput string
	concatErr    error
	probeDur     time.Duration
	probeErr     error
}

func (m *fakeMedia) Concat(ctx context.Context, inputs []string, output string) error {
	m.concatInputs = inputs
	m.concatOutput = output
	return m.concatErr
}

func (m *fakeMedia) Probe(ctx context.Context, file string) (time.Duration, error) {
	return m.probeDur, m.probeErr
}

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("audio"), 0644); err != nil {
			t.Fatalf("failed to create fixture %s: %v", name, err)
		}
	}
}

// drain collects every update from a buffered progress channel.
func drain(ch chan ProgressUpdate) []ProgressUpdate {
	close(ch)
	var updates []ProgressUpdate
	for u := range ch {
		updates = append(updates, u)
	}
	return updates
}

func TestWeld(t *testing.T) {
	t.Run("full pipeline", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "Intro.flac", "Outro.flac")
		media := &fakeMedia{probeDur: 90 * time.Second}
		engine := NewAlbumEngine(media)
		output := filepath.Join(dir, "Album.flac")

		progress := make(chan ProgressUpdate, 50)
		result, err := engine.Weld(context.Background(), tracklist.TrackList{"Intro", "Outro"}, dir, output, progress)
		if err != nil {
			t.Fatalf("Weld failed: %v", err)
		}

		if result.TrackCount != 2 {
			t.Errorf("TrackCount = %d, want 2", result.TrackCount)
		}
		if result.Duration != 90*time.Second {
			t.Errorf("Duration = %v, want 90s", result.Duration)
		}
		if len(media.concatInputs) != 2 {
			t.Fatalf("engine received %d inputs, want 2", len(media.concatInputs))
		}
		if filepath.Base(media.concatInputs[0]) != "1 - Intro.flac" {
			t.Errorf("first input = %q, want renamed Intro", media.concatInputs[0])
		}
		if media.concatOutput != output {
			t.Errorf("output = %q, want %q", media.concatOutput, output)
		}

		updates := drain(progress)
		var phases []Phase
		for _, u := range updates {
			phases = append(phases, u.Phase)
		}
		wantOrder := []Phase{Validate, MatchTracks, MatchTracks, MatchTracks, RenameTracks, Concatenate, Done}
		if len(phases) != len(wantOrder) {
			t.Fatalf("got %d updates (%v), want %d", len(phases), phases, len(wantOrder))
		}
		for i := range wantOrder {
			if phases[i] != wantOrder[i] {
				t.Errorf("update[%d].Phase = %v, want %v", i, phases[i], wantOrder[i])
			}
		}
	})

	t.Run("sort failure aborts before engine runs", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "Intro.flac")
		media := &fakeMedia{}
		engine := NewAlbumEngine(media)

		_, err := engine.Weld(context.Background(), tracklist.TrackList{"Missing"}, dir, "out.flac", nil)
		if !errors.Is(err, shared.ErrNoMatch) {
			t.Fatalf("Weld() error = %v, want ErrNoMatch", err)
		}
		if media.concatInputs != nil {
			t.Error("engine invoked despite sort failure")
		}
	})

	t.Run("concat failure surfaces after renames", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "Intro.flac")
		media := &fakeMedia{concatErr: fmt.Errorf("%w: exit status 1", shared.ErrConcatFailed)}
		engine := NewAlbumEngine(media)

		result, err := engine.Weld(context.Background(), tracklist.TrackList{"Intro"}, dir, "out.flac", nil)
		if !errors.Is(err, shared.ErrConcatFailed) {
			t.Fatalf("Weld() error = %v, want ErrConcatFailed", err)
		}
		// Renames are not rolled back; the partial result reports them.
		if result == nil || len(result.RenamedFiles) != 1 {
			t.Fatal("expected partial result with renamed files")
		}
		if _, statErr := os.Stat(result.RenamedFiles[0]); statErr != nil {
			t.Errorf("renamed file should persist: %v", statErr)
		}
	})

	t.Run("probe failure is advisory", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "Intro.flac")
		media := &fakeMedia{probeErr: fmt.Errorf("%w: no ffprobe", shared.ErrProbeFailed)}
		engine := NewAlbumEngine(media)

		result, err := engine.Weld(context.Background(), tracklist.TrackList{"Intro"}, dir, "out.flac", nil)
		if err != nil {
			t.Fatalf("Weld failed: %v", err)
		}
		if result.Duration != 0 {
			t.Errorf("Duration = %v, want zero when probe fails", result.Duration)
		}
	})
}

func TestPlanLeavesDirectoryUntouched(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Intro.flac", "Outro.flac")
	engine := NewAlbumEngine(&fakeMedia{})

	plan, err := engine.Plan(tracklist.TrackList{"Intro", "Outro"}, dir, nil)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if len(plan.Ops) != 2 {
		t.Fatalf("len(Ops) = %d, want 2", len(plan.Ops))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read dir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "Intro.flac" && e.Name() != "Outro.flac" {
			t.Errorf("unexpected entry after Plan: %s", e.Name())
		}
	}
}

func TestConcatOnly(t *testing.T) {
	media := &fakeMedia{}
	engine := NewAlbumEngine(media)

	files := []string{"1 - a.flac", "2 - b.flac"}
	if err := engine.Concat(context.Background(), files, "out.flac", nil); err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if len(media.concatInputs) != 2 || media.concatOutput != "out.flac" {
		t.Errorf("engine received %v -> %q", media.concatInputs, media.concatOutput)
	}
}

func TestSendProgressNeverBlocks(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "Intro.flac")
	engine := NewAlbumEngine(&fakeMedia{})

	// Unbuffered channel with no reader: updates must be dropped, not block.
	progress := make(chan ProgressUpdate)
	done := make(chan struct{})
	go func() {
		engine.Plan(tracklist.TrackList{"Intro"}, dir, progress)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Plan blocked on progress channel")
	}
}
