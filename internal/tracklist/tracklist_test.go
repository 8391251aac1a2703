package tracklist

import (
	"errors"
	"testing"

	"albumweld/internal/shared"
)

func TestParse(t *testing.T) {
	tc := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one title per line",
			content: "Intro\nInterlude\nOutro\n",
			want:    []string{"Intro", "Interlude", "Outro"},
		},
		{
			name:    "surrounding whitespace trimmed as a whole",
			content: "\n\n  Intro\nOutro  \n\n",
			want:    []string{"  Intro", "Outro"},
		},
		{
			name:    "windows line endings",
			content: "Intro\r\nOutro\r\n",
			want:    []string{"Intro", "Outro"},
		},
		{
			name:    "interior blank lines preserved",
			content: "Intro\n\nOutro",
			want:    []string{"Intro", "", "Outro"},
		},
		{
			name:    "empty content",
			content: "   \n  ",
			want:    []string{},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.content)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Parse()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("unique titles pass", func(t *testing.T) {
		list := TrackList{"Intro", "Outro"}
		if err := list.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	t.Run("duplicate titles rejected", func(t *testing.T) {
		list := TrackList{"A", "A"}
		err := list.Validate()
		if !errors.Is(err, shared.ErrDuplicateTracks) {
			t.Errorf("Validate() = %v, want ErrDuplicateTracks", err)
		}
	})

	t.Run("comparison is case-sensitive", func(t *testing.T) {
		list := TrackList{"Intro", "intro"}
		if err := list.Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil for different-case titles", err)
		}
	})
}

func TestIndexDigits(t *testing.T) {
	tc := []struct {
		tracks int
		want   int
	}{
		{tracks: 0, want: 1},
		{tracks: 2, want: 1},
		{tracks: 9, want: 1},
		{tracks: 10, want: 2},
		{tracks: 99, want: 2},
		{tracks: 100, want: 3},
	}

	for _, tt := range tc {
		list := make(TrackList, tt.tracks)
		if got := list.IndexDigits(); got != tt.want {
			t.Errorf("IndexDigits() with %d tracks = %d, want %d", tt.tracks, got, tt.want)
		}
	}
}
