package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/tesseract"
)

func scrambledTracker(t *testing.T) *tesseract.Tracker {
	t.Helper()
	tr := tesseract.NewTracker(tesseract.WithSeed(12))
	tr.Scramble(8, 6)
	require.NoError(t, tr.ApplySequence("XY0 R' YW3`"))
	return tr
}

func TestCaptureSolved(t *testing.T) {
	s := Capture(tesseract.NewTracker())
	assert.True(t, s.Solved)
	assert.Empty(t, s.History)
	assert.Equal(t, [4]string{"-X", "-Y", "-Z", "-W"}, s.Tesseract[0])
	assert.Equal(t, "R", s.Cube[tesseract.FaceR][1][1])
	assert.Equal(t, "W", s.Cube[tesseract.FaceU][0][0])
}

func TestRoundTripFormats(t *testing.T) {
	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(f), func(t *testing.T) {
			tr := scrambledTracker(t)
			want := Capture(tr)

			data, err := Marshal(want, f)
			require.NoError(t, err)
			got, err := Unmarshal(data, f)
			require.NoError(t, err)

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("snapshot changed (-want +got):\n%s", diff)
			}

			restored, err := Restore(got)
			require.NoError(t, err)
			assert.Equal(t, tr.String(), restored.String())
			if diff := cmp.Diff(tr.History(), restored.History()); diff != "" {
				t.Errorf("history changed (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(want.History, Capture(restored).History); diff != "" {
				t.Errorf("captured history changed (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRestoreKeepsScrambleFlags(t *testing.T) {
	s := Capture(scrambledTracker(t))
	restored, err := Restore(s)
	require.NoError(t, err)

	history := restored.History()
	require.Len(t, history, 17)
	for i, h := range history {
		assert.Equal(t, i < 14, h.Scramble, "entry %d (%s)", i, h.Notation)
	}
	assert.Equal(t, "YW3'", history[16].Notation)
}

func TestRestoreDetectsTampering(t *testing.T) {
	s := Capture(scrambledTracker(t))
	s.Cube[tesseract.FaceF][0][0], s.Cube[tesseract.FaceF][2][2] = "?", "?"
	_, err := Restore(s)
	assert.ErrorIs(t, err, ErrMismatch)

	s = Capture(tesseract.NewTracker())
	s.History = []Step{{Notation: "Q9"}}
	_, err = Restore(s)
	assert.ErrorIs(t, err, tesseract.ErrInvalidMove)

	s = Capture(tesseract.NewTracker())
	s.Version = 99
	_, err = Restore(s)
	assert.Error(t, err)
}

func TestSaveLoadFiles(t *testing.T) {
	dir := t.TempDir()
	tr := scrambledTracker(t)

	for _, name := range []string{"state.json", "state.yaml", "state.yml"} {
		path := filepath.Join(dir, name)
		require.NoError(t, Save(path, tr))

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, tr.String(), loaded.String(), name)
	}

	data, err := os.ReadFile(filepath.Join(dir, "state.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "history:")

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)

	assert.Equal(t, FormatJSON, FormatForPath("x.txt"))
}
