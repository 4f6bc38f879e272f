package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/tesseract"
)

func TestFaceKeys(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"q", "R"}, {"Q", "R'"},
		{"w", "L"}, {"W", "L'"},
		{"e", "U"}, {"E", "U'"},
		{"r", "D"}, {"R", "D'"},
		{"t", "F"}, {"T", "F'"},
		{"y", "B"}, {"Y", "B'"},
	}
	c := New()
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			a, err := c.HandleKey(tt.key)
			require.NoError(t, err)
			assert.Equal(t, ActionMove, a.Type)
			assert.Equal(t, tesseract.KindCube, a.Kind)
			assert.Equal(t, tt.want, a.Notation)
		})
	}
}

func TestPlaneKeysUseSelectedLayer(t *testing.T) {
	c := New()
	a, err := c.HandleKey("z")
	require.NoError(t, err)
	assert.Equal(t, "XY0", a.Notation)
	assert.Equal(t, tesseract.KindTesseract, a.Kind)

	a, err = c.HandleKey("3")
	require.NoError(t, err)
	assert.Equal(t, Action{Type: ActionSelectLayer, Layer: 2}, a)
	assert.Equal(t, 2, c.Layer())

	for key, want := range map[string]string{
		"x": "XZ2", "c": "XW2", "v": "YZ2", "b": "YW2", "n": "ZW2", "N": "ZW2'",
	} {
		a, err := c.HandleKey(key)
		require.NoError(t, err)
		assert.Equal(t, want, a.Notation, key)
	}
}

func TestActionsApplyToTracker(t *testing.T) {
	c := New()
	tr := tesseract.NewTracker()
	for _, key := range []string{"4", "b", "B", "q", "Q"} {
		a, err := c.HandleKey(key)
		require.NoError(t, err)
		if a.Type == ActionMove {
			require.NoError(t, tr.Apply(a.Notation))
		}
	}
	assert.True(t, tr.IsSolved())
	assert.Len(t, tr.History(), 4)
}

func TestControlKeys(t *testing.T) {
	c := New()
	for key, want := range map[string]ActionType{
		" ": ActionReset, "space": ActionReset, "u": ActionUndo,
		"s": ActionScramble, "i": ActionToggleHelp,
	} {
		a, err := c.HandleKey(key)
		require.NoError(t, err)
		assert.Equal(t, want, a.Type, key)
	}

	a, err := c.HandleKey("[")
	require.NoError(t, err)
	assert.Equal(t, -ViewStep, a.ViewDelta)
}

func TestUnknownKeys(t *testing.T) {
	c := New()
	for _, key := range []string{"a", "5", "0", "ctrl+x", "", "U"} {
		_, err := c.HandleKey(key)
		assert.ErrorIs(t, err, ErrUnknownKey, key)
	}
	assert.Equal(t, 0, c.Layer())
	assert.NotEmpty(t, Help())
}
