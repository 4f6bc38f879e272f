// Package controller maps single key presses to puzzle actions.
//
// Lowercase keys turn clockwise and uppercase keys counterclockwise:
//
//	q w e r t y   cube faces R L U D F B
//	z x c v b n   tesseract planes XY XZ XW YZ YW ZW on the selected layer
//	1 2 3 4       select layer 0-3
//	[ ]           turn the 4D view by -5 / +5 degrees in ZW
//	space         reset, u undo, s scramble, i toggle help
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/tesseract"
)

// ViewStep is the ZW view rotation per [ or ] press, in degrees.
const ViewStep = 5.0

// ErrUnknownKey is returned for keys with no binding.
var ErrUnknownKey = errors.New("unknown key")

// ActionType identifies what a key press asks for.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionSelectLayer
	ActionReset
	ActionUndo
	ActionScramble
	ActionToggleHelp
	ActionRotateView
)

func (a ActionType) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionSelectLayer:
		return "layer"
	case ActionReset:
		return "reset"
	case ActionUndo:
		return "undo"
	case ActionScramble:
		return "scramble"
	case ActionToggleHelp:
		return "help"
	case ActionRotateView:
		return "view"
	default:
		return "unknown"
	}
}

// Action is the outcome of one key press.
type Action struct {
	Type ActionType

	// ActionMove
	Kind     tesseract.Kind
	Notation string

	// ActionSelectLayer
	Layer int

	// ActionRotateView, degrees
	ViewDelta float64
}

var faceKeys = map[byte]tesseract.Face{
	'q': tesseract.FaceR,
	'w': tesseract.FaceL,
	'e': tesseract.FaceU,
	'r': tesseract.FaceD,
	't': tesseract.FaceF,
	'y': tesseract.FaceB,
}

var planeKeys = map[byte]tesseract.Plane{
	'z': tesseract.PlaneXY,
	'x': tesseract.PlaneXZ,
	'c': tesseract.PlaneXW,
	'v': tesseract.PlaneYZ,
	'b': tesseract.PlaneYW,
	'n': tesseract.PlaneZW,
}

// Controller holds the layer that plane keys act on.
type Controller struct {
	layer int
}

// New returns a controller on layer 0.
func New() *Controller {
	return &Controller{}
}

// Layer returns the selected layer.
func (c *Controller) Layer() int {
	return c.layer
}

// HandleKey interprets a key name as produced by terminal key events
// ("q", "Q", "space", "[", ...). Layer selection updates the controller.
func (c *Controller) HandleKey(key string) (Action, error) {
	switch key {
	case " ", "space":
		return Action{Type: ActionReset}, nil
	case "u":
		return Action{Type: ActionUndo}, nil
	case "s":
		return Action{Type: ActionScramble}, nil
	case "i":
		return Action{Type: ActionToggleHelp}, nil
	case "[":
		return Action{Type: ActionRotateView, ViewDelta: -ViewStep}, nil
	case "]":
		return Action{Type: ActionRotateView, ViewDelta: ViewStep}, nil
	case "1", "2", "3", "4":
		c.layer = int(key[0] - '1')
		return Action{Type: ActionSelectLayer, Layer: c.layer}, nil
	}

	if len(key) != 1 {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}

	lower := strings.ToLower(key)[0]
	clockwise := key[0] == lower

	if face, ok := faceKeys[lower]; ok {
		m := tesseract.Move{Face: face, Turn: tesseract.CW}
		if !clockwise {
			m.Turn = tesseract.CCW
		}
		return Action{Type: ActionMove, Kind: tesseract.KindCube, Notation: m.Notation()}, nil
	}

	if plane, ok := planeKeys[lower]; ok {
		m := tesseract.SliceMove{Plane: plane, Layer: c.layer, Clockwise: clockwise}
		return Action{Type: ActionMove, Kind: tesseract.KindTesseract, Notation: m.Notation()}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Help returns the key binding summary shown in the interactive view.
func Help() string {
	return strings.Join([]string{
		"cube:      q w e r t y  (R L U D F B)",
		"tesseract: z x c v b n  (XY XZ XW YZ YW ZW) on the selected layer",
		"shift + key: counterclockwise",
		"1-4: layer   [ ]: rotate 4D view",
		"space: reset   u: undo   s: scramble   i: help   esc: quit",
	}, "\n")
}
