package tesseract

import "errors"

// Sentinel errors for the tesseract package.
var (
	// Parsing errors
	ErrInvalidMove = errors.New("tesseract: invalid move notation")

	// Argument errors
	ErrInvalidPlane      = errors.New("tesseract: invalid rotation plane")
	ErrInvalidLayer      = errors.New("tesseract: layer out of range")
	ErrInvalidFace       = errors.New("tesseract: invalid cube face")
	ErrInvalidCoordinate = errors.New("tesseract: vertex coordinate out of range")
	ErrOutOfRange        = errors.New("tesseract: sticker position out of range")

	// State errors
	ErrNothingToUndo = errors.New("tesseract: nothing to undo")
)
