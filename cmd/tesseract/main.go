// Tesseract - CLI for the 4D tesseract puzzle and its nested Rubik's cube.
package main

import (
	"github.com/SeamusWaldron/tesseract/internal/cli"
)

func main() {
	cli.Execute()
}
