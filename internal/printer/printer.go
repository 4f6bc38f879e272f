// Package printer writes user-facing CLI lines with consistent colors.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
	cyan   = color.New(color.FgCyan)
)

// Out and ErrOut are where messages go. Tests swap them for buffers.
var (
	Out    io.Writer = os.Stdout
	ErrOut io.Writer = os.Stderr
)

// Success prints a message in green with a checkmark prefix.
func Success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "✓") {
		msg = "✓ " + msg
	}
	green.Fprint(Out, msg)
}

// Info prints a message in the default color.
func Info(format string, a ...any) {
	fmt.Fprintf(Out, format, a...)
}

// Warning prints a message in yellow with a warning prefix.
func Warning(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if !strings.HasPrefix(msg, "⚠") {
		msg = "⚠  " + msg
	}
	yellow.Fprint(Out, msg)
}

// Step prints a progress line for multi-step operations.
func Step(format string, a ...any) {
	cyan.Fprintf(Out, "→ %s", fmt.Sprintf(format, a...))
}

// Error prints a titled error with an explanation and suggestions to
// ErrOut, and returns a short error for cobra.
func Error(title, explanation string, suggestions ...string) error {
	red.Fprintf(ErrOut, "%s\n\n", title)
	if explanation != "" {
		fmt.Fprintf(ErrOut, "%s\n", explanation)
	}

	switch len(suggestions) {
	case 0:
	case 1:
		fmt.Fprintf(ErrOut, "\n%s\n", suggestions[0])
	default:
		fmt.Fprintf(ErrOut, "\nEither:\n")
		for i, s := range suggestions {
			fmt.Fprintf(ErrOut, "  %d. %s\n", i+1, s)
		}
	}

	return fmt.Errorf("%s", title)
}
