package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWidth is used when the width of the output cannot be determined
const DefaultWidth = 80

// fder is implemented by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// Width returns the column count of the terminal behind w, or DefaultWidth
func Width(w io.Writer) int {
	f, ok := w.(fder)
	if !ok {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}

	return width
}

// Stdout returns os.Stdout unless w is set
func Stdout(w io.Writer) io.Writer {
	if w != nil {
		return w
	}

	return os.Stdout
}

// Stderr returns os.Stderr unless w is set
func Stderr(w io.Writer) io.Writer {
	if w != nil {
		return w
	}

	return os.Stderr
}
