// Package ui holds terminal helpers shared by the commands.
package ui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// DefaultWrapWidth is used when the writer is not a terminal.
const DefaultWrapWidth uint = 100

// minWrapWidth keeps narrow terminals from wrapping every word.
const minWrapWidth = 40

// WrapWidth returns the column at which long messages written to writer
// should wrap: the terminal width when writer is a terminal, otherwise
// DefaultWrapWidth.
func WrapWidth(writer io.Writer) uint {
	file, ok := writer.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return DefaultWrapWidth
	}

	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width < minWrapWidth {
		return DefaultWrapWidth
	}

	return uint(width)
}
