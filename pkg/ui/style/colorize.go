package style

import (
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"golang.org/x/term"
)

// Colorizer converts span markup into terminal output.
type Colorizer struct {
	// Disable strips markup instead of emitting escape sequences.
	Disable bool
}

// NewColorizer returns a Colorizer that emits color only when writer is a
// terminal and noColor is false.
func NewColorizer(writer io.Writer, noColor bool) Colorizer {
	return Colorizer{Disable: noColor || !ShouldColor(writer)}
}

// ShouldColor reports whether writer is attached to a terminal.
func ShouldColor(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

// Colorize replaces span markup in text with ANSI sequences, or strips it when
// the colorizer is disabled.
func (c Colorizer) Colorize(text string) string {
	if c.Disable {
		return Strip(text)
	}

	matches := codePattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var (
		builder strings.Builder
		current Style
		last    int
	)

	for _, match := range matches {
		builder.WriteString(paint(current, text[last:match[0]]))

		switch code := text[match[2]:match[3]]; code {
		case codeReset:
			current = Plain
		case codeBold:
			current.Bold = true
		default:
			current.Color = Color(code)
		}

		last = match[1]
	}

	builder.WriteString(paint(current, text[last:]))

	return builder.String()
}

// paint renders a run of text with the given style using fatih/color.
func paint(current Style, text string) string {
	if text == "" || current.IsPlain() {
		return text
	}

	attrs := make([]fcolor.Attribute, 0, 2)

	if current.Bold {
		attrs = append(attrs, fcolor.Bold)
	}

	if attr, ok := colorAttributes[current.Color]; ok {
		attrs = append(attrs, attr)
	}

	painter := fcolor.New(attrs...)
	painter.EnableColor()

	return painter.Sprint(text)
}

//nolint:gochecknoglobals // fixed lookup table
var colorAttributes = map[Color]fcolor.Attribute{
	Red:    fcolor.FgRed,
	Green:  fcolor.FgGreen,
	Yellow: fcolor.FgYellow,
	Blue:   fcolor.FgBlue,
	Cyan:   fcolor.FgCyan,
}
