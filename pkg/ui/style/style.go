package style

import (
	"regexp"
	"strings"
)

// Color is a named foreground color.
type Color string

// Supported colors. Default leaves the terminal's foreground untouched.
const (
	Default Color = ""
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Cyan    Color = "cyan"
)

const (
	codeBold  = "bold"
	codeReset = "reset"
)

// codePattern matches every span code this package emits.
var codePattern = regexp.MustCompile(`\[(bold|reset|red|green|yellow|blue|cyan)\]`)

// Style is a color plus a bold flag.
type Style struct {
	Color Color
	Bold  bool
}

// Common styles.
var (
	Plain   = Style{}
	Bold    = Style{Bold: true}
	Success = Style{Color: Green}
	Warning = Style{Color: Yellow}
	Failure = Style{Color: Red}
)

// Fg returns a non-bold style with the given color.
func Fg(color Color) Style {
	return Style{Color: color}
}

// WithBold returns a copy of s with the bold flag set.
func (s Style) WithBold() Style {
	s.Bold = true

	return s
}

// IsPlain reports whether the style carries no attributes.
func (s Style) IsPlain() bool {
	return s.Color == Default && !s.Bold
}

// Render wraps text in span markup. Plain styles and empty text are returned
// unchanged.
func (s Style) Render(text string) string {
	if s.IsPlain() || text == "" {
		return text
	}

	var builder strings.Builder

	if s.Bold {
		builder.WriteString("[" + codeBold + "]")
	}

	if s.Color != Default {
		builder.WriteString("[" + string(s.Color) + "]")
	}

	builder.WriteString(text)
	builder.WriteString("[" + codeReset + "]")

	return builder.String()
}

// Strip removes all span markup from text.
func Strip(text string) string {
	return codePattern.ReplaceAllString(text, "")
}
