package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	fcolor "github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
)

// Message types. Each type has its own symbol and color.
const (
	// ErrorType is red with a ✗ symbol.
	ErrorType MessageType = iota
	// WarningType is yellow with a ⚠ symbol.
	WarningType
	// ActivityType uses the default color with a ► symbol.
	ActivityType
	// SuccessType is green with a ✔ symbol.
	SuccessType
	// InfoType is blue with a ℹ symbol.
	InfoType
	// TitleType is bold and led by an emoji.
	TitleType
)

const defaultTitleEmoji = "📋"

// MessageType selects the styling of a message.
type MessageType int

// Message is a notification for the user.
type Message struct {
	Type    MessageType
	Content string
	// Emoji replaces the default title emoji. Only used by TitleType.
	Emoji string
	// Width wraps content at the given column when positive.
	Width uint
	// Writer defaults to os.Stdout.
	Writer io.Writer
	Args   []any
}

// Errorf writes an error message.
func Errorf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ErrorType, Content: format, Args: args, Writer: writer})
}

// Warningf writes a warning message.
func Warningf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: WarningType, Content: format, Args: args, Writer: writer})
}

// Activityf writes a progress message.
func Activityf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: ActivityType, Content: format, Args: args, Writer: writer})
}

// Successf writes a success message.
func Successf(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: SuccessType, Content: format, Args: args, Writer: writer})
}

// Infof writes an informational message.
func Infof(writer io.Writer, format string, args ...any) {
	WriteMessage(Message{Type: InfoType, Content: format, Args: args, Writer: writer})
}

// Titlef writes a bold section title led by emoji.
func Titlef(writer io.Writer, emoji, format string, args ...any) {
	WriteMessage(Message{
		Type:    TitleType,
		Content: fmt.Sprintf(format, args...),
		Emoji:   emoji,
		Writer:  writer,
	})
}

// WriteMessage formats and writes msg. Continuation lines of multi-line
// content are indented under the first line's text.
func WriteMessage(msg Message) {
	if msg.Writer == nil {
		msg.Writer = os.Stdout
	}

	content := msg.Content
	if len(msg.Args) > 0 {
		content = fmt.Sprintf(msg.Content, msg.Args...)
	}

	if msg.Width > 0 {
		content = wordwrap.WrapString(content, msg.Width)
	}

	config := getMessageConfig(msg.Type)

	if msg.Type == TitleType {
		emoji := msg.Emoji
		if emoji == "" {
			emoji = defaultTitleEmoji
		}

		_, err := config.color.Fprintf(msg.Writer, "%s %s\n", emoji, content)
		handleNotifyError(err)

		return
	}

	content = indentMultilineContent(content, config.symbol)

	_, err := config.color.Fprintf(msg.Writer, "%s%s\n", config.symbol, content)
	handleNotifyError(err)
}

type messageConfig struct {
	symbol string
	color  *fcolor.Color
}

func getMessageConfig(msgType MessageType) messageConfig {
	switch msgType {
	case ErrorType:
		return messageConfig{symbol: "✗ ", color: fcolor.New(fcolor.FgRed)}
	case WarningType:
		return messageConfig{symbol: "⚠ ", color: fcolor.New(fcolor.FgYellow)}
	case ActivityType:
		return messageConfig{symbol: "► ", color: fcolor.New(fcolor.Reset)}
	case SuccessType:
		return messageConfig{symbol: "✔ ", color: fcolor.New(fcolor.FgGreen)}
	case InfoType:
		return messageConfig{symbol: "ℹ ", color: fcolor.New(fcolor.FgBlue)}
	case TitleType:
		return messageConfig{symbol: "", color: fcolor.New(fcolor.Reset, fcolor.Bold)}
	default:
		return messageConfig{symbol: "", color: fcolor.New(fcolor.Reset)}
	}
}

// handleNotifyError reports write failures on stderr instead of returning them.
func handleNotifyError(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "notify: failed to print message: %v\n", err)
	}
}

func indentMultilineContent(content, symbol string) string {
	if symbol == "" || !strings.Contains(content, "\n") {
		return content
	}

	indent := strings.Repeat(" ", len([]rune(symbol)))
	lines := strings.Split(content, "\n")

	for i := 1; i < len(lines); i++ {
		if lines[i] == "" {
			continue
		}

		lines[i] = indent + lines[i]
	}

	return strings.Join(lines, "\n")
}
