// Package errorhandler runs the root command and turns cobra's error output
// into a single error value.
package errorhandler

import (
	"bytes"
	"context"
	"strings"

	"github.com/spf13/cobra"
)

// Executor runs a cobra command with its error stream captured.
type Executor struct{}

// NewExecutor constructs an Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs cmd with ctx. It returns nil on success, or a *CommandError
// holding the normalized stderr text and the original error.
func (e *Executor) Execute(ctx context.Context, cmd *cobra.Command) error {
	if cmd == nil {
		return nil
	}

	var errBuf bytes.Buffer

	originalErrWriter := cmd.ErrOrStderr()

	cmd.SetErr(&errBuf)
	defer cmd.SetErr(originalErrWriter)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	return &CommandError{
		message: Normalize(errBuf.String()),
		cause:   err,
	}
}

// CommandError is a command failure plus whatever cobra printed about it.
type CommandError struct {
	message string
	cause   error
}

// Error implements the error interface. The cause is not repeated when the
// captured message already contains it.
func (e *CommandError) Error() string {
	switch {
	case e == nil:
		return ""
	case e.cause == nil:
		return e.message
	case e.message == "":
		return e.cause.Error()
	case strings.Contains(e.message, e.cause.Error()):
		return e.message
	default:
		return e.message + ": " + e.cause.Error()
	}
}

// Unwrap returns the original error.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// Normalize trims raw, drops cobra's "Error: " prefix and removes blank
// lines. Usage hints that follow the message are kept.
func Normalize(raw string) string {
	lines := strings.Split(strings.TrimSpace(raw), "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "Error: ")

		if line != "" {
			kept = append(kept, line)
		}
	}

	return strings.Join(kept, "\n")
}
