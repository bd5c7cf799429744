package notify

import (
	"fmt"
	"io"
	"sync"
	"unicode"
	"unicode/utf8"
)

// SectionWriter wraps an io.Writer and writes a blank line before every title
// line once something has been written. A title line starts with a
// pictographic emoji; the message symbols (►, ✔, ✗, ⚠, ℹ) do not count.
//
//	out := notify.NewSectionWriter(cmd.OutOrStdout())
//	cmd.SetOut(out)
type SectionWriter struct {
	underlying io.Writer
	hasWritten bool
	mu         sync.Mutex
}

// NewSectionWriter wraps underlying.
func NewSectionWriter(underlying io.Writer) *SectionWriter {
	return &SectionWriter{underlying: underlying}
}

// Write implements io.Writer.
func (w *SectionWriter) Write(data []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(data) == 0 {
		return 0, nil
	}

	if w.hasWritten && startsWithTitle(data) {
		_, err := w.underlying.Write([]byte{'\n'})
		if err != nil {
			return 0, fmt.Errorf("failed to write section separator: %w", err)
		}
	}

	written, err := w.underlying.Write(data)
	if written > 0 {
		w.hasWritten = true
	}

	if err != nil {
		return written, fmt.Errorf("failed to write data: %w", err)
	}

	return written, nil
}

func startsWithTitle(data []byte) bool {
	first, _ := utf8.DecodeRune(data)

	switch first {
	case utf8.RuneError, '►', '✔', '✗', '⚠', 'ℹ':
		return false
	}

	return unicode.Is(unicode.So, first)
}
