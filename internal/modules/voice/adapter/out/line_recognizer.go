package out

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	voiceout "neurowell/internal/modules/voice/port/out"
	apperrors "neurowell/internal/platform/errors"
)

// LineRecognizer treats one line of text from r as the recognized phrase.
// It stands in for a speech engine on terminals.
type LineRecognizer struct {
	r     io.Reader
	start sync.Once
	lines chan scanResult
}

func NewLineRecognizer(r io.Reader) voiceout.Recognizer {
	return &LineRecognizer{r: r, lines: make(chan scanResult)}
}

type scanResult struct {
	line string
	err  error
}

// read is the only goroutine touching the scanner. A phrase nobody
// received yet waits for the next Recognize.
func (l *LineRecognizer) read() {
	defer close(l.lines)
	scanner := bufio.NewScanner(l.r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			l.lines <- scanResult{line: line}
		}
	}
	if err := scanner.Err(); err != nil {
		l.lines <- scanResult{err: fmt.Errorf("read transcript: %w", err)}
	}
}

// Recognize returns the next non-empty line, or ErrNoTranscript once the
// input is exhausted.
func (l *LineRecognizer) Recognize(ctx context.Context) (string, error) {
	l.start.Do(func() { go l.read() })
	select {
	case res, ok := <-l.lines:
		if !ok {
			return "", apperrors.ErrNoTranscript
		}
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
