package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrSessionActive = errors.New("vr session already active")
	ErrBackend       = errors.New("backend request failed")
	ErrNoTranscript  = errors.New("no transcript recognized")
)
