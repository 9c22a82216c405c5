package domain

import "errors"

var (
	ErrDeckNotFound          = errors.New("deck not found")
	ErrDeckTooSmall          = errors.New("deck must contain at least 3 cards")
	ErrReadingNotFound       = errors.New("reading not found")
	ErrGenerationUnavailable = errors.New("generation service unavailable")
)
