package bundle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDirectory is returned when the output location or the target
	// directory does not exist.
	ErrInvalidDirectory = errors.New("file path is invalid")

	// ErrUnsupportedLanguage is wrapped by every UnsupportedLanguageError.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// UnsupportedLanguageError reports a language identifier missing from the
// extension table.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %s", e.Language)
}

func (e *UnsupportedLanguageError) Unwrap() error {
	return ErrUnsupportedLanguage
}
