package cmd

import (
	"errors"

	"codebundler/pkg/bundle"
	"codebundler/pkg/rsp"
)

// Process exit codes.
const (
	ExitOK                  = 0
	ExitFailure             = 1
	ExitUnsupportedLanguage = 2
	ExitEmptyInput          = 3
)

// ExitCode maps an Execute error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, bundle.ErrUnsupportedLanguage):
		return ExitUnsupportedLanguage
	case errors.Is(err, rsp.ErrEmptyInput):
		return ExitEmptyInput
	default:
		return ExitFailure
	}
}
