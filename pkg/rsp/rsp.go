// Package rsp builds response files: flat lists of bundle options that can
// be replayed on the command line as "@file".
package rsp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Extension is appended to the lowercased author name to form the file name.
const Extension = ".rsp"

// ErrInvalidSpec is returned by Validate when a required answer is blank.
var ErrInvalidSpec = errors.New("invalid input. Please provide valid values")

// Spec is the set of bundle options captured for one author.
type Spec struct {
	Author           string
	Output           string
	Languages        string // Comma-separated, as entered.
	IncludeSource    bool
	Sort             string
	RemoveEmptyLines bool
}

// Validate checks that the output path and sort order are not blank.
func (s Spec) Validate() error {
	if strings.TrimSpace(s.Output) == "" || strings.TrimSpace(s.Sort) == "" {
		return ErrInvalidSpec
	}
	return nil
}

// FileName returns "<author lowercased>.rsp".
func (s Spec) FileName() string {
	return strings.ToLower(s.Author) + Extension
}

// Render serializes the spec: an author comment followed by one
// "--flag value" line per option in fixed order.
func (s Spec) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Author: %s\n", s.Author)
	fmt.Fprintf(&b, "--output %s\n", s.Output)
	fmt.Fprintf(&b, "--language %s\n", s.Languages)
	fmt.Fprintf(&b, "--include-source %s\n", strconv.FormatBool(s.IncludeSource))
	fmt.Fprintf(&b, "--sort %s\n", s.Sort)
	fmt.Fprintf(&b, "--remove-empty-lines %s\n", strconv.FormatBool(s.RemoveEmptyLines))
	return b.String()
}

// Write validates the spec and writes it into dir. It returns the path of
// the created file.
func Write(dir string, s Spec, logger *zap.Logger) (string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.Validate(); err != nil {
		return "", err
	}

	path := filepath.Join(dir, s.FileName())
	if err := os.WriteFile(path, []byte(s.Render()), 0644); err != nil {
		logger.Error("Failed to write response file", zap.String("path", path), zap.Error(err))
		return "", fmt.Errorf("failed to write response file: %w", err)
	}
	logger.Debug("Wrote response file", zap.String("path", path))
	return path, nil
}
