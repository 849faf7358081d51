// Package bundle concatenates the source files of one directory into a
// single bundle file.
package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"codebundler/pkg/ignore"

	"go.uber.org/zap"
)

// ErrNoLanguages is returned when a request names no language at all.
var ErrNoLanguages = errors.New("at least one language is required")

// Result describes a completed bundle.
type Result struct {
	Output     string   // Path of the written bundle.
	Discovered FileList // Files in discovery order.
	Files      FileList // Files in the order they were written.
}

// Run validates req, discovers matching files, and writes the bundle.
//
// Language validation happens before any filesystem access. A missing
// target directory or output directory is reported as ErrInvalidDirectory.
func Run(req Request, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	if len(req.Languages) == 0 {
		return nil, ErrNoLanguages
	}
	patterns, err := ResolvePatterns(req.Languages)
	if err != nil {
		logger.Debug("Rejected language list", zap.Strings("languages", req.Languages), zap.Error(err))
		return nil, err
	}

	logger.Info("Starting bundle",
		zap.String("directory", req.Directory),
		zap.String("output", req.Output),
		zap.Strings("patterns", patterns),
		zap.String("sort", string(req.Sort)))

	matcher, err := ignore.LoadDir(req.Directory, req.Exclude, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load exclude patterns: %w", err)
	}

	discovered, err := Discover(req.Directory, patterns, matcher, logger)
	if err != nil {
		return nil, invalidDirectory(err)
	}

	outFile, err := os.Create(req.Output)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", req.Output), zap.Error(err))
		return nil, invalidDirectory(fmt.Errorf("failed to create output file: %w", err))
	}
	defer func() {
		if err := outFile.Close(); err != nil {
			logger.Error("Failed to close output file", zap.String("file", req.Output), zap.Error(err))
		}
	}()

	ordered := Order(discovered, req.Sort)
	if err := NewWriter(req, logger).Write(outFile, discovered, ordered); err != nil {
		return nil, err
	}

	logger.Info("Bundle completed",
		zap.String("output", req.Output),
		zap.Int("totalFiles", len(ordered)),
		zap.Duration("elapsed", time.Since(startTime)))

	return &Result{Output: req.Output, Discovered: discovered, Files: ordered}, nil
}

// invalidDirectory tags not-exist errors with ErrInvalidDirectory.
func invalidDirectory(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrInvalidDirectory, err)
	}
	return err
}
