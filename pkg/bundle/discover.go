package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// excludedSubstrings drop any candidate whose full path contains one of
// them. The check is a plain case-sensitive substring test on the path as
// built from the directory, not a path-segment test.
var excludedSubstrings = []string{"bin", "debug"}

// Excluder decides whether a file name relative to the bundle directory is
// left out. *ignore.Matcher satisfies it.
type Excluder interface {
	Matches(path string) bool
}

// Discover lists the regular files directly inside dir that match any of
// patterns. Results are grouped by pattern in the given order, then in
// directory-listing order. A file matching several patterns appears once
// per pattern.
func Discover(dir string, patterns []string, excluder Excluder, logger *zap.Logger) (FileList, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Starting file discovery", zap.String("dir", dir), zap.Strings("patterns", patterns))

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Error("Failed to read directory", zap.String("dir", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files FileList
	for _, pattern := range patterns {
		for _, entry := range entries {
			if !isFileEntry(dir, entry) {
				continue
			}
			name := entry.Name()
			ok, err := filepath.Match(pattern, name)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
			}
			if !ok {
				continue
			}

			path := filepath.Join(dir, name)
			if isExcludedPath(path) {
				logger.Debug("Skipping file with excluded path substring", zap.String("filePath", path))
				continue
			}
			if excluder != nil && excluder.Matches(name) {
				logger.Debug("Skipping file matching exclude pattern", zap.String("filePath", path))
				continue
			}
			files = append(files, path)
		}
	}

	logger.Debug("Completed file discovery", zap.Int("fileCount", len(files)))
	return files, nil
}

// isFileEntry accepts regular files and symlinks that resolve to one.
func isFileEntry(dir string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func isExcludedPath(path string) bool {
	for _, s := range excludedSubstrings {
		if strings.Contains(path, s) {
			return true
		}
	}
	return false
}
