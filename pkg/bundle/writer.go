package bundle

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Writer formats bundle output.
type Writer struct {
	IncludeSource    bool
	RemoveEmptyLines bool
	logger           *zap.Logger
}

// NewWriter returns a Writer for the formatting options of req.
func NewWriter(req Request, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Writer{
		IncludeSource:    req.IncludeSource,
		RemoveEmptyLines: req.RemoveEmptyLines,
		logger:           logger,
	}
}

// Write emits the optional source header built from discovered, followed by
// one block per entry of ordered: a "// File: <name>" line and the file's
// lines joined with Newline. Every write ends with Newline.
func (bw *Writer) Write(w io.Writer, discovered, ordered FileList) error {
	out := bufio.NewWriter(w)

	if bw.IncludeSource {
		header := "// Source files included: " + strings.Join(discovered, ", ")
		if err := writeLine(out, header); err != nil {
			return fmt.Errorf("failed to write source header: %w", err)
		}
	}

	for _, path := range ordered {
		lines, err := readLines(path)
		if err != nil {
			bw.logger.Error("Failed to read file", zap.String("filePath", path), zap.Error(err))
			return fmt.Errorf("error reading file %s: %w", path, err)
		}
		lines = FilterLines(lines, bw.RemoveEmptyLines)

		if err := writeLine(out, "// File: "+filepath.Base(path)); err != nil {
			return fmt.Errorf("failed to write header for %s: %w", path, err)
		}
		if err := writeLine(out, strings.Join(lines, Newline)); err != nil {
			return fmt.Errorf("failed to write content of %s: %w", path, err)
		}
		bw.logger.Debug("Wrote file to bundle", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	}

	if err := out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

func writeLine(w *bufio.Writer, s string) error {
	if _, err := w.WriteString(s); err != nil {
		return err
	}
	_, err := w.WriteString(Newline)
	return err
}
