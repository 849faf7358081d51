// Package ignore compiles gitignore-style exclude patterns and matches
// bundle candidates against them.
package ignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-directory exclude file read by LoadDir.
const FileName = ".bundleignore"

// Pattern is one compiled exclude rule.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled form of Line.
	Negate bool           // Line started with '!'.
	Line   string         // Original pattern text.
	Source string         // File the pattern came from, or "flag".
	LineNo int            // 1-based line number within Source.
}

// Matcher holds an ordered list of exclude patterns. The last matching
// pattern decides, so a later "!pattern" re-includes a path.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewMatcher returns an empty Matcher.
func NewMatcher(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// LoadDir builds a Matcher from the .bundleignore file in dir (if any)
// followed by extra patterns.
func LoadDir(dir string, extra []string, logger *zap.Logger) (*Matcher, error) {
	m := NewMatcher(logger)
	if err := m.AddFile(filepath.Join(dir, FileName)); err != nil {
		return nil, err
	}
	m.AddLines("flag", extra...)
	return m, nil
}

// AddLines compiles pattern lines. Blank lines, comments and lines that
// fail to compile are skipped.
func (m *Matcher) AddLines(source string, lines ...string) {
	for i, line := range lines {
		re, negate, ok := compile(line)
		if !ok {
			continue
		}
		p := &Pattern{Regexp: re, Negate: negate, Line: line, Source: source, LineNo: i + 1}
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled exclude pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", line),
			zap.Bool("negate", negate))
	}
}

// AddFile compiles every line of an exclude file. A missing file is not an
// error.
func (m *Matcher) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Debug("Exclude file not present", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read exclude file", zap.String("filePath", path), zap.Error(err))
		return err
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	m.AddLines(path, lines...)
	m.logger.Debug("Loaded exclude file", zap.String("filePath", path), zap.Int("lineCount", len(lines)))
	return nil
}

// Len reports the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// Matches reports whether a slash- or OS-separated relative path is excluded.
func (m *Matcher) Matches(path string) bool {
	ok, _ := m.MatchesWithPattern(path)
	return ok
}

// MatchesWithPattern is Matches that also returns the deciding pattern.
func (m *Matcher) MatchesWithPattern(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var decided *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			decided = p
		}
	}
	return matched, decided
}

// compile converts one gitignore-style line into an anchored regexp.
func compile(line string) (*regexp.Regexp, bool, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false, false
	}

	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = trimmed[1:]
	}
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	dirOnly := strings.HasSuffix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")
	anchored := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil, false, false
	}

	var b strings.Builder
	if anchored {
		b.WriteString("^")
	} else {
		b.WriteString("^(.*/)?")
	}
	b.WriteString(globToRegex(trimmed))
	if dirOnly {
		b.WriteString("/.*$")
	} else {
		b.WriteString("(/.*)?$")
	}

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, false, false
	}
	return re, negate, true
}

// globToRegex translates '*', '**' and '?' and quotes everything else.
func globToRegex(glob string) string {
	runes := []rune(glob)
	var b strings.Builder
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '*' && i+1 < len(runes) && runes[i+1] == '*':
			i++
			if i+1 < len(runes) && runes[i+1] == '/' {
				i++
				b.WriteString("(.*/)?")
			} else {
				b.WriteString(".*")
			}
		case r == '*':
			b.WriteString("[^/]*")
		case r == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	return b.String()
}
