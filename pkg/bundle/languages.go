package bundle

import "strings"

// AllLanguages is the identifier that selects DefaultPatterns.
const AllLanguages = "all"

// languagePatterns maps a lowercased language identifier to its glob.
var languagePatterns = map[string]string{
	"csharp":     "*.cs",
	"java":       "*.java",
	"python":     "*.py",
	"javascript": "*.js",
	"cpp":        "*.cpp",
	"c":          "*.c",
	"html":       "*.html",
}

// DefaultPatterns are the globs used when "all" is requested.
var DefaultPatterns = []string{"*.cs", "*.java", "*.py", "*.js", "*.cpp", "*.h"}

// PatternFor returns the glob for a single language identifier.
// Lookup is case-insensitive.
func PatternFor(language string) (string, error) {
	pattern, ok := languagePatterns[strings.ToLower(language)]
	if !ok {
		return "", &UnsupportedLanguageError{Language: language}
	}
	return pattern, nil
}

// ResolvePatterns turns the requested languages into glob patterns, in
// request order. If any identifier is exactly "all", DefaultPatterns is
// returned and the other identifiers are not checked.
func ResolvePatterns(languages []string) ([]string, error) {
	for _, lang := range languages {
		if lang == AllLanguages {
			return append([]string(nil), DefaultPatterns...), nil
		}
	}

	patterns := make([]string, 0, len(languages))
	for _, lang := range languages {
		pattern, err := PatternFor(lang)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, pattern)
	}
	return patterns, nil
}
