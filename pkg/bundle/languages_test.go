package bundle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternFor(t *testing.T) {
	tests := map[string]string{
		"csharp":     "*.cs",
		"java":       "*.java",
		"python":     "*.py",
		"javascript": "*.js",
		"cpp":        "*.cpp",
		"c":          "*.c",
		"html":       "*.html",
		"CSharp":     "*.cs",
		"PYTHON":     "*.py",
	}
	for lang, want := range tests {
		t.Run(lang, func(t *testing.T) {
			got, err := PatternFor(lang)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestPatternFor_Unsupported(t *testing.T) {
	_, err := PatternFor("rust")
	require.Error(t, err)

	var langErr *UnsupportedLanguageError
	require.True(t, errors.As(err, &langErr))
	assert.Equal(t, "rust", langErr.Language)
	assert.True(t, errors.Is(err, ErrUnsupportedLanguage))
	assert.EqualError(t, err, "unsupported language: rust")
}

func TestResolvePatterns(t *testing.T) {
	t.Run("keeps request order", func(t *testing.T) {
		got, err := ResolvePatterns([]string{"python", "csharp"})
		require.NoError(t, err)
		assert.Equal(t, []string{"*.py", "*.cs"}, got)
	})

	t.Run("all selects defaults", func(t *testing.T) {
		got, err := ResolvePatterns([]string{"java", "all"})
		require.NoError(t, err)
		assert.Equal(t, []string{"*.cs", "*.java", "*.py", "*.js", "*.cpp", "*.h"}, got)
	})

	t.Run("all is case-sensitive", func(t *testing.T) {
		_, err := ResolvePatterns([]string{"ALL"})
		assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	})

	t.Run("returned defaults are a copy", func(t *testing.T) {
		got, err := ResolvePatterns([]string{"all"})
		require.NoError(t, err)
		got[0] = "*.txt"
		assert.Equal(t, "*.cs", DefaultPatterns[0])
	})

	t.Run("one bad entry fails the list", func(t *testing.T) {
		_, err := ResolvePatterns([]string{"java", "cobol"})
		var langErr *UnsupportedLanguageError
		require.ErrorAs(t, err, &langErr)
		assert.Equal(t, "cobol", langErr.Language)
	})
}
