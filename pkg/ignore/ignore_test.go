package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMatcher_Matches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{"extension glob", []string{"*.g.cs"}, "Model.g.cs", true},
		{"extension glob miss", []string{"*.g.cs"}, "Model.cs", false},
		{"exact name", []string{"setup.py"}, "setup.py", true},
		{"name in subdirectory", []string{"setup.py"}, "tools/setup.py", true},
		{"anchored pattern", []string{"/setup.py"}, "tools/setup.py", false},
		{"anchored pattern at root", []string{"/setup.py"}, "setup.py", true},
		{"question mark", []string{"v?.js"}, "v1.js", true},
		{"question mark needs one char", []string{"v?.js"}, "v.js", false},
		{"prefix glob covers directory contents", []string{"gen*"}, "gen/x.js", true},
		{"double star", []string{"**/vendor/**"}, "a/vendor/lib.js", true},
		{"directory pattern", []string{"build/"}, "build/out.js", true},
		{"directory pattern does not match file", []string{"build/"}, "build", false},
		{"negation re-includes", []string{"*.js", "!keep.js"}, "keep.js", false},
		{"last match wins", []string{"!keep.js", "*.js"}, "keep.js", true},
		{"comments and blanks ignored", []string{"# *.js", "", "   "}, "a.js", false},
		{"escaped hash", []string{`\#notes.py`}, "#notes.py", true},
		{"regex metacharacters are literal", []string{"a+b.c"}, "a+b.c", true},
		{"regex metacharacters do not widen", []string{"a+b.c"}, "aab.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(zaptest.NewLogger(t))
			m.AddLines("test", tt.patterns...)
			assert.Equal(t, tt.want, m.Matches(tt.path))
		})
	}
}

func TestMatcher_MatchesWithPattern(t *testing.T) {
	m := NewMatcher(nil)
	m.AddLines("flag", "*.js", "!keep.js")

	matched, p := m.MatchesWithPattern("keep.js")
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.Equal(t, "!keep.js", p.Line)
	assert.Equal(t, 2, p.LineNo)
	assert.Equal(t, "flag", p.Source)
	assert.True(t, p.Negate)

	matched, p = m.MatchesWithPattern("readme.md")
	assert.False(t, matched)
	assert.Nil(t, p)
}

func TestLoadDir(t *testing.T) {
	t.Run("file then extra patterns", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("# generated\r\n*.min.js\r\n"), 0o644))

		m, err := LoadDir(dir, []string{"!app.min.js"}, nil)
		require.NoError(t, err)
		assert.Equal(t, 2, m.Len())
		assert.True(t, m.Matches("lib.min.js"))
		assert.False(t, m.Matches("app.min.js"))
	})

	t.Run("missing file is fine", func(t *testing.T) {
		m, err := LoadDir(t.TempDir(), nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 0, m.Len())
	})
}
