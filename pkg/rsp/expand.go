package rsp

import (
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Expand replaces every "@path" argument with the directives read from
// that response file. Other arguments pass through unchanged. Expansion is
// not recursive.
//
// takesValue reports whether a flag token such as "--author" consumes the
// next argument; that argument is never expanded, so "--author @home"
// keeps its value. A nil takesValue treats no flag as taking a value.
func Expand(args []string, takesValue func(flag string) bool) ([]string, error) {
	out := make([]string, 0, len(args))
	for i, arg := range args {
		if len(arg) < 2 || arg[0] != '@' || isFlagValue(args, i, takesValue) {
			out = append(out, arg)
			continue
		}
		tokens, err := ReadFile(arg[1:])
		if err != nil {
			return nil, err
		}
		out = append(out, tokens...)
	}
	return out, nil
}

// isFlagValue reports whether args[i] is the separate value of the flag
// before it. "--" ends flag parsing.
func isFlagValue(args []string, i int, takesValue func(string) bool) bool {
	if i == 0 || takesValue == nil {
		return false
	}
	for _, a := range args[:i] {
		if a == "--" {
			return false
		}
	}
	prev := args[i-1]
	if !strings.HasPrefix(prev, "-") || prev == "-" || strings.Contains(prev, "=") {
		return false
	}
	return takesValue(prev)
}

// ReadFile parses a response file into command-line tokens.
func ReadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read response file: %w", err)
	}
	return Parse(string(data)), nil
}

// Parse turns response-file text into tokens. Blank lines and lines starting
// with '#' are skipped. Each remaining line is split at its first run of
// whitespace; "--flag value" becomes "--flag=value" so that values with
// spaces and explicit booleans are kept intact.
func Parse(content string) []string {
	var tokens []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		i := strings.IndexFunc(line, unicode.IsSpace)
		if i < 0 {
			tokens = append(tokens, line)
			continue
		}
		name := line[:i]
		value := strings.TrimLeftFunc(line[i:], unicode.IsSpace)
		if strings.HasPrefix(name, "-") {
			tokens = append(tokens, name+"="+value)
		} else {
			tokens = append(tokens, name, value)
		}
	}
	return tokens
}
