// Package config loads optional bundle defaults from .codebundler.yaml and
// environment settings from .env.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// FileName is the defaults file looked up in the target directory.
const FileName = ".codebundler.yaml"

// Environment variables read after .env is loaded.
const (
	EnvLogLevel = "CODEBUNDLER_LOG_LEVEL"
	EnvDebug    = "CODEBUNDLER_DEBUG"
)

// Defaults mirrors the bundle flags. Nil fields are unset.
type Defaults struct {
	Output           *string  `yaml:"output"`
	Language         []string `yaml:"language"`
	IncludeSource    *bool    `yaml:"include-source"`
	Sort             *string  `yaml:"sort"`
	RemoveEmptyLines *bool    `yaml:"remove-empty-lines"`
	Exclude          []string `yaml:"exclude"`
}

// Load reads FileName from dir. A missing file yields empty Defaults.
func Load(dir string) (Defaults, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Defaults{}, nil
		}
		return Defaults{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a defaults document. Unknown keys are rejected.
func Parse(data []byte) (Defaults, error) {
	var d Defaults
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return Defaults{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return d, nil
}

// Apply sets every flag the user did not pass explicitly and
// that d provides a value for. Names missing from flags are ignored.
func (d Defaults) Apply(flags *pflag.FlagSet) error {
	set := func(name, value string) error {
		f := flags.Lookup(name)
		if f == nil || f.Changed {
			return nil
		}
		if err := f.Value.Set(value); err != nil {
			return fmt.Errorf("invalid %s value %q in %s: %w", name, value, FileName, err)
		}
		return nil
	}
	setSlice := func(name string, values []string) error {
		f := flags.Lookup(name)
		if f == nil || f.Changed || len(values) == 0 {
			return nil
		}
		// The first Set on an untouched slice flag replaces its default;
		// later calls append.
		for _, v := range values {
			if err := f.Value.Set(v); err != nil {
				return fmt.Errorf("invalid %s value %q in %s: %w", name, v, FileName, err)
			}
		}
		return nil
	}

	if d.Output != nil {
		if err := set("output", *d.Output); err != nil {
			return err
		}
	}
	if err := setSlice("language", d.Language); err != nil {
		return err
	}
	if d.IncludeSource != nil {
		if err := set("include-source", strconv.FormatBool(*d.IncludeSource)); err != nil {
			return err
		}
	}
	if d.Sort != nil {
		if err := set("sort", *d.Sort); err != nil {
			return err
		}
	}
	if d.RemoveEmptyLines != nil {
		if err := set("remove-empty-lines", strconv.FormatBool(*d.RemoveEmptyLines)); err != nil {
			return err
		}
	}
	return setSlice("exclude", d.Exclude)
}

// Env holds logging settings taken from the environment.
type Env struct {
	LogLevel string
	Debug    bool
}

// LoadEnv loads .env from dir when present and reads the CODEBUNDLER_*
// variables. Variables already set in the process win over .env.
func LoadEnv(dir string) Env {
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	debug, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv(EnvDebug)))
	return Env{
		LogLevel: strings.TrimSpace(os.Getenv(EnvLogLevel)),
		Debug:    debug,
	}
}
