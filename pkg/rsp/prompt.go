package rsp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ErrEmptyInput is returned when a prompt receives an empty line or the
// input ends before an answer is given.
var ErrEmptyInput = errors.New("input cannot be empty")

// Prompt texts, in the order they are asked.
const (
	PromptOutput           = "Enter the output directory:"
	PromptLanguages        = "Enter the value for --language (comma-separated, e.g., 'java,csharp'):"
	PromptIncludeSource    = "Should it include source path? (true/false):"
	PromptSort             = "Enter the sort order (alphabetical/type):"
	PromptRemoveEmptyLines = "Should it remove empty lines? (true/false):"
)

// Prompter asks questions on out and reads one line per answer from in.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *zap.Logger
}

// NewPrompter returns a Prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer, logger *zap.Logger) *Prompter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Prompter{in: bufio.NewReader(in), out: out, logger: logger}
}

// Ask prints question on its own line and returns the next input line
// without its terminator. The answer is not trimmed.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := fmt.Fprintln(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		p.logger.Debug("Empty answer to prompt", zap.String("prompt", question))
		return "", ErrEmptyInput
	}
	return line, nil
}

// Collect runs the five prompts in order and returns the answers as a Spec
// for author. The first empty answer aborts the sequence.
func (p *Prompter) Collect(author string) (Spec, error) {
	spec := Spec{Author: author}

	var err error
	if spec.Output, err = p.Ask(PromptOutput); err != nil {
		return Spec{}, err
	}
	if spec.Languages, err = p.Ask(PromptLanguages); err != nil {
		return Spec{}, err
	}
	answer, err := p.Ask(PromptIncludeSource)
	if err != nil {
		return Spec{}, err
	}
	spec.IncludeSource = answer == "true"
	if spec.Sort, err = p.Ask(PromptSort); err != nil {
		return Spec{}, err
	}
	answer, err = p.Ask(PromptRemoveEmptyLines)
	if err != nil {
		return Spec{}, err
	}
	spec.RemoveEmptyLines = answer == "true"

	return spec, nil
}
