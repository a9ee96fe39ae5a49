package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Confirmer asks the operator a yes/no question before any write.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ReadlineConfirmer prompts on a terminal through readline.
type ReadlineConfirmer struct {
	in  io.ReadCloser
	out io.Writer
}

// NewReadlineConfirmer creates a confirmer reading from in and prompting on out.
func NewReadlineConfirmer(in io.ReadCloser, out io.Writer) *ReadlineConfirmer {
	return &ReadlineConfirmer{in: in, out: out}
}

// Confirm asks question until the operator answers y/yes or n/no.
// End of input or Ctrl-C counts as no.
func (c *ReadlineConfirmer) Confirm(question string) (bool, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		InterruptPrompt: "",
		EOFPrompt:       "",
		Stdin:           c.in,
		Stdout:          c.out,
	})
	if err != nil {
		return false, fmt.Errorf("failed to start prompt: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(c.out, "%s [y/n]\n", question)
	for {
		line, err := rl.Readline()
		if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read answer: %w", err)
		}
		if answer, ok := parseAnswer(line); ok {
			return answer, nil
		}
		fmt.Fprintln(c.out, "Please answer y/n.")
	}
}

// parseAnswer reports the answer and whether the line was a recognised one.
func parseAnswer(line string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, true
	case "n", "no":
		return false, true
	}
	return false, false
}

// AutoConfirm answers yes without prompting (the --yes flag).
type AutoConfirm struct{}

// Confirm always returns true.
func (AutoConfirm) Confirm(string) (bool, error) { return true, nil }
