package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_prompt.go github.com/cezvahid/tonto/internal/common/prompt Prompter

// Prompter gates a turn on an external acknowledgment. Whatever the
// acknowledgment carries is discarded; only its completion matters.
type Prompter interface {
	Await(ctx context.Context) error
}

// Config for a stdin prompter
type Config struct {
	// In is the reader to wait on. Defaults to stdin.
	In io.Reader

	// Out receives the prompt text. Defaults to stdout.
	Out io.Writer

	// Message is the prompt text shown before waiting
	Message string
}

// StdinPrompter implements Prompter by reading one line from its input
type StdinPrompter struct {
	in      *bufio.Reader
	out     io.Writer
	message string
}

// New creates a StdinPrompter
func New(cfg *Config) *StdinPrompter {
	if cfg == nil {
		cfg = &Config{}
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	// Reuse an already-buffered reader so a caller sharing the input
	// stream does not lose bytes to double buffering.
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}

	return &StdinPrompter{
		in:      reader,
		out:     out,
		message: cfg.Message,
	}
}

// Await prints the prompt message and blocks until a line is read or the
// context is cancelled. End of input counts as an acknowledgment.
func (p *StdinPrompter) Await(ctx context.Context) error {
	if p.message != "" {
		fmt.Fprint(p.out, p.message)
	}

	done := make(chan error, 1)
	go func() {
		_, err := p.in.ReadString('\n')
		done <- err
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	}
}
