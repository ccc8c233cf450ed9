// Package cli hosts the game on a terminal: it owns the input stream,
// runs games back to back and asks between them whether to keep going.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cezvahid/tonto/internal/common/prompt"
	"github.com/cezvahid/tonto/internal/services/game"
)

// RunnerError is a custom error type for runner-related errors
type RunnerError string

// Error implements the error interface
func (e RunnerError) Error() string {
	return string(e)
}

// ErrNilConfig is returned when the runner is created without a config
const ErrNilConfig RunnerError = "config cannot be nil"

// Config holds configuration for the CLI runner
type Config struct {
	// PlayerNames are the players in turn order
	PlayerNames []string

	// MaxRounds is the number of rounds per game
	MaxRounds int

	// Input is the interactive input stream. Defaults to stdin.
	Input io.Reader

	// Output receives everything the runner prints. Defaults to stdout.
	Output io.Writer
}

// Runner drives games interactively until the player declines another
type Runner struct {
	input   *bufio.Reader
	output  io.Writer
	service game.Service
}

// New creates a CLI runner and the game service it hosts
func New(cfg *Config) (*Runner, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	in := cfg.Input
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	// One buffered reader shared by the turn prompter and the play-again
	// question, so neither consumes input meant for the other.
	reader := bufio.NewReader(in)

	svc, err := game.New(&game.Config{
		PlayerNames: cfg.PlayerNames,
		MaxRounds:   cfg.MaxRounds,
		Prompter: prompt.New(&prompt.Config{
			In:      reader,
			Out:     out,
			Message: "Hit enter to draw a card.",
		}),
		Output: out,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	return &Runner{
		input:   reader,
		output:  out,
		service: svc,
	}, nil
}

// Run plays games until the player declines another or the context is
// cancelled. The farewell is printed on every exit path.
func (r *Runner) Run(ctx context.Context) error {
	defer renderFarewell(r.output)

	for {
		if _, err := r.service.Play(ctx, &game.PlayInput{}); err != nil {
			return err
		}

		again, err := r.askPlayAgain(ctx)
		if err != nil {
			return err
		}
		if !again {
			return nil
		}

		if _, err := r.service.NewGame(ctx, &game.NewGameInput{}); err != nil {
			return err
		}
	}
}

// askPlayAgain reads answers until one is a recognizable yes or no.
// Exhausted input counts as a no.
func (r *Runner) askPlayAgain(ctx context.Context) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		renderQuestion(r.output, "Play again? (Y/N) ")

		line, err := r.input.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}

		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}

		if errors.Is(err, io.EOF) {
			return false, nil
		}
		renderInvalidAnswer(r.output)
	}
}
