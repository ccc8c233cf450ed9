package game

import (
	"io"
	"time"

	"github.com/cezvahid/tonto/internal/common/clock"
	"github.com/cezvahid/tonto/internal/common/prompt"
	"github.com/cezvahid/tonto/internal/common/uuid"
	"github.com/cezvahid/tonto/internal/deck"
	"github.com/cezvahid/tonto/internal/roster"
	"github.com/cezvahid/tonto/internal/services/messaging"
)

// Config holds configuration for the game service
type Config struct {
	// PlayerNames are the players in turn order. At least one is
	// required and names must be unique.
	PlayerNames []string

	// MaxRounds is the number of rounds to play. Must be at least 1.
	MaxRounds int

	// Deck is the card sequence to draw from. A fresh shuffled deck is
	// created when nil.
	Deck *deck.Deck

	// Messenger produces the game's announcements. Defaults to the
	// built-in messaging service.
	Messenger messaging.Service

	// Prompter gates each turn on an acknowledgment. Defaults to a
	// stdin prompter.
	Prompter prompt.Prompter

	// Output receives announcements and the final leaderboard. Defaults
	// to stdout.
	Output io.Writer

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// PlayInput contains parameters for playing a game
type PlayInput struct{}

// PlayOutput contains the result of a completed game
type PlayOutput struct {
	// GameID is the unique identifier for the game that was played
	GameID string

	// Winner is the cumulative first place, including everyone tied for it
	Winner roster.Place

	// Leaderboard is the rendered final standings
	Leaderboard string

	// StartedAt is when play began
	StartedAt time.Time

	// CompletedAt is when the game finished
	CompletedAt time.Time
}

// NewGameInput contains parameters for resetting a game
type NewGameInput struct{}

// NewGameOutput contains the result of resetting a game
type NewGameOutput struct {
	// GameID is the identifier of the upcoming game
	GameID string

	// Restarted indicates whether a reset happened. It is false when the
	// game was still active, in which case nothing changed.
	Restarted bool
}

// EndGameInput contains parameters for ending a game
type EndGameInput struct{}

// EndGameOutput contains the result of ending a game
type EndGameOutput struct{}

// GetLeaderboardInput contains parameters for querying the standings
type GetLeaderboardInput struct {
	// Round selects a single round's scores; 0 means cumulative
	Round int
}

// GetLeaderboardOutput contains the current standings
type GetLeaderboardOutput struct {
	// Places holds every leaderboard position in rank order
	Places []roster.Place

	// Rendered is the leaderboard's string form
	Rendered string
}
