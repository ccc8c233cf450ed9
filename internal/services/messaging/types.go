package messaging

import (
	"fmt"
	"strconv"
)

// Event represents a category of game announcement
type Event string

const (
	// EventWelcome greets the players when a game begins
	EventWelcome Event = "welcome"

	// EventRoundStart announces a new round
	EventRoundStart Event = "round_start"

	// EventRoundEnd announces a round's sole winner
	EventRoundEnd Event = "round_end"

	// EventRoundEndTie announces a round ending in a tie
	EventRoundEndTie Event = "round_end_tie"

	// EventTurnStart announces whose turn it is
	EventTurnStart Event = "turn_start"

	// EventTrueTurnEnd reports a draw that put the player in first place
	// for the round
	EventTrueTurnEnd Event = "true_turn_end"

	// EventFalseTurnEnd reports a draw that left the player off the
	// round's first place
	EventFalseTurnEnd Event = "false_turn_end"

	// EventGameOver announces the game's sole winner
	EventGameOver Event = "game_over"

	// EventGameOverTie announces a game ending in a tie
	EventGameOverTie Event = "game_over_tie"

	// EventEmptyDeck reports that the deck ran out and is being rebuilt
	EventEmptyDeck Event = "empty_deck"
)

// Fields carries the substitution values available to templates
type Fields struct {
	// CurrentRound is the 1-based round number
	CurrentRound int

	// RoundWinner is the name of the round's winner
	RoundWinner string

	// CurrentPlayerName is the name of the player taking a turn
	CurrentPlayerName string

	// CurrentCard is the display form of the card just drawn
	CurrentCard string

	// CurrentPlayerScore is the player's cumulative score after the draw
	CurrentPlayerScore int

	// GameWinner is the name of the game's winner
	GameWinner string
}

// lookup resolves a template placeholder name to its field value
func (f *Fields) lookup(name string) string {
	if f == nil {
		return ""
	}
	switch name {
	case "current_round":
		return strconv.Itoa(f.CurrentRound)
	case "round_winner":
		return f.RoundWinner
	case "current_player_name":
		return f.CurrentPlayerName
	case "current_card":
		return f.CurrentCard
	case "current_player_score":
		return strconv.Itoa(f.CurrentPlayerScore)
	case "game_winner":
		return f.GameWinner
	}
	return ""
}

// UnknownEventError is returned when no templates exist for an event
type UnknownEventError struct {
	// Event is the unrecognized event
	Event Event
}

// Error implements the error interface
func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("no message templates for event %q", e.Event)
}

// AnnounceInput contains parameters for announcing a game event
type AnnounceInput struct {
	// Event is the category of announcement
	Event Event

	// Fields holds the substitution values. May be nil for events that
	// take none.
	Fields *Fields
}

// AnnounceOutput contains the result of announcing a game event
type AnnounceOutput struct {
	// Message is the generated message
	Message string
}

// Config contains configuration for the messaging service
type Config struct {
	// Templates overrides the default template table. Placeholders use
	// ${name} syntax with the field names from Fields.
	Templates map[Event][]string

	// Optional seed for deterministic variant selection in tests
	Seed int64
}
