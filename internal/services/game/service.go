package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cezvahid/tonto/internal/common/clock"
	"github.com/cezvahid/tonto/internal/common/prompt"
	"github.com/cezvahid/tonto/internal/common/uuid"
	"github.com/cezvahid/tonto/internal/deck"
	"github.com/cezvahid/tonto/internal/models"
	"github.com/cezvahid/tonto/internal/roster"
	"github.com/cezvahid/tonto/internal/services/messaging"
)

// service implements the Service interface
type service struct {
	roster        *roster.Roster
	deck          *deck.Deck
	messenger     messaging.Service
	prompter      prompt.Prompter
	output        io.Writer
	clock         clock.Clock
	uuidGenerator uuid.UUID

	maxRounds    int
	gameID       string
	currentRound int
	active       bool
}

// New creates a new game service. Construction fails fast: an empty name
// list, a round limit below 1 or a duplicate player name abort creation
// entirely.
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if len(cfg.PlayerNames) == 0 {
		return nil, ErrNoPlayers
	}
	if cfg.MaxRounds < 1 {
		return nil, ErrInvalidMaxRounds
	}

	gameRoster, err := roster.New(cfg.PlayerNames)
	if err != nil {
		return nil, err
	}

	gameDeck := cfg.Deck
	if gameDeck == nil {
		gameDeck = deck.New(nil)
		gameDeck.Shuffle()
	}

	messenger := cfg.Messenger
	if messenger == nil {
		messenger, err = messaging.NewService(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create messaging service: %w", err)
		}
	}

	prompter := cfg.Prompter
	if prompter == nil {
		prompter = prompt.New(&prompt.Config{
			Message: "Hit enter to draw a card.",
		})
	}

	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	gameClock := cfg.Clock
	if gameClock == nil {
		gameClock = clock.New()
	}

	uuidGenerator := cfg.UUIDGenerator
	if uuidGenerator == nil {
		uuidGenerator = uuid.New()
	}

	return &service{
		roster:        gameRoster,
		deck:          gameDeck,
		messenger:     messenger,
		prompter:      prompter,
		output:        output,
		clock:         gameClock,
		uuidGenerator: uuidGenerator,
		maxRounds:     cfg.MaxRounds,
		gameID:        uuidGenerator.NewUUID(),
		currentRound:  1,
		active:        true,
	}, nil
}

// Play runs the game to completion: welcome, rounds until the limit is
// reached, then the final standings and leaderboard.
func (s *service) Play(ctx context.Context, input *PlayInput) (*PlayOutput, error) {
	if !s.active {
		return nil, ErrGameNotActive
	}

	startedAt := s.clock.Now()

	if err := s.announce(ctx, messaging.EventWelcome, nil); err != nil {
		return nil, err
	}

	for s.active {
		err := s.announce(ctx, messaging.EventRoundStart, &messaging.Fields{
			CurrentRound: s.currentRound,
		})
		if err != nil {
			return nil, err
		}

		if err := s.nextRound(ctx); err != nil {
			return nil, err
		}

		// The counter has already moved on; rank the round just played.
		lastRound := s.currentRound - 1
		place := s.roster.First(lastRound)
		if place.Tie {
			err = s.announce(ctx, messaging.EventRoundEndTie, nil)
		} else {
			err = s.announce(ctx, messaging.EventRoundEnd, &messaging.Fields{
				RoundWinner: place.Name,
			})
		}
		if err != nil {
			return nil, err
		}
	}

	winner := s.roster.First(0)
	var err error
	if winner.Tie {
		err = s.announce(ctx, messaging.EventGameOverTie, nil)
	} else {
		err = s.announce(ctx, messaging.EventGameOver, &messaging.Fields{
			GameWinner: winner.Name,
		})
	}
	if err != nil {
		return nil, err
	}

	board := s.roster.Leaderboard(0)
	if _, err := fmt.Fprintln(s.output, board.String()); err != nil {
		return nil, err
	}

	return &PlayOutput{
		GameID:      s.gameID,
		Winner:      winner,
		Leaderboard: board.String(),
		StartedAt:   startedAt,
		CompletedAt: s.clock.Now(),
	}, nil
}

// nextRound gives every player exactly one turn, in registration order,
// then advances the round counter, deactivating the game once the round
// limit has been played.
func (s *service) nextRound(ctx context.Context) error {
	for _, player := range s.roster.Players() {
		err := s.announce(ctx, messaging.EventTurnStart, &messaging.Fields{
			CurrentPlayerName: player.Name,
		})
		if err != nil {
			return err
		}

		if err := s.prompter.Await(ctx); err != nil {
			return err
		}

		card, err := s.drawCard(ctx)
		if err != nil {
			return err
		}
		player.Draw(card)

		// First place for this round, recomputed after the draw. A later
		// player's draw can still displace this one.
		event := messaging.EventFalseTurnEnd
		if s.roster.First(s.currentRound).Contains(player) {
			event = messaging.EventTrueTurnEnd
		}
		err = s.announce(ctx, event, &messaging.Fields{
			CurrentPlayerName:  player.Name,
			CurrentCard:        card.String(),
			CurrentPlayerScore: player.Score(0),
		})
		if err != nil {
			return err
		}
	}

	if s.currentRound >= s.maxRounds {
		s.active = false
	}
	s.currentRound++
	return nil
}

// drawCard draws from the shared deck, recovering from exhaustion by
// rebuilding and reshuffling it. The retry cannot miss: a rebuilt deck is
// never empty.
func (s *service) drawCard(ctx context.Context) (models.Card, error) {
	drawn, err := s.deck.Draw()
	if err == nil {
		return drawn, nil
	}
	if !errors.Is(err, deck.ErrDeckEmpty) {
		return drawn, err
	}

	if err := s.announce(ctx, messaging.EventEmptyDeck, nil); err != nil {
		return drawn, err
	}
	s.deck.Reinitialize()
	s.deck.Shuffle()
	return s.deck.Draw()
}

// NewGame resets a finished game: reactivates it, rebuilds and reshuffles
// the deck, resets the round counter and clears every hand. A game still
// in progress is left untouched.
func (s *service) NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error) {
	if s.active {
		return &NewGameOutput{
			GameID:    s.gameID,
			Restarted: false,
		}, nil
	}

	s.active = true
	s.deck.Reinitialize()
	s.deck.Shuffle()
	s.currentRound = 1
	s.roster.Reset()
	s.gameID = s.uuidGenerator.NewUUID()

	return &NewGameOutput{
		GameID:    s.gameID,
		Restarted: true,
	}, nil
}

// EndGame forces the game inactive
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	s.active = false
	return &EndGameOutput{}, nil
}

// GetLeaderboard returns the standings for a round (0 for cumulative)
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	board := s.roster.Leaderboard(input.Round)
	return &GetLeaderboardOutput{
		Places:   board.Places(),
		Rendered: board.String(),
	}, nil
}

// announce emits one game event through the messenger and writes the
// resulting message to the output
func (s *service) announce(ctx context.Context, event messaging.Event, fields *messaging.Fields) error {
	out, err := s.messenger.Announce(ctx, &messaging.AnnounceInput{
		Event:  event,
		Fields: fields,
	})
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(s.output, out.Message)
	return err
}
