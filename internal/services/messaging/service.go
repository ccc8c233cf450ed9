package messaging

import (
	"context"
	"math/rand"
	"os"
	"time"
)

// defaultTemplates holds the built-in phrasing variants per event. Every
// variant of an event carries the same placeholders so substituted values
// always show up no matter which variant is picked.
var defaultTemplates = map[Event][]string{
	EventWelcome: {
		"Welcome to Tonto's card game!",
		"Gather 'round, the cards are waiting. Welcome!",
		"A fresh game begins. Good luck to all!",
	},
	EventRoundStart: {
		"Round ${current_round}, here we go!",
		"Shuffling into round ${current_round}.",
		"Round ${current_round} begins. Draw well!",
	},
	EventRoundEnd: {
		"${round_winner} takes the round!",
		"That round belongs to ${round_winner}.",
		"A round well played by ${round_winner}.",
	},
	EventRoundEndTie: {
		"The round ends in a tie!",
		"Nobody takes this round outright. It's a tie!",
		"A dead heat! The round is tied.",
	},
	EventTurnStart: {
		"${current_player_name}, you're up!",
		"It's ${current_player_name}'s turn to draw.",
		"The deck awaits you, ${current_player_name}.",
	},
	EventTrueTurnEnd: {
		"${current_player_name} drew ${current_card} and leads the round at ${current_player_score} points!",
		"A fine pull! ${current_player_name} drew ${current_card}, sits first this round with ${current_player_score} points.",
		"${current_player_name} drew ${current_card}. Top of the round, ${current_player_score} points in hand!",
	},
	EventFalseTurnEnd: {
		"${current_player_name} drew ${current_card} for ${current_player_score} points. Not enough for the lead.",
		"${current_player_name} drew ${current_card}, bringing ${current_player_score} points. The round's lead lies elsewhere.",
		"No luck, ${current_player_name}: ${current_card} leaves you at ${current_player_score} points, off the pace.",
	},
	EventGameOver: {
		"Game over! ${game_winner} wins it all!",
		"The final card has fallen. ${game_winner} is the champion!",
		"All rounds played. Congratulations, ${game_winner}!",
	},
	EventGameOverTie: {
		"Game over, and it's a tie at the top!",
		"The game ends with winners sharing first place!",
		"No sole champion today. The game is tied!",
	},
	EventEmptyDeck: {
		"The deck ran dry! Bringing in a fresh one.",
		"No cards left. Shuffling up a new deck.",
		"Deck's empty. A new deck hits the table.",
	},
}

// service implements the Service interface
type service struct {
	templates map[Event][]string
	rand      *rand.Rand
}

// NewService creates a new messaging service
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	templates := cfg.Templates
	if templates == nil {
		templates = defaultTemplates
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &service{
		templates: templates,
		rand:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Announce picks a random phrasing variant for the event and substitutes
// the input's fields into its placeholders
func (s *service) Announce(ctx context.Context, input *AnnounceInput) (*AnnounceOutput, error) {
	variants, ok := s.templates[input.Event]
	if !ok || len(variants) == 0 {
		return nil, &UnknownEventError{Event: input.Event}
	}

	template := variants[s.rand.Intn(len(variants))]
	message := os.Expand(template, input.Fields.lookup)

	return &AnnounceOutput{
		Message: message,
	}, nil
}
