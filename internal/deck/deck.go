// Package deck provides the shared card sequence games draw from.
package deck

import (
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/cezvahid/tonto/internal/models"
)

// DeckError is a custom error type for deck-related errors
type DeckError string

// Error implements the error interface
func (e DeckError) Error() string {
	return string(e)
}

// ErrDeckEmpty is returned when drawing from an empty deck
const ErrDeckEmpty DeckError = "the deck has run out of cards"

// Config for a deck
type Config struct {
	// Empty starts the deck with no cards instead of the full ordered set
	Empty bool

	// Optional seed for deterministic shuffles in tests
	Seed int64
}

// Deck is an ordered, mutable sequence of cards. The top of the deck is
// the end of the slice: Add pushes there and Draw pops from there.
type Deck struct {
	cards  []models.Card
	random *rand.Rand
}

// New creates a deck. Unless cfg.Empty is set the deck starts as the full
// ordered 52-card set, suit-major in declared suit order, ranks ascending
// within each suit.
func New(cfg *Config) *Deck {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	d := &Deck{
		random: rand.New(rand.NewSource(seed)),
	}
	if cfg == nil || !cfg.Empty {
		d.Reinitialize()
	}
	return d
}

// Add pushes a card onto the top of the deck
func (d *Deck) Add(card models.Card) {
	d.cards = append(d.cards, card)
}

// Draw removes and returns the top card. It returns ErrDeckEmpty when
// there is nothing left to draw.
func (d *Deck) Draw() (models.Card, error) {
	if len(d.cards) == 0 {
		return models.Card{}, ErrDeckEmpty
	}
	card := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return card, nil
}

// Reinitialize resets the deck to the full ordered 52-card set
func (d *Deck) Reinitialize() {
	d.cards = d.cards[:0]
	for _, suit := range models.Suits {
		for _, rank := range models.Ranks {
			d.cards = append(d.cards, models.Card{Suit: suit, Rank: rank})
		}
	}
}

// Shuffle permutes the deck in place using the deck's random source
func (d *Deck) Shuffle() {
	d.random.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// SortBySuits returns a new deck with all cards grouped by suit in the
// given order, ranks ascending within each suit. Cards of suits absent
// from the order are dropped.
func (d *Deck) SortBySuits(order []models.Suit) *Deck {
	sorted := New(&Config{Empty: true})
	for _, suit := range order {
		var group []models.Card
		for _, card := range d.cards {
			if card.Suit == suit {
				group = append(group, card)
			}
		}
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Compare(group[j]) < 0
		})
		for _, card := range group {
			sorted.Add(card)
		}
	}
	return sorted
}

// Top returns the top card without removing it. The second return value
// is false when the deck is empty.
func (d *Deck) Top() (models.Card, bool) {
	if len(d.cards) == 0 {
		return models.Card{}, false
	}
	return d.cards[len(d.cards)-1], true
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck's cards, bottom to top
func (d *Deck) Cards() []models.Card {
	cards := make([]models.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

// Equal reports whether two decks hold the same cards in the same order
func (d *Deck) Equal(other *Deck) bool {
	if other == nil || len(d.cards) != len(other.cards) {
		return false
	}
	for i, card := range d.cards {
		if card != other.cards[i] {
			return false
		}
	}
	return true
}

// String renders the deck bottom to top, one card per entry
func (d *Deck) String() string {
	names := make([]string, len(d.cards))
	for i, card := range d.cards {
		names[i] = card.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}
