// Package roster tracks the players of a game and ranks them into a
// leaderboard with full tie handling.
package roster

import (
	"fmt"

	"github.com/cezvahid/tonto/internal/models"
)

// Player holds a participant's name and hand. Hand order is draw order:
// the card drawn in round r sits at index r-1.
type Player struct {
	// Name uniquely identifies the player within a roster
	Name string

	hand []models.Card
}

// NewPlayer creates a player with an empty hand
func NewPlayer(name string) *Player {
	return &Player{Name: name}
}

// Draw appends a card to the player's hand
func (p *Player) Draw(card models.Card) {
	p.hand = append(p.hand, card)
}

// ClearHand empties the player's hand. The name is retained.
func (p *Player) ClearHand() {
	p.hand = nil
}

// Hand returns a copy of the player's hand in draw order
func (p *Player) Hand() []models.Card {
	hand := make([]models.Card, len(p.hand))
	copy(hand, p.hand)
	return hand
}

// Score returns the player's score. Round 0 is the cumulative score over
// the whole hand; round r > 0 is the score of the r-th drawn card alone,
// or 0 when the player has not drawn that many cards yet.
func (p *Player) Score(round int) int {
	if round > 0 {
		if round > len(p.hand) {
			return 0
		}
		return p.hand[round-1].Score()
	}

	total := 0
	for _, card := range p.hand {
		total += card.Score()
	}
	return total
}

// Equal reports whether two players share a name and an identical hand
func (p *Player) Equal(other *Player) bool {
	if other == nil || p.Name != other.Name || len(p.hand) != len(other.hand) {
		return false
	}
	for i, card := range p.hand {
		if card != other.hand[i] {
			return false
		}
	}
	return true
}

// String summarizes the player's hand and cumulative score
func (p *Player) String() string {
	return fmt.Sprintf("%s holds %d cards totalling %d points", p.Name, len(p.hand), p.Score(0))
}
