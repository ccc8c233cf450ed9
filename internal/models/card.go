package models

import (
	"fmt"
)

// Suit represents the suit of a playing card. The integer value is the
// suit's weight used for scoring.
type Suit int

const (
	// SuitSpades is the lowest-weighted suit
	SuitSpades Suit = iota + 1

	// SuitDiamonds weighs twice a spade
	SuitDiamonds

	// SuitHearts weighs three times a spade
	SuitHearts

	// SuitClubs is the highest-weighted suit
	SuitClubs
)

// Suits lists every suit in declared order. Deck initialization and
// suit-grouped sorting rely on this order.
var Suits = []Suit{SuitSpades, SuitDiamonds, SuitHearts, SuitClubs}

var suitNames = map[Suit]string{
	SuitSpades:   "Spades",
	SuitDiamonds: "Diamonds",
	SuitHearts:   "Hearts",
	SuitClubs:    "Clubs",
}

// String returns the suit's display name
func (s Suit) String() string {
	return suitNames[s]
}

// Value returns the suit's scoring weight
func (s Suit) Value() int {
	return int(s)
}

// Rank represents the rank of a playing card. The integer value is the
// rank's weight used for scoring and ordering: 2 through 10 score face
// value, Jack through Ace score 11 through 14.
type Rank int

const (
	RankTwo Rank = iota + 2
	RankThree
	RankFour
	RankFive
	RankSix
	RankSeven
	RankEight
	RankNine
	RankTen
	RankJack
	RankQueen
	RankKing
	RankAce
)

// Ranks lists every rank in ascending order.
var Ranks = []Rank{
	RankTwo, RankThree, RankFour, RankFive, RankSix, RankSeven, RankEight,
	RankNine, RankTen, RankJack, RankQueen, RankKing, RankAce,
}

var rankNames = map[Rank]string{
	RankTwo:   "2",
	RankThree: "3",
	RankFour:  "4",
	RankFive:  "5",
	RankSix:   "6",
	RankSeven: "7",
	RankEight: "8",
	RankNine:  "9",
	RankTen:   "10",
	RankJack:  "Jack",
	RankQueen: "Queen",
	RankKing:  "King",
	RankAce:   "Ace",
}

// String returns the rank's display name
func (r Rank) String() string {
	return rankNames[r]
}

// Value returns the rank's scoring weight
func (r Rank) Value() int {
	return int(r)
}

// InvalidSuitError is returned when a suit label is not one of the four
// recognized suits.
type InvalidSuitError struct {
	// Label is the unrecognized suit label
	Label string
}

// Error implements the error interface
func (e *InvalidSuitError) Error() string {
	return fmt.Sprintf("the card suit %q does not exist", e.Label)
}

// InvalidRankError is returned when a rank label is not one of the
// thirteen recognized ranks.
type InvalidRankError struct {
	// Label is the unrecognized rank label
	Label string
}

// Error implements the error interface
func (e *InvalidRankError) Error() string {
	return fmt.Sprintf("the card rank %q does not exist", e.Label)
}

// ParseSuit looks up a suit by its display name
func ParseSuit(label string) (Suit, error) {
	for _, suit := range Suits {
		if suitNames[suit] == label {
			return suit, nil
		}
	}
	return 0, &InvalidSuitError{Label: label}
}

// ParseRank looks up a rank by its display name
func ParseRank(label string) (Rank, error) {
	for _, rank := range Ranks {
		if rankNames[rank] == label {
			return rank, nil
		}
	}
	return 0, &InvalidRankError{Label: label}
}

// Card represents an immutable playing card
type Card struct {
	// Suit is the card's suit
	Suit Suit

	// Rank is the card's rank
	Rank Rank
}

// NewCard builds a Card from suit and rank labels, validating both
func NewCard(suitLabel, rankLabel string) (Card, error) {
	suit, err := ParseSuit(suitLabel)
	if err != nil {
		return Card{}, err
	}

	rank, err := ParseRank(rankLabel)
	if err != nil {
		return Card{}, err
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// Score returns the card's score: suit weight multiplied by rank weight
func (c Card) Score() int {
	return c.Suit.Value() * c.Rank.Value()
}

// Compare orders cards by rank only. It returns a negative number when c
// ranks below other, zero when the ranks are equal, and a positive number
// otherwise. Suits never influence ordering, only equality.
func (c Card) Compare(other Card) int {
	return c.Rank.Value() - other.Rank.Value()
}

// String renders the card as "<rank> of <suit>"
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
