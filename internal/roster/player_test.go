package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cezvahid/tonto/internal/models"
)

func mustCard(t *testing.T, suit, rank string) models.Card {
	t.Helper()
	card, err := models.NewCard(suit, rank)
	require.NoError(t, err)
	return card
}

func TestPlayerScoreCumulative(t *testing.T) {
	p := NewPlayer("Berkelly")
	assert.Equal(t, 0, p.Score(0))

	p.Draw(mustCard(t, "Spades", "10"))   // 10
	p.Draw(mustCard(t, "Clubs", "Ace"))   // 56
	p.Draw(mustCard(t, "Diamonds", "3"))  // 6

	assert.Equal(t, 72, p.Score(0))
}

func TestPlayerScorePerRound(t *testing.T) {
	p := NewPlayer("Cez")
	p.Draw(mustCard(t, "Hearts", "Queen")) // round 1: 36
	p.Draw(mustCard(t, "Spades", "2"))     // round 2: 2

	assert.Equal(t, 36, p.Score(1))
	assert.Equal(t, 2, p.Score(2))
	assert.Equal(t, 0, p.Score(3), "rounds beyond the hand score zero")
}

func TestPlayerCumulativeEqualsSumOfRounds(t *testing.T) {
	p := NewPlayer("Tonto")
	p.Draw(mustCard(t, "Diamonds", "5"))
	p.Draw(mustCard(t, "Clubs", "9"))
	p.Draw(mustCard(t, "Clubs", "6"))

	sum := 0
	for round := 1; round <= len(p.Hand()); round++ {
		sum += p.Score(round)
	}
	assert.Equal(t, p.Score(0), sum)
}

func TestPlayerClearHand(t *testing.T) {
	p := NewPlayer("Berkelly")
	p.Draw(mustCard(t, "Spades", "10"))
	p.ClearHand()

	assert.Empty(t, p.Hand())
	assert.Equal(t, 0, p.Score(0))
	assert.Equal(t, "Berkelly", p.Name)
}

func TestPlayerEqual(t *testing.T) {
	a := NewPlayer("Berkelly")
	b := NewPlayer("Berkelly")
	assert.True(t, a.Equal(b))

	a.Draw(mustCard(t, "Spades", "10"))
	assert.False(t, a.Equal(b))

	b.Draw(mustCard(t, "Spades", "10"))
	assert.True(t, a.Equal(b))

	c := NewPlayer("Cez")
	c.Draw(mustCard(t, "Spades", "10"))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
