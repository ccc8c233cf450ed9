package roster

import (
	"fmt"
	"sort"
	"strings"
)

// DuplicatePlayerError is returned when a roster is created with a
// repeated player name.
type DuplicatePlayerError struct {
	// Name is the repeated player name
	Name string
}

// Error implements the error interface
func (e *DuplicatePlayerError) Error() string {
	return fmt.Sprintf("duplicate player name %q", e.Name)
}

// Place is one rank position on a leaderboard, possibly shared by several
// tied players. The zero value is the empty sentinel returned for
// positions that do not exist.
type Place struct {
	// Player is the first player holding this position in sort order
	Player *Player

	// Players holds everyone tied at this position
	Players []*Player

	// Name is the representative player's name
	Name string

	// Names holds every tied player's name
	Names []string

	// Rank is the 1-based leaderboard position
	Rank int

	// Score is the score shared by this position
	Score int

	// Tie is true when more than one player holds this position
	Tie bool
}

// Contains reports whether the given player holds this position
func (p Place) Contains(player *Player) bool {
	for _, member := range p.Players {
		if member == player {
			return true
		}
	}
	return false
}

// Leaderboard is a ranking of players computed from a scoring snapshot.
// It is never cached: hands change between turns, so callers re-query.
type Leaderboard struct {
	places []Place
}

// Place returns the place at the given 1-based position, or the empty
// sentinel when the position does not exist.
func (l *Leaderboard) Place(position int) Place {
	if position < 1 || position > len(l.places) {
		return Place{}
	}
	return l.places[position-1]
}

// Places returns every place in rank order
func (l *Leaderboard) Places() []Place {
	places := make([]Place, len(l.places))
	copy(places, l.places)
	return places
}

// String renders one line per player, "<place>: <name> (<score>)", in
// place order then within-group order, with no trailing newline.
func (l *Leaderboard) String() string {
	var lines []string
	for _, place := range l.places {
		for _, name := range place.Names {
			lines = append(lines, fmt.Sprintf("%d: %s (%d)", place.Rank, name, place.Score))
		}
	}
	return strings.Join(lines, "\n")
}

// Roster is a registration-ordered set of players, unique by name.
// Registration order is also turn order.
type Roster struct {
	players []*Player
	byName  map[string]*Player
}

// New creates a roster from player names, failing on any repeated name
func New(names []string) (*Roster, error) {
	r := &Roster{
		byName: make(map[string]*Player, len(names)),
	}
	for _, name := range names {
		if _, exists := r.byName[name]; exists {
			return nil, &DuplicatePlayerError{Name: name}
		}
		player := NewPlayer(name)
		r.players = append(r.players, player)
		r.byName[name] = player
	}
	return r, nil
}

// Players returns the players in registration order
func (r *Roster) Players() []*Player {
	players := make([]*Player, len(r.players))
	copy(players, r.players)
	return players
}

// Player looks up a player by name
func (r *Roster) Player(name string) (*Player, bool) {
	player, ok := r.byName[name]
	return player, ok
}

// Len returns the number of players
func (r *Roster) Len() int {
	return len(r.players)
}

// Reset clears every player's hand. Membership, order and player identity
// are preserved.
func (r *Roster) Reset() {
	for _, player := range r.players {
		player.ClearHand()
	}
}

// Leaderboard ranks the players by Score(round) descending. Players with
// equal scores share a place, in registration order; place numbers are
// dense, advancing by exactly one per score group regardless of group
// size. Two players tied for first and a third below them rank 1, 1, 2.
func (r *Roster) Leaderboard(round int) *Leaderboard {
	ranked := r.Players()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score(round) > ranked[j].Score(round)
	})

	board := &Leaderboard{}
	for i := 0; i < len(ranked); {
		score := ranked[i].Score(round)
		var group []*Player
		for i < len(ranked) && ranked[i].Score(round) == score {
			group = append(group, ranked[i])
			i++
		}

		names := make([]string, len(group))
		for j, player := range group {
			names[j] = player.Name
		}

		board.places = append(board.places, Place{
			Player:  group[0],
			Players: group,
			Name:    group[0].Name,
			Names:   names,
			Rank:    len(board.places) + 1,
			Score:   score,
			Tie:     len(group) > 1,
		})
	}
	return board
}

// First returns the first place for the given round (0 for cumulative)
func (r *Roster) First(round int) Place {
	return r.Leaderboard(round).Place(1)
}

// Second returns the second place for the given round
func (r *Roster) Second(round int) Place {
	return r.Leaderboard(round).Place(2)
}

// Third returns the third place for the given round
func (r *Roster) Third(round int) Place {
	return r.Leaderboard(round).Place(3)
}
