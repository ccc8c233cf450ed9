package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        GameError = "config cannot be nil"
	ErrNoPlayers        GameError = "at least one player name is required"
	ErrInvalidMaxRounds GameError = "max rounds must be at least 1"
	ErrGameNotActive    GameError = "game is not active"
)
