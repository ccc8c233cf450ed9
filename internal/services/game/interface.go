package game

import "context"

// Service defines the interface for game operations
type Service interface {
	// Play runs a full game: every round until the round limit, then the
	// final standings
	Play(ctx context.Context, input *PlayInput) (*PlayOutput, error)

	// NewGame resets a finished game so it can be played again
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)

	// EndGame forces the game to end immediately
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// GetLeaderboard returns the current standings, cumulative or for a
	// single round
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)
}
