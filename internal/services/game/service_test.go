package game

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/cezvahid/tonto/internal/common/clock/mocks"
	promptMocks "github.com/cezvahid/tonto/internal/common/prompt/mocks"
	uuidMocks "github.com/cezvahid/tonto/internal/common/uuid/mocks"
	"github.com/cezvahid/tonto/internal/deck"
	"github.com/cezvahid/tonto/internal/models"
	"github.com/cezvahid/tonto/internal/roster"
	"github.com/cezvahid/tonto/internal/services/messaging"
	messagingMocks "github.com/cezvahid/tonto/internal/services/messaging/mocks"
)

// Fixed one-variant phrasings so transcripts are deterministic.
func stubAnnounce(_ context.Context, input *messaging.AnnounceInput) (*messaging.AnnounceOutput, error) {
	f := input.Fields
	var message string
	switch input.Event {
	case messaging.EventWelcome:
		message = "Welcome."
	case messaging.EventRoundStart:
		message = fmt.Sprintf("Round %d.", f.CurrentRound)
	case messaging.EventRoundEnd:
		message = fmt.Sprintf("%s won the round.", f.RoundWinner)
	case messaging.EventRoundEndTie:
		message = "Round was a tie."
	case messaging.EventTurnStart:
		message = fmt.Sprintf("%s turn.", f.CurrentPlayerName)
	case messaging.EventTrueTurnEnd:
		message = fmt.Sprintf("Positive, %s drew %s bringing score to %d.",
			f.CurrentPlayerName, f.CurrentCard, f.CurrentPlayerScore)
	case messaging.EventFalseTurnEnd:
		message = fmt.Sprintf("Negative, %s drew %s bringing score to %d.",
			f.CurrentPlayerName, f.CurrentCard, f.CurrentPlayerScore)
	case messaging.EventGameOver:
		message = fmt.Sprintf("Game over, %s won.", f.GameWinner)
	case messaging.EventGameOverTie:
		message = "Game was a tie."
	case messaging.EventEmptyDeck:
		message = "Deck empty."
	default:
		return nil, &messaging.UnknownEventError{Event: input.Event}
	}
	return &messaging.AnnounceOutput{Message: message}, nil
}

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockMessenger *messagingMocks.MockService
	mockPrompter  *promptMocks.MockPrompter
	mockClock     *clockMocks.MockClock
	mockUUID      *uuidMocks.MockUUID
	output        *bytes.Buffer
	ctx           context.Context

	testTime   time.Time
	testGameID string
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockMessenger = messagingMocks.NewMockService(s.mockCtrl)
	s.mockPrompter = promptMocks.NewMockPrompter(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.output = &bytes.Buffer{}
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"

	s.mockMessenger.EXPECT().Announce(gomock.Any(), gomock.Any()).DoAndReturn(stubAnnounce).AnyTimes()
	s.mockPrompter.EXPECT().Await(gomock.Any()).Return(nil).AnyTimes()
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameServiceTestSuite) newService(names []string, maxRounds int, gameDeck *deck.Deck) Service {
	svc, err := New(&Config{
		PlayerNames:   names,
		MaxRounds:     maxRounds,
		Deck:          gameDeck,
		Messenger:     s.mockMessenger,
		Prompter:      s.mockPrompter,
		Output:        s.output,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

// deckOf builds an empty deck and pushes the given cards bottom to top,
// so the last card listed is drawn first.
func (s *GameServiceTestSuite) deckOf(cards ...string) *deck.Deck {
	d := deck.New(&deck.Config{Empty: true})
	for _, label := range cards {
		parts := strings.SplitN(label, " ", 2)
		s.Require().Len(parts, 2)
		card, err := models.NewCard(parts[0], parts[1])
		s.Require().NoError(err)
		d.Add(card)
	}
	return d
}

func (s *GameServiceTestSuite) TestConstructionErrors() {
	_, err := New(nil)
	s.Require().ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{PlayerNames: nil, MaxRounds: 3})
	s.Require().ErrorIs(err, ErrNoPlayers)

	_, err = New(&Config{PlayerNames: []string{"Berkelly"}, MaxRounds: 0})
	s.Require().ErrorIs(err, ErrInvalidMaxRounds)

	_, err = New(&Config{PlayerNames: []string{"Berkelly", "Berkelly"}, MaxRounds: 3})
	s.Require().Error(err)
	var dupErr *roster.DuplicatePlayerError
	s.Require().ErrorAs(err, &dupErr)
	s.Equal("Berkelly", dupErr.Name)
}

func (s *GameServiceTestSuite) TestSinglePlayerSingleRound() {
	svc := s.newService([]string{"Berkelly"}, 1, s.deckOf("Spades 10"))

	out, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	s.Equal("Welcome.\nRound 1.\nBerkelly turn.\n"+
		"Positive, Berkelly drew 10 of Spades bringing score to 10.\n"+
		"Berkelly won the round.\nGame over, Berkelly won.\n"+
		"1: Berkelly (10)\n", s.output.String())

	s.Equal(s.testGameID, out.GameID)
	s.Equal("Berkelly", out.Winner.Name)
	s.Equal(10, out.Winner.Score)
	s.False(out.Winner.Tie)
	s.Equal("1: Berkelly (10)", out.Leaderboard)
	s.Equal(s.testTime, out.StartedAt)
	s.Equal(s.testTime, out.CompletedAt)
}

func (s *GameServiceTestSuite) TestThreePlayersTieGame() {
	// Nine fixed cards, three rounds. Round 1 ties Berkelly and Tonto at
	// 10; the game ends with Cez and Tonto tied at 70 and Berkelly at 29.
	gameDeck := s.deckOf(
		"Clubs 6",
		"Spades 8",
		"Diamonds 3",
		"Clubs 9",
		"Clubs Ace",
		"Spades King",
		"Diamonds 5",
		"Diamonds 3",
		"Spades 10",
	)
	svc := s.newService([]string{"Berkelly", "Cez", "Tonto"}, 3, gameDeck)

	out, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	s.Equal("Welcome.\nRound 1.\nBerkelly turn.\n"+
		"Positive, Berkelly drew 10 of Spades bringing score to 10.\n"+
		"Cez turn.\nNegative, Cez drew 3 of Diamonds bringing score to 6.\n"+
		"Tonto turn.\nPositive, Tonto drew 5 of Diamonds bringing score to 10.\n"+
		"Round was a tie.\nRound 2.\nBerkelly turn.\n"+
		"Positive, Berkelly drew King of Spades bringing score to 23.\n"+
		"Cez turn.\nPositive, Cez drew Ace of Clubs bringing score to 62.\n"+
		"Tonto turn.\nNegative, Tonto drew 9 of Clubs bringing score to 46.\n"+
		"Cez won the round.\nRound 3.\nBerkelly turn.\n"+
		"Positive, Berkelly drew 3 of Diamonds bringing score to 29.\n"+
		"Cez turn.\nPositive, Cez drew 8 of Spades bringing score to 70.\n"+
		"Tonto turn.\nPositive, Tonto drew 6 of Clubs bringing score to 70.\n"+
		"Tonto won the round.\nGame was a tie.\n"+
		"1: Cez (70)\n1: Tonto (70)\n2: Berkelly (29)\n", s.output.String())

	s.True(out.Winner.Tie)
	s.Equal([]string{"Cez", "Tonto"}, out.Winner.Names)
	s.Equal(70, out.Winner.Score)
	s.Equal("1: Cez (70)\n1: Tonto (70)\n2: Berkelly (29)", out.Leaderboard)
}

func (s *GameServiceTestSuite) TestEmptyDeckRecovery() {
	// One card for two rounds: the second draw exhausts the deck and must
	// trigger exactly one rebuild-reshuffle-retry cycle.
	gameDeck := deck.New(&deck.Config{Empty: true, Seed: 42})
	card, err := models.NewCard("Clubs", "9")
	s.Require().NoError(err)
	gameDeck.Add(card)

	svc := s.newService([]string{"Berkelly"}, 2, gameDeck)

	out, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	transcript := s.output.String()
	s.Contains(transcript, "Positive, Berkelly drew 9 of Clubs bringing score to 36.")
	s.Equal(1, strings.Count(transcript, "Deck empty."))

	// The retry drew a real second card.
	s.Equal("Berkelly", out.Winner.Name)
	s.GreaterOrEqual(out.Winner.Score, 36+2)

	board, err := svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{Round: 2})
	s.Require().NoError(err)
	s.Require().Len(board.Places, 1)
	s.Positive(board.Places[0].Score)
}

func (s *GameServiceTestSuite) TestFirstPlaceIsRecomputedEachTurn() {
	// Berkelly's 10 leads round 1 until Cez's 36 displaces it: both turn
	// reports are positive at the time they happen, yet Cez wins.
	gameDeck := s.deckOf("Hearts Queen", "Spades 10")
	svc := s.newService([]string{"Berkelly", "Cez"}, 1, gameDeck)

	_, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	s.Contains(s.output.String(), "Positive, Berkelly drew 10 of Spades bringing score to 10.")
	s.Contains(s.output.String(), "Positive, Cez drew Queen of Hearts bringing score to 36.")
	s.Contains(s.output.String(), "Cez won the round.")
}

func (s *GameServiceTestSuite) TestTurnEndCarriesCumulativeScore() {
	// Round scoring decides the turn-end branch, but the reported score
	// is cumulative.
	gameDeck := s.deckOf("Spades 2", "Clubs Ace")
	svc := s.newService([]string{"Berkelly"}, 2, gameDeck)

	_, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	s.Contains(s.output.String(), "Positive, Berkelly drew Ace of Clubs bringing score to 56.")
	s.Contains(s.output.String(), "Positive, Berkelly drew 2 of Spades bringing score to 58.")
}

func (s *GameServiceTestSuite) TestPlayAfterGameOver() {
	svc := s.newService([]string{"Berkelly"}, 1, s.deckOf("Spades 10"))

	_, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	_, err = svc.Play(s.ctx, &PlayInput{})
	s.Require().ErrorIs(err, ErrGameNotActive)
}

func (s *GameServiceTestSuite) TestNewGameResetsFinishedGame() {
	svc := s.newService([]string{"Berkelly", "Cez"}, 1, nil)

	// Still active: nothing happens.
	out, err := svc.NewGame(s.ctx, &NewGameInput{})
	s.Require().NoError(err)
	s.False(out.Restarted)

	_, err = svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	out, err = svc.NewGame(s.ctx, &NewGameInput{})
	s.Require().NoError(err)
	s.True(out.Restarted)
	s.Equal(s.testGameID, out.GameID)

	// Hands were cleared, membership preserved.
	board, err := svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Require().Len(board.Places, 1)
	s.True(board.Places[0].Tie)
	s.Zero(board.Places[0].Score)
	s.Equal([]string{"Berkelly", "Cez"}, board.Places[0].Names)

	// And the reset game plays through again.
	s.output.Reset()
	_, err = svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)
	s.Contains(s.output.String(), "Welcome.")
}

func (s *GameServiceTestSuite) TestEndGameForcesInactive() {
	svc := s.newService([]string{"Berkelly"}, 3, nil)

	_, err := svc.EndGame(s.ctx, &EndGameInput{})
	s.Require().NoError(err)

	_, err = svc.Play(s.ctx, &PlayInput{})
	s.Require().ErrorIs(err, ErrGameNotActive)
}

func (s *GameServiceTestSuite) TestGetLeaderboardPerRound() {
	gameDeck := s.deckOf("Hearts King", "Spades 3", "Spades 2", "Clubs Ace")
	svc := s.newService([]string{"Berkelly", "Cez"}, 2, gameDeck)

	_, err := svc.Play(s.ctx, &PlayInput{})
	s.Require().NoError(err)

	// Round 1: Berkelly's Ace of Clubs (56) over Cez's 2 of Spades (2).
	round1, err := svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{Round: 1})
	s.Require().NoError(err)
	s.Equal("1: Berkelly (56)\n2: Cez (2)", round1.Rendered)

	// Round 2: Cez's King of Hearts (39) over Berkelly's 3 of Spades (3).
	round2, err := svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{Round: 2})
	s.Require().NoError(err)
	s.Equal("1: Cez (39)\n2: Berkelly (3)", round2.Rendered)

	cumulative, err := svc.GetLeaderboard(s.ctx, &GetLeaderboardInput{})
	s.Require().NoError(err)
	s.Equal("1: Berkelly (59)\n2: Cez (41)", cumulative.Rendered)
}

func (s *GameServiceTestSuite) TestPrompterErrorAbortsPlay() {
	mockPrompter := promptMocks.NewMockPrompter(s.mockCtrl)
	mockPrompter.EXPECT().Await(gomock.Any()).Return(context.Canceled)

	svc, err := New(&Config{
		PlayerNames:   []string{"Berkelly"},
		MaxRounds:     1,
		Messenger:     s.mockMessenger,
		Prompter:      mockPrompter,
		Output:        s.output,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)

	_, err = svc.Play(s.ctx, &PlayInput{})
	s.Require().ErrorIs(err, context.Canceled)
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
