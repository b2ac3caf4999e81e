package entity

import (
	"testing"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		// Given: a game that is not over
		game := &Game{}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameFinished when game is over", func(t *testing.T) {
		// Given: a finished game
		game := &Game{GameOver: true}

		// When: checking if the game is active
		err := game.ConfirmOngoingState()

		// Then: it should return ErrGameFinished
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_IsComputerTurn(t *testing.T) {
	t.Run("Player 2 in pvc is the computer", func(t *testing.T) {
		game := &Game{Mode: ModePvC, CurrentPlayer: Player2}

		assert.True(t, game.IsComputerTurn())
	})

	t.Run("Player 2 in pvp is a human", func(t *testing.T) {
		game := &Game{Mode: ModePvP, CurrentPlayer: Player2}

		assert.False(t, game.IsComputerTurn())
	})

	t.Run("Finished game has no computer turn", func(t *testing.T) {
		game := &Game{Mode: ModePvC, CurrentPlayer: Player2, GameOver: true}

		assert.False(t, game.IsComputerTurn())
	})
}

func TestGame_FindCard(t *testing.T) {
	// Given: a game with a deck of three cards
	game := &Game{Deck: []ProbabilityCard{
		{ID: "card-1-0", XProbability: 50, OProbability: 50},
		{ID: "card-1-1", XProbability: 70, OProbability: 30},
		{ID: "card-1-2", XProbability: 10, OProbability: 90},
	}}

	t.Run("Known id", func(t *testing.T) {
		card, err := game.FindCard("card-1-1")

		require.NoError(t, err)
		assert.Equal(t, 70, card.XProbability)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := game.FindCard("card-0-0")

		assert.ErrorIs(t, err, apperror.ErrUnknownCard)
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with a selected card and a winning pattern
	card := ProbabilityCard{ID: "card-1-0", XProbability: 80, OProbability: 20}
	pattern := [3]int{0, 1, 2}
	game := &Game{
		ID:             "g1",
		Deck:           []ProbabilityCard{card},
		SelectedCard:   &card,
		WinningPattern: &pattern,
	}

	// When: cloning and mutating the clone
	clone := game.Clone()
	clone.Deck[0].XProbability = 10
	clone.SelectedCard.XProbability = 10
	clone.WinningPattern[0] = 3
	clone.Board[0] = CollapsedCell(MarkX, Player1)

	// Then: the original is untouched
	assert.Equal(t, 80, game.Deck[0].XProbability)
	assert.Equal(t, 80, game.SelectedCard.XProbability)
	assert.Equal(t, 0, game.WinningPattern[0])
	assert.True(t, game.Board[0].IsEmpty())
}

func TestMarksAndPlayers(t *testing.T) {
	assert.Equal(t, MarkX, Player1.Mark())
	assert.Equal(t, MarkO, Player2.Mark())
	assert.Equal(t, Player2, Player1.Other())
	assert.Equal(t, Player1, Player2.Other())
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
	assert.True(t, StrategyBalanced.IsValid())
	assert.False(t, Strategy("genius").IsValid())
	assert.True(t, ModePvC.IsValid())
	assert.False(t, Mode("online").IsValid())
}
