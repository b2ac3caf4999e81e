package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedGame() *entity.Game {
	var board entity.Board
	board[0] = entity.CollapsedCell(entity.MarkX, entity.Player1)
	board[4] = entity.QuantumCell(entity.ProbabilityCard{XProbability: 70, OProbability: 30}, entity.Player2)

	return &entity.Game{
		ID:            "123",
		Board:         board,
		CurrentPlayer: entity.Player1,
		Deck: []entity.ProbabilityCard{
			{ID: "card-2-0", XProbability: 50, OProbability: 50},
			{ID: "card-2-1", XProbability: 60, OProbability: 40},
			{ID: "card-2-2", XProbability: 10, OProbability: 90},
		},
		DeckRound:      2,
		Mode:           entity.ModePvC,
		Strategy:       entity.StrategyDefensive,
		QuantumCount:   1,
		CollapsedCount: 1,
	}
}

func TestGameRepository_CreateOrUpdate(t *testing.T) {
	t.Run("CreateOrUpdate_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a game in progress
		game := storedGame()

		// When: CreateOrUpdate is called
		err := gameRepo.CreateOrUpdate(ctx, game)

		// Then: no error should be returned, and game is stored without expiry
		require.NoError(t, err)

		ttl, err := st.Storage.TTL(ctx, "game:"+game.ID).Result()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(-1), ttl)
	})

	t.Run("CreateOrUpdate_WithTTL", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, time.Hour)

		// When: a game is stored with a session ttl
		err := gameRepo.CreateOrUpdate(ctx, storedGame())
		require.NoError(t, err)

		// Then: the key expires within the hour
		ttl, err := st.Storage.TTL(ctx, "game:123").Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
		assert.LessOrEqual(t, ttl, time.Hour)
	})
}

func TestGameRepository_GetByID(t *testing.T) {
	t.Run("GetByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a stored game with a selected card and quantum pieces
		game := storedGame()
		game.SelectedCard = &game.Deck[1]

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: GetByID is called with existing ID
		retrievedGame, err := gameRepo.GetByID(ctx, game.ID)

		// Then: the retrieved game should match the saved game
		require.NoError(t, err)
		assert.Equal(t, game, retrievedGame)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		nonExistentGameID := "9999999"

		// When: GetByID is called with non-existent ID
		retrievedGame, err := gameRepo.GetByID(ctx, nonExistentGameID)

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
		assert.Empty(t, retrievedGame.ID)
	})
}

func TestGameRepository_DeleteByID(t *testing.T) {
	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// Given: a finished game
		game := storedGame()
		game.GameOver = true
		game.Winner = entity.MarkX

		err := gameRepo.CreateOrUpdate(ctx, game)
		require.NoError(t, err)

		// When: DeleteByID is called with existing ID
		err = gameRepo.DeleteByID(ctx, game.ID)

		// Then: no error should be returned
		require.NoError(t, err)

		_, err = gameRepo.GetByID(ctx, game.ID)
		require.Error(t, err)
		assert.Equal(t, ErrGameNotFound, err)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		gameRepo := NewGameRepository(st.Storage, 0)

		// When: DeleteByID is called with non-existent ID
		err := gameRepo.DeleteByID(ctx, "9999999")

		// Then: an ErrGameNotFound error should be returned
		require.Error(t, err)
		require.Equal(t, ErrGameNotFound, err)
	})
}
