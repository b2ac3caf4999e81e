package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/repository"
)

type stubGames map[string]*entity.Game

func (that stubGames) GetGame(_ context.Context, gameID string) (*entity.Game, error) {
	if gameID == "broken" {
		return nil, errors.New("redis down")
	}

	game, ok := that[gameID]
	if !ok {
		return nil, fmt.Errorf("failed to get game: %w", repository.ErrGameNotFound)
	}

	return game, nil
}

func newTestServer() http.Handler {
	games := stubGames{
		"game-1": {ID: "game-1", Mode: entity.ModePvP, CurrentPlayer: entity.Player2, QuantumCount: 1},
	}

	return New(slog.New(slog.NewJSONHandler(io.Discard, nil)), games).Handler()
}

func TestPing(t *testing.T) {
	rec := httptest.NewRecorder()

	newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestGameHandler_GetGame(t *testing.T) {
	t.Run("Known game", func(t *testing.T) {
		// Given: a stored game
		rec := httptest.NewRecorder()

		// When: it is requested by id
		newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/game-1", nil))

		// Then: its state comes back as JSON
		require.Equal(t, http.StatusOK, rec.Code)

		var game entity.Game
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &game))
		assert.Equal(t, "game-1", game.ID)
		assert.Equal(t, entity.Player2, game.CurrentPlayer)
		assert.Equal(t, 1, game.QuantumCount)
	})

	t.Run("Unknown game", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"game not found"}`, rec.Body.String())
	})

	t.Run("Storage failure", func(t *testing.T) {
		rec := httptest.NewRecorder()

		newTestServer().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/broken", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
