package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/repository"
)

type gameReader interface {
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type GameHandler interface {
	GetGame(ctx echo.Context) error
}

type gameHandler struct {
	logger *slog.Logger
	games  gameReader
}

func NewGameHandler(logger *slog.Logger, games gameReader) GameHandler {
	return &gameHandler{
		logger: logger,
		games:  games,
	}
}

func Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// GetGame returns the stored state of a game, for spectators and reloads.
func (that *gameHandler) GetGame(ctx echo.Context) error {
	log := that.logger.With("method", "GetGame")

	game, err := that.games.GetGame(ctx.Request().Context(), ctx.Param("id"))
	if errors.Is(err, repository.ErrGameNotFound) {
		return ctx.JSON(http.StatusNotFound, map[string]string{"error": repository.ErrGameNotFound.Error()})
	}

	if err != nil {
		log.Error("failed to get game", "error", err)
		return ctx.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}

	return ctx.JSON(http.StatusOK, game)
}
