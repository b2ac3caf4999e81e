package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/quantum"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/repository"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type engineDep interface {
	NewGame(id string, mode entity.Mode, aiStrategy entity.Strategy) (*entity.Game, error)
	Reset(game *entity.Game) *entity.Game
	SelectCard(game *entity.Game, cardID string) (entity.Outcome, error)
	RefreshDeck(game *entity.Game) (entity.Outcome, error)
	Place(game *entity.Game, cell int) (entity.Outcome, error)
	Collapse(game *entity.Game, cell int) (entity.Outcome, error)
	AITurn(game *entity.Game) (entity.AIMove, error)
}

// GameManager binds sessions to games and runs every move through the engine,
// one move per game at a time.
type GameManager struct {
	logger *slog.Logger

	playerRepo playerRepoDep
	gameRepo   gameRepoDep
	engine     engineDep
	guard      *quantum.Guard

	defaultStrategy entity.Strategy
}

func NewGameManager(
	logger *slog.Logger,
	playerRepo playerRepoDep,
	gameRepo gameRepoDep,
	engine engineDep,
	defaultStrategy entity.Strategy,
) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		engine:     engine,
		guard:      quantum.NewGuard(),

		defaultStrategy: defaultStrategy,
	}
}

func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		player, err := that.createPlayer(ctx, pkg.GenerateNewSessionID())
		if err != nil {
			return nil, fmt.Errorf("failed to create new player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		// the session outlived its record, keep the id the client already has
		player, err = that.createPlayer(ctx, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// NewGame starts a game for the player and drops the one they were in.
func (that *GameManager) NewGame(ctx context.Context, playerID string, mode entity.Mode, aiStrategy entity.Strategy) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame", "player_id", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if mode == entity.ModePvC && aiStrategy == entity.StrategyNone {
		aiStrategy = that.defaultStrategy
	}

	game, err := that.engine.NewGame(pkg.GenerateGameID(), mode, aiStrategy)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save game: %w", err)
	}

	if player.InGame() {
		that.deleteGame(ctx, player.GameID)
	}

	player.GameID = game.ID
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info("game created", "game_id", game.ID, "mode", game.Mode, "strategy", game.Strategy)

	return game, nil
}

func (that *GameManager) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetGameByPlayer returns the game the player is bound to.
func (that *GameManager) GetGameByPlayer(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	return that.gameOf(ctx, player)
}

func (that *GameManager) SelectCard(ctx context.Context, playerID, cardID string) (entity.Outcome, error) {
	var outcome entity.Outcome

	err := that.withGame(ctx, playerID, func(game *entity.Game) (err error) {
		outcome, err = that.engine.SelectCard(game, cardID)
		return err
	})

	return outcome, err
}

func (that *GameManager) RefreshDeck(ctx context.Context, playerID string) (entity.Outcome, error) {
	var outcome entity.Outcome

	err := that.withGame(ctx, playerID, func(game *entity.Game) (err error) {
		outcome, err = that.engine.RefreshDeck(game)
		return err
	})

	return outcome, err
}

func (that *GameManager) Place(ctx context.Context, playerID string, cell int) (entity.Outcome, error) {
	var outcome entity.Outcome

	err := that.withGame(ctx, playerID, func(game *entity.Game) (err error) {
		outcome, err = that.engine.Place(game, cell)
		return err
	})

	return outcome, err
}

func (that *GameManager) Collapse(ctx context.Context, playerID string, cell int) (entity.Outcome, error) {
	var outcome entity.Outcome

	err := that.withGame(ctx, playerID, func(game *entity.Game) (err error) {
		outcome, err = that.engine.Collapse(game, cell)
		return err
	})

	return outcome, err
}

// AITurn plays one computer move in the player's game.
func (that *GameManager) AITurn(ctx context.Context, playerID string) (entity.AIMove, error) {
	var move entity.AIMove

	err := that.withGame(ctx, playerID, func(game *entity.Game) (err error) {
		move, err = that.engine.AITurn(game)
		return err
	})

	if err == nil {
		that.logger.Debug("computer moved", "player_id", playerID, "action", move.Action.Type, "cell", move.Action.Index)
	}

	return move, err
}

func (that *GameManager) Reset(ctx context.Context, playerID string) (*entity.Game, error) {
	var game *entity.Game

	err := that.withGame(ctx, playerID, func(current *entity.Game) error {
		game = that.engine.Reset(current)
		return nil
	})

	return game, err
}

// withGame loads the player's game, holds the game's guard while action runs
// and stores the game when action succeeds. A rejected action leaves the
// stored game as it was.
func (that *GameManager) withGame(ctx context.Context, playerID string, action func(game *entity.Game) error) error {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return err
	}

	if !player.InGame() {
		return apperror.ErrNoActiveGames
	}

	if !that.guard.TryAcquire(player.GameID) {
		return fmt.Errorf("game %s: %w", player.GameID, apperror.ErrActionInFlight)
	}
	defer that.guard.Release(player.GameID)

	game, err := that.gameOf(ctx, player)
	if err != nil {
		return err
	}

	if err = action(game); err != nil {
		return err
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *GameManager) gameOf(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	if !player.InGame() {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil, fmt.Errorf("game %s expired: %w", player.GameID, apperror.ErrNoActiveGames)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) deleteGame(ctx context.Context, gameID string) {
	log := that.logger.With("method", "deleteGame", "game_id", gameID)

	if err := that.gameRepo.DeleteByID(ctx, gameID); err != nil && !errors.Is(err, repository.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
		return
	}

	log.Info("game deleted")
}

func (that *GameManager) createPlayer(ctx context.Context, id string) (*entity.Player, error) {
	player := &entity.Player{
		ID: id,
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}
