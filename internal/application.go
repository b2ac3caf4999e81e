package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/config"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/quantum"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/repository"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/repository/storage"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/usecase"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/transport/rest"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if conf.Redis.Host == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.Game.SessionTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.SessionTTL)
	engine := quantum.NewEngine(pkg.NewSource())
	gameManager := usecase.NewGameManager(logger, playerRepo, gameRepo, engine, conf.Game.Strategy())

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpErrCh <- rest.New(logger, gameManager).Start(ctx, conf.HTTPPort)
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, gameManager, websocket.Delays{
			AI:     conf.Game.AIDelay,
			Reveal: conf.Game.RevealDelay,
		})
		wsErrCh <- wsServer.Start(ctx, conf.SocketPort)
	}()

	select {
	case err = <-httpErrCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	case err = <-wsErrCh:
		if err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
	}

	return nil
}
