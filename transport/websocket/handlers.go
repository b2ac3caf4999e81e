package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/apperror"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, client *client, msg *Message) error {
	log := that.logger.With("method", "handleConnect")

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	playerID := client.sessionID
	if payload.Player != nil && payload.Player.ID != "" {
		playerID = payload.Player.ID
	}

	player, err := that.manager.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		return fmt.Errorf("failed to get or create player: %w", err)
	}

	client.playerID = player.ID
	log.Info("Player connected", "player_id", player.ID)

	game, err := that.manager.GetGameByPlayer(ctx, player.ID)
	if err != nil && !errors.Is(err, apperror.ErrNoActiveGames) {
		return fmt.Errorf("failed to get game: %w", err)
	}

	if err = client.send(msg.Action, ResponsePayload{Player: player, Game: game}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	// a reconnect can land in the middle of the computer's turn
	return that.playComputer(ctx, client, game)
}

func (that *Server) handleNewGame(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	if payload.Game == nil {
		return errMissingGame
	}

	game, err := that.manager.NewGame(ctx, client.playerID, payload.Game.Mode, payload.Game.Strategy)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return client.send(msg.Action, ResponsePayload{Game: game})
}

func (that *Server) handleSelectCard(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		return errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return err
	}

	outcome, err := that.manager.SelectCard(ctx, client.playerID, payload.CardID)
	if err != nil {
		return fmt.Errorf("failed to select card: %w", err)
	}

	return client.send(msg.Action, ResponsePayload{Game: outcome.Game, Events: outcome.Events})
}

func (that *Server) handleRefreshDeck(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		return errNotConnected
	}

	outcome, err := that.manager.RefreshDeck(ctx, client.playerID)
	if err != nil {
		return fmt.Errorf("failed to refresh deck: %w", err)
	}

	return client.send(msg.Action, ResponsePayload{Game: outcome.Game, Events: outcome.Events})
}

func (that *Server) handlePlace(ctx context.Context, client *client, msg *Message) error {
	cell, err := that.cellRequest(client, msg)
	if err != nil {
		return err
	}

	outcome, err := that.manager.Place(ctx, client.playerID, cell)
	if err != nil {
		return fmt.Errorf("failed to place: %w", err)
	}

	if err = client.send(actionPlaced, ResponsePayload{Game: outcome.Game, Cell: &cell, Events: outcome.Events}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return that.playComputer(ctx, client, outcome.Game)
}

// handleCollapse announces the collapse at once and reveals the value after
// the reveal delay. The value is already fixed while the client waits.
func (that *Server) handleCollapse(ctx context.Context, client *client, msg *Message) error {
	cell, err := that.cellRequest(client, msg)
	if err != nil {
		return err
	}

	outcome, err := that.manager.Collapse(ctx, client.playerID, cell)
	if err != nil {
		return fmt.Errorf("failed to collapse: %w", err)
	}

	if err = client.send(actionCollapsing, ResponsePayload{Cell: &cell}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	if err = wait(ctx, that.delays.Reveal); err != nil {
		return err
	}

	if err = client.send(actionCollapsed, ResponsePayload{
		Game:   outcome.Game,
		Cell:   &cell,
		Value:  outcome.Value,
		Events: outcome.Events,
	}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return that.playComputer(ctx, client, outcome.Game)
}

func (that *Server) handleReset(ctx context.Context, client *client, msg *Message) error {
	if client.playerID == "" {
		return errNotConnected
	}

	game, err := that.manager.Reset(ctx, client.playerID)
	if err != nil {
		return fmt.Errorf("failed to reset game: %w", err)
	}

	return client.send(msg.Action, ResponsePayload{Game: game})
}

// playComputer keeps moving for the computer while it holds the turn. Every
// move is pushed as game:ai after the think delay; a collapse is announced
// first and revealed after the reveal delay, same as a human collapse.
func (that *Server) playComputer(ctx context.Context, client *client, game *entity.Game) error {
	log := that.logger.With("method", "playComputer", "player_id", client.playerID)

	for game != nil && game.IsComputerTurn() {
		if err := wait(ctx, that.delays.AI); err != nil {
			return err
		}

		move, err := that.manager.AITurn(ctx, client.playerID)
		if err != nil {
			// a rejected move leaves the game as it was, retrying would loop
			log.Error("computer move failed", "error", err)
			that.replyError(client, actionAI, err)
			return nil
		}

		action := move.Action
		if action.Type == entity.ActionCollapse {
			if err = client.send(actionCollapsing, ResponsePayload{Cell: &action.Index}); err != nil {
				return fmt.Errorf("failed to send response: %w", err)
			}

			if err = wait(ctx, that.delays.Reveal); err != nil {
				return err
			}
		}

		if err = client.send(actionAI, ResponsePayload{
			Game:   move.Game,
			Cell:   &action.Index,
			Value:  move.Value,
			Move:   &action,
			Events: move.Events,
		}); err != nil {
			return fmt.Errorf("failed to send response: %w", err)
		}

		game = move.Game
	}

	return nil
}

func (that *Server) cellRequest(client *client, msg *Message) (int, error) {
	if client.playerID == "" {
		return 0, errNotConnected
	}

	payload, err := decodePayload(msg)
	if err != nil {
		return 0, err
	}

	if payload.Cell == nil {
		return 0, errMissingCell
	}

	return *payload.Cell, nil
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errBadPayload, err)
	}

	return payload, nil
}

// wait sleeps for d unless ctx ends first.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait interrupted: %w", ctx.Err())
	}
}
