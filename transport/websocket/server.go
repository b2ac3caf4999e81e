package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/pkg"
)

const (
	sessionCookie   = "user_session"
	sessionLifetime = 24 * time.Hour
	shutdownTimeout = 5 * time.Second
)

var ErrUnknownAction = errors.New("unknown action")

type gameManager interface {
	GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error)
	GetGameByPlayer(ctx context.Context, playerID string) (*entity.Game, error)
	NewGame(ctx context.Context, playerID string, mode entity.Mode, aiStrategy entity.Strategy) (*entity.Game, error)

	SelectCard(ctx context.Context, playerID, cardID string) (entity.Outcome, error)
	RefreshDeck(ctx context.Context, playerID string) (entity.Outcome, error)
	Place(ctx context.Context, playerID string, cell int) (entity.Outcome, error)
	Collapse(ctx context.Context, playerID string, cell int) (entity.Outcome, error)
	AITurn(ctx context.Context, playerID string) (entity.AIMove, error)
	Reset(ctx context.Context, playerID string) (*entity.Game, error)
}

// Delays paces what the client sees: how long the computer thinks and how long
// a collapse animates before its value is revealed.
type Delays struct {
	AI     time.Duration
	Reveal time.Duration
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

type Server struct {
	logger  *slog.Logger
	manager gameManager
	delays  Delays

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc
}

func New(logger *slog.Logger, manager gameManager, delays Delays) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		delays:  delays,

		upgrader: websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }},
		handlers: make(map[string]handlerFunc),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionNewGame] = server.handleNewGame
	server.handlers[actionSelect] = server.handleSelectCard
	server.handlers[actionPlace] = server.handlePlace
	server.handlers[actionCollapse] = server.handleCollapse
	server.handlers[actionRefresh] = server.handleRefreshDeck
	server.handlers[actionReset] = server.handleReset

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.upgradeToWebSocket)

	return mux
}

// Start - starts WebSocket server. It returns once ctx is canceled and the
// server has shut down.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down websocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	sessionID, header := that.sessionCookie(req)

	conn, err := that.upgrader.Upgrade(writer, req, header)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	client := newClient(conn, sessionID)
	defer client.close()

	go func() {
		if err := client.writeLoop(); err != nil {
			log.Debug("writer stopped", "error", err)
		}
	}()

	log.Info("WebSocket connection established", "session", sessionID)

	that.handleMessages(req.Context(), client)
}

// handleMessages - processes messages from the client one at a time.
func (that *Server) handleMessages(ctx context.Context, client *client) {
	log := that.logger.With("method", "handleMessages")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// unblocks ReadMessage on shutdown
	go func() {
		<-ctx.Done()
		client.close()
	}()

	for {
		_, body, err := client.conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Debug("connection closed", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(body, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.replyError(client, message.Action, fmt.Errorf("%w: %q", ErrUnknownAction, message.Action))
			continue
		}

		if err = handler(ctx, client, &message); err != nil {
			that.replyError(client, message.Action, err)
		}
	}
}

func (that *Server) replyError(client *client, action string, err error) {
	log := that.logger.With("method", "replyError", "action", action, "player_id", client.playerID)

	public := clientError(err)
	if public == errInternal {
		log.Error("error processing message", "error", err)
	} else {
		log.Debug("action rejected", "error", err)
	}

	if sendErr := client.send(action, ResponsePayload{Error: public.Error()}); sendErr != nil {
		log.Debug("failed to send error", "error", sendErr)
	}
}

// sessionCookie - reads the session cookie, or issues a new one with the upgrade response.
func (that *Server) sessionCookie(req *http.Request) (string, http.Header) {
	if cookie, err := req.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookie,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(sessionLifetime),
		Path:    "/ws",
	}

	header := http.Header{}
	header.Add("Set-Cookie", cookie.String())

	return cookie.Value, header
}
