package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/quantum-tictactoe-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionNewGame    = "game:new"
	actionSelect     = "game:select"
	actionPlace      = "game:place"
	actionPlaced     = "game:placed"
	actionCollapse   = "game:collapse"
	actionCollapsing = "game:collapsing"
	actionCollapsed  = "game:collapsed"
	actionRefresh    = "game:refresh"
	actionReset      = "game:reset"
	actionAI         = "game:ai"
	actionPing       = "ping"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *GameRequest   `json:"game,omitempty"`
	CardID string         `json:"card_id,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
}

type GameRequest struct {
	Mode     entity.Mode     `json:"mode"`
	Strategy entity.Strategy `json:"strategy,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Value  entity.Mark    `json:"value,omitempty"`
	Move   *entity.Action `json:"action,omitempty"`
	Events []entity.Event `json:"events,omitempty"`
	Error  string         `json:"error,omitempty"`
}
