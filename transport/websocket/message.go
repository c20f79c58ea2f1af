package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/rocketscienceinc/startup-journey/internal/journey"
)

const (
	actionSessionNew        = "session:new"
	actionSessionJoin       = "session:join"
	actionSessionDelete     = "session:delete"
	actionCatalogGet        = "catalog:get"
	actionPlayerCreate      = "player:create"
	actionPlayerMove        = "player:move"
	actionPlayerUpdateStats = "player:update-stats"
	actionGameStart         = "game:start"
	actionGameAction        = "game:action"
	actionGamePlayCard      = "game:play-card"
	actionGameSelectCard    = "game:select-card"
	actionGameDismissCard   = "game:dismiss-card"
	actionGameNextTurn      = "game:next-turn"
	actionGameReset         = "game:reset"
	actionGameState         = "game:state"

	// actionGameUpdate is pushed to the other connections of a session after a change.
	actionGameUpdate = "game:update"
	actionError      = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ResponsePayload struct {
	Session string           `json:"session,omitempty"`
	Game    *entity.Game     `json:"game,omitempty"`
	Player  *entity.Player   `json:"player,omitempty"`
	Outcome *journey.Outcome `json:"outcome,omitempty"`
	Catalog *catalog.View    `json:"catalog,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// sessionRequest names the target session; empty means the session the connection joined last.
type sessionRequest struct {
	SessionID string `json:"session_id" validate:"omitempty,uuid"`
}

type joinRequest struct {
	SessionID string `json:"session_id" validate:"required,uuid"`
}

type createPlayerRequest struct {
	sessionRequest
	Name      string `json:"name" validate:"required,max=40"`
	Archetype string `json:"archetype" validate:"required,oneof=developer designer growth-hacker operator"`
}

type actionRequest struct {
	sessionRequest
	Action string `json:"action" validate:"required"`
}

type cardRequest struct {
	sessionRequest
	CardID string `json:"card_id" validate:"required"`
}

type movePlayerRequest struct {
	sessionRequest
	PlayerID string `json:"player_id" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

type updateStatsRequest struct {
	sessionRequest
	PlayerID string             `json:"player_id" validate:"required"`
	Stats    journey.StatsPatch `json:"stats"`
}
