package pkg

import (
	"github.com/google/uuid"
)

const playerPrefix = "player-"

// GenerateSessionID - generates a new unique session id.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GeneratePlayerID - generates a short player id, unique within a session.
func GeneratePlayerID() string {
	return playerPrefix + uuid.NewString()[:8]
}
