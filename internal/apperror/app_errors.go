package apperror

import "errors"

var (
	ErrGameFinished       = errors.New("game is already finished")
	ErrGameIsNotStarted   = errors.New("game is not started")
	ErrGameAlreadyStarted = errors.New("game is already started")

	ErrNoPlayers           = errors.New("no players in game")
	ErrNoActivePlayer      = errors.New("no active player")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrPlayerAlreadyExists = errors.New("player already exists")
	ErrUnknownArchetype    = errors.New("unknown archetype")
	ErrInvalidName         = errors.New("player name is empty")
	ErrInvalidPosition     = errors.New("invalid board position")

	ErrUnknownAction     = errors.New("unknown action")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrCardNotFound      = errors.New("card not found")
	ErrNoEligibleCard    = errors.New("no eligible card to draw")
	ErrNoCardSelected    = errors.New("no card selected")

	ErrSessionNotFound = errors.New("session not found")
)
