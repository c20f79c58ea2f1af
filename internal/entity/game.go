package entity

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
)

const FirstTurn = 1

// ScheduledEffect is an effect waiting for a future round.
// Remaining counts the applications still owed, including the one due on DueTurn.
type ScheduledEffect struct {
	PlayerID  string `json:"player_id"`
	DueTurn   int    `json:"due_turn"`
	Effect    Effect `json:"effect"`
	Remaining int    `json:"remaining"`
}

type Game struct {
	ID            string            `json:"id"`
	Players       []*Player         `json:"players"`
	CurrentPlayer int               `json:"current_player"`
	CurrentTurn   int               `json:"current_turn"`
	GamePhase     Phase             `json:"game_phase"`
	SelectedCard  *Card             `json:"selected_card"`
	Board         []Tile            `json:"game_board"`
	IsGameActive  bool              `json:"is_game_active"`
	Winner        string            `json:"winner,omitempty"`
	Pending       []ScheduledEffect `json:"pending,omitempty"`
}

func NewGame(id string, board []Tile) *Game {
	return &Game{
		ID:          id,
		Players:     []*Player{},
		CurrentTurn: FirstTurn,
		GamePhase:   PhaseIndieHustler,
		Board:       board,
	}
}

func (that *Game) IsWaiting() bool {
	return !that.IsGameActive
}

func (that *Game) IsFinished() bool {
	return that.IsGameActive && that.Winner != ""
}

func (that *Game) IsOngoing() bool {
	return that.IsGameActive && that.Winner == ""
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	default:
		return nil
	}
}

// LastPosition is the index of the final board tile.
func (that *Game) LastPosition() int {
	return len(that.Board) - 1
}

// TileAt returns the tile at the given board position.
func (that *Game) TileAt(position int) (Tile, bool) {
	if position < 0 || position >= len(that.Board) {
		return Tile{}, false
	}

	return that.Board[position], true
}

// ActivePlayer returns the player whose turn it is.
// An index outside the player list is a corrupted snapshot and panics.
func (that *Game) ActivePlayer() (*Player, error) {
	if len(that.Players) == 0 {
		return nil, apperror.ErrNoActivePlayer
	}

	if that.CurrentPlayer < 0 || that.CurrentPlayer >= len(that.Players) {
		panic(fmt.Sprintf("current player index %d out of range for %d players", that.CurrentPlayer, len(that.Players)))
	}

	return that.Players[that.CurrentPlayer], nil
}

func (that *Game) PlayerByID(id string) (*Player, error) {
	for _, player := range that.Players {
		if player.ID == id {
			return player, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, id)
}

// Clone returns a deep copy; the board is shared because it is never mutated.
func (that *Game) Clone() *Game {
	clone := *that

	clone.Players = make([]*Player, 0, len(that.Players))
	for _, player := range that.Players {
		clone.Players = append(clone.Players, player.Clone())
	}

	if that.SelectedCard != nil {
		card := *that.SelectedCard
		clone.SelectedCard = &card
	}

	clone.Pending = append([]ScheduledEffect(nil), that.Pending...)

	return &clone
}
