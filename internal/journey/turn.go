package journey

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

// AddPlayer appends a player during setup; insertion order is turn order.
func (that *Engine) AddPlayer(game *entity.Game, player *entity.Player) error {
	if !game.IsWaiting() {
		return apperror.ErrGameAlreadyStarted
	}

	if _, err := game.PlayerByID(player.ID); err == nil {
		return fmt.Errorf("%w: %s", apperror.ErrPlayerAlreadyExists, player.ID)
	}

	game.Players = append(game.Players, player)

	return nil
}

func (that *Engine) Start(game *entity.Game) error {
	if !game.IsWaiting() {
		return apperror.ErrGameAlreadyStarted
	}

	if len(game.Players) == 0 {
		return apperror.ErrNoPlayers
	}

	game.IsGameActive = true

	return nil
}

// NextTurn hands play to the next player. Wrapping to the first player opens a new
// round, which releases any scheduled effects due on it.
func (that *Engine) NextTurn(game *entity.Game) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	if len(game.Players) == 0 {
		return apperror.ErrNoPlayers
	}

	next := (game.CurrentPlayer + 1) % len(game.Players)
	if next == 0 {
		game.CurrentTurn++
		that.drainPending(game)
	}

	game.CurrentPlayer = next
	game.SelectedCard = nil

	return nil
}
