package journey

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

// PlayCard resolves a catalog card against the active player and clears the selection.
// The player must be able to pay the card cost up front.
func (that *Engine) PlayCard(game *entity.Game, cardID string) (Outcome, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	card, err := that.catalog.CardByID(cardID)
	if err != nil {
		return Outcome{}, err
	}

	player, err := game.ActivePlayer()
	if err != nil {
		return Outcome{}, err
	}

	if !card.CanAfford(player.Stats.Cash) {
		return Outcome{}, fmt.Errorf("%w: %s costs %d, cash is %d", apperror.ErrInsufficientFunds, card.ID, card.Cost, player.Stats.Cash)
	}

	outcome := Outcome{PlayerID: player.ID, Before: player.Stats, Card: &card}

	that.resolve(game, player, card.Effects, card.Cost)
	game.SelectedCard = nil

	outcome.After = player.Stats
	outcome.Position = player.Position

	return outcome, nil
}

// SelectCard puts a catalog card under consideration.
func (that *Engine) SelectCard(game *entity.Game, cardID string) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	card, err := that.catalog.CardByID(cardID)
	if err != nil {
		return err
	}

	game.SelectedCard = &card

	return nil
}

// DismissCard drops the card under consideration without playing it.
func (that *Engine) DismissCard(game *entity.Game) error {
	if game.SelectedCard == nil {
		return apperror.ErrNoCardSelected
	}

	game.SelectedCard = nil

	return nil
}
