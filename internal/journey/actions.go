package journey

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

type Action string

const (
	ActionWorkForCash Action = "work-for-cash"
	ActionBuild       Action = "build"
	ActionDrawCard    Action = "draw-card"

	// actionFreelance is the legacy name of work-for-cash.
	actionFreelance = "freelance"
)

const (
	WorkBasePayout       = 1000
	WorkPayoutPerSkill   = 200
	WorkEnergyCost       = 15
	BuildCashCost        = 500
	BuildEnergyCost      = 10
	buildPositionAdvance = 1
)

func ParseAction(name string) (Action, error) {
	switch name {
	case string(ActionWorkForCash), actionFreelance:
		return ActionWorkForCash, nil
	case string(ActionBuild):
		return ActionBuild, nil
	case string(ActionDrawCard):
		return ActionDrawCard, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownAction, name)
	}
}

// Outcome describes what a successful operation changed for the acting player.
type Outcome struct {
	Action   Action       `json:"action,omitempty"`
	PlayerID string       `json:"player_id"`
	Before   entity.Stats `json:"before"`
	After    entity.Stats `json:"after"`
	Position int          `json:"position"`
	Card     *entity.Card `json:"card,omitempty"`
	Finished bool         `json:"finished"`
}

// Perform runs one of the three player actions for the active player.
func (that *Engine) Perform(game *entity.Game, action Action) (Outcome, error) {
	if err := game.ConfirmOngoingState(); err != nil {
		return Outcome{}, err
	}

	player, err := game.ActivePlayer()
	if err != nil {
		return Outcome{}, err
	}

	outcome := Outcome{Action: action, PlayerID: player.ID, Before: player.Stats}

	switch action {
	case ActionWorkForCash:
		that.workForCash(player)
	case ActionBuild:
		if err = that.build(game, player); err != nil {
			return Outcome{}, err
		}
	case ActionDrawCard:
		card, err := that.drawCard(player)
		if err != nil {
			return Outcome{}, err
		}
		game.SelectedCard = &card
		outcome.Card = &card
	default:
		return Outcome{}, fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action)
	}

	outcome.After = player.Stats
	outcome.Position = player.Position
	outcome.Finished = game.IsFinished()

	return outcome, nil
}

func (that *Engine) workForCash(player *entity.Player) {
	player.Stats.Cash += WorkBasePayout + WorkPayoutPerSkill*player.Skills.Operations
	player.Stats.Energy = max(entity.MinEnergy, player.Stats.Energy-WorkEnergyCost)
}

func (that *Engine) build(game *entity.Game, player *entity.Player) error {
	if game.LastPosition() < 0 {
		return fmt.Errorf("%w: board is empty", apperror.ErrInvalidPosition)
	}

	if player.Stats.Cash < BuildCashCost {
		return fmt.Errorf("%w: build costs %d, cash is %d", apperror.ErrInsufficientFunds, BuildCashCost, player.Stats.Cash)
	}

	player.Stats.Cash -= BuildCashCost
	player.Stats.Energy = max(entity.MinEnergy, player.Stats.Energy-BuildEnergyCost)

	from := player.Position
	that.moveTo(game, player, min(player.Position+buildPositionAdvance, game.LastPosition()))

	if that.rules.ApplyTileEffects && player.Position != from {
		if tile, ok := game.TileAt(player.Position); ok && len(tile.Effects) > 0 {
			that.resolve(game, player, tile.Effects, 0)
		}
	}

	return nil
}

func (that *Engine) drawCard(player *entity.Player) (entity.Card, error) {
	eligible := that.catalog.EligibleCards(player.Phase)
	if len(eligible) == 0 {
		return entity.Card{}, fmt.Errorf("%w: phase %s", apperror.ErrNoEligibleCard, player.Phase)
	}

	return eligible[that.intn(len(eligible))], nil
}

// moveTo places the player, re-derives phases and finishes the game on the last tile.
func (that *Engine) moveTo(game *entity.Game, player *entity.Player, position int) {
	player.Position = position

	if tile, ok := game.TileAt(position); ok {
		player.Phase = tile.Phase
	}

	game.GamePhase = leadingPhase(game)

	if position == game.LastPosition() && game.Winner == "" {
		game.Winner = player.ID
	}
}

func leadingPhase(game *entity.Game) entity.Phase {
	phase := game.GamePhase
	for _, player := range game.Players {
		if player.Phase.Rank() > phase.Rank() {
			phase = player.Phase
		}
	}

	return phase
}

// MovePlayer places a player on a later tile; positions never go backwards.
func (that *Engine) MovePlayer(game *entity.Game, playerID string, position int) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	player, err := game.PlayerByID(playerID)
	if err != nil {
		return err
	}

	if position < player.Position || position > game.LastPosition() {
		return fmt.Errorf("%w: %d (current %d, last %d)", apperror.ErrInvalidPosition, position, player.Position, game.LastPosition())
	}

	that.moveTo(game, player, position)

	return nil
}

// StatsPatch is a partial stats update; nil fields are left alone.
type StatsPatch struct {
	Cash       *int `json:"cash,omitempty"`
	MRR        *int `json:"mrr,omitempty"`
	Energy     *int `json:"energy,omitempty"`
	Reputation *int `json:"reputation,omitempty"`
	BurnRate   *int `json:"burn_rate,omitempty"`
	Users      *int `json:"users,omitempty"`
}

func (that *Engine) UpdatePlayerStats(game *entity.Game, playerID string, patch StatsPatch) error {
	if err := game.ConfirmOngoingState(); err != nil {
		return err
	}

	player, err := game.PlayerByID(playerID)
	if err != nil {
		return err
	}

	stats := player.Stats
	if patch.Cash != nil {
		stats.Cash = *patch.Cash
	}
	if patch.MRR != nil {
		stats.MRR = *patch.MRR
	}
	if patch.Energy != nil {
		stats.Energy = *patch.Energy
	}
	if patch.Reputation != nil {
		stats.Reputation = *patch.Reputation
	}
	if patch.BurnRate != nil {
		stats.BurnRate = *patch.BurnRate
	}
	if patch.Users != nil {
		stats.Users = *patch.Users
	}

	player.Stats = stats.Normalize()

	return nil
}
