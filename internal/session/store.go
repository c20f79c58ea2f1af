// Package session owns one game snapshot and exposes the rule engine as atomic operations.
//
// Every operation works on a clone and replaces the snapshot only on success, so a
// failed operation leaves the state exactly as it was. A Store is not safe for
// concurrent use; callers serialize access per session.
package session

import (
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/rocketscienceinc/startup-journey/internal/journey"
	"github.com/rocketscienceinc/startup-journey/internal/pkg"
)

type Store struct {
	logger *slog.Logger
	engine *journey.Engine
	state  *entity.Game
}

// New returns a store holding an empty game in setup.
func New(logger *slog.Logger, engine *journey.Engine, id string) *Store {
	return &Store{
		logger: logger.With("component", "session", "session_id", id),
		engine: engine,
		state:  engine.NewGame(id),
	}
}

// Restore wraps a previously saved snapshot.
func Restore(logger *slog.Logger, engine *journey.Engine, game *entity.Game) *Store {
	return &Store{
		logger: logger.With("component", "session", "session_id", game.ID),
		engine: engine,
		state:  game,
	}
}

func (that *Store) ID() string {
	return that.state.ID
}

// Snapshot returns a deep copy of the current state.
func (that *Store) Snapshot() *entity.Game {
	return that.state.Clone()
}

func (that *Store) CreatePlayer(name string, archetype entity.Archetype) (*entity.Player, error) {
	var created *entity.Player

	err := that.commit("create player", func(game *entity.Game) error {
		player, err := that.engine.NewPlayer(pkg.GeneratePlayerID(), name, archetype)
		if err != nil {
			return err
		}

		if err = that.engine.AddPlayer(game, player); err != nil {
			return err
		}

		created = player.Clone()

		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (that *Store) StartGame() error {
	return that.commit("start game", that.engine.Start)
}

func (that *Store) PerformAction(action journey.Action) (journey.Outcome, error) {
	var outcome journey.Outcome

	err := that.commit("perform "+string(action), func(game *entity.Game) error {
		var err error
		outcome, err = that.engine.Perform(game, action)

		return err
	})

	return outcome, err
}

func (that *Store) PlayCard(cardID string) (journey.Outcome, error) {
	var outcome journey.Outcome

	err := that.commit("play card", func(game *entity.Game) error {
		var err error
		outcome, err = that.engine.PlayCard(game, cardID)

		return err
	})

	return outcome, err
}

func (that *Store) SelectCard(cardID string) error {
	return that.commit("select card", func(game *entity.Game) error {
		return that.engine.SelectCard(game, cardID)
	})
}

func (that *Store) DismissCard() error {
	return that.commit("dismiss card", that.engine.DismissCard)
}

func (that *Store) NextTurn() error {
	return that.commit("next turn", that.engine.NextTurn)
}

func (that *Store) MovePlayer(playerID string, position int) error {
	return that.commit("move player", func(game *entity.Game) error {
		return that.engine.MovePlayer(game, playerID, position)
	})
}

func (that *Store) UpdatePlayerStats(playerID string, patch journey.StatsPatch) error {
	return that.commit("update player stats", func(game *entity.Game) error {
		return that.engine.UpdatePlayerStats(game, playerID, patch)
	})
}

// ResetGame discards all players and progress; the session id is kept.
func (that *Store) ResetGame() {
	that.state = that.engine.NewGame(that.state.ID)

	that.logger.Debug("game reset")
}

// commit runs fn against a clone and swaps it in only when fn succeeds.
func (that *Store) commit(operation string, fn func(game *entity.Game) error) error {
	next := that.state.Clone()

	if err := fn(next); err != nil {
		return fmt.Errorf("failed to %s: %w", operation, err)
	}

	that.state = next

	that.logger.Debug("state committed",
		"operation", operation,
		"turn", next.CurrentTurn,
		"current_player", next.CurrentPlayer,
	)

	return nil
}
