package journey

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(rules Rules) *Engine {
	return New(catalog.New(), rand.New(rand.NewSource(42)), rules)
}

// newActiveGame returns a started game with one player per archetype given.
func newActiveGame(t *testing.T, engine *Engine, archetypes ...entity.Archetype) *entity.Game {
	t.Helper()

	game := engine.NewGame("game-1")
	for i, archetype := range archetypes {
		player, err := engine.NewPlayer(string(rune('a'+i)), "Founder", archetype)
		require.NoError(t, err)
		require.NoError(t, engine.AddPlayer(game, player))
	}

	require.NoError(t, engine.Start(game))

	return game
}

func TestEngine_NewPlayer(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Seeds stats and skills", func(t *testing.T) {
		// When: a designer is created
		player, err := engine.NewPlayer("p1", "  Ada  ", entity.ArchetypeDesigner)

		// Then: defaults come from the rules and the archetype
		require.NoError(t, err)
		assert.Equal(t, "Ada", player.Name)
		assert.Equal(t, 0, player.Position)
		assert.Equal(t, entity.PhaseIndieHustler, player.Phase)
		assert.Equal(t, entity.Stats{Cash: 5000, Energy: 100, BurnRate: 500}, player.Stats)
		assert.Equal(t, entity.Skills{Development: 1, Design: 3, Growth: 1, Operations: 1}, player.Skills)
		assert.Empty(t, player.Products)
		assert.Empty(t, player.Cards)
	})

	t.Run("Rejects unknown archetype", func(t *testing.T) {
		_, err := engine.NewPlayer("p1", "Ada", "wizard")

		assert.ErrorIs(t, err, apperror.ErrUnknownArchetype)
	})

	t.Run("Rejects blank name", func(t *testing.T) {
		_, err := engine.NewPlayer("p1", "   ", entity.ArchetypeDesigner)

		assert.ErrorIs(t, err, apperror.ErrInvalidName)
	})
}

func TestEngine_Lifecycle(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Start without players returns ErrNoPlayers", func(t *testing.T) {
		game := engine.NewGame("g")

		err := engine.Start(game)

		require.ErrorIs(t, err, apperror.ErrNoPlayers)
		assert.False(t, game.IsGameActive)
	})

	t.Run("Start twice returns ErrGameAlreadyStarted", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

		assert.ErrorIs(t, engine.Start(game), apperror.ErrGameAlreadyStarted)
		assert.True(t, game.IsGameActive)
	})

	t.Run("Players cannot join an active game", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		late, err := engine.NewPlayer("late", "Late", entity.ArchetypeOperator)
		require.NoError(t, err)

		assert.ErrorIs(t, engine.AddPlayer(game, late), apperror.ErrGameAlreadyStarted)
		assert.Len(t, game.Players, 1)
	})

	t.Run("Player ids are unique within a game", func(t *testing.T) {
		// Given: a game in setup with player p1
		game := engine.NewGame("g")
		first, err := engine.NewPlayer("p1", "Ada", entity.ArchetypeDeveloper)
		require.NoError(t, err)
		require.NoError(t, engine.AddPlayer(game, first))

		// When: another player with the same id joins
		twin, err := engine.NewPlayer("p1", "Grace", entity.ArchetypeOperator)
		require.NoError(t, err)
		err = engine.AddPlayer(game, twin)

		// Then: the join is rejected and the roster is unchanged
		require.ErrorIs(t, err, apperror.ErrPlayerAlreadyExists)
		require.Len(t, game.Players, 1)
		assert.Equal(t, "Ada", game.Players[0].Name)
	})

	t.Run("Actions require an active game", func(t *testing.T) {
		game := engine.NewGame("g")

		_, err := engine.Perform(game, ActionWorkForCash)
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

		_, err = engine.PlayCard(game, "beta-users")
		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)

		assert.ErrorIs(t, engine.NextTurn(game), apperror.ErrGameIsNotStarted)
	})
}

func TestParseAction(t *testing.T) {
	for name, want := range map[string]Action{
		"work-for-cash": ActionWorkForCash,
		"freelance":     ActionWorkForCash,
		"build":         ActionBuild,
		"draw-card":     ActionDrawCard,
	} {
		action, err := ParseAction(name)
		require.NoError(t, err)
		assert.Equal(t, want, action)
	}

	_, err := ParseAction("nap")
	assert.ErrorIs(t, err, apperror.ErrUnknownAction)
}

func TestEngine_WorkForCash(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Pays by operations skill and costs energy", func(t *testing.T) {
		// Given: a developer with cash 5000, energy 100 and operations 1
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

		// When: the player works for cash
		outcome, err := engine.Perform(game, ActionWorkForCash)

		// Then: cash is 6200 and energy 85
		require.NoError(t, err)
		assert.Equal(t, 6200, game.Players[0].Stats.Cash)
		assert.Equal(t, 85, game.Players[0].Stats.Energy)
		assert.Equal(t, 5000, outcome.Before.Cash)
		assert.Equal(t, 6200, outcome.After.Cash)
	})

	t.Run("Energy floors at zero", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeOperator)
		game.Players[0].Stats.Energy = 5

		_, err := engine.Perform(game, ActionWorkForCash)

		require.NoError(t, err)
		assert.Equal(t, 0, game.Players[0].Stats.Energy)
		assert.Equal(t, 5000+1000+600, game.Players[0].Stats.Cash)
	})

	t.Run("Only the active player changes", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper, entity.ArchetypeDesigner)
		other := *game.Players[1]

		_, err := engine.Perform(game, ActionWorkForCash)

		require.NoError(t, err)
		assert.Equal(t, other.Stats, game.Players[1].Stats)
	})
}

func TestEngine_Build(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Costs cash and energy and advances one tile", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

		outcome, err := engine.Perform(game, ActionBuild)

		require.NoError(t, err)
		player := game.Players[0]
		assert.Equal(t, 4500, player.Stats.Cash)
		assert.Equal(t, 90, player.Stats.Energy)
		assert.Equal(t, 1, player.Position)
		assert.Equal(t, 1, outcome.Position)
		assert.False(t, outcome.Finished)
	})

	t.Run("Insufficient funds leaves the player unchanged", func(t *testing.T) {
		// Given: a player with cash 400
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Stats.Cash = 400
		before := *game.Players[0]

		// When: the player builds
		_, err := engine.Perform(game, ActionBuild)

		// Then: an insufficient funds error is returned and nothing moved
		require.ErrorIs(t, err, apperror.ErrInsufficientFunds)
		assert.Equal(t, 400, game.Players[0].Stats.Cash)
		assert.Equal(t, before.Position, game.Players[0].Position)
		assert.Equal(t, before.Stats, game.Players[0].Stats)
	})

	t.Run("Exactly enough cash ends at zero", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Stats.Cash = BuildCashCost

		_, err := engine.Perform(game, ActionBuild)

		require.NoError(t, err)
		assert.Equal(t, 0, game.Players[0].Stats.Cash)
	})

	t.Run("Crossing into a new phase updates player and game phase", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Position = 4

		_, err := engine.Perform(game, ActionBuild)

		require.NoError(t, err)
		assert.Equal(t, 5, game.Players[0].Position)
		assert.Equal(t, entity.PhaseLaunch, game.Players[0].Phase)
		assert.Equal(t, entity.PhaseLaunch, game.GamePhase)
	})

	t.Run("Reaching the last tile finishes the game", func(t *testing.T) {
		// Given: a player one tile before the exit
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Position = game.LastPosition() - 1

		// When: the player builds
		outcome, err := engine.Perform(game, ActionBuild)

		// Then: the game is finished with that player as winner
		require.NoError(t, err)
		assert.True(t, outcome.Finished)
		assert.Equal(t, game.LastPosition(), game.Players[0].Position)
		assert.Equal(t, game.Players[0].ID, game.Winner)
		assert.Equal(t, entity.PhaseExit, game.GamePhase)

		// And: further actions are rejected
		_, err = engine.Perform(game, ActionWorkForCash)
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
		assert.ErrorIs(t, engine.NextTurn(game), apperror.ErrGameFinished)
	})

	t.Run("Position never passes the last tile", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Stats.Cash = 1_000_000

		for i := 0; i < 40 && game.IsOngoing(); i++ {
			_, err := engine.Perform(game, ActionBuild)
			require.NoError(t, err)
			assert.LessOrEqual(t, game.Players[0].Position, game.LastPosition())
		}

		assert.Equal(t, game.LastPosition(), game.Players[0].Position)
	})

	t.Run("Rejects building on an empty board", func(t *testing.T) {
		// Given: a catalog without board tiles
		bare := New(catalog.NewWith(catalog.New().Archetypes(), catalog.New().Cards(), nil), rand.New(rand.NewSource(1)), DefaultRules())
		game := newActiveGame(t, bare, entity.ArchetypeDeveloper)
		before := game.Players[0].Stats

		// When: the player builds
		_, err := bare.Perform(game, ActionBuild)

		// Then: the action is rejected and the player is untouched
		require.ErrorIs(t, err, apperror.ErrInvalidPosition)
		assert.Equal(t, 0, game.Players[0].Position)
		assert.Equal(t, before, game.Players[0].Stats)
		assert.ErrorIs(t, bare.MovePlayer(game, game.Players[0].ID, 0), apperror.ErrInvalidPosition)
	})

	t.Run("Tile effects apply when enabled", func(t *testing.T) {
		rules := DefaultRules()
		rules.ApplyTileEffects = true
		withTiles := newTestEngine(rules)

		// Given: a player about to land on the late night coding crisis (energy -10)
		game := newActiveGame(t, withTiles, entity.ArchetypeDeveloper)
		game.Players[0].Position = 1

		// When: the player builds
		_, err := withTiles.Perform(game, ActionBuild)

		// Then: both build and tile energy costs apply
		require.NoError(t, err)
		assert.Equal(t, 80, game.Players[0].Stats.Energy)
	})
}

func TestEngine_DrawCard(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Draws only cards eligible for the player phase", func(t *testing.T) {
		for _, phase := range []entity.Phase{entity.PhaseIndieHustler, entity.PhaseLaunch, entity.PhaseGrowth} {
			game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
			game.Players[0].Phase = phase
			stats := game.Players[0].Stats

			for i := 0; i < 50; i++ {
				outcome, err := engine.Perform(game, ActionDrawCard)
				require.NoError(t, err)

				require.NotNil(t, game.SelectedCard)
				assert.True(t, game.SelectedCard.Phase == "" || game.SelectedCard.Phase == phase)
				assert.Equal(t, game.SelectedCard.ID, outcome.Card.ID)
				assert.Equal(t, stats, game.Players[0].Stats)
			}
		}
	})

	t.Run("Returns ErrNoEligibleCard when nothing matches", func(t *testing.T) {
		// Given: a catalog whose only card belongs to the growth phase
		cat := catalog.NewWith(
			catalog.New().Archetypes(),
			[]entity.Card{{ID: "only-growth", Phase: entity.PhaseGrowth, Effects: []entity.Effect{{Type: entity.EffectCash, Value: 1}}}},
			catalog.New().Board(),
		)
		narrow := New(cat, rand.New(rand.NewSource(1)), DefaultRules())
		game := newActiveGame(t, narrow, entity.ArchetypeDeveloper)

		// When: an indie hustler draws
		_, err := narrow.Perform(game, ActionDrawCard)

		// Then: the draw is rejected and nothing is selected
		require.ErrorIs(t, err, apperror.ErrNoEligibleCard)
		assert.Nil(t, game.SelectedCard)
	})
}

func TestEngine_PlayCard(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Beta users applies effects and cost", func(t *testing.T) {
		// Given: cash 1000, users 0, reputation 0 and beta-users under consideration
		game := newActiveGame(t, engine, entity.ArchetypeDesigner)
		game.Players[0].Stats.Cash = 1000
		require.NoError(t, engine.SelectCard(game, "beta-users"))

		// When: the card is played
		outcome, err := engine.PlayCard(game, "beta-users")

		// Then: cash 500, users 50, reputation 15 and no selected card
		require.NoError(t, err)
		stats := game.Players[0].Stats
		assert.Equal(t, 500, stats.Cash)
		assert.Equal(t, 50, stats.Users)
		assert.Equal(t, 15, stats.Reputation)
		assert.Nil(t, game.SelectedCard)
		assert.Equal(t, "beta-users", outcome.Card.ID)
	})

	t.Run("Unknown card returns ErrCardNotFound", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDesigner)
		before := *game.Players[0]

		_, err := engine.PlayCard(game, "unicorn-round")

		require.ErrorIs(t, err, apperror.ErrCardNotFound)
		assert.Equal(t, before.Stats, game.Players[0].Stats)
	})

	t.Run("Unaffordable card returns ErrInsufficientFunds", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDesigner)
		game.Players[0].Stats.Cash = 2999

		_, err := engine.PlayCard(game, "hire-developer")

		require.ErrorIs(t, err, apperror.ErrInsufficientFunds)
		assert.Equal(t, 2999, game.Players[0].Stats.Cash)
		assert.Empty(t, game.Pending)
	})

	t.Run("Skill effect on a card raises the named skill", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDesigner)
		game.Players[0].Stats.Cash = 10000

		_, err := engine.PlayCard(game, "hire-developer")

		require.NoError(t, err)
		assert.Equal(t, 3, game.Players[0].Skills.Development)
	})

	t.Run("Skill effect without a name hits the primary skill", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeOperator)

		_, err := engine.PlayCard(game, "cofounder-leaves")

		require.NoError(t, err)
		assert.Equal(t, 2, game.Players[0].Skills.Operations)
	})
}

func TestEngine_SelectAndDismiss(t *testing.T) {
	engine := newTestEngine(DefaultRules())
	game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

	assert.ErrorIs(t, engine.DismissCard(game), apperror.ErrNoCardSelected)
	assert.ErrorIs(t, engine.SelectCard(game, "nope"), apperror.ErrCardNotFound)

	require.NoError(t, engine.SelectCard(game, "hn-surge"))
	assert.Equal(t, "hn-surge", game.SelectedCard.ID)

	require.NoError(t, engine.DismissCard(game))
	assert.Nil(t, game.SelectedCard)
}

func TestEngine_NextTurn(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Single player starts a new round each turn", func(t *testing.T) {
		// Given: one player on turn 1
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

		// When: the turn ends
		require.NoError(t, engine.NextTurn(game))

		// Then: the same player is active on turn 2
		assert.Equal(t, 0, game.CurrentPlayer)
		assert.Equal(t, 2, game.CurrentTurn)
	})

	t.Run("A full rotation returns to the same player and adds one round", func(t *testing.T) {
		game := newActiveGame(t, engine,
			entity.ArchetypeDeveloper, entity.ArchetypeDesigner, entity.ArchetypeGrowthHacker, entity.ArchetypeOperator)
		require.NoError(t, engine.NextTurn(game))

		start, turn := game.CurrentPlayer, game.CurrentTurn
		for i := 0; i < len(game.Players); i++ {
			require.NoError(t, engine.NextTurn(game))
		}

		assert.Equal(t, start, game.CurrentPlayer)
		assert.Equal(t, turn+1, game.CurrentTurn)
	})

	t.Run("Clears the selected card", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper, entity.ArchetypeDesigner)
		require.NoError(t, engine.SelectCard(game, "freelance-gig"))

		require.NoError(t, engine.NextTurn(game))

		assert.Nil(t, game.SelectedCard)
		assert.Equal(t, 1, game.CurrentPlayer)
		assert.Equal(t, 1, game.CurrentTurn)
	})

	t.Run("Returns ErrNoPlayers on an empty active game", func(t *testing.T) {
		game := engine.NewGame("g")
		game.IsGameActive = true

		assert.ErrorIs(t, engine.NextTurn(game), apperror.ErrNoPlayers)
	})
}

func TestEngine_ScheduledEffects(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Delayed effect applies on its due round", func(t *testing.T) {
		// Given: a single player who plays the newsletter (mrr +100 after 2 rounds)
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		_, err := engine.PlayCard(game, "newsletter-launch")
		require.NoError(t, err)

		// Then: reputation applies now, mrr waits
		assert.Equal(t, 10, game.Players[0].Stats.Reputation)
		assert.Equal(t, 0, game.Players[0].Stats.MRR)

		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 0, game.Players[0].Stats.MRR)

		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 100, game.Players[0].Stats.MRR)
		assert.Empty(t, game.Pending)

		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 100, game.Players[0].Stats.MRR)
	})

	t.Run("Duration effect repeats then expires", func(t *testing.T) {
		// Given: a player with cash 10000 hiring a developer (cost 3000, -1000 for 3 rounds)
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Stats.Cash = 10000

		_, err := engine.PlayCard(game, "hire-developer")
		require.NoError(t, err)
		assert.Equal(t, 6000, game.Players[0].Stats.Cash)

		// When: rounds pass
		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 5000, game.Players[0].Stats.Cash)

		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 4000, game.Players[0].Stats.Cash)

		// Then: the salary stops after three payments without refund
		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 4000, game.Players[0].Stats.Cash)
		assert.Empty(t, game.Pending)
	})

	t.Run("Only the owning player receives the effect", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper, entity.ArchetypeDesigner)
		game.Players[0].Stats.Cash = 10000
		_, err := engine.PlayCard(game, "partnership-deal")
		require.NoError(t, err)

		// When: the round wraps
		require.NoError(t, engine.NextTurn(game))
		assert.Equal(t, 0, game.Players[0].Stats.MRR)
		require.NoError(t, engine.NextTurn(game))

		// Then: the first player gets mrr, the second does not
		assert.Equal(t, 500, game.Players[0].Stats.MRR)
		assert.Equal(t, 0, game.Players[1].Stats.MRR)
	})
}

func TestEngine_MovePlayer(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	t.Run("Moves forward and re-derives the phase", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)

		require.NoError(t, engine.MovePlayer(game, game.Players[0].ID, 11))

		assert.Equal(t, 11, game.Players[0].Position)
		assert.Equal(t, entity.PhaseGrowth, game.Players[0].Phase)
		assert.Equal(t, entity.PhaseGrowth, game.GamePhase)
	})

	t.Run("Rejects backwards and out of board moves", func(t *testing.T) {
		game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		game.Players[0].Position = 3

		assert.ErrorIs(t, engine.MovePlayer(game, game.Players[0].ID, 2), apperror.ErrInvalidPosition)
		assert.ErrorIs(t, engine.MovePlayer(game, game.Players[0].ID, 99), apperror.ErrInvalidPosition)
		assert.ErrorIs(t, engine.MovePlayer(game, "ghost", 4), apperror.ErrPlayerNotFound)
		assert.Equal(t, 3, game.Players[0].Position)
	})
}

func TestEngine_UpdatePlayerStats(t *testing.T) {
	engine := newTestEngine(DefaultRules())
	game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
	energy, users, cash := 250, -10, 42

	err := engine.UpdatePlayerStats(game, game.Players[0].ID, StatsPatch{Energy: &energy, Users: &users, Cash: &cash})

	require.NoError(t, err)
	assert.Equal(t, entity.Stats{Cash: 42, Energy: 100, Users: 0, BurnRate: 500}, game.Players[0].Stats)

	t.Run("Rejected before start", func(t *testing.T) {
		// Given: a game still in setup
		setup := engine.NewGame("g")
		player, err := engine.NewPlayer("p1", "Ada", entity.ArchetypeDeveloper)
		require.NoError(t, err)
		require.NoError(t, engine.AddPlayer(setup, player))

		// When: stats are patched
		err = engine.UpdatePlayerStats(setup, "p1", StatsPatch{Cash: &cash})

		// Then: the patch is refused
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Equal(t, 5000, setup.Players[0].Stats.Cash)
	})

	t.Run("Rejected after the game is won", func(t *testing.T) {
		finished := newActiveGame(t, engine, entity.ArchetypeDeveloper)
		require.NoError(t, engine.MovePlayer(finished, finished.Players[0].ID, finished.LastPosition()))
		require.True(t, finished.IsFinished())

		err := engine.UpdatePlayerStats(finished, finished.Players[0].ID, StatsPatch{Cash: &cash})

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}
