package journey

import (
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

// resolve applies the immediate part of effects to player, queues the rest and charges cost.
// Stats go through ApplyEffects; skills and products are updated alongside.
//
// Delay d: first application on round currentTurn+d.
// Duration n: applied n times in total, once per round, then dropped without revert.
func (that *Engine) resolve(game *entity.Game, player *entity.Player, effects []entity.Effect, cost int) {
	primary := that.primarySkill(player)

	for _, effect := range effects {
		times := max(1, effect.Duration)

		if !effect.IsImmediate() {
			game.Pending = append(game.Pending, entity.ScheduledEffect{
				PlayerID:  player.ID,
				DueTurn:   game.CurrentTurn + effect.Delay,
				Effect:    effect,
				Remaining: times,
			})

			continue
		}

		applyCollectionEffect(player, effect, primary)

		if times > 1 {
			game.Pending = append(game.Pending, entity.ScheduledEffect{
				PlayerID:  player.ID,
				DueTurn:   game.CurrentTurn + 1,
				Effect:    effect,
				Remaining: times - 1,
			})
		}
	}

	player.Stats = ApplyEffects(player.Stats, effects, cost)
}

// drainPending applies every entry due on or before the current round, in queue order.
func (that *Engine) drainPending(game *entity.Game) {
	if len(game.Pending) == 0 {
		return
	}

	kept := make([]entity.ScheduledEffect, 0, len(game.Pending))
	for _, scheduled := range game.Pending {
		if scheduled.DueTurn > game.CurrentTurn {
			kept = append(kept, scheduled)
			continue
		}

		player, err := game.PlayerByID(scheduled.PlayerID)
		if err != nil {
			continue
		}

		applyEffect(player, scheduled.Effect, that.primarySkill(player))

		scheduled.Remaining--
		if scheduled.Remaining > 0 {
			scheduled.DueTurn = game.CurrentTurn + 1
			kept = append(kept, scheduled)
		}
	}

	if len(kept) == 0 {
		kept = nil
	}

	game.Pending = kept
}

func (that *Engine) primarySkill(player *entity.Player) entity.Skill {
	info, err := that.catalog.Archetype(player.Archetype)
	if err != nil {
		return entity.SkillDevelopment
	}

	return info.PrimarySkill
}
