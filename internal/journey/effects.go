package journey

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

// ApplyEffects resolves the immediate stat effects in order and then charges cardCost.
// Delayed effects belong to the round schedule and are skipped, as are skill and
// product effects, which do not touch stats.
func ApplyEffects(stats entity.Stats, effects []entity.Effect, cardCost int) entity.Stats {
	for _, effect := range effects {
		if !effect.IsImmediate() {
			continue
		}

		stats = applyStatEffect(stats, effect)
	}

	stats.Cash -= cardCost

	return stats
}

func applyStatEffect(stats entity.Stats, effect entity.Effect) entity.Stats {
	switch effect.Type {
	case entity.EffectCash:
		stats.Cash += effect.Value
	case entity.EffectMRR:
		stats.MRR += effect.Value
	case entity.EffectEnergy:
		stats.Energy = max(entity.MinEnergy, min(entity.MaxEnergy, stats.Energy+effect.Value))
	case entity.EffectReputation:
		stats.Reputation += effect.Value
	case entity.EffectUsers:
		stats.Users = max(entity.MinUsers, stats.Users+effect.Value)
	}

	return stats
}

// applyEffect applies a single effect to the whole player, collections included.
func applyEffect(player *entity.Player, effect entity.Effect, primary entity.Skill) {
	if !applyCollectionEffect(player, effect, primary) {
		player.Stats = applyStatEffect(player.Stats, effect)
	}
}

// applyCollectionEffect handles skill and product effects and reports whether effect was one.
func applyCollectionEffect(player *entity.Player, effect entity.Effect, primary entity.Skill) bool {
	switch effect.Type {
	case entity.EffectSkill:
		skill := effect.Skill
		if skill == "" {
			skill = primary
		}
		player.Skills = player.Skills.Add(skill, effect.Value)
	case entity.EffectProduct:
		applyProductEffect(player, effect.Value)
	default:
		return false
	}

	return true
}

// applyProductEffect launches a product for a positive value and retires the newest one otherwise.
func applyProductEffect(player *entity.Player, value int) {
	if value > 0 {
		player.Products = append(player.Products, entity.Product{
			ID:      fmt.Sprintf("%s-product-%d", player.ID, len(player.Products)+1),
			Name:    fmt.Sprintf("Product #%d", len(player.Products)+1),
			Type:    entity.ProductTypeSaaS,
			Quality: value,
		})

		return
	}

	if len(player.Products) > 0 {
		player.Products = player.Products[:len(player.Products)-1]
	}
}
