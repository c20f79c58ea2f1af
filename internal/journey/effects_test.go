package journey

import (
	"math/rand"
	"testing"

	"github.com/rocketscienceinc/startup-journey/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyEffects(t *testing.T) {
	t.Run("Adds cash, mrr and reputation without bounds", func(t *testing.T) {
		// Given: a stat bundle and unbounded effects
		stats := entity.Stats{Cash: 100, MRR: 10, Reputation: 5}
		effects := []entity.Effect{
			{Type: entity.EffectCash, Value: -500},
			{Type: entity.EffectMRR, Value: 90},
			{Type: entity.EffectReputation, Value: -30},
		}

		// When: the effects are applied
		result := ApplyEffects(stats, effects, 0)

		// Then: values move freely, including below zero
		assert.Equal(t, -400, result.Cash)
		assert.Equal(t, 100, result.MRR)
		assert.Equal(t, -25, result.Reputation)
	})

	t.Run("Clamps energy and floors users", func(t *testing.T) {
		stats := entity.Stats{Energy: 95, Users: 10}

		result := ApplyEffects(stats, []entity.Effect{
			{Type: entity.EffectEnergy, Value: 20},
			{Type: entity.EffectUsers, Value: -50},
		}, 0)

		assert.Equal(t, entity.MaxEnergy, result.Energy)
		assert.Equal(t, 0, result.Users)
	})

	t.Run("Clamps each step in order", func(t *testing.T) {
		// Given: energy that overflows and then drops
		stats := entity.Stats{Energy: 90}

		// When: +30 then -20 is applied
		result := ApplyEffects(stats, []entity.Effect{
			{Type: entity.EffectEnergy, Value: 30},
			{Type: entity.EffectEnergy, Value: -20},
		}, 0)

		// Then: the intermediate clamp to 100 is kept
		assert.Equal(t, 80, result.Energy)
	})

	t.Run("Charges the card cost after effects without re-validation", func(t *testing.T) {
		stats := entity.Stats{Cash: 100}

		result := ApplyEffects(stats, []entity.Effect{{Type: entity.EffectCash, Value: -300}}, 500)

		assert.Equal(t, -700, result.Cash)
	})

	t.Run("Ignores skill and product effects", func(t *testing.T) {
		stats := entity.Stats{Cash: 100, Energy: 50}

		result := ApplyEffects(stats, []entity.Effect{
			{Type: entity.EffectSkill, Value: 2},
			{Type: entity.EffectProduct, Value: 1},
		}, 0)

		assert.Equal(t, stats, result)
	})

	t.Run("Energy and users stay in range for arbitrary input", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		types := []entity.EffectType{entity.EffectEnergy, entity.EffectUsers, entity.EffectCash}

		for i := 0; i < 500; i++ {
			stats := entity.Stats{Energy: rng.Intn(101), Users: rng.Intn(1000)}

			effects := make([]entity.Effect, 1+rng.Intn(6))
			for j := range effects {
				effects[j] = entity.Effect{Type: types[rng.Intn(len(types))], Value: rng.Intn(4001) - 2000}
			}

			result := ApplyEffects(stats, effects, rng.Intn(1000))

			assert.GreaterOrEqual(t, result.Energy, entity.MinEnergy)
			assert.LessOrEqual(t, result.Energy, entity.MaxEnergy)
			assert.GreaterOrEqual(t, result.Users, entity.MinUsers)
		}
	})
}

func TestApplyEffect_Collections(t *testing.T) {
	t.Run("Skill effect targets the named skill", func(t *testing.T) {
		player := &entity.Player{Skills: entity.Skills{Development: 1}}

		applyEffect(player, entity.Effect{Type: entity.EffectSkill, Value: 2, Skill: entity.SkillDevelopment}, entity.SkillDesign)

		assert.Equal(t, 3, player.Skills.Development)
		assert.Equal(t, 0, player.Skills.Design)
	})

	t.Run("Skill effect without a name targets the primary skill and floors at zero", func(t *testing.T) {
		player := &entity.Player{Skills: entity.Skills{Growth: 1}}

		applyEffect(player, entity.Effect{Type: entity.EffectSkill, Value: -3}, entity.SkillGrowth)

		assert.Equal(t, 0, player.Skills.Growth)
	})

	t.Run("Product effect launches and retires products", func(t *testing.T) {
		player := &entity.Player{ID: "p1", Products: []entity.Product{}}

		applyEffect(player, entity.Effect{Type: entity.EffectProduct, Value: 4}, entity.SkillDesign)
		applyEffect(player, entity.Effect{Type: entity.EffectProduct, Value: 2}, entity.SkillDesign)

		assert.Len(t, player.Products, 2)
		assert.Equal(t, 4, player.Products[0].Quality)
		assert.Equal(t, entity.ProductTypeSaaS, player.Products[1].Type)

		applyEffect(player, entity.Effect{Type: entity.EffectProduct, Value: -1}, entity.SkillDesign)

		assert.Len(t, player.Products, 1)
		assert.Equal(t, "p1-product-1", player.Products[0].ID)
	})
}

func TestApplyEffects_MatchesCardPlay(t *testing.T) {
	engine := newTestEngine(DefaultRules())

	for _, cardID := range []string{"newsletter-launch", "hire-developer", "partnership-deal", "security-breach"} {
		t.Run(cardID, func(t *testing.T) {
			// Given: a rich player and the card from the catalog
			game := newActiveGame(t, engine, entity.ArchetypeDeveloper)
			game.Players[0].Stats.Cash = 10000
			card, err := engine.Catalog().CardByID(cardID)
			require.NoError(t, err)

			// When: the card is resolved directly and played through the engine
			expected := ApplyEffects(game.Players[0].Stats, card.Effects, card.Cost)
			_, err = engine.PlayCard(game, cardID)
			require.NoError(t, err)

			// Then: both paths leave the same stats
			assert.Equal(t, expected, game.Players[0].Stats)
		})
	}

	t.Run("Delayed effects are left to the schedule", func(t *testing.T) {
		card, err := engine.Catalog().CardByID("newsletter-launch")
		require.NoError(t, err)

		result := ApplyEffects(entity.Stats{}, card.Effects, 0)

		assert.Equal(t, 0, result.MRR)
		assert.Equal(t, 10, result.Reputation)
	})
}
