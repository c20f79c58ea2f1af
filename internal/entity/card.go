package entity

type CardType string

const (
	CardTypeOpportunity CardType = "opportunity"
	CardTypeEvent       CardType = "event"
)

type EffectType string

const (
	EffectCash       EffectType = "cash"
	EffectMRR        EffectType = "mrr"
	EffectEnergy     EffectType = "energy"
	EffectReputation EffectType = "reputation"
	EffectUsers      EffectType = "users"
	EffectSkill      EffectType = "skill"
	EffectProduct    EffectType = "product"
)

// Effect is a single typed delta. Delay and Duration are counted in rounds.
type Effect struct {
	Type     EffectType `json:"type"`
	Value    int        `json:"value"`
	Delay    int        `json:"delay,omitempty"`
	Duration int        `json:"duration,omitempty"`

	// Skill names the skill a skill effect targets; empty means the archetype's primary skill.
	Skill Skill `json:"skill,omitempty"`
}

// IsImmediate reports whether the effect resolves at play time.
func (that Effect) IsImmediate() bool {
	return that.Delay <= 0
}

type Card struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        CardType `json:"type"`
	Cost        int      `json:"cost,omitempty"`
	Effects     []Effect `json:"effects"`
	Tags        []string `json:"tags"`
	Phase       Phase    `json:"phase,omitempty"`
}

// EligibleFor reports whether the card may be drawn by a player in the given phase.
func (that *Card) EligibleFor(phase Phase) bool {
	return that.Phase == "" || that.Phase == phase
}

// CanAfford reports whether cash covers the card cost.
func (that *Card) CanAfford(cash int) bool {
	return cash >= that.Cost
}
