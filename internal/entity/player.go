package entity

type Archetype string

const (
	ArchetypeDeveloper    Archetype = "developer"
	ArchetypeDesigner     Archetype = "designer"
	ArchetypeGrowthHacker Archetype = "growth-hacker"
	ArchetypeOperator     Archetype = "operator"
)

// Phase is a coarse progression stage used to filter cards and tiles.
type Phase string

const (
	PhaseIndieHustler Phase = "indie-hustler"
	PhaseLaunch       Phase = "launch"
	PhaseGrowth       Phase = "growth"
	PhaseExit         Phase = "exit"
)

var phaseOrder = map[Phase]int{
	PhaseIndieHustler: 0,
	PhaseLaunch:       1,
	PhaseGrowth:       2,
	PhaseExit:         3,
}

// Rank returns the position of the phase in the progression, -1 if unknown.
func (that Phase) Rank() int {
	rank, ok := phaseOrder[that]
	if !ok {
		return -1
	}

	return rank
}

const (
	MinEnergy = 0
	MaxEnergy = 100
	MinUsers  = 0
	MinSkill  = 0
)

type Stats struct {
	Cash       int `json:"cash"`
	MRR        int `json:"mrr"`
	Energy     int `json:"energy"`
	Reputation int `json:"reputation"`
	BurnRate   int `json:"burn_rate"`
	Users      int `json:"users"`
}

// Normalize clamps energy to [MinEnergy, MaxEnergy] and users to MinUsers.
func (that Stats) Normalize() Stats {
	that.Energy = max(MinEnergy, min(MaxEnergy, that.Energy))
	that.Users = max(MinUsers, that.Users)

	return that
}

type Skill string

const (
	SkillDevelopment Skill = "development"
	SkillDesign      Skill = "design"
	SkillGrowth      Skill = "growth"
	SkillOperations  Skill = "operations"
)

type Skills struct {
	Development int `json:"development"`
	Design      int `json:"design"`
	Growth      int `json:"growth"`
	Operations  int `json:"operations"`
}

// Add shifts the named skill by delta, never below MinSkill. Unknown names are ignored.
func (that Skills) Add(skill Skill, delta int) Skills {
	switch skill {
	case SkillDevelopment:
		that.Development = max(MinSkill, that.Development+delta)
	case SkillDesign:
		that.Design = max(MinSkill, that.Design+delta)
	case SkillGrowth:
		that.Growth = max(MinSkill, that.Growth+delta)
	case SkillOperations:
		that.Operations = max(MinSkill, that.Operations+delta)
	}

	return that
}

const ProductTypeSaaS = "saas"

type Product struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	Quality int    `json:"quality"`
	Users   int    `json:"users"`
	MRR     int    `json:"mrr"`
}

type Player struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Archetype Archetype `json:"archetype"`
	Position  int       `json:"position"`
	Phase     Phase     `json:"phase"`
	Stats     Stats     `json:"stats"`
	Skills    Skills    `json:"skills"`
	Products  []Product `json:"products"`
	Cards     []Card    `json:"cards"`
}

func (that *Player) Clone() *Player {
	clone := *that
	clone.Products = append([]Product{}, that.Products...)
	clone.Cards = append([]Card{}, that.Cards...)

	return &clone
}
