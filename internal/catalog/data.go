package catalog

import "github.com/rocketscienceinc/startup-journey/internal/entity"

func defaultArchetypes() map[entity.Archetype]ArchetypeInfo {
	return map[entity.Archetype]ArchetypeInfo{
		entity.ArchetypeDeveloper: {
			Name:           "The Developer",
			Description:    "Builds MVPs faster and handles technical challenges better",
			StartingSkills: entity.Skills{Development: 3, Design: 1, Growth: 1, Operations: 1},
			PrimarySkill:   entity.SkillDevelopment,
			Bonus:          "+25% build speed, -50% technical crisis impact",
		},
		entity.ArchetypeDesigner: {
			Name:           "The Designer",
			Description:    "Creates beautiful products with higher conversion rates",
			StartingSkills: entity.Skills{Development: 1, Design: 3, Growth: 1, Operations: 1},
			PrimarySkill:   entity.SkillDesign,
			Bonus:          "+25% user conversion, +50% brand reputation gain",
		},
		entity.ArchetypeGrowthHacker: {
			Name:           "The Growth Hacker",
			Description:    "Acquires users at lower costs and scales faster",
			StartingSkills: entity.Skills{Development: 1, Design: 1, Growth: 3, Operations: 1},
			PrimarySkill:   entity.SkillGrowth,
			Bonus:          "+50% user acquisition, -25% marketing costs",
		},
		entity.ArchetypeOperator: {
			Name:           "The Operator",
			Description:    "Manages resources efficiently with lower burn rates",
			StartingSkills: entity.Skills{Development: 1, Design: 1, Growth: 1, Operations: 3},
			PrimarySkill:   entity.SkillOperations,
			Bonus:          "-25% burn rate, +25% team efficiency",
		},
	}
}

func opportunityCards() []entity.Card {
	return []entity.Card{
		{
			ID:          "newsletter-launch",
			Title:       "Launch Newsletter",
			Description: "Start building an audience with regular content updates",
			Type:        entity.CardTypeOpportunity,
			Effects: []entity.Effect{
				{Type: entity.EffectMRR, Value: 100, Delay: 2},
				{Type: entity.EffectReputation, Value: 10},
			},
			Tags:  []string{"passive_income", "content", "audience"},
			Phase: entity.PhaseIndieHustler,
		},
		{
			ID:          "freelance-gig",
			Title:       "Premium Freelance Gig",
			Description: "High-paying client work to fund your startup",
			Type:        entity.CardTypeOpportunity,
			Effects: []entity.Effect{
				{Type: entity.EffectCash, Value: 2000},
				{Type: entity.EffectEnergy, Value: -15},
			},
			Tags:  []string{"income", "burnout_risk"},
			Phase: entity.PhaseIndieHustler,
		},
		{
			ID:          "beta-users",
			Title:       "Beta User Program",
			Description: "Early adopters provide feedback and initial traction",
			Type:        entity.CardTypeOpportunity,
			Cost:        500,
			Effects: []entity.Effect{
				{Type: entity.EffectUsers, Value: 50},
				{Type: entity.EffectReputation, Value: 15},
			},
			Tags:  []string{"validation", "community"},
			Phase: entity.PhaseLaunch,
		},
		{
			ID:          "tech-blog-feature",
			Title:       "Tech Blog Feature",
			Description: "Get featured on a popular tech publication",
			Type:        entity.CardTypeOpportunity,
			Effects: []entity.Effect{
				{Type: entity.EffectUsers, Value: 500},
				{Type: entity.EffectReputation, Value: 25},
			},
			Tags:  []string{"press", "viral"},
			Phase: entity.PhaseLaunch,
		},
		{
			ID:          "partnership-deal",
			Title:       "Strategic Partnership",
			Description: "Partner with complementary service for mutual growth",
			Type:        entity.CardTypeOpportunity,
			Cost:        1000,
			Effects: []entity.Effect{
				{Type: entity.EffectMRR, Value: 500, Delay: 1},
				{Type: entity.EffectUsers, Value: 200},
			},
			Tags:  []string{"partnership", "growth"},
			Phase: entity.PhaseGrowth,
		},
		{
			ID:          "hire-developer",
			Title:       "Hire Star Developer",
			Description: "Bring on technical talent to accelerate development",
			Type:        entity.CardTypeOpportunity,
			Cost:        3000,
			Effects: []entity.Effect{
				{Type: entity.EffectSkill, Value: 2, Skill: entity.SkillDevelopment},
				// monthly salary
				{Type: entity.EffectCash, Value: -1000, Duration: 3},
			},
			Tags:  []string{"team", "scaling"},
			Phase: entity.PhaseGrowth,
		},
	}
}

func eventCards() []entity.Card {
	return []entity.Card{
		{
			ID:          "hn-surge",
			Title:       "Hacker News Surge",
			Description: "Your post went viral! Massive traffic incoming.",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectUsers, Value: 1000},
				{Type: entity.EffectReputation, Value: 30},
			},
			Tags:  []string{"viral", "traffic"},
			Phase: entity.PhaseLaunch,
		},
		{
			ID:          "api-deprecation",
			Title:       "API Deprecation",
			Description: "Critical API you depend on is shutting down",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectEnergy, Value: -20},
				{Type: entity.EffectCash, Value: -1500},
			},
			Tags:  []string{"crisis", "technical"},
			Phase: entity.PhaseGrowth,
		},
		{
			ID:          "cofounder-leaves",
			Title:       "Co-founder Departure",
			Description: "Your co-founder decided to pursue other opportunities",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectEnergy, Value: -25},
				{Type: entity.EffectSkill, Value: -1},
				{Type: entity.EffectReputation, Value: -15},
			},
			Tags:  []string{"crisis", "team"},
			Phase: entity.PhaseGrowth,
		},
		{
			ID:          "funding-rejected",
			Title:       "Funding Rejected",
			Description: "Investors passed on your pitch. Time to bootstrap.",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectEnergy, Value: -15},
				{Type: entity.EffectReputation, Value: -10},
			},
			Tags:  []string{"funding", "rejection"},
			Phase: entity.PhaseGrowth,
		},
		{
			ID:          "security-breach",
			Title:       "Security Incident",
			Description: "Data breach! Emergency response mode activated.",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectUsers, Value: -200},
				{Type: entity.EffectReputation, Value: -30},
				{Type: entity.EffectCash, Value: -2000},
			},
			Tags:  []string{"crisis", "security"},
			Phase: entity.PhaseGrowth,
		},
		{
			ID:          "burnout-warning",
			Title:       "Burnout Warning",
			Description: "You're working too hard. Time to rest or face consequences.",
			Type:        entity.CardTypeEvent,
			Effects: []entity.Effect{
				{Type: entity.EffectEnergy, Value: -30},
			},
			Tags:  []string{"burnout", "health"},
			Phase: entity.PhaseIndieHustler,
		},
	}
}

func gameBoard() []entity.Tile {
	return []entity.Tile{
		{ID: "start", Type: entity.TileStart, Title: "The Idea", Description: "Your entrepreneurial journey begins", Phase: entity.PhaseIndieHustler, Position: 0},
		{ID: "first-code", Type: entity.TileMilestone, Title: "First Lines of Code", Description: "You start building your MVP", Phase: entity.PhaseIndieHustler, Position: 1},
		{ID: "burnout-1", Type: entity.TileCrisis, Title: "Late Night Coding", Description: "Working too hard takes its toll", Phase: entity.PhaseIndieHustler, Position: 2, Effects: []entity.Effect{{Type: entity.EffectEnergy, Value: -10}}},
		{ID: "validation", Type: entity.TileOpportunity, Title: "Idea Validation", Description: "Get feedback from potential users", Phase: entity.PhaseIndieHustler, Position: 3},
		{ID: "mvp-complete", Type: entity.TileMilestone, Title: "MVP Complete", Description: "Your minimum viable product is ready", Phase: entity.PhaseIndieHustler, Position: 4},

		{ID: "launch-day", Type: entity.TileMilestone, Title: "Launch Day", Description: "Your product goes live to the world", Phase: entity.PhaseLaunch, Position: 5},
		{ID: "first-user", Type: entity.TileMilestone, Title: "First User", Description: "Someone actually uses your product!", Phase: entity.PhaseLaunch, Position: 6},
		{ID: "bug-reports", Type: entity.TileCrisis, Title: "Bug Reports Flood In", Description: "Users found issues you missed", Phase: entity.PhaseLaunch, Position: 7, Effects: []entity.Effect{{Type: entity.EffectEnergy, Value: -15}}},
		{ID: "product-hunt", Type: entity.TileOpportunity, Title: "Product Hunt Launch", Description: "Feature your product to early adopters", Phase: entity.PhaseLaunch, Position: 8},
		{ID: "hundred-users", Type: entity.TileMilestone, Title: "100 Users!", Description: "Reached your first major user milestone", Phase: entity.PhaseLaunch, Position: 9},

		{ID: "growth-mode", Type: entity.TileMilestone, Title: "Growth Mode", Description: "Time to scale your user base", Phase: entity.PhaseGrowth, Position: 10},
		{ID: "first-revenue", Type: entity.TileMilestone, Title: "First Revenue", Description: "Someone paid for your product!", Phase: entity.PhaseGrowth, Position: 11},
		{ID: "competition", Type: entity.TileCrisis, Title: "Competitor Launch", Description: "A well-funded competitor enters your space", Phase: entity.PhaseGrowth, Position: 12, Effects: []entity.Effect{{Type: entity.EffectUsers, Value: -50}}},
		{ID: "thousand-users", Type: entity.TileMilestone, Title: "1,000 Users", Description: "Significant user base achieved", Phase: entity.PhaseGrowth, Position: 13},
		{ID: "team-growth", Type: entity.TileOpportunity, Title: "Team Expansion", Description: "Consider hiring your first employees", Phase: entity.PhaseGrowth, Position: 14},

		{ID: "exit-decision", Type: entity.TileMilestone, Title: "Exit Decision", Description: "Choose your path forward", Phase: entity.PhaseExit, Position: 15},
	}
}
