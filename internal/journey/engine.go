// Package journey holds the rules that move a game from one state to the next.
// Functions mutate the game they are given; callers own snapshotting.
package journey

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

type Rules struct {
	StartingCash     int
	StartingEnergy   int
	StartingBurnRate int
	ApplyTileEffects bool
}

func DefaultRules() Rules {
	return Rules{
		StartingCash:     5000,
		StartingEnergy:   entity.MaxEnergy,
		StartingBurnRate: 500,
	}
}

type Engine struct {
	catalog *catalog.Catalog
	rules   Rules

	rngMutex sync.Mutex
	rng      *rand.Rand
}

func New(cat *catalog.Catalog, rng *rand.Rand, rules Rules) *Engine {
	return &Engine{
		catalog: cat,
		rules:   rules,
		rng:     rng,
	}
}

func (that *Engine) Catalog() *catalog.Catalog {
	return that.catalog
}

// NewGame returns an inactive, player-less game over the catalog board.
func (that *Engine) NewGame(id string) *entity.Game {
	return entity.NewGame(id, that.catalog.Board())
}

// NewPlayer builds a player at the start tile with archetype skills.
func (that *Engine) NewPlayer(id, name string, archetype entity.Archetype) (*entity.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.ErrInvalidName
	}

	info, err := that.catalog.Archetype(archetype)
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	phase := entity.PhaseIndieHustler
	if board := that.catalog.Board(); len(board) > 0 {
		phase = board[0].Phase
	}

	return &entity.Player{
		ID:        id,
		Name:      name,
		Archetype: archetype,
		Position:  0,
		Phase:     phase,
		Stats: entity.Stats{
			Cash:     that.rules.StartingCash,
			Energy:   that.rules.StartingEnergy,
			BurnRate: that.rules.StartingBurnRate,
		}.Normalize(),
		Skills:   info.StartingSkills,
		Products: []entity.Product{},
		Cards:    []entity.Card{},
	}, nil
}

func (that *Engine) intn(n int) int {
	that.rngMutex.Lock()
	defer that.rngMutex.Unlock()

	return that.rng.Intn(n)
}
