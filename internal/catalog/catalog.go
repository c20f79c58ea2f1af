// Package catalog holds the static game data: archetypes, cards and the board.
package catalog

import (
	"fmt"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

type ArchetypeInfo struct {
	Name           string        `json:"name"`
	Description    string        `json:"description"`
	StartingSkills entity.Skills `json:"starting_skills"`
	PrimarySkill   entity.Skill  `json:"primary_skill"`
	// Bonus is display text only, no multiplier is applied from it.
	Bonus string `json:"bonus"`
}

// View is the read-only catalog as shown to players.
type View struct {
	Archetypes map[entity.Archetype]ArchetypeInfo `json:"archetypes"`
	Cards      []entity.Card                      `json:"cards"`
	Board      []entity.Tile                      `json:"board"`
}

type Catalog struct {
	archetypes map[entity.Archetype]ArchetypeInfo
	cards      []entity.Card
	cardsByID  map[string]int
	board      []entity.Tile
}

// New returns the default catalog.
func New() *Catalog {
	return NewWith(defaultArchetypes(), append(opportunityCards(), eventCards()...), gameBoard())
}

// NewWith builds a catalog over custom data; card ids must be unique.
func NewWith(archetypes map[entity.Archetype]ArchetypeInfo, cards []entity.Card, board []entity.Tile) *Catalog {
	byID := make(map[string]int, len(cards))
	for i, card := range cards {
		byID[card.ID] = i
	}

	return &Catalog{
		archetypes: archetypes,
		cards:      cards,
		cardsByID:  byID,
		board:      board,
	}
}

func (that *Catalog) Archetype(archetype entity.Archetype) (ArchetypeInfo, error) {
	info, ok := that.archetypes[archetype]
	if !ok {
		return ArchetypeInfo{}, fmt.Errorf("%w: %s", apperror.ErrUnknownArchetype, archetype)
	}

	return info, nil
}

func (that *Catalog) Archetypes() map[entity.Archetype]ArchetypeInfo {
	out := make(map[entity.Archetype]ArchetypeInfo, len(that.archetypes))
	for key, info := range that.archetypes {
		out[key] = info
	}

	return out
}

// Cards returns the combined opportunity and event cards in catalog order.
func (that *Catalog) Cards() []entity.Card {
	return append([]entity.Card(nil), that.cards...)
}

func (that *Catalog) CardByID(id string) (entity.Card, error) {
	i, ok := that.cardsByID[id]
	if !ok {
		return entity.Card{}, fmt.Errorf("%w: %s", apperror.ErrCardNotFound, id)
	}

	return that.cards[i], nil
}

// EligibleCards returns the cards drawable in the given phase.
func (that *Catalog) EligibleCards(phase entity.Phase) []entity.Card {
	eligible := make([]entity.Card, 0, len(that.cards))
	for i := range that.cards {
		if that.cards[i].EligibleFor(phase) {
			eligible = append(eligible, that.cards[i])
		}
	}

	return eligible
}

// Board returns the tile sequence; position equals index.
func (that *Catalog) Board() []entity.Tile {
	return append([]entity.Tile(nil), that.board...)
}

// View returns copies of archetypes, cards and board.
func (that *Catalog) View() View {
	return View{
		Archetypes: that.Archetypes(),
		Cards:      that.Cards(),
		Board:      that.Board(),
	}
}
