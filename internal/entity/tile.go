package entity

type TileType string

const (
	TileStart       TileType = "start"
	TileMilestone   TileType = "milestone"
	TileCrisis      TileType = "crisis"
	TileOpportunity TileType = "opportunity"
	TileEvent       TileType = "event"
)

type Tile struct {
	ID          string   `json:"id"`
	Type        TileType `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Phase       Phase    `json:"phase"`
	Position    int      `json:"position"`
	Effects     []Effect `json:"effects,omitempty"`
}
