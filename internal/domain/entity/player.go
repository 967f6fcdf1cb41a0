package entity

// Position is a world location on a named map.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	MapID string  `json:"mapId"`
}

// Player is the persistent player record. Mutated only through the game
// state store.
type Player struct {
	Name     string          `json:"name"`
	Roster   []PokemonConfig `json:"roster"` // ordered, 1-6 entries
	Position Position        `json:"position"`
	Money    int             `json:"money"`
	Badges   []string        `json:"badges,omitempty"`
}
