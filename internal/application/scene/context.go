package scene

import "github.com/younwookim/tinymon/internal/domain/entity"

// Context is the opaque key/value payload handed from a triggering scene
// to the target scene's Enter. Its schema is scene-pair-specific; every
// accessor tolerates a nil map and a missing or mistyped key.
type Context map[string]any

// Context keys used by the built-in scenes.
const (
	CtxNPCID         = "npcId"
	CtxNPCName       = "npcName"
	CtxNPCPokemon    = "npcPokemon"
	CtxPlayerPokemon = "playerPokemon"
	CtxLocation      = "location"
	CtxSpawn         = "spawn"
)

// String returns the string at key, or "" when absent or mistyped.
func (c Context) String(key string) string {
	if c == nil {
		return ""
	}
	v, _ := c[key].(string)
	return v
}

// Roster returns the pokemon config slice at key, or nil when absent.
func (c Context) Roster(key string) []entity.PokemonConfig {
	if c == nil {
		return nil
	}
	v, _ := c[key].([]entity.PokemonConfig)
	return v
}
