package config

// SettingsConfig is the root config for game.json
type SettingsConfig struct {
	Display  DisplayConfig  `json:"display"`
	Dialogue DialogueConfig `json:"dialogue"`
	Battle   BattleConfig   `json:"battle"`
	World    WorldConfig    `json:"world"`
	Player   PlayerConfig   `json:"player"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type DialogueConfig struct {
	CharsPerSecond float64 `json:"charsPerSecond"`
}

// BattleConfig holds the narrative pacing of the battle scene.
// Delays are in seconds.
type BattleConfig struct {
	NarrationDelay float64 `json:"narrationDelay"` // pause between a hit landing and the next turn
	EndDelay       float64 `json:"endDelay"`       // pause after the winner line before leaving
	SlideSpeed     float64 `json:"slideSpeed"`     // sprite slide-in, fraction per second
}

type WorldConfig struct {
	MoveSpeed      float64 `json:"moveSpeed"` // pixels per second
	PlayerWidth    float64 `json:"playerWidth"`
	PlayerHeight   float64 `json:"playerHeight"`
	PreBattleDelay float64 `json:"preBattleDelay"` // after dialogue closes, before the flash
	FlashDuration  float64 `json:"flashDuration"`
	PostFlashDelay float64 `json:"postFlashDelay"` // after the flash, before the transition
	StartMap       string  `json:"startMap"`
}

// PlayerConfig is the new-game default player.
type PlayerConfig struct {
	Name   string   `json:"name"`
	Roster []string `json:"roster"` // species keys
	SpawnX float64  `json:"spawnX"`
	SpawnY float64  `json:"spawnY"`
	Money  int      `json:"money"`
}

// PokemonSetConfig is the root config for pokemon.json
type PokemonSetConfig struct {
	Species map[string]SpeciesConfig `json:"species"`
}

type SpeciesConfig struct {
	Name   string       `json:"name"`
	Level  int          `json:"level"`
	Stats  StatsConfig  `json:"stats"`
	Moves  []MoveConfig `json:"moves"`
	Sprite string       `json:"sprite,omitempty"`
}

type StatsConfig struct {
	MaxHP   int `json:"maxHp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

type MoveConfig struct {
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Type     string `json:"type,omitempty"`
	Accuracy int    `json:"accuracy,omitempty"`
}

// NPCSetConfig is the root config for npcs.json. Slice order is the NPC
// registration order used for collision tie-breaks.
type NPCSetConfig struct {
	NPCs []NPCConfig `json:"npcs"`
}

type NPCConfig struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Title          string    `json:"title,omitempty"`
	Pokemon        []string  `json:"pokemon"`
	WorldSprite    string    `json:"worldSprite,omitempty"`
	BattleSprite   string    `json:"battleSprite,omitempty"`
	PreBattleText  string    `json:"preBattleText"`
	PostDefeatText string    `json:"postDefeatText"`
	Reward         Reward    `json:"reward"`
	Placement      Placement `json:"placement"`
}

type Reward struct {
	Money int `json:"money"`
	Exp   int `json:"exp"`
}

type Placement struct {
	MapID string  `json:"mapId"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w"`
	H     float64 `json:"h"`
}

// MapConfig is the root config for map JSON files. The core consumes only
// the spawn points and the rects of layers marked as collision.
type MapConfig struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Width       float64       `json:"width"`
	Height      float64       `json:"height"`
	SpawnPoints []SpawnConfig `json:"spawnPoints"`
	Layers      []LayerConfig `json:"layers"`
}

type SpawnConfig struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type LayerConfig struct {
	Name      string       `json:"name"`
	Collision bool         `json:"collision"`
	Rects     []RectConfig `json:"rects"`
}

type RectConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}
