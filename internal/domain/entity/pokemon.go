// Package entity defines the domain records shared across scenes:
// pokemon species and battle instances, NPCs, the player, and the
// axis-aligned rectangles used for world collision.
package entity

import "math"

// Stats is the fixed stat block of a pokemon species.
type Stats struct {
	MaxHP   int `json:"maxHp"`
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
}

// Move is an attack usable in battle. Moves are immutable and shared by
// reference across instances of the same species.
type Move struct {
	Name     string `json:"name"`
	Power    int    `json:"power"`
	Type     string `json:"type,omitempty"`
	Accuracy int    `json:"accuracy,omitempty"` // reserved, unused by the damage formula
}

// PokemonConfig is the immutable species definition. Battle instances are
// created from it with NewPokemon.
type PokemonConfig struct {
	Name   string `json:"name"`
	Level  int    `json:"level"`
	Stats  Stats  `json:"stats"`
	Moves  []Move `json:"moves"`
	Sprite string `json:"sprite,omitempty"`
}

// Pokemon is a mutable battle instance of a species. It is owned by the
// scene that created it and discarded on scene reset.
type Pokemon struct {
	PokemonConfig
	CurrentHP int
	Fainted   bool
}

// NewPokemon creates a battle instance at full health.
func NewPokemon(cfg PokemonConfig) *Pokemon {
	return &Pokemon{
		PokemonConfig: cfg,
		CurrentHP:     cfg.Stats.MaxHP,
	}
}

// TakeDamage reduces HP, clamping at zero. Returns true only on the call
// that drops HP to zero; Fainted is set exactly once per drop-to-zero.
func (p *Pokemon) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	p.CurrentHP -= amount
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
	if p.CurrentHP == 0 && !p.Fainted {
		p.Fainted = true
		return true
	}
	return false
}

// Heal restores the instance to full health and clears the fainted flag.
func (p *Pokemon) Heal() {
	p.CurrentHP = p.Stats.MaxHP
	p.Fainted = false
}

// GetMove returns the move at the given index, or false if no move is
// defined there.
func (p *Pokemon) GetMove(index int) (Move, bool) {
	if index < 0 || index >= len(p.Moves) {
		return Move{}, false
	}
	return p.Moves[index], true
}

// Damage computes battle damage:
//
//	levelFactor = (2 * attackerLevel) / 5 + 2
//	ratio       = attack / defense
//	baseDamage  = (levelFactor * movePower * ratio) / 50 + 2
//	damage      = floor(baseDamage * randFactor)
//
// randFactor is expected in [0.85, 1.00). A zero or negative defense is
// treated as 1 to keep the ratio finite.
func Damage(level, power, attack, defense int, randFactor float64) int {
	if power <= 0 {
		return 0
	}
	if defense < 1 {
		defense = 1
	}
	levelFactor := float64(2*level)/5 + 2
	ratio := float64(attack) / float64(defense)
	base := levelFactor*float64(power)*ratio/50 + 2
	return int(math.Floor(base * randFactor))
}
