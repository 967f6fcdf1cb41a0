package system

import (
	"log"

	"github.com/younwookim/tinymon/internal/domain/entity"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
)

// SpeciesTable maps species keys to their immutable definitions.
type SpeciesTable map[string]entity.PokemonConfig

// BuildSpeciesTable converts the pokemon document into domain records.
func BuildSpeciesTable(cfg *config.PokemonSetConfig) SpeciesTable {
	table := make(SpeciesTable, len(cfg.Species))
	for key, sp := range cfg.Species {
		moves := make([]entity.Move, 0, len(sp.Moves))
		for _, m := range sp.Moves {
			moves = append(moves, entity.Move{
				Name:     m.Name,
				Power:    m.Power,
				Type:     m.Type,
				Accuracy: m.Accuracy,
			})
		}
		table[key] = entity.PokemonConfig{
			Name:   sp.Name,
			Level:  sp.Level,
			Stats:  entity.Stats{MaxHP: sp.Stats.MaxHP, Attack: sp.Stats.Attack, Defense: sp.Stats.Defense},
			Moves:  moves,
			Sprite: sp.Sprite,
		}
	}
	return table
}

// Resolve maps species keys to configs, skipping (and logging) unknown
// keys.
func (t SpeciesTable) Resolve(keys []string) []entity.PokemonConfig {
	configs := make([]entity.PokemonConfig, 0, len(keys))
	for _, key := range keys {
		cfg, ok := t[key]
		if !ok {
			log.Printf("system: unknown species %q", key)
			continue
		}
		configs = append(configs, cfg)
	}
	return configs
}

// BuildNPCs converts the NPC document into domain records, preserving
// slice order as the registration order.
func BuildNPCs(cfg *config.NPCSetConfig) []entity.NPC {
	npcs := make([]entity.NPC, 0, len(cfg.NPCs))
	for _, n := range cfg.NPCs {
		npcs = append(npcs, entity.NPC{
			ID:             n.ID,
			Name:           n.Name,
			Title:          n.Title,
			Pokemon:        append([]string(nil), n.Pokemon...),
			WorldSprite:    n.WorldSprite,
			BattleSprite:   n.BattleSprite,
			PreBattleText:  n.PreBattleText,
			PostDefeatText: n.PostDefeatText,
			RewardMoney:    n.Reward.Money,
			RewardExp:      n.Reward.Exp,
		})
	}
	return npcs
}

// BuildDefaultPlayer creates the new-game player from settings.
func BuildDefaultPlayer(cfg *config.SettingsConfig, species SpeciesTable) entity.Player {
	return entity.Player{
		Name:   cfg.Player.Name,
		Roster: species.Resolve(cfg.Player.Roster),
		Position: entity.Position{
			X:     cfg.Player.SpawnX,
			Y:     cfg.Player.SpawnY,
			MapID: cfg.World.StartMap,
		},
		Money: cfg.Player.Money,
	}
}
