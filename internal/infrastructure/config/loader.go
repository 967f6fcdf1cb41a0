package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Settings *SettingsConfig
	Pokemon  *PokemonSetConfig
	NPCs     *NPCSetConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadSettings loads game.json
func (l *Loader) LoadSettings() (*SettingsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	var cfg SettingsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	return &cfg, nil
}

// LoadPokemon loads pokemon.json
func (l *Loader) LoadPokemon() (*PokemonSetConfig, error) {
	data, err := fs.ReadFile(l.fsys, "pokemon.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read pokemon.json: %w", err)
	}

	var cfg PokemonSetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse pokemon.json: %w", err)
	}

	return &cfg, nil
}

// LoadNPCs loads npcs.json
func (l *Loader) LoadNPCs() (*NPCSetConfig, error) {
	data, err := fs.ReadFile(l.fsys, "npcs.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read npcs.json: %w", err)
	}

	var cfg NPCSetConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse npcs.json: %w", err)
	}

	return &cfg, nil
}

// LoadMap loads a map JSON file
func (l *Loader) LoadMap(name string) (*MapConfig, error) {
	path := "maps/" + name + ".json"
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read map %s: %w", name, err)
	}

	var cfg MapConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse map %s: %w", name, err)
	}

	return &cfg, nil
}

// LoadAll loads all base configurations (settings, pokemon, npcs)
func (l *Loader) LoadAll() (*GameConfig, error) {
	settings, err := l.LoadSettings()
	if err != nil {
		return nil, err
	}

	pokemon, err := l.LoadPokemon()
	if err != nil {
		return nil, err
	}

	npcs, err := l.LoadNPCs()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Settings: settings,
		Pokemon:  pokemon,
		NPCs:     npcs,
	}, nil
}
