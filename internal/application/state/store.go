// Package state holds the single authoritative store for cross-scene
// data: the player, the NPC roster, progression flags, and the current
// map. Scenes read it freely; cross-scene mutation flows through the
// event bus handlers registered here, which keeps a single writer per
// field in the single-threaded loop.
package state

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/domain/entity"
	"github.com/younwookim/tinymon/internal/infrastructure/storage"
)

// SaveVersion is written into every serialized blob.
const SaveVersion = "1"

// FlagFirstBattleWon is set by the battle-complete handler the first time
// the player wins any battle.
const FlagFirstBattleWon = "first_battle_won"

// Defaults are the static tables the store is built from and restored to
// on Reset.
type Defaults struct {
	Player     entity.Player
	NPCs       []entity.NPC
	Flags      map[string]bool
	CurrentMap string
}

// Store is the game state store. One instance lives for the whole game;
// tests construct their own.
type Store struct {
	bus      *event.Bus
	blob     storage.Store
	saveKey  string
	defaults Defaults

	player     entity.Player
	npcs       []*entity.NPC // registration order, used for collision tie-breaks
	npcByID    map[string]*entity.NPC
	flags      map[string]bool
	currentMap string
}

// New creates a store from the default tables and registers its event
// handlers on the bus. blob may be nil when persistence is unused (tests).
func New(bus *event.Bus, blob storage.Store, saveKey string, defaults Defaults) *Store {
	s := &Store{
		bus:      bus,
		blob:     blob,
		saveKey:  saveKey,
		defaults: defaults,
	}
	s.applyDefaults()

	event.Subscribe(bus, event.TopicBattleComplete, s.onBattleComplete)
	event.Subscribe(bus, event.TopicNPCDefeated, func(e event.NPCDefeated) {
		s.SetNPCDefeated(e.NPCID)
	})

	return s
}

func (s *Store) applyDefaults() {
	s.player = clonePlayer(s.defaults.Player)
	s.npcs = make([]*entity.NPC, 0, len(s.defaults.NPCs))
	s.npcByID = make(map[string]*entity.NPC, len(s.defaults.NPCs))
	for _, npc := range s.defaults.NPCs {
		n := npc
		n.Pokemon = append([]string(nil), npc.Pokemon...)
		s.npcs = append(s.npcs, &n)
		s.npcByID[n.ID] = &n
	}
	s.flags = make(map[string]bool, len(s.defaults.Flags))
	for k, v := range s.defaults.Flags {
		s.flags[k] = v
	}
	s.currentMap = s.defaults.CurrentMap
}

func clonePlayer(p entity.Player) entity.Player {
	p.Roster = append([]entity.PokemonConfig(nil), p.Roster...)
	p.Badges = append([]string(nil), p.Badges...)
	return p
}

// onBattleComplete marks the NPC defeated on a win and credits rewards.
// Rewards apply only on the first win against a trainer; the defeated
// flag is monotonic.
func (s *Store) onBattleComplete(e event.BattleComplete) {
	if e.Result != event.ResultWin {
		return
	}
	npc, ok := s.npcByID[e.NPCID]
	if ok && !npc.Defeated {
		npc.Defeated = true
		if e.MoneyGained != 0 {
			s.AddMoney(e.MoneyGained)
		}
	} else if !ok {
		log.Printf("state: battle:complete for unknown npc %q", e.NPCID)
	}
	if !s.flags[FlagFirstBattleWon] {
		s.flags[FlagFirstBattleWon] = true
	}
}

// GetPlayer returns a copy of the player record.
func (s *Store) GetPlayer() entity.Player { return clonePlayer(s.player) }

// GetPlayerName returns the player's display name.
func (s *Store) GetPlayerName() string { return s.player.Name }

// GetPlayerPokemon returns the ordered roster. Callers must copy before
// mutating entries.
func (s *Store) GetPlayerPokemon() []entity.PokemonConfig { return s.player.Roster }

// SetPlayerPokemon replaces the roster wholesale. An empty roster is
// accepted but logged; the battle scene guards against it.
func (s *Store) SetPlayerPokemon(roster []entity.PokemonConfig) {
	if len(roster) == 0 {
		log.Printf("state: player roster set to empty")
	}
	s.player.Roster = roster
}

// GetPlayerPosition returns the player's world position.
func (s *Store) GetPlayerPosition() entity.Position { return s.player.Position }

// SetPlayerPosition records the player's world position. Written by the
// world scene on exit.
func (s *Store) SetPlayerPosition(pos entity.Position) { s.player.Position = pos }

// GetMoney returns the current balance.
func (s *Store) GetMoney() int { return s.player.Money }

// AddMoney applies a delta to the balance. Negative deltas are allowed
// but the balance clamps at zero.
func (s *Store) AddMoney(amount int) {
	s.player.Money += amount
	if s.player.Money < 0 {
		log.Printf("state: money clamped to 0 (delta %d)", amount)
		s.player.Money = 0
	}
}

// GetNPC returns the NPC with the given id.
func (s *Store) GetNPC(id string) (*entity.NPC, bool) {
	npc, ok := s.npcByID[id]
	return npc, ok
}

// GetNPCs returns all NPCs in registration order.
func (s *Store) GetNPCs() []*entity.NPC { return s.npcs }

// IsNPCDefeated reports whether the trainer has been beaten. Unknown ids
// read as false.
func (s *Store) IsNPCDefeated(id string) bool {
	npc, ok := s.npcByID[id]
	return ok && npc.Defeated
}

// SetNPCDefeated marks a trainer as beaten. Idempotent; unknown ids are
// logged and ignored.
func (s *Store) SetNPCDefeated(id string) {
	npc, ok := s.npcByID[id]
	if !ok {
		log.Printf("state: unknown npc %q", id)
		return
	}
	npc.Defeated = true
}

// GetNPCDialogue returns the post-defeat line if the trainer is beaten,
// otherwise the pre-battle line. Unknown ids return the empty string.
func (s *Store) GetNPCDialogue(id string) string {
	npc, ok := s.npcByID[id]
	if !ok {
		return ""
	}
	return npc.Dialogue()
}

// GetFlag reads a progression flag; absent keys read as false.
func (s *Store) GetFlag(key string) bool { return s.flags[key] }

// SetFlag writes a progression flag.
func (s *Store) SetFlag(key string, value bool) { s.flags[key] = value }

// GetCurrentMap returns the current map id.
func (s *Store) GetCurrentMap() string { return s.currentMap }

// SetCurrentMap sets the current map id.
func (s *Store) SetCurrentMap(id string) { s.currentMap = id }

// Reset restores all four sections to the static defaults.
func (s *Store) Reset() {
	s.applyDefaults()
}

// saveBlob is the serialized save format.
type saveBlob struct {
	Version    string                `json:"version"`
	Player     entity.Player         `json:"player"`
	NPCs       map[string]entity.NPC `json:"npcs"`
	Flags      map[string]bool       `json:"flags"`
	CurrentMap string                `json:"currentMap"`
}

// Serialize renders the four sections as a JSON blob.
func (s *Store) Serialize() (string, error) {
	blob := saveBlob{
		Version:    SaveVersion,
		Player:     s.player,
		NPCs:       make(map[string]entity.NPC, len(s.npcs)),
		Flags:      s.flags,
		CurrentMap: s.currentMap,
	}
	for _, npc := range s.npcs {
		blob.NPCs[npc.ID] = *npc
	}

	data, err := json.MarshalIndent(blob, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize state: %w", err)
	}
	return string(data), nil
}

// Deserialize restores state from a serialized blob. On any failure the
// in-memory state is left untouched.
func (s *Store) Deserialize(data string) error {
	var blob saveBlob
	if err := json.Unmarshal([]byte(data), &blob); err != nil {
		log.Printf("state: malformed save blob: %v", err)
		return fmt.Errorf("failed to parse save blob: %w", err)
	}
	if blob.Version != SaveVersion {
		log.Printf("state: unsupported save version %q", blob.Version)
		return fmt.Errorf("unsupported save version %q", blob.Version)
	}

	s.player = blob.Player
	// Merge NPC state by id so registration order is preserved
	for _, npc := range s.npcs {
		if saved, ok := blob.NPCs[npc.ID]; ok {
			*npc = saved
		}
	}
	for id := range blob.NPCs {
		if _, ok := s.npcByID[id]; !ok {
			log.Printf("state: save blob references unknown npc %q", id)
		}
	}
	if blob.Flags != nil {
		s.flags = blob.Flags
	} else {
		s.flags = make(map[string]bool)
	}
	s.currentMap = blob.CurrentMap
	return nil
}

// Save serializes and writes to the blob store, emitting game:save on
// success.
func (s *Store) Save() error {
	if s.blob == nil {
		return fmt.Errorf("no save store configured")
	}
	data, err := s.Serialize()
	if err != nil {
		return err
	}
	if err := s.blob.Put(s.saveKey, data); err != nil {
		return err
	}
	event.Emit(s.bus, event.TopicGameSaved, event.GameSaved{})
	return nil
}

// Load reads from the blob store and restores state, emitting game:load
// on success. Failures leave state untouched.
func (s *Store) Load() error {
	if s.blob == nil {
		return fmt.Errorf("no save store configured")
	}
	data, err := s.blob.Get(s.saveKey)
	if err != nil {
		return err
	}
	if err := s.Deserialize(data); err != nil {
		return err
	}
	event.Emit(s.bus, event.TopicGameLoaded, event.GameLoaded{})
	return nil
}
