// Package world implements the overworld scene: player movement with
// collision, NPC encounters, and the hand-off into battle.
package world

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/tinymon/internal/application/dialogue"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/state"
	"github.com/younwookim/tinymon/internal/application/system"
	"github.com/younwookim/tinymon/internal/domain/entity"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
)

var (
	colorGround   = color.RGBA{92, 148, 92, 255}
	colorWall     = color.RGBA{70, 86, 70, 255}
	colorPlayer   = color.RGBA{200, 60, 60, 255}
	colorNPC      = color.RGBA{60, 60, 180, 255}
	colorNPCBeat  = color.RGBA{120, 120, 160, 255}
	colorFlash    = color.RGBA{255, 255, 255, 255}
)

// spawnFallback is used when neither a named spawn nor a stored position
// applies.
const spawnFallback = "start"

// npcZone is the world-space trigger area of a trainer.
type npcZone struct {
	mapID string
	rect  entity.Rect
}

// Scene is the overworld scene.
type Scene struct {
	bus      *event.Bus
	store    *state.Store
	cfg      *config.SettingsConfig
	loader   *config.Loader
	species  system.SpeciesTable
	zones    map[string]npcZone
	dialogue *dialogue.Controller
	sched    *scene.Scheduler
	settings *settingsOverlay

	maps map[string]system.MapView
	view system.MapView

	playerX, playerY float64
	spawnName        string

	// Encounter state
	frozen     bool
	activeNPC  string
	awaitClose bool    // post-defeat line, closed by Confirm
	flashTimer float64 // white-out before the battle transition
}

// New creates the world scene. Maps are fetched in Load from the loader,
// one per map id referenced by the start map or an NPC placement.
func New(bus *event.Bus, store *state.Store, cfg *config.SettingsConfig,
	loader *config.Loader, species system.SpeciesTable, npcs *config.NPCSetConfig) *Scene {

	s := &Scene{
		bus:      bus,
		store:    store,
		cfg:      cfg,
		loader:   loader,
		species:  species,
		zones:    make(map[string]npcZone),
		dialogue: dialogue.New(cfg.Dialogue.CharsPerSecond),
		sched:    scene.NewScheduler(),
		maps:     make(map[string]system.MapView),
	}
	s.settings = newSettingsOverlay(bus, store, s.syncPosition)

	if npcs != nil {
		for _, n := range npcs.NPCs {
			s.zones[n.ID] = npcZone{
				mapID: n.Placement.MapID,
				rect:  entity.Rect{X: n.Placement.X, Y: n.Placement.Y, W: n.Placement.W, H: n.Placement.H},
			}
		}
	}
	return s
}

// Load fetches every map referenced by the start map or an NPC placement.
func (s *Scene) Load() error {
	wanted := map[string]bool{s.cfg.World.StartMap: true}
	for _, zone := range s.zones {
		if zone.mapID != "" {
			wanted[zone.mapID] = true
		}
	}

	for id := range wanted {
		doc, err := s.loader.LoadMap(id)
		if err != nil {
			return err
		}
		s.maps[id] = system.BuildMapView(doc)
	}
	return nil
}

// Enter remembers the requested spawn point, if any.
func (s *Scene) Enter(ctx scene.Context) {
	s.spawnName = ctx.String(scene.CtxSpawn)
}

// Exit writes the player position back to the store so the next Setup
// (and any save) restores it.
func (s *Scene) Exit() {
	s.syncPosition()
	s.dialogue.ClearText()
	s.dialogue.Hide()
	s.sched.Clear()
}

func (s *Scene) syncPosition() {
	s.store.SetPlayerPosition(entity.Position{X: s.playerX, Y: s.playerY, MapID: s.view.ID})
	s.store.SetCurrentMap(s.view.ID)
}

// Reset clears all encounter state.
func (s *Scene) Reset() {
	s.frozen = false
	s.activeNPC = ""
	s.awaitClose = false
	s.flashTimer = 0
	s.sched.Clear()
	s.dialogue.ClearText()
	s.dialogue.Hide()
	s.settings.reset()
}

// Setup selects the current map and places the player: at the named
// spawn point when the transition asked for one, otherwise at the stored
// position, otherwise at the map's start spawn.
func (s *Scene) Setup() {
	mapID := s.store.GetCurrentMap()
	if mapID == "" {
		mapID = s.cfg.World.StartMap
	}
	view, ok := s.maps[mapID]
	if !ok {
		log.Printf("world: map %q not loaded", mapID)
	}
	s.view = view

	if s.spawnName != "" {
		if sp, ok := s.view.GetSpawnPoint(s.spawnName); ok {
			s.playerX, s.playerY = sp.X, sp.Y
			return
		}
		log.Printf("world: spawn point %q not found on map %q", s.spawnName, mapID)
	}

	pos := s.store.GetPlayerPosition()
	if pos.MapID == mapID {
		s.playerX, s.playerY = pos.X, pos.Y
		return
	}
	if sp, ok := s.view.GetSpawnPoint(spawnFallback); ok {
		s.playerX, s.playerY = sp.X, sp.Y
	}
}

func (s *Scene) playerRect() entity.Rect {
	return entity.Rect{X: s.playerX, Y: s.playerY, W: s.cfg.World.PlayerWidth, H: s.cfg.World.PlayerHeight}
}

// Update runs the settings overlay when open, the encounter flow while
// frozen, and free movement otherwise.
func (s *Scene) Update(dt float64, in system.Input) {
	if s.settings.isOpen() {
		s.settings.update(in)
		return
	}

	s.sched.Update(dt)
	s.dialogue.Update(dt)
	if s.flashTimer > 0 {
		s.flashTimer -= dt
	}

	if s.frozen {
		s.updateEncounter(in)
		return
	}

	if in.Cancel {
		s.settings.openOverlay()
		return
	}

	s.movePlayer(dt, in)
}

func (s *Scene) updateEncounter(in system.Input) {
	if !in.Confirm {
		return
	}
	if s.awaitClose && s.dialogue.IsComplete() {
		// Post-defeat line acknowledged
		s.dialogue.ClearText()
		s.dialogue.Hide()
		s.frozen = false
		s.awaitClose = false
		s.activeNPC = ""
		return
	}
	if !s.dialogue.IsComplete() {
		s.dialogue.SkipToEnd()
	}
}

// movePlayer applies held-arrow movement, resolves collisions against the
// map, and checks NPC trigger zones in registration order.
func (s *Scene) movePlayer(dt float64, in system.Input) {
	var dx, dy float64
	speed := s.cfg.World.MoveSpeed * dt
	if in.Left {
		dx -= speed
	}
	if in.Right {
		dx += speed
	}
	if in.Up {
		dy -= speed
	}
	if in.Down {
		dy += speed
	}
	if dx == 0 && dy == 0 {
		return
	}

	rect := s.playerRect().Moved(dx, dy)
	for _, c := range s.view.CollisionRects {
		if rect.Overlaps(c) {
			rect = rect.Moved(rect.ResolveOverlap(c))
		}
	}
	rect = s.clampToMap(rect)

	// First overlapping NPC in registration order wins
	for _, npc := range s.store.GetNPCs() {
		zone, ok := s.zones[npc.ID]
		if !ok || zone.mapID != s.view.ID {
			continue
		}
		if rect.Overlaps(zone.rect) {
			rect = rect.Moved(rect.ResolveOverlap(zone.rect))
			s.playerX, s.playerY = rect.X, rect.Y
			s.beginEncounter(npc)
			return
		}
	}

	s.playerX, s.playerY = rect.X, rect.Y
}

func (s *Scene) clampToMap(r entity.Rect) entity.Rect {
	if s.view.Width <= 0 || s.view.Height <= 0 {
		return r
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.X+r.W > s.view.Width {
		r.X = s.view.Width - r.W
	}
	if r.Y+r.H > s.view.Height {
		r.Y = s.view.Height - r.H
	}
	return r
}

// beginEncounter freezes the player and opens the trainer dialogue. A
// defeated trainer shows the post-defeat line; an undefeated one starts
// the battle intro.
func (s *Scene) beginEncounter(npc *entity.NPC) {
	s.frozen = true
	s.activeNPC = npc.ID
	s.dialogue.Show()

	if npc.Defeated {
		s.dialogue.DisplayTextImmediately(npc.PostDefeatText)
		s.awaitClose = true
		return
	}

	s.dialogue.DisplayText(npc.PreBattleText, s.schedulePreBattle)
}

// schedulePreBattle runs the delay / flash / delay choreography, then
// launches the battle.
func (s *Scene) schedulePreBattle() {
	s.sched.After(s.cfg.World.PreBattleDelay, func() {
		s.dialogue.Hide()
		s.flashTimer = s.cfg.World.FlashDuration
		s.sched.After(s.cfg.World.FlashDuration+s.cfg.World.PostFlashDelay, s.launchBattle)
	})
}

// launchBattle emits battle:start and requests the scene transition with
// the full battle context.
func (s *Scene) launchBattle() {
	npc, ok := s.store.GetNPC(s.activeNPC)
	if !ok {
		log.Printf("world: encounter with unknown npc %q", s.activeNPC)
		s.frozen = false
		s.activeNPC = ""
		return
	}

	npcRoster := s.species.Resolve(npc.Pokemon)
	playerRoster := s.store.GetPlayerPokemon()

	event.Emit(s.bus, event.TopicBattleStart, event.BattleStart{
		NPCID:         npc.ID,
		NPCName:       npc.Name,
		NPCPokemon:    npcRoster,
		PlayerPokemon: playerRoster,
		Location:      s.view.ID,
	})
	event.Emit(s.bus, event.TopicSceneTransition, event.SceneTransition{
		To: scene.NameBattle,
		Context: map[string]any{
			scene.CtxNPCID:         npc.ID,
			scene.CtxNPCName:       npc.Name,
			scene.CtxNPCPokemon:    npcRoster,
			scene.CtxPlayerPokemon: playerRoster,
			scene.CtxLocation:      s.view.ID,
		},
	})
}

// Draw renders the map, the NPCs, the player, and any active overlays.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorGround)

	for _, c := range s.view.CollisionRects {
		ebitenutil.DrawRect(screen, c.X, c.Y, c.W, c.H, colorWall)
	}
	for _, npc := range s.store.GetNPCs() {
		zone, ok := s.zones[npc.ID]
		if !ok || zone.mapID != s.view.ID {
			continue
		}
		fill := colorNPC
		if npc.Defeated {
			fill = colorNPCBeat
		}
		ebitenutil.DrawRect(screen, zone.rect.X, zone.rect.Y, zone.rect.W, zone.rect.H, fill)
	}

	p := s.playerRect()
	ebitenutil.DrawRect(screen, p.X, p.Y, p.W, p.H, colorPlayer)

	h := float64(s.cfg.Display.ScreenHeight)
	w := float64(s.cfg.Display.ScreenWidth)
	s.dialogue.Draw(screen, 0, h-64, w, 64)

	if s.flashTimer > 0 {
		ebitenutil.DrawRect(screen, 0, 0, w, h, colorFlash)
	}

	s.settings.draw(screen, int(w), int(h))
}
