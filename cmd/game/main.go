package main

import (
	"embed"
	"flag"
	"io/fs"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/game"
	"github.com/younwookim/tinymon/internal/application/scene"
	"github.com/younwookim/tinymon/internal/application/scene/battle"
	"github.com/younwookim/tinymon/internal/application/scene/menu"
	"github.com/younwookim/tinymon/internal/application/scene/world"
	"github.com/younwookim/tinymon/internal/application/state"
	"github.com/younwookim/tinymon/internal/application/system"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
	"github.com/younwookim/tinymon/internal/infrastructure/storage"
)

//go:embed configs
var configFS embed.FS

const saveKey = "save"

func main() {
	// Parse command line flags
	saveDir := flag.String("save", ".tinymon", "Directory for save files")
	flag.Parse()

	// Load configurations using embedded filesystem
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		log.Fatalf("Failed to get config subfs: %v", err)
	}
	loader := config.NewFSLoader(fsys, "configs")
	cfg, err := loader.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Convert config documents into domain tables
	species := system.BuildSpeciesTable(cfg.Pokemon)
	npcs := system.BuildNPCs(cfg.NPCs)
	player := system.BuildDefaultPlayer(cfg.Settings, species)

	// Wire the core collaborators
	bus := event.New()
	blob, err := storage.NewFileStore(*saveDir)
	if err != nil {
		log.Fatalf("Failed to open save directory: %v", err)
	}
	store := state.New(bus, blob, saveKey, state.Defaults{
		Player:     player,
		NPCs:       npcs,
		CurrentMap: cfg.Settings.World.StartMap,
	})

	// Seeded RNG for battle damage rolls and NPC move picks
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Register the scenes
	manager := scene.NewManager(bus)
	manager.Register(scene.NameMenu, menu.New(bus, store, cfg.Settings))
	manager.Register(scene.NameWorld, world.New(bus, store, cfg.Settings, loader, species, cfg.NPCs))
	manager.Register(scene.NameBattle, battle.New(bus, store, cfg.Settings, rng))

	if err := manager.LoadAll(); err != nil {
		log.Fatalf("Failed to load scenes: %v", err)
	}
	if err := manager.SetScene(scene.NameMenu, nil); err != nil {
		log.Fatalf("Failed to enter menu: %v", err)
	}

	g := game.New(manager, cfg.Settings.Display.ScreenWidth, cfg.Settings.Display.ScreenHeight)
	if cfg.Settings.Display.Framerate > 0 {
		g.SetDT(1.0 / float64(cfg.Settings.Display.Framerate))
	}

	// Set up ebiten
	ebiten.SetWindowSize(cfg.Settings.Display.ScreenWidth*cfg.Settings.Display.Scale,
		cfg.Settings.Display.ScreenHeight*cfg.Settings.Display.Scale)
	ebiten.SetWindowTitle("Tinymon")
	ebiten.SetTPS(cfg.Settings.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
