package scene

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/system"
)

// Manager owns the scene registry and the active-scene pointer. It
// listens for scene:transition requests on the bus and applies them at
// the top of the next tick, so a scene may request a transition from
// anywhere without re-entering SetScene.
type Manager struct {
	bus    *event.Bus
	scenes map[string]Scene
	names  []string

	current      string
	inTransition bool
	pending      *event.SceneTransition
}

// NewManager creates a manager listening on the bus.
func NewManager(bus *event.Bus) *Manager {
	m := &Manager{
		bus:    bus,
		scenes: make(map[string]Scene),
	}
	event.Subscribe(bus, event.TopicSceneTransition, m.onTransitionRequest)
	return m
}

func (m *Manager) onTransitionRequest(req event.SceneTransition) {
	if m.pending != nil {
		log.Printf("scene: transition to %q already pending, dropping request for %q", m.pending.To, req.To)
		return
	}
	r := req
	m.pending = &r
}

// Register adds a scene under a name. Registering the same name twice
// replaces the scene.
func (m *Manager) Register(name string, s Scene) {
	if _, ok := m.scenes[name]; !ok {
		m.names = append(m.names, name)
	}
	m.scenes[name] = s
}

// Current returns the active scene name, or "" before the first SetScene.
func (m *Manager) Current() string { return m.current }

// ActiveScene returns the active scene, or nil before the first SetScene.
func (m *Manager) ActiveScene() Scene { return m.scenes[m.current] }

// LoadAll invokes Load on every registered scene and fails on the first
// error.
func (m *Manager) LoadAll() error {
	for _, name := range m.names {
		if err := m.scenes[name].Load(); err != nil {
			return fmt.Errorf("failed to load scene %s: %w", name, err)
		}
	}
	return nil
}

// SetScene transitions to the named scene:
//
//  1. unknown name: log, abort, current scene untouched
//  2. Exit on the current scene
//  3. swap the current pointer
//  4. Enter(ctx) on the new scene
//  5. if the scene changed, Reset then Setup, in that order
//  6. emit scene:changed
//
// SetScene is non-reentrant: lifecycle hooks must request transitions via
// the scene:transition topic instead of calling back in.
func (m *Manager) SetScene(name string, ctx Context) error {
	next, ok := m.scenes[name]
	if !ok {
		log.Printf("scene: unknown scene %q", name)
		return fmt.Errorf("unknown scene %q", name)
	}
	if m.inTransition {
		log.Printf("scene: re-entrant SetScene(%q) ignored", name)
		return fmt.Errorf("re-entrant transition to %q", name)
	}
	m.inTransition = true
	defer func() { m.inTransition = false }()

	from := m.current
	if prev, ok := m.scenes[from]; ok {
		prev.Exit()
	}

	m.current = name
	next.Enter(ctx)

	if from != name {
		next.Reset()
		next.Setup()
	}

	event.Emit(m.bus, event.TopicSceneChanged, event.SceneChanged{From: from, To: name})
	return nil
}

// Update services a pending transition request, then forwards the tick to
// the active scene.
func (m *Manager) Update(dt float64, in system.Input) {
	if req := m.pending; req != nil {
		m.pending = nil
		if err := m.SetScene(req.To, Context(req.Context)); err != nil {
			log.Printf("scene: transition failed: %v", err)
		}
	}

	if s := m.ActiveScene(); s != nil {
		s.Update(dt, in)
	}
}

// Draw forwards rendering to the active scene.
func (m *Manager) Draw(screen *ebiten.Image) {
	if s := m.ActiveScene(); s != nil {
		s.Draw(screen)
	}
}
