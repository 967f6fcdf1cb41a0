package scene

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tinymon/internal/application/event"
	"github.com/younwookim/tinymon/internal/application/system"
)

// stubScene records lifecycle calls in order.
type stubScene struct {
	calls   []string
	lastCtx Context
	loadErr error
	updates int
}

func (s *stubScene) Load() error { s.calls = append(s.calls, "load"); return s.loadErr }
func (s *stubScene) Setup()      { s.calls = append(s.calls, "setup") }
func (s *stubScene) Enter(ctx Context) {
	s.calls = append(s.calls, "enter")
	s.lastCtx = ctx
}
func (s *stubScene) Exit()  { s.calls = append(s.calls, "exit") }
func (s *stubScene) Reset() { s.calls = append(s.calls, "reset") }
func (s *stubScene) Update(dt float64, in system.Input) {
	s.calls = append(s.calls, "update")
	s.updates++
}
func (s *stubScene) Draw(screen *ebiten.Image) { s.calls = append(s.calls, "draw") }

func TestManager_SetScene_LifecycleOrder(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	menu := &stubScene{}
	world := &stubScene{}
	m.Register("menu", menu)
	m.Register("world", world)

	require.NoError(t, m.SetScene("menu", nil))
	assert.Equal(t, []string{"enter", "reset", "setup"}, menu.calls)
	assert.Equal(t, "menu", m.Current())

	require.NoError(t, m.SetScene("world", Context{CtxSpawn: "start"}))
	assert.Equal(t, []string{"enter", "reset", "setup", "exit"}, menu.calls)
	// Reset runs before Setup so Setup sees a clean baseline
	assert.Equal(t, []string{"enter", "reset", "setup"}, world.calls)
	assert.Equal(t, "start", world.lastCtx.String(CtxSpawn))
}

func TestManager_SetScene_UnknownNameIsAtomic(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	menu := &stubScene{}
	m.Register("menu", menu)
	require.NoError(t, m.SetScene("menu", nil))
	menu.calls = nil

	var changed int
	event.Subscribe(bus, event.TopicSceneChanged, func(event.SceneChanged) { changed++ })

	err := m.SetScene("bogus", nil)

	assert.Error(t, err)
	assert.Equal(t, "menu", m.Current())
	assert.Empty(t, menu.calls) // no Exit, no Enter on anything
	assert.Equal(t, 0, changed)
}

func TestManager_SetScene_SameSceneSkipsResetSetup(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	world := &stubScene{}
	m.Register("world", world)
	require.NoError(t, m.SetScene("world", nil))
	world.calls = nil

	require.NoError(t, m.SetScene("world", nil))
	assert.Equal(t, []string{"exit", "enter"}, world.calls)
}

func TestManager_SetScene_EmitsSceneChanged(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)
	m.Register("menu", &stubScene{})
	m.Register("world", &stubScene{})

	var got []event.SceneChanged
	event.Subscribe(bus, event.TopicSceneChanged, func(e event.SceneChanged) { got = append(got, e) })

	require.NoError(t, m.SetScene("menu", nil))
	require.NoError(t, m.SetScene("world", nil))

	require.Len(t, got, 2)
	assert.Equal(t, event.SceneChanged{From: "", To: "menu"}, got[0])
	assert.Equal(t, event.SceneChanged{From: "menu", To: "world"}, got[1])
}

func TestManager_BusTransitionAppliedNextTick(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	menu := &stubScene{}
	world := &stubScene{}
	m.Register("menu", menu)
	m.Register("world", world)
	require.NoError(t, m.SetScene("menu", nil))

	event.Emit(bus, event.TopicSceneTransition, event.SceneTransition{
		To:      "world",
		Context: map[string]any{CtxSpawn: "start"},
	})

	// Not applied until the next tick
	assert.Equal(t, "menu", m.Current())

	m.Update(1.0/60, system.Input{})
	assert.Equal(t, "world", m.Current())
	assert.Equal(t, "start", world.lastCtx.String(CtxSpawn))
	// The new scene receives the same tick's update
	assert.Equal(t, 1, world.updates)
}

func TestManager_DuplicateTransitionRequestDropped(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)
	m.Register("world", &stubScene{})
	m.Register("battle", &stubScene{})

	event.Emit(bus, event.TopicSceneTransition, event.SceneTransition{To: "battle"})
	event.Emit(bus, event.TopicSceneTransition, event.SceneTransition{To: "world"})

	m.Update(1.0/60, system.Input{})
	assert.Equal(t, "battle", m.Current())
}

func TestManager_UpdateForwardsOnlyToActiveScene(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	menu := &stubScene{}
	world := &stubScene{}
	m.Register("menu", menu)
	m.Register("world", world)
	require.NoError(t, m.SetScene("menu", nil))

	m.Update(1.0/60, system.Input{})
	m.Update(1.0/60, system.Input{})

	assert.Equal(t, 2, menu.updates)
	assert.Equal(t, 0, world.updates)
}

func TestManager_LoadAll(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)

	a := &stubScene{}
	b := &stubScene{}
	m.Register("a", a)
	m.Register("b", b)

	require.NoError(t, m.LoadAll())
	assert.Contains(t, a.calls, "load")
	assert.Contains(t, b.calls, "load")
}

func TestManager_LoadAll_PropagatesError(t *testing.T) {
	bus := event.New()
	m := NewManager(bus)
	m.Register("bad", &stubScene{loadErr: assert.AnError})

	assert.Error(t, m.LoadAll())
}

func TestContext_NilTolerant(t *testing.T) {
	var ctx Context

	assert.Equal(t, "", ctx.String(CtxNPCID))
	assert.Nil(t, ctx.Roster(CtxNPCPokemon))

	ctx = Context{CtxNPCID: 42} // mistyped
	assert.Equal(t, "", ctx.String(CtxNPCID))
}
