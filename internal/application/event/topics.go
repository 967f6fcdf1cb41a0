package event

import (
	"log"

	"github.com/younwookim/tinymon/internal/domain/entity"
)

// Topic binds an event name to its payload type so every emit/subscribe
// pair is checked at compile time.
type Topic[T any] struct {
	name string
}

// NewTopic creates a typed topic for the given event name.
func NewTopic[T any](name string) Topic[T] {
	return Topic[T]{name: name}
}

// Name returns the underlying event name.
func (t Topic[T]) Name() string { return t.name }

// Subscribe registers a typed handler on the bus. Payloads of the wrong
// type are logged and dropped.
func Subscribe[T any](b *Bus, topic Topic[T], fn func(T)) func() {
	return b.Subscribe(topic.name, typedHandler(topic, fn))
}

// SubscribeOnce registers a typed handler removed after first delivery.
func SubscribeOnce[T any](b *Bus, topic Topic[T], fn func(T)) func() {
	return b.SubscribeOnce(topic.name, typedHandler(topic, fn))
}

// Emit publishes a typed payload on the bus.
func Emit[T any](b *Bus, topic Topic[T], payload T) {
	b.Emit(topic.name, payload)
}

func typedHandler[T any](topic Topic[T], fn func(T)) Handler {
	return func(payload any) {
		v, ok := payload.(T)
		if !ok {
			log.Printf("event: %q payload has type %T, expected %T", topic.name, payload, v)
			return
		}
		fn(v)
	}
}

// BattleResult is the outcome carried by BattleComplete.
type BattleResult string

const (
	ResultWin  BattleResult = "win"
	ResultLose BattleResult = "lose"
	ResultFlee BattleResult = "flee"
)

// SceneTransition requests a scene change. The manager applies it at the
// top of the next tick, never inside a lifecycle hook.
type SceneTransition struct {
	To      string
	Context map[string]any
}

// SceneChanged announces a completed transition.
type SceneChanged struct {
	From string
	To   string
}

// BattleStart carries the full battle context from world to battle.
type BattleStart struct {
	NPCID         string
	NPCName       string
	NPCPokemon    []entity.PokemonConfig
	PlayerPokemon []entity.PokemonConfig
	Location      string
}

// BattleComplete reports the outcome of a battle. Rewards are present only
// on a win.
type BattleComplete struct {
	NPCID       string
	Result      BattleResult
	ExpGained   int
	MoneyGained int
}

// BattleFaint is best-effort telemetry emitted when a pokemon drops to
// zero HP. The battle state machine inspects the fainted flag directly.
type BattleFaint struct {
	Name     string
	IsPlayer bool
}

// NPCDefeated marks a trainer as beaten outside the battle-complete flow
// (debug tooling).
type NPCDefeated struct {
	NPCID string
}

// GameSaved and GameLoaded are emitted after a successful save/load.
type GameSaved struct{}
type GameLoaded struct{}

// Core topics.
var (
	TopicSceneTransition = NewTopic[SceneTransition]("scene:transition")
	TopicSceneChanged    = NewTopic[SceneChanged]("scene:changed")
	TopicBattleStart     = NewTopic[BattleStart]("battle:start")
	TopicBattleComplete  = NewTopic[BattleComplete]("battle:complete")
	TopicBattleFaint     = NewTopic[BattleFaint]("battle:faint")
	TopicNPCDefeated     = NewTopic[NPCDefeated]("npc:defeated")
	TopicGameSaved       = NewTopic[GameSaved]("game:save")
	TopicGameLoaded      = NewTopic[GameLoaded]("game:load")
)
