package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_SubscribeEmit(t *testing.T) {
	b := New()

	var got []int
	b.Subscribe("tick", func(p any) { got = append(got, p.(int)) })
	b.Emit("tick", 1)
	b.Emit("tick", 2)

	assert.Equal(t, []int{1, 2}, got)
}

func TestBus_FanOutInRegistrationOrder(t *testing.T) {
	b := New()

	var order []string
	b.Subscribe("e", func(any) { order = append(order, "a") })
	b.Subscribe("e", func(any) { order = append(order, "b") })
	b.Subscribe("e", func(any) { order = append(order, "c") })
	b.Emit("e", nil)

	assert.Equal(t, []string{"a", "b", "c"}, order)
}

func TestBus_EmitWithoutSubscribersIsNoop(t *testing.T) {
	b := New()
	assert.NotPanics(t, func() { b.Emit("nobody", 42) })
}

func TestBus_Unsubscribe(t *testing.T) {
	b := New()

	calls := 0
	unsub := b.Subscribe("e", func(any) { calls++ })
	b.Emit("e", nil)
	unsub()
	b.Emit("e", nil)

	assert.Equal(t, 1, calls)
	assert.NotPanics(t, unsub) // second call is a no-op
	assert.Equal(t, 0, b.HandlerCount("e"))
}

func TestBus_SubscribeOnce(t *testing.T) {
	b := New()

	calls := 0
	b.SubscribeOnce("e", func(any) { calls++ })
	b.Emit("e", nil)
	b.Emit("e", nil)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, b.HandlerCount("e"))
}

func TestBus_PanickingHandlerDoesNotStopFanOut(t *testing.T) {
	b := New()

	var after bool
	b.Subscribe("e", func(any) { panic("boom") })
	b.Subscribe("e", func(any) { after = true })

	assert.NotPanics(t, func() { b.Emit("e", nil) })
	assert.True(t, after)
}

func TestBus_UnsubscribeDuringEmit(t *testing.T) {
	b := New()

	var unsubB func()
	var bCalls int
	b.Subscribe("e", func(any) { unsubB() })
	unsubB = b.Subscribe("e", func(any) { bCalls++ })

	b.Emit("e", nil)

	// b was removed by the first handler before its turn in the snapshot
	assert.Equal(t, 0, bCalls)
}

func TestBus_Clear(t *testing.T) {
	b := New()
	b.Subscribe("a", func(any) {})
	b.Subscribe("b", func(any) {})

	b.Clear("a")
	assert.Equal(t, 0, b.HandlerCount("a"))
	assert.Equal(t, 1, b.HandlerCount("b"))

	b.Clear()
	assert.Equal(t, 0, b.HandlerCount("b"))
}

func TestTypedTopics(t *testing.T) {
	b := New()

	t.Run("delivers typed payloads", func(t *testing.T) {
		var got BattleComplete
		Subscribe(b, TopicBattleComplete, func(p BattleComplete) { got = p })

		Emit(b, TopicBattleComplete, BattleComplete{NPCID: "rival", Result: ResultWin, MoneyGained: 80})

		assert.Equal(t, "rival", got.NPCID)
		assert.Equal(t, ResultWin, got.Result)
		assert.Equal(t, 80, got.MoneyGained)
	})

	t.Run("drops mistyped payloads", func(t *testing.T) {
		calls := 0
		Subscribe(b, TopicNPCDefeated, func(NPCDefeated) { calls++ })

		b.Emit(TopicNPCDefeated.Name(), "not a struct")
		assert.Equal(t, 0, calls)

		Emit(b, TopicNPCDefeated, NPCDefeated{NPCID: "x"})
		assert.Equal(t, 1, calls)
	})

	t.Run("once variant", func(t *testing.T) {
		calls := 0
		SubscribeOnce(b, TopicGameSaved, func(GameSaved) { calls++ })

		Emit(b, TopicGameSaved, GameSaved{})
		Emit(b, TopicGameSaved, GameSaved{})
		require.Equal(t, 1, calls)
	})
}
