package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() PokemonConfig {
	return PokemonConfig{
		Name:  "BLASTOISE",
		Level: 50,
		Stats: Stats{MaxHP: 100, Attack: 83, Defense: 100},
		Moves: []Move{
			{Name: "WATER GUN", Power: 50},
			{Name: "TACKLE", Power: 10},
		},
	}
}

func TestNewPokemon(t *testing.T) {
	p := NewPokemon(testConfig())

	require.NotNil(t, p)
	assert.Equal(t, 100, p.CurrentHP)
	assert.False(t, p.Fainted)
}

func TestPokemon_TakeDamage(t *testing.T) {
	t.Run("clamps at zero", func(t *testing.T) {
		p := NewPokemon(testConfig())
		p.TakeDamage(250)

		assert.Equal(t, 0, p.CurrentHP)
		assert.True(t, p.Fainted)
	})

	t.Run("negative amounts do nothing", func(t *testing.T) {
		p := NewPokemon(testConfig())
		p.TakeDamage(-40)

		assert.Equal(t, 100, p.CurrentHP)
		assert.False(t, p.Fainted)
	})

	t.Run("faint transition reported exactly once", func(t *testing.T) {
		p := NewPokemon(testConfig())

		assert.False(t, p.TakeDamage(99))
		assert.True(t, p.TakeDamage(1))
		assert.True(t, p.Fainted)
		// Already fainted: further damage is not a new transition
		assert.False(t, p.TakeDamage(10))
		assert.Equal(t, 0, p.CurrentHP)
	})

	t.Run("fainted iff hp zero across a damage sequence", func(t *testing.T) {
		p := NewPokemon(testConfig())
		for _, amount := range []int{16, 16, 16, 16, 16, 16, 16} {
			p.TakeDamage(amount)
			assert.Equal(t, p.CurrentHP == 0, p.Fainted)
			assert.GreaterOrEqual(t, p.CurrentHP, 0)
			assert.LessOrEqual(t, p.CurrentHP, p.Stats.MaxHP)
		}
		assert.True(t, p.Fainted)
	})
}

func TestPokemon_Heal(t *testing.T) {
	p := NewPokemon(testConfig())
	p.TakeDamage(100)
	require.True(t, p.Fainted)

	p.Heal()

	assert.Equal(t, 100, p.CurrentHP)
	assert.False(t, p.Fainted)
}

func TestPokemon_GetMove(t *testing.T) {
	p := NewPokemon(testConfig())

	move, ok := p.GetMove(0)
	require.True(t, ok)
	assert.Equal(t, "WATER GUN", move.Name)

	_, ok = p.GetMove(5)
	assert.False(t, ok)

	_, ok = p.GetMove(-1)
	assert.False(t, ok)
}

func TestDamage(t *testing.T) {
	t.Run("reference values at fixed random factor", func(t *testing.T) {
		// At level 50: levelFactor = 2*50/5+2 = 22, so with mirrored
		// stats base = (22*50)/50 + 2 = 24.
		tests := []struct {
			name                           string
			level, power, attack, defense  int
			randFactor                     float64
			expected                       int
		}{
			{"mirror stats", 50, 50, 83, 83, 1.0, 24},
			{"water gun vs 100 def", 50, 50, 83, 100, 1.0, 20},
			{"tackle", 50, 10, 82, 100, 1.0, 5},
			{"low roll floors down", 50, 50, 83, 83, 0.85, 20},
			{"zero power is a no-op attack", 50, 0, 83, 83, 1.0, 0},
			{"zero defense guarded", 5, 40, 30, 0, 1.0, 98},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				got := Damage(tt.level, tt.power, tt.attack, tt.defense, tt.randFactor)
				assert.Equal(t, tt.expected, got)
			})
		}
	})

	t.Run("random factor bounds", func(t *testing.T) {
		// For any factor in [0.85, 1.0) the damage stays within the
		// band defined by the extremes.
		low := Damage(50, 50, 83, 100, 0.85)
		high := Damage(50, 50, 83, 100, 0.999999)
		for _, rf := range []float64{0.85, 0.9, 0.95, 0.999} {
			d := Damage(50, 50, 83, 100, rf)
			assert.GreaterOrEqual(t, d, low)
			assert.LessOrEqual(t, d, high)
		}
	})
}
