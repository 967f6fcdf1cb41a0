package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Overlaps(t *testing.T) {
	base := Rect{X: 10, Y: 10, W: 16, H: 16}

	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"identical", Rect{X: 10, Y: 10, W: 16, H: 16}, true},
		{"partial overlap", Rect{X: 20, Y: 20, W: 16, H: 16}, true},
		{"touching edge", Rect{X: 26, Y: 10, W: 16, H: 16}, false},
		{"disjoint", Rect{X: 100, Y: 100, W: 16, H: 16}, false},
		{"contained", Rect{X: 14, Y: 14, W: 4, H: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Overlaps(tt.other))
			assert.Equal(t, tt.expected, tt.other.Overlaps(base))
		})
	}
}

func TestRect_ResolveOverlap(t *testing.T) {
	obstacle := Rect{X: 100, Y: 100, W: 32, H: 32}

	t.Run("pushes out along minimum axis", func(t *testing.T) {
		// Deep on Y, shallow on X: push left
		r := Rect{X: 96, Y: 110, W: 16, H: 16}
		dx, dy := r.ResolveOverlap(obstacle)

		assert.Equal(t, -12.0, dx)
		assert.Equal(t, 0.0, dy)
		assert.False(t, r.Moved(dx, dy).Overlaps(obstacle))
	})

	t.Run("pushes up when coming from above", func(t *testing.T) {
		r := Rect{X: 105, Y: 92, W: 16, H: 16}
		dx, dy := r.ResolveOverlap(obstacle)

		assert.Equal(t, 0.0, dx)
		assert.Equal(t, -8.0, dy)
		assert.False(t, r.Moved(dx, dy).Overlaps(obstacle))
	})

	t.Run("no displacement without overlap", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, W: 16, H: 16}
		dx, dy := r.ResolveOverlap(obstacle)

		assert.Equal(t, 0.0, dx)
		assert.Equal(t, 0.0, dy)
	})
}
