package system

import (
	"github.com/younwookim/tinymon/internal/domain/entity"
	"github.com/younwookim/tinymon/internal/infrastructure/config"
)

// SpawnPoint is a named position on a map.
type SpawnPoint struct {
	Name string
	X, Y float64
}

// MapView is the core's view of a loaded map: the spawn points and the
// collision rects extracted from its layers. Either list may be empty.
type MapView struct {
	ID             string
	Width, Height  float64
	SpawnPoints    []SpawnPoint
	CollisionRects []entity.Rect
}

// BuildMapView extracts the core's view from a map document.
func BuildMapView(cfg *config.MapConfig) MapView {
	view := MapView{
		ID:     cfg.ID,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	for _, sp := range cfg.SpawnPoints {
		view.SpawnPoints = append(view.SpawnPoints, SpawnPoint{Name: sp.Name, X: sp.X, Y: sp.Y})
	}
	for _, layer := range cfg.Layers {
		if !layer.Collision {
			continue
		}
		for _, r := range layer.Rects {
			view.CollisionRects = append(view.CollisionRects, entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H})
		}
	}

	return view
}

// GetSpawnPoint returns the named spawn point, or false if absent.
func (v MapView) GetSpawnPoint(name string) (SpawnPoint, bool) {
	for _, sp := range v.SpawnPoints {
		if sp.Name == name {
			return sp, true
		}
	}
	return SpawnPoint{}, false
}
