package screens

import (
	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-tilecollide/geom"
)

// KeyBindings maps keys to the four movement directions
type KeyBindings struct {
	Up    []ebiten.Key
	Down  []ebiten.Key
	Left  []ebiten.Key
	Right []ebiten.Key
}

// DefaultKeyBindings binds WASD and the arrow keys
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:    []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
		Down:  []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
		Left:  []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
		Right: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
	}
}

// Axes reads the movement intent using pressed, usually ebiten.IsKeyPressed
func (k KeyBindings) Axes(pressed func(ebiten.Key) bool) geom.Axes {
	return geom.AxesFromKeys(
		anyPressed(k.Up, pressed),
		anyPressed(k.Down, pressed),
		anyPressed(k.Left, pressed),
		anyPressed(k.Right, pressed),
	)
}

func anyPressed(keys []ebiten.Key, pressed func(ebiten.Key) bool) bool {
	for _, key := range keys {
		if pressed(key) {
			return true
		}
	}
	return false
}
