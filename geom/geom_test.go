package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectOverlapsEdgeContact(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared vertical edge")
	assert.False(t, a.Overlaps(Rect{X: 0, Y: 10, W: 10, H: 10}), "shared horizontal edge")
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 10, W: 10, H: 10}), "shared corner")
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 0, W: 10, H: 10}))
	assert.True(t, a.Overlaps(Rect{X: 2, Y: 2, W: 2, H: 2}), "contained")
}

func TestRectOverlapsIsSymmetric(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	b := Rect{X: 5, Y: -5, W: 10, H: 8}

	assert.Equal(t, a.Overlaps(b), b.Overlaps(a))
}

func TestAxesDirection(t *testing.T) {
	assert.Equal(t, Vec2{}, Axes{}.Direction())
	assert.Equal(t, Vec2{X: 1}, Axes{X: 1}.Direction())
	assert.Equal(t, Vec2{Y: -1}, Axes{Y: -1}.Direction())

	d := Axes{X: 1, Y: 1}.Direction()
	assert.InDelta(t, 1/math.Sqrt2, d.X, 1e-6)
	assert.InDelta(t, 1/math.Sqrt2, d.Y, 1e-6)
	assert.InDelta(t, 1.0, d.Len(), 1e-6)
}

func TestAxesDirectionClampsOutOfRange(t *testing.T) {
	assert.Equal(t, Vec2{X: -1}, Axes{X: -7}.Direction())
}

func TestNormalizeZeroIsNotNaN(t *testing.T) {
	n := Vec2{}.Normalize()
	assert.False(t, math.IsNaN(float64(n.X)))
	assert.False(t, math.IsNaN(float64(n.Y)))
}

func TestAxesFromKeys(t *testing.T) {
	assert.Equal(t, Axes{}, AxesFromKeys(false, false, false, false))
	assert.Equal(t, Axes{Y: -1}, AxesFromKeys(true, false, false, false))
	assert.Equal(t, Axes{X: 1, Y: 1}, AxesFromKeys(false, true, false, true))
	assert.Equal(t, Axes{X: -1}, AxesFromKeys(true, true, true, false))
	assert.True(t, AxesFromKeys(true, true, true, true).IsZero())
}
