package app

import (
	"math"

	"riskmap/typedef"
)

// Camera maps between screen and map coordinates. Territory vertices live
// in map space; the camera only affects display, never hit testing input
// (clicks are converted back to map space before the hit test runs).
type Camera struct {
	OffsetX  float64
	OffsetY  float64
	Scale    float64
	minScale float64
	maxScale float64
}

// NewCamera starts at identity: map space equals screen space, matching
// the coordinate contract of loaded maps.
func NewCamera() *Camera {
	return &Camera{
		Scale:    1.0,
		minScale: 0.1,
		maxScale: 3.0,
	}
}

// ScreenToMap converts a screen position into map coordinates.
func (c *Camera) ScreenToMap(x, y int) typedef.Point {
	return typedef.Point{
		X: (float64(x) - c.OffsetX) / c.Scale,
		Y: (float64(y) - c.OffsetY) / c.Scale,
	}
}

// MapToScreen converts a map point into screen coordinates.
func (c *Camera) MapToScreen(p typedef.Point) (float32, float32) {
	return float32(p.X*c.Scale + c.OffsetX), float32(p.Y*c.Scale + c.OffsetY)
}

// Pan moves the view by a screen-space delta.
func (c *Camera) Pan(dx, dy int) {
	c.OffsetX += float64(dx)
	c.OffsetY += float64(dy)
}

// ZoomAt scales the view by an exponential wheel step, keeping the map
// point under the cursor fixed.
func (c *Camera) ZoomAt(wheelDelta float64, cursorX, cursorY int) {
	factor := math.Pow(1.1, wheelDelta)
	newScale := c.Scale * factor
	if newScale < c.minScale {
		newScale = c.minScale
	}
	if newScale > c.maxScale {
		newScale = c.maxScale
	}
	if newScale == c.Scale {
		return
	}

	anchor := c.ScreenToMap(cursorX, cursorY)
	c.Scale = newScale
	c.OffsetX = float64(cursorX) - anchor.X*c.Scale
	c.OffsetY = float64(cursorY) - anchor.Y*c.Scale
}

// Reset restores the identity view.
func (c *Camera) Reset() {
	c.OffsetX = 0
	c.OffsetY = 0
	c.Scale = 1.0
}
