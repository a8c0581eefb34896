package app

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEventType enumerates generic pointer actions.
type PointerEventType int

const (
	PointerDown PointerEventType = iota
	PointerUp
	PointerMove
	PointerClick // press and release without significant movement
	PointerWheel
)

// PointerEvent represents a unified mouse/touch action.
type PointerEvent struct {
	Type     PointerEventType
	Position image.Point
	Delta    image.Point // movement since the last event, for PointerMove
	Wheel    float64     // vertical wheel delta, for PointerWheel
	Time     time.Time
}

// PointerInput normalizes mouse and single-touch input into pointer
// events, distinguishing clicks from drags. At most one PointerClick is
// emitted per frame, which keeps the selection update to one per tick.
type PointerInput struct {
	events          []PointerEvent
	down            bool
	viaTouch        bool
	touchID         ebiten.TouchID
	start           image.Point
	last            image.Point
	dragging        bool
	moveThresholdSq int
}

// NewPointerInput builds a pointer input helper with sensible defaults.
func NewPointerInput() *PointerInput {
	return &PointerInput{
		moveThresholdSq: 64, // 8px before a press counts as a drag
	}
}

// Events returns the collected pointer events for the last frame.
func (p *PointerInput) Events() []PointerEvent { return p.events }

// Update polls ebiten input APIs and emits normalized pointer events.
func (p *PointerInput) Update() {
	now := time.Now()
	p.events = p.events[:0]

	// Skip capturing pointer input when the window is unfocused.
	if !ebiten.IsFocused() {
		p.reset()
		return
	}

	pos, pressed, tracking := p.pollPointer()

	switch {
	case pressed && !p.down:
		p.down = true
		p.dragging = false
		p.start = pos
		p.last = pos
		p.events = append(p.events, PointerEvent{Type: PointerDown, Position: pos, Time: now})

	case pressed && p.down:
		if pos != p.last {
			delta := pos.Sub(p.last)
			p.events = append(p.events, PointerEvent{Type: PointerMove, Position: pos, Delta: delta, Time: now})
			if distSq(p.start, pos) > p.moveThresholdSq {
				p.dragging = true
			}
			p.last = pos
		}

	case !pressed && p.down && tracking:
		p.down = false
		p.events = append(p.events, PointerEvent{Type: PointerUp, Position: p.last, Time: now})
		if !p.dragging {
			p.events = append(p.events, PointerEvent{Type: PointerClick, Position: p.last, Time: now})
		}
		p.dragging = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		mx, my := ebiten.CursorPosition()
		p.events = append(p.events, PointerEvent{Type: PointerWheel, Position: image.Pt(mx, my), Wheel: wheelY, Time: now})
	}
}

// pollPointer reads the mouse, falling back to the first active touch.
// tracking is false when a touch vanished without a final position, in
// which case the release is still reported at the last known point.
func (p *PointerInput) pollPointer() (pos image.Point, pressed, tracking bool) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) || (p.down && !p.viaTouch) {
		mx, my := ebiten.CursorPosition()
		p.viaTouch = false
		return image.Pt(mx, my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), true
	}

	touches := ebiten.TouchIDs()
	if p.down && p.viaTouch {
		for _, id := range touches {
			if id == p.touchID {
				tx, ty := ebiten.TouchPosition(id)
				return image.Pt(tx, ty), true, true
			}
		}
		// Tracked touch lifted this frame.
		return p.last, false, true
	}
	if len(touches) > 0 {
		p.viaTouch = true
		p.touchID = touches[0]
		tx, ty := ebiten.TouchPosition(touches[0])
		return image.Pt(tx, ty), true, true
	}

	return p.last, false, false
}

// Reset clears all pointer state and outstanding events.
func (p *PointerInput) Reset() {
	p.reset()
}

func (p *PointerInput) reset() {
	p.events = p.events[:0]
	p.down = false
	p.dragging = false
	p.viaTouch = false
	p.start = image.Point{}
	p.last = image.Point{}
}

func distSq(a, b image.Point) int {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}
