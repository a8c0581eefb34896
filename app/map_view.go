//lint:file-ignore SA1019 using deprecated text package for Draw
package app

import (
	"fmt"

	"riskmap/truntime"
	"riskmap/typedef"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// MapView renders the territory collection. It is a read-only consumer of
// the runtime state; one Draw call is one full render pass.
type MapView struct {
	state  *truntime.State
	camera *Camera
	face   font.Face
}

func NewMapView(st *truntime.State, cam *Camera, face font.Face) *MapView {
	return &MapView{state: st, camera: cam, face: face}
}

// Draw strokes every territory outline, highlight color for the current
// selection, owner color otherwise. Labels appear once zoomed in far
// enough to read them.
func (m *MapView) Draw(screen *ebiten.Image) {
	territories := m.state.Territories()

	for i, terr := range territories {
		clr := territoryColor(terr.Owner, m.state.IsSelected(i))

		n := len(terr.Vertices)
		for j := 0; j < n; j++ {
			x1, y1 := m.camera.MapToScreen(terr.Vertices[j])
			x2, y2 := m.camera.MapToScreen(terr.Vertices[(j+1)%n])
			vector.StrokeLine(screen, x1, y1, x2, y2, OutlineWidth, clr, true)
		}

		if m.camera.Scale >= 0.75 {
			m.drawLabel(screen, terr)
		}
	}
}

func (m *MapView) drawLabel(screen *ebiten.Image, terr *typedef.Territory) {
	cx, cy := m.camera.MapToScreen(terr.Centroid())

	label := fmt.Sprintf("%s (%d)", terr.Name, terr.Armies)
	bounds := text.BoundString(m.face, label)
	x := int(cx) - bounds.Dx()/2
	y := int(cy) + bounds.Dy()/2
	text.Draw(screen, label, m.face, x, y, LabelTextColor)
}

// DrawOverlay renders the selection info text in screen space. Nothing is
// drawn when there is no selection.
func (m *MapView) DrawOverlay(screen *ebiten.Image) {
	_, terr := m.state.Selection()
	if terr == nil {
		return
	}

	text.Draw(screen, fmt.Sprintf("Selected: %s", terr.Name), m.face, 10, 20, OverlayTextColor)
	text.Draw(screen, fmt.Sprintf("Armies: %d", terr.Armies), m.face, 10, 40, OverlayTextColor)
}
