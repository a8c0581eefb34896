package app

import (
	"fmt"

	"riskmap/storage"
	"riskmap/truntime"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// App is the Ebiten host for the map runtime. One Update is one logical
// tick: poll input, resolve at most one primary click through the
// selection controller, then Draw performs a read-only render pass.
type App struct {
	state   *truntime.State
	pointer *PointerInput
	camera  *Camera
	view    *MapView
	toasts  *ToastManager
	face    font.Face

	clipboardReady bool
}

// New wires the GUI around an already-loaded runtime state.
func New(st *truntime.State) *App {
	cam := NewCamera()
	face := basicfont.Face7x13

	return &App{
		state:   st,
		pointer: NewPointerInput(),
		camera:  cam,
		view:    NewMapView(st, cam, face),
		toasts:  NewToastManager(),
		face:    face,
	}
}

// SetClipboardReady marks the system clipboard as usable. main calls this
// after clipboard.Init succeeds on desktop platforms.
func (a *App) SetClipboardReady(ready bool) {
	a.clipboardReady = ready
}

func (a *App) Update() error {
	a.pointer.Update()

	for _, ev := range a.pointer.Events() {
		switch ev.Type {
		case PointerMove:
			// A held pointer pans; selection only changes on a clean click.
			a.camera.Pan(ev.Delta.X, ev.Delta.Y)
		case PointerClick:
			a.state.HandleClick(a.camera.ScreenToMap(ev.Position.X, ev.Position.Y))
		case PointerWheel:
			a.camera.ZoomAt(ev.Wheel, ev.Position.X, ev.Position.Y)
		}
	}

	a.handleKeys()
	a.toasts.Update()
	return nil
}

func (a *App) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.state.Deselect()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.camera.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.copySelection()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := a.state.SaveSnapshot(storage.DataFile(storage.DefaultSnapshotName)); err != nil {
			a.toasts.Push(fmt.Sprintf("Save failed: %v", err))
		} else {
			a.toasts.Push("State saved")
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := a.state.LoadSnapshot(storage.DataFile(storage.DefaultSnapshotName)); err != nil {
			a.toasts.Push(fmt.Sprintf("Load failed: %v", err))
		} else {
			a.toasts.Push("State loaded")
		}
	}
}

func (a *App) copySelection() {
	_, terr := a.state.Selection()
	if terr == nil {
		a.toasts.Push("Nothing selected")
		return
	}
	if !a.clipboardReady {
		a.toasts.Push("Clipboard unavailable")
		return
	}

	summary := fmt.Sprintf("%s: owner %d, %d armies", terr.Name, terr.Owner, terr.Armies)
	clipboard.Write(clipboard.FmtText, []byte(summary))
	a.toasts.Push(fmt.Sprintf("Copied %s", terr.Name))
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)
	a.view.Draw(screen)
	a.view.DrawOverlay(screen)
	a.toasts.Draw(screen, a.face)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	return outsideWidth, outsideHeight
}
