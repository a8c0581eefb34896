package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	toastWidth    = 260
	toastHeight   = 36
	toastMargin   = 10
	toastLifetime = 3 * time.Second
	maxToasts     = 4
)

// Toast is a single transient notification.
type Toast struct {
	Text      string
	CreatedAt time.Time
	expiresAt time.Time
}

// ToastManager stacks short-lived notifications in the top-right corner.
type ToastManager struct {
	toasts []*Toast
}

func NewToastManager() *ToastManager {
	return &ToastManager{}
}

// Push adds a notification, evicting the oldest when full.
func (tm *ToastManager) Push(msg string) {
	now := time.Now()
	tm.toasts = append(tm.toasts, &Toast{
		Text:      msg,
		CreatedAt: now,
		expiresAt: now.Add(toastLifetime),
	})
	if len(tm.toasts) > maxToasts {
		tm.toasts = tm.toasts[len(tm.toasts)-maxToasts:]
	}
}

// Update drops expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	kept := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Before(t.expiresAt) {
			kept = append(kept, t)
		}
	}
	tm.toasts = kept
}

// Draw renders the toast stack.
func (tm *ToastManager) Draw(screen *ebiten.Image, face font.Face) {
	screenW := screen.Bounds().Dx()
	x := float32(screenW - toastWidth - toastMargin)

	for i, t := range tm.toasts {
		y := float32(toastMargin + i*(toastHeight+toastMargin))

		vector.DrawFilledRect(screen, x, y, toastWidth, toastHeight, ToastBackground, false)
		vector.StrokeRect(screen, x, y, toastWidth, toastHeight, 1, ToastBorder, false)

		bounds := text.BoundString(face, t.Text)
		tx := int(x) + 10
		ty := int(y) + toastHeight/2 + bounds.Dy()/2 - 2
		text.Draw(screen, t.Text, face, tx, ty, ToastTextColor)
	}
}
