package app

import "image/color"

// Display palette. Territory color is a pure function of (owner, selected);
// nothing else feeds into it.
var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	HighlightColor  = color.RGBA{253, 249, 0, 255} // selected territory
	OwnerColors     = []color.RGBA{
		{0, 121, 241, 255}, // owner 0
		{0, 228, 48, 255},  // owner 1
	}
	FallbackOwnerColor = color.RGBA{130, 130, 130, 255} // any other owner
	OverlayTextColor   = color.RGBA{80, 80, 80, 255}
	LabelTextColor     = color.RGBA{60, 60, 60, 255}

	ToastBackground = color.RGBA{40, 40, 50, 240}
	ToastBorder     = color.RGBA{70, 130, 255, 255}
	ToastTextColor  = color.RGBA{240, 240, 240, 255}
)

// OutlineWidth is the territory edge stroke width in screen pixels.
const OutlineWidth = 2.0

// territoryColor derives the display color for one territory.
func territoryColor(owner int, selected bool) color.RGBA {
	if selected {
		return HighlightColor
	}
	if owner >= 0 && owner < len(OwnerColors) {
		return OwnerColors[owner]
	}
	return FallbackOwnerColor
}
