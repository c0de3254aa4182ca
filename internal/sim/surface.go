package sim

import "image/color"

// Surface is the drawing target a Scene renders into. Colors are alpha-aware;
// implementations must blend translucent fills over what is already drawn.
type Surface interface {
	// Clear resets the whole surface to transparent.
	Clear()
	// Fade covers the whole surface with a translucent fill, leaving trails.
	Fade(c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	FillEllipse(x, y, rx, ry float64, c color.Color)
	StrokeEllipse(x, y, rx, ry, width float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// FillGradient fills a rectangle with a vertical linear gradient.
	FillGradient(x, y, w, h float64, top, bottom color.Color)
}

// Splasher reacts audibly to a boost. strength is the share of droplets kicked.
type Splasher interface {
	Splash(strength float64)
}
