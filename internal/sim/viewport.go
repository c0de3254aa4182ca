package sim

import "time"

// Viewport decides when a reported surface size should trigger a relayout.
// Plain resizes apply at once. An orientation flip is held until the size has
// stayed unchanged for the settle delay, because platforms report the final
// dimensions late after rotating.
type Viewport struct {
	settle time.Duration
	now    func() time.Time

	applied       bool
	width, height float64
	pending       bool
	pendW, pendH  float64
	pendingSince  time.Time
}

// NewViewport returns a tracker that waits settle after orientation changes.
func NewViewport(settle time.Duration) *Viewport {
	return &Viewport{settle: settle, now: time.Now}
}

// Observe records the latest reported size. It returns the size to lay out
// and true when the scene should be rebuilt now.
func (v *Viewport) Observe(w, h float64) (float64, float64, bool) {
	if !v.applied {
		return v.apply(w, h)
	}

	if v.pending {
		if w == v.width && h == v.height {
			// Flipped back before settling.
			v.pending = false
			return 0, 0, false
		}
		if w != v.pendW || h != v.pendH {
			v.pendW, v.pendH = w, h
			v.pendingSince = v.now()
			return 0, 0, false
		}
		if v.now().Sub(v.pendingSince) < v.settle {
			return 0, 0, false
		}
		return v.apply(w, h)
	}

	if w == v.width && h == v.height {
		return 0, 0, false
	}
	if portrait(w, h) != portrait(v.width, v.height) && v.settle > 0 {
		v.pending = true
		v.pendW, v.pendH = w, h
		v.pendingSince = v.now()
		return 0, 0, false
	}
	return v.apply(w, h)
}

// Pending reports whether an orientation change is waiting to settle.
func (v *Viewport) Pending() bool {
	return v.pending
}

func (v *Viewport) apply(w, h float64) (float64, float64, bool) {
	v.applied = true
	v.pending = false
	v.width, v.height = w, h
	return w, h, true
}

func portrait(w, h float64) bool {
	return h > w
}
