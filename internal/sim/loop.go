package sim

// Tick runs one frame: clear or fade the surface, draw the ground strip,
// then update and draw every fountain in order. The host calls it once per
// display refresh; the fountain sequence is read fresh on every call.
func (s *Scene) Tick(dst Surface) {
	p := s.profile
	if p.Trail {
		dst.Fade(p.TrailColor)
	} else {
		dst.Clear()
	}

	s.drawGround(dst)

	fountains := s.fountains
	for _, f := range fountains {
		f.Update()
		f.Draw(dst)
	}
	s.frame++
}

func (s *Scene) drawGround(dst Surface) {
	p := s.profile
	h := p.GroundHeight
	if h <= 0 {
		return
	}
	if h > s.height {
		h = s.height
	}
	dst.FillGradient(0, s.height-h, s.width, h, p.GroundTop, p.GroundBottom)
}
