package sim

import "math"

// resolveWheel detects and resolves penetration of a single wheel into the
// terrain. The wheel is a circle of radius r around the center; it penetrates
// when its lower edge is below the surface.
//
// On contact the wheel is clamped tangent to the surface, downward velocity
// is removed (inelastic, no bounce), rolling friction damps vx, and the
// velocity heading is blended toward the slope direction. Blending rather
// than snapping keeps the motion smooth on rough terrain; an instant snap
// jitters visibly at segment boundaries.
func resolveWheel(w *Wheel, t *Terrain, r, friction, slopeBlend float64) bool {
	surfaceY := t.HeightAt(w.X)
	if w.Y+r <= surfaceY {
		return false
	}

	w.Y = surfaceY - r

	if w.VY > 0 {
		w.VY = 0
	}

	w.VX *= friction

	// Redirect velocity toward the slope, preserving speed. The heading
	// moves slopeBlend of the way toward atan(slope) each contact step.
	speed := math.Hypot(w.VX, w.VY)
	if speed > 0 {
		heading := math.Atan2(w.VY, w.VX)
		slopeAngle := math.Atan(t.SlopeAt(w.X))
		blended := heading*(1-slopeBlend) + slopeAngle*slopeBlend
		w.VX = speed * math.Cos(blended)
		w.VY = speed * math.Sin(blended)
	}

	return true
}
