package sim

import "math"

// distanceEpsilon is the tolerance on the inter-wheel distance invariant.
// Corrections smaller than this are skipped.
const distanceEpsilon = 1e-4

// degenerateDistance guards the constraint solver against coincident wheels,
// where the correction direction is undefined. Below this separation the
// correction is skipped entirely so no NaN can enter the state.
const degenerateDistance = 1e-9

// Wheel is a point mass at the wheel center. Y grows downward, so positive
// VY is falling.
type Wheel struct {
	X    float64
	Y    float64
	VX   float64
	VY   float64
	Mass float64
}

// Frame is the rigid two-wheel chassis. The wheels are held at WheelDistance
// apart; orientation has no field of its own and is derived from the
// rear-to-front vector.
type Frame struct {
	Front         Wheel
	Rear          Wheel
	WheelDistance float64
	WheelRadius   float64
}

// NewFrame places a frame resting on the terrain with the rear wheel at
// startX and the front wheel one wheel distance ahead.
func NewFrame(t *Terrain, startX, wheelDistance, wheelRadius, wheelMass float64) *Frame {
	rearX := startX
	frontX := startX + wheelDistance
	return &Frame{
		Rear:          Wheel{X: rearX, Y: t.HeightAt(rearX) - wheelRadius, Mass: wheelMass},
		Front:         Wheel{X: frontX, Y: t.HeightAt(frontX) - wheelRadius, Mass: wheelMass},
		WheelDistance: wheelDistance,
		WheelRadius:   wheelRadius,
	}
}

// Distance returns the current Euclidean distance between the wheel centers.
func (f *Frame) Distance() float64 {
	return math.Hypot(f.Front.X-f.Rear.X, f.Front.Y-f.Rear.Y)
}

// Midpoint returns the center of the frame.
func (f *Frame) Midpoint() (float64, float64) {
	return (f.Front.X + f.Rear.X) / 2, (f.Front.Y + f.Rear.Y) / 2
}

// Angle returns the orientation of the frame: atan2 of the rear-to-front
// vector. Zero when the bike is level and pointing right.
func (f *Frame) Angle() float64 {
	return math.Atan2(f.Front.Y-f.Rear.Y, f.Front.X-f.Rear.X)
}

// enforceDistance restores the fixed inter-wheel distance after free
// integration has perturbed it. Each wheel absorbs exactly half the error
// along the line connecting the centers, a single-pass positional correction
// that approximates a stiff massless rod. It is not momentum-exact, which is
// acceptable because the wheel separation is small relative to terrain
// curvature. Coincident wheels leave the correction direction undefined, so
// that case is skipped rather than dividing by zero.
func (f *Frame) enforceDistance() {
	dx := f.Front.X - f.Rear.X
	dy := f.Front.Y - f.Rear.Y
	d := math.Hypot(dx, dy)
	if d < degenerateDistance {
		return
	}

	err := d - f.WheelDistance
	if math.Abs(err) <= distanceEpsilon {
		return
	}

	// Unit vector from rear to front, each wheel moves half the error.
	ux := dx / d
	uy := dy / d
	half := err / 2
	f.Front.X -= ux * half
	f.Front.Y -= uy * half
	f.Rear.X += ux * half
	f.Rear.Y += uy * half
}

// rotate turns the whole frame by theta radians about its midpoint using the
// standard 2D rotation matrix. The center of mass does not translate.
func (f *Frame) rotate(theta float64) {
	cx, cy := f.Midpoint()
	sin, cos := math.Sincos(theta)

	rotateWheel := func(w *Wheel) {
		ox := w.X - cx
		oy := w.Y - cy
		w.X = cx + ox*cos - oy*sin
		w.Y = cy + ox*sin + oy*cos
	}
	rotateWheel(&f.Front)
	rotateWheel(&f.Rear)
}
