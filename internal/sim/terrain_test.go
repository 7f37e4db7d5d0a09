package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestGenerateTerrainContinuity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	terrain := GenerateTerrain(TrackConfig{
		SegmentCount:  50,
		SegmentLength: 120,
		StartY:        300,
		SlopeRange:    1.5,
	}, rng)

	segs := terrain.Segments()
	if len(segs) != 50 {
		t.Fatalf("expected 50 segments, got %d", len(segs))
	}

	for i := 0; i < len(segs)-1; i++ {
		boundary := segs[i].X0 + segs[i].Length
		if math.Abs(boundary-segs[i+1].X0) > 1e-9 {
			t.Errorf("segment %d not contiguous: ends at %f, next starts at %f", i, boundary, segs[i+1].X0)
		}

		// Height just before and after the boundary must agree.
		before := terrain.HeightAt(boundary - 1e-9)
		after := terrain.HeightAt(boundary)
		if math.Abs(before-after) > 1e-6 {
			t.Errorf("height discontinuity at segment %d boundary: %f vs %f", i, before, after)
		}
	}
}

func TestGenerateTerrainSlopeBounds(t *testing.T) {
	slopeRange := 0.8
	rng := rand.New(rand.NewSource(99))
	terrain := GenerateTerrain(TrackConfig{
		SegmentCount:  200,
		SegmentLength: 50,
		StartY:        0,
		SlopeRange:    slopeRange,
	}, rng)

	for i, seg := range terrain.Segments() {
		if seg.Slope < -slopeRange/2 || seg.Slope > slopeRange/2 {
			t.Errorf("segment %d slope %f outside [%f, %f]", i, seg.Slope, -slopeRange/2, slopeRange/2)
		}
	}
}

func TestGenerateTerrainDeterminism(t *testing.T) {
	cfg := TrackConfig{SegmentCount: 30, SegmentLength: 100, StartY: 250, SlopeRange: 1.0}

	t1 := GenerateTerrain(cfg, rand.New(rand.NewSource(42)))
	t2 := GenerateTerrain(cfg, rand.New(rand.NewSource(42)))

	for i := range t1.Segments() {
		a, b := t1.Segments()[i], t2.Segments()[i]
		if a != b {
			t.Fatalf("segment %d differs between identically seeded terrains: %+v vs %+v", i, a, b)
		}
	}
}

// flatTerrain builds a hand-made track for scenario tests.
func flatTerrain(segCount int, segLength, y float64) *Terrain {
	segments := make([]Segment, segCount)
	for i := range segments {
		segments[i] = Segment{X0: float64(i) * segLength, Y0: y, Slope: 0, Length: segLength}
	}
	return &Terrain{segments: segments}
}

func TestHeightAtInterpolation(t *testing.T) {
	terrain := &Terrain{segments: []Segment{
		{X0: 0, Y0: 100, Slope: 0.5, Length: 200},
		{X0: 200, Y0: 200, Slope: -0.25, Length: 200},
	}}

	tests := []struct {
		x    float64
		want float64
	}{
		{0, 100},
		{100, 150},
		{200, 200},  // second segment start, continuous with first segment end
		{300, 175},  // 200 - 0.25*100
		{400, 150},  // last segment end
		{1000, 0},   // extrapolated: 200 - 0.25*800
		{-100, 50},  // extrapolated before first segment: 100 + 0.5*(-100)
	}
	for _, tc := range tests {
		got := terrain.HeightAt(tc.x)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("HeightAt(%f) = %f, want %f", tc.x, got, tc.want)
		}
	}
}

func TestSlopeAtExtrapolation(t *testing.T) {
	terrain := &Terrain{segments: []Segment{
		{X0: 0, Y0: 0, Slope: 0.3, Length: 100},
		{X0: 100, Y0: 30, Slope: -0.1, Length: 100},
	}}

	if got := terrain.SlopeAt(-50); got != 0.3 {
		t.Errorf("SlopeAt before first segment = %f, want 0.3", got)
	}
	if got := terrain.SlopeAt(50); got != 0.3 {
		t.Errorf("SlopeAt(50) = %f, want 0.3", got)
	}
	if got := terrain.SlopeAt(150); got != -0.1 {
		t.Errorf("SlopeAt(150) = %f, want -0.1", got)
	}
	if got := terrain.SlopeAt(1e9); got != -0.1 {
		t.Errorf("SlopeAt far beyond track = %f, want -0.1", got)
	}
}

func TestHeightAtExtrapolationConsistency(t *testing.T) {
	// Arbitrarily large x must stay on the last segment's line equation.
	rng := rand.New(rand.NewSource(3))
	terrain := GenerateTerrain(TrackConfig{SegmentCount: 10, SegmentLength: 100, StartY: 500, SlopeRange: 1.0}, rng)

	segs := terrain.Segments()
	last := segs[len(segs)-1]
	for _, x := range []float64{1e3, 1e6, 1e9} {
		want := last.Y0 + last.Slope*(x-last.X0)
		got := terrain.HeightAt(x)
		if math.Abs(got-want) > math.Abs(want)*1e-12+1e-9 {
			t.Errorf("HeightAt(%g) = %f, want %f from last segment line", x, got, want)
		}
	}
}

func TestProfileSamples(t *testing.T) {
	terrain := flatTerrain(3, 400, 500)

	points := terrain.Profile(0, 100, 10)
	if len(points) == 0 {
		t.Fatal("expected profile samples")
	}
	if points[0].X != 0 {
		t.Errorf("first sample at x=%f, want 0", points[0].X)
	}
	if points[len(points)-1].X != 100 {
		t.Errorf("last sample at x=%f, want 100 (inclusive endpoint)", points[len(points)-1].X)
	}
	for _, p := range points {
		if p.Y != 500 {
			t.Errorf("flat terrain sample at x=%f has y=%f, want 500", p.X, p.Y)
		}
	}

	if got := terrain.Profile(100, 0, 10); got != nil {
		t.Errorf("inverted range should return nil, got %d points", len(got))
	}
	if got := terrain.Profile(0, 100, 0); got != nil {
		t.Errorf("zero step should return nil, got %d points", len(got))
	}
}
