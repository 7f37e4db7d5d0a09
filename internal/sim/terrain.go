// Package sim implements the motorcycle physics simulation: a procedural
// height-field track, a two-wheel rigid frame, a distance constraint solver,
// and terrain collision response, advanced by a fixed-order step.
// It contains pure logic with no external dependencies (especially no Bubble
// Tea) so it can be driven headless from tests or any host loop.
package sim

import (
	"math/rand"
	"sort"
)

// Segment is one linear piece of the terrain height field.
// Within [X0, X0+Length) the surface is y = Y0 + Slope*(x-X0).
// Y grows downward (screen convention), so a positive slope descends.
type Segment struct {
	X0     float64
	Y0     float64
	Slope  float64
	Length float64
}

// EndY returns the y coordinate at the right edge of the segment.
func (s Segment) EndY() float64 {
	return s.Y0 + s.Slope*s.Length
}

// Terrain is an immutable piecewise-linear height field. Segments are
// contiguous and ascending in X0; queries outside the generated range
// extrapolate the nearest edge segment's line, so the track is effectively
// unbounded in both directions.
type Terrain struct {
	segments []Segment
}

// TrackConfig describes a track to generate.
type TrackConfig struct {
	SegmentCount  int
	SegmentLength float64
	StartY        float64
	SlopeRange    float64 // slopes are drawn uniformly from [-SlopeRange/2, +SlopeRange/2]
}

// GenerateTerrain builds a track left to right starting at x=0. Each segment
// continues from the previous segment's end point, so the curve is continuous
// with no vertical jumps. The rng makes generation deterministic per seed.
func GenerateTerrain(cfg TrackConfig, rng *rand.Rand) *Terrain {
	count := cfg.SegmentCount
	if count < 1 {
		count = 1
	}

	segments := make([]Segment, 0, count)
	x := 0.0
	y := cfg.StartY
	for i := 0; i < count; i++ {
		slope := (rng.Float64() - 0.5) * cfg.SlopeRange
		seg := Segment{X0: x, Y0: y, Slope: slope, Length: cfg.SegmentLength}
		segments = append(segments, seg)
		x += seg.Length
		y = seg.EndY()
	}

	return &Terrain{segments: segments}
}

// segmentAt finds the segment containing x. Segment start positions are
// sorted and disjoint, so a binary search gives a unique result. Queries
// before the first or after the last segment return the edge segment, whose
// line equation extrapolates indefinitely.
func (t *Terrain) segmentAt(x float64) Segment {
	i := sort.Search(len(t.segments), func(i int) bool {
		return t.segments[i].X0+t.segments[i].Length > x
	})
	if i >= len(t.segments) {
		i = len(t.segments) - 1
	}
	return t.segments[i]
}

// HeightAt returns the surface y at the given x. Never fails: x beyond the
// generated range uses the nearest edge segment's line.
func (t *Terrain) HeightAt(x float64) float64 {
	seg := t.segmentAt(x)
	return seg.Y0 + seg.Slope*(x-seg.X0)
}

// SlopeAt returns the surface slope at the given x, with the same edge
// extrapolation rule as HeightAt.
func (t *Terrain) SlopeAt(x float64) float64 {
	return t.segmentAt(x).Slope
}

// Length returns the total generated track length.
func (t *Terrain) Length() float64 {
	if len(t.segments) == 0 {
		return 0
	}
	last := t.segments[len(t.segments)-1]
	return last.X0 + last.Length
}

// Segments returns the generated segments. The slice must not be mutated.
func (t *Terrain) Segments() []Segment {
	return t.segments
}

// Point is a sampled surface position, used by renderers to draw the track.
type Point struct {
	X float64
	Y float64
}

// Profile samples the surface from x0 to x1 (inclusive) at the given step.
// It is a read-only query; a renderer draws the track from the result without
// touching terrain internals.
func (t *Terrain) Profile(x0, x1, step float64) []Point {
	if step <= 0 || x1 < x0 {
		return nil
	}
	points := make([]Point, 0, int((x1-x0)/step)+2)
	for x := x0; x < x1; x += step {
		points = append(points, Point{X: x, Y: t.HeightAt(x)})
	}
	points = append(points, Point{X: x1, Y: t.HeightAt(x1)})
	return points
}
