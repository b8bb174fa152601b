package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestCubicPointEndpoints(t *testing.T) {
	p0 := Vec2{0, 0}
	p1 := Vec2{1, 2}
	p2 := Vec2{3, 2}
	p3 := Vec2{4, 0}

	assert.InDelta(t, p0.X, CubicPoint(p0, p1, p2, p3, 0).X, 1e-9)
	assert.InDelta(t, p3.X, CubicPoint(p0, p1, p2, p3, 1).X, 1e-9)
}

func TestCubicSplitContinuity(t *testing.T) {
	p0 := Vec2{0, 0}
	p1 := Vec2{1, 3}
	p2 := Vec2{3, 3}
	p3 := Vec2{4, 0}

	left, right := CubicSplit(p0, p1, p2, p3, 0.4)
	assert.InDelta(t, 0.0, left[0].Sub(p0).Length(), 1e-9)
	assert.InDelta(t, 0.0, right[3].Sub(p3).Length(), 1e-9)
	// the split point must match on both sides
	assert.InDelta(t, 0.0, left[3].Sub(right[0]).Length(), 1e-9)

	want := CubicPoint(p0, p1, p2, p3, 0.4)
	assert.InDelta(t, 0.0, left[3].Sub(want).Length(), 1e-9)
}

func TestArcLengthMonotonicInSampleCount(t *testing.T) {
	p0 := Vec2{0, 0}
	p1 := Vec2{0, 10}
	p2 := Vec2{10, 10}
	p3 := Vec2{10, 0}

	coarse := CubicArcLength(p0, p1, p2, p3, 10)
	fine := CubicArcLength(p0, p1, p2, p3, 200)
	// both are polyline underestimates of true arc length; finer sampling
	// should get closer to (not below, modulo float noise) the coarse one
	assert.Greater(t, fine, coarse-1e-6)
}

// Property: splitting a cubic at any t in (0,1) preserves the endpoints and
// keeps the split point identical on both halves.
func TestCubicSplitProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		gen := rapid.Float64Range(-100, 100)
		p0 := Vec2{gen.Draw(rt, "p0x"), gen.Draw(rt, "p0y")}
		p1 := Vec2{gen.Draw(rt, "p1x"), gen.Draw(rt, "p1y")}
		p2 := Vec2{gen.Draw(rt, "p2x"), gen.Draw(rt, "p2y")}
		p3 := Vec2{gen.Draw(rt, "p3x"), gen.Draw(rt, "p3y")}
		tt := rapid.Float64Range(0.001, 0.999).Draw(rt, "t")

		left, right := CubicSplit(p0, p1, p2, p3, tt)
		if math.Abs(left[0].X-p0.X) > 1e-6 || math.Abs(left[0].Y-p0.Y) > 1e-6 {
			rt.Fatalf("left start drifted from p0")
		}
		if math.Abs(right[3].X-p3.X) > 1e-6 || math.Abs(right[3].Y-p3.Y) > 1e-6 {
			rt.Fatalf("right end drifted from p3")
		}
		if left[3].Sub(right[0]).Length() > 1e-6 {
			rt.Fatalf("split point mismatch between halves")
		}
	})
}

func TestShoelaceAreaSquare(t *testing.T) {
	p := NewPolyline([]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, true)
	assert.InDelta(t, 100.0, p.ShoelaceArea(), 1e-9)
}
