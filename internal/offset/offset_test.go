package offset

import (
	"testing"

	"github.com/coldpress/trapcore/internal/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func square(side float64) geom.Path {
	return geom.NewPolyline([]geom.Vec2{
		{X: 0, Y: 0}, {X: side, Y: 0}, {X: side, Y: side}, {X: 0, Y: side},
	}, true)
}

func TestOffsetLineSquareMiter(t *testing.T) {
	p := square(10)
	out, ok := Offset(p, DefaultOptions(1.0, CornerMiter, 4))
	require.True(t, ok)
	require.NotEmpty(t, out.Points)

	// an outward offset of a CCW square should enlarge the area
	assert.Greater(t, out.ShoelaceArea(), p.ShoelaceArea())
}

func TestOffsetShortPathUnchanged(t *testing.T) {
	p := geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}}, false)
	out, ok := Offset(p, DefaultOptions(1, CornerMiter, 4))
	assert.True(t, ok)
	assert.Equal(t, p, out)
}

func TestOffsetNaNAborts(t *testing.T) {
	nan := geom.Vec2{X: naN(), Y: 0}
	p := geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, nan, {X: 2, Y: 2}}, false)
	_, ok := Offset(p, DefaultOptions(1, CornerMiter, 4))
	assert.False(t, ok)
}

func naN() float64 {
	var zero float64
	return zero / zero
}

func TestOffsetRoundCorner(t *testing.T) {
	p := square(10)
	opts := DefaultOptions(1.0, CornerRound, 4)
	out, ok := Offset(p, opts)
	require.True(t, ok)
	assert.Greater(t, len(out.Points), len(p.Points)) // round corners add anchor points
}

func TestOffsetBevelCorner(t *testing.T) {
	p := square(10)
	out, ok := Offset(p, DefaultOptions(1.0, CornerBevel, 4))
	require.True(t, ok)
	assert.Greater(t, out.ShoelaceArea(), p.ShoelaceArea())
}

// Property #5 (spec.md §8): offsetting a convex closed path by +d enlarges
// its shoelace area, by -d shrinks it.
func TestOffsetSignProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		side := rapid.Float64Range(2, 50).Draw(rt, "side")
		d := rapid.Float64Range(0.05, side/6).Draw(rt, "d")

		p := square(side)
		base := p.ShoelaceArea()

		outward, ok := Offset(p, DefaultOptions(d, CornerMiter, 4))
		if !ok {
			rt.Fatalf("offset failed unexpectedly")
		}
		if outward.ShoelaceArea() <= base {
			rt.Fatalf("expected outward offset to enlarge area: base=%v got=%v", base, outward.ShoelaceArea())
		}

		inward, ok := Offset(p, DefaultOptions(-d, CornerMiter, 4))
		if !ok {
			rt.Fatalf("offset failed unexpectedly")
		}
		if inward.ShoelaceArea() >= base {
			rt.Fatalf("expected inward offset to shrink area: base=%v got=%v", base, inward.ShoelaceArea())
		}
	})
}

func TestOffsetCuspSplitQuarterCircle(t *testing.T) {
	const kappa = 0.5522847498307936
	r := 10.0
	h2 := &geom.Vec2{X: r * kappa, Y: r}
	p := geom.Path{
		Points: []geom.Point{
			{Anchor: geom.Vec2{X: 0, Y: r}, HandleOut: &geom.Vec2{X: 0, Y: r - r*kappa}},
			{Anchor: geom.Vec2{X: r, Y: 0}, HandleIn: h2},
		},
		Closed: false,
	}
	out, ok := Offset(p, DefaultOptions(0.5, CornerRound, 4))
	require.True(t, ok)
	assert.NotEmpty(t, out.Points)
}
