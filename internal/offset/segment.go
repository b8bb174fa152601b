package offset

import "github.com/coldpress/trapcore/internal/geom"

// offsetLine translates both endpoints by d * right-hand normal of the unit
// tangent (90deg clockwise), so positive d moves a counter-clockwise path
// outward, per spec.md §4.3 step 2 (LINE).
func offsetLine(p0, p3 geom.Vec2, d float64) offsetSeg {
	tangent := p3.Sub(p0).Normalize()
	normal := tangent.Perpendicular().Scale(-1)
	shift := normal.Scale(d)
	return offsetSeg{
		P0: p0.Add(shift), P1: p0.Add(shift), P2: p3.Add(shift), P3: p3.Add(shift),
		IsLine: true, StartTangent: tangent, EndTangent: tangent,
	}
}

// normalAt returns the unit right-hand normal (90deg clockwise from tangent)
// of the cubic at parameter t, or the zero vector at a degenerate
// (zero-speed) point.
func normalAt(p0, p1, p2, p3 geom.Vec2, t float64) geom.Vec2 {
	return geom.CubicDeriv1(p0, p1, p2, p3, t).Normalize().Perpendicular().Scale(-1)
}

// offsetSmoothBezier offsets a cubic with no internal cusp by moving its
// two endpoints along the curve's normals at t=0 and t=1, then rebuilding
// the handles from the original endpoint tangent directions and handle
// lengths, per spec.md §4.3 step 2 (BEZIER smooth segment).
func offsetSmoothBezier(p0, p1, p2, p3 geom.Vec2, d float64) offsetSeg {
	n0 := normalAt(p0, p1, p2, p3, 0)
	n3 := normalAt(p0, p1, p2, p3, 1)

	newP0 := p0.Add(n0.Scale(d))
	newP3 := p3.Add(n3.Scale(d))

	tangent0 := geom.CubicDeriv1(p0, p1, p2, p3, 0).Normalize()
	tangent3 := geom.CubicDeriv1(p0, p1, p2, p3, 1).Normalize()

	handleLen0 := p1.Sub(p0).Length()
	handleLen1 := p3.Sub(p2).Length()

	newP1 := newP0.Add(tangent0.Scale(handleLen0))
	newP2 := newP3.Sub(tangent3.Scale(handleLen1))

	return offsetSeg{
		P0: newP0, P1: newP1, P2: newP2, P3: newP3,
		StartTangent: tangent0, EndTangent: tangent3,
	}
}

// offsetByCuspSplit recursively splits a cubic at curvature sign changes and
// offsets each resulting smooth sub-segment, per spec.md §4.3 step 2
// (BEZIER with cusps). Recursion is bounded (maxDepth) so pathological
// curvature noise cannot loop forever; once the bound is hit the remaining
// span is sampled and refit instead (offsetBySampling).
func offsetByCuspSplit(p0, p1, p2, p3 geom.Vec2, d, curveTol float64, maxDepth int) []offsetSeg {
	if maxDepth <= 0 || !geom.HasCuspSignChange(p0, p1, p2, p3, 8) {
		if geom.HasCuspSignChange(p0, p1, p2, p3, 16) {
			return []offsetSeg{offsetBySampling(p0, p1, p2, p3, d, curveTol)}
		}
		return []offsetSeg{offsetSmoothBezier(p0, p1, p2, p3, d)}
	}

	cuspT := geom.FindCuspParameter(p0, p1, p2, p3, 0, 1)
	left, right := geom.CubicSplit(p0, p1, p2, p3, cuspT)

	var out []offsetSeg
	out = append(out, offsetByCuspSplit(left[0], left[1], left[2], left[3], d, curveTol, maxDepth-1)...)
	out = append(out, offsetByCuspSplit(right[0], right[1], right[2], right[3], d, curveTol, maxDepth-1)...)
	return out
}

// offsetBySampling samples N points along the segment's arc length,
// offsets each by d along its local normal, and refits a single cubic
// through the resulting polyline, per spec.md §4.3 step 2's fallback for
// a segment still non-smooth after cusp splitting.
func offsetBySampling(p0, p1, p2, p3 geom.Vec2, d, curveTol float64) offsetSeg {
	n := geom.AdaptiveSampleCount(p0, p1, p2, p3, curveTol)
	samples := make([]geom.Vec2, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		pt := geom.CubicPoint(p0, p1, p2, p3, t)
		samples[i] = pt.Add(normalAt(p0, p1, p2, p3, t).Scale(d))
	}
	return fitCubicThroughSamples(samples)
}

// fitCubicThroughSamples builds a single cubic approximating an offset
// polyline: endpoints match exactly, tangent directions are estimated from
// the chords spanning the first two and the last two sample steps, and both
// handle lengths are set to a third of the first-to-last sample chord (the
// standard first-order estimate
// used when a full least-squares fit, per spec.md §9, is not required).
func fitCubicThroughSamples(samples []geom.Vec2) offsetSeg {
	n := len(samples)
	p0 := samples[0]
	p3 := samples[n-1]

	tangent0 := samples[min(2, n-1)].Sub(p0).Normalize()
	tangent3 := p3.Sub(samples[max(n-3, 0)]).Normalize()

	chordLen := p3.Sub(p0).Length()
	handleLen := chordLen / 3

	p1 := p0.Add(tangent0.Scale(handleLen))
	p2 := p3.Sub(tangent3.Scale(handleLen))

	return offsetSeg{P0: p0, P1: p1, P2: p2, P3: p3, StartTangent: tangent0, EndTangent: tangent3}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
