package offset

import (
	"math"

	"github.com/coldpress/trapcore/internal/geom"
)

// classifyCorner reports whether the corner between dirIn (incoming
// original tangent) and dirOut (outgoing original tangent) is an inside or
// outside corner relative to the sign of the offset distance, per
// spec.md §4.3 step 3: dot(cross(dirIn, dirOut), sign(d)) < 0 => inside.
func classifyCorner(dirIn, dirOut geom.Vec2, d float64) (inside bool) {
	sign := 1.0
	if d < 0 {
		sign = -1.0
	}
	cross := dirIn.Cross(dirOut)
	return cross*sign < 0
}

// bridgeSegments returns the offsetSeg chain connecting segA's end to
// segB's start at an outside corner, per spec.md §4.3 step 3. Inside
// corners are handled by the caller with a single straight join (see
// offset.go); this only covers outside-corner styles.
func bridgeSegments(segA, segB offsetSeg, d float64, style CornerStyle, miterLimit, arcTolerance float64) []offsetSeg {
	endA := segA.P3
	startB := segB.P0

	switch style {
	case CornerRound:
		leaves := roundCornerArc(endA, startB, segA.EndTangent, segB.StartTangent, d, arcTolerance)
		out := make([]offsetSeg, len(leaves))
		for i, l := range leaves {
			out[i] = offsetSeg{P0: l.A, P1: l.P1, P2: l.P2, P3: l.B}
		}
		return out
	case CornerBevel:
		return []offsetSeg{straightJoin(endA, startB)}
	default: // CornerMiter
		if pt, ok := miterIntersection(endA, startB, segA.EndTangent, segB.StartTangent, d, miterLimit); ok {
			return []offsetSeg{straightJoin(endA, pt), straightJoin(pt, startB)}
		}
		return []offsetSeg{straightJoin(endA, startB)}
	}
}

func straightJoin(a, b geom.Vec2) offsetSeg {
	return offsetSeg{P0: a, P1: a, P2: b, P3: b, IsLine: true}
}

// miterIntersection computes the intersection of the offset lines through
// endA (direction tangentA) and startB (direction tangentB). Returns
// ok=false when the lines are parallel or the miter extension exceeds
// |d|*miterLimit, signaling the caller to fall back to a bevel.
func miterIntersection(endA, startB, tangentA, tangentB geom.Vec2, d, miterLimit float64) (geom.Vec2, bool) {
	cross := tangentA.Cross(tangentB)
	if math.Abs(cross) < geom.TangentEqTol {
		return geom.Vec2{}, false
	}
	// Solve endA + t*tangentA = startB + s*tangentB for t.
	diff := startB.Sub(endA)
	t := diff.Cross(tangentB) / cross
	pt := endA.Add(tangentA.Scale(t))

	// The "original vertex" is not directly available here; approximate the
	// miter-limit test using the offset distance from the corner point to
	// the nearer of endA/startB, which grows the same way a true miter
	// extension does as the corner sharpens.
	extension := math.Min(pt.Sub(endA).Length(), pt.Sub(startB).Length())
	if extension > math.Abs(d)*miterLimit {
		return geom.Vec2{}, false
	}
	return pt, true
}

// arcLeaf is one cubic's worth of control points approximating a circular
// arc from A to B.
type arcLeaf struct {
	A, P1, P2, B geom.Vec2
}

// roundCornerArc approximates a circular arc of radius |d| from endA to
// startB via the sagitta formula and the standard
// kappa = 4/3*tan(angle/4) handle-length factor. When the arc's sagitta
// would exceed arcTolerance for a single cubic, the arc is split once at
// its midpoint into two cubics (spec.md §4.3 step 3, "deeper arcs may be
// split into two cubics to meet arc tolerance"); deeper recursion is not
// needed in practice since trap corner angles are bounded well under a
// full semicircle.
func roundCornerArc(endA, startB, tangentA, tangentB geom.Vec2, d, arcTolerance float64) []arcLeaf {
	radius := math.Abs(d)
	if radius < geom.TangentEqTol {
		return nil
	}
	chord := startB.Sub(endA).Length()
	half := chord / (2 * radius)
	if half > 1 {
		half = 1
	}
	angle := 2 * math.Asin(half)
	sagitta := radius * (1 - math.Cos(angle/2))

	if sagitta > arcTolerance && angle > 1e-6 {
		mid := geom.Lerp(endA, startB, 0.5)
		bulgeDir := startB.Sub(endA).Normalize().Perpendicular()
		midArc := mid.Add(bulgeDir.Scale(-sagittaSign(d) * sagitta))
		midTangent := startB.Sub(endA).Normalize()
		return []arcLeaf{
			singleArcLeaf(endA, midArc, tangentA, midTangent, radius),
			singleArcLeaf(midArc, startB, midTangent, tangentB, radius),
		}
	}
	return []arcLeaf{singleArcLeaf(endA, startB, tangentA, tangentB, radius)}
}

func singleArcLeaf(a, b, tangentA, tangentB geom.Vec2, radius float64) arcLeaf {
	chord := b.Sub(a).Length()
	half := chord / (2 * radius)
	if half > 1 {
		half = 1
	}
	angle := 2 * math.Asin(half)
	kappa := 4.0 / 3.0 * math.Tan(angle/4)
	h := radius * kappa
	return arcLeaf{A: a, P1: a.Add(tangentA.Scale(h)), P2: b.Sub(tangentB.Scale(h)), B: b}
}

func sagittaSign(d float64) float64 {
	if d < 0 {
		return -1
	}
	return 1
}
