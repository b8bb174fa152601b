package offset

import (
	"math"

	"github.com/coldpress/trapcore/internal/geom"
)

const maxCuspSplitDepth = 4

// Offset computes the signed offset of p by opts.Distance, per spec.md
// §4.3. A path with fewer than 2 points is returned unchanged. A NaN
// control point aborts the offset for this path: the second return value
// is false and the caller should surface a complex-geometry warning.
func Offset(p geom.Path, opts Options) (geom.Path, bool) {
	if len(p.Points) < 2 {
		return p, true
	}
	if pathHasNaN(p) {
		return geom.Path{}, false
	}

	segCount := p.SegmentCount()
	if segCount == 0 {
		return p, true
	}

	segLengths := make([]float64, segCount)
	total := 0.0
	for i := 0; i < segCount; i++ {
		p0, p1, p2, p3, isLine := p.Segment(i)
		var l float64
		if isLine {
			l = p3.Sub(p0).Length()
		} else {
			l = geom.CubicArcLength(p0, p1, p2, p3, geom.AdaptiveSampleCount(p0, p1, p2, p3, opts.effectiveCurveTolerance()))
		}
		segLengths[i] = l
		total += l
	}
	if total < geom.TangentEqTol {
		total = 1 // degenerate path: avoid divide-by-zero; width profile becomes constant
	}

	type chain struct {
		segs []offsetSeg
	}
	chains := make([]chain, 0, segCount)
	cum := 0.0
	for i := 0; i < segCount; i++ {
		p0, p1, p2, p3, isLine := p.Segment(i)
		tStart := cum / total
		cum += segLengths[i]
		tEnd := cum / total

		if p0.Near(p3) && isLine {
			continue // zero-length segment skipped per spec.md §4.3 failure policy
		}

		d := opts.Distance * opts.widthMultiplier(tStart, tEnd)

		var segs []offsetSeg
		if isLine {
			segs = []offsetSeg{offsetLine(p0, p3, d)}
		} else {
			segs = offsetByCuspSplit(p0, p1, p2, p3, d, opts.effectiveCurveTolerance(), maxCuspSplitDepth)
		}
		chains = append(chains, chain{segs: segs})
	}

	if len(chains) == 0 {
		return geom.Path{Closed: p.Closed}, true
	}

	var allSegs []offsetSeg
	for ci, c := range chains {
		allSegs = append(allSegs, c.segs...)
		if ci == len(chains)-1 && !p.Closed {
			continue
		}
		next := chains[(ci+1)%len(chains)]
		last := c.segs[len(c.segs)-1]
		first := next.segs[0]
		d := opts.Distance
		if classifyCorner(last.EndTangent, first.StartTangent, d) {
			allSegs = append(allSegs, straightJoin(last.P3, first.P0))
		} else {
			allSegs = append(allSegs, bridgeSegments(last, first, d, opts.Corner, opts.MiterLimit, opts.effectiveArcTolerance())...)
		}
	}

	out := buildPath(allSegs, p.Closed)

	if opts.RemoveLoops {
		out = removeMicroLoops(out, opts.Distance)
	}

	return out, true
}

func (o Options) effectiveCurveTolerance() float64 {
	if o.CurveTolerance > 0 {
		return o.CurveTolerance
	}
	return 0.01
}

func (o Options) effectiveArcTolerance() float64 {
	if o.ArcTolerance > 0 {
		return o.ArcTolerance
	}
	return 0.01
}

func (o Options) widthMultiplier(tStart, tEnd float64) float64 {
	if o.Width == nil {
		return 1
	}
	return (o.Width.At(tStart) + o.Width.At(tEnd)) / 2
}

func pathHasNaN(p geom.Path) bool {
	check := func(v geom.Vec2) bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
	for _, pt := range p.Points {
		if check(pt.Anchor) {
			return true
		}
		if pt.HandleIn != nil && check(*pt.HandleIn) {
			return true
		}
		if pt.HandleOut != nil && check(*pt.HandleOut) {
			return true
		}
	}
	return false
}

// buildPath stitches a flat sequence of offsetSeg (already including any
// corner bridges) into a geom.Path.
func buildPath(segs []offsetSeg, closed bool) geom.Path {
	if len(segs) == 0 {
		return geom.Path{Closed: closed}
	}
	pts := make([]geom.Point, 0, len(segs)+1)
	pts = append(pts, geom.Point{Anchor: segs[0].P0})
	for i, s := range segs {
		if !s.IsLine {
			h1 := s.P1
			pts[len(pts)-1].HandleOut = &h1
		}
		np := geom.Point{Anchor: s.P3}
		if !s.IsLine {
			h2 := s.P2
			np.HandleIn = &h2
		}
		if i == len(segs)-1 && closed {
			// wrap: fold the final anchor's handle-in onto the first point
			// and drop the duplicate closing anchor, matching the
			// closed-path invariant in spec.md §3.
			pts[0].HandleIn = np.HandleIn
			break
		}
		pts = append(pts, np)
	}
	return geom.Path{Points: pts, Closed: closed}
}
