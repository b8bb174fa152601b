package offset

import "github.com/coldpress/trapcore/internal/geom"

// removeMicroLoops sweeps the anchor points of p and removes small
// self-intersecting loops of diameter <= |distance|/2, per spec.md §4.3
// step 4. Full Bentley-Ottmann intersection detection is out of scope;
// this conservative pass only catches loops formed between anchors close
// enough in index and distance to plausibly be offset artifacts, which is
// the case the spec calls out as sufficient.
func removeMicroLoops(p geom.Path, distance float64) geom.Path {
	threshold := abs(distance) / 2
	if threshold <= 0 || len(p.Points) < 4 {
		return p
	}

	pts := p.Points
	n := len(pts)
	out := make([]geom.Point, 0, n)
	i := 0
	for i < n {
		out = append(out, pts[i])
		removed := false
		// look ahead a bounded window for a near-coincident anchor, which
		// indicates the path looped back on itself within this span
		maxLook := n
		if maxLook > 8 {
			maxLook = 8
		}
		for j := 2; j < maxLook && i+j < n; j++ {
			if pts[i].Anchor.Sub(pts[i+j].Anchor).Length() <= threshold {
				i += j // skip the looped span entirely
				removed = true
				break
			}
		}
		if !removed {
			i++
		}
	}
	return geom.Path{Points: out, Closed: p.Closed}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
