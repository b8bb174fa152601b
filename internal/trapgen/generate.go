package trapgen

import (
	"fmt"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/offset"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/ruleengine"
	"github.com/coldpress/trapcore/internal/warn"
	"github.com/google/uuid"
)

// Generate builds the TrapObject for one adjacency's decision, per
// spec.md §4.6. It offsets the shared-edge polyline from the spreading
// side by the decided width and stitches the swept band into a single
// closed contour; centerline decisions instead straddle the edge
// symmetrically and mix the two inks' color channel-wise.
//
// The returned bool is false when the decision calls for no trap at all
// (Direction == DirectionNone) or the underlying offset failed.
func Generate(adj region.Adjacency, aReg, bReg region.Region, aColor, bColor color.Color, decision ruleengine.Decision, opts offset.Options) (TrapObject, bool) {
	if decision.Direction == ruleengine.DirectionNone || len(adj.SharedEdge.Points) < 2 {
		return TrapObject{}, false
	}

	opts.Distance = decision.WidthMM

	var (
		contour    geom.Path
		trapColor  color.Color
		ok         = true
	)

	switch decision.Direction {
	case ruleengine.DirectionCenterline:
		contour, ok = centerlineBand(adj.SharedEdge, opts)
		trapColor = mixMax(aColor, bColor)
	case ruleengine.DirectionSpread:
		contour, ok = sweepBand(adj.SharedEdge, opts, true)
		trapColor = aColor
	case ruleengine.DirectionChoke:
		contour, ok = sweepBand(adj.SharedEdge, opts, false)
		trapColor = bColor
	}
	if !ok {
		w := warn.New(warn.KindComplexGeometry, warn.SeverityWarning, "trap contour offset failed, region skipped").
			WithRegion(aReg.ID)
		return TrapObject{ID: uuid.NewString(), RegionA: aReg.ID, RegionB: bReg.ID, Warnings: []warn.Warning{w}}, false
	}

	return TrapObject{
		ID:         uuid.NewString(),
		RegionA:    aReg.ID,
		RegionB:    bReg.ID,
		Contour:    contour,
		Color:      trapColor,
		Direction:  decision.Direction,
		Style:      decision.Style,
		WidthMM:    decision.WidthMM,
		FeatherMM:  decision.FeatherMM,
		SourceRule: decision.AppliedRuleID,
		Overprint:  true, // trap objects always print overprint, per spec.md §4.6 step 6
		Warnings:   decision.Warnings,
	}, true
}

// sweepBand offsets edge by opts.Distance (outward when spreadA, inward
// otherwise) and stitches the original and offset polylines into a single
// closed ring: forward along the offset edge, backward along the original,
// per spec.md §4.6's sliver-band construction.
func sweepBand(edge geom.Path, opts offset.Options, spreadA bool) (geom.Path, bool) {
	d := opts.Distance
	if !spreadA {
		d = -d
	}
	opts.Distance = d
	grown, ok := offset.Offset(edge, opts)
	if !ok {
		return geom.Path{}, false
	}
	return stitchRing(edge, grown), true
}

// centerlineBand straddles edge symmetrically: half the width spread,
// half choked, stitched into one ring.
func centerlineBand(edge geom.Path, opts offset.Options) (geom.Path, bool) {
	half := opts
	half.Distance = opts.Distance / 2
	outer, ok := offset.Offset(edge, half)
	if !ok {
		return geom.Path{}, false
	}
	half.Distance = -opts.Distance / 2
	inner, ok := offset.Offset(edge, half)
	if !ok {
		return geom.Path{}, false
	}
	return stitchRing(inner, outer), true
}

// stitchRing joins two open polylines sharing the same endpoints' arc-
// length parameterization into one closed contour: forward along b,
// backward along reversed a.
func stitchRing(a, b geom.Path) geom.Path {
	pts := make([]geom.Point, 0, len(a.Points)+len(b.Points))
	pts = append(pts, b.Points...)
	rev := a.Reversed()
	pts = append(pts, rev.Points...)
	return geom.Path{Points: pts, Closed: true}
}

// mixMax blends two inks channel-wise by taking the darker (larger) value
// per CMYK channel, per spec.md §4.6's centerline trap color rule.
func mixMax(a, b color.Color) color.Color {
	max := func(x, y float64) float64 {
		if x > y {
			return x
		}
		return y
	}
	mixed := color.CMYK{
		C: max(a.CMYK.C, b.CMYK.C),
		M: max(a.CMYK.M, b.CMYK.M),
		Y: max(a.CMYK.Y, b.CMYK.Y),
		K: max(a.CMYK.K, b.CMYK.K),
	}
	return color.NewFromCMYK(fmt.Sprintf("trap-mix-%s-%s", a.ID, b.ID), mixed, 1)
}
