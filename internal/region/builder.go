package region

import (
	"math"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
)

// Result bundles the graph with the risk-annotated objects it was derived
// from (risk factors are attached back onto the owning object, per
// spec.md §4.4).
type Result struct {
	Graph           *Graph
	ObjectRisk      map[string]model.RiskFactors
	RegionToObject  map[string]string
}

// Options configures adjacency detection, per spec.md §4.4.
type Options struct {
	BoundsTolerance float64 // mm; default 0.1
	GapThreshold    float64 // mm; shared length below this is classified GAP
}

// DefaultOptions returns the spec's default 0.1mm bounds tolerance.
func DefaultOptions() Options {
	return Options{BoundsTolerance: 0.1, GapThreshold: 0.5}
}

// Build extracts regions from doc's objects and computes their adjacency
// graph, per spec.md §4.4.
func Build(doc model.Document, opts Options) Result {
	g := newGraph()
	risk := make(map[string]model.RiskFactors, len(doc.Objects))
	regionToObject := make(map[string]string)

	for _, obj := range doc.Objects {
		risk[obj.ID] = computeRisk(obj)

		for _, r := range extractRegions(obj) {
			g.Regions[r.ID] = r
			regionToObject[r.ID] = obj.ID
		}
	}

	ids := g.OrderedRegionIDs()
	for i, aID := range ids {
		aReg := g.Regions[aID]
		aObj, _ := doc.ObjectByID(regionToObject[aID])
		aBounds := aReg.Contour.Bounds().Grown(opts.BoundsTolerance)

		for j := i + 1; j < len(ids); j++ {
			bID := ids[j]
			bReg := g.Regions[bID]
			bObj, _ := doc.ObjectByID(regionToObject[bID])
			bBounds := bReg.Contour.Bounds().Grown(opts.BoundsTolerance)

			if !aBounds.Overlaps(bBounds) {
				continue
			}

			shared, ok := sharedEdge(aReg.Contour, bReg.Contour, opts.BoundsTolerance)
			if !ok {
				continue
			}

			contact, edgeLen := classifyContact(aObj, bObj, aReg, bReg, shared, opts)
			trapRequired := trapRequired(doc, aReg, bReg, contact)

			g.Out[aID] = append(g.Out[aID], Adjacency{From: aID, To: bID, SharedEdge: shared, EdgeLength: edgeLen, Contact: contact, TrapRequired: trapRequired})
			g.Out[bID] = append(g.Out[bID], Adjacency{From: bID, To: aID, SharedEdge: shared.Reversed(), EdgeLength: edgeLen, Contact: contact, TrapRequired: trapRequired})
		}
	}

	return Result{Graph: g, ObjectRisk: risk, RegionToObject: regionToObject}
}

// extractRegions derives the fill and/or stroke regions for one object,
// per spec.md §4.4.
func extractRegions(obj model.GraphicObject) []Region {
	var out []Region

	if obj.Type == model.ObjectText {
		// Text objects contribute a single region per text object at this
		// layer of abstraction, per spec.md §4.4.
		colorID := ""
		if obj.Fill != nil {
			colorID = obj.Fill.ColorID
		}
		contour := geom.Path{}
		if len(obj.Paths) > 0 {
			contour = obj.Paths[0]
		}
		out = append(out, Region{ID: newRegionID(), ObjectID: obj.ID, ColorID: colorID, Contour: contour, AreaMM2: contour.ShoelaceArea()})
		return out
	}

	if obj.Fill != nil && obj.Fill.Opacity > 0 {
		for _, p := range obj.Paths {
			out = append(out, Region{ID: newRegionID(), ObjectID: obj.ID, ColorID: obj.Fill.ColorID, Contour: p, AreaMM2: p.ShoelaceArea()})
		}
	}

	if obj.Stroke != nil && obj.Stroke.Width >= 0.1 && obj.Stroke.Opacity > 0 {
		for _, p := range obj.Paths {
			// A full implementation widens the stroke into a closed
			// contour via the offset engine applied symmetrically; this
			// simplified path uses the base path as the contour and tags
			// the region as a stroke, per spec.md §4.4's explicitly
			// permitted simplification.
			out = append(out, Region{ID: newRegionID(), ObjectID: obj.ID, ColorID: obj.Stroke.ColorID, Contour: p, AreaMM2: p.ShoelaceArea(), IsStroke: true})
		}
	}

	return out
}

// computeRisk derives the risk-factor record for one object, per
// spec.md §4.4.
func computeRisk(obj model.GraphicObject) model.RiskFactors {
	var r model.RiskFactors

	if obj.Type == model.ObjectText {
		heightMM := textHeightMM(obj)
		if heightMM < 2.1 {
			r.SmallText = true
			r.Advisories = append(r.Advisories, "text bounding-box height below 2.1mm (~6pt)")
		}
	}

	if obj.Stroke != nil && obj.Stroke.Width < 0.25 {
		r.ThinLine = true
		r.Advisories = append(r.Advisories, "stroke width below 0.25mm")
	}

	anchorCount := 0
	for _, p := range obj.Paths {
		anchorCount += p.AnchorCount()
		if hasSharpAngle(p) {
			r.SharpAngles = true
		}
	}
	if anchorCount > 100 {
		r.HighDetail = true
		r.Advisories = append(r.Advisories, "object has more than 100 anchors")
	}

	return r
}

// textHeightMM estimates text bounding-box height in mm. TextSizePt is
// carried on the object by ingestion; 1pt = 0.3528mm.
func textHeightMM(obj model.GraphicObject) float64 {
	if obj.TextSizePt > 0 {
		return obj.TextSizePt * 0.3528
	}
	b := obj.Bounds()
	return b.Height()
}

// hasSharpAngle reports whether any triplet of consecutive anchors has
// interior angle < 30 degrees, per spec.md §4.4.
func hasSharpAngle(p geom.Path) bool {
	n := len(p.Points)
	if n < 3 {
		return false
	}
	start, limit := 0, n
	if !p.Closed {
		start, limit = 1, n-1
	}
	for i := start; i < limit; i++ {
		prev := p.Points[((i-1)+n)%n].Anchor
		cur := p.Points[i%n].Anchor
		next := p.Points[(i+1)%n].Anchor

		v1 := prev.Sub(cur).Normalize()
		v2 := next.Sub(cur).Normalize()
		if v1 == (geom.Vec2{}) || v2 == (geom.Vec2{}) {
			continue
		}
		cosAngle := v1.Dot(v2)
		if cosAngle > 1 {
			cosAngle = 1
		}
		if cosAngle < -1 {
			cosAngle = -1
		}
		angle := math.Acos(cosAngle) * 180 / math.Pi
		if angle < 30 {
			return true
		}
	}
	return false
}

// sharedEdge finds the subset of anchors of a within tolerance of any
// anchor of b, per spec.md §4.4 step 2. Fewer than 2 shared points means
// no adjacency.
func sharedEdge(a, b geom.Path, tolerance float64) (geom.Path, bool) {
	var shared []geom.Point
	for _, pa := range a.Points {
		for _, pb := range b.Points {
			if pa.Anchor.Sub(pb.Anchor).Length() <= tolerance {
				shared = append(shared, pa)
				break
			}
		}
	}
	if len(shared) < 2 {
		return geom.Path{}, false
	}
	return geom.Path{Points: shared, Closed: false}, true
}

// classifyContact determines the ContactType and shared-edge length for an
// adjacency, per spec.md §4.4 step 3.
func classifyContact(a, b model.GraphicObject, aReg, bReg Region, shared geom.Path, opts Options) (ContactType, float64) {
	edgeLen := polylineLength(shared)

	if a.Overprint || b.Overprint {
		return ContactOverprint, edgeLen
	}
	if a.Knockout || b.Knockout {
		return ContactKnockout, edgeLen
	}
	aBounds := aReg.Contour.Bounds()
	bBounds := bReg.Contour.Bounds()
	if aBounds.Contains(bBounds) || bBounds.Contains(aBounds) {
		return ContactOverlap, edgeLen
	}
	if edgeLen > 0 && edgeLen < opts.GapThreshold {
		return ContactGap, edgeLen
	}
	return ContactEdgeToEdge, edgeLen
}

func polylineLength(p geom.Path) float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].Anchor.Sub(p.Points[i-1].Anchor).Length()
	}
	return total
}

// trapRequired implements the trap-required gate of spec.md §4.4 step 4.
func trapRequired(doc model.Document, a, b Region, contact ContactType) bool {
	colA, okA := doc.ColorByID(a.ColorID)
	colB, okB := doc.ColorByID(b.ColorID)
	if !okA || !okB {
		return false
	}
	if colA.Type == color.TypeTransparent || colB.Type == color.TypeTransparent {
		return false
	}
	if colA.Type == color.TypeVarnish || colB.Type == color.TypeVarnish {
		return false
	}
	if contact == ContactOverprint {
		return false
	}
	if colA.Type == color.TypeWhiteUnderprint || colB.Type == color.TypeWhiteUnderprint {
		return true
	}
	return color.DeltaE76(colA, colB) > 10
}
