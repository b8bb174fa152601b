package trapgen

import (
	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/coldpress/trapcore/internal/offset"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/ruleengine"
)

// Build walks every unordered adjacency pair in g that the region builder
// flagged TrapRequired, decides the trap via the rule engine, generates its
// geometry, and rolls up stats, per spec.md §5's generate_traps pipeline.
// Iteration follows region.Graph.UnorderedPairs' order, which is sorted by
// region id. Region ids and trap ids are random UUIDs, so neither that
// order nor the ids repeat from one run over the same document to the next.
func Build(doc model.Document, g *region.Graph, settings config.Settings) TrapLayer {
	layer := TrapLayer{}

	for _, pair := range g.UnorderedPairs() {
		aID, bID := pair[0], pair[1]
		aReg, bReg := g.Regions[aID], g.Regions[bID]

		adj, found := findAdjacency(g, aID, bID)
		if !found || !adj.TrapRequired {
			layer.Stats.Skipped++
			continue
		}

		aColor, okA := doc.ColorByID(aReg.ColorID)
		bColor, okB := doc.ColorByID(bReg.ColorID)
		if !okA || !okB {
			layer.Stats.Skipped++
			continue
		}

		aObj, _ := doc.ObjectByID(aReg.ObjectID)
		bObj, _ := doc.ObjectByID(bReg.ObjectID)

		aInput := regionInput(aReg, aObj, aColor, doc)
		bInput := regionInput(bReg, bObj, bColor, doc)

		decision := ruleengine.Decide(aInput, bInput, settings)
		if decision.Direction == ruleengine.DirectionNone {
			layer.Stats.Skipped++
			layer.Stats.Warnings = append(layer.Stats.Warnings, decision.Warnings...)
			continue
		}

		cornerStyle := offset.CornerMiter
		switch settings.CornerStyle {
		case "round":
			cornerStyle = offset.CornerRound
		case "bevel":
			cornerStyle = offset.CornerBevel
		}
		opts := offset.DefaultOptions(decision.WidthMM, cornerStyle, settings.MiterLimit)

		trap, ok := Generate(adj, aReg, bReg, aColor, bColor, decision, opts)
		if !ok {
			layer.Stats.Skipped++
			layer.Stats.Warnings = append(layer.Stats.Warnings, trap.Warnings...)
			continue
		}

		layer.Objects = append(layer.Objects, trap)
		layer.Stats.Warnings = append(layer.Stats.Warnings, trap.Warnings...)
		tallyStats(&layer.Stats, trap)
	}

	groups := MergeOverlapping(layer.Objects)
	for _, grp := range groups {
		if len(grp) > 1 {
			layer.Stats.MergedGroups++
		}
	}

	return layer
}

func findAdjacency(g *region.Graph, aID, bID string) (region.Adjacency, bool) {
	for _, e := range g.Out[aID] {
		if e.To == bID {
			return e, true
		}
	}
	for _, e := range g.Out[bID] {
		if e.To == aID {
			return e, true
		}
	}
	return region.Adjacency{}, false
}

func regionInput(r region.Region, obj model.GraphicObject, c color.Color, doc model.Document) ruleengine.RegionInput {
	in := ruleengine.RegionInput{
		RegionID: r.ID,
		ObjectID: r.ObjectID,
		Color:    c,
		Risk:     obj.Risk,
		AreaMM2:  r.AreaMM2,
		IsText:   obj.Type == model.ObjectText,
		Knockout: obj.Knockout,
	}
	if in.IsText {
		in.TextSizePt = obj.TextSizePt
	}
	if r.IsStroke && obj.Stroke != nil {
		in.IsStroke = true
		in.StrokeWidthMM = obj.Stroke.Width
	}
	if tag, ok := doc.Tags[r.ObjectID]; ok {
		in.Tag = &tag
	}
	return in
}

func tallyStats(s *Stats, t TrapObject) {
	s.TotalTraps++
	switch t.Direction {
	case ruleengine.DirectionSpread:
		s.TotalSpread++
	case ruleengine.DirectionChoke:
		s.TotalChoke++
	case ruleengine.DirectionCenterline:
		s.TotalCenterline++
	}
	s.TotalLengthMM += polylineLength(t.Contour)
}

func polylineLength(p geom.Path) float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += p.Points[i].Anchor.Sub(p.Points[i-1].Anchor).Length()
	}
	return total
}
