package qc

import (
	"fmt"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/trapgen"
	"github.com/coldpress/trapcore/internal/warn"
)

// Run executes the fixed QC catalogue of spec.md §4.7 over the given
// Document, the Region & Adjacency Builder's result, and the generated
// Trap Layer, returning a deterministic, side-effect-free Result.
func Run(doc model.Document, regions region.Result, layer trapgen.TrapLayer, settings config.Settings) Result {
	var res Result

	trappedObjects := trappedObjectSet(regions, layer)

	checkSmallText(doc, trappedObjects, settings, &res)
	checkWhiteUnderprint(doc, trappedObjects, settings, &res)
	checkHighContrastEdges(doc, regions, layer, &res)
	checkOverprintConflicts(doc, &res)
	checkThinLines(doc, trappedObjects, settings, &res)
	checkMetallicAdjacency(doc, regions, layer, &res)
	checkWidthConsistency(layer, settings, &res)
	checkComplexGeometry(doc, &res)

	res.finalize()
	return res
}

// trappedObjectSet maps an object id to whether any trap in layer
// references a region owned by it.
func trappedObjectSet(regions region.Result, layer trapgen.TrapLayer) map[string]bool {
	out := make(map[string]bool)
	for _, t := range layer.Objects {
		if objID, ok := regions.RegionToObject[t.RegionA]; ok {
			out[objID] = true
		}
		if objID, ok := regions.RegionToObject[t.RegionB]; ok {
			out[objID] = true
		}
	}
	return out
}

// 1. Small-text trapping.
func checkSmallText(doc model.Document, trapped map[string]bool, settings config.Settings, res *Result) {
	for _, obj := range doc.Objects {
		if obj.Type != model.ObjectText || !trapped[obj.ID] {
			continue
		}
		if obj.TextSizePt <= 0 || obj.TextSizePt >= settings.MinTextSizePt {
			continue
		}
		severity := warn.SeverityWarning
		if obj.TextSizePt < 4 {
			severity = warn.SeverityError
		}
		res.add(warn.New(warn.KindSmallText, severity,
			fmt.Sprintf("text object %s at %.1fpt has a trap referencing it", obj.ID, obj.TextSizePt)).WithObject(obj.ID))
	}
}

// 2. White-underprint spread.
func checkWhiteUnderprint(doc model.Document, trapped map[string]bool, settings config.Settings, res *Result) {
	var anyWhite bool
	for _, obj := range doc.Objects {
		if obj.Fill == nil {
			continue
		}
		c, ok := doc.ColorByID(obj.Fill.ColorID)
		if !ok || c.Type != color.TypeWhiteUnderprint {
			continue
		}
		anyWhite = true
		if settings.TrapWhiteUnderprint && !trapped[obj.ID] {
			res.add(warn.New(warn.KindWhiteUnderprintIssue, warn.SeverityWarning,
				fmt.Sprintf("white-underprint object %s has trap_white_underprint enabled but no trap", obj.ID)).WithObject(obj.ID))
		}
	}
	if !anyWhite {
		return
	}
	switch {
	case settings.WhiteSpreadMM < 0.10:
		res.add(warn.New(warn.KindWhiteUnderprintIssue, warn.SeverityError, "white_spread_mm below 0.10mm"))
	case settings.WhiteSpreadMM < 0.15:
		res.add(warn.New(warn.KindWhiteUnderprintIssue, warn.SeverityWarning, "white_spread_mm below 0.15mm"))
	}
}

// 3. High-contrast edges without a trap.
func checkHighContrastEdges(doc model.Document, regions region.Result, layer trapgen.TrapLayer, res *Result) {
	trapPairs := make(map[[2]string]bool)
	for _, t := range layer.Objects {
		a, b := t.RegionA, t.RegionB
		if a > b {
			a, b = b, a
		}
		trapPairs[[2]string{a, b}] = true
	}

	for _, pair := range regions.Graph.UnorderedPairs() {
		adj, ok := findAdjacency(regions.Graph, pair[0], pair[1])
		if !ok || !adj.TrapRequired {
			continue
		}
		aReg, bReg := regions.Graph.Regions[pair[0]], regions.Graph.Regions[pair[1]]
		aColor, okA := doc.ColorByID(aReg.ColorID)
		bColor, okB := doc.ColorByID(bReg.ColorID)
		if !okA || !okB {
			continue
		}
		contrast := luminanceDiff(aColor, bColor)
		if contrast <= 0.7 {
			continue
		}
		if trapPairs[pair] {
			continue
		}
		res.add(warn.New(warn.KindInsufficientSpread, warn.SeverityWarning,
			fmt.Sprintf("high-contrast adjacency %s/%s (contrast %.2f) requires a trap but has none", pair[0], pair[1], contrast)).
			WithRegion(pair[0]))
	}
}

func luminanceDiff(a, b color.Color) float64 {
	d := (a.Luminance() - b.Luminance()) / 100
	if d < 0 {
		d = -d
	}
	return d
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

// 4. Overprint conflicts.
func checkOverprintConflicts(doc model.Document, res *Result) {
	for _, obj := range doc.Objects {
		if obj.Fill == nil {
			continue
		}
		c, ok := doc.ColorByID(obj.Fill.ColorID)
		if !ok {
			continue
		}
		lum := c.Luminance()
		if obj.Overprint && lum > 70 {
			res.add(warn.New(warn.KindOverprintConflict, warn.SeverityWarning,
				fmt.Sprintf("object %s is overprint but its fill is light (L*=%.1f)", obj.ID, lum)).WithObject(obj.ID))
		}
		if obj.Knockout && lum < 30 {
			res.add(warn.New(warn.KindOverprintConflict, warn.SeverityInfo,
				fmt.Sprintf("object %s is a dark knockout (L*=%.1f) without trapping", obj.ID, lum)).WithObject(obj.ID))
		}
	}
}

// 5. Thin lines.
func checkThinLines(doc model.Document, trapped map[string]bool, settings config.Settings, res *Result) {
	for _, obj := range doc.Objects {
		if obj.Stroke == nil {
			continue
		}
		w := obj.Stroke.Width
		switch {
		case w < 0.1 && trapped[obj.ID]:
			res.add(warn.New(warn.KindThinLine, warn.SeverityWarning,
				fmt.Sprintf("hairline stroke on %s (%.3fmm) has a trap", obj.ID, w)).WithObject(obj.ID))
		case w < settings.MinLineWidthMM:
			res.add(warn.New(warn.KindThinLine, warn.SeverityInfo,
				fmt.Sprintf("stroke on %s (%.3fmm) below min_line_width_mm", obj.ID, w)).WithObject(obj.ID))
		}
	}
}

// 6. Metallic adjacency.
func checkMetallicAdjacency(doc model.Document, regions region.Result, layer trapgen.TrapLayer, res *Result) {
	trapPairs := make(map[[2]string]bool)
	for _, t := range layer.Objects {
		a, b := t.RegionA, t.RegionB
		if a > b {
			a, b = b, a
		}
		trapPairs[[2]string{a, b}] = true
	}

	for _, pair := range regions.Graph.UnorderedPairs() {
		adj, ok := findAdjacency(regions.Graph, pair[0], pair[1])
		if !ok {
			continue
		}
		aReg, bReg := regions.Graph.Regions[pair[0]], regions.Graph.Regions[pair[1]]
		aColor, okA := doc.ColorByID(aReg.ColorID)
		bColor, okB := doc.ColorByID(bReg.ColorID)
		if !okA || !okB {
			continue
		}
		aMetallic := aColor.Type == color.TypeMetallic
		bMetallic := bColor.Type == color.TypeMetallic
		if !aMetallic && !bMetallic {
			continue
		}
		if (aMetallic && bMetallic) || !adj.TrapRequired {
			continue
		}
		if trapPairs[pair] {
			res.add(warn.New(warn.KindMetallicAdjacent, warn.SeverityInfo,
				fmt.Sprintf("metallic adjacency %s/%s trapped", pair[0], pair[1])))
			continue
		}
		res.add(warn.New(warn.KindMetallicAdjacent, warn.SeverityWarning,
			fmt.Sprintf("metallic adjacency %s/%s required trapping but has none", pair[0], pair[1])))
	}
}

// 7. Trap-width consistency.
func checkWidthConsistency(layer trapgen.TrapLayer, settings config.Settings, res *Result) {
	if len(layer.Objects) == 0 {
		return
	}
	minW, maxW := layer.Objects[0].WidthMM, layer.Objects[0].WidthMM
	clamped := 0
	for _, t := range layer.Objects {
		if t.WidthMM < minW {
			minW = t.WidthMM
		}
		if t.WidthMM > maxW {
			maxW = t.WidthMM
		}
		if t.WidthMM <= settings.MinWidthMM || t.WidthMM >= settings.MaxWidthMM {
			clamped++
		}
	}
	if minW > 0 && maxW/minW > 3 {
		res.add(warn.New(warn.KindComplexGeometry, warn.SeverityWarning,
			fmt.Sprintf("trap width spread too large: max/min = %.2f", maxW/minW)))
	}
	if clamped > 0 {
		res.add(warn.New(warn.KindComplexGeometry, warn.SeverityInfo,
			fmt.Sprintf("%d trap(s) clamped to min/max width", clamped)))
	}
}

// 8. Complex geometry.
func checkComplexGeometry(doc model.Document, res *Result) {
	for _, obj := range doc.Objects {
		anchors := 0
		for _, p := range obj.Paths {
			anchors += p.AnchorCount()
		}
		if anchors > 500 {
			res.add(warn.New(warn.KindComplexGeometry, warn.SeverityInfo,
				fmt.Sprintf("object %s has %d anchors", obj.ID, anchors)).WithObject(obj.ID))
		}
		if obj.Risk.SharpAngles {
			res.add(warn.New(warn.KindComplexGeometry, warn.SeverityInfo,
				fmt.Sprintf("object %s flagged with sharp angles", obj.ID)).WithObject(obj.ID))
		}
	}
}
