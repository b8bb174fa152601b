package qc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/trapgen"
)

func rectPath(x0, y0, x1, y1 float64) geom.Path {
	return geom.NewPolyline([]geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}, true)
}

func TestCheckComplexGeometryFlagsHighAnchorCount(t *testing.T) {
	pts := make([]geom.Vec2, 600)
	for i := range pts {
		pts[i] = geom.Vec2{X: float64(i), Y: 0}
	}
	doc := model.Document{Objects: []model.GraphicObject{
		{ID: "o1", Paths: []geom.Path{geom.NewPolyline(pts, true)}},
	}}
	var res Result
	checkComplexGeometry(doc, &res)
	assert.Len(t, res.Info, 1)
}

func TestCheckSmallTextErrorBelow4pt(t *testing.T) {
	doc := model.Document{Objects: []model.GraphicObject{
		{ID: "t1", Type: model.ObjectText, TextSizePt: 3},
	}}
	settings := config.DefaultSettings()
	var res Result
	checkSmallText(doc, map[string]bool{"t1": true}, settings, &res)
	assert.Len(t, res.Errors, 1)
}

func TestCheckSmallTextWarningAt5pt(t *testing.T) {
	doc := model.Document{Objects: []model.GraphicObject{
		{ID: "t1", Type: model.ObjectText, TextSizePt: 5},
	}}
	settings := config.DefaultSettings()
	var res Result
	checkSmallText(doc, map[string]bool{"t1": true}, settings, &res)
	assert.Len(t, res.Warnings, 1)
}

func TestRunOverallPassFailsOnError(t *testing.T) {
	doc := model.Document{
		Objects: []model.GraphicObject{{ID: "t1", Type: model.ObjectText, TextSizePt: 2}},
		Palette: map[string]color.Color{},
	}
	settings := config.DefaultSettings()
	regions := region.Result{Graph: &region.Graph{Regions: map[string]region.Region{}, Out: map[string][]region.Adjacency{}}, RegionToObject: map[string]string{}}
	layer := trapgen.TrapLayer{Objects: []trapgen.TrapObject{{RegionA: "x", RegionB: "y"}}}
	regions.RegionToObject["x"] = "t1"

	res := Run(doc, regions, layer, settings)
	assert.False(t, res.Passed)
}
