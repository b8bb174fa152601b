package region

import (
	"testing"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rectObject(id string, x0, y0, x1, y1 float64, colorID string) model.GraphicObject {
	path := geom.NewPolyline([]geom.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}, true)
	return model.GraphicObject{
		ID:    id,
		Type:  model.ObjectPath,
		Paths: []geom.Path{path},
		Fill:  &model.Fill{ColorID: colorID, Opacity: 1},
	}
}

// S1 fixture (spec.md §8): two adjacent 10x10mm rectangles sharing the edge
// x=10.
func twoRectDocument() model.Document {
	r1 := rectObject("r1", 0, 0, 10, 10, "light")
	r2 := rectObject("r2", 10, 0, 20, 10, "dark")
	return model.Document{
		Objects: []model.GraphicObject{r1, r2},
		Palette: map[string]color.Color{
			"light": color.NewFromCMYK100("light", color.CMYK{C: 20, M: 20, Y: 20, K: 0}, 1),
			"dark":  color.NewFromCMYK100("dark", color.CMYK{C: 0, M: 0, Y: 0, K: 80}, 1),
		},
	}
}

func TestBuildFindsSharedEdgeS1(t *testing.T) {
	doc := twoRectDocument()
	res := Build(doc, DefaultOptions())

	require.Len(t, res.Graph.Regions, 2)
	pairs := res.Graph.UnorderedPairs()
	require.Len(t, pairs, 1)

	a, b := pairs[0][0], pairs[0][1]
	adjAB := res.Graph.Out[a]
	require.Len(t, adjAB, 1)
	assert.Equal(t, b, adjAB[0].To)
	assert.True(t, adjAB[0].TrapRequired)
	assert.Equal(t, ContactEdgeToEdge, adjAB[0].Contact)
}

func TestNoAdjacencyWhenFarApart(t *testing.T) {
	r1 := rectObject("r1", 0, 0, 10, 10, "light")
	r2 := rectObject("r2", 100, 100, 110, 110, "dark")
	doc := model.Document{
		Objects: []model.GraphicObject{r1, r2},
		Palette: map[string]color.Color{
			"light": color.NewFromCMYK100("light", color.CMYK{C: 20}, 1),
			"dark":  color.NewFromCMYK100("dark", color.CMYK{K: 80}, 1),
		},
	}
	res := Build(doc, DefaultOptions())
	assert.Empty(t, res.Graph.UnorderedPairs())
}

func TestTrapRequiredFalseForVarnish(t *testing.T) {
	doc := twoRectDocument()
	varnish := doc.Palette["dark"]
	varnish = varnish.WithTypeOverride(color.TypeVarnish)
	doc.Palette["dark"] = varnish

	res := Build(doc, DefaultOptions())
	pairs := res.Graph.UnorderedPairs()
	require.Len(t, pairs, 1)
	adj := res.Graph.Out[pairs[0][0]]
	require.Len(t, adj, 1)
	assert.False(t, adj[0].TrapRequired)
}

func TestRiskFactorsSmallText(t *testing.T) {
	obj := model.GraphicObject{
		ID:         "t1",
		Type:       model.ObjectText,
		Paths:      []geom.Path{geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, true)},
		TextSizePt: 4.3,
		Fill:       &model.Fill{ColorID: "c", Opacity: 1},
	}
	r := computeRisk(obj)
	assert.True(t, r.SmallText)
}

func TestRiskFactorsSharpAngle(t *testing.T) {
	p := geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 1}, {X: 0, Y: 2}}, false)
	obj := model.GraphicObject{ID: "o", Type: model.ObjectPath, Paths: []geom.Path{p}}
	r := computeRisk(obj)
	assert.True(t, r.SharpAngles)
}
