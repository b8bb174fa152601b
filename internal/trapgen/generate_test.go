package trapgen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/offset"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/ruleengine"
)

func straightEdge() geom.Path {
	return geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}}, false)
}

func TestGenerateSpreadProducesClosedBand(t *testing.T) {
	edge := straightEdge()
	adj := region.Adjacency{SharedEdge: edge}
	aReg := region.Region{ID: "a"}
	bReg := region.Region{ID: "b"}
	aColor := color.NewFromCMYK100("a", color.CMYK{C: 100}, 1)
	bColor := color.NewFromCMYK100("b", color.CMYK{Y: 100}, 1)

	decision := ruleengine.Decision{Direction: ruleengine.DirectionSpread, WidthMM: 0.2}
	opts := offset.DefaultOptions(0.2, offset.CornerMiter, 4)

	trap, ok := Generate(adj, aReg, bReg, aColor, bColor, decision, opts)
	assert.True(t, ok)
	assert.True(t, trap.Contour.Closed)
	assert.Equal(t, aColor.ID, trap.Color.ID)
	assert.Greater(t, len(trap.Contour.Points), 2)
}

func TestGenerateChokeUsesNeighborColor(t *testing.T) {
	edge := straightEdge()
	adj := region.Adjacency{SharedEdge: edge}
	aReg := region.Region{ID: "a"}
	bReg := region.Region{ID: "b"}
	aColor := color.NewFromCMYK100("a", color.CMYK{C: 100}, 1)
	bColor := color.NewFromCMYK100("b", color.CMYK{Y: 100}, 1)

	decision := ruleengine.Decision{Direction: ruleengine.DirectionChoke, WidthMM: 0.2}
	opts := offset.DefaultOptions(0.2, offset.CornerMiter, 4)

	trap, ok := Generate(adj, aReg, bReg, aColor, bColor, decision, opts)
	assert.True(t, ok)
	assert.Equal(t, bColor.ID, trap.Color.ID)
}

func TestGenerateNoneSkipped(t *testing.T) {
	edge := straightEdge()
	adj := region.Adjacency{SharedEdge: edge}
	decision := ruleengine.Decision{Direction: ruleengine.DirectionNone}
	opts := offset.DefaultOptions(0.2, offset.CornerMiter, 4)

	_, ok := Generate(adj, region.Region{}, region.Region{}, color.Color{}, color.Color{}, decision, opts)
	assert.False(t, ok)
}

func TestMergeOverlappingGroupsTouchingTraps(t *testing.T) {
	near := geom.NewPolyline([]geom.Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, true)
	far := geom.NewPolyline([]geom.Vec2{{X: 100, Y: 100}, {X: 101, Y: 100}, {X: 101, Y: 101}, {X: 100, Y: 101}}, true)
	overlapping := geom.NewPolyline([]geom.Vec2{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 1.5, Y: 1.5}, {X: 0.5, Y: 1.5}}, true)

	traps := []TrapObject{{Contour: near}, {Contour: far}, {Contour: overlapping}}
	groups := MergeOverlapping(traps)

	assert.Len(t, groups, 2)
}
