package preview

import (
	"testing"

	"github.com/coldpress/trapcore/internal/geom"
)

func square(x0, y0, x1, y1 float64) geom.Path {
	return geom.NewPolyline([]geom.Vec2{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	}, true)
}

func TestFillPathCoversInterior(t *testing.T) {
	r := NewRasterizer(20, 20, 1)
	r.FillPath(square(5, 5, 15, 15))

	if r.Buffer().At(10, 10) == 0 {
		t.Fatal("expected interior pixel (10,10) to be covered")
	}
	if r.Buffer().At(1, 1) != 0 {
		t.Fatal("expected exterior pixel (1,1) to be uncovered")
	}
}

func TestFillPathRespectsBounds(t *testing.T) {
	r := NewRasterizer(10, 10, 1)
	r.FillPath(square(-5, -5, 5, 5))

	ratio := CoverageRatio(r.Buffer())
	if ratio <= 0 || ratio > 1 {
		t.Fatalf("expected sane coverage ratio, got %v", ratio)
	}
}

func TestResetClearsBuffer(t *testing.T) {
	r := NewRasterizer(10, 10, 1)
	r.FillPath(square(2, 2, 8, 8))
	if CoverageRatio(r.Buffer()) == 0 {
		t.Fatal("expected non-zero coverage before reset")
	}
	r.Reset()
	if CoverageRatio(r.Buffer()) != 0 {
		t.Fatal("expected zero coverage after reset")
	}
}

func TestScaleMMToPxStretchesGeometry(t *testing.T) {
	r := NewRasterizer(40, 40, 4) // 1mm square becomes a 4x4px square
	r.FillPath(square(1, 1, 2, 2))

	if r.Buffer().At(6, 6) == 0 {
		t.Fatal("expected scaled interior pixel to be covered")
	}
}
