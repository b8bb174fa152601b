// Package preview implements a scanline coverage rasterizer for turning a
// generated TrapLayer (and its source document) into a pixel coverage
// buffer, so tests and tooling can visually spot-check trap geometry
// without a full imaging pipeline. It is deliberately simple: nonzero-
// winding polygon fill over flattened polylines, not an anti-aliased
// renderer -- the core never needs to rasterize anything itself.
package preview

import (
	"math"
	"sort"

	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/trapgen"
)

// edge is one line segment of a flattened path in device (pixel) space.
type edge struct {
	x0, y0, x1, y1 float64
	winding        int // +1 if y increases along the edge, -1 otherwise
}

// Buffer is a coverage raster: one byte per pixel, 0 (uncovered) to 255
// (fully covered), row-major, width*height long.
type Buffer struct {
	Width, Height int
	Pix           []byte
}

// At returns the coverage value at (x, y), or 0 if out of bounds.
func (b Buffer) At(x, y int) byte {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return 0
	}
	return b.Pix[y*b.Width+x]
}

// Rasterizer converts flattened mm-space paths into a pixel coverage
// Buffer. ScaleMMToPx sets the device resolution; create one instance and
// reuse it across multiple Fill calls against the same Buffer.
type Rasterizer struct {
	Width, Height int
	ScaleMMToPx   float64
	buf           Buffer
}

// NewRasterizer allocates a Rasterizer with a fresh zeroed Buffer.
func NewRasterizer(width, height int, scaleMMToPx float64) *Rasterizer {
	if scaleMMToPx <= 0 {
		scaleMMToPx = 1
	}
	return &Rasterizer{
		Width: width, Height: height, ScaleMMToPx: scaleMMToPx,
		buf: Buffer{Width: width, Height: height, Pix: make([]byte, width*height)},
	}
}

// Buffer returns the accumulated coverage buffer.
func (r *Rasterizer) Buffer() Buffer { return r.buf }

// Reset zeroes the coverage buffer for reuse.
func (r *Rasterizer) Reset() {
	for i := range r.buf.Pix {
		r.buf.Pix[i] = 0
	}
}

// FillPath rasterizes p's flattened anchor polygon using the nonzero
// winding rule, accumulating coverage as a flat fill (255 inside, 0
// outside -- no antialiasing).
func (r *Rasterizer) FillPath(p geom.Path) {
	edges := r.collectEdges(p)
	if len(edges) == 0 {
		return
	}
	r.fillEdges(edges)
}

// FillTrapLayer rasterizes every trap object's contour in layer, in
// deterministic object-id order so repeated runs over the same layer
// always draw in the same sequence.
func (r *Rasterizer) FillTrapLayer(layer trapgen.TrapLayer) {
	objs := append([]trapgen.TrapObject(nil), layer.Objects...)
	sort.Slice(objs, func(i, j int) bool { return objs[i].ID < objs[j].ID })
	for _, o := range objs {
		r.FillPath(o.Contour)
	}
}

func (r *Rasterizer) collectEdges(p geom.Path) []edge {
	n := len(p.Points)
	if n < 2 {
		return nil
	}
	pts := make([]geom.Vec2, 0, n+1)
	for _, pt := range p.Points {
		pts = append(pts, geom.Vec2{X: pt.Anchor.X * r.ScaleMMToPx, Y: pt.Anchor.Y * r.ScaleMMToPx})
	}
	if pts[0] != pts[len(pts)-1] {
		pts = append(pts, pts[0])
	}

	edges := make([]edge, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		a, b := pts[i], pts[i+1]
		if a.Y == b.Y {
			continue
		}
		w := 1
		if a.Y > b.Y {
			a, b = b, a
			w = -1
		}
		edges = append(edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y, winding: w})
	}
	return edges
}

// fillEdges scans row-by-row, computing x-intercepts per scanline and
// filling spans where the nonzero winding count is non-zero. This is the
// classic active-edge-list sweep: sort intercepts by x, accumulate
// winding left to right, toggle fill on/off at each crossing.
func (r *Rasterizer) fillEdges(edges []edge) {
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for _, e := range edges {
		yMin = math.Min(yMin, e.y0)
		yMax = math.Max(yMax, e.y1)
	}
	rowStart := int(math.Floor(yMin))
	rowEnd := int(math.Ceil(yMax))
	if rowStart < 0 {
		rowStart = 0
	}
	if rowEnd > r.Height {
		rowEnd = r.Height
	}

	type crossing struct {
		x float64
		w int
	}

	for y := rowStart; y < rowEnd; y++ {
		scanY := float64(y) + 0.5
		var xs []crossing
		for _, e := range edges {
			if scanY < e.y0 || scanY >= e.y1 {
				continue
			}
			t := (scanY - e.y0) / (e.y1 - e.y0)
			x := e.x0 + t*(e.x1-e.x0)
			xs = append(xs, crossing{x: x, w: e.winding})
		}
		if len(xs) == 0 {
			continue
		}
		sort.Slice(xs, func(i, j int) bool { return xs[i].x < xs[j].x })

		wind := 0
		for i := 0; i < len(xs); i++ {
			wind += xs[i].w
			if wind == 0 || i+1 >= len(xs) {
				continue
			}
			xStart := int(math.Round(xs[i].x))
			xEnd := int(math.Round(xs[i+1].x))
			r.fillSpan(y, xStart, xEnd)
		}
	}
}

func (r *Rasterizer) fillSpan(y, xStart, xEnd int) {
	if xStart < 0 {
		xStart = 0
	}
	if xEnd > r.Width {
		xEnd = r.Width
	}
	if xStart >= xEnd {
		return
	}
	row := y * r.Width
	for x := xStart; x < xEnd; x++ {
		r.buf.Pix[row+x] = 255
	}
}

// CoverageRatio returns the fraction of buf's pixels with non-zero
// coverage, a cheap sanity metric for "did anything render".
func CoverageRatio(buf Buffer) float64 {
	if len(buf.Pix) == 0 {
		return 0
	}
	covered := 0
	for _, v := range buf.Pix {
		if v != 0 {
			covered++
		}
	}
	return float64(covered) / float64(len(buf.Pix))
}
