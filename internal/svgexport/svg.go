// Package svgexport renders a debug SVG of the adjacency graph and
// generated trap layer: regions as colored polygons, adjacency edges as
// thin strokes, trap objects as a top highlight layer. It exists purely as
// test/CLI tooling (SPEC_FULL.md's supplemented features), never as a
// public rendering API — the overlay renderer is explicitly out of the
// core's scope per spec.md §1.
package svgexport

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/trapgen"
)

// Options configures the SVG export.
type Options struct {
	Width, Height int
	ScaleMMToPx   float64 // pixels per millimetre
	ShowLabels    bool
}

// DefaultOptions returns sensible defaults for an A4-ish working area.
func DefaultOptions() Options {
	return Options{Width: 1000, Height: 1000, ScaleMMToPx: 4, ShowLabels: true}
}

// Render renders doc's regions (from g), adjacency edges, and layer's trap
// objects into an SVG byte buffer.
func Render(doc model.Document, g *region.Graph, layer trapgen.TrapLayer, opts Options) []byte {
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.ScaleMMToPx <= 0 {
		opts.ScaleMMToPx = 4
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#101418")

	drawRegions(canvas, doc, g, opts)
	drawAdjacencies(canvas, g, opts)
	drawTraps(canvas, layer, opts)

	canvas.End()
	return buf.Bytes()
}

// WriteFile renders and writes the SVG to path.
func WriteFile(path string, doc model.Document, g *region.Graph, layer trapgen.TrapLayer) error {
	data := Render(doc, g, layer, DefaultOptions())
	return os.WriteFile(path, data, 0o644)
}

func drawRegions(canvas *svg.SVG, doc model.Document, g *region.Graph, opts Options) {
	for _, id := range g.OrderedRegionIDs() {
		r := g.Regions[id]
		c, ok := doc.ColorByID(r.ColorID)
		fill := "#555555"
		if ok {
			fill = cssColor(c.RGB)
		}
		xs, ys := polygonPoints(r.Contour, opts)
		if len(xs) < 3 {
			continue
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;opacity:0.85;stroke:#000;stroke-width:0.5", fill))
		if opts.ShowLabels && len(xs) > 0 {
			canvas.Text(xs[0], ys[0], id[:8], "font-size:9px;font-family:monospace;fill:#fff")
		}
	}
}

func drawAdjacencies(canvas *svg.SVG, g *region.Graph, opts Options) {
	for _, id := range g.OrderedRegionIDs() {
		for _, adj := range g.Out[id] {
			if len(adj.SharedEdge.Points) < 2 {
				continue
			}
			strokeColor := "#4299e1"
			if adj.TrapRequired {
				strokeColor = "#f56565"
			}
			p0 := adj.SharedEdge.Points[0].Anchor
			p1 := adj.SharedEdge.Points[len(adj.SharedEdge.Points)-1].Anchor
			x0, y0 := toPx(p0, opts)
			x1, y1 := toPx(p1, opts)
			canvas.Line(x0, y0, x1, y1, fmt.Sprintf("stroke:%s;stroke-width:1;opacity:0.6", strokeColor))
		}
	}
}

func drawTraps(canvas *svg.SVG, layer trapgen.TrapLayer, opts Options) {
	traps := make([]trapgen.TrapObject, len(layer.Objects))
	copy(traps, layer.Objects)
	sort.Slice(traps, func(i, j int) bool { return traps[i].ID < traps[j].ID })

	for _, t := range traps {
		xs, ys := polygonPoints(t.Contour, opts)
		if len(xs) < 3 {
			continue
		}
		canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;opacity:0.95;stroke:#ffd700;stroke-width:0.75", cssColor(t.Color.RGB)))
	}
}

func polygonPoints(p geom.Path, opts Options) ([]int, []int) {
	xs := make([]int, len(p.Points))
	ys := make([]int, len(p.Points))
	for i, pt := range p.Points {
		xs[i], ys[i] = toPx(pt.Anchor, opts)
	}
	return xs, ys
}

func toPx(v geom.Vec2, opts Options) (int, int) {
	return int(v.X * opts.ScaleMMToPx), int(v.Y * opts.ScaleMMToPx)
}

func cssColor(rgb color.RGB) string {
	clamp := func(v float64) int {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return int(v*255 + 0.5)
	}
	return fmt.Sprintf("#%02x%02x%02x", clamp(rgb.R), clamp(rgb.G), clamp(rgb.B))
}
