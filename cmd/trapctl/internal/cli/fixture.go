package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
)

// fixtureDoc is the on-disk JSON shape trapctl accepts, deliberately
// simpler than model.Document: flat rectangles/polylines with a palette of
// CMYK inks, enough to exercise the pipeline end-to-end from a hand-written
// fixture without a full PDF/ingestion front-end (explicitly out of scope
// per spec.md §1).
type fixtureDoc struct {
	Palette []fixtureColor  `json:"palette"`
	Objects []fixtureObject `json:"objects"`
}

type fixtureColor struct {
	ID       string  `json:"id"`
	SpotName string  `json:"spot_name"`
	C        float64 `json:"c"`
	M        float64 `json:"m"`
	Y        float64 `json:"y"`
	K        float64 `json:"k"`
	Opacity  float64 `json:"opacity"`
}

type fixtureObject struct {
	ID         string      `json:"id"`
	Type       string      `json:"type"` // "path", "text"
	Points     [][]float64 `json:"points"`
	FillColor  string      `json:"fill_color"`
	StrokeMM   float64     `json:"stroke_mm"`
	Overprint  bool        `json:"overprint"`
	Knockout   bool        `json:"knockout"`
	TextSizePt float64     `json:"text_size_pt"`
}

// LoadFixture reads a JSON document fixture from path and converts it into
// a model.Document.
func LoadFixture(path string) (model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Document{}, fmt.Errorf("cli: reading fixture %s: %w", path, err)
	}
	var f fixtureDoc
	if err := json.Unmarshal(data, &f); err != nil {
		return model.Document{}, fmt.Errorf("cli: parsing fixture %s: %w", path, err)
	}

	doc := model.Document{Palette: make(map[string]color.Color, len(f.Palette))}
	for _, c := range f.Palette {
		opacity := c.Opacity
		if opacity == 0 {
			opacity = 1
		}
		cmyk100 := color.CMYK{C: c.C, M: c.M, Y: c.Y, K: c.K}
		if c.SpotName != "" {
			doc.Palette[c.ID] = color.NewSpot(c.ID, c.SpotName, color.CMYK{
				C: c.C / 100, M: c.M / 100, Y: c.Y / 100, K: c.K / 100,
			}, opacity)
		} else {
			doc.Palette[c.ID] = color.NewFromCMYK100(c.ID, cmyk100, opacity)
		}
	}

	for _, o := range f.Objects {
		pts := make([]geom.Vec2, len(o.Points))
		for i, p := range o.Points {
			if len(p) != 2 {
				return model.Document{}, fmt.Errorf("cli: object %s has a non-2D point", o.ID)
			}
			pts[i] = geom.Vec2{X: p[0], Y: p[1]}
		}
		path := geom.NewPolyline(pts, true)

		obj := model.GraphicObject{
			ID:         o.ID,
			Type:       model.ObjectPath,
			Paths:      []geom.Path{path},
			Overprint:  o.Overprint,
			Knockout:   o.Knockout,
			TextSizePt: o.TextSizePt,
		}
		if o.Type == "text" {
			obj.Type = model.ObjectText
		}
		if o.FillColor != "" {
			obj.Fill = &model.Fill{ColorID: o.FillColor, Opacity: 1}
		}
		if o.StrokeMM > 0 {
			obj.Stroke = &model.Stroke{ColorID: o.FillColor, Width: o.StrokeMM, Opacity: 1}
		}
		doc.Objects = append(doc.Objects, obj)
	}

	return doc, nil
}
