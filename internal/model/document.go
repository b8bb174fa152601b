// Package model holds the caller-facing input types of the core: the
// Document, its Graphic Objects, the ink palette, and object-scoped Trap
// Tags. These are immutable once handed to the session (C8); the engine
// never mutates them.
package model

import (
	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
)

// ObjectType enumerates the kinds of Graphic Object the Document carries.
type ObjectType int

const (
	ObjectPath ObjectType = iota
	ObjectCompoundPath
	ObjectText
	ObjectImage
	ObjectGroup
	ObjectMask
)

// LineCap and LineJoin mirror the stroke rendering vocabulary a Document's
// stroke attribute carries; the core only inspects Width for risk/width
// resolution, never rasterizes strokes itself.
type LineCap int
type LineJoin int

const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

// Stroke describes a stroked edge on a Graphic Object.
type Stroke struct {
	ColorID    string
	Width      float64 // mm
	Opacity    float64 // 0..1
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       []float64
}

// Fill describes a filled edge on a Graphic Object.
type Fill struct {
	ColorID string
	Opacity float64 // 0..1
}

// RiskFactors is derived by the region builder (C4) and attached back onto
// the owning object; see spec.md §4.4.
type RiskFactors struct {
	SmallText    bool
	ThinLine     bool
	SharpAngles  bool
	HighDetail   bool
	Advisories   []string
}

// GraphicObject is an immutable input entity. TextSizePt is only meaningful
// when Type == ObjectText.
type GraphicObject struct {
	ID         string
	Type       ObjectType
	Paths      []geom.Path
	Fill       *Fill
	Stroke     *Stroke
	Overprint  bool
	Knockout   bool
	ParentID   string
	ChildIDs   []string
	LayerID    string
	ZIndex     int
	TextSizePt float64
	Risk       RiskFactors
}

// Bounds returns the union of the object's path bounds.
func (o GraphicObject) Bounds() geom.Rect {
	var r geom.Rect
	first := true
	for _, p := range o.Paths {
		b := p.Bounds()
		if first {
			r = b
			first = false
			continue
		}
		r = r.Extend(geom.Vec2{X: b.MinX, Y: b.MinY}).Extend(geom.Vec2{X: b.MaxX, Y: b.MaxY})
	}
	return r
}

// Layer is a printable collection of objects.
type Layer struct {
	ID         string
	Name       string
	Printable  bool
	ObjectIDs  []string
}

// Document is the top-level immutable input to the session.
type Document struct {
	Objects []GraphicObject
	Layers  []Layer
	Palette map[string]color.Color
	Tags    map[string]TrapTag // keyed by target object id
}

// ObjectByID returns the object with the given id and whether it was found.
func (d Document) ObjectByID(id string) (GraphicObject, bool) {
	for _, o := range d.Objects {
		if o.ID == id {
			return o, true
		}
	}
	return GraphicObject{}, false
}

// ColorByID returns the palette color with the given id and whether it was
// found.
func (d Document) ColorByID(id string) (color.Color, bool) {
	c, ok := d.Palette[id]
	return c, ok
}
