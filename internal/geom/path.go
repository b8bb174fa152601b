package geom

// Point is one anchor of a Bezier path, with optional cubic handles. A nil
// handle means the adjoining segment on that side is a straight line.
type Point struct {
	Anchor    Vec2
	HandleIn  *Vec2 // incoming control point, relative to previous anchor's segment
	HandleOut *Vec2 // outgoing control point, relative to next anchor's segment
}

// HasHandleIn/HasHandleOut are convenience nil-checks used throughout the
// offset engine's segment classification.
func (p Point) HasHandleIn() bool  { return p.HandleIn != nil }
func (p Point) HasHandleOut() bool { return p.HandleOut != nil }

// Path is an ordered sequence of anchors, each with optional in/out cubic
// handles, and a closed flag. A closed path's final segment connects
// last->first using first.HandleIn and last.HandleOut, matching the
// spec's invariant for Bezier Path.
type Path struct {
	Points []Point
	Closed bool
}

// NewPolyline builds a straight-line-only Path (no handles) from anchors.
func NewPolyline(pts []Vec2, closed bool) Path {
	p := Path{Points: make([]Point, len(pts)), Closed: closed}
	for i, a := range pts {
		p.Points[i] = Point{Anchor: a}
	}
	return p
}

// SegmentCount returns the number of segments in the path: len(Points)-1 for
// an open path, len(Points) for a closed one (the last segment wraps
// around). A path with fewer than 2 points has zero segments.
func (p Path) SegmentCount() int {
	n := len(p.Points)
	if n < 2 {
		return 0
	}
	if p.Closed {
		return n
	}
	return n - 1
}

// Segment returns the four control points of segment i as a cubic Bezier:
// p0 (start anchor), p1 (start's outgoing handle or start anchor), p2 (end's
// incoming handle or end anchor), p3 (end anchor). A segment with neither
// handle present is geometrically a line; the isLine result reports that case.
func (p Path) Segment(i int) (p0, p1, p2, p3 Vec2, isLine bool) {
	n := len(p.Points)
	a := p.Points[i]
	var b Point
	if p.Closed && i == n-1 {
		b = p.Points[0]
	} else {
		b = p.Points[i+1]
	}

	p0 = a.Anchor
	p3 = b.Anchor
	if a.HandleOut == nil && b.HandleIn == nil {
		return p0, p0, p3, p3, true
	}
	if a.HandleOut != nil {
		p1 = *a.HandleOut
	} else {
		p1 = p0
	}
	if b.HandleIn != nil {
		p2 = *b.HandleIn
	} else {
		p2 = p3
	}
	return p0, p1, p2, p3, false
}

// AnchorCount returns len(Points), used by the high-detail risk heuristic.
func (p Path) AnchorCount() int { return len(p.Points) }

// Bounds computes the axis-aligned bounding box over anchor points only
// (handles ignored), as specified: a conservative pre-filter bound, not an
// exact curve bound.
func (p Path) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{
		MinX: p.Points[0].Anchor.X, MaxX: p.Points[0].Anchor.X,
		MinY: p.Points[0].Anchor.Y, MaxY: p.Points[0].Anchor.Y,
	}
	for _, pt := range p.Points[1:] {
		r = r.Extend(pt.Anchor)
	}
	return r
}

// ShoelaceArea computes the closed-polygon area over anchor points via the
// shoelace formula. This is exact for line-only paths and an approximation
// for curved ones -- documented behavior per spec, not a bug: curvature
// bows are not accounted for.
func (p Path) ShoelaceArea() float64 {
	n := len(p.Points)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := p.Points[i].Anchor
		b := p.Points[(i+1)%n].Anchor
		sum += a.X*b.Y - b.X*a.Y
	}
	area := sum / 2
	if area < 0 {
		area = -area
	}
	return area
}

// Reversed returns a copy of p with point order and handle roles swapped,
// used by the trap generator to stitch an inner contour with opposite
// winding onto an outer one.
func (p Path) Reversed() Path {
	n := len(p.Points)
	out := Path{Points: make([]Point, n), Closed: p.Closed}
	for i, pt := range p.Points {
		out.Points[n-1-i] = Point{Anchor: pt.Anchor, HandleIn: pt.HandleOut, HandleOut: pt.HandleIn}
	}
	return out
}

// Translated returns a copy of p shifted by d.
func (p Path) Translated(d Vec2) Path {
	out := Path{Points: make([]Point, len(p.Points)), Closed: p.Closed}
	for i, pt := range p.Points {
		np := Point{Anchor: pt.Anchor.Add(d)}
		if pt.HandleIn != nil {
			h := pt.HandleIn.Add(d)
			np.HandleIn = &h
		}
		if pt.HandleOut != nil {
			h := pt.HandleOut.Add(d)
			np.HandleOut = &h
		}
		out.Points[i] = np
	}
	return out
}
