// Package offset implements the Bezier path offset engine (spec.md §4.3,
// component C3): given a path and a signed distance, it produces a new
// path approximating the locus of points at that perpendicular distance,
// with mitered/rounded/beveled corner handling, cusp splitting, and an
// optional variable-width profile.
package offset

import "github.com/coldpress/trapcore/internal/geom"

// CornerStyle selects how outside corners are joined.
type CornerStyle int

const (
	CornerMiter CornerStyle = iota
	CornerRound
	CornerBevel
)

// WidthProfileKind selects the shape of a variable-width profile.
type WidthProfileKind int

const (
	ProfileConstant WidthProfileKind = iota
	ProfileLinear
	ProfileEaseInOut
	ProfileArray
)

// WidthProfile is an arc-length-parameterized width multiplier applied on
// top of Options.Distance. A nil profile is equivalent to ProfileConstant
// with multiplier 1 everywhere.
type WidthProfile struct {
	Kind        WidthProfileKind
	Multipliers []float64 // used when Kind == ProfileArray; sampled uniformly over [0,1]
}

// At returns the width multiplier at arc-length fraction t in [0,1].
func (w *WidthProfile) At(t float64) float64 {
	if w == nil {
		return 1
	}
	switch w.Kind {
	case ProfileLinear:
		if len(w.Multipliers) < 2 {
			return 1
		}
		a, b := w.Multipliers[0], w.Multipliers[len(w.Multipliers)-1]
		return a + (b-a)*t
	case ProfileEaseInOut:
		// smoothstep easing between the first and last entries of Multipliers
		if len(w.Multipliers) < 2 {
			return 1
		}
		a, b := w.Multipliers[0], w.Multipliers[len(w.Multipliers)-1]
		s := t * t * (3 - 2*t)
		return a + (b-a)*s
	case ProfileArray:
		if len(w.Multipliers) == 0 {
			return 1
		}
		if len(w.Multipliers) == 1 {
			return w.Multipliers[0]
		}
		pos := t * float64(len(w.Multipliers)-1)
		i := int(pos)
		if i >= len(w.Multipliers)-1 {
			return w.Multipliers[len(w.Multipliers)-1]
		}
		frac := pos - float64(i)
		return w.Multipliers[i] + (w.Multipliers[i+1]-w.Multipliers[i])*frac
	default:
		return 1
	}
}

// Options configures one Offset call, per spec.md §4.3.
type Options struct {
	Distance       float64 // mm, signed; positive = outward
	Corner         CornerStyle
	MiterLimit     float64 // multiplier on |Distance|
	ArcTolerance   float64 // max chord-to-arc error for round corners, mm
	CurveTolerance float64 // max error approximating offset of curved segments, mm
	RemoveLoops    bool
	Width          *WidthProfile // nil => constant width (Distance applies uniformly)
}

// DefaultOptions returns reasonable defaults for ArcTolerance/CurveTolerance
// when a caller only cares about distance and corner style.
func DefaultOptions(distance float64, corner CornerStyle, miterLimit float64) Options {
	return Options{
		Distance:       distance,
		Corner:         corner,
		MiterLimit:     miterLimit,
		ArcTolerance:   0.01,
		CurveTolerance: 0.01,
		RemoveLoops:    true,
	}
}

// offsetSeg is an intermediate offset segment: a line (IsLine) or cubic.
type offsetSeg struct {
	P0, P1, P2, P3 geom.Vec2
	IsLine         bool
	// original tangent directions at the segment's start/end, used for
	// corner classification against the *next* segment's original start
	// tangent.
	StartTangent, EndTangent geom.Vec2
}
