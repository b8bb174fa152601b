// Package color implements ink/color classification, colorimetric
// conversions, and the density metrics the rule engine uses as its default
// trap priority. Every exported function is a pure, total mapping: no
// conversion fails on finite input, and NaNs are replaced by neutral gray
// rather than propagated (see NormalizeNaN).
package color

import (
	"log/slog"
	"math"
	"strings"
)

// Type classifies an ink for special-case handling in the rule engine.
type Type int

const (
	TypeProcessCMYK Type = iota
	TypeSpot
	TypeWhiteUnderprint
	TypeMetallic
	TypeFluorescent
	TypeVarnish
	TypeTransparent
)

func (t Type) String() string {
	switch t {
	case TypeProcessCMYK:
		return "process_cmyk"
	case TypeSpot:
		return "spot"
	case TypeWhiteUnderprint:
		return "white_underprint"
	case TypeMetallic:
		return "metallic"
	case TypeFluorescent:
		return "fluorescent"
	case TypeVarnish:
		return "varnish"
	case TypeTransparent:
		return "transparent"
	default:
		return "unknown"
	}
}

// Space is the primary representation a Color is authored in. Derived
// representations are always recomputed from whichever space is primary.
type Space int

const (
	SpaceCMYK Space = iota
	SpaceRGB
	SpaceLAB
	SpaceSpotCMYKFallback
)

// CMYK holds channel values on the 0..1 convention; the engine fixes this
// convention at ingress (see NewFromCMYK100) and never mixes it with 0..100.
type CMYK struct {
	C, M, Y, K float64
}

// RGB holds channel values on the 0..1 convention.
type RGB struct {
	R, G, B float64
}

// LAB holds CIE L*a*b* coordinates (L in 0..100).
type LAB struct {
	L, A, B float64
}

// Color is an ink definition. CMYK/RGB/LAB/derived metrics are always kept
// consistent with Primary; call refresh (invoked by every constructor and
// mutator in this file) after changing Primary or the authoring values.
type Color struct {
	ID          string
	SpotName    string
	Type        Type
	typeForced  bool // true once an explicit type override has been applied
	Primary     Space
	CMYK        CMYK
	RGB         RGB
	LAB         LAB
	Opacity     float64
	OpticalDens float64
	NeutralDens float64
}

// NewFromCMYK builds a Color with CMYK as the primary space, values on the
// 0..1 convention, deriving RGB/LAB/density and classification.
func NewFromCMYK(id string, c CMYK, opacity float64) Color {
	col := Color{ID: id, Primary: SpaceCMYK, CMYK: c, Opacity: opacity}
	col.refresh()
	col.Type = classifyFromCMYK(col.CMYK)
	return col
}

// NewFromCMYK100 converts channel values on the 0..100 convention to the
// engine's canonical 0..1 convention before constructing the Color. This is
// the single place external 0..100 CMYK data should cross into the engine,
// per spec's open question on convention (spec.md §9).
func NewFromCMYK100(id string, c100 CMYK, opacity float64) Color {
	return NewFromCMYK(id, CMYK{C: c100.C / 100, M: c100.M / 100, Y: c100.Y / 100, K: c100.K / 100}, opacity)
}

// NewSpot builds a spot color with a CMYK fallback, classifying its Type
// from the spot name per the heuristics in spec.md §4.1, unless a caller
// override is supplied via WithTypeOverride.
func NewSpot(id, spotName string, fallback CMYK, opacity float64) Color {
	col := Color{ID: id, SpotName: spotName, Primary: SpaceSpotCMYKFallback, CMYK: fallback, Opacity: opacity}
	col.refresh()
	col.Type = Classify(spotName, fallback)
	return col
}

// WithTypeOverride returns a copy of c with Type forced to t, bypassing the
// heuristic classifier. Caller-supplied classification always wins per
// spec.md §4.1.
func (c Color) WithTypeOverride(t Type) Color {
	c.Type = t
	c.typeForced = true
	return c
}

// Classify derives a ColorType from a spot name and CMYK magnitude, per
// spec.md §4.1: case-insensitive substring matches on the spot name, then
// all-zero CMYK -> transparent.
func Classify(spotName string, c CMYK) Type {
	name := strings.ToLower(spotName)
	switch {
	case strings.Contains(name, "white"):
		return TypeWhiteUnderprint
	case strings.Contains(name, "silver") || strings.Contains(name, "gold") || strings.Contains(name, "metallic"):
		return TypeMetallic
	case strings.Contains(name, "fluor") || strings.Contains(name, "neon"):
		return TypeFluorescent
	case strings.Contains(name, "varnish") || strings.Contains(name, "coating"):
		return TypeVarnish
	}
	return classifyFromCMYK(c)
}

func classifyFromCMYK(c CMYK) Type {
	if c.C == 0 && c.M == 0 && c.Y == 0 && c.K == 0 {
		return TypeTransparent
	}
	return TypeProcessCMYK
}

// refresh recomputes derived representations (RGB, LAB, density metrics)
// from whichever space is Primary, per the invariant in spec.md §3.
func (c *Color) refresh() {
	hadNaN := math.IsNaN(c.CMYK.C) || math.IsNaN(c.CMYK.M) || math.IsNaN(c.CMYK.Y) || math.IsNaN(c.CMYK.K)
	c.CMYK = sanitizeCMYK(c.CMYK)
	switch c.Primary {
	case SpaceRGB:
		c.CMYK = rgbToCMYK(c.RGB)
	case SpaceLAB:
		c.RGB = labToRGB(c.LAB)
		c.CMYK = rgbToCMYK(c.RGB)
	default: // CMYK or spot-with-fallback
		c.RGB = cmykToRGB(c.CMYK)
	}
	c.LAB = rgbToLAB(c.RGB)
	if hadNaN {
		c.LAB = NormalizeNaN()
	}
	c.OpticalDens = OpticalDensity(c.CMYK)
	c.NeutralDens = NeutralDensity(c.CMYK)
}

// sanitizeCMYK clamps NaN channels to 0 so a single bad channel cannot
// poison the derived RGB and density values; refresh then sets the color's
// LAB to the neutral gray of NormalizeNaN (see deltae.go).
func sanitizeCMYK(c CMYK) CMYK {
	sawNaN := false
	fix := func(v float64) float64 {
		if math.IsNaN(v) {
			sawNaN = true
			return 0
		}
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	out := CMYK{C: fix(c.C), M: fix(c.M), Y: fix(c.Y), K: fix(c.K)}
	if sawNaN {
		slog.Warn("color: NaN channel encountered, substituting 0 and continuing", "cmyk", c)
	}
	return out
}

// IsBlack reports whether c is a rich black or pure black per spec.md §4.1,
// using 0..100-scaled channel thresholds against the canonical 0..1 values.
func (c Color) IsBlack() bool {
	c100 := CMYK{C: c.CMYK.C * 100, M: c.CMYK.M * 100, Y: c.CMYK.Y * 100, K: c.CMYK.K * 100}
	richBlack := c100.C >= 40 && c100.M >= 30 && c100.Y >= 30 && c100.K >= 90
	pureBlack := c100.K >= 95 && c100.C < 10 && c100.M < 10 && c100.Y < 10
	return richBlack || pureBlack
}
