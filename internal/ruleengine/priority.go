// Package ruleengine implements the trap decision logic of spec.md §4.5
// (component C5): priority computation, direction/width/style resolution,
// the special-case catalogue, trap-tag overlay, and user-defined rules.
package ruleengine

import (
	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
)

// Priority computes a color's trap priority under the configured method,
// plus the classification bonus, per spec.md §4.5.
func Priority(c color.Color, method config.DirectionMethod) float64 {
	var base float64
	switch method {
	case config.MethodNeutralDensity:
		base = c.NeutralDens
	case config.MethodLightness:
		base = (100 - c.Luminance()) / 100
	case config.MethodChroma:
		base = c.Chroma() / 128
	case config.MethodCustom:
		base = 0.5*c.NeutralDens + 0.3*(100-c.Luminance())/100 + 0.2*c.Chroma()/128
	default:
		base = c.NeutralDens
	}
	return base + classificationBonus(c.Type)
}

func classificationBonus(t color.Type) float64 {
	switch t {
	case color.TypeWhiteUnderprint:
		return -1
	case color.TypeMetallic:
		return 0.8
	case color.TypeFluorescent:
		return 0.3
	case color.TypeVarnish:
		return -2
	case color.TypeTransparent:
		return -2
	default:
		return 0
	}
}
