package ruleengine

import "github.com/coldpress/trapcore/internal/color"

func isVarnishOrTransparent(c color.Color) bool {
	return c.Type == color.TypeVarnish || c.Type == color.TypeTransparent
}

func isWhiteUnderprint(c color.Color) bool { return c.Type == color.TypeWhiteUnderprint }
func isMetallic(c color.Color) bool        { return c.Type == color.TypeMetallic }

// resolveDirection implements the ordered direction-resolution list of
// spec.md §4.5: the first applicable rule wins.
func resolveDirection(a, b RegionInput, priorityA, priorityB float64) Direction {
	if isVarnishOrTransparent(a.Color) || isVarnishOrTransparent(b.Color) {
		return DirectionNone
	}
	if isWhiteUnderprint(a.Color) {
		return DirectionSpread
	}
	if isWhiteUnderprint(b.Color) {
		return DirectionChoke
	}
	if a.Color.IsBlack() {
		return DirectionChoke
	}
	if b.Color.IsBlack() {
		return DirectionSpread
	}
	aMetallic, bMetallic := isMetallic(a.Color), isMetallic(b.Color)
	if aMetallic && !bMetallic {
		return DirectionChoke
	}
	if bMetallic && !aMetallic {
		return DirectionSpread
	}
	if aMetallic && bMetallic {
		return DirectionSpread
	}

	delta := priorityA - priorityB
	if delta < 0 {
		delta = -delta
	}
	if delta < 0.1 {
		return DirectionCenterline
	}
	if priorityA > priorityB {
		return DirectionChoke
	}
	return DirectionSpread
}
