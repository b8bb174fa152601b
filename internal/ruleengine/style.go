package ruleengine

// resolveStyle implements spec.md §4.5's style resolution: first
// applicable rule wins.
func resolveStyle(a, b RegionInput, direction Direction, priorityA, priorityB float64) Style {
	if direction == DirectionCenterline {
		return StyleAbutted
	}
	delta := priorityA - priorityB
	if delta < 0 {
		delta = -delta
	}
	if delta > 0.5 {
		return StyleSliding
	}
	if a.Color.IsBlack() || b.Color.IsBlack() {
		return StyleKeepaway
	}
	return StyleNormal
}
