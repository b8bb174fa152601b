package ruleengine

import "github.com/coldpress/trapcore/internal/warn"

// Direction is the chosen trap direction, per spec.md §3.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionSpread
	DirectionChoke
	DirectionCenterline
)

func (d Direction) String() string {
	switch d {
	case DirectionSpread:
		return "spread"
	case DirectionChoke:
		return "choke"
	case DirectionCenterline:
		return "centerline"
	default:
		return "none"
	}
}

// Mirror swaps spread<->choke and fixes centerline/none, per spec.md §8
// property #3 (direction duality).
func (d Direction) Mirror() Direction {
	switch d {
	case DirectionSpread:
		return DirectionChoke
	case DirectionChoke:
		return DirectionSpread
	default:
		return d
	}
}

// Style is the trap style, per spec.md §3.
type Style int

const (
	StyleNormal Style = iota
	StyleAbutted
	StyleFeathered
	StyleSliding
	StyleKeepaway
)

func (s Style) String() string {
	switch s {
	case StyleAbutted:
		return "abutted"
	case StyleFeathered:
		return "feathered"
	case StyleSliding:
		return "sliding"
	case StyleKeepaway:
		return "keepaway"
	default:
		return "normal"
	}
}

// Decision is the Trap Decision entity of spec.md §3.
type Decision struct {
	RegionA, RegionB string
	Direction        Direction
	WidthMM          float64
	Style            Style
	PriorityA        float64
	PriorityB        float64
	AppliedRuleID    string
	Warnings         []warn.Warning
	FeatherMM        float64
}
