package ruleengine

import (
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/warn"
)

// Decide computes the Trap Decision for one adjacency between regions a and
// b, per spec.md §4.5:
//
//  1. Custom rules (highest priority first) short-circuit the rest of the
//     cascade entirely when one matches.
//  2. Otherwise the generic cascade runs: priority, direction, width,
//     style, then the special-case catalogue refines direction/width and
//     attaches diagnostic warnings.
//  3. Whichever path ran, a trapping width is clamped to
//     [MinWidthMM, MaxWidthMM].
//  4. Each side's Trap Tag overlay is applied last and wins outright.
func Decide(a, b RegionInput, settings config.Settings) Decision {
	priorityA := Priority(a.Color, settings.DirectionMethod)
	priorityB := Priority(b.Color, settings.DirectionMethod)

	var (
		direction Direction
		width     float64
		style     Style
		ruleID    string
		warnings  []warn.Warning
	)

	if rule, ok := matchCustomRule(a, b, settings); ok {
		base := resolveWidth(a, b, settings)
		direction, width, style = applyAction(rule.Then, settings, base)
		ruleID = rule.Name
	} else {
		direction = resolveDirection(a, b, priorityA, priorityB)
		width = resolveWidth(a, b, settings)
		style = resolveStyle(a, b, direction, priorityA, priorityB)

		var special []warn.Warning
		direction, width, special = applySpecialCases(a, b, settings, direction, width)
		warnings = append(warnings, special...)
	}

	if direction != DirectionNone {
		if width < settings.MinWidthMM {
			width = settings.MinWidthMM
		}
		if width > settings.MaxWidthMM {
			width = settings.MaxWidthMM
		}
	}

	reverse := isReverseMode(settings)
	direction, width = applyTagOverlay(a.Tag, reverse, false, direction, width)
	direction, width = applyTagOverlay(b.Tag, reverse, true, direction, width)

	if !settings.Enabled {
		direction = DirectionNone
		width = 0
	}

	return Decision{
		RegionA:       a.RegionID,
		RegionB:       b.RegionID,
		Direction:     direction,
		WidthMM:       width,
		Style:         style,
		PriorityA:     priorityA,
		PriorityB:     priorityB,
		AppliedRuleID: ruleID,
		Warnings:      warnings,
	}
}
