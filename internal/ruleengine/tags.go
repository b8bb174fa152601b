package ruleengine

import (
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/model"
)

// applyTagOverlay applies one side's attached Trap Tag on top of an
// already-resolved direction/width, per spec.md §3's Trap Tag semantics.
// It runs after rule resolution (custom rules and the generic cascade have
// already produced direction/width) and wins outright.
//
// isOtherSide is true when this tag belongs to the opposite region from the
// one the caller is currently deciding direction for, in which case the
// tag's direction override must be mirrored (a choke requested by the
// tagged object reads as a spread from its neighbor's perspective).
// reverseMode selects the tag's white-knockout mirror fields instead of its
// normal ones, for settings.Mode == config.ModeReverse runs.
func applyTagOverlay(tag *model.TrapTag, reverseMode, isOtherSide bool, direction Direction, width float64) (Direction, float64) {
	if tag == nil {
		return direction, width
	}

	mode := tag.Mode
	tagDirection := tag.Direction
	if reverseMode {
		mode = tag.ReverseMode
		tagDirection = tag.ReverseDirection
	}

	switch mode {
	case model.ModeNever:
		return DirectionNone, 0
	case model.ModeAlways:
		if direction == DirectionNone {
			direction = DirectionSpread
			if isOtherSide {
				direction = direction.Mirror()
			}
		}
	}

	override := DirectionNone
	switch tagDirection {
	case model.DirectionSpread:
		override = DirectionSpread
	case model.DirectionChoke:
		override = DirectionChoke
	case model.DirectionCenterline:
		override = DirectionCenterline
	}

	if override != DirectionNone {
		if isOtherSide {
			override = override.Mirror()
		}
		direction = override
	}

	if tag.CustomWidthMM != nil {
		width = *tag.CustomWidthMM
	}

	return direction, width
}

func isReverseMode(settings config.Settings) bool {
	return settings.Mode == config.ModeReverse
}
