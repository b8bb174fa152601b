package ruleengine

import (
	"fmt"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/warn"
)

// applySpecialCases runs the special-case catalogue of spec.md §4.5 over an
// already-computed generic decision, short-circuiting direction/width and
// appending warnings where a special case applies. Cases are evaluated in
// the order listed in the spec; later cases may still refine width (e.g.
// fluorescent's x1.2 multiplier) after an earlier case has set direction.
func applySpecialCases(a, b RegionInput, settings config.Settings, d Direction, width float64) (Direction, float64, []warn.Warning) {
	var warnings []warn.Warning

	aMetallic, bMetallic := isMetallic(a.Color), isMetallic(b.Color)
	if (aMetallic || bMetallic) && !(aMetallic && bMetallic) {
		if aMetallic {
			d = DirectionChoke
		} else {
			d = DirectionSpread
		}
		width = settings.MetallicTrapWidthMM
		warnings = append(warnings, warn.New(warn.KindMetallicAdjacent, warn.SeverityInfo, "metallic ink adjacent to process color"))
	}

	aWhite, bWhite := isWhiteUnderprint(a.Color), isWhiteUnderprint(b.Color)
	if aWhite || bWhite {
		if aWhite {
			d = DirectionSpread
		} else {
			d = DirectionChoke
		}
		width = settings.WhiteSpreadMM
		if width < 0.2 {
			warnings = append(warnings, warn.New(warn.KindWhiteUnderprintIssue, warn.SeverityWarning, "white underprint spread below 0.2mm"))
		}
	}

	if a.Color.Type == color.TypeFluorescent || b.Color.Type == color.TypeFluorescent {
		width *= 1.2
		warnings = append(warnings, warn.New(warn.KindColorMismatch, warn.SeverityInfo, "fluorescent ink involved in adjacency"))
	}

	if settings.TrapText {
		minText := settings.MinTextSizePt
		if (a.IsText && a.TextSizePt > 0 && a.TextSizePt < minText) ||
			(b.IsText && b.TextSizePt > 0 && b.TextSizePt < minText) {
			d = DirectionNone
			warnings = append(warnings, warn.New(warn.KindSmallText, warn.SeverityWarning,
				fmt.Sprintf("text below minimum trap size of %.1fpt", minText)))
		}
	}

	if !settings.TrapThinLines {
		if (a.IsStroke && a.StrokeWidthMM > 0 && a.StrokeWidthMM < settings.MinLineWidthMM) ||
			(b.IsStroke && b.StrokeWidthMM > 0 && b.StrokeWidthMM < settings.MinLineWidthMM) {
			d = DirectionNone
			warnings = append(warnings, warn.New(warn.KindThinLine, warn.SeverityWarning, "stroke thinner than minimum trap line width"))
		}
	}

	return d, width, warnings
}
