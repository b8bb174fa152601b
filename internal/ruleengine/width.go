package ruleengine

import "github.com/coldpress/trapcore/internal/config"

// resolveWidth implements spec.md §4.5's width resolution: a base width
// overridden by special-case widths, scaled by the technology factor, then
// by geometry-risk multipliers, then clamped to [min, max].
func resolveWidth(a, b RegionInput, settings config.Settings) float64 {
	width := settings.DefaultWidthMM

	if isWhiteUnderprint(a.Color) || isWhiteUnderprint(b.Color) {
		width = settings.WhiteSpreadMM
	}
	if isMetallic(a.Color) || isMetallic(b.Color) {
		width = settings.MetallicTrapWidthMM
	}
	if a.Color.IsBlack() || b.Color.IsBlack() {
		width = settings.BlackTrapWidthMM
	}

	width *= config.TechnologyWidthMultiplier(settings.Technology)

	minTextSize := settings.MinTextSizePt
	if (a.IsText && a.TextSizePt > 0 && a.TextSizePt < minTextSize) ||
		(b.IsText && b.TextSizePt > 0 && b.TextSizePt < minTextSize) {
		width *= 0.3
	} else if (a.IsText && a.TextSizePt >= minTextSize && a.TextSizePt < 10) ||
		(b.IsText && b.TextSizePt >= minTextSize && b.TextSizePt < 10) {
		width *= 0.5 * settings.TextTrapReduction
	}

	if (a.IsStroke && a.StrokeWidthMM > 0 && a.StrokeWidthMM < settings.MinLineWidthMM) ||
		(b.IsStroke && b.StrokeWidthMM > 0 && b.StrokeWidthMM < settings.MinLineWidthMM) {
		width *= 0.5
	}

	if (a.AreaMM2 > 0 && a.AreaMM2 < 10) || (b.AreaMM2 > 0 && b.AreaMM2 < 10) {
		width *= 0.7
	}

	if a.Risk.SharpAngles || b.Risk.SharpAngles {
		width *= 0.8
	}

	if width < settings.MinWidthMM {
		width = settings.MinWidthMM
	}
	if width > settings.MaxWidthMM {
		width = settings.MaxWidthMM
	}
	return width
}
