package ruleengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/model"
)

func cyan() color.Color {
	return color.NewFromCMYK100("cyan", color.CMYK{C: 100, M: 0, Y: 0, K: 0}, 1)
}

func yellow() color.Color {
	return color.NewFromCMYK100("yellow", color.CMYK{C: 0, M: 0, Y: 100, K: 0}, 1)
}

func blackInk() color.Color {
	return color.NewFromCMYK100("black", color.CMYK{C: 0, M: 0, Y: 0, K: 100}, 1)
}

func whiteInk() color.Color {
	c := color.NewFromCMYK100("white", color.CMYK{}, 1)
	return c.WithTypeOverride(color.TypeWhiteUnderprint)
}

func metallic() color.Color {
	c := color.NewFromCMYK100("silver", color.CMYK{C: 10, M: 10, Y: 10, K: 0}, 1)
	return c.WithTypeOverride(color.TypeMetallic)
}

// S1: two saturated process colors of comparable priority (cyan and yellow)
// are still trapped, with a positive width.
func TestScenarioTwoProcessColors(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: cyan()}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.NotEqual(t, DirectionNone, d.Direction)
	assert.Greater(t, d.WidthMM, 0.0)
}

// S2: black always chokes toward the lighter neighbor regardless of
// priority delta.
func TestScenarioBlackAlwaysChokes(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: blackInk()}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionChoke, d.Direction)
	assert.InDelta(t, settings.BlackTrapWidthMM*config.TechnologyWidthMultiplier(settings.Technology), d.WidthMM, 1e-9)
}

// S3: white underprint always spreads into its neighbor.
func TestScenarioWhiteUnderprintSpreads(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: whiteInk()}
	b := RegionInput{RegionID: "b", Color: cyan()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionSpread, d.Direction)
}

// S4: metallic adjacent to process ink chokes toward the metallic side and
// emits a metallic-adjacent info warning.
func TestScenarioMetallicAdjacency(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: metallic()}
	b := RegionInput{RegionID: "b", Color: cyan()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionChoke, d.Direction)
	found := false
	for _, w := range d.Warnings {
		if w.Kind == "metallic-adjacent" {
			found = true
		}
	}
	assert.True(t, found, "expected metallic-adjacent warning")
}

// S5: small text below the minimum trap size is never trapped.
func TestScenarioSmallTextSkipped(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: cyan(), IsText: true, TextSizePt: 4}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionNone, d.Direction)
}

// S6: a Trap Tag with Mode=Never overrides any generic decision.
func TestScenarioTagNeverOverride(t *testing.T) {
	settings := config.DefaultSettings()
	tag := &model.TrapTag{Mode: model.ModeNever}
	a := RegionInput{RegionID: "a", Color: blackInk(), Tag: tag}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionNone, d.Direction)
	assert.Equal(t, 0.0, d.WidthMM)
}

func TestCustomRuleShortCircuitsGenericCascade(t *testing.T) {
	settings := config.DefaultSettings()
	settings.CustomRules = []config.RuleSpec{
		{
			Name:     "force-centerline",
			Priority: 100,
			When: []config.PredicateSpec{
				{Kind: config.PredColorType, Target: config.TargetSource, Operator: "eq", Value: "process_cmyk"},
			},
			Then: config.ActionSpec{Type: config.ActionCenterline},
		},
	}
	a := RegionInput{RegionID: "a", Color: cyan()}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionCenterline, d.Direction)
	assert.Equal(t, "force-centerline", d.AppliedRuleID)
}

func TestCustomRuleIsKnockoutPredicateMatchesStructuralFlag(t *testing.T) {
	settings := config.DefaultSettings()
	settings.CustomRules = []config.RuleSpec{
		{
			Name:     "skip-knockout",
			Priority: 100,
			When: []config.PredicateSpec{
				{Kind: config.PredIsKnockout, Target: config.TargetSource},
			},
			Then: config.ActionSpec{Type: config.ActionNoTrap},
		},
	}
	a := RegionInput{RegionID: "a", Color: cyan(), Knockout: true}
	b := RegionInput{RegionID: "b", Color: yellow()}

	d := Decide(a, b, settings)
	assert.Equal(t, DirectionNone, d.Direction)
	assert.Equal(t, "skip-knockout", d.AppliedRuleID)
}

// Property #3 (spec.md §8): direction is anti-symmetric under swapping the
// two sides, and mirroring the result reproduces the swapped decision's
// direction.
func TestDirectionDualityProperty(t *testing.T) {
	settings := config.DefaultSettings()
	rapid.Check(t, func(rt *rapid.T) {
		ch := rapid.Float64Range(0, 1)
		ca := color.NewFromCMYK100("a", color.CMYK{
			C: ch.Draw(rt, "ac") * 100, M: ch.Draw(rt, "am") * 100,
			Y: ch.Draw(rt, "ay") * 100, K: ch.Draw(rt, "ak") * 100,
		}, 1)
		cb := color.NewFromCMYK100("b", color.CMYK{
			C: ch.Draw(rt, "bc") * 100, M: ch.Draw(rt, "bm") * 100,
			Y: ch.Draw(rt, "by") * 100, K: ch.Draw(rt, "bk") * 100,
		}, 1)

		// Two blacks both take the black-chokes rule, so such a pair is
		// not dual; the property covers every other pair.
		if ca.IsBlack() && cb.IsBlack() {
			return
		}

		a := RegionInput{RegionID: "a", Color: ca}
		b := RegionInput{RegionID: "b", Color: cb}

		d1 := Decide(a, b, settings)
		d2 := Decide(b, a, settings)

		if d1.Direction.Mirror() != d2.Direction {
			rt.Fatalf("direction not dual under swap: %v vs %v", d1.Direction, d2.Direction)
		}
	})
}

// Property #4 (spec.md §8): resolved width is always within [MinWidthMM,
// MaxWidthMM] once the special-case catalogue and tag overlay have run,
// except when direction is none (width forced to 0) or a tag overrides it.
func TestWidthClampProperty(t *testing.T) {
	settings := config.DefaultSettings()
	rapid.Check(t, func(rt *rapid.T) {
		ch := rapid.Float64Range(0, 1)
		ca := color.NewFromCMYK100("a", color.CMYK{
			C: ch.Draw(rt, "ac") * 100, M: ch.Draw(rt, "am") * 100,
			Y: ch.Draw(rt, "ay") * 100, K: ch.Draw(rt, "ak") * 100,
		}, 1)
		cb := color.NewFromCMYK100("b", color.CMYK{
			C: ch.Draw(rt, "bc") * 100, M: ch.Draw(rt, "bm") * 100,
			Y: ch.Draw(rt, "by") * 100, K: ch.Draw(rt, "bk") * 100,
		}, 1)
		a := RegionInput{RegionID: "a", Color: ca}
		b := RegionInput{RegionID: "b", Color: cb}

		d := Decide(a, b, settings)
		if d.Direction == DirectionNone {
			return
		}
		if d.WidthMM < settings.MinWidthMM*0.99 {
			rt.Fatalf("width %v below min %v", d.WidthMM, settings.MinWidthMM)
		}
		if d.WidthMM > settings.MaxWidthMM*1.01 {
			rt.Fatalf("width %v above max %v", d.WidthMM, settings.MaxWidthMM)
		}
	})
}

// Property #7 (spec.md §8): a Trap Tag with Mode=Never always dominates the
// final decision, regardless of what the generic cascade or a custom rule
// would have chosen.
func TestTagDominanceProperty(t *testing.T) {
	settings := config.DefaultSettings()
	rapid.Check(t, func(rt *rapid.T) {
		ch := rapid.Float64Range(0, 1)
		ca := color.NewFromCMYK100("a", color.CMYK{
			C: ch.Draw(rt, "ac") * 100, M: ch.Draw(rt, "am") * 100,
			Y: ch.Draw(rt, "ay") * 100, K: ch.Draw(rt, "ak") * 100,
		}, 1)
		cb := color.NewFromCMYK100("b", color.CMYK{
			C: ch.Draw(rt, "bc") * 100, M: ch.Draw(rt, "bm") * 100,
			Y: ch.Draw(rt, "by") * 100, K: ch.Draw(rt, "bk") * 100,
		}, 1)
		tag := &model.TrapTag{Mode: model.ModeNever}
		a := RegionInput{RegionID: "a", Color: ca, Tag: tag}
		b := RegionInput{RegionID: "b", Color: cb}

		d := Decide(a, b, settings)
		if d.Direction != DirectionNone || d.WidthMM != 0 {
			rt.Fatalf("never-tag did not dominate: %+v", d)
		}
	})
}

// Property: Decide is deterministic (spec.md §8 #6) — repeated calls with
// identical input produce an identical Decision.
func TestDecideDeterministic(t *testing.T) {
	settings := config.DefaultSettings()
	a := RegionInput{RegionID: "a", Color: cyan()}
	b := RegionInput{RegionID: "b", Color: blackInk()}

	first := Decide(a, b, settings)
	for i := 0; i < 10; i++ {
		again := Decide(a, b, settings)
		assert.Equal(t, first, again)
	}
}
