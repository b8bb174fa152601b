package ruleengine

import (
	"sort"

	"github.com/coldpress/trapcore/internal/config"
)

// matchCustomRule scans settings.CustomRules in descending priority order
// and returns the first whose predicates all hold for (a, b), per
// spec.md §3's "user-defined rules evaluated highest-priority first"
// semantics. A rule that matches replaces direction/width/style wholesale;
// ok is false if no rule matched.
func matchCustomRule(a, b RegionInput, settings config.Settings) (config.RuleSpec, bool) {
	rules := make([]config.RuleSpec, len(settings.CustomRules))
	copy(rules, settings.CustomRules)
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })

	for _, rule := range rules {
		if ruleMatches(rule, a, b) {
			return rule, true
		}
	}
	return config.RuleSpec{}, false
}

func ruleMatches(rule config.RuleSpec, a, b RegionInput) bool {
	for _, pred := range rule.When {
		if !predicateHolds(pred, a, b) {
			return false
		}
	}
	return true
}

func predicateHolds(p config.PredicateSpec, a, b RegionInput) bool {
	switch p.Target {
	case config.TargetSource:
		return evalPredicate(p, a)
	case config.TargetTarget:
		return evalPredicate(p, b)
	case config.TargetBoth:
		return evalPredicate(p, a) && evalPredicate(p, b)
	case config.TargetEither:
		return evalPredicate(p, a) || evalPredicate(p, b)
	default:
		return evalPredicate(p, a) || evalPredicate(p, b)
	}
}

func evalPredicate(p config.PredicateSpec, r RegionInput) bool {
	switch p.Kind {
	case config.PredColorType:
		return r.Color.Type.String() == p.Value
	case config.PredLuminanceDiff:
		return compareNumber(p.Operator, r.Color.Luminance(), p.Number)
	case config.PredInkStrengthDiff:
		return compareNumber(p.Operator, r.Color.NeutralDens, p.Number)
	case config.PredObjectType:
		return p.Value == "text" && r.IsText || p.Value == "stroke" && r.IsStroke
	case config.PredObjectSize:
		return compareNumber(p.Operator, r.AreaMM2, p.Number)
	case config.PredLineWidth:
		return r.IsStroke && compareNumber(p.Operator, r.StrokeWidthMM, p.Number)
	case config.PredTextSize:
		return r.IsText && compareNumber(p.Operator, r.TextSizePt, p.Number)
	case config.PredHasTag:
		return r.Tag != nil
	case config.PredIsKnockout:
		return r.Knockout
	case config.PredIsOverprint:
		return false // overprint is object-level; RegionInput carries no such flag
	case config.PredAdjacentToBlack:
		return r.Color.IsBlack()
	case config.PredAdjacentToWhite:
		return isWhiteUnderprint(r.Color)
	case config.PredIsNegativeText:
		return r.IsText && isWhiteUnderprint(r.Color)
	case config.PredIsRichBlack:
		return r.Color.IsBlack()
	default:
		return false
	}
}

func compareNumber(op string, got, want float64) bool {
	switch op {
	case "gt":
		return got > want
	case "lt":
		return got < want
	case "gte":
		return got >= want
	case "lte":
		return got <= want
	default: // "eq"
		return got == want
	}
}

// applyAction applies a matched rule's action, replacing direction/width/
// style wholesale per spec.md §3.
func applyAction(action config.ActionSpec, settings config.Settings, width float64) (Direction, float64, Style) {
	switch action.Type {
	case config.ActionNoTrap:
		return DirectionNone, 0, StyleNormal
	case config.ActionSpread:
		return DirectionSpread, ruleWidth(action, width), StyleNormal
	case config.ActionChoke:
		return DirectionChoke, ruleWidth(action, width), StyleNormal
	case config.ActionCenterline:
		return DirectionCenterline, ruleWidth(action, width), StyleAbutted
	case config.ActionReverseKnockout:
		return DirectionSpread, ruleWidth(action, width), StyleKeepaway
	case config.ActionPullback:
		return DirectionChoke, settings.PullbackDistanceMM, StyleSliding
	default: // ActionTrap and unrecognised types: choke with the rule's width if given; the generic direction is not consulted
		return DirectionChoke, ruleWidth(action, width), StyleNormal
	}
}

func ruleWidth(action config.ActionSpec, fallback float64) float64 {
	if action.DistanceMM > 0 {
		return action.DistanceMM
	}
	if action.DistancePercent > 0 {
		return fallback * action.DistancePercent / 100
	}
	return fallback
}
