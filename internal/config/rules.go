package config

// RuleSpec is the serializable form of a user-defined Trap Rule
// (spec.md §3 "Trap Rule"), as loaded from the `rules.custom_rules`
// settings field. internal/ruleengine compiles these into its own
// evaluation-time Rule type; keeping the serializable shape here (rather
// than in ruleengine) lets config stay a leaf package with no dependency
// on the rule engine.
type RuleSpec struct {
	Name     string         `yaml:"name"`
	Priority int            `yaml:"priority"`
	When     []PredicateSpec `yaml:"when"`
	Then     ActionSpec     `yaml:"then"`
}

// PredicateTarget selects which side(s) of an adjacency a predicate
// applies to.
type PredicateTarget string

const (
	TargetSource PredicateTarget = "source"
	TargetTarget PredicateTarget = "target"
	TargetBoth   PredicateTarget = "both"
	TargetEither PredicateTarget = "either"
)

// PredicateKind enumerates the typed predicates spec.md §3 lists for a
// Trap Rule condition.
type PredicateKind string

const (
	PredColorType        PredicateKind = "color_type"
	PredLuminanceDiff     PredicateKind = "luminance_diff"
	PredInkStrengthDiff   PredicateKind = "ink_strength_diff"
	PredObjectType        PredicateKind = "object_type"
	PredObjectSize        PredicateKind = "object_size"
	PredLineWidth         PredicateKind = "line_width"
	PredTextSize          PredicateKind = "text_size"
	PredHasTag            PredicateKind = "has_tag"
	PredIsKnockout        PredicateKind = "is_knockout"
	PredIsOverprint       PredicateKind = "is_overprint"
	PredAdjacentToBlack   PredicateKind = "adjacent_to_black"
	PredAdjacentToWhite   PredicateKind = "adjacent_to_white"
	PredIsNegativeText    PredicateKind = "is_negative_text"
	PredIsRichBlack       PredicateKind = "is_rich_black"
)

// PredicateSpec is one conjunct of a rule's condition.
type PredicateSpec struct {
	Kind     PredicateKind   `yaml:"kind"`
	Target   PredicateTarget `yaml:"target"`
	Operator string          `yaml:"operator"` // "eq", "gt", "lt", "gte", "lte"
	Value    string          `yaml:"value"`
	Number   float64         `yaml:"number"`
}

// ActionKind enumerates the action types spec.md §3 lists for a rule.
type ActionKind string

const (
	ActionTrap            ActionKind = "trap"
	ActionNoTrap          ActionKind = "no_trap"
	ActionSpread          ActionKind = "spread"
	ActionChoke           ActionKind = "choke"
	ActionCenterline      ActionKind = "centerline"
	ActionReverseKnockout ActionKind = "reverse_knockout"
	ActionPullback        ActionKind = "pullback"
)

// ActionSpec is the action a matching rule applies.
type ActionSpec struct {
	Type            ActionKind `yaml:"type"`
	DistanceMM      float64    `yaml:"distance_mm"`
	DistancePercent float64    `yaml:"distance_percent"`
	ColorOverride   string     `yaml:"color_override"`
	TruncationMode  string     `yaml:"truncation_mode"`
	FeatherMM       float64    `yaml:"feather_mm"`
}
