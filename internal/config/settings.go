// Package config holds the Settings record (spec.md §6), its defaults, the
// closed catalogue of technology presets, and the merge semantics used by
// Session.UpdateSettings. Presets are embedded YAML decoded via
// gopkg.in/yaml.v3, not switch-cased Go literals, so a new technology
// preset can be added without touching code.
package config

// Technology selects the width multiplier applied during width resolution.
type Technology string

const (
	TechFlexo     Technology = "flexo"
	TechOffset    Technology = "offset"
	TechDigital   Technology = "digital"
	TechGravure   Technology = "gravure"
	TechScreen    Technology = "screen"
	TechDryOffset Technology = "dry_offset"
)

// DirectionMethod selects the priority function used by the rule engine.
type DirectionMethod string

const (
	MethodNeutralDensity DirectionMethod = "use_neutral_density"
	MethodLightness      DirectionMethod = "use_lightness"
	MethodChroma         DirectionMethod = "use_chroma"
	MethodCustom         DirectionMethod = "use_custom"
)

// Mode is the master mode: normal trapping, or reverse (white-knockout) for
// metallic substrates.
type Mode string

const (
	ModeNormal  Mode = "normal"
	ModeReverse Mode = "reverse"
)

// Settings mirrors the field table in spec.md §6 exactly, one field per
// row, grouped the same way.
type Settings struct {
	// mode
	Enabled    bool       `yaml:"enabled"`
	Mode       Mode       `yaml:"mode"`
	Technology Technology `yaml:"technology"`

	// distance
	DefaultWidthMM       float64 `yaml:"default_width_mm"`
	MinWidthMM           float64 `yaml:"min_width_mm"`
	MaxWidthMM           float64 `yaml:"max_width_mm"`
	IntoBlackMM          float64 `yaml:"into_black_mm"`
	IntoSpotMM           float64 `yaml:"into_spot_mm"`
	IntoImageMM          float64 `yaml:"into_image_mm"`
	PullbackDistanceMM   float64 `yaml:"pullback_distance_mm"`
	MinInkDifferencePct  float64 `yaml:"min_ink_difference_pct"`

	// direction
	DirectionMethod    DirectionMethod `yaml:"direction_method"`
	ImageTrapDirection string          `yaml:"image_trap_direction"`

	// color
	TrapColorIntensityPct float64 `yaml:"trap_color_intensity_pct"`
	TruncationMode        string  `yaml:"truncation_mode"`
	EndCapStyle           string  `yaml:"end_cap_style"`
	CornerStyle           string  `yaml:"corner_style"`
	MiterLimit            float64 `yaml:"miter_limit"`

	// pullback
	PullbackMode string `yaml:"pullback_mode"`

	// processing
	CenterlineBehavior   string  `yaml:"centerline_behavior"`
	TrapDecisionMode     string  `yaml:"trap_decision_mode"`
	SmallObjectThreshMM2 float64 `yaml:"small_object_threshold_mm"`

	// special
	TrapBlackToAll       bool    `yaml:"trap_black_to_all"`
	BlackTrapWidthMM     float64 `yaml:"black_trap_width_mm"`
	TrapWhiteUnderprint  bool    `yaml:"trap_white_underprint"`
	WhiteSpreadMM        float64 `yaml:"white_spread_mm"`
	TrapMetallics        bool    `yaml:"trap_metallics"`
	MetallicTrapWidthMM  float64 `yaml:"metallic_trap_width_mm"`

	// text
	TrapText          bool    `yaml:"trap_text"`
	MinTextSizePt     float64 `yaml:"min_text_size_pt"`
	TextTrapReduction float64 `yaml:"text_trap_reduction"`

	// lines
	TrapThinLines  bool    `yaml:"trap_thin_lines"`
	MinLineWidthMM float64 `yaml:"min_line_width_mm"`

	// images
	TrapImages         bool    `yaml:"trap_images"`
	ImageEdgeFeatherMM float64 `yaml:"image_edge_feather_mm"`

	// rules
	CustomRules []RuleSpec `yaml:"custom_rules"`
}

// DefaultSettings returns the defaults enumerated in spec.md §6.
func DefaultSettings() Settings {
	return Settings{
		Enabled:    true,
		Mode:       ModeNormal,
		Technology: TechFlexo,

		DefaultWidthMM:      0.20,
		MinWidthMM:          0.05,
		MaxWidthMM:          0.50,
		IntoBlackMM:         0.25,
		IntoSpotMM:          0.20,
		IntoImageMM:         0.15,
		PullbackDistanceMM:  0.10,
		MinInkDifferencePct: 10,

		DirectionMethod:    MethodLightness,
		ImageTrapDirection: "automatic",

		TrapColorIntensityPct: 100,
		TruncationMode:        "on_center",
		EndCapStyle:           "square",
		CornerStyle:           "miter",
		MiterLimit:            4,

		PullbackMode: "automatic",

		CenterlineBehavior:   "automatic",
		TrapDecisionMode:     "same_for_small",
		SmallObjectThreshMM2: 1.0,

		TrapBlackToAll:      true,
		BlackTrapWidthMM:    0.25,
		TrapWhiteUnderprint: true,
		WhiteSpreadMM:       0.30,
		TrapMetallics:       true,
		MetallicTrapWidthMM: 0.20,

		TrapText:          true,
		MinTextSizePt:     6,
		TextTrapReduction: 0.5,

		TrapThinLines:  false,
		MinLineWidthMM: 0.25,

		TrapImages:         true,
		ImageEdgeFeatherMM: 0.10,

		CustomRules: nil,
	}
}

// TechnologyWidthMultiplier returns the width multiplier for t per
// spec.md §4.5.
func TechnologyWidthMultiplier(t Technology) float64 {
	switch t {
	case TechFlexo:
		return 1.2
	case TechOffset, TechDryOffset:
		return 1.0
	case TechDigital:
		return 0.8
	case TechGravure:
		return 1.1
	case TechScreen:
		return 1.5
	default:
		return 1.0
	}
}

// Merge applies a partial settings record on top of s, per-field, treating
// the Go zero value in partial (0, "", nil, false) as "not set" for every
// field, per spec.md:225's "merges a partial settings record". This means
// a partial can only ever turn a bool field on, never explicitly back off
// -- the same zero-value-as-absent limitation numeric and string fields
// have -- so clearing a bool requires assigning the full Settings rather
// than merging a partial.
func (s Settings) Merge(partial Settings) Settings {
	out := s

	if partial.Enabled {
		out.Enabled = true
	}
	if partial.Mode != "" {
		out.Mode = partial.Mode
	}
	if partial.Technology != "" {
		out.Technology = partial.Technology
	}

	if partial.DefaultWidthMM != 0 {
		out.DefaultWidthMM = partial.DefaultWidthMM
	}
	if partial.MinWidthMM != 0 {
		out.MinWidthMM = partial.MinWidthMM
	}
	if partial.MaxWidthMM != 0 {
		out.MaxWidthMM = partial.MaxWidthMM
	}
	if partial.IntoBlackMM != 0 {
		out.IntoBlackMM = partial.IntoBlackMM
	}
	if partial.IntoSpotMM != 0 {
		out.IntoSpotMM = partial.IntoSpotMM
	}
	if partial.IntoImageMM != 0 {
		out.IntoImageMM = partial.IntoImageMM
	}
	if partial.PullbackDistanceMM != 0 {
		out.PullbackDistanceMM = partial.PullbackDistanceMM
	}
	if partial.MinInkDifferencePct != 0 {
		out.MinInkDifferencePct = partial.MinInkDifferencePct
	}

	if partial.DirectionMethod != "" {
		out.DirectionMethod = partial.DirectionMethod
	}
	if partial.ImageTrapDirection != "" {
		out.ImageTrapDirection = partial.ImageTrapDirection
	}

	if partial.TrapColorIntensityPct != 0 {
		out.TrapColorIntensityPct = partial.TrapColorIntensityPct
	}
	if partial.TruncationMode != "" {
		out.TruncationMode = partial.TruncationMode
	}
	if partial.EndCapStyle != "" {
		out.EndCapStyle = partial.EndCapStyle
	}
	if partial.CornerStyle != "" {
		out.CornerStyle = partial.CornerStyle
	}
	if partial.MiterLimit != 0 {
		out.MiterLimit = partial.MiterLimit
	}

	if partial.PullbackMode != "" {
		out.PullbackMode = partial.PullbackMode
	}

	if partial.CenterlineBehavior != "" {
		out.CenterlineBehavior = partial.CenterlineBehavior
	}
	if partial.TrapDecisionMode != "" {
		out.TrapDecisionMode = partial.TrapDecisionMode
	}
	if partial.SmallObjectThreshMM2 != 0 {
		out.SmallObjectThreshMM2 = partial.SmallObjectThreshMM2
	}

	if partial.TrapBlackToAll {
		out.TrapBlackToAll = true
	}
	if partial.BlackTrapWidthMM != 0 {
		out.BlackTrapWidthMM = partial.BlackTrapWidthMM
	}
	if partial.TrapWhiteUnderprint {
		out.TrapWhiteUnderprint = true
	}
	if partial.WhiteSpreadMM != 0 {
		out.WhiteSpreadMM = partial.WhiteSpreadMM
	}
	if partial.TrapMetallics {
		out.TrapMetallics = true
	}
	if partial.MetallicTrapWidthMM != 0 {
		out.MetallicTrapWidthMM = partial.MetallicTrapWidthMM
	}

	if partial.TrapText {
		out.TrapText = true
	}
	if partial.MinTextSizePt != 0 {
		out.MinTextSizePt = partial.MinTextSizePt
	}
	if partial.TextTrapReduction != 0 {
		out.TextTrapReduction = partial.TextTrapReduction
	}

	if partial.TrapThinLines {
		out.TrapThinLines = true
	}
	if partial.MinLineWidthMM != 0 {
		out.MinLineWidthMM = partial.MinLineWidthMM
	}

	if partial.TrapImages {
		out.TrapImages = true
	}
	if partial.ImageEdgeFeatherMM != 0 {
		out.ImageEdgeFeatherMM = partial.ImageEdgeFeatherMM
	}

	if partial.CustomRules != nil {
		out.CustomRules = partial.CustomRules
	}

	return out
}
