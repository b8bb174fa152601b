package ruleengine

import (
	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/model"
)

// RegionInput is everything Decide needs about one side of an adjacency:
// its color, risk factors, geometry, and any attached trap tag.
type RegionInput struct {
	RegionID      string
	ObjectID      string
	Color         color.Color
	Risk          model.RiskFactors
	AreaMM2       float64
	IsText        bool
	TextSizePt    float64
	IsStroke      bool
	StrokeWidthMM float64
	Knockout      bool
	Tag           *model.TrapTag
}
