// Package trapgen implements the Trap Generator (spec.md §4.6, component
// C6): turning a Trap Decision and its two source regions into concrete
// trap geometry, merging overlapping traps, and rolling up run-level
// statistics.
package trapgen

import (
	"github.com/coldpress/trapcore/internal/color"
	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/ruleengine"
	"github.com/coldpress/trapcore/internal/warn"
)

// TrapObject is the generated Trap Object entity of spec.md §3: a thin
// sliver of ink straddling two regions' shared edge.
type TrapObject struct {
	ID         string
	RegionA    string
	RegionB    string
	Contour    geom.Path
	Color      color.Color
	Direction  ruleengine.Direction
	Style      ruleengine.Style
	WidthMM    float64
	FeatherMM  float64
	SourceRule string
	Overprint  bool
	Warnings   []warn.Warning
}

// TrapLayer bundles every TrapObject generated for one run, plus the
// aggregate stats spec.md §5 requires a session to report.
type TrapLayer struct {
	Objects []TrapObject
	Stats   Stats
}

// Stats is the Trap Generator's run-level summary, per spec.md §5.
type Stats struct {
	TotalTraps      int
	TotalSpread     int
	TotalChoke      int
	TotalCenterline int
	Skipped         int
	MergedGroups    int
	TotalLengthMM   float64
	Warnings        []warn.Warning
}
