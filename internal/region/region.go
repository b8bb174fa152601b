// Package region implements the Color Region and Adjacency Graph builder
// (spec.md §4.4, component C4): it derives filled/stroked regions from a
// Document's objects, annotates risk factors, and computes a region-to-
// region adjacency graph with shared-edge geometry.
package region

import (
	"sort"

	"github.com/coldpress/trapcore/internal/geom"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/google/uuid"
)

// Region is the derived Color Region entity of spec.md §3.
type Region struct {
	ID         string
	ObjectID   string
	ColorID    string
	Contour    geom.Path
	AreaMM2    float64
	IsStroke   bool // true when the contour comes from a stroke outline, not a fill
}

// ContactType classifies how two regions meet, per spec.md §4.4.
type ContactType int

const (
	ContactEdgeToEdge ContactType = iota
	ContactOverlap
	ContactGap
	ContactKnockout
	ContactOverprint
)

// Adjacency is a directed edge from one region to another, per spec.md §3
// "Adjacency Record".
type Adjacency struct {
	From, To     string // region ids
	SharedEdge   geom.Path
	EdgeLength   float64
	Contact      ContactType
	TrapRequired bool
}

// Graph stores outgoing adjacency edges per region id, so iteration is
// O(degree), per spec.md §3's design note on bidirectionality.
type Graph struct {
	Regions map[string]Region
	Out     map[string][]Adjacency
}

func newGraph() *Graph {
	return &Graph{Regions: make(map[string]Region), Out: make(map[string][]Adjacency)}
}

// OrderedRegionIDs returns region ids sorted lexicographically, the
// deterministic iteration order spec.md §5 requires for adjacency
// processing and decision id assignment.
func (g *Graph) OrderedRegionIDs() []string {
	ids := make([]string, 0, len(g.Regions))
	for id := range g.Regions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Symmetric returns both the outgoing adjacency list for regionID and,
// for completeness, any adjacency recorded against regionID from another
// region's outgoing list -- a symmetric-lookup helper over the
// outgoing-edges-only storage (spec.md §9 design note).
func (g *Graph) Symmetric(regionID string) []Adjacency {
	var all []Adjacency
	all = append(all, g.Out[regionID]...)
	for from, edges := range g.Out {
		if from == regionID {
			continue
		}
		for _, e := range edges {
			if e.To == regionID {
				all = append(all, Adjacency{From: regionID, To: from, SharedEdge: e.SharedEdge, EdgeLength: e.EdgeLength, Contact: e.Contact, TrapRequired: e.TrapRequired})
			}
		}
	}
	return all
}

// UnorderedPairs returns each unordered region pair with at least one
// recorded adjacency exactly once, per spec.md §3's "unordered-pair set
// prevents double-processing" design note, in deterministic
// lexicographic-by-id order.
func (g *Graph) UnorderedPairs() [][2]string {
	seen := make(map[[2]string]bool)
	var pairs [][2]string
	for _, from := range g.OrderedRegionIDs() {
		for _, e := range g.Out[from] {
			a, b := from, e.To
			if a > b {
				a, b = b, a
			}
			key := [2]string{a, b}
			if seen[key] {
				continue
			}
			seen[key] = true
			pairs = append(pairs, key)
		}
	}
	return pairs
}

func newRegionID() string { return uuid.NewString() }
