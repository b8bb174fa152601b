// Package session implements the Trap Session facade (spec.md §4.8,
// component C8): the stateful entry point that orchestrates region
// building, rule evaluation, trap generation, and QC over a caller-
// supplied Document.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coldpress/trapcore/internal/config"
	"github.com/coldpress/trapcore/internal/model"
	"github.com/coldpress/trapcore/internal/qc"
	"github.com/coldpress/trapcore/internal/region"
	"github.com/coldpress/trapcore/internal/trapgen"
	"github.com/coldpress/trapcore/internal/warn"
)

// Phase names a stage of generate_traps for progress reporting, per
// spec.md §5.
type Phase string

const (
	PhaseAnalyze  Phase = "analyze"
	PhaseDecide   Phase = "decide"
	PhaseGenerate Phase = "generate"
	PhaseQC       Phase = "qc"
)

// Progress is one update delivered to a caller-supplied ProgressSink, per
// spec.md §5.
type Progress struct {
	Phase       Phase
	Completed   int
	Total       int
	CurrentTask string
}

// ProgressSink receives progress updates during generate_traps. Report may
// be called from Session's own goroutine only; it must not block
// indefinitely or cancellation can't be checked at chunk boundaries.
type ProgressSink interface {
	Report(Progress)
}

// NoopSink discards all progress updates.
type NoopSink struct{}

func (NoopSink) Report(Progress) {}

// ErrCancelled is returned by GenerateTraps when ctx is cancelled before
// the pipeline completes, per spec.md §5's cooperative cancellation model.
var ErrCancelled = errors.New("session: generate_traps cancelled")

// Result bundles everything generate_traps returns, per spec.md §4.8.
type Result struct {
	Layer    trapgen.TrapLayer
	Graph    *region.Graph
	Warnings []warn.Warning
	QC       qc.Result
}

// Session is the stateful facade of spec.md §4.8. The zero value is not
// usable; construct with New.
type Session struct {
	settings config.Settings
	last     *Result
	log      *slog.Logger
}

// New constructs a Session with the given initial settings.
func New(settings config.Settings) *Session {
	return &Session{settings: settings, log: slog.Default()}
}

// Settings returns the session's current effective settings.
func (s *Session) Settings() config.Settings { return s.settings }

// UpdateSettings merges a partial settings record onto the session's
// current settings, per spec.md §4.8: idempotent, invalidates no prior
// result.
func (s *Session) UpdateSettings(partial config.Settings) {
	s.settings = s.settings.Merge(partial)
}

// Clear forgets the last generate_traps result, per spec.md §4.8.
func (s *Session) Clear() { s.last = nil }

// LastResult returns the most recent generate_traps result, if any.
func (s *Session) LastResult() (Result, bool) {
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// GenerateTraps runs the full pipeline over doc: region building (C4),
// rule evaluation and trap generation (C5/C6), then QC (C7), per
// spec.md §4.8 and the data flow of §2. It is pure with respect to doc;
// the only state it mutates is the session's own last-result cache.
func (s *Session) GenerateTraps(ctx context.Context, sink ProgressSink, doc model.Document) (Result, error) {
	if sink == nil {
		sink = NoopSink{}
	}
	if err := validateDocument(doc); err != nil {
		return Result{}, fmt.Errorf("session: invalid document: %w", err)
	}

	sink.Report(Progress{Phase: PhaseAnalyze, Total: len(doc.Objects)})
	if err := checkCancel(ctx); err != nil {
		return Result{}, err
	}
	regions := region.Build(doc, region.DefaultOptions())
	s.log.Debug("session: regions built", "count", len(regions.Graph.Regions))

	sink.Report(Progress{Phase: PhaseDecide, Total: len(regions.Graph.UnorderedPairs())})
	if err := checkCancel(ctx); err != nil {
		return Result{}, err
	}

	layer := trapgen.Build(doc, regions.Graph, s.settings)
	s.log.Debug("session: traps generated", "count", layer.Stats.TotalTraps, "skipped", layer.Stats.Skipped)

	sink.Report(Progress{Phase: PhaseGenerate, Completed: len(layer.Objects), Total: len(layer.Objects)})
	if err := checkCancel(ctx); err != nil {
		return Result{}, err
	}

	sink.Report(Progress{Phase: PhaseQC})
	qcResult := qc.Run(doc, regions, layer, s.settings)

	result := Result{
		Layer:    layer,
		Graph:    regions.Graph,
		Warnings: append([]warn.Warning{}, layer.Stats.Warnings...),
		QC:       qcResult,
	}
	s.last = &result
	return result, nil
}

// RunQC re-runs the QC Checker against the current trap layer, per
// spec.md §4.8's run_qc operation.
func (s *Session) RunQC(doc model.Document) (qc.Result, error) {
	if s.last == nil {
		return qc.Result{}, errors.New("session: run_qc called with no prior generate_traps result")
	}
	regions := region.Build(doc, region.DefaultOptions())
	return qc.Run(doc, regions, s.last.Layer, s.settings), nil
}

func checkCancel(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrCancelled
	default:
		return nil
	}
}

// validateDocument enforces the structural invariants spec.md §7 calls
// fatal: objects referencing non-existent layers, or an empty palette when
// objects need colors.
func validateDocument(doc model.Document) error {
	if len(doc.Objects) == 0 {
		return nil
	}
	if len(doc.Palette) == 0 {
		return errors.New("color palette is empty")
	}
	layerIDs := make(map[string]bool, len(doc.Layers))
	for _, l := range doc.Layers {
		layerIDs[l.ID] = true
	}
	for _, obj := range doc.Objects {
		if obj.LayerID != "" && !layerIDs[obj.LayerID] {
			return fmt.Errorf("object %s references unknown layer %s", obj.ID, obj.LayerID)
		}
	}
	return nil
}
