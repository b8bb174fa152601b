// Package qc implements the QC Checker (spec.md §4.7, component C7): a
// fixed catalogue of invariant checks over a Document, its Adjacency
// Graph, and the generated Trap Layer, producing structured findings.
package qc

import "github.com/coldpress/trapcore/internal/warn"

// Finding is one QC result, reusing the shared Warning shape so findings
// and generation-time warnings can be merged into a single list by the
// session facade.
type Finding = warn.Warning

// Result is the QC Checker's output, per spec.md §4.7: overall pass/fail
// plus the findings partitioned by severity.
type Result struct {
	Passed   bool
	Errors   []Finding
	Warnings []Finding
	Info     []Finding
}

func (r *Result) add(f Finding) {
	switch f.Severity {
	case warn.SeverityError:
		r.Errors = append(r.Errors, f)
	case warn.SeverityWarning:
		r.Warnings = append(r.Warnings, f)
	default:
		r.Info = append(r.Info, f)
	}
}

func (r *Result) finalize() {
	r.Passed = len(r.Errors) == 0
}
