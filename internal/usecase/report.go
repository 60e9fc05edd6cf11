package usecase

import "fleetrecon/internal/domain"

// Assemble aggregates the outputs of a finished run into the report.
// Pure aggregation: counts come from input cardinalities and no matching
// logic is recomputed. A driving record matched by several candidates takes
// the first candidate's source ref as its cross-reference.
func Assemble(a, b []domain.Transaction, pairs []domain.MatchedPair, reasons map[int]domain.MismatchReason, droppedA, droppedB int) *domain.ReconciliationReport {
	matched := make(map[int]bool, len(pairs))
	crossRef := make(map[int]string, len(pairs))
	for _, p := range pairs {
		if !matched[p.OriginA] {
			matched[p.OriginA] = true
			crossRef[p.OriginA] = p.SourceRef
		}
	}

	annotated := make([]domain.AnnotatedTransaction, 0, len(a))
	for _, t := range a {
		at := domain.AnnotatedTransaction{Transaction: t}
		if matched[t.OriginIndex] {
			at.Matched = true
			at.CrossRef = crossRef[t.OriginIndex]
		} else {
			at.MismatchReason = reasons[t.OriginIndex]
		}
		annotated = append(annotated, at)
	}

	return &domain.ReconciliationReport{
		Summary: domain.Summary{
			TotalA:       len(a),
			TotalB:       len(b),
			TotalMatched: len(pairs),
			DroppedA:     droppedA,
			DroppedB:     droppedB,
		},
		Matched:   pairs,
		Annotated: annotated,
	}
}
