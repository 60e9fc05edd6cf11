package usecase

import (
	"context"
	"fmt"
	"time"

	"fleetrecon/internal/domain"
)

// ReconciliationUseCase wires record ingestion to the matching engine.
type ReconciliationUseCase struct {
	source RecordSource
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(source RecordSource) *ReconciliationUseCase {
	return &ReconciliationUseCase{source: source}
}

// Run loads both ledgers, normalizes them against their schemas and
// reconciles ledger A (driving) against ledger B (probe). Dropped-row
// tallies from normalization are surfaced in the report summary.
func (uc *ReconciliationUseCase) Run(ctx context.Context, pathA, pathB string, schemaA, schemaB domain.Schema, bufferHours int, policy domain.Policy) (*domain.ReconciliationReport, error) {
	if err := validateRun(schemaA, schemaB, bufferHours, policy); err != nil {
		return nil, err
	}

	rsA, err := uc.source.GetRecordSet(ctx, pathA)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger A: %w", err)
	}
	rsB, err := uc.source.GetRecordSet(ctx, pathB)
	if err != nil {
		return nil, fmt.Errorf("could not read ledger B: %w", err)
	}

	aTx, droppedA, err := Normalize(rsA, schemaA)
	if err != nil {
		return nil, err
	}
	bTx, droppedB, err := Normalize(rsB, schemaB)
	if err != nil {
		return nil, err
	}

	report, err := Reconcile(aTx, bTx, bufferHours, policy)
	if err != nil {
		return nil, err
	}
	report.Summary.DroppedA = droppedA
	report.Summary.DroppedB = droppedB
	return report, nil
}

// Reconcile matches the driving collection a against the probe collection b
// and classifies every unmatched driving record. Every driving transaction
// ends in exactly one terminal state: matched, or unmatched with one
// mismatch reason. Re-running on identical inputs and parameters yields
// identical output ordering and content.
func Reconcile(a, b []domain.Transaction, bufferHours int, policy domain.Policy) (*domain.ReconciliationReport, error) {
	if bufferHours < 0 {
		return nil, domain.ConfigError(fmt.Sprintf("time buffer must be >= 0 hours, got %d", bufferHours))
	}
	if policy.AmountEpsilon.Sign() <= 0 {
		return nil, domain.ConfigError("amount epsilon must be positive")
	}
	buffer := time.Duration(bufferHours) * time.Hour

	idx := BuildIndex(b, policy.RequireSiteMatch)
	pairs := Match(a, idx, buffer, policy)

	matched := make(map[int]bool, len(pairs))
	for _, p := range pairs {
		matched[p.OriginA] = true
	}
	var unmatched []domain.Transaction
	for _, t := range a {
		if !matched[t.OriginIndex] {
			unmatched = append(unmatched, t)
		}
	}

	// The diagnoser's first stage needs vehicle-only candidate groups.
	vehicleIdx := idx
	if policy.RequireSiteMatch {
		vehicleIdx = BuildIndex(b, false)
	}
	reasons := Diagnose(unmatched, vehicleIdx, buffer, policy)

	return Assemble(a, b, pairs, reasons, 0, 0), nil
}

func validateRun(schemaA, schemaB domain.Schema, bufferHours int, policy domain.Policy) error {
	if bufferHours < 0 {
		return domain.ConfigError(fmt.Sprintf("time buffer must be >= 0 hours, got %d", bufferHours))
	}
	if policy.RequireSiteMatch && (schemaA.SiteField == "" || schemaB.SiteField == "") {
		return domain.ConfigError("require_site_match needs a site field on both sources")
	}
	return nil
}
