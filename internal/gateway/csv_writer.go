package gateway

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"fleetrecon/internal/domain"
)

const exportTimeLayout = "2006-01-02 15:04:05"

// ReportWriter exports reconciliation results as row-oriented CSV tables.
type ReportWriter struct{}

// NewReportWriter creates a new writer instance.
func NewReportWriter() *ReportWriter {
	return &ReportWriter{}
}

// WriteMatchedPairs writes the matched-pair table. Optional columns are
// always present and left empty when the source did not supply them.
func (w *ReportWriter) WriteMatchedPairs(path string, pairs []domain.MatchedPair) error {
	rows := make([][]string, 0, len(pairs)+1)
	rows = append(rows, []string{
		"timestamp", "amount_a", "vehicle_a", "amount_b", "vehicle_b",
		"site_a", "site_b", "source_ref",
	})
	for _, p := range pairs {
		rows = append(rows, []string{
			p.Timestamp.Format(exportTimeLayout),
			p.AmountA.String(),
			p.VehicleA,
			p.AmountB.String(),
			p.VehicleB,
			p.SiteA,
			p.SiteB,
			p.SourceRef,
		})
	}
	return w.writeAll(path, rows)
}

// WriteAnnotated writes the annotated driving-side table: each canonical
// transaction with its matched flag, mismatch reason and cross-reference.
func (w *ReportWriter) WriteAnnotated(path string, annotated []domain.AnnotatedTransaction) error {
	rows := make([][]string, 0, len(annotated)+1)
	rows = append(rows, []string{
		"timestamp", "amount", "vehicle_key", "site_key", "source_ref",
		"matched", "mismatch_reason", "cross_ref",
	})
	for _, at := range annotated {
		rows = append(rows, []string{
			at.Timestamp.Format(exportTimeLayout),
			at.Amount.String(),
			at.VehicleKey,
			at.SiteKey,
			at.SourceRef,
			strconv.FormatBool(at.Matched),
			string(at.MismatchReason),
			at.CrossRef,
		})
	}
	return w.writeAll(path, rows)
}

func (w *ReportWriter) writeAll(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file %s: %w", path, err)
	}
	cw := csv.NewWriter(file)
	if err := cw.WriteAll(rows); err != nil {
		file.Close()
		return fmt.Errorf("failed to write export file %s: %w", path, err)
	}
	return file.Close()
}
