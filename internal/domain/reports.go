package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchedPair records one satisfied pairing between a driving-side (A) and
// probe-side (B) transaction. A single driving record may appear in several
// pairs when duplicate or split transactions exist on the probe side.
type MatchedPair struct {
	Timestamp time.Time       `json:"timestamp"`
	AmountA   decimal.Decimal `json:"amount_a"`
	VehicleA  string          `json:"vehicle_a"`
	AmountB   decimal.Decimal `json:"amount_b"`
	VehicleB  string          `json:"vehicle_b"`
	SiteA     string          `json:"site_a,omitempty"`
	SiteB     string          `json:"site_b,omitempty"`
	SourceRef string          `json:"source_ref,omitempty"`
	OriginA   int             `json:"origin_a"`
	OriginB   int             `json:"origin_b"`
}

// AnnotatedTransaction decorates a driving-side transaction with its
// terminal state: matched (with an optional cross-reference id taken from
// the probe side) or unmatched with exactly one mismatch reason.
type AnnotatedTransaction struct {
	Transaction
	Matched        bool           `json:"matched"`
	MismatchReason MismatchReason `json:"mismatch_reason,omitempty"`
	CrossRef       string         `json:"cross_ref,omitempty"`
}

// Summary provides the headline counts of a reconciliation run. Dropped
// tallies count rows excluded during normalization for unparseable
// timestamps or amounts.
type Summary struct {
	TotalA       int `json:"total_a"`
	TotalB       int `json:"total_b"`
	TotalMatched int `json:"total_matched"`
	DroppedA     int `json:"dropped_a"`
	DroppedB     int `json:"dropped_b"`
}

// ReconciliationReport is the complete output of one run, ready for
// serialization or tabular export.
type ReconciliationReport struct {
	Summary   Summary                `json:"summary"`
	Matched   []MatchedPair          `json:"matched_transactions"`
	Annotated []AnnotatedTransaction `json:"driving_transactions"`
}
