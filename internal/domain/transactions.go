package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// MismatchReason classifies why a driving-side transaction found no
// counterpart. Exactly one reason is assigned per unmatched record.
type MismatchReason string

const (
	MismatchVehicle MismatchReason = "VEHICLE_MISMATCH"
	MismatchTime    MismatchReason = "TIME_MISMATCH"
	MismatchSite    MismatchReason = "SITE_MISMATCH"
	MismatchAmount  MismatchReason = "AMOUNT_MISMATCH"
)

// Transaction is the canonical record a ledger row normalizes into.
// Immutable after normalization; OriginIndex points back at the raw row so
// results can be re-attached to the original file without value comparison.
type Transaction struct {
	Timestamp   time.Time       `json:"timestamp"`
	Amount      decimal.Decimal `json:"amount"`
	VehicleKey  string          `json:"vehicle_key"`
	SiteKey     string          `json:"site_key,omitempty"`
	SourceRef   string          `json:"source_ref,omitempty"`
	OriginIndex int             `json:"origin_index"`
}

// RawRecord is one pre-parsed ledger row, keyed by header name.
type RawRecord map[string]string

// RecordSet is the ordered output of the ingestion collaborator for one
// ledger file.
type RecordSet struct {
	Source  string
	Headers []string
	Rows    []RawRecord
}

// Schema names where each canonical field lives in a source's rows.
// A source encodes the timestamp either as one combined field
// (dd/mm/yyyy HH:MM) or as separate date (dd/mm/yyyy) and time (HH:MM:SS)
// fields; set DateTimeField for the former, DateField+TimeField for the
// latter. SiteField and RefField are optional.
type Schema struct {
	Source        string
	DateTimeField string
	DateField     string
	TimeField     string
	AmountField   string
	VehicleField  string
	SiteField     string
	RefField      string
}

// SplitTimestamp reports whether the source carries separate date and time
// fields.
func (s Schema) SplitTimestamp() bool { return s.DateTimeField == "" }

// RequiredFields lists every header the schema expects in the input.
// Optional fields become required once the schema names them.
func (s Schema) RequiredFields() []string {
	var fields []string
	if s.SplitTimestamp() {
		fields = append(fields, s.DateField, s.TimeField)
	} else {
		fields = append(fields, s.DateTimeField)
	}
	fields = append(fields, s.AmountField, s.VehicleField)
	if s.SiteField != "" {
		fields = append(fields, s.SiteField)
	}
	if s.RefField != "" {
		fields = append(fields, s.RefField)
	}
	return fields
}

// Policy holds the run-time matching knobs.
type Policy struct {
	RequireSiteMatch bool
	AmountEpsilon    decimal.Decimal
}

// DefaultPolicy matches on vehicle alone with the standard 0.01 currency
// epsilon.
func DefaultPolicy() Policy {
	return Policy{AmountEpsilon: decimal.New(1, -2)}
}

// NormalizeVehicleKey strips all whitespace from a vehicle identifier so
// formatting differences between sources ("ABC 123" vs "ABC123") do not
// cause false mismatches.
func NormalizeVehicleKey(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}
