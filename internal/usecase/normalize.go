package usecase

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"fleetrecon/internal/domain"
)

// Timestamp layouts the two source families use.
const (
	layoutDateTime = "02/01/2006 15:04"
	layoutDate     = "02/01/2006"
	layoutTime     = "15:04:05"
)

// Normalize converts a source's raw rows into canonical transactions.
// A row whose timestamp or amount does not parse is excluded from the
// output and counted, never reported as an error; a record without a valid
// timestamp cannot participate in matching. A field the schema names but
// the headers lack aborts the run with a SchemaError. The raw input is not
// mutated.
func Normalize(rs *domain.RecordSet, schema domain.Schema) ([]domain.Transaction, int, error) {
	if err := checkSchema(rs, schema); err != nil {
		return nil, 0, err
	}

	out := make([]domain.Transaction, 0, len(rs.Rows))
	dropped := 0
	for i, row := range rs.Rows {
		ts, ok := parseTimestamp(row, schema)
		if !ok {
			dropped++
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(row[schema.AmountField]))
		if err != nil {
			dropped++
			continue
		}

		tx := domain.Transaction{
			Timestamp:   ts,
			Amount:      amount,
			VehicleKey:  domain.NormalizeVehicleKey(row[schema.VehicleField]),
			OriginIndex: i,
		}
		if schema.SiteField != "" {
			tx.SiteKey = row[schema.SiteField]
		}
		if schema.RefField != "" {
			tx.SourceRef = row[schema.RefField]
		}
		out = append(out, tx)
	}
	return out, dropped, nil
}

func parseTimestamp(row domain.RawRecord, schema domain.Schema) (time.Time, bool) {
	if !schema.SplitTimestamp() {
		ts, err := time.Parse(layoutDateTime, strings.TrimSpace(row[schema.DateTimeField]))
		return ts, err == nil
	}
	combined := strings.TrimSpace(row[schema.DateField]) + " " + strings.TrimSpace(row[schema.TimeField])
	ts, err := time.Parse(layoutDate+" "+layoutTime, combined)
	return ts, err == nil
}

func checkSchema(rs *domain.RecordSet, schema domain.Schema) error {
	present := make(map[string]bool, len(rs.Headers))
	for _, h := range rs.Headers {
		present[h] = true
	}
	for _, field := range schema.RequiredFields() {
		if !present[field] {
			return &domain.SchemaError{Source: schema.Source, Field: field}
		}
	}
	return nil
}
