package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fleetrecon/internal/domain"
)

// CSVRecordSource implements the RecordSource interface for plain CSV
// ledger files.
type CSVRecordSource struct{}

// NewCSVRecordSource creates a new source instance.
func NewCSVRecordSource() *CSVRecordSource {
	return &CSVRecordSource{}
}

// GetRecordSet reads a CSV file into header-mapped rows. Field names come
// from the first line; row order is preserved so results can be re-attached
// to the original file by index. Field names vary across source schemas, so
// no column positions are assumed here.
func (r *CSVRecordSource) GetRecordSet(ctx context.Context, path string) (*domain.RecordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	rs := &domain.RecordSet{
		Source:  filepath.Base(path),
		Headers: headers,
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		row := make(domain.RawRecord, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			}
		}
		rs.Rows = append(rs.Rows, row)
	}
	return rs, nil
}
