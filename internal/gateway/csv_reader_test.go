package gateway

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetrecon/internal/domain"
)

func writeTempCSV(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	data := ""
	for _, line := range lines {
		data += line + "\n"
	}
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("failed to write temp CSV: %v", err)
	}
	return path
}

func TestCSVRecordSource_GetRecordSet(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected *domain.RecordSet
		wantErr  bool
	}{
		{
			name: "header-mapped rows in file order",
			lines: []string{
				"Date Time,Transaction Amount (RM),Vehicle Number",
				"01/01/2024 10:00,50.00,ABC 123",
				"01/01/2024 11:00,80.00,DEF 456",
			},
			expected: &domain.RecordSet{
				Source:  "ledger.csv",
				Headers: []string{"Date Time", "Transaction Amount (RM)", "Vehicle Number"},
				Rows: []domain.RawRecord{
					{"Date Time": "01/01/2024 10:00", "Transaction Amount (RM)": "50.00", "Vehicle Number": "ABC 123"},
					{"Date Time": "01/01/2024 11:00", "Transaction Amount (RM)": "80.00", "Vehicle Number": "DEF 456"},
				},
			},
		},
		{
			name:  "header only",
			lines: []string{"Date Time,Transaction Amount (RM),Vehicle Number"},
			expected: &domain.RecordSet{
				Source:  "ledger.csv",
				Headers: []string{"Date Time", "Transaction Amount (RM)", "Vehicle Number"},
			},
		},
		{
			name: "short rows keep the fields they have",
			lines: []string{
				"Date Time,Transaction Amount (RM),Vehicle Number",
				"01/01/2024 10:00,50.00",
			},
			expected: &domain.RecordSet{
				Source:  "ledger.csv",
				Headers: []string{"Date Time", "Transaction Amount (RM)", "Vehicle Number"},
				Rows: []domain.RawRecord{
					{"Date Time": "01/01/2024 10:00", "Transaction Amount (RM)": "50.00"},
				},
			},
		},
		{
			name:    "empty file has no header",
			lines:   nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempCSV(t, tt.lines)

			source := NewCSVRecordSource()
			got, err := source.GetRecordSet(context.Background(), path)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCSVRecordSource_FileNotFound(t *testing.T) {
	source := NewCSVRecordSource()
	_, err := source.GetRecordSet(context.Background(), "nonexistent_file.csv")
	assert.Error(t, err)
}
