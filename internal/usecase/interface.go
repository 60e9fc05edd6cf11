package usecase

import (
	"context"

	"fleetrecon/internal/domain"
)

// RecordSource supplies raw, header-mapped rows for one ledger file.
// The usecase layer depends on this interface, not on a concrete reader.
//
//go:generate mockgen -destination=mocks/mock_source.go -source=interface.go RecordSource
type RecordSource interface {
	GetRecordSet(ctx context.Context, path string) (*domain.RecordSet, error)
}
