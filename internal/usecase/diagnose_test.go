package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fleetrecon/internal/domain"
	"fleetrecon/internal/usecase"
)

func TestDiagnose(t *testing.T) {
	policy := domain.DefaultPolicy()
	sitePolicy := domain.DefaultPolicy()
	sitePolicy.RequireSiteMatch = true

	tests := []struct {
		name      string
		unmatched []domain.Transaction
		probe     []domain.Transaction
		buffer    time.Duration
		policy    domain.Policy
		expected  map[int]domain.MismatchReason
	}{
		{
			name:      "no candidate shares the vehicle key",
			unmatched: []domain.Transaction{tx(0, at(10, 0), "50.00", "ABC123")},
			probe:     []domain.Transaction{tx(0, at(10, 0), "50.00", "ZZZ999")},
			buffer:    time.Hour,
			policy:    policy,
			expected:  map[int]domain.MismatchReason{0: domain.MismatchVehicle},
		},
		{
			name:      "vehicle matches but every candidate is outside the buffer",
			unmatched: []domain.Transaction{tx(0, at(10, 0), "50.00", "ABC123")},
			probe:     []domain.Transaction{tx(0, at(13, 0), "50.00", "ABC123")},
			buffer:    time.Hour,
			policy:    policy,
			expected:  map[int]domain.MismatchReason{0: domain.MismatchTime},
		},
		{
			name:      "vehicle and time match but the amount differs",
			unmatched: []domain.Transaction{tx(0, at(10, 0), "50.00", "ABC123")},
			probe:     []domain.Transaction{tx(0, at(10, 0), "45.00", "ABC123")},
			buffer:    time.Hour,
			policy:    policy,
			expected:  map[int]domain.MismatchReason{0: domain.MismatchAmount},
		},
		{
			name:      "time failure wins over amount failure",
			unmatched: []domain.Transaction{tx(0, at(10, 0), "50.00", "ABC123")},
			probe:     []domain.Transaction{tx(0, at(14, 0), "45.00", "ABC123")},
			buffer:    time.Hour,
			policy:    policy,
			expected:  map[int]domain.MismatchReason{0: domain.MismatchTime},
		},
		{
			name: "site stage fires when the policy tracks sites",
			unmatched: []domain.Transaction{
				{Timestamp: at(10, 0), Amount: dec("50.00"), VehicleKey: "ABC123", SiteKey: "Station One", OriginIndex: 0},
			},
			probe: []domain.Transaction{
				{Timestamp: at(10, 0), Amount: dec("45.00"), VehicleKey: "ABC123", SiteKey: "Station Two", OriginIndex: 0},
			},
			buffer:   time.Hour,
			policy:   sitePolicy,
			expected: map[int]domain.MismatchReason{0: domain.MismatchSite},
		},
		{
			name: "site stage is skipped when the policy does not track sites",
			unmatched: []domain.Transaction{
				{Timestamp: at(10, 0), Amount: dec("50.00"), VehicleKey: "ABC123", SiteKey: "Station One", OriginIndex: 0},
			},
			probe: []domain.Transaction{
				{Timestamp: at(10, 0), Amount: dec("45.00"), VehicleKey: "ABC123", SiteKey: "Station Two", OriginIndex: 0},
			},
			buffer:   time.Hour,
			policy:   policy,
			expected: map[int]domain.MismatchReason{0: domain.MismatchAmount},
		},
		{
			name: "each unmatched record gets exactly one reason",
			unmatched: []domain.Transaction{
				tx(0, at(10, 0), "50.00", "ABC123"),
				tx(1, at(10, 0), "30.00", "NOPE"),
				tx(2, at(20, 0), "50.00", "ABC123"),
			},
			probe:  []domain.Transaction{tx(0, at(10, 0), "45.00", "ABC123")},
			buffer: time.Hour,
			policy: policy,
			expected: map[int]domain.MismatchReason{
				0: domain.MismatchAmount,
				1: domain.MismatchVehicle,
				2: domain.MismatchTime,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// The diagnoser walks vehicle-only candidate groups.
			vehicleIdx := usecase.BuildIndex(tt.probe, false)
			got := usecase.Diagnose(tt.unmatched, vehicleIdx, tt.buffer, tt.policy)
			assert.Equal(t, tt.expected, got)
		})
	}
}
