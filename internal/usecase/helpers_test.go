package usecase_test

import (
	"time"

	"github.com/shopspring/decimal"

	"fleetrecon/internal/domain"
)

// dec parses a decimal literal for test fixtures.
func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// at returns a timestamp on the fixture day 2024-01-01.
func at(hour, min int) time.Time {
	return time.Date(2024, 1, 1, hour, min, 0, 0, time.UTC)
}

func tx(origin int, ts time.Time, amount, vehicle string) domain.Transaction {
	return domain.Transaction{
		Timestamp:   ts,
		Amount:      dec(amount),
		VehicleKey:  vehicle,
		OriginIndex: origin,
	}
}
