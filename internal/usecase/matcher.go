package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"fleetrecon/internal/domain"
)

// Match finds, for every driving-side transaction, the probe-side
// candidates inside the tolerance window and emits one MatchedPair per
// surviving candidate. A driving record with several in-tolerance
// candidates produces several pairs; deduplication is a caller policy, not
// enforced here. Output order is driving-side order, then candidate order
// within each driving record. Swapping the driving and indexed collections
// runs the match in the opposite direction.
func Match(driving []domain.Transaction, idx Index, buffer time.Duration, policy domain.Policy) []domain.MatchedPair {
	pairs := make([]domain.MatchedPair, 0)
	for _, t := range driving {
		for _, c := range idx.candidates(t, policy.RequireSiteMatch) {
			if !withinWindow(t.Timestamp, c.Timestamp, buffer) {
				continue
			}
			if !amountsEqual(t.Amount, c.Amount, policy.AmountEpsilon) {
				continue
			}
			pairs = append(pairs, domain.MatchedPair{
				Timestamp: t.Timestamp,
				AmountA:   t.Amount,
				VehicleA:  t.VehicleKey,
				AmountB:   c.Amount,
				VehicleB:  c.VehicleKey,
				SiteA:     t.SiteKey,
				SiteB:     c.SiteKey,
				SourceRef: c.SourceRef,
				OriginA:   t.OriginIndex,
				OriginB:   c.OriginIndex,
			})
		}
	}
	return pairs
}

// withinWindow is inclusive at the buffer boundary: a difference of exactly
// the buffer still matches.
func withinWindow(a, b time.Time, buffer time.Duration) bool {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d <= buffer
}

// amountsEqual is exclusive at the epsilon boundary: a difference of
// exactly epsilon does not match.
func amountsEqual(a, b, epsilon decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThan(epsilon)
}
