package usecase

import (
	"time"

	"fleetrecon/internal/domain"
)

// Diagnose assigns exactly one mismatch reason to each unmatched driving
// transaction, keyed by origin index. The stages run in strict precedence:
// vehicle, then time, then site (only when the policy requires site
// equality), then amount. The first failing stage wins even when later
// stages would also fail.
//
// vehicleIdx must be keyed on vehicle alone so the first stage sees
// candidates regardless of site.
func Diagnose(unmatched []domain.Transaction, vehicleIdx Index, buffer time.Duration, policy domain.Policy) map[int]domain.MismatchReason {
	reasons := make(map[int]domain.MismatchReason, len(unmatched))
	for _, t := range unmatched {
		reasons[t.OriginIndex] = diagnoseOne(t, vehicleIdx, buffer, policy)
	}
	return reasons
}

func diagnoseOne(t domain.Transaction, vehicleIdx Index, buffer time.Duration, policy domain.Policy) domain.MismatchReason {
	vehicleMatches := vehicleIdx.candidates(t, false)
	if len(vehicleMatches) == 0 {
		return domain.MismatchVehicle
	}

	var timeMatches []domain.Transaction
	for _, c := range vehicleMatches {
		if withinWindow(t.Timestamp, c.Timestamp, buffer) {
			timeMatches = append(timeMatches, c)
		}
	}
	if len(timeMatches) == 0 {
		return domain.MismatchTime
	}

	if policy.RequireSiteMatch {
		siteMatched := false
		for _, c := range timeMatches {
			if c.SiteKey == t.SiteKey {
				siteMatched = true
				break
			}
		}
		if !siteMatched {
			return domain.MismatchSite
		}
	}

	// The record is unmatched but survived every earlier stage, so the
	// amount test is the one that failed.
	return domain.MismatchAmount
}
