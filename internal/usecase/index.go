package usecase

import "fleetrecon/internal/domain"

// groupKey identifies a candidate group. Site stays empty when the policy
// matches on vehicle alone.
type groupKey struct {
	vehicle string
	site    string
}

// Index groups probe-side transactions for candidate retrieval. Each group
// preserves input order so downstream output is deterministic.
type Index map[groupKey][]domain.Transaction

// BuildIndex groups transactions by vehicle key, and additionally by site
// key when requireSite is set. An index is rebuilt fresh for every run and
// holds no cross-run state.
func BuildIndex(transactions []domain.Transaction, requireSite bool) Index {
	idx := make(Index)
	for _, tx := range transactions {
		key := groupKey{vehicle: tx.VehicleKey}
		if requireSite {
			key.site = tx.SiteKey
		}
		idx[key] = append(idx[key], tx)
	}
	return idx
}

func (idx Index) candidates(tx domain.Transaction, requireSite bool) []domain.Transaction {
	key := groupKey{vehicle: tx.VehicleKey}
	if requireSite {
		key.site = tx.SiteKey
	}
	return idx[key]
}
