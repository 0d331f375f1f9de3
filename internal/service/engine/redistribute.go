package engine

import (
	"math"

	"calc-golang/internal/storage"
)

// Share is one named percentage slot in a distribution that must sum to 100.
// Used for per-product platform-fee sales shares.
type Share struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// Redistribute sets the edited share to newValue (clamped to [0,100]) and
// rebalances the others proportionally so the total stays at 100, preserving
// their relative ratios. When the other shares previously summed to zero they
// are left untouched: forcing an equal split there would shift totals
// unexpectedly on the next edit of a neighboring share, so the distribution
// is allowed to be off-100 and surfaced via ShareDeviation instead.
func Redistribute(shares []Share, editedID string, newValue float64) []Share {
	out := make([]Share, len(shares))
	copy(out, shares)

	newValue = clampPercent(newValue)

	found := false
	var othersSum float64
	for _, s := range shares {
		if s.ID == editedID {
			found = true
			continue
		}
		othersSum += num(s.Value)
	}
	if !found {
		return out
	}

	remaining := 100 - newValue
	for i := range out {
		if out[i].ID == editedID {
			out[i].Value = newValue
			continue
		}
		if othersSum > 0 {
			out[i].Value = num(out[i].Value) * remaining / othersSum
		}
	}

	return out
}

// RemoveShare drops one share and splits 100 equally across the remainder.
// Removal deliberately uses an equal split where editing uses a proportional
// one; the two paths are different product rules, not one rule applied twice.
func RemoveShare(shares []Share, removedID string) []Share {
	out := make([]Share, 0, len(shares))
	for _, s := range shares {
		if s.ID == removedID {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return out
	}

	equal := 100.0 / float64(len(out))
	for i := range out {
		out[i].Value = equal
	}
	return out
}

// ShareDeviation reports how far a distribution is from summing to 100.
// A distribution with no shares, or all-zero shares, is not yet configured
// and reports 0 rather than a spurious warning.
func ShareDeviation(shares []Share) float64 {
	if len(shares) == 0 {
		return 0
	}
	var total float64
	for _, s := range shares {
		total += num(s.Value)
	}
	if total == 0 {
		return 0
	}
	return math.Abs(total - 100)
}

// FeeShares projects the sales shares out of a platform-fee list so they can
// go through Redistribute / RemoveShare.
func FeeShares(fees []storage.PlatformFee) []Share {
	shares := make([]Share, len(fees))
	for i, f := range fees {
		shares[i] = Share{ID: f.ID, Value: num(f.SalesPercentage)}
	}
	return shares
}

// ApplyFeeShares writes redistributed shares back onto a copy of the fee
// list, matching by id. Fees without a matching share keep their value.
func ApplyFeeShares(fees []storage.PlatformFee, shares []Share) []storage.PlatformFee {
	byID := make(map[string]float64, len(shares))
	for _, s := range shares {
		byID[s.ID] = s.Value
	}
	out := make([]storage.PlatformFee, len(fees))
	copy(out, fees)
	for i := range out {
		if v, ok := byID[out[i].ID]; ok {
			out[i].SalesPercentage = v
		}
	}
	return out
}
