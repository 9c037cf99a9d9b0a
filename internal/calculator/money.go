package calculator

import (
	"math"
	"sort"
)

// cents is a money amount in integer hundredths of a currency unit.
// All calculator arithmetic happens in cents; float64 amounts only
// appear at the package boundary.
type cents int64

// epsilon is the tolerance, in cents, below which a balance counts as settled.
// It absorbs rounding noise from division and currency conversion.
const epsilon cents = 1

// toCents converts a display amount (e.g. 10.23) to integer cents.
func toCents(amount float64) cents {
	return cents(math.Round(amount * 100))
}

// toAmount converts integer cents back to a display amount.
func toAmount(c cents) float64 {
	return float64(c) / 100
}

// apportion divides total across weights using the largest-remainder method:
// each entry gets the floor of its ideal share, then the leftover cents go one
// at a time to the entries with the largest fractional remainders. Ties keep
// input order, so equal weights hand the leftovers to the earliest entries.
// The returned shares always sum to total. A zero weight sum yields all zeros.
func apportion(total cents, weights []float64) []cents {
	shares := make([]cents, len(weights))
	if len(weights) == 0 {
		return shares
	}

	var weightSum float64
	for _, w := range weights {
		weightSum += w
	}
	if weightSum <= 0 {
		return shares
	}

	type remainder struct {
		index int
		frac  float64
	}
	remainders := make([]remainder, len(weights))

	var allocated cents
	for i, w := range weights {
		ideal := float64(total) * w / weightSum
		floor := math.Floor(ideal)
		shares[i] = cents(floor)
		allocated += cents(floor)
		remainders[i] = remainder{index: i, frac: ideal - floor}
	}

	sort.SliceStable(remainders, func(i, j int) bool {
		return remainders[i].frac > remainders[j].frac
	})

	// Floating-point error can leave the allocation off by more than one pass,
	// so cycle until every cent is placed.
	for k := 0; allocated < total; k = (k + 1) % len(remainders) {
		shares[remainders[k].index]++
		allocated++
	}
	for k := 0; allocated > total; k = (k + 1) % len(remainders) {
		shares[remainders[k].index]--
		allocated--
	}

	return shares
}
