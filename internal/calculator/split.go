// Package calculator implements the pure reconciliation logic for group
// expenses: split calculation, currency normalization, balance aggregation,
// and greedy debt simplification. Every function is side-effect free and
// deterministic; amounts are handled in integer cents internally so per-member
// totals always match expense totals to the cent.
package calculator

import (
	"errors"
	"fmt"
	"math"
)

// SplitMethod selects how an expense amount is divided among participants.
type SplitMethod string

const (
	// SplitEqual divides the amount evenly, leftover cents going to the
	// earliest participants in input order.
	SplitEqual SplitMethod = "equal"

	// SplitExact uses caller-supplied per-participant amounts verbatim.
	SplitExact SplitMethod = "exact"

	// SplitPercent divides the amount by caller-supplied percentages.
	SplitPercent SplitMethod = "percent"

	// SplitShares divides the amount proportionally to integer share counts.
	SplitShares SplitMethod = "shares"
)

var (
	// ErrMismatchedSplitTotal is returned when exact split amounts do not sum
	// to the expense total within a cent.
	ErrMismatchedSplitTotal = errors.New("exact split amounts do not sum to the expense total")

	// ErrInvalidPercentTotal is returned when percentages do not sum to 100.
	ErrInvalidPercentTotal = errors.New("percentages do not sum to 100")

	// ErrNoSharesAssigned is returned when every share count is zero.
	ErrNoSharesAssigned = errors.New("no shares assigned to any participant")
)

// Split is one participant's owed share of a single expense.
type Split struct {
	MemberID string
	Amount   float64
}

// SplitData carries the method-specific inputs for a split calculation.
// Exactly one field is consulted, matching the method; each slice must have
// one entry per participant, in participant order.
type SplitData struct {
	ExactAmounts []float64
	Percentages  []float64
	ShareCounts  []int64
}

// ValidateSplitData checks the method-specific inputs against the expense
// amount without producing splits. A nil return means the data is valid.
// The expense-creation flow must block persistence when this fails.
func ValidateSplitData(method SplitMethod, amount float64, data SplitData) error {
	if amount <= 0 {
		return fmt.Errorf("amount must be positive, got %.2f", amount)
	}

	switch method {
	case SplitEqual:
		return nil

	case SplitExact:
		var sum float64
		for _, a := range data.ExactAmounts {
			if a < 0 {
				return fmt.Errorf("exact amounts must be non-negative, got %.2f", a)
			}
			sum += a
		}
		if math.Abs(sum-amount) > 0.01 {
			return fmt.Errorf("%w: amounts sum to %.2f, expense total is %.2f",
				ErrMismatchedSplitTotal, sum, amount)
		}
		return nil

	case SplitPercent:
		var sum float64
		for _, p := range data.Percentages {
			if p < 0 {
				return fmt.Errorf("percentages must be non-negative, got %.2f", p)
			}
			sum += p
		}
		if math.Abs(sum-100) > 0.01 {
			return fmt.Errorf("%w: percentages sum to %.2f", ErrInvalidPercentTotal, sum)
		}
		return nil

	case SplitShares:
		var sum int64
		for _, s := range data.ShareCounts {
			if s < 0 {
				return fmt.Errorf("share counts must be non-negative, got %d", s)
			}
			sum += s
		}
		if sum == 0 {
			return ErrNoSharesAssigned
		}
		return nil

	default:
		return fmt.Errorf("unknown split method %q", method)
	}
}

// CalculateSplits divides amount among participantIDs according to method and
// data. The returned splits are in participant order and always sum to amount
// exactly to the cent, or an error is returned — never a silently wrong total.
func CalculateSplits(amount float64, method SplitMethod, participantIDs []string, data SplitData) ([]Split, error) {
	if len(participantIDs) == 0 {
		return nil, errors.New("must have at least one participant")
	}
	if err := ValidateSplitData(method, amount, data); err != nil {
		return nil, err
	}
	if err := checkEntryCount(method, len(participantIDs), data); err != nil {
		return nil, err
	}

	total := toCents(amount)
	var shares []cents

	switch method {
	case SplitEqual:
		weights := make([]float64, len(participantIDs))
		for i := range weights {
			weights[i] = 1
		}
		shares = apportion(total, weights)

	case SplitExact:
		// Validated within a cent above; the supplied amounts are used verbatim.
		shares = make([]cents, len(participantIDs))
		for i, a := range data.ExactAmounts {
			shares[i] = toCents(a)
		}

	case SplitPercent:
		shares = apportion(total, data.Percentages)

	case SplitShares:
		weights := make([]float64, len(data.ShareCounts))
		for i, s := range data.ShareCounts {
			weights[i] = float64(s)
		}
		shares = apportion(total, weights)
	}

	splits := make([]Split, len(participantIDs))
	for i, id := range participantIDs {
		splits[i] = Split{MemberID: id, Amount: toAmount(shares[i])}
	}
	return splits, nil
}

// checkEntryCount verifies the method data has one entry per participant.
func checkEntryCount(method SplitMethod, participants int, data SplitData) error {
	var entries int
	switch method {
	case SplitEqual:
		return nil
	case SplitExact:
		entries = len(data.ExactAmounts)
	case SplitPercent:
		entries = len(data.Percentages)
	case SplitShares:
		entries = len(data.ShareCounts)
	}
	if entries != participants {
		return fmt.Errorf("split data has %d entries for %d participants", entries, participants)
	}
	return nil
}
