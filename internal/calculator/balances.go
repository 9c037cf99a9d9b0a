package calculator

// ExpenseForBalance carries the minimal expense fields needed for balance
// aggregation. Splits must already be calculated and stored; their amounts
// sum to Amount within a cent.
type ExpenseForBalance struct {
	PayerID            string
	Amount             float64
	Currency           string  // empty = home currency
	ExchangeRateToHome float64 // captured at write time; 0 = not stored
	Splits             []Split
}

// SettlementForBalance is a recorded real-world payment from one member to
// another, reduced to the fields the aggregator needs.
type SettlementForBalance struct {
	FromMemberID string
	ToMemberID   string
	Amount       float64
}

// CalculateBalancesWithSettlements folds all expenses and settlements into one
// net balance per member, expressed in the home currency. Positive means the
// member is owed money, negative means they owe.
//
// For each expense the payer is credited the normalized total and every split
// member is debited their proportional share of that normalized total (which
// collapses to the stored split amount when no conversion applies). Each
// settlement credits the payer and debits the receiver, cancelling part of the
// imbalance the expenses imply.
//
// The aggregator never fails: an ID not present in memberIDs is skipped, and a
// missing exchange rate falls back to 1:1. Under the split-sum invariant the
// returned balances sum to zero within epsilon.
func CalculateBalancesWithSettlements(expenses []ExpenseForBalance, settlements []SettlementForBalance, memberIDs []string, homeCurrency string) map[string]float64 {
	totals := make(map[string]cents, len(memberIDs))
	for _, id := range memberIDs {
		totals[id] = 0
	}

	for _, exp := range expenses {
		if exp.PayerID == "" || exp.Amount <= 0 {
			continue
		}

		normalized := toCents(NormalizeAmount(exp.Amount, exp.Currency, exp.ExchangeRateToHome, homeCurrency))
		if _, known := totals[exp.PayerID]; known {
			totals[exp.PayerID] += normalized
		}

		for i, share := range expenseShares(exp, normalized) {
			id := exp.Splits[i].MemberID
			if _, known := totals[id]; known {
				totals[id] -= share
			}
		}
	}

	for _, s := range settlements {
		amount := toCents(s.Amount)
		if _, known := totals[s.FromMemberID]; known {
			totals[s.FromMemberID] += amount
		}
		if _, known := totals[s.ToMemberID]; known {
			totals[s.ToMemberID] -= amount
		}
	}

	balances := make(map[string]float64, len(totals))
	for id, c := range totals {
		balances[id] = toAmount(c)
	}
	return balances
}

// expenseShares returns each split's share of the normalized expense total, in
// cents. When no conversion applied the stored split amounts are used as-is;
// otherwise the splits are rescaled onto the normalized total so the shares
// still sum to it exactly.
func expenseShares(exp ExpenseForBalance, normalized cents) []cents {
	original := toCents(exp.Amount)
	if normalized == original {
		shares := make([]cents, len(exp.Splits))
		for i, sp := range exp.Splits {
			shares[i] = toCents(sp.Amount)
		}
		return shares
	}

	weights := make([]float64, len(exp.Splits))
	for i, sp := range exp.Splits {
		weights[i] = sp.Amount
	}
	return apportion(normalized, weights)
}
