package calculator

import "sort"

// SuggestedTransaction is a proposed payment that helps drive every balance to
// zero. It is transient output; recording it as a real settlement is the
// caller's business.
type SuggestedTransaction struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// party is one side of the matching: a member and their remaining amount,
// always positive (debtors are negated on the way in).
type party struct {
	id        string
	remaining cents
}

// SimplifyDebts turns a balance map into an ordered list of pairwise payments
// that zero every balance within epsilon. The matching is greedy — repeatedly
// settle the largest debtor against the largest creditor — which is short but
// not globally transaction-minimal (exact minimization is NP-hard). Output is
// deterministic: both sides are stably sorted by amount descending, ties
// broken by position in memberIDs, and the sorted slices are only advanced by
// cursor, never reordered mid-run.
//
// If the input balances do not sum to zero, a residual remains on one side
// after matching. SimplifyDebts still returns the transactions it produced;
// the residual is an upstream data-integrity signal for the caller.
func SimplifyDebts(balances map[string]float64, memberIDs []string) []SuggestedTransaction {
	var creditors, debtors []party
	for _, id := range orderedIDs(balances, memberIDs) {
		c := toCents(balances[id])
		switch {
		case c > epsilon:
			creditors = append(creditors, party{id: id, remaining: c})
		case c < -epsilon:
			debtors = append(debtors, party{id: id, remaining: -c})
		}
	}

	sort.SliceStable(creditors, func(i, j int) bool {
		return creditors[i].remaining > creditors[j].remaining
	})
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].remaining > debtors[j].remaining
	})

	var transactions []SuggestedTransaction
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		settle := debtors[i].remaining
		if creditors[j].remaining < settle {
			settle = creditors[j].remaining
		}

		if settle > 0 {
			transactions = append(transactions, SuggestedTransaction{
				From:   debtors[i].id,
				To:     creditors[j].id,
				Amount: toAmount(settle),
			})
		}

		debtors[i].remaining -= settle
		creditors[j].remaining -= settle
		if debtors[i].remaining <= epsilon {
			i++
		}
		if creditors[j].remaining <= epsilon {
			j++
		}
	}

	return transactions
}

// orderedIDs walks memberIDs first, then any balance keys outside the member
// list in sorted order, so iteration is reproducible for identical input.
func orderedIDs(balances map[string]float64, memberIDs []string) []string {
	ids := make([]string, 0, len(balances))
	seen := make(map[string]bool, len(memberIDs))
	for _, id := range memberIDs {
		if _, ok := balances[id]; ok && !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}

	var extras []string
	for id := range balances {
		if !seen[id] {
			extras = append(extras, id)
		}
	}
	sort.Strings(extras)
	return append(ids, extras...)
}
