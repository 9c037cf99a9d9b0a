package service

import (
	"context"
	"log/slog"
	"math"

	"github.com/tallyapp/tally/internal/calculator"
	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/storage"
)

// GroupLedger is the derived view of a group: every member's net balance and
// the suggested payments that would settle the group. Recomputed from scratch
// on every call; nothing here is persisted.
type GroupLedger struct {
	GroupID              string                            `json:"group_id"`
	HomeCurrency         string                            `json:"home_currency"`
	Balances             []models.MemberBalance            `json:"balances"`
	SuggestedSettlements []calculator.SuggestedTransaction `json:"suggested_settlements"`
}

// LedgerService computes group balances and settlement suggestions.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// GroupBalances loads a group's expenses, settlements, and members, and runs
// the reconciliation pipeline over them.
func (s *LedgerService) GroupBalances(ctx context.Context, groupID string) (*GroupLedger, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	members, err := s.store.ListGroupMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]string, len(members))
	names := make(map[string]string, len(members))
	for i, m := range members {
		memberIDs[i] = m.ID
		names[m.ID] = m.Name
	}

	expensesForBalance := make([]calculator.ExpenseForBalance, len(expenses))
	for i, e := range expenses {
		splits := make([]calculator.Split, len(e.Splits))
		for j, sp := range e.Splits {
			splits[j] = calculator.Split{MemberID: sp.MemberID, Amount: sp.Amount}
		}
		expensesForBalance[i] = calculator.ExpenseForBalance{
			PayerID:            e.PayerID,
			Amount:             e.Amount,
			Currency:           e.Currency,
			ExchangeRateToHome: e.ExchangeRateToHome,
			Splits:             splits,
		}
	}

	settlementsForBalance := make([]calculator.SettlementForBalance, len(settlements))
	for i, st := range settlements {
		settlementsForBalance[i] = calculator.SettlementForBalance{
			FromMemberID: st.FromMemberID,
			ToMemberID:   st.ToMemberID,
			Amount:       st.Amount,
		}
	}

	balances := calculator.CalculateBalancesWithSettlements(
		expensesForBalance, settlementsForBalance, memberIDs, group.HomeCurrency)
	suggestions := calculator.SimplifyDebts(balances, memberIDs)

	// A residual after applying every suggestion means the stored data broke
	// the split-sum invariant somewhere upstream. Surface it in the logs; the
	// balances themselves are still worth showing.
	if residual := residualAfter(balances, suggestions); residual > 0.01 {
		slog.Warn("group balances do not settle to zero",
			"group_id", groupID,
			"residual", residual,
		)
	}

	ledger := &GroupLedger{
		GroupID:              groupID,
		HomeCurrency:         group.HomeCurrency,
		SuggestedSettlements: suggestions,
	}
	for _, id := range memberIDs {
		ledger.Balances = append(ledger.Balances, models.MemberBalance{
			MemberID:   id,
			Name:       names[id],
			NetBalance: balances[id],
		})
	}
	return ledger, nil
}

// residualAfter applies the suggested transactions to a copy of the balances
// and returns the largest absolute balance left over.
func residualAfter(balances map[string]float64, txns []calculator.SuggestedTransaction) float64 {
	remaining := make(map[string]float64, len(balances))
	for id, b := range balances {
		remaining[id] = b
	}
	for _, t := range txns {
		remaining[t.From] += t.Amount
		remaining[t.To] -= t.Amount
	}

	var worst float64
	for _, b := range remaining {
		if abs := math.Abs(b); abs > worst {
			worst = abs
		}
	}
	return worst
}
