package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyapp/tally/internal/calculator"
	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/storage/sqlite"
)

type fixture struct {
	store      *sqlite.SQLiteStore
	groups     *GroupService
	expenses   *ExpenseService
	settles    *SettlementService
	ledger     *LedgerService
	group      *models.Group
	alice, bob *models.Member
	carol      *models.Member
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	f := &fixture{
		store:    store,
		groups:   NewGroupService(store),
		expenses: NewExpenseService(store),
		settles:  NewSettlementService(store),
		ledger:   NewLedgerService(store),
	}

	for _, m := range []struct {
		dst  **models.Member
		name string
	}{
		{&f.alice, "Alice"}, {&f.bob, "Bob"}, {&f.carol, "Carol"},
	} {
		member := &models.Member{Name: m.name, Email: m.name + "@example.com", PasswordHash: "x"}
		require.NoError(t, store.CreateMember(ctx, member))
		*m.dst = member
	}

	f.group, err = f.groups.CreateGroup(ctx, "Trip", "USD", f.alice.ID,
		[]string{f.bob.ID, f.carol.ID})
	require.NoError(t, err)
	return f
}

func (f *fixture) balanceOf(t *testing.T, ledger *GroupLedger, memberID string) float64 {
	t.Helper()
	for _, b := range ledger.Balances {
		if b.MemberID == memberID {
			return b.NetBalance
		}
	}
	t.Fatalf("member %s missing from ledger", memberID)
	return 0
}

func TestGroupBalancesEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Alice pays $30, split equally among the three.
	_, err := f.expenses.CreateExpense(ctx, CreateExpenseInput{
		GroupID:        f.group.ID,
		PayerID:        f.alice.ID,
		Description:    "Dinner",
		Amount:         30.00,
		SplitMethod:    calculator.SplitEqual,
		ParticipantIDs: []string{f.alice.ID, f.bob.ID, f.carol.ID},
		CreatedBy:      f.alice.ID,
	})
	require.NoError(t, err)

	ledger, err := f.ledger.GroupBalances(ctx, f.group.ID)
	require.NoError(t, err)

	assert.Equal(t, 20.00, f.balanceOf(t, ledger, f.alice.ID))
	assert.Equal(t, -10.00, f.balanceOf(t, ledger, f.bob.ID))
	assert.Equal(t, -10.00, f.balanceOf(t, ledger, f.carol.ID))
	require.Len(t, ledger.SuggestedSettlements, 2)
	assert.Equal(t, f.alice.ID, ledger.SuggestedSettlements[0].To)
	assert.Equal(t, 10.00, ledger.SuggestedSettlements[0].Amount)

	// Bob settles up; only Carol's debt remains.
	_, err = f.settles.RecordSettlement(ctx, RecordSettlementInput{
		GroupID:      f.group.ID,
		FromMemberID: f.bob.ID,
		ToMemberID:   f.alice.ID,
		Amount:       10.00,
		CreatedBy:    f.bob.ID,
	})
	require.NoError(t, err)

	ledger, err = f.ledger.GroupBalances(ctx, f.group.ID)
	require.NoError(t, err)

	assert.Equal(t, 10.00, f.balanceOf(t, ledger, f.alice.ID))
	assert.Equal(t, 0.00, f.balanceOf(t, ledger, f.bob.ID))
	require.Len(t, ledger.SuggestedSettlements, 1)
	assert.Equal(t, calculator.SuggestedTransaction{
		From: f.carol.ID, To: f.alice.ID, Amount: 10.00,
	}, ledger.SuggestedSettlements[0])
}

func TestGroupBalancesForeignCurrency(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// €20 at 1.10 lands as $22 in a USD group.
	_, err := f.expenses.CreateExpense(ctx, CreateExpenseInput{
		GroupID:            f.group.ID,
		PayerID:            f.alice.ID,
		Description:        "Museum",
		Amount:             20.00,
		Currency:           "EUR",
		ExchangeRateToHome: 1.10,
		SplitMethod:        calculator.SplitExact,
		ParticipantIDs:     []string{f.alice.ID, f.bob.ID},
		SplitData:          calculator.SplitData{ExactAmounts: []float64{10.00, 10.00}},
		CreatedBy:          f.alice.ID,
	})
	require.NoError(t, err)

	ledger, err := f.ledger.GroupBalances(ctx, f.group.ID)
	require.NoError(t, err)

	assert.Equal(t, 11.00, f.balanceOf(t, ledger, f.alice.ID))
	assert.Equal(t, -11.00, f.balanceOf(t, ledger, f.bob.ID))
	assert.Equal(t, 0.00, f.balanceOf(t, ledger, f.carol.ID))
}

func TestGroupBalancesEmptyGroup(t *testing.T) {
	f := newFixture(t)

	ledger, err := f.ledger.GroupBalances(context.Background(), f.group.ID)
	require.NoError(t, err)

	assert.Len(t, ledger.Balances, 3)
	assert.Empty(t, ledger.SuggestedSettlements)
	for _, b := range ledger.Balances {
		assert.Zero(t, b.NetBalance)
	}
}
