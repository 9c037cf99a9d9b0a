package calculator

import (
	"math"
	"testing"
)

var trioIDs = []string{"alice", "bob", "carol"}

func equalThreeWay(payer string, amount float64) ExpenseForBalance {
	per := amount / 3
	return ExpenseForBalance{
		PayerID: payer,
		Amount:  amount,
		Splits: []Split{
			{MemberID: "alice", Amount: per},
			{MemberID: "bob", Amount: per},
			{MemberID: "carol", Amount: per},
		},
	}
}

func TestCalculateBalancesEqualSplit(t *testing.T) {
	// Alice pays $30 split equally three ways.
	expenses := []ExpenseForBalance{equalThreeWay("alice", 30.00)}

	balances := CalculateBalancesWithSettlements(expenses, nil, trioIDs, "USD")

	want := map[string]float64{"alice": 20.00, "bob": -10.00, "carol": -10.00}
	for id, w := range want {
		if balances[id] != w {
			t.Errorf("balance[%s] = %.2f, want %.2f", id, balances[id], w)
		}
	}
}

func TestCalculateBalancesWithSettlement(t *testing.T) {
	// Same expense, then Bob pays Alice back $10.
	expenses := []ExpenseForBalance{equalThreeWay("alice", 30.00)}
	settlements := []SettlementForBalance{
		{FromMemberID: "bob", ToMemberID: "alice", Amount: 10.00},
	}

	balances := CalculateBalancesWithSettlements(expenses, settlements, trioIDs, "USD")

	want := map[string]float64{"alice": 10.00, "bob": 0.00, "carol": -10.00}
	for id, w := range want {
		if balances[id] != w {
			t.Errorf("balance[%s] = %.2f, want %.2f", id, balances[id], w)
		}
	}
}

func TestCalculateBalancesForeignCurrency(t *testing.T) {
	// €20 at 1.10 normalizes to $22 before aggregation.
	expenses := []ExpenseForBalance{
		{
			PayerID:            "alice",
			Amount:             20.00,
			Currency:           "EUR",
			ExchangeRateToHome: 1.10,
			Splits: []Split{
				{MemberID: "alice", Amount: 10.00},
				{MemberID: "bob", Amount: 10.00},
			},
		},
	}

	balances := CalculateBalancesWithSettlements(expenses, nil, trioIDs, "USD")

	if balances["alice"] != 11.00 {
		t.Errorf("alice = %.2f, want 11.00", balances["alice"])
	}
	if balances["bob"] != -11.00 {
		t.Errorf("bob = %.2f, want -11.00", balances["bob"])
	}
	if balances["carol"] != 0 {
		t.Errorf("carol = %.2f, want 0", balances["carol"])
	}
}

func TestCalculateBalancesSkipsUnknownMembers(t *testing.T) {
	expenses := []ExpenseForBalance{
		{
			PayerID: "mallory", // not in the member list
			Amount:  10.00,
			Splits: []Split{
				{MemberID: "alice", Amount: 5.00},
				{MemberID: "eve", Amount: 5.00}, // also unknown
			},
		},
	}
	settlements := []SettlementForBalance{
		{FromMemberID: "trent", ToMemberID: "alice", Amount: 3.00},
	}

	balances := CalculateBalancesWithSettlements(expenses, settlements, trioIDs, "USD")

	if _, ok := balances["mallory"]; ok {
		t.Error("unknown payer should not appear in balances")
	}
	if balances["alice"] != -5.00-3.00 {
		t.Errorf("alice = %.2f, want -8.00", balances["alice"])
	}
}

// Balances must sum to zero whenever every expense's splits cover its total,
// regardless of settlements or currency mix.
func TestBalancesZeroSum(t *testing.T) {
	members := []string{"a", "b", "c", "d"}
	expenses := []ExpenseForBalance{
		{
			PayerID: "a",
			Amount:  100.01,
			Splits: []Split{
				{MemberID: "a", Amount: 25.00},
				{MemberID: "b", Amount: 25.00},
				{MemberID: "c", Amount: 25.00},
				{MemberID: "d", Amount: 25.01},
			},
		},
		{
			PayerID:            "b",
			Amount:             33.33,
			Currency:           "EUR",
			ExchangeRateToHome: 1.0847,
			Splits: []Split{
				{MemberID: "b", Amount: 11.11},
				{MemberID: "c", Amount: 11.11},
				{MemberID: "d", Amount: 11.11},
			},
		},
		{
			PayerID:            "d",
			Amount:             7.77,
			Currency:           "JPY",
			ExchangeRateToHome: 0.0067,
			Splits: []Split{
				{MemberID: "a", Amount: 3.89},
				{MemberID: "b", Amount: 3.88},
			},
		},
	}
	settlements := []SettlementForBalance{
		{FromMemberID: "c", ToMemberID: "a", Amount: 12.50},
		{FromMemberID: "d", ToMemberID: "b", Amount: 0.01},
	}

	balances := CalculateBalancesWithSettlements(expenses, settlements, members, "USD")

	var sum float64
	for _, b := range balances {
		sum += b
	}
	if math.Abs(sum) > 0.01 {
		t.Errorf("balances sum to %.4f, want 0 within epsilon", sum)
	}
}

func TestBalancesRescaleSplitsOntoNormalizedTotal(t *testing.T) {
	// 3-way split of €10 at 1.13: normalized $11.30 must be fully apportioned.
	expenses := []ExpenseForBalance{
		{
			PayerID:            "alice",
			Amount:             10.00,
			Currency:           "EUR",
			ExchangeRateToHome: 1.13,
			Splits: []Split{
				{MemberID: "alice", Amount: 3.34},
				{MemberID: "bob", Amount: 3.33},
				{MemberID: "carol", Amount: 3.33},
			},
		},
	}

	balances := CalculateBalancesWithSettlements(expenses, nil, trioIDs, "USD")

	var sum float64
	for _, b := range balances {
		sum += b
	}
	if math.Abs(sum) > 0.001 {
		t.Errorf("balances sum to %.4f, want exactly 0 after rescaling", sum)
	}
	if balances["alice"] <= 0 {
		t.Errorf("payer balance = %.2f, want positive", balances["alice"])
	}
}
