package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tallyapp/tally/internal/calculator"
	"github.com/tallyapp/tally/internal/models"
	"github.com/tallyapp/tally/internal/storage"
)

var (
	ErrNotGroupMember    = errors.New("member does not belong to the group")
	ErrMissingRate       = errors.New("foreign-currency expense requires an exchange rate")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrSameMember        = errors.New("payer and receiver must differ")
	ErrEmptyParticipants = errors.New("expense needs at least one participant")
)

// CreateExpenseInput is everything needed to record one expense.
// The exchange rate, if any, is supplied by the caller at write time;
// the service never fetches rates.
type CreateExpenseInput struct {
	GroupID            string
	PayerID            string
	Description        string
	Amount             float64
	Currency           string
	ExchangeRateToHome float64
	SplitMethod        calculator.SplitMethod
	ParticipantIDs     []string
	SplitData          calculator.SplitData
	CreatedBy          string
}

// ExpenseService validates and records group expenses. Split validation
// happens here, before anything is written: an invalid split blocks
// persistence.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpense calculates the splits for the input and persists the expense
// when everything checks out.
func (s *ExpenseService) CreateExpense(ctx context.Context, input CreateExpenseInput) (*models.Expense, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if len(input.ParticipantIDs) == 0 {
		return nil, ErrEmptyParticipants
	}

	group, err := s.store.GetGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	membership := make(map[string]bool, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		membership[id] = true
	}
	if !membership[input.PayerID] {
		return nil, fmt.Errorf("payer %s: %w", input.PayerID, ErrNotGroupMember)
	}
	for _, id := range input.ParticipantIDs {
		if !membership[id] {
			return nil, fmt.Errorf("participant %s: %w", id, ErrNotGroupMember)
		}
	}

	// The rate is captured once, here. A foreign-currency expense without one
	// would silently aggregate 1:1 later, so reject it up front.
	foreign := input.Currency != "" && input.Currency != group.HomeCurrency
	if foreign && input.ExchangeRateToHome <= 0 {
		return nil, ErrMissingRate
	}
	if !foreign {
		input.Currency = ""
		input.ExchangeRateToHome = 0
	}

	splits, err := calculator.CalculateSplits(input.Amount, input.SplitMethod, input.ParticipantIDs, input.SplitData)
	if err != nil {
		return nil, err
	}

	expense := &models.Expense{
		GroupID:            input.GroupID,
		PayerID:            input.PayerID,
		Description:        input.Description,
		Amount:             input.Amount,
		Currency:           input.Currency,
		ExchangeRateToHome: input.ExchangeRateToHome,
		SplitMethod:        string(input.SplitMethod),
		CreatedBy:          input.CreatedBy,
	}
	for _, sp := range splits {
		expense.Splits = append(expense.Splits, models.Split{MemberID: sp.MemberID, Amount: sp.Amount})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Debug("expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount,
		"method", expense.SplitMethod,
		"participants", len(expense.Splits),
	)
	return expense, nil
}

// ListExpenses returns a group's expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, groupID string) ([]*models.Expense, error) {
	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// DeleteExpense removes an expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, expenseID string) error {
	return s.store.DeleteExpense(ctx, expenseID)
}
