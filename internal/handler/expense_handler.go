package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/calculator"
	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage"
)

// ExpenseHandler serves expense creation, listing and deletion.
type ExpenseHandler struct {
	expenses *service.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenses: expenses}
}

type createExpenseRequest struct {
	PayerID            string    `json:"payer_id"`
	Description        string    `json:"description"`
	Amount             float64   `json:"amount"`
	Currency           string    `json:"currency"`
	ExchangeRateToHome float64   `json:"exchange_rate_to_home"`
	SplitMethod        string    `json:"split_method"`
	ParticipantIDs     []string  `json:"participant_ids"`
	ExactAmounts       []float64 `json:"exact_amounts"`
	Percentages        []float64 `json:"percentages"`
	ShareCounts        []int64   `json:"share_counts"`
}

// Create handles POST /api/groups/:id/expenses.
func (h *ExpenseHandler) Create(c echo.Context) error {
	var req createExpenseRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}

	expense, err := h.expenses.CreateExpense(c.Request().Context(), service.CreateExpenseInput{
		GroupID:            c.Param("id"),
		PayerID:            req.PayerID,
		Description:        req.Description,
		Amount:             req.Amount,
		Currency:           req.Currency,
		ExchangeRateToHome: req.ExchangeRateToHome,
		SplitMethod:        calculator.SplitMethod(req.SplitMethod),
		ParticipantIDs:     req.ParticipantIDs,
		SplitData: calculator.SplitData{
			ExactAmounts: req.ExactAmounts,
			Percentages:  req.Percentages,
			ShareCounts:  req.ShareCounts,
		},
		CreatedBy: middleware.MemberID(c),
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NewNotFoundError(c, err.Error())
	case errors.Is(err, calculator.ErrMismatchedSplitTotal),
		errors.Is(err, calculator.ErrInvalidPercentTotal),
		errors.Is(err, calculator.ErrNoSharesAssigned),
		errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrEmptyParticipants),
		errors.Is(err, service.ErrMissingRate),
		errors.Is(err, service.ErrNotGroupMember):
		return NewValidationError(c, err.Error())
	case err != nil:
		return NewValidationError(c, err.Error())
	}

	return c.JSON(http.StatusCreated, expense)
}

// List handles GET /api/groups/:id/expenses.
func (h *ExpenseHandler) List(c echo.Context) error {
	expenses, err := h.expenses.ListExpenses(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to list expenses")
	}
	return c.JSON(http.StatusOK, expenses)
}

// Delete handles DELETE /api/expenses/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
	err := h.expenses.DeleteExpense(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to delete expense")
	}
	return c.NoContent(http.StatusNoContent)
}
