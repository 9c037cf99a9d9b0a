package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage"
)

// BalanceHandler serves the derived group ledger: net balances plus suggested
// settle-up payments.
type BalanceHandler struct {
	ledger *service.LedgerService
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(ledger *service.LedgerService) *BalanceHandler {
	return &BalanceHandler{ledger: ledger}
}

// Get handles GET /api/groups/:id/balances.
func (h *BalanceHandler) Get(c echo.Context) error {
	ledger, err := h.ledger.GroupBalances(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "could not compute balances")
	}
	return c.JSON(http.StatusOK, ledger)
}
