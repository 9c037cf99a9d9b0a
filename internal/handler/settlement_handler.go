package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage"
)

// SettlementHandler serves settlement recording and listing.
type SettlementHandler struct {
	settlements *service.SettlementService
}

// NewSettlementHandler creates a new SettlementHandler.
func NewSettlementHandler(settlements *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements}
}

type recordSettlementRequest struct {
	FromMemberID string  `json:"from_member_id"`
	ToMemberID   string  `json:"to_member_id"`
	Amount       float64 `json:"amount"`
	Note         string  `json:"note"`
	SettledAt    int64   `json:"settled_at"`
}

// Create handles POST /api/groups/:id/settlements.
func (h *SettlementHandler) Create(c echo.Context) error {
	var req recordSettlementRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}

	settlement, err := h.settlements.RecordSettlement(c.Request().Context(), service.RecordSettlementInput{
		GroupID:      c.Param("id"),
		FromMemberID: req.FromMemberID,
		ToMemberID:   req.ToMemberID,
		Amount:       req.Amount,
		Note:         req.Note,
		SettledAt:    req.SettledAt,
		CreatedBy:    middleware.MemberID(c),
	})
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return NewNotFoundError(c, err.Error())
	case errors.Is(err, service.ErrInvalidAmount),
		errors.Is(err, service.ErrSameMember),
		errors.Is(err, service.ErrNotGroupMember):
		return NewValidationError(c, err.Error())
	case err != nil:
		return NewInternalError(c, "failed to record settlement")
	}

	return c.JSON(http.StatusCreated, settlement)
}

// List handles GET /api/groups/:id/settlements.
func (h *SettlementHandler) List(c echo.Context) error {
	settlements, err := h.settlements.ListSettlements(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to list settlements")
	}
	return c.JSON(http.StatusOK, settlements)
}
