package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tallyapp/tally/internal/middleware"
	"github.com/tallyapp/tally/internal/service"
	"github.com/tallyapp/tally/internal/storage"
)

// GroupHandler serves group creation and membership.
type GroupHandler struct {
	groups *service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groups *service.GroupService) *GroupHandler {
	return &GroupHandler{groups: groups}
}

type createGroupRequest struct {
	Name         string   `json:"name"`
	HomeCurrency string   `json:"home_currency"`
	MemberIDs    []string `json:"member_ids"`
}

type addMembersRequest struct {
	MemberIDs []string `json:"member_ids"`
}

// Create handles POST /api/groups.
func (h *GroupHandler) Create(c echo.Context) error {
	var req createGroupRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}

	group, err := h.groups.CreateGroup(c.Request().Context(),
		req.Name, req.HomeCurrency, middleware.MemberID(c), req.MemberIDs)
	switch {
	case errors.Is(err, service.ErrEmptyGroupName):
		return NewValidationError(c, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		return NewValidationError(c, err.Error())
	case err != nil:
		return NewInternalError(c, "failed to create group")
	}

	return c.JSON(http.StatusCreated, group)
}

// Get handles GET /api/groups/:id.
func (h *GroupHandler) Get(c echo.Context) error {
	group, err := h.groups.GetGroup(c.Request().Context(), c.Param("id"))
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to load group")
	}
	return c.JSON(http.StatusOK, group)
}

// AddMembers handles POST /api/groups/:id/members.
func (h *GroupHandler) AddMembers(c echo.Context) error {
	var req addMembersRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "invalid request body")
	}
	if len(req.MemberIDs) == 0 {
		return NewValidationError(c, "member_ids must not be empty")
	}

	group, err := h.groups.AddMembers(c.Request().Context(), c.Param("id"), req.MemberIDs)
	if errors.Is(err, storage.ErrNotFound) {
		return NewNotFoundError(c, err.Error())
	}
	if err != nil {
		return NewInternalError(c, "failed to add members")
	}
	return c.JSON(http.StatusOK, group)
}
