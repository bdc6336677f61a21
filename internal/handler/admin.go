package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/directory"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// AdminHandler serves the registration review endpoints. Only ADMIN
// callers reach these; the role middleware enforces that.
type AdminHandler struct {
	Directory *directory.Service
	Store     store.Store
}

func NewAdminHandler(d *directory.Service, s store.Store) *AdminHandler {
	if d == nil || s == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{Directory: d, Store: s}
}

// ListCompanies returns company accounts, optionally filtered by the
// `status` query parameter (PENDING, APPROVED, REJECTED). Admins use
// the PENDING filter as their validation inbox.
func (h *AdminHandler) ListCompanies(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	users, err := h.Store.Users().List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	filter := strings.ToUpper(strings.TrimSpace(c.QueryParam("status")))
	out := make([]model.User, 0)
	for _, u := range users {
		if u.Role != model.RoleCompany {
			continue
		}
		if filter != "" && u.Status != filter {
			continue
		}
		out = append(out, u)
	}
	return c.JSON(http.StatusOK, out)
}

type statusReq struct {
	Status string `json:"status"`
}

// SetCompanyStatus transitions a company registration to APPROVED or
// REJECTED. The record keeps its position in the users collection;
// only the status field changes.
func (h *AdminHandler) SetCompanyStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status != model.StatusApproved && status != model.StatusRejected && status != model.StatusPending {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be PENDING, APPROVED or REJECTED"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Directory.UserByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u == nil || u.Role != model.RoleCompany {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
	}
	u.Status = status
	if err := h.Store.Users().Upsert(ctx, u); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}
