package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/authoring"
	"github.com/ayivi/bus-ticket-reservation/internal/directory"
)

// CompanyHandler serves the company dashboard endpoints: publishing
// and maintaining stations and reading the passenger manifest.
type CompanyHandler struct {
	Authoring *authoring.Service
	Directory *directory.Service
}

func NewCompanyHandler(a *authoring.Service, d *directory.Service) *CompanyHandler {
	if a == nil || d == nil {
		panic("nil dependency passed to NewCompanyHandler")
	}
	return &CompanyHandler{Authoring: a, Directory: d}
}

// MyStations lists the caller's own stations.
func (h *CompanyHandler) MyStations(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	stations, err := h.Directory.StationsOf(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, stations)
}

// SaveStation handles POST /v1/company/stations for both create and
// edit: a body with an id edits that station, a body without one
// creates a new station. The company identity stamped onto the
// record comes from the session's fresh user record, never from the
// request body.
func (h *CompanyHandler) SaveStation(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var in authoring.Input
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	u, err := h.Directory.UserByID(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if u == nil || !u.IsApprovedCompany() {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "company not approved"})
	}
	companyName := u.CompanyName
	if companyName == "" {
		companyName = "Agence"
	}

	created := in.ID == ""
	station, err := h.Authoring.SaveStation(ctx, u.ID, companyName, in)
	if err != nil {
		return jsonError(c, err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, station)
}

// DeleteStation removes one of the caller's stations. Unknown ids
// are a silent no-op, matching the store contract.
func (h *CompanyHandler) DeleteStation(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Authoring.DeleteStation(ctx, sess.UserID, c.Param("id")); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Manifest lists every reservation booked against the caller's
// stations, newest data as stored; this is the passenger manifest
// companies print before departure.
func (h *CompanyHandler) Manifest(c echo.Context) error {
	sess, err := SessionFrom(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx, cancel := reqContext(c)
	defer cancel()

	reservations, err := h.Directory.ReservationsOfCompany(ctx, sess.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, reservations)
}
