package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/directory"
)

// PublicHandler serves the unauthenticated directory endpoints:
// approved companies, their stations and route search. Guests browse
// these before signing up.
type PublicHandler struct {
	Directory *directory.Service
}

func NewPublicHandler(d *directory.Service) *PublicHandler {
	if d == nil {
		panic("nil directory passed to NewPublicHandler")
	}
	return &PublicHandler{Directory: d}
}

// ListCompanies returns every approved company. Pending and rejected
// registrations are never exposed here.
func (h *PublicHandler) ListCompanies(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	companies, err := h.Directory.ApprovedCompanies(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, companies)
}

// CompanyStations returns the stations of one approved company.
func (h *PublicHandler) CompanyStations(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	company, err := h.Directory.CompanyByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if company == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
	}
	stations, err := h.Directory.StationsOf(ctx, company.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, stations)
}

// GetStation returns one station by id for booking forms and detail
// pages. Stations of non-approved companies read as not found, the
// same as in search results.
func (h *PublicHandler) GetStation(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	station, err := h.Directory.VisibleStationByID(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if station == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "station not found"})
	}
	return c.JSON(http.StatusOK, station)
}

// SearchRoutes filters stations by departure and arrival substrings
// (query parameters `departure` and `arrival`, both optional).
// Stations of non-approved companies never appear in the results.
func (h *PublicHandler) SearchRoutes(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	stations, err := h.Directory.SearchRoutes(ctx,
		c.QueryParam("departure"), c.QueryParam("arrival"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, stations)
}
