package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/directory"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
)

func TestGetStationHidesUnapprovedCompany(t *testing.T) {
	st := newStubStore()
	st.users.records = []model.User{
		{ID: "co1", Email: "a@example.com", Role: model.RoleCompany, CompanyName: "Trans Nord", Status: model.StatusApproved},
		{ID: "co2", Email: "b@example.com", Role: model.RoleCompany, CompanyName: "Sud Lignes", Status: model.StatusPending},
	}
	st.stations.records = []model.Station{
		{ID: "st1", CompanyID: "co1", PointA: "Cotonou", PointB: "Parakou"},
		{ID: "st9", CompanyID: "co2", PointA: "Cotonou", PointB: "Natitingou"},
	}
	h := NewPublicHandler(directory.New(st))

	get := func(id string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/v1/stations/"+id, nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(id)
		if err := h.GetStation(c); err != nil {
			t.Fatalf("GetStation(%s): %v", id, err)
		}
		return rec
	}

	if rec := get("st1"); rec.Code != http.StatusOK {
		t.Errorf("approved company's station: status = %d, want 200", rec.Code)
	}
	if rec := get("st9"); rec.Code != http.StatusNotFound {
		t.Errorf("pending company's station: status = %d, want 404", rec.Code)
	}
}
