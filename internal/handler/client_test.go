package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/ayivi/bus-ticket-reservation/internal/booking"
	"github.com/ayivi/bus-ticket-reservation/internal/directory"
	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/queue"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	users        stubUsers
	stations     stubStations
	reservations stubReservations
}

func newStubStore() *stubStore { return &stubStore{} }

func (s *stubStore) Users() store.UserStore               { return &s.users }
func (s *stubStore) Stations() store.StationStore         { return &s.stations }
func (s *stubStore) Reservations() store.ReservationStore { return &s.reservations }

type stubUsers struct{ records []model.User }

func (s *stubUsers) List(context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.records...), nil
}
func (s *stubUsers) Upsert(_ context.Context, u *model.User) error {
	for i := range s.records {
		if s.records[i].ID == u.ID {
			s.records[i] = *u
			return nil
		}
	}
	s.records = append(s.records, *u)
	return nil
}

type stubStations struct{ records []model.Station }

func (s *stubStations) List(context.Context) ([]model.Station, error) {
	return append([]model.Station(nil), s.records...), nil
}
func (s *stubStations) Upsert(_ context.Context, st *model.Station) error {
	for i := range s.records {
		if s.records[i].ID == st.ID {
			s.records[i] = *st
			return nil
		}
	}
	s.records = append(s.records, *st)
	return nil
}
func (s *stubStations) Delete(_ context.Context, id string) error {
	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubReservations struct{ records []model.Reservation }

func (s *stubReservations) List(context.Context) ([]model.Reservation, error) {
	return append([]model.Reservation(nil), s.records...), nil
}
func (s *stubReservations) Append(_ context.Context, r *model.Reservation) error {
	s.records = append(s.records, *r)
	return nil
}

// ---------------------------------------------------------------------------
// Fixtures
// ---------------------------------------------------------------------------

func seededClientHandler(t *testing.T) (*ClientHandler, *stubStore) {
	t.Helper()
	st := newStubStore()
	st.users.records = []model.User{
		{ID: "cl1", Email: "ama@example.com", Role: model.RoleClient, Name: "Ama", Status: model.StatusApproved},
		{ID: "co1", Email: "atb@example.com", Role: model.RoleCompany, CompanyName: "ATB Transport", Status: model.StatusApproved},
	}
	st.stations.records = []model.Station{{
		ID:             "st1",
		CompanyID:      "co1",
		CompanyName:    "ATB Transport",
		Type:           model.StationTypeRoute,
		Name:           "Cotonou express",
		PointA:         "Cotonou",
		PointB:         "Parakou",
		DepartureHours: []string{"08:00", "14:00"},
		ArrivalHours:   []string{"15:00", "21:00"},
		Price:          5000,
	}}
	h := NewClientHandler(booking.New(st), directory.New(st), st)
	// Tests never talk to a broker.
	h.Publish = func(context.Context, queue.ReservationConfirmedEvent) error { return nil }
	return h, st
}

// clientCtx builds an echo context carrying the claims the auth
// middleware would have set for an authenticated client.
func clientCtx(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
		c.Set("role", model.RoleClient)
	}
	return c, rec
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestBookCreatesReservation(t *testing.T) {
	h, st := seededClientHandler(t)
	var published []queue.ReservationConfirmedEvent
	h.Publish = func(_ context.Context, ev queue.ReservationConfirmedEvent) error {
		published = append(published, ev)
		return nil
	}

	body := `{"station_id":"st1","name":"Ama","email":"ama@example.com","phone":"+22990000000","date":"2025-06-02","time_index":0,"ticket_class":"STANDARD"}`
	c, rec := clientCtx(http.MethodPost, "/v1/reservations", body, "cl1")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res model.Reservation
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.RouteSummary != "Cotonou vers Parakou" {
		t.Errorf("route summary = %q", res.RouteSummary)
	}
	if res.DepartureTime != "08:00" || res.PricePaid != 5000 || res.Status != model.ReservationConfirmed {
		t.Errorf("unexpected ticket: %+v", res)
	}
	if len(st.reservations.records) != 1 {
		t.Errorf("persisted %d reservations, want 1", len(st.reservations.records))
	}
	if len(published) != 1 {
		t.Fatalf("published %d events, want 1", len(published))
	}
	if published[0].ReservationID != res.ID || published[0].CompanyName != "ATB Transport" {
		t.Errorf("unexpected event: %+v", published[0])
	}
}

func TestBookRequiresTimeIndex(t *testing.T) {
	h, st := seededClientHandler(t)

	body := `{"station_id":"st1","name":"Ama","email":"ama@example.com","phone":"+22990000000","date":"2025-06-02"}`
	c, rec := clientCtx(http.MethodPost, "/v1/reservations", body, "cl1")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(st.reservations.records) != 0 {
		t.Errorf("persisted %d reservations, want 0", len(st.reservations.records))
	}
}

func TestBookWithoutSession(t *testing.T) {
	h, _ := seededClientHandler(t)

	c, rec := clientCtx(http.MethodPost, "/v1/reservations", `{"station_id":"st1","time_index":0}`, "")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestBookUnknownStation(t *testing.T) {
	h, _ := seededClientHandler(t)

	body := `{"station_id":"nope","name":"Ama","email":"ama@example.com","phone":"+22990000000","date":"2025-06-02","time_index":0}`
	c, rec := clientCtx(http.MethodPost, "/v1/reservations", body, "cl1")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestGetReservationHidesForeignTickets(t *testing.T) {
	h, st := seededClientHandler(t)
	st.reservations.records = []model.Reservation{
		{ID: "r1", StationID: "st1", ClientID: "cl1", Status: model.ReservationConfirmed},
		{ID: "r2", StationID: "st1", ClientID: "cl2", Status: model.ReservationConfirmed},
	}

	c, rec := clientCtx(http.MethodGet, "/v1/reservations/r1", "", "cl1")
	c.SetParamNames("id")
	c.SetParamValues("r1")
	if err := h.GetReservation(c); err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("own ticket: status = %d", rec.Code)
	}

	c, rec = clientCtx(http.MethodGet, "/v1/reservations/r2", "", "cl1")
	c.SetParamNames("id")
	c.SetParamValues("r2")
	if err := h.GetReservation(c); err != nil {
		t.Fatalf("GetReservation: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("foreign ticket: status = %d, want 404", rec.Code)
	}
}

func TestUpdateProfilePatchesOnlyGivenFields(t *testing.T) {
	h, st := seededClientHandler(t)
	st.users.records[0].Phone = "+22991111111"

	c, rec := clientCtx(http.MethodPut, "/v1/profile", `{"name":"Ama K."}`, "cl1")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	u := st.users.records[0]
	if u.Name != "Ama K." {
		t.Errorf("name = %q, want %q", u.Name, "Ama K.")
	}
	if u.Phone != "+22991111111" {
		t.Errorf("phone was cleared: %q", u.Phone)
	}
	if u.Role != model.RoleClient || u.Email != "ama@example.com" {
		t.Errorf("identity fields changed: %+v", u)
	}
}

func TestUpdateProfileCompanyFields(t *testing.T) {
	h, st := seededClientHandler(t)

	body := `{"name":"Kossi","company_name":"ATB Voyages","banner_url":"https://img.example.com/b.png","ifu":"IFU-42","rccm":"RCCM-7"}`
	c, rec := clientCtx(http.MethodPut, "/v1/profile", body, "co1")
	c.Set("role", model.RoleCompany)
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	u := st.users.records[1]
	if u.CompanyName != "ATB Voyages" || u.BannerURL != "https://img.example.com/b.png" {
		t.Errorf("company fields not applied: %+v", u)
	}
	if u.IFU != "IFU-42" || u.RCCM != "RCCM-7" {
		t.Errorf("registration fields not applied: %+v", u)
	}
	if u.Name != "Kossi" {
		t.Errorf("manager name = %q, want %q", u.Name, "Kossi")
	}
	if u.Status != model.StatusApproved {
		t.Errorf("status changed to %q", u.Status)
	}
}

func TestUpdateProfileIgnoresCompanyFieldsForClients(t *testing.T) {
	h, st := seededClientHandler(t)

	c, rec := clientCtx(http.MethodPut, "/v1/profile", `{"company_name":"Fake SARL","ifu":"IFU-99"}`, "cl1")
	if err := h.UpdateProfile(c); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	u := st.users.records[0]
	if u.CompanyName != "" || u.IFU != "" {
		t.Errorf("company fields applied to a client record: %+v", u)
	}
}
