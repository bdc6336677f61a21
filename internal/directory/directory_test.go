package directory

import (
	"context"
	"testing"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	users        []model.User
	stations     []model.Station
	reservations []model.Reservation
}

func (s *stubStore) Users() store.UserStore               { return (*stubUsers)(s) }
func (s *stubStore) Stations() store.StationStore         { return (*stubStations)(s) }
func (s *stubStore) Reservations() store.ReservationStore { return (*stubReservations)(s) }

type stubUsers stubStore

func (s *stubUsers) List(context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.users...), nil
}
func (s *stubUsers) Upsert(_ context.Context, u *model.User) error {
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = *u
			return nil
		}
	}
	s.users = append(s.users, *u)
	return nil
}

type stubStations stubStore

func (s *stubStations) List(context.Context) ([]model.Station, error) {
	return append([]model.Station(nil), s.stations...), nil
}
func (s *stubStations) Upsert(_ context.Context, st *model.Station) error {
	for i := range s.stations {
		if s.stations[i].ID == st.ID {
			s.stations[i] = *st
			return nil
		}
	}
	s.stations = append(s.stations, *st)
	return nil
}
func (s *stubStations) Delete(_ context.Context, id string) error {
	for i := range s.stations {
		if s.stations[i].ID == id {
			s.stations = append(s.stations[:i], s.stations[i+1:]...)
			break
		}
	}
	return nil
}

type stubReservations stubStore

func (s *stubReservations) List(context.Context) ([]model.Reservation, error) {
	return append([]model.Reservation(nil), s.reservations...), nil
}
func (s *stubReservations) Append(_ context.Context, r *model.Reservation) error {
	s.reservations = append(s.reservations, *r)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func seeded() *stubStore {
	return &stubStore{
		users: []model.User{
			{ID: "cl1", Email: "a@ex.com", Role: model.RoleClient, Name: "Awa"},
			{ID: "co1", Email: "b@ex.com", Role: model.RoleCompany, CompanyName: "Trans Nord", Status: model.StatusApproved},
			{ID: "co2", Email: "c@ex.com", Role: model.RoleCompany, CompanyName: "Sud Lignes", Status: model.StatusPending},
		},
		stations: []model.Station{
			{ID: "st1", CompanyID: "co1", PointA: "Cotonou", PointB: "Parakou"},
			{ID: "st2", CompanyID: "co1", PointA: "Cotonou", PointB: "Natitingou"},
			{ID: "st3", CompanyID: "co2", PointA: "Cotonou", PointB: "Parakou"},
		},
		reservations: []model.Reservation{
			{ID: "r1", StationID: "st1", CompanyID: "co1", ClientID: "cl1"},
			{ID: "r2", StationID: "st1", CompanyID: "co1", ClientID: "cl9"},
		},
	}
}

func TestApprovedCompaniesExcludesPending(t *testing.T) {
	s := seeded()
	svc := New(s)

	companies, err := svc.ApprovedCompanies(context.Background())
	if err != nil {
		t.Fatalf("ApprovedCompanies: %v", err)
	}
	if len(companies) != 1 || companies[0].ID != "co1" {
		t.Fatalf("ApprovedCompanies = %v, want only co1", companies)
	}

	// Approve co2 and it must appear.
	co2 := s.users[2]
	co2.Status = model.StatusApproved
	if err := s.Users().Upsert(context.Background(), &co2); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	companies, err = svc.ApprovedCompanies(context.Background())
	if err != nil {
		t.Fatalf("ApprovedCompanies: %v", err)
	}
	if len(companies) != 2 {
		t.Fatalf("after approval want 2 companies, got %d", len(companies))
	}
}

func TestSearchRoutesFilters(t *testing.T) {
	svc := New(seeded())
	ctx := context.Background()

	// Case-insensitive substring on both ends.
	got, err := svc.SearchRoutes(ctx, "coto", "PARA")
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(got) != 1 || got[0].ID != "st1" {
		t.Fatalf("SearchRoutes(coto, PARA) = %v, want st1 only", got)
	}

	// Empty filters match everything visible.
	got, err = svc.SearchRoutes(ctx, "", "")
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unfiltered search returned %d stations, want 2", len(got))
	}

	// st3 belongs to a pending company and must never show up.
	for _, st := range got {
		if st.ID == "st3" {
			t.Fatal("station of pending company leaked into search results")
		}
	}

	// No match.
	got, err = svc.SearchRoutes(ctx, "", "Lagos")
	if err != nil {
		t.Fatalf("SearchRoutes: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("SearchRoutes(_, Lagos) = %v, want none", got)
	}
}

func TestStationsOf(t *testing.T) {
	svc := New(seeded())
	got, err := svc.StationsOf(context.Background(), "co1")
	if err != nil {
		t.Fatalf("StationsOf: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("StationsOf(co1) = %d stations, want 2", len(got))
	}
}

func TestReservationsOf(t *testing.T) {
	svc := New(seeded())
	ctx := context.Background()

	mine, err := svc.ReservationsOfClient(ctx, "cl1")
	if err != nil {
		t.Fatalf("ReservationsOfClient: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != "r1" {
		t.Fatalf("ReservationsOfClient(cl1) = %v, want r1", mine)
	}

	manifest, err := svc.ReservationsOfCompany(ctx, "co1")
	if err != nil {
		t.Fatalf("ReservationsOfCompany: %v", err)
	}
	if len(manifest) != 2 {
		t.Fatalf("ReservationsOfCompany(co1) = %d, want 2", len(manifest))
	}
}

func TestStationByIDFallthrough(t *testing.T) {
	svc := New(seeded())
	st, err := svc.StationByID(context.Background(), "missing")
	if err != nil {
		t.Fatalf("StationByID: %v", err)
	}
	if st != nil {
		t.Fatalf("StationByID(missing) = %v, want nil", st)
	}
}

func TestVisibleStationByID(t *testing.T) {
	svc := New(seeded())
	ctx := context.Background()

	st, err := svc.VisibleStationByID(ctx, "st1")
	if err != nil {
		t.Fatalf("VisibleStationByID(st1): %v", err)
	}
	if st == nil || st.ID != "st1" {
		t.Fatalf("approved company's station hidden: %v", st)
	}

	// st3 belongs to the pending company co2.
	st, err = svc.VisibleStationByID(ctx, "st3")
	if err != nil {
		t.Fatalf("VisibleStationByID(st3): %v", err)
	}
	if st != nil {
		t.Fatalf("pending company's station visible: %+v", st)
	}

	st, err = svc.VisibleStationByID(ctx, "missing")
	if err != nil || st != nil {
		t.Fatalf("VisibleStationByID(missing) = %v, %v; want nil, nil", st, err)
	}
}
