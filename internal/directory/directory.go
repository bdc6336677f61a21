// Package directory derives filtered read-only views over the
// record store: approved companies, a company's stations, a client's
// or company's reservations, and route search. Every call re-scans
// the full collection; there is no cache at this layer.
package directory

import (
	"context"
	"strings"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// Service answers directory queries from whole-collection reads.
type Service struct {
	store store.Store
}

// New returns a directory service over the given store.
func New(s store.Store) *Service {
	if s == nil {
		panic("nil store passed to directory.New")
	}
	return &Service{store: s}
}

// ApprovedCompanies lists every company account an admin has
// approved, in insertion order. Pending and rejected companies never
// appear here.
func (s *Service) ApprovedCompanies(ctx context.Context) ([]model.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.User, 0)
	for _, u := range users {
		if u.IsApprovedCompany() {
			out = append(out, u)
		}
	}
	return out, nil
}

// CompanyByID returns the approved company with the given id, or
// nil when it does not exist or is not approved.
func (s *Service) CompanyByID(ctx context.Context, id string) (*model.User, error) {
	companies, err := s.ApprovedCompanies(ctx)
	if err != nil {
		return nil, err
	}
	for i := range companies {
		if companies[i].ID == id {
			return &companies[i], nil
		}
	}
	return nil, nil
}

// UserByID returns the user with the given id regardless of role or
// status, or nil when absent.
func (s *Service) UserByID(ctx context.Context, id string) (*model.User, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

// StationsOf lists the stations owned by one company.
func (s *Service) StationsOf(ctx context.Context, companyID string) ([]model.Station, error) {
	stations, err := s.store.Stations().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Station, 0)
	for _, st := range stations {
		if st.CompanyID == companyID {
			out = append(out, st)
		}
	}
	return out, nil
}

// StationByID returns the station with the given id, or nil when
// absent. Callers editing a station treat nil as "create new" rather
// than an error.
func (s *Service) StationByID(ctx context.Context, id string) (*model.Station, error) {
	stations, err := s.store.Stations().List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stations {
		if stations[i].ID == id {
			return &stations[i], nil
		}
	}
	return nil, nil
}

// VisibleStationByID returns the station with the given id when its
// owning company is approved, and nil otherwise. Public detail pages
// use this so stations of pending or rejected companies stay as
// hidden from direct id lookups as they are from search results.
func (s *Service) VisibleStationByID(ctx context.Context, id string) (*model.Station, error) {
	st, err := s.StationByID(ctx, id)
	if err != nil || st == nil {
		return st, err
	}
	owner, err := s.CompanyByID(ctx, st.CompanyID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}
	return st, nil
}

// ReservationsOfClient lists the reservations one client has made.
func (s *Service) ReservationsOfClient(ctx context.Context, clientID string) ([]model.Reservation, error) {
	return s.reservations(ctx, func(r *model.Reservation) bool { return r.ClientID == clientID })
}

// ReservationsOfCompany lists the passenger manifest of one company:
// every reservation booked against its stations.
func (s *Service) ReservationsOfCompany(ctx context.Context, companyID string) ([]model.Reservation, error) {
	return s.reservations(ctx, func(r *model.Reservation) bool { return r.CompanyID == companyID })
}

func (s *Service) reservations(ctx context.Context, keep func(*model.Reservation) bool) ([]model.Reservation, error) {
	all, err := s.store.Reservations().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Reservation, 0)
	for i := range all {
		if keep(&all[i]) {
			out = append(out, all[i])
		}
	}
	return out, nil
}

// SearchRoutes returns the stations whose origin matches the
// departure filter and whose destination matches the arrival filter,
// case-insensitive substring both. An empty filter matches
// everything. Stations owned by companies that are not approved are
// excluded from the results.
func (s *Service) SearchRoutes(ctx context.Context, departure, arrival string) ([]model.Station, error) {
	stations, err := s.store.Stations().List(ctx)
	if err != nil {
		return nil, err
	}
	approved, err := s.ApprovedCompanies(ctx)
	if err != nil {
		return nil, err
	}
	visible := make(map[string]bool, len(approved))
	for _, c := range approved {
		visible[c.ID] = true
	}

	departure = strings.ToLower(strings.TrimSpace(departure))
	arrival = strings.ToLower(strings.TrimSpace(arrival))
	out := make([]model.Station, 0)
	for _, st := range stations {
		if !visible[st.CompanyID] {
			continue
		}
		if departure != "" && !strings.Contains(strings.ToLower(st.PointA), departure) {
			continue
		}
		if arrival != "" && !strings.Contains(strings.ToLower(st.PointB), arrival) {
			continue
		}
		out = append(out, st)
	}
	return out, nil
}
