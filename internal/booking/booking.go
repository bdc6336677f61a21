// Package booking implements the reservation workflow: validate the
// requested date against the station's recurring schedule, capture
// the chosen departure slot, resolve the fare for the ticket class
// and append an immutable reservation snapshot to the store.
//
// There is deliberately no capacity model and no double-booking
// prevention: any number of travelers may book the same station,
// date and slot.
package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
	"github.com/ayivi/bus-ticket-reservation/internal/utils"
)

// ScheduleError rejects a date whose weekday is outside the
// station's working days. It is a corrected-and-retry outcome, not a
// fault: callers clear the date field and prompt again. The message
// names the rejected weekday and lists the valid ones.
type ScheduleError struct {
	Weekday  string
	WorkDays []string
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("trajet indisponible le %s, jours disponibles : %s",
		e.Weekday, strings.Join(e.WorkDays, ", "))
}

// Request carries the booking form input plus the authenticated
// client's identity. Name, Email and Phone are the passenger
// contact details copied onto the ticket as entered.
type Request struct {
	StationID   string
	ClientID    string
	Name        string
	Email       string
	Phone       string
	Date        string // travel date, YYYY-MM-DD
	TimeIndex   int    // index into the station's DepartureHours
	TicketClass string // STANDARD or PREMIUM
}

// Service runs booking attempts against the record store.
type Service struct {
	store store.Store
}

// New returns a booking service over the given store.
func New(s store.Store) *Service {
	if s == nil {
		panic("nil store passed to booking.New")
	}
	return &Service{store: s}
}

// CheckDate validates a travel date against the station's working
// weekdays. A station with an empty WorkDays set accepts every date.
// The date must be in YYYY-MM-DD form.
func CheckDate(st *model.Station, date string) error {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return store.Invalid("date", "expected YYYY-MM-DD")
	}
	if len(st.WorkDays) == 0 {
		return nil
	}
	day := model.WeekdayName(t)
	for _, d := range st.WorkDays {
		if d == day {
			return nil
		}
	}
	return &ScheduleError{Weekday: day, WorkDays: st.WorkDays}
}

// Book validates the request and, when everything holds, constructs
// and persists the reservation snapshot. Nothing is written when any
// check fails. The returned reservation is ready for immediate
// ticket rendering.
func (s *Service) Book(ctx context.Context, req Request) (*model.Reservation, error) {
	if req.StationID == "" {
		return nil, store.Missing("station_id")
	}
	if req.ClientID == "" {
		return nil, store.Missing("client_id")
	}
	if req.Date == "" {
		return nil, store.Missing("date")
	}

	class := strings.ToUpper(strings.TrimSpace(req.TicketClass))
	if class == "" {
		class = model.ClassStandard
	}
	if class != model.ClassStandard && class != model.ClassPremium {
		return nil, store.Invalid("ticket_class", "must be STANDARD or PREMIUM")
	}

	station, err := s.stationByID(ctx, req.StationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, store.Invalid("station_id", "unknown station")
	}
	approved, err := s.ownerApproved(ctx, station.CompanyID)
	if err != nil {
		return nil, err
	}
	if !approved {
		// Hidden from travelers, so the id reads as unknown.
		return nil, store.Invalid("station_id", "unknown station")
	}

	if err := CheckDate(station, req.Date); err != nil {
		return nil, err
	}
	if req.TimeIndex < 0 || req.TimeIndex >= len(station.DepartureHours) {
		return nil, store.Invalid("time_index", "no such departure slot")
	}

	res := &model.Reservation{
		ID:            utils.NewID(),
		StationID:     station.ID,
		CompanyID:     station.CompanyID,
		ClientID:      req.ClientID,
		ClientName:    req.Name,
		ClientEmail:   req.Email,
		ClientPhone:   req.Phone,
		RouteSummary:  station.RouteSummary(),
		DepartureTime: station.DepartureHours[req.TimeIndex],
		DepartureDate: req.Date,
		PricePaid:     station.FareFor(class),
		TicketClass:   class,
		Status:        model.ReservationConfirmed,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.store.Reservations().Append(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// ownerApproved reports whether the company owning a station exists
// and has been approved. Stations of pending or rejected companies
// never reach traveler-facing listings, and the same rule holds here.
func (s *Service) ownerApproved(ctx context.Context, companyID string) (bool, error) {
	users, err := s.store.Users().List(ctx)
	if err != nil {
		return false, err
	}
	for i := range users {
		if users[i].ID == companyID {
			return users[i].IsApprovedCompany(), nil
		}
	}
	return false, nil
}

func (s *Service) stationByID(ctx context.Context, id string) (*model.Station, error) {
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
