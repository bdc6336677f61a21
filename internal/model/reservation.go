package model

import "time"

// Ticket classes a traveler can book.
const (
	ClassStandard = "STANDARD"
	ClassPremium  = "PREMIUM"
)

// Reservation statuses. Bookings are created CONFIRMED; the other
// values are reserved for future cancellation/completion flows and
// are never produced by the current workflows.
const (
	ReservationConfirmed = "CONFIRMED"
	ReservationCancelled = "CANCELLED"
	ReservationCompleted = "COMPLETED"
	ReservationPending   = "PENDING"
)

// Reservation is an immutable snapshot of one client's booking
// against a station. Route, time and price are copied out of the
// station at booking time on purpose: later edits to the station
// must not change a ticket that was already sold.
//
// Fields:
//  ID            – opaque unique identifier.
//  StationID     – booked station (unenforced foreign key).
//  CompanyID     – owning company at booking time.
//  ClientID      – booking client.
//  ClientName    – passenger name as entered on the form.
//  ClientEmail   – passenger contact email.
//  ClientPhone   – passenger contact phone.
//  RouteSummary  – "PointA vers PointB" at booking time.
//  DepartureTime – the literal slot string chosen from DepartureHours.
//  DepartureDate – caller-supplied travel date (YYYY-MM-DD).
//  PricePaid     – fare resolved at booking time.
//  TicketClass   – STANDARD or PREMIUM.
//  Status        – reservation state, CONFIRMED on creation.
//  CreatedAt     – booking timestamp.
type Reservation struct {
	ID            string    `json:"id"`
	StationID     string    `json:"station_id"`
	CompanyID     string    `json:"company_id"`
	ClientID      string    `json:"client_id"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ClientPhone   string    `json:"client_phone"`
	RouteSummary  string    `json:"route_summary"`
	DepartureTime string    `json:"departure_time"`
	DepartureDate string    `json:"departure_date"`
	PricePaid     float64   `json:"price_paid"`
	TicketClass   string    `json:"ticket_class"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
