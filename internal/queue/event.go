// Package queue defines message payloads exchanged over the message
// broker and the background consumer that drains them.
package queue

// ReservationConfirmedEvent is published when a booking succeeds. It
// carries the full ticket snapshot so downstream consumers (logging,
// notifications, analytics) never need to query the primary store.
type ReservationConfirmedEvent struct {
	ReservationID string  `json:"reservation_id"`
	StationID     string  `json:"station_id"`
	CompanyID     string  `json:"company_id"`
	CompanyName   string  `json:"company_name"`
	ClientID      string  `json:"client_id"`
	ClientName    string  `json:"client_name"`
	RouteSummary  string  `json:"route_summary"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	TicketClass   string  `json:"ticket_class"`
	PricePaid     float64 `json:"price_paid"`
	ConfirmedAt   string  `json:"confirmed_at"`
}
