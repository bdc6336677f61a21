package mysql

import (
	"context"
	"database/sql"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// ReservationStore persists the reservations collection in the
// `reservations` table. The collection is append-only: once written,
// a ticket snapshot is never touched again.
type ReservationStore struct{ db *sql.DB }

const reservationColumns = `id, station_id, company_id, client_id,
	client_name, client_email, client_phone, route_summary,
	departure_time, departure_date, price_paid, ticket_class, status, created_at`

// List returns every reservation in insertion order.
func (s *ReservationStore) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]model.Reservation, 0)
	for rows.Next() {
		var r model.Reservation
		if err := rows.Scan(
			&r.ID, &r.StationID, &r.CompanyID, &r.ClientID,
			&r.ClientName, &r.ClientEmail, &r.ClientPhone, &r.RouteSummary,
			&r.DepartureTime, &r.DepartureDate, &r.PricePaid, &r.TicketClass,
			&r.Status, &r.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Append writes one new reservation. There is deliberately no update
// or delete counterpart.
func (s *ReservationStore) Append(ctx context.Context, r *model.Reservation) error {
	switch {
	case r.ID == "":
		return store.Missing("id")
	case r.StationID == "":
		return store.Missing("station_id")
	case r.ClientID == "":
		return store.Missing("client_id")
	}
	const q = `INSERT INTO reservations (` + reservationColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	_, err := s.db.ExecContext(ctx, q,
		r.ID, r.StationID, r.CompanyID, r.ClientID,
		r.ClientName, r.ClientEmail, r.ClientPhone, r.RouteSummary,
		r.DepartureTime, r.DepartureDate, r.PricePaid, r.TicketClass,
		r.Status, r.CreatedAt.UTC())
	return err
}
