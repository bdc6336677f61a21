package mysql

import (
	"context"
	"database/sql"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// StationStore persists the stations collection in the `stations`
// table. The three schedule lists are stored as JSON text columns,
// returned verbatim, so the index alignment between departure and
// arrival hours survives the round trip untouched.
type StationStore struct{ db *sql.DB }

const stationColumns = `id, company_id, company_name, type, name, photo_url,
	location, description, point_a, point_b, departure_point,
	work_days, departure_hours, arrival_hours, price, price_premium`

// List returns every station in insertion order.
func (s *StationStore) List(ctx context.Context) ([]model.Station, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+stationColumns+` FROM stations ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	stations := make([]model.Station, 0)
	for rows.Next() {
		var st model.Station
		var workDays, depHours, arrHours string
		if err := rows.Scan(
			&st.ID, &st.CompanyID, &st.CompanyName, &st.Type, &st.Name,
			&st.PhotoURL, &st.Location, &st.Description, &st.PointA, &st.PointB,
			&st.DeparturePoint, &workDays, &depHours, &arrHours,
			&st.Price, &st.PricePremium,
		); err != nil {
			return nil, err
		}
		if st.WorkDays, err = decodeList(workDays); err != nil {
			return nil, err
		}
		if st.DepartureHours, err = decodeList(depHours); err != nil {
			return nil, err
		}
		if st.ArrivalHours, err = decodeList(arrHours); err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

// Upsert inserts the station or replaces the record sharing its id,
// preserving its position in the listing.
func (s *StationStore) Upsert(ctx context.Context, st *model.Station) error {
	switch {
	case st.ID == "":
		return store.Missing("id")
	case st.CompanyID == "":
		return store.Missing("company_id")
	}
	workDays, err := encodeList(st.WorkDays)
	if err != nil {
		return err
	}
	depHours, err := encodeList(st.DepartureHours)
	if err != nil {
		return err
	}
	arrHours, err := encodeList(st.ArrivalHours)
	if err != nil {
		return err
	}
	const q = `INSERT INTO stations (` + stationColumns + `)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
		ON DUPLICATE KEY UPDATE
			company_id=VALUES(company_id), company_name=VALUES(company_name),
			type=VALUES(type), name=VALUES(name), photo_url=VALUES(photo_url),
			location=VALUES(location), description=VALUES(description),
			point_a=VALUES(point_a), point_b=VALUES(point_b),
			departure_point=VALUES(departure_point), work_days=VALUES(work_days),
			departure_hours=VALUES(departure_hours),
			arrival_hours=VALUES(arrival_hours),
			price=VALUES(price), price_premium=VALUES(price_premium)`
	_, err = s.db.ExecContext(ctx, q,
		st.ID, st.CompanyID, st.CompanyName, st.Type, st.Name, st.PhotoURL,
		st.Location, st.Description, st.PointA, st.PointB, st.DeparturePoint,
		workDays, depHours, arrHours, st.Price, st.PricePremium)
	return err
}

// Delete removes the station with the given id. Deleting an id that
// was never stored is not an error.
func (s *StationStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM stations WHERE id = ?`, id)
	return err
}
