// Package mysql implements the record store on MySQL. Each
// collection lives in one table with an auto-increment `seq` column
// that fixes insertion order and an application-generated string
// `id` as the unique key. Upserts go through INSERT ... ON DUPLICATE
// KEY UPDATE, which leaves `seq` untouched, so a replaced record
// keeps its original position in the listing. List operations read
// the whole table ordered by `seq`; at the tens-to-hundreds of
// records this marketplace holds, full scans are the accepted
// tradeoff.
package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"github.com/ayivi/bus-ticket-reservation/internal/store"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Stores bundles the three collection stores over one connection
// pool and satisfies store.Store.
type Stores struct {
	users        *UserStore
	stations     *StationStore
	reservations *ReservationStore
}

// New builds the store set on an open database handle.
func New(db *sql.DB) *Stores {
	return &Stores{
		users:        &UserStore{db: db},
		stations:     &StationStore{db: db},
		reservations: &ReservationStore{db: db},
	}
}

func (s *Stores) Users() store.UserStore               { return s.users }
func (s *Stores) Stations() store.StationStore         { return s.stations }
func (s *Stores) Reservations() store.ReservationStore { return s.reservations }

// encodeList serializes a string list into the JSON text column
// format used for schedule fields. A nil list encodes as "[]" so
// the column is never NULL.
func encodeList(vals []string) (string, error) {
	if vals == nil {
		vals = []string{}
	}
	b, err := json.Marshal(vals)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeList parses a JSON text column back into a string list.
// Empty or missing column values decode to nil.
func decodeList(raw string) ([]string, error) {
	if raw == "" || raw == "[]" {
		return nil, nil
	}
	var vals []string
	if err := json.Unmarshal([]byte(raw), &vals); err != nil {
		return nil, err
	}
	return vals, nil
}
