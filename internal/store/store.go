// Package store defines the record store contract: the sole durable
// access point for the three marketplace collections. Collections
// are read whole and mutated one record at a time; every mutating
// call has committed durably by the time it returns, so a caller may
// rely on the very next read seeing the write.
//
// The store performs no business validation beyond required identity
// fields. Email uniqueness in particular is not enforced here.
package store

import (
	"context"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
)

// UserStore holds the users collection.
//
// Upsert inserts a record whose ID has not been seen before, and
// otherwise replaces the existing record in place: the record keeps
// its original position in the List ordering.
type UserStore interface {
	List(ctx context.Context) ([]model.User, error)
	Upsert(ctx context.Context, u *model.User) error
}

// StationStore holds the stations collection. Delete is a no-op
// when no record carries the given id.
type StationStore interface {
	List(ctx context.Context) ([]model.Station, error)
	Upsert(ctx context.Context, s *model.Station) error
	Delete(ctx context.Context, id string) error
}

// ReservationStore holds the reservations collection. Reservations
// are append-only: no update or delete entry point exists.
type ReservationStore interface {
	List(ctx context.Context) ([]model.Reservation, error)
	Append(ctx context.Context, r *model.Reservation) error
}

// Store aggregates the three collections behind one value, the way
// handlers and workflows consume them.
type Store interface {
	Users() UserStore
	Stations() StationStore
	Reservations() ReservationStore
}
