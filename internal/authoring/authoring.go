// Package authoring implements the station publishing workflow used
// by company dashboards: validate the form input, fill defaults and
// upsert the record through the store.
package authoring

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/ayivi/bus-ticket-reservation/internal/model"
	"github.com/ayivi/bus-ticket-reservation/internal/store"
	"github.com/ayivi/bus-ticket-reservation/internal/utils"
)

// Input is the station form as submitted by a company. An empty ID
// means "create"; a non-empty ID that matches an existing station
// means "edit". An ID that matches nothing silently falls through to
// create, which is how a stale edit form behaves.
type Input struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	PhotoURL       string   `json:"photo_url"`
	Location       string   `json:"location"`
	Description    string   `json:"description"`
	PointA         string   `json:"point_a"`
	PointB         string   `json:"point_b"`
	DeparturePoint string   `json:"departure_point"`
	WorkDays       []string `json:"work_days"`
	DepartureHours []string `json:"departure_hours"`
	ArrivalHours   []string `json:"arrival_hours"`
	Price          float64  `json:"price"`
	PricePremium   float64  `json:"price_premium"`
}

// Service persists station records on behalf of companies.
type Service struct {
	store store.Store
}

// New returns an authoring service over the given store.
func New(s store.Store) *Service {
	if s == nil {
		panic("nil store passed to authoring.New")
	}
	return &Service{store: s}
}

// SaveStation validates and persists a station for the company
// identified by companyID/companyName. Required fields are name,
// pointA and pointB; prices must be non-negative and work day names
// must come from the weekday vocabulary. A missing premium price is
// stored as zero, meaning "not set": the premium fallback is a
// booking-time rule and is never written onto the record. A missing
// photo gets a placeholder reference.
func (s *Service) SaveStation(ctx context.Context, companyID, companyName string, in Input) (*model.Station, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.PointA = strings.TrimSpace(in.PointA)
	in.PointB = strings.TrimSpace(in.PointB)
	switch {
	case in.Name == "":
		return nil, store.Missing("name")
	case in.PointA == "":
		return nil, store.Missing("point_a")
	case in.PointB == "":
		return nil, store.Missing("point_b")
	}
	if in.Price < 0 || in.PricePremium < 0 {
		return nil, store.Invalid("price", "must not be negative")
	}
	for _, d := range in.WorkDays {
		if !model.ValidWeekday(d) {
			return nil, store.Invalid("work_days", "unknown weekday "+d)
		}
	}

	typ := strings.ToUpper(strings.TrimSpace(in.Type))
	if typ != model.StationTypeRoute {
		typ = model.StationTypeHub
	}

	id := strings.TrimSpace(in.ID)
	if id != "" {
		existing, err := s.stationByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			// Edit target vanished, save as new.
			id = ""
		} else if existing.CompanyID != companyID {
			return nil, store.ErrForbidden
		}
	}
	if id == "" {
		id = utils.NewID()
	}

	photo := strings.TrimSpace(in.PhotoURL)
	if photo == "" {
		photo = placeholderPhoto()
	}

	st := &model.Station{
		ID:             id,
		CompanyID:      companyID,
		CompanyName:    companyName,
		Type:           typ,
		Name:           in.Name,
		PhotoURL:       photo,
		Location:       in.Location,
		Description:    in.Description,
		PointA:         in.PointA,
		PointB:         in.PointB,
		DeparturePoint: in.DeparturePoint,
		WorkDays:       in.WorkDays,
		DepartureHours: in.DepartureHours,
		ArrivalHours:   in.ArrivalHours,
		Price:          in.Price,
		PricePremium:   in.PricePremium,
	}
	if err := s.store.Stations().Upsert(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// DeleteStation removes one of the company's own stations. Deleting
// somebody else's station is forbidden; deleting an id that does not
// exist is a silent no-op.
func (s *Service) DeleteStation(ctx context.Context, companyID, stationID string) error {
	existing, err := s.stationByID(ctx, stationID)
	if err != nil {
		return err
	}
	if existing != nil && existing.CompanyID != companyID {
		return store.ErrForbidden
	}
	return s.store.Stations().Delete(ctx, stationID)
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

// placeholderPhoto builds a random seeded placeholder image URL for
// stations published without a photo.
func placeholderPhoto() string {
	return fmt.Sprintf("https://picsum.photos/seed/%d/400/300", rand.Int63())
}
