package model

// Station kinds. A STATION is a named hub a company operates from;
// a ROUTE is a direct point-to-point service. Both share the same
// record shape.
const (
	StationTypeHub   = "STATION"
	StationTypeRoute = "ROUTE"
)

// PremiumFallbackMultiplier is applied to the standard price when a
// station has no premium price of its own. This is a product rule,
// resolved at booking time only; the computed value is never stored
// back onto the station.
const PremiumFallbackMultiplier = 1.5

// Station is a route offering published by a company.
//
// The company name is copied onto the record at creation for cheap
// display without a join; it is not refreshed when the company
// renames itself. DepartureHours and ArrivalHours are parallel
// lists: index i of ArrivalHours is the arrival for departure i.
//
// Fields:
//  ID             – opaque unique identifier.
//  CompanyID      – owning company's user ID.
//  CompanyName    – denormalized company display name.
//  Type           – STATION or ROUTE.
//  Name           – display name, e.g. "Gare de Cotonou".
//  PhotoURL       – photo reference; a placeholder when none was given.
//  Location       – free-text city/area.
//  Description    – free-text description.
//  PointA, PointB – origin and destination labels.
//  DeparturePoint – specific boarding spot.
//  WorkDays       – recurring working weekdays, values from WeekdayNames.
//  DepartureHours – ordered departure time strings, e.g. "08:00".
//  ArrivalHours   – arrival times aligned index-for-index with departures.
//  Price          – standard fare, required, non-negative.
//  PricePremium   – premium fare; zero means "not set".
type Station struct {
	ID             string   `json:"id"`
	CompanyID      string   `json:"company_id"`
	CompanyName    string   `json:"company_name"`
	Type           string   `json:"type"`
	Name           string   `json:"name"`
	PhotoURL       string   `json:"photo_url"`
	Location       string   `json:"location"`
	Description    string   `json:"description,omitempty"`
	PointA         string   `json:"point_a"`
	PointB         string   `json:"point_b"`
	DeparturePoint string   `json:"departure_point,omitempty"`
	WorkDays       []string `json:"work_days"`
	DepartureHours []string `json:"departure_hours"`
	ArrivalHours   []string `json:"arrival_hours,omitempty"`
	Price          float64  `json:"price"`
	PricePremium   float64  `json:"price_premium,omitempty"`
}

// FareFor resolves the price a traveler pays for the given ticket
// class against the station's current fares. A premium booking on a
// station without a premium fare falls back to the standard price
// times PremiumFallbackMultiplier.
func (s *Station) FareFor(class string) float64 {
	if class == ClassPremium {
		if s.PricePremium > 0 {
			return s.PricePremium
		}
		return s.Price * PremiumFallbackMultiplier
	}
	return s.Price
}

// RouteSummary renders the "A vers B" label stamped onto tickets.
func (s *Station) RouteSummary() string {
	return s.PointA + " vers " + s.PointB
}
