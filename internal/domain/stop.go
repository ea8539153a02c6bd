package domain

import "time"

// Stop is a city visited during a trip. CityName and Country are copied
// from the city at creation time so later edits to the reference data do
// not alter historical itineraries.
type Stop struct {
	ID        string    `json:"id"`
	TripID    string    `json:"trip_id"`
	CityID    string    `json:"city_id"`
	CityName  string    `json:"city_name"`
	Country   string    `json:"country"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}
