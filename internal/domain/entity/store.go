package entity

import (
	"fmt"
	"math"
)

// Coordinate is a WGS84 latitude/longitude pair.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the coordinate is within WGS84 bounds.
func (c Coordinate) IsValid() bool {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}

	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// GeoString formats the coordinate as "lat,lon" for order records.
func (c Coordinate) GeoString() string {
	return fmt.Sprintf("%v,%v", c.Latitude, c.Longitude)
}

// Store is a physical shop shown on the nearby stores screen.
type Store struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Address   string     `json:"address"`
	Location  Coordinate `json:"location"`
	Phone     string     `json:"phone"`
	Specialty string     `json:"specialty"`
}

// NearbyStore is a store with its distance from the current location.
type NearbyStore struct {
	Store
	DistanceKm float64 `json:"distance_km"` // Rounded to 0.1 km.
}

// Navigation is the straight-line route summary to a store.
type Navigation struct {
	Store      Store      `json:"store"`
	From       Coordinate `json:"from"`
	DistanceKm float64    `json:"distance_km"`
	ETAMinutes int        `json:"eta_minutes"`
}
