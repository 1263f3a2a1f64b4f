package providers

import (
	"context"
)

// GeolocationProvider defines the interface for geocoding and place lookup
type GeolocationProvider interface {
	// Geocode converts a free-text location to coordinates. A nil result
	// with a nil error means the location could not be resolved.
	Geocode(ctx context.Context, location string) (*Coordinates, error)

	// NearbyPlaces finds places matching a keyword ranked by distance
	// from the given point
	NearbyPlaces(ctx context.Context, center Coordinates, keyword string) ([]Place, error)
}

// Coordinates represents geographical coordinates
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Place represents a care facility returned by a places lookup.
// Rating is nil when the provider has no rating for the place.
type Place struct {
	Name   string
	Rating *float64
}
