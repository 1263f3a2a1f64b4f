package geolocation

import (
	"context"
	"strings"

	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
)

// MockGeolocationProvider implements a mock geolocation provider for
// development without a Google Maps key.
type MockGeolocationProvider struct{}

// NewMockGeolocationProvider creates a new mock geolocation provider
func NewMockGeolocationProvider() providers.GeolocationProvider {
	return &MockGeolocationProvider{}
}

var mockCoordinates = map[string]providers.Coordinates{
	"New York":     {Latitude: 40.7128, Longitude: -74.0060},
	"Chicago":      {Latitude: 41.8781, Longitude: -87.6298},
	"Los Angeles":  {Latitude: 34.0522, Longitude: -118.2437},
	"Houston":      {Latitude: 29.7604, Longitude: -95.3698},
	"Rural Alaska": {Latitude: 66.1605, Longitude: -153.3691},
}

// Geocode resolves a handful of known locations. Unknown locations return
// nil, matching the real provider's zero-result behaviour.
func (m *MockGeolocationProvider) Geocode(ctx context.Context, location string) (*providers.Coordinates, error) {
	for name, coords := range mockCoordinates {
		if strings.Contains(strings.ToLower(location), strings.ToLower(name)) {
			c := coords
			return &c, nil
		}
	}
	return nil, nil
}

// NearbyPlaces returns canned facilities for urban coordinates and nothing
// for remote ones (latitude above the arctic-ish cutoff).
func (m *MockGeolocationProvider) NearbyPlaces(ctx context.Context, center providers.Coordinates, keyword string) ([]providers.Place, error) {
	if center.Latitude > 60 {
		return []providers.Place{}, nil
	}

	rating := func(v float64) *float64 { return &v }
	return []providers.Place{
		{Name: "General Hospital", Rating: rating(4.2)},
		{Name: "Downtown Clinic", Rating: rating(3.9)},
		{Name: "Family Medical Center", Rating: nil},
	}, nil
}
