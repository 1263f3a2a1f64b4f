package geolocation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
)

func TestMockProvider_GeocodeKnownCity(t *testing.T) {
	provider := NewMockGeolocationProvider()

	coords, err := provider.Geocode(context.Background(), "New York, NY")
	require.NoError(t, err)
	require.NotNil(t, coords)
	assert.InDelta(t, 40.7128, coords.Latitude, 1e-4)
}

func TestMockProvider_GeocodeUnknownLocation(t *testing.T) {
	provider := NewMockGeolocationProvider()

	coords, err := provider.Geocode(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Nil(t, coords)
}

func TestMockProvider_NearbyPlacesUrban(t *testing.T) {
	provider := NewMockGeolocationProvider()

	places, err := provider.NearbyPlaces(context.Background(), providers.Coordinates{Latitude: 41.8781, Longitude: -87.6298}, "hospital clinic doctor")
	require.NoError(t, err)
	assert.NotEmpty(t, places)
}

func TestMockProvider_NearbyPlacesRemote(t *testing.T) {
	provider := NewMockGeolocationProvider()

	places, err := provider.NearbyPlaces(context.Background(), providers.Coordinates{Latitude: 66.1605, Longitude: -153.3691}, "hospital clinic doctor")
	require.NoError(t, err)
	assert.Empty(t, places)
}
