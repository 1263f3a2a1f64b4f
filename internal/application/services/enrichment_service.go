package services

import (
	"context"
	"fmt"

	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

const (
	facilityKeyword = "hospital clinic doctor"
	maxFacilities   = 5

	// Sentinel descriptors consumed downstream by prompt assembly and by
	// the evaluation rubric's remote-area scoring. Keep byte-exact.
	invalidLocationSentinel = "Invalid location"
	noFacilitiesSentinel    = "No nearby facilities found - recommend Telehealth"
)

// EnrichmentService resolves a patient location to nearby care facility
// descriptors. Provider failures are downgraded to descriptor strings so
// enrichment can never abort plan generation.
type EnrichmentService struct {
	geo providers.GeolocationProvider
}

// NewEnrichmentService creates a new enrichment service
func NewEnrichmentService(geo providers.GeolocationProvider) *EnrichmentService {
	return &EnrichmentService{geo: geo}
}

// NearbyFacilities returns descriptor strings for the closest care
// facilities, or a sentinel descriptor when the location is unresolvable,
// no facilities exist, or the provider errors.
func (s *EnrichmentService) NearbyFacilities(ctx context.Context, location string) []string {
	ctx, span := observability.StartSpan(ctx, "enrichment.nearby_facilities")
	defer span.End()

	logger := observability.LoggerFromContext(ctx)

	coords, err := s.geo.Geocode(ctx, location)
	if err != nil {
		observability.RecordError(span, err)
		logger.Warn().Err(err).Str("location", location).Msg("geocode failed")
		return []string{fmt.Sprintf("Location error: %s - verify address", err.Error())}
	}
	if coords == nil {
		return []string{invalidLocationSentinel}
	}

	places, err := s.geo.NearbyPlaces(ctx, *coords, facilityKeyword)
	if err != nil {
		observability.RecordError(span, err)
		logger.Warn().Err(err).Str("location", location).Msg("nearby places lookup failed")
		return []string{fmt.Sprintf("Location error: %s - verify address", err.Error())}
	}

	if len(places) > maxFacilities {
		places = places[:maxFacilities]
	}
	if len(places) == 0 {
		return []string{noFacilitiesSentinel}
	}

	descriptors := make([]string, len(places))
	for i, place := range places {
		rating := "?"
		if place.Rating != nil {
			rating = fmt.Sprintf("%.1f", *place.Rating)
		}
		descriptors[i] = fmt.Sprintf("%s (%s★)", place.Name, rating)
	}

	return descriptors
}
