package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sushantshrestha/health-assistant/internal/application/services"
	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	apperrors "github.com/sushantshrestha/health-assistant/pkg/errors"
)

type stubCompleter struct {
	response  string
	err       error
	gotSystem string
	gotUser   string
}

func (s *stubCompleter) CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	s.gotSystem = systemPrompt
	s.gotUser = userPrompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func urbanRequest() *entities.PatientRequest {
	return &entities.PatientRequest{
		Symptoms: []entities.Symptom{
			{ID: 1, Text: "cough"},
			{ID: 2, Text: "fever"},
		},
		PhysicalCondition: entities.PhysicalCondition{
			Age:            "30",
			MobilityIssues: "none",
			Allergies:      []entities.Allergy{},
		},
		Location: "New York, NY",
	}
}

func newPlanner(completer *stubCompleter, index *stubIndex, geo *stubGeoProvider) *services.PlannerService {
	embedder := &stubEmbedder{vector: []float32{0.1, 0.2}}
	retrieval := services.NewRetrievalService(embedder, index, "diseases", 0.8, 5)
	enrichment := services.NewEnrichmentService(geo)
	return services.NewPlannerService(retrieval, enrichment, completer)
}

func TestGeneratePlan_Success(t *testing.T) {
	completer := &stubCompleter{response: `{
		"medicalActions": ["perform chest x-ray", "prescribe antipyretics"],
		"locationConsiderations": ["Visit Mount Sinai Hospital (4.5★)"],
		"justifications": ["Chest x-ray rules out pneumonia given cough and fever"]
	}`}
	index := &stubIndex{snippets: []entities.ScoredSnippet{
		{Text: "influenza presents with cough and fever", Score: 0.9},
	}}
	geo := &stubGeoProvider{
		coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0},
		places: []providers.Place{{Name: "Mount Sinai Hospital", Rating: ratingPtr(4.5)}},
	}

	planner := newPlanner(completer, index, geo)

	plan, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"perform chest x-ray", "prescribe antipyretics"}, plan.MedicalActions)
	assert.NotEmpty(t, plan.LocationConsiderations)
	assert.NotEmpty(t, plan.Justifications)

	assert.Equal(t, "You are a medical treatment planning assistant.", completer.gotSystem)
	assert.Contains(t, completer.gotUser, "Symptoms: cough, fever")
	assert.Contains(t, completer.gotUser, "Mount Sinai Hospital (4.5★)")
	assert.Contains(t, completer.gotUser, "influenza presents with cough and fever")
	assert.Contains(t, completer.gotUser, `"medicalActions"`)
}

func TestGeneratePlan_TelehealthSentinelReachesPrompt(t *testing.T) {
	completer := &stubCompleter{response: `{
		"medicalActions": ["recommend telehealth consultation"],
		"locationConsiderations": ["Telehealth recommended - no nearby facilities"],
		"justifications": ["Remote location"]
	}`}
	geo := &stubGeoProvider{
		coords: &providers.Coordinates{Latitude: 66.1, Longitude: -153.3},
		places: nil,
	}

	planner := newPlanner(completer, &stubIndex{}, geo)

	_, err := planner.GeneratePlan(context.Background(), &entities.PatientRequest{
		Symptoms:          []entities.Symptom{{ID: 1, Text: "rash"}},
		PhysicalCondition: entities.PhysicalCondition{Age: "45", MobilityIssues: "wheelchair"},
		Location:          "Rural Alaska",
	})
	require.NoError(t, err)

	assert.Contains(t, completer.gotUser, "No nearby facilities found - recommend Telehealth")
}

func TestGeneratePlan_MissingKeyFailsWithParseError(t *testing.T) {
	completer := &stubCompleter{response: `{"medicalActions": ["rest"], "justifications": ["tired"]}`}
	geo := &stubGeoProvider{coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0}}

	planner := newPlanner(completer, &stubIndex{}, geo)

	plan, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.Error(t, err)
	assert.Nil(t, plan)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
	assert.Contains(t, appErr.Message, "locationConsiderations")
}

func TestGeneratePlan_MistypedKeyFailsWithParseError(t *testing.T) {
	completer := &stubCompleter{response: `{
		"medicalActions": "not an array",
		"locationConsiderations": [],
		"justifications": []
	}`}
	geo := &stubGeoProvider{coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0}}

	planner := newPlanner(completer, &stubIndex{}, geo)

	_, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
}

func TestGeneratePlan_InvalidJSONFailsWithParseError(t *testing.T) {
	completer := &stubCompleter{response: `not json at all`}
	geo := &stubGeoProvider{coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0}}

	planner := newPlanner(completer, &stubIndex{}, geo)

	_, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.Error(t, err)

	appErr, ok := err.(*apperrors.AppError)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrorTypeParse, appErr.Type)
}

func TestGeneratePlan_EmptyArraysAreValid(t *testing.T) {
	completer := &stubCompleter{response: `{
		"medicalActions": [],
		"locationConsiderations": [],
		"justifications": []
	}`}
	geo := &stubGeoProvider{coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0}}

	planner := newPlanner(completer, &stubIndex{}, geo)

	plan, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.NoError(t, err)
	assert.NotNil(t, plan.MedicalActions)
	assert.Empty(t, plan.MedicalActions)
}

func TestGeneratePlan_CompletionErrorPropagates(t *testing.T) {
	completer := &stubCompleter{err: errors.New("model overloaded")}
	geo := &stubGeoProvider{coords: &providers.Coordinates{Latitude: 40.7, Longitude: -74.0}}

	planner := newPlanner(completer, &stubIndex{}, geo)

	_, err := planner.GeneratePlan(context.Background(), urbanRequest())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "model overloaded"))
}
