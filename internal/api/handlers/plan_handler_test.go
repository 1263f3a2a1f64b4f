package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	apperrors "github.com/sushantshrestha/health-assistant/pkg/errors"
)

type stubPlanner struct {
	plan       *entities.TreatmentPlan
	err        error
	gotRequest *entities.PatientRequest
}

func (s *stubPlanner) GeneratePlan(_ context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error) {
	s.gotRequest = request
	if s.err != nil {
		return nil, s.err
	}
	return s.plan, nil
}

func requestBody() string {
	return `{
		"symptoms": [{"id": 1, "text": "cough"}, {"id": 2, "text": "fever"}],
		"physicalCondition": {"age": "30", "mobilityIssues": "none", "allergies": []},
		"location": "New York, NY"
	}`
}

func TestPlanHandler_GeneratePlan(t *testing.T) {
	planner := &stubPlanner{plan: &entities.TreatmentPlan{
		MedicalActions:         []string{"perform chest x-ray"},
		LocationConsiderations: []string{"Visit Mount Sinai Hospital"},
		Justifications:         []string{"Symptoms suggest infection"},
	}}
	handler := NewPlanHandler(planner)

	req := httptest.NewRequest(http.MethodPost, "/treatment-plan", strings.NewReader(requestBody()))
	rec := httptest.NewRecorder()
	handler.GeneratePlan(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var plan entities.TreatmentPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, []string{"perform chest x-ray"}, plan.MedicalActions)

	require.NotNil(t, planner.gotRequest)
	assert.Equal(t, "New York, NY", planner.gotRequest.Location)
	assert.Len(t, planner.gotRequest.Symptoms, 2)
	assert.Equal(t, "30", planner.gotRequest.PhysicalCondition.Age)
}

func TestPlanHandler_GeneratePlanFailureReturnsDetail(t *testing.T) {
	planner := &stubPlanner{err: apperrors.NewParseError("model response is not valid JSON", nil)}
	handler := NewPlanHandler(planner)

	req := httptest.NewRequest(http.MethodPost, "/treatment-plan", strings.NewReader(requestBody()))
	rec := httptest.NewRecorder()
	handler.GeneratePlan(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["detail"], "model response is not valid JSON")
}

func TestPlanHandler_InvalidBody(t *testing.T) {
	handler := NewPlanHandler(&stubPlanner{})

	req := httptest.NewRequest(http.MethodPost, "/treatment-plan", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.GeneratePlan(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Contains(t, envelope["detail"], "invalid request body")
}

func TestPlanHandler_Root(t *testing.T) {
	handler := NewPlanHandler(&stubPlanner{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.Root(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["message"])
}
