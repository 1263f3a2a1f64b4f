package evaluation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/sushantshrestha/health-assistant/pkg/errors"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
)

type stubPlanner struct {
	plans map[string]*entities.TreatmentPlan
	errs  map[string]error
	calls []string
}

func (s *stubPlanner) GeneratePlan(_ context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error) {
	s.calls = append(s.calls, request.Location)
	if err, ok := s.errs[request.Location]; ok {
		return nil, err
	}
	return s.plans[request.Location], nil
}

func goodPlan() *entities.TreatmentPlan {
	return &entities.TreatmentPlan{
		MedicalActions:         []string{"perform chest x-ray", "prescribe antipyretics", "recommend rest"},
		LocationConsiderations: []string{"Visit a nearby hospital", "Walk-in clinic available"},
		Justifications:         []string{"Symptoms indicate respiratory infection"},
	}
}

func TestRunner_ScoresAllCases(t *testing.T) {
	cases := DefaultCases()
	planner := &stubPlanner{plans: map[string]*entities.TreatmentPlan{
		"New York, NY": goodPlan(),
		"Rural Alaska": {
			MedicalActions:         []string{"recommend telehealth consultation", "prescribe antihistamines"},
			LocationConsiderations: []string{"No facilities nearby, use Telehealth"},
			Justifications:         []string{"Avoided penicillin given documented allergy"},
		},
		"Chicago, IL": {
			MedicalActions:         []string{"recommend acetaminophen", "schedule neurological exam"},
			LocationConsiderations: []string{"Neurology clinic downtown"},
			Justifications:         []string{"Acetaminophen is safe given the ibuprofen allergy"},
		},
	}}

	summary := NewRunner(planner, NewEvaluator()).Run(context.Background(), cases)

	require.Len(t, summary.Results, 3)
	assert.Equal(t, 3, summary.Succeeded)
	assert.Equal(t, 0, summary.Failed)
	for i, res := range summary.Results {
		assert.Equal(t, cases[i].Name, res.Case)
		assert.Empty(t, res.Error)
		assert.GreaterOrEqual(t, res.Percent, 0.0)
		assert.LessOrEqual(t, res.Percent, 100.0)
	}
	assert.Greater(t, summary.AveragePercent, 0.0)
}

func TestRunner_ContinuesPastFailingCase(t *testing.T) {
	cases := DefaultCases()
	planner := &stubPlanner{
		plans: map[string]*entities.TreatmentPlan{
			"New York, NY": goodPlan(),
			"Chicago, IL":  goodPlan(),
		},
		errs: map[string]error{
			"Rural Alaska": apperrors.NewParseError("malformed model response", nil),
		},
	}

	summary := NewRunner(planner, NewEvaluator()).Run(context.Background(), cases)

	require.Len(t, summary.Results, 3)
	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 1, summary.Failed)
	assert.Contains(t, summary.Results[1].Error, "malformed model response")
	assert.Equal(t, 0.0, summary.Results[1].Percent)

	// Average covers only the two successful cases
	expected := (summary.Results[0].Percent + summary.Results[2].Percent) / 2
	assert.InDelta(t, expected, summary.AveragePercent, 1e-9)
	assert.Len(t, planner.calls, 3)
}

func TestRunner_AllCasesFail(t *testing.T) {
	cases := DefaultCases()
	planner := &stubPlanner{errs: map[string]error{
		"New York, NY": apperrors.NewExternalError("embedding provider unreachable", nil),
		"Rural Alaska": apperrors.NewExternalError("embedding provider unreachable", nil),
		"Chicago, IL":  apperrors.NewExternalError("embedding provider unreachable", nil),
	}}

	summary := NewRunner(planner, NewEvaluator()).Run(context.Background(), cases)

	assert.Equal(t, 3, summary.Failed)
	assert.Equal(t, 0.0, summary.AveragePercent)
}
