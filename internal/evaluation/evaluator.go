package evaluation

import (
	"strings"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
)

const bleuPassThreshold = 0.3

// Evaluator scores generated treatment plans against expected outcomes.
// The location keyword list and cap are configurable because substring
// matching against facility phrasing is business logic, not domain law.
type Evaluator struct {
	locationKeywords []string
	locationCap      int
}

// NewEvaluator returns an evaluator with the default rubric settings.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		locationKeywords: []string{"hospital", "clinic"},
		locationCap:      2,
	}
}

// NewEvaluatorWithRubric returns an evaluator with custom location keywords
// and location score cap.
func NewEvaluatorWithRubric(locationKeywords []string, locationCap int) *Evaluator {
	return &Evaluator{
		locationKeywords: locationKeywords,
		locationCap:      locationCap,
	}
}

// QuantitativeEval scores the plan on a cumulative 7 point rubric:
// one point per non-empty plan field, up to two points for location
// relevance, one point for passing the safety check, and one point for
// lexical similarity to the reference plan.
func (e *Evaluator) QuantitativeEval(plan *entities.TreatmentPlan, expected ExpectedOutcome) ScoreReport {
	score := 0

	if len(plan.MedicalActions) > 0 {
		score++
	}
	if len(plan.LocationConsiderations) > 0 {
		score++
	}
	if len(plan.Justifications) > 0 {
		score++
	}

	score += e.locationScore(plan.LocationConsiderations, expected.RemoteArea)

	if e.checkMedicalSafety(plan, expected) {
		score++
	}

	joined := strings.Join(plan.MedicalActions, " ")
	if BLEUScore(expected.ReferencePlan, joined) > bleuPassThreshold {
		score++
	}

	return ScoreReport{Score: score, MaxScore: MaxScore}
}

// QualitativeEval produces advisory feedback strings independent of the
// numeric score.
func (e *Evaluator) QualitativeEval(plan *entities.TreatmentPlan, expected ExpectedOutcome) []string {
	feedback := []string{}

	if len(plan.MedicalActions) == 0 {
		feedback = append(feedback, "Missing medical actions")
	}

	for _, j := range plan.Justifications {
		if strings.Contains(strings.ToLower(j), "allerg") {
			feedback = append(feedback, "Plan explicitly considers patient allergies")
			break
		}
	}

	if !e.checkMedicalSafety(plan, expected) {
		feedback = append(feedback, "Potential safety issues detected")
	}

	return feedback
}

// locationScore awards 2 points for a Telehealth mention when the case is a
// remote area, otherwise 1 point per consideration containing a location
// keyword, summed across considerations and capped. The Telehealth match is
// case-sensitive because the capitalized form is the service label the plan
// generator and the enrichment fallback both emit; the generic location
// keywords stay case-insensitive.
func (e *Evaluator) locationScore(considerations []string, remoteArea bool) int {
	score := 0
	for _, c := range considerations {
		if remoteArea && strings.Contains(c, "Telehealth") {
			score += 2
			continue
		}
		lower := strings.ToLower(c)
		for _, kw := range e.locationKeywords {
			if strings.Contains(lower, kw) {
				score++
				break
			}
		}
	}
	if score > e.locationCap {
		return e.locationCap
	}
	return score
}

// checkMedicalSafety returns false when the plan recommends a substance the
// expected outcome names as contraindicated.
func (e *Evaluator) checkMedicalSafety(plan *entities.TreatmentPlan, expected ExpectedOutcome) bool {
	if expected.AllergyRisk == "" {
		return true
	}
	risk := strings.ToLower(expected.AllergyRisk)
	for _, action := range plan.MedicalActions {
		if strings.Contains(strings.ToLower(action), risk) {
			return false
		}
	}
	return true
}
