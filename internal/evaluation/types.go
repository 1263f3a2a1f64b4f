package evaluation

import "github.com/sushantshrestha/health-assistant/internal/domain/entities"

// MaxScore is the total number of points a plan can earn under the rubric.
const MaxScore = 7

// ExpectedOutcome holds the labeled expectations for one evaluation case.
type ExpectedOutcome struct {
	// RemoteArea marks cases where no nearby facilities exist and the plan
	// is expected to fall back to Telehealth.
	RemoteArea bool `json:"remote_area"`
	// ReferencePlan is a space-joined reference action list used for
	// lexical similarity scoring.
	ReferencePlan string `json:"reference_plan"`
	// AllergyRisk names a contraindicated substance, if any. A plan that
	// recommends it fails the safety check.
	AllergyRisk string `json:"allergy_risk,omitempty"`
}

// TestCase pairs a patient request with its expected outcome.
type TestCase struct {
	Name     string                  `json:"name"`
	Request  entities.PatientRequest `json:"request"`
	Expected ExpectedOutcome         `json:"expected"`
}

// ScoreReport is the quantitative result for a single plan.
type ScoreReport struct {
	Score    int `json:"score"`
	MaxScore int `json:"maxScore"`
}

// CaseResult holds the full outcome for one evaluated case. Error is set
// and the remaining fields are zero when the case failed to produce a plan.
type CaseResult struct {
	Case         string      `json:"case"`
	Percent      float64     `json:"percent,omitempty"`
	Quantitative ScoreReport `json:"quantitative,omitempty"`
	Qualitative  []string    `json:"qualitative,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// EvalSummary aggregates results across a full evaluation run.
type EvalSummary struct {
	Results        []CaseResult `json:"results"`
	AveragePercent float64      `json:"averagePercent"`
	Succeeded      int          `json:"succeeded"`
	Failed         int          `json:"failed"`
}
