package evaluation

import (
	"context"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

// PlanGenerator produces a treatment plan for a patient request.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error)
}

// Runner drives the evaluation suite through the plan generator.
type Runner struct {
	planner   PlanGenerator
	evaluator *Evaluator
}

func NewRunner(planner PlanGenerator, evaluator *Evaluator) *Runner {
	return &Runner{planner: planner, evaluator: evaluator}
}

// Run evaluates each case in order. A failing case is recorded with its
// error message and never aborts the suite. The average percentage covers
// only cases that produced a plan.
func (r *Runner) Run(ctx context.Context, cases []TestCase) *EvalSummary {
	logger := observability.GetLogger()
	summary := &EvalSummary{Results: make([]CaseResult, 0, len(cases))}

	totalPercent := 0.0
	for _, tc := range cases {
		plan, err := r.planner.GeneratePlan(ctx, &tc.Request)
		if err != nil {
			logger.Warn().Err(err).Str("case", tc.Name).Msg("evaluation case failed")
			summary.Results = append(summary.Results, CaseResult{
				Case:  tc.Name,
				Error: err.Error(),
			})
			summary.Failed++
			continue
		}

		report := r.evaluator.QuantitativeEval(plan, tc.Expected)
		feedback := r.evaluator.QualitativeEval(plan, tc.Expected)
		percent := float64(report.Score) / float64(report.MaxScore) * 100

		logger.Info().
			Str("case", tc.Name).
			Int("score", report.Score).
			Int("max_score", report.MaxScore).
			Float64("percent", percent).
			Msg("evaluation case scored")

		summary.Results = append(summary.Results, CaseResult{
			Case:         tc.Name,
			Percent:      percent,
			Quantitative: report,
			Qualitative:  feedback,
		})
		summary.Succeeded++
		totalPercent += percent
	}

	if summary.Succeeded > 0 {
		summary.AveragePercent = totalPercent / float64(summary.Succeeded)
	}
	return summary
}
