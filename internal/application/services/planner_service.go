package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/domain/providers"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
	apperrors "github.com/sushantshrestha/health-assistant/pkg/errors"
)

const plannerSystemPrompt = "You are a medical treatment planning assistant."

// PlannerService generates a structured treatment plan for a patient request
// by combining retrieved medical knowledge, nearby facility enrichment and a
// JSON-constrained completion.
type PlannerService struct {
	retrieval  *RetrievalService
	enrichment *EnrichmentService
	completer  providers.CompletionProvider
	metrics    *observability.Metrics
}

// NewPlannerService creates a new planner service
func NewPlannerService(retrieval *RetrievalService, enrichment *EnrichmentService, completer providers.CompletionProvider) *PlannerService {
	return &PlannerService{
		retrieval:  retrieval,
		enrichment: enrichment,
		completer:  completer,
	}
}

// SetMetrics attaches application metrics for plan generation recording
func (s *PlannerService) SetMetrics(metrics *observability.Metrics) {
	s.metrics = metrics
}

// GeneratePlan runs the full retrieval-augmented planning pipeline.
// A partially populated plan is never returned: any parse or validation
// failure of the model output fails the whole request.
func (s *PlannerService) GeneratePlan(ctx context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error) {
	ctx, span := observability.StartSpan(ctx, "planner.generate_plan")
	defer span.End()

	start := time.Now()
	plan, err := s.generate(ctx, request)
	if s.metrics != nil {
		observability.RecordPlanMetric(ctx, s.metrics, time.Since(start), err)
	}
	if err != nil {
		observability.RecordError(span, err)
		return nil, err
	}
	return plan, nil
}

func (s *PlannerService) generate(ctx context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error) {
	if request == nil {
		return nil, apperrors.NewValidationError("patient request is required")
	}

	symptomsText := joinSymptoms(request.Symptoms)
	allergiesText := joinAllergies(request.PhysicalCondition.Allergies)
	queryText := buildQueryText(request, symptomsText, allergiesText)

	// Facility enrichment and knowledge retrieval are independent, so the
	// geocode lookup runs while the query is embedded and searched.
	facilitiesCh := make(chan []string, 1)
	go func() {
		facilitiesCh <- s.enrichment.NearbyFacilities(ctx, request.Location)
	}()

	knowledge, err := s.retrieval.Retrieve(ctx, queryText)
	if err != nil {
		return nil, err
	}
	facilities := <-facilitiesCh

	prompt := buildPlanPrompt(request, symptomsText, allergiesText, facilities, knowledge)

	raw, err := s.completer.CompleteJSON(ctx, plannerSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	plan, err := parsePlan(raw)
	if err != nil {
		return nil, err
	}

	logger := observability.LoggerFromContext(ctx)
	logger.Info().
		Int("medical_actions", len(plan.MedicalActions)).
		Int("location_considerations", len(plan.LocationConsiderations)).
		Int("justifications", len(plan.Justifications)).
		Msg("generated treatment plan")

	return plan, nil
}

func joinSymptoms(symptoms []entities.Symptom) string {
	texts := make([]string, len(symptoms))
	for i, s := range symptoms {
		texts[i] = s.Text
	}
	return strings.Join(texts, ", ")
}

func joinAllergies(allergies []entities.Allergy) string {
	texts := make([]string, len(allergies))
	for i, a := range allergies {
		texts[i] = a.Text
	}
	return strings.Join(texts, ", ")
}

func buildQueryText(request *entities.PatientRequest, symptomsText, allergiesText string) string {
	return fmt.Sprintf(
		"Patient with symptoms: %s. Age: %s. Mobility issues: %s. Allergies: %s. Location: %s.",
		symptomsText,
		request.PhysicalCondition.Age,
		request.PhysicalCondition.MobilityIssues,
		allergiesText,
		request.Location,
	)
}

func buildPlanPrompt(request *entities.PatientRequest, symptomsText, allergiesText string, facilities []string, knowledge string) string {
	healthcareText := "Nearby healthcare options:\n- " + strings.Join(facilities, "\n- ")

	var b strings.Builder
	b.WriteString("You are a medical treatment planning assistant. Based on the patient information and medical knowledge provided,\n")
	b.WriteString("create a detailed treatment plan. Consider the patient's specific circumstances and needs.\n\n")
	b.WriteString("PATIENT INFORMATION:\n")
	fmt.Fprintf(&b, "- Symptoms: %s\n", symptomsText)
	fmt.Fprintf(&b, "- Age: %s\n", request.PhysicalCondition.Age)
	fmt.Fprintf(&b, "- Mobility Issues: %s\n", request.PhysicalCondition.MobilityIssues)
	fmt.Fprintf(&b, "- Allergies: %s\n", allergiesText)
	fmt.Fprintf(&b, "- Geographic Location: %s\n", request.Location)
	fmt.Fprintf(&b, "- Nearby Healthcare Options: %s\n\n", healthcareText)
	b.WriteString("RELEVANT MEDICAL INFORMATION:\n")
	b.WriteString(knowledge)
	b.WriteString("\n\n")
	b.WriteString("Please provide:\n")
	b.WriteString("1. A list of recommended medical actions (e.g., tests, consultations, treatments)\n")
	b.WriteString("2. Location-specific considerations including these facilities or Telehealth options\n")
	b.WriteString("3. Justifications for each recommendation based on symptoms and patient condition\n\n")
	b.WriteString("Format your response as a JSON object with the following structure:\n")
	b.WriteString("{\n")
	b.WriteString("    \"medicalActions\": [\"action1\", \"action2\", ...],\n")
	b.WriteString("    \"locationConsiderations\": [\"consideration1\", \"consideration2\", ...],\n")
	b.WriteString("    \"justifications\": [\"justification1\", \"justification2\", ...]\n")
	b.WriteString("}\n")
	return b.String()
}

// parsePlan validates that the model output is a JSON object carrying exactly
// the three required string-array keys. The model response is an external
// trust boundary; key presence and types are checked explicitly.
func parsePlan(raw string) (*entities.TreatmentPlan, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return nil, apperrors.NewParseError("model response is not a JSON object", err)
	}

	plan := &entities.TreatmentPlan{}
	for key, target := range map[string]*[]string{
		"medicalActions":         &plan.MedicalActions,
		"locationConsiderations": &plan.LocationConsiderations,
		"justifications":         &plan.Justifications,
	} {
		value, ok := fields[key]
		if !ok {
			return nil, apperrors.NewParseError(fmt.Sprintf("model response missing key %q", key), nil)
		}
		if err := json.Unmarshal(value, target); err != nil {
			return nil, apperrors.NewParseError(fmt.Sprintf("model response key %q is not an array of strings", key), err)
		}
		if *target == nil {
			*target = []string{}
		}
	}

	return plan, nil
}
