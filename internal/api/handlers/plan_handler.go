package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sushantshrestha/health-assistant/internal/domain/entities"
	"github.com/sushantshrestha/health-assistant/internal/infrastructure/observability"
)

// PlanGenerator produces a treatment plan for a patient request.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, request *entities.PatientRequest) (*entities.TreatmentPlan, error)
}

// PlanHandler serves the treatment plan endpoints.
type PlanHandler struct {
	planner PlanGenerator
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(planner PlanGenerator) *PlanHandler {
	return &PlanHandler{planner: planner}
}

// Root handles GET / as a liveness probe.
func (h *PlanHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Health assistant API is running",
	})
}

// GeneratePlan handles POST /treatment-plan.
func (h *PlanHandler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var request entities.PatientRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		respondWithDetail(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	plan, err := h.planner.GeneratePlan(r.Context(), &request)
	if err != nil {
		logger := observability.LoggerFromContext(r.Context())
		logger.Error().Err(err).Msg("treatment plan generation failed")
		respondWithDetail(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, plan)
}

// Helper functions
func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithDetail(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"detail": message,
	})
}
