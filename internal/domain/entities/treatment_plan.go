package entities

// TreatmentPlan is the structured output of the planning pipeline.
// Fields may be empty slices but are always present; a missing field in the
// model output is treated as a generation failure, not an empty plan.
type TreatmentPlan struct {
	MedicalActions         []string `json:"medicalActions"`
	LocationConsiderations []string `json:"locationConsiderations"`
	Justifications         []string `json:"justifications"`
}
