package entities

// Symptom is a single reported symptom.
type Symptom struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Allergy is a known patient allergy.
type Allergy struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
	Type string `json:"type,omitempty"`
}

// PhysicalCondition describes the patient's general state.
type PhysicalCondition struct {
	Age            string    `json:"age"`
	MobilityIssues string    `json:"mobilityIssues"`
	Allergies      []Allergy `json:"allergies"`
}

// PatientRequest is the immutable per-request patient input.
type PatientRequest struct {
	Symptoms          []Symptom         `json:"symptoms"`
	PhysicalCondition PhysicalCondition `json:"physicalCondition"`
	Location          string            `json:"location"`
}
