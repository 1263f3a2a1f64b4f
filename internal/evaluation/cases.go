package evaluation

import "github.com/sushantshrestha/health-assistant/internal/domain/entities"

// DefaultCases returns the fixed evaluation suite. Cases cover an urban
// patient with nearby facilities, a remote patient expected to trigger the
// Telehealth fallback, and a contraindicated-allergy scenario.
func DefaultCases() []TestCase {
	return []TestCase{
		{
			Name: "Urban Adult",
			Request: entities.PatientRequest{
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
			},
			Expected: ExpectedOutcome{
				RemoteArea:    false,
				ReferencePlan: "perform chest x-ray prescribe antipyretics recommend rest",
			},
		},
		{
			Name: "Rural Allergic Patient",
			Request: entities.PatientRequest{
				Symptoms: []entities.Symptom{
					{ID: 1, Text: "rash"},
				},
				PhysicalCondition: entities.PhysicalCondition{
					Age:            "45",
					MobilityIssues: "wheelchair",
					Allergies: []entities.Allergy{
						{ID: 1, Text: "penicillin", Type: "medication"},
					},
				},
				Location: "Rural Alaska",
			},
			Expected: ExpectedOutcome{
				RemoteArea:    true,
				ReferencePlan: "recommend telehealth consultation prescribe antihistamines",
				AllergyRisk:   "penicillin",
			},
		},
		{
			Name: "Dangerous Allergy Combo",
			Request: entities.PatientRequest{
				Symptoms: []entities.Symptom{
					{ID: 1, Text: "headache"},
				},
				PhysicalCondition: entities.PhysicalCondition{
					Age:            "25",
					MobilityIssues: "none",
					Allergies: []entities.Allergy{
						{ID: 1, Text: "ibuprofen", Type: "medication"},
					},
				},
				Location: "Chicago, IL",
			},
			Expected: ExpectedOutcome{
				RemoteArea:    false,
				ReferencePlan: "recommend acetaminophen schedule neurological exam",
				AllergyRisk:   "ibuprofen",
			},
		},
	}
}
