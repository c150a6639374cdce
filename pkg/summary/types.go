package summary

import "encoding/json"

// RiskLevel is the severity of a drug interaction.
type RiskLevel string

// Risk levels. Matching is exact: "Low" or "HIGH" are not risk levels.
const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Valid reports whether r is one of the enumerated levels.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskModerate, RiskHigh:
		return true
	default:
		return false
	}
}

// Summary is the structured answer returned by the AI summary route.
type Summary struct {
	RiskLevel       RiskLevel            `json:"riskLevel"`
	Highlights      []string             `json:"highlights"`
	Recommendations []string             `json:"recommendations"`
	Caveats         []string             `json:"caveats"`
	PerDrug         map[string]RiskLevel `json:"perDrug"`
}

// MarshalJSON writes empty sequences as [] and an empty perDrug as {}.
func (s Summary) MarshalJSON() ([]byte, error) {
	type plain Summary
	out := plain(s)
	if out.Highlights == nil {
		out.Highlights = []string{}
	}
	if out.Recommendations == nil {
		out.Recommendations = []string{}
	}
	if out.Caveats == nil {
		out.Caveats = []string{}
	}
	if out.PerDrug == nil {
		out.PerDrug = map[string]RiskLevel{}
	}
	return json.Marshal(out)
}

// PatientProfile is the optional "profile" element of a summary request.
// Every field is optional; unset fields are left out of the prompt.
type PatientProfile struct {
	Age        *int     `json:"age,omitempty"`
	Sex        string   `json:"sex,omitempty"`
	Pregnant   *bool    `json:"pregnant,omitempty"`
	Conditions []string `json:"conditions,omitempty"`
	Allergies  []string `json:"allergies,omitempty"`
}

// Request is what the caller asked for, after prompt derivation.
type Request struct {
	// Prompt is the caller's question, never blank.
	Prompt string

	// Drugs lists the medicines the caller named, if any.
	Drugs []string

	// Profile is nil when the caller sent none.
	Profile *PatientProfile
}
