package summary

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// answer mirrors Summary with pointer fields so that absent members can be
// told apart from empty ones.
type answer struct {
	RiskLevel       *RiskLevel            `json:"riskLevel"`
	Highlights      *[]string             `json:"highlights"`
	Recommendations *[]string             `json:"recommendations"`
	Caveats         *[]string             `json:"caveats"`
	PerDrug         *map[string]RiskLevel `json:"perDrug"`
}

// ParseSummary decodes candidate as one JSON object and checks it against
// the Summary schema: every member present, riskLevel and every perDrug
// value in the risk enumeration. Unknown members are ignored. Anything else
// after the object is an error.
func ParseSummary(candidate string) (*Summary, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(candidate)))

	var a answer
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after summary object")
	}

	var missing []string
	if a.RiskLevel == nil {
		missing = append(missing, "riskLevel")
	}
	if a.Highlights == nil {
		missing = append(missing, "highlights")
	}
	if a.Recommendations == nil {
		missing = append(missing, "recommendations")
	}
	if a.Caveats == nil {
		missing = append(missing, "caveats")
	}
	if a.PerDrug == nil {
		missing = append(missing, "perDrug")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("summary missing %v", missing)
	}

	if !a.RiskLevel.Valid() {
		return nil, fmt.Errorf("invalid riskLevel %q", *a.RiskLevel)
	}
	for drug, level := range *a.PerDrug {
		if !level.Valid() {
			return nil, fmt.Errorf("invalid risk level %q for %q", level, drug)
		}
	}

	return &Summary{
		RiskLevel:       *a.RiskLevel,
		Highlights:      *a.Highlights,
		Recommendations: *a.Recommendations,
		Caveats:         *a.Caveats,
		PerDrug:         *a.PerDrug,
	}, nil
}
