package summary

// MockSummary returns the canned summary served in mock mode. Each call
// returns a fresh value.
func MockSummary() *Summary {
	return &Summary{
		RiskLevel:       RiskLow,
		Highlights:      []string{},
		Recommendations: []string{},
		Caveats:         []string{},
		PerDrug:         map[string]RiskLevel{"paracetamol": RiskLow},
	}
}
