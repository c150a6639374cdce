package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"interpill/gateway/pkg/providers/gemini"
	"interpill/gateway/pkg/proxy/types"
)

// SystemInstruction tells the model to answer with one Summary object.
const SystemInstruction = `You are a clinical pharmacology assistant for the Interpill app.
Assess the drug interactions described by the user and answer with a single JSON object and nothing else:
{"riskLevel": "low|moderate|high", "highlights": [string], "recommendations": [string], "caveats": [string], "perDrug": {"<drug name>": "low|moderate|high"}}
Use only the lowercase values low, moderate or high for riskLevel and every perDrug value.
Use empty arrays and an empty object when there is nothing to say. Do not give a diagnosis.`

// promptKeys are tried in order; the first present wins.
var promptKeys = []string{"prompt", "text", "message"}

// DerivePrompt turns a raw request body into a Request.
//
// A JSON object body supplies the prompt through its "prompt", "text" or
// "message" member, in that order, plus optional "drugs" and "profile"
// members. Any other body, including JSON that is not an object, is the
// prompt verbatim. Blank prompts are rejected.
func DerivePrompt(raw []byte) (*Request, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, types.NewValidationError(types.MsgMissingFields)
	}

	if trimmed[0] != '{' || !json.Valid(trimmed) {
		return &Request{Prompt: string(trimmed)}, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, badJSON(err)
	}

	req := &Request{}
	found := false
	for _, key := range promptKeys {
		value, ok := fields[key]
		if !ok {
			continue
		}
		found = true
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, badJSON(fmt.Errorf("%s is not a string: %w", key, err))
		}
		req.Prompt = strings.TrimSpace(s)
		break
	}
	if !found || req.Prompt == "" {
		return nil, types.NewValidationError(types.MsgMissingFields)
	}

	if value, ok := fields["drugs"]; ok && !isNull(value) {
		if err := json.Unmarshal(value, &req.Drugs); err != nil {
			return nil, badJSON(fmt.Errorf("drugs: %w", err))
		}
	}
	if value, ok := fields["profile"]; ok && !isNull(value) {
		var p PatientProfile
		if err := json.Unmarshal(value, &p); err != nil {
			return nil, badJSON(fmt.Errorf("profile: %w", err))
		}
		req.Profile = &p
	}

	return req, nil
}

// BuildPrompt renders a Request as the Gemini prompt.
func BuildPrompt(req *Request) gemini.Prompt {
	var sb strings.Builder
	sb.WriteString(req.Prompt)

	var drugs []string
	for _, d := range req.Drugs {
		if d = strings.TrimSpace(d); d != "" {
			drugs = append(drugs, d)
		}
	}
	if len(drugs) > 0 {
		sb.WriteString("\n\nDrugs: ")
		sb.WriteString(strings.Join(drugs, ", "))
	}

	if lines := req.Profile.lines(); len(lines) > 0 {
		sb.WriteString("\n\nPatient profile:")
		for _, l := range lines {
			sb.WriteString("\n- ")
			sb.WriteString(l)
		}
	}

	return gemini.Prompt{
		System: SystemInstruction,
		User:   sb.String(),
	}
}

func (p *PatientProfile) lines() []string {
	if p == nil {
		return nil
	}

	var out []string
	if p.Age != nil {
		out = append(out, "age: "+strconv.Itoa(*p.Age))
	}
	if s := strings.TrimSpace(p.Sex); s != "" {
		out = append(out, "sex: "+s)
	}
	if p.Pregnant != nil {
		out = append(out, "pregnant: "+strconv.FormatBool(*p.Pregnant))
	}
	if len(p.Conditions) > 0 {
		out = append(out, "conditions: "+strings.Join(p.Conditions, ", "))
	}
	if len(p.Allergies) > 0 {
		out = append(out, "allergies: "+strings.Join(p.Allergies, ", "))
	}
	return out
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func badJSON(cause error) *types.GatewayError {
	return &types.GatewayError{
		Kind:    types.KindValidation,
		Message: types.MsgBadJSON,
		Cause:   cause,
	}
}
