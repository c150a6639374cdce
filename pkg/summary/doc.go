// Package summary produces drug-interaction summaries from the generative
// text provider.
//
// A call runs: mock short-circuit, prompt derivation (DerivePrompt),
// configuration check, one Gemini call, error mapping, extraction of the
// JSON object embedded in the answer (ExtractJSONBlock) and schema
// validation (ParseSummary). Answers that fail validation are reported as
// 502 "invalid_ai_json"; they are never coerced.
package summary
