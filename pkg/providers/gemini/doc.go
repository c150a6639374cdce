// Package gemini is the client for Google's Gemini generateContent API.
//
// The request carries the prompt as a single user turn, an optional system
// instruction and a generationConfig with the configured temperature. The
// key travels in the x-goog-api-key header, never in the query string, so it
// cannot leak through access logs.
//
// The answer is read from candidates[0].content.parts[*].text; a response
// missing any level of that structure is a *providers.ParseError.
package gemini
