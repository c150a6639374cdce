package summary

import (
	"regexp"
	"strings"
)

var fencedJSON = regexp.MustCompile("(?is)```json\\s*(.*?)```")

// ExtractJSONBlock returns the JSON object most likely embedded in text.
//
// A fenced block opened by ```json (any case) wins and its trimmed interior
// is returned. Otherwise the span from the first '{' to the last '}' is
// returned when the first precedes the last. The result is not checked for
// syntax.
func ExtractJSONBlock(text string) (string, bool) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1]), true
	}

	first := strings.IndexByte(text, '{')
	last := strings.LastIndexByte(text, '}')
	if first >= 0 && last > first {
		return text[first : last+1], true
	}

	return "", false
}
