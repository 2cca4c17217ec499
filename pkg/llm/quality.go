package llm

import (
	"regexp"
	"strings"
)

var citationMarkerRe = regexp.MustCompile(`\[\d+\]`)

// culturalKeywords are terms whose presence suggests the model stayed on
// topic for this corpus instead of producing a generic answer.
var culturalKeywords = []string{
	"âm dương",
	"thiên địa",
	"ngũ hành",
	"quẻ",
	"triết lý",
}

// ScoreResponse estimates how trustworthy a generated answer looks, as a
// value in [0,1]. Heuristic only: length, on-topic vocabulary, reuse of the
// expected entry code and citation markers each add to a 0.5 baseline.
func ScoreResponse(response, expectedCode string) float64 {
	score := 0.5

	if len([]rune(response)) > 100 {
		score += 0.1
	}

	if expectedCode != "" && strings.Contains(response, expectedCode) {
		score += 0.2
	}

	lower := strings.ToLower(response)
	for _, kw := range culturalKeywords {
		if strings.Contains(lower, kw) {
			score += 0.1
			break
		}
	}

	if citationMarkerRe.MatchString(response) {
		score += 0.1
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
