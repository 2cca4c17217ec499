package linguistics

import (
	"strings"

	"kinhdich-rag-be/pkg/pipeline/state"
)

// Sense labels for ambiguous words.
const (
	SenseEntry      = "entry"
	SensePhilosophy = "philosophy"
	SenseGeneral    = "general"
)

// confidenceCeiling normalizes a winning score into [0,1].
const confidenceCeiling = 5.0

// ambiguousWords are terms whose meaning depends on context: most are both
// a hexagram name and an everyday word.
var ambiguousWords = []string{
	"lý", "ly", "cách", "hàm", "thái", "giải", "âm dương", "triết lý",
}

// Context keyword sets. Each keyword found in the query adds two points to
// its sense.
var senseKeywords = map[string][]string{
	SenseEntry:      {"quẻ", "kinh dịch", "dịch học", "64 quẻ", "bát quẻ", "hexagram"},
	SensePhilosophy: {"triết lý", "lý thuyết", "học thuyết", "tư tưởng", "philosophy", "nguyên lý"},
	SenseGeneral:    {"giải thích", "phân tích", "so sánh", "nghiên cứu"},
}

// senseOrder fixes tie-breaking: earlier senses win equal scores.
var senseOrder = []string{SenseEntry, SensePhilosophy, SenseGeneral}

// disambiguate scores the three senses of each ambiguous word present in
// the query and returns the winner per word with a normalized confidence.
func disambiguate(query string, entities []state.Entity) []state.Sense {
	lower := strings.ToLower(query)

	var results []state.Sense
	for _, word := range ambiguousWords {
		if !strings.Contains(lower, word) {
			continue
		}
		results = append(results, scoreWord(word, lower, len(entities) > 0))
	}
	return results
}

func scoreWord(word, lower string, hasEntities bool) state.Sense {
	scores := map[string]int{
		SenseEntry:      0,
		SensePhilosophy: 0,
		SenseGeneral:    0,
	}

	for sense, keywords := range senseKeywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				scores[sense] += 2
			}
		}
	}

	if hasEntities {
		scores[SenseEntry] += 3
	}

	switch word {
	case "lý":
		if strings.Contains(lower, "triết lý") || strings.Contains(lower, "lý thuyết") {
			scores[SensePhilosophy] += 5
		} else if strings.Contains(lower, "quẻ") {
			scores[SenseEntry] += 3
		}
	case "âm dương":
		scores[SensePhilosophy] += 4
	case "triết lý":
		scores[SensePhilosophy] += 5
	}

	best := SenseGeneral
	bestScore := -1
	for _, sense := range senseOrder {
		if scores[sense] > bestScore {
			bestScore = scores[sense]
			best = sense
		}
	}

	confidence := float64(bestScore) / confidenceCeiling
	if confidence > 1.0 {
		confidence = 1.0
	}

	return state.Sense{Word: word, Sense: best, Confidence: confidence}
}
