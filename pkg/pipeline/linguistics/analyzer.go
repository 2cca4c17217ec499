package linguistics

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/pipeline/state"
)

// expansionConfidence gates sense-based expansion terms.
const expansionConfidence = 0.6

// Extra terms appended when a word resolves to its philosophy sense with
// enough confidence.
var senseExpansions = map[string][]string{
	"âm dương": {"yin_yang", "duality", "balance"},
	"triết lý": {"philosophy", "theory", "doctrine"},
}

// Analyzer runs entity detection, word sense disambiguation and query
// expansion. It owns Entities, Senses and ExpandedQuery on the state.
type Analyzer struct {
	lex    *lexicon.Lexicon
	logger *log.Logger
}

func NewAnalyzer(lex *lexicon.Lexicon, logger *log.Logger) *Analyzer {
	return &Analyzer{lex: lex, logger: logger}
}

func (a *Analyzer) Run(ctx context.Context, s state.State) (state.State, error) {
	start := time.Now()

	entities := detectEntities(s.Query)
	senses := disambiguate(s.Query, entities)
	expanded := a.expand(s.Query, entities, senses)

	a.logger.Printf("[LINGUISTICS] %d entities, %d senses, expansion +%d terms",
		len(entities), len(senses),
		len(strings.Fields(expanded))-len(strings.Fields(s.Query)))

	out := s.WithTrace(fmt.Sprintf(
		"Linguistics: %d entities, %d disambiguated words, expanded to %d terms",
		len(entities), len(senses), len(strings.Fields(expanded))))
	out.Entities = entities
	out.Senses = senses
	out.ExpandedQuery = expanded
	return out.WithTiming("linguistics", time.Since(start)), nil
}

func detectEntities(query string) []state.Entity {
	hits := lexicon.DetectNames(query)
	entities := make([]state.Entity, len(hits))
	for i, h := range hits {
		entities[i] = state.Entity{Text: h.Name, Code: h.Code, Explicit: h.Explicit}
	}
	return entities
}

// expand is strictly additive: the result always starts with the original
// query, followed by concept synonyms, sense-based terms and the canonical
// code of every detected entity.
func (a *Analyzer) expand(query string, entities []state.Entity, senses []state.Sense) string {
	terms := []string{query}

	for _, e := range entities {
		terms = append(terms, a.lex.ConceptSynonyms(e.Code, 3)...)
	}

	for _, sense := range senses {
		if sense.Confidence <= expansionConfidence || sense.Sense != SensePhilosophy {
			continue
		}
		terms = append(terms, senseExpansions[sense.Word]...)
	}

	for _, e := range entities {
		terms = append(terms, e.Code)
	}

	return strings.Join(terms, " ")
}
