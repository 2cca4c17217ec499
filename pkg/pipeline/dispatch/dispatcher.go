package dispatch

import (
	"context"
	"log"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"kinhdich-rag-be/pkg/embedding"
	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/pipeline/state"
)

// acceptThreshold is the minimum cosine similarity for the embedding
// fallback to accept a category instead of defaulting to general.
const acceptThreshold = 0.3

// entrySpecificRe spots a direct "quẻ <name>" ask. Manual boundary on the
// left because \b does not understand accented letters.
var entrySpecificRe = regexp.MustCompile(`(^|[^\p{L}])(quẻ|que)\s+\p{L}`)

// Rule order matters: divination, then entry-specific, then philosophy.
// Single words are matched whole-word, multi-word phrases by substring.
var (
	divinationPhrases = []string{"tôi được", "tôi gieo", "ngửa", "úp", "lời khuyên", "tư vấn"}
	philosophyPhrases = []string{"triết lý", "được hiểu như thế nào", "ý nghĩa của", "âm dương"}
)

// Keyword templates used to build one reference embedding per category for
// the fallback pass.
var fallbackTemplates = map[state.QueryType]string{
	state.QueryDivination: "tôi gieo được lời khuyên tư vấn đồng xu ngửa úp gieo quẻ bói toán",
	state.QueryPhilosophy: "triết lý được hiểu như thế nào ý nghĩa của âm dương ngũ hành trong kinh dịch",
	state.QueryGeneral:    "kinh dịch dịch học văn hóa đông phương",
}

// fallbackOrder fixes tie-breaking: earlier categories win equal
// similarities.
var fallbackOrder = []state.QueryType{
	state.QueryDivination,
	state.QueryPhilosophy,
	state.QueryGeneral,
}

// Dispatcher classifies the query. It only writes QueryType and one trace
// entry; everything else passes through untouched.
type Dispatcher struct {
	embedder embedding.Provider
	logger   *log.Logger

	mu           sync.Mutex
	templateVecs map[state.QueryType][]float32
}

func NewDispatcher(embedder embedding.Provider, logger *log.Logger) *Dispatcher {
	return &Dispatcher{
		embedder: embedder,
		logger:   logger,
	}
}

func (d *Dispatcher) Run(ctx context.Context, s state.State) (state.State, error) {
	start := time.Now()
	query := strings.ToLower(strings.TrimSpace(s.Query))

	queryType, matched := classifyByRules(query)
	via := "rules"
	if !matched {
		queryType = d.classifyByEmbedding(ctx, query)
		via = "embedding"
	}

	d.logger.Printf("[DISPATCH] Query classified as %s (via %s)", queryType, via)

	out := s.WithTrace("Query classified as: " + string(queryType))
	out.QueryType = queryType
	return out.WithTiming("dispatch", time.Since(start)), nil
}

func classifyByRules(query string) (state.QueryType, bool) {
	switch {
	case matchAny(query, divinationPhrases):
		return state.QueryDivination, true
	case entrySpecificRe.MatchString(query):
		return state.QueryEntrySpecific, true
	case matchAny(query, philosophyPhrases):
		return state.QueryPhilosophy, true
	}
	return state.QueryUnset, false
}

func matchAny(query string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(phrase, " ") {
			if strings.Contains(query, phrase) {
				return true
			}
		} else if lexicon.ContainsWholeWord(query, phrase) {
			return true
		}
	}
	return false
}

func (d *Dispatcher) classifyByEmbedding(ctx context.Context, query string) state.QueryType {
	if d.embedder == nil {
		return state.QueryGeneral
	}

	queryVec, err := d.embedder.Embed(ctx, query, embedding.TaskQuery)
	if err != nil {
		d.logger.Printf("[DISPATCH] Embedding fallback unavailable: %v", err)
		return state.QueryGeneral
	}

	vecs := d.templates(ctx)
	best := state.QueryGeneral
	bestSim := 0.0
	for _, queryType := range fallbackOrder {
		vec, ok := vecs[queryType]
		if !ok {
			continue
		}
		sim := cosine(queryVec, vec)
		if sim > bestSim {
			bestSim = sim
			best = queryType
		}
	}

	if bestSim <= acceptThreshold {
		return state.QueryGeneral
	}
	return best
}

// templates lazily embeds the category keyword templates once and reuses
// the vectors for the lifetime of the dispatcher.
func (d *Dispatcher) templates(ctx context.Context) map[state.QueryType][]float32 {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.templateVecs != nil {
		return d.templateVecs
	}

	vecs := make(map[state.QueryType][]float32, len(fallbackTemplates))
	for _, queryType := range fallbackOrder {
		template := fallbackTemplates[queryType]
		vec, err := d.embedder.Embed(ctx, template, embedding.TaskDocument)
		if err != nil {
			d.logger.Printf("[DISPATCH] Failed to embed template for %s: %v", queryType, err)
			return vecs
		}
		vecs[queryType] = vec
	}
	d.templateVecs = vecs
	return vecs
}

func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
