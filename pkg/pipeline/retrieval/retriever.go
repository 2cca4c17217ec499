package retrieval

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"kinhdich-rag-be/pkg/cache"
	"kinhdich-rag-be/pkg/embedding"
	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/pipeline/state"
)

// Store is the read-only document store boundary consumed by the cascade.
type Store interface {
	FindByEntryCode(ctx context.Context, code string, limit int) ([]state.Document, error)
	SearchSimilar(ctx context.Context, vec []float32, limit int, minScore float64) ([]state.Document, error)
	SearchFullText(ctx context.Context, query string, limit int) ([]state.Document, error)
	RandomSample(ctx context.Context, n int) ([]state.Document, error)
}

// Config carries the retrieval tunables.
type Config struct {
	TopK                int
	SimilarityThreshold float64
	FuzzyThreshold      float64
	CodeTTL             time.Duration
	QueryTTL            time.Duration
	StopWords           []string
}

// DefaultConfig matches the historical operating points: the similarity
// threshold has run anywhere from 0.25 to 0.5 across deployments, 0.25 is
// the default.
func DefaultConfig() Config {
	return Config{
		TopK:                20,
		SimilarityThreshold: 0.25,
		FuzzyThreshold:      0.80,
		CodeTTL:             10 * time.Minute,
		QueryTTL:            5 * time.Minute,
		StopWords:           defaultStopWords,
	}
}

// defaultStopWords are excluded from the full-text search input. "quẻ" is
// on the list because nearly every query contains it.
var defaultStopWords = []string{
	"và", "là", "của", "cho", "trong", "một", "các", "đã", "với", "không",
	"có", "này", "để", "cũng", "thì", "như", "lại", "nếu", "sẽ", "được",
	"về", "từ", "theo", "tại", "hay", "hoặc", "khi", "đến", "ra", "up",
	"quẻ", "que", "gì",
}

// randomSampleSize caps the last-resort strategy.
func (c Config) randomSampleSize() int {
	if c.TopK < 5 {
		return c.TopK
	}
	return 5
}

// Retriever runs the six-strategy cascade. The first strategy producing a
// non-empty result wins; later strategies are never invoked. It never
// returns an empty list while the store has documents, because the random
// sample floor always fires.
type Retriever struct {
	store    Store
	embedder embedding.Provider
	cache    cache.Cache
	lex      *lexicon.Lexicon
	logger   *log.Logger
	cfg      Config
}

func NewRetriever(store Store, embedder embedding.Provider, c cache.Cache, lex *lexicon.Lexicon, logger *log.Logger, cfg Config) *Retriever {
	return &Retriever{
		store:    store,
		embedder: embedder,
		cache:    c,
		lex:      lex,
		logger:   logger,
		cfg:      cfg,
	}
}

// run-scoped bookkeeping: only a store failure on the very first store
// call of a request is fatal; later failures degrade to the next strategy.
type attempt struct {
	storeCalls int
}

func (a *attempt) fatal(err error) bool {
	return a.storeCalls == 1 && err != nil
}

func (r *Retriever) Run(ctx context.Context, s state.State) (state.State, error) {
	start := time.Now()
	query := s.EffectiveQuery()
	att := &attempt{}

	type strategy struct {
		name string
		fn   func() ([]state.Document, string, error)
	}

	strategies := []strategy{
		{"casting", func() ([]state.Document, string, error) { return r.byCasting(ctx, s, att) }},
		{"concept", func() ([]state.Document, string, error) { return r.byConcept(ctx, query, att) }},
		{"entity", func() ([]state.Document, string, error) { return r.byEntity(ctx, s, att) }},
		{"semantic", func() ([]state.Document, string, error) { return r.bySemantic(ctx, query, att) }},
		{"text", func() ([]state.Document, string, error) { return r.byText(ctx, query, att) }},
	}

	out := s.Clone()
	for _, st := range strategies {
		docs, trace, err := st.fn()
		if err != nil {
			if att.fatal(err) {
				return s, fmt.Errorf("document store unreachable: %w", err)
			}
			r.logger.Printf("[RETRIEVAL] %s failed: %v", st.name, err)
			out.Trace = append(out.Trace, fmt.Sprintf("%s strategy failed: %v", st.name, err))
			continue
		}
		if len(docs) == 0 {
			continue
		}

		r.logger.Printf("[RETRIEVAL] %s hit with %d docs", st.name, len(docs))
		out.Strategy = st.name
		out.Documents = docs
		out.Trace = append(out.Trace, trace)
		return out.WithTiming("retrieval", time.Since(start)), nil
	}

	docs, err := r.store.RandomSample(ctx, r.cfg.randomSampleSize())
	att.storeCalls++
	if err != nil {
		if att.fatal(err) {
			return s, fmt.Errorf("document store unreachable: %w", err)
		}
		r.logger.Printf("[RETRIEVAL] random sample failed: %v", err)
		docs = nil
	}

	r.logger.Printf("[RETRIEVAL] no strategy matched, random sample of %d docs", len(docs))
	out.Strategy = "random"
	out.Documents = docs
	out.Trace = append(out.Trace, fmt.Sprintf("no-match, random sample %d docs", len(docs)))
	return out.WithTiming("retrieval", time.Since(start)), nil
}

// 1. Casting-context priority: the upstream caster supplies a display
// name; it is validated through the name table, never trusted blindly.
func (r *Retriever) byCasting(ctx context.Context, s state.State, att *attempt) ([]state.Document, string, error) {
	if s.Casting == nil || s.Casting.Name == "" {
		return nil, "", nil
	}
	code, ok := lexicon.NameToCode(s.Casting.Name)
	if !ok {
		return nil, "", nil
	}
	docs, err := r.docsByCode(ctx, code, att)
	if err != nil {
		return nil, "", err
	}
	return docs, fmt.Sprintf("PRIORITY: cast entry %s → %s (%d docs)", s.Casting.Name, code, len(docs)), nil
}

// 2. Concept lexicon: exact keyword substring first, fuzzy second.
func (r *Retriever) byConcept(ctx context.Context, query string, att *attempt) ([]state.Document, string, error) {
	code, keyword, ok := r.lex.DetectExact(query)
	if !ok {
		code, keyword, _, ok = r.lex.DetectFuzzy(query, r.cfg.FuzzyThreshold)
	}
	if !ok {
		return nil, "", nil
	}
	docs, err := r.docsByCode(ctx, code, att)
	if err != nil {
		return nil, "", err
	}
	return docs, fmt.Sprintf("concept %q → %s (%d docs)", keyword, code, len(docs)), nil
}

// 3. Explicit entity: only when the classifier or the resolver saw an
// entry mention. Name detection on the raw query wins over the recorded
// mention strings.
func (r *Retriever) byEntity(ctx context.Context, s state.State, att *attempt) ([]state.Document, string, error) {
	if s.QueryType != state.QueryEntrySpecific && len(s.Entities) == 0 {
		return nil, "", nil
	}

	code := ""
	if hits := lexicon.DetectNames(s.Query); len(hits) > 0 {
		code = hits[0].Code
	}
	if code == "" {
		for _, e := range s.Entities {
			if c, ok := lexicon.NameToCode(e.Text); ok {
				code = c
				break
			}
		}
	}
	if code == "" {
		return nil, "", nil
	}

	docs, err := r.docsByCode(ctx, code, att)
	if err != nil {
		return nil, "", err
	}
	return docs, fmt.Sprintf("entry-specific %s (%d docs)", code, len(docs)), nil
}

// 4. Vector similarity over the passage embedding index.
func (r *Retriever) bySemantic(ctx context.Context, query string, att *attempt) ([]state.Document, string, error) {
	key := "sem:" + query
	if docs, ok := r.cached(ctx, key); ok {
		return docs, fmt.Sprintf("semantic (cached) %d docs", len(docs)), nil
	}

	vec, err := r.embedder.Embed(ctx, query, embedding.TaskQuery)
	if err != nil {
		return nil, "", fmt.Errorf("embed query: %w", err)
	}

	docs, err := r.store.SearchSimilar(ctx, vec, r.cfg.TopK, r.cfg.SimilarityThreshold)
	att.storeCalls++
	if err != nil {
		return nil, "", err
	}

	r.put(ctx, key, docs, r.cfg.QueryTTL)
	return docs, fmt.Sprintf("semantic %d docs", len(docs)), nil
}

// 5. Full-text keyword search over the stop-word-stripped query.
func (r *Retriever) byText(ctx context.Context, query string, att *attempt) ([]state.Document, string, error) {
	search := stripStopWords(query, r.cfg.StopWords)
	if search == "" {
		search = query
	}

	key := "txt:" + search
	if docs, ok := r.cached(ctx, key); ok {
		return docs, fmt.Sprintf("text (cached) %d docs", len(docs)), nil
	}

	docs, err := r.store.SearchFullText(ctx, search, r.cfg.TopK)
	att.storeCalls++
	if err != nil {
		return nil, "", err
	}

	r.put(ctx, key, docs, r.cfg.QueryTTL)
	return docs, fmt.Sprintf("text %d docs", len(docs)), nil
}

func (r *Retriever) docsByCode(ctx context.Context, code string, att *attempt) ([]state.Document, error) {
	key := "code:" + code
	if docs, ok := r.cached(ctx, key); ok {
		return docs, nil
	}

	docs, err := r.store.FindByEntryCode(ctx, code, r.cfg.TopK)
	att.storeCalls++
	if err != nil {
		return nil, err
	}

	r.put(ctx, key, docs, r.cfg.CodeTTL)
	return docs, nil
}

func stripStopWords(query string, stopWords []string) string {
	if len(stopWords) == 0 {
		return query
	}
	stop := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		stop[w] = struct{}{}
	}
	var kept []string
	for _, w := range strings.Fields(query) {
		if _, ok := stop[strings.ToLower(w)]; ok {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

func (r *Retriever) cached(ctx context.Context, key string) ([]state.Document, bool) {
	if r.cache == nil {
		return nil, false
	}
	var docs []state.Document
	found, err := r.cache.Get(ctx, key, &docs)
	if err != nil {
		r.logger.Printf("[RETRIEVAL] cache read %s: %v", key, err)
		return nil, false
	}
	return docs, found && len(docs) > 0
}

func (r *Retriever) put(ctx context.Context, key string, docs []state.Document, ttl time.Duration) {
	if r.cache == nil || len(docs) == 0 {
		return
	}
	if err := r.cache.Set(ctx, key, docs, ttl); err != nil {
		r.logger.Printf("[RETRIEVAL] cache write %s: %v", key, err)
	}
}
