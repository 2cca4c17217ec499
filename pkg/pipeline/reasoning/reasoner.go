package reasoning

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"kinhdich-rag-be/pkg/llm"
	"kinhdich-rag-be/pkg/pipeline/citation"
	"kinhdich-rag-be/pkg/pipeline/prompt"
	"kinhdich-rag-be/pkg/pipeline/state"
	"kinhdich-rag-be/pkg/rerank"
)

// Fixed fallback answers. The reasoner never lets a failure escape: the
// user always gets one of these instead of an error.
const (
	ApologyNoContext  = "Xin lỗi, tôi không tìm thấy thông tin phù hợp."
	ApologyGeneration = "Xin lỗi, đã có lỗi xảy ra trong quá trình tạo phản hồi."
)

const fallbackConfidence = 0.1

// Random samples are picked without regard to the question, so the
// confidence of an answer built on them never rises above this ceiling.
const randomSampleCeiling = 0.3

// Combination weights: cross-encoder dominates the vector score during
// reranking; the final confidence blends candidate quality, citation
// validity and the generator's self-estimate.
const (
	crossWeight  = 0.7
	vectorWeight = 0.3

	meanScoreWeight  = 0.4
	citationWeight   = 0.3
	generationWeight = 0.3
)

type Config struct {
	TopKRerank      int
	TextPrefixRunes int
}

func DefaultConfig() Config {
	return Config{
		TopKRerank:      12,
		TextPrefixRunes: 512,
	}
}

// Reasoner reranks the retrieved candidates, generates the answer and
// post-processes citations into a final confidence-scored response.
type Reasoner struct {
	scorer    rerank.Scorer
	generator llm.Provider
	logger    *log.Logger
	cfg       Config
}

func NewReasoner(scorer rerank.Scorer, generator llm.Provider, logger *log.Logger, cfg Config) *Reasoner {
	return &Reasoner{
		scorer:    scorer,
		generator: generator,
		logger:    logger,
		cfg:       cfg,
	}
}

func (r *Reasoner) Run(ctx context.Context, s state.State) (state.State, error) {
	start := time.Now()
	out := s.Clone()

	if len(out.Documents) == 0 {
		r.logger.Printf("[REASONING] No candidates, returning apology")
		out.Answer = ApologyNoContext
		out.Confidence = fallbackConfidence
		out.Trace = append(out.Trace, "no candidates, apology response")
		return out.WithTiming("reasoning", time.Since(start)), nil
	}

	out.Reranked = r.rerankDocs(ctx, out.Query, out.Documents)
	out.Trace = append(out.Trace, fmt.Sprintf(
		"Reranked %d -> %d documents", len(out.Documents), len(out.Reranked)))

	promptText := prompt.Build(out.QueryType, out.Query, out.Reranked, out.Casting)

	raw, err := r.generator.Generate(ctx, promptText)
	if err != nil {
		r.logger.Printf("[REASONING] Generation failed: %v", err)
		out.Answer = ApologyGeneration
		out.Confidence = fallbackConfidence
		out.Trace = append(out.Trace, fmt.Sprintf("generation failed: %v", err))
		return out.WithTiming("reasoning", time.Since(start)), nil
	}

	resolved := citation.Resolve(raw, out.Reranked)
	out.Answer = resolved.Answer
	out.Citations = resolved.Valid
	out.Confidence = r.confidence(out.Reranked, resolved, raw)
	if out.Strategy == "random" && out.Confidence > randomSampleCeiling {
		out.Confidence = randomSampleCeiling
	}
	out.Trace = append(out.Trace, fmt.Sprintf(
		"Generated response with confidence: %.2f", out.Confidence))

	return out.WithTiming("reasoning", time.Since(start)), nil
}

// rerankDocs scores (query, passage-prefix) pairs with the cross-encoder
// and keeps the top K by 0.7·cross + 0.3·vector. Without a scorer, with a
// single candidate, or on scorer failure the first K pass through
// unchanged.
func (r *Reasoner) rerankDocs(ctx context.Context, query string, docs []state.Document) []state.Document {
	if r.scorer == nil || len(docs) <= 1 {
		return firstK(docs, r.cfg.TopKRerank)
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = prefixRunes(d.Content, r.cfg.TextPrefixRunes)
	}

	crossScores, err := r.scorer.Score(ctx, query, texts)
	if err != nil || len(crossScores) != len(docs) {
		r.logger.Printf("[REASONING] Reranking unavailable: %v", err)
		return firstK(docs, r.cfg.TopKRerank)
	}

	reranked := make([]state.Document, len(docs))
	for i, d := range docs {
		vectorScore := 0.0
		if d.VectorScore != nil {
			vectorScore = *d.VectorScore
		}
		combined := crossWeight*crossScores[i] + vectorWeight*vectorScore

		reranked[i] = d
		reranked[i].RerankScore = state.Float(combined)
	}

	sort.SliceStable(reranked, func(i, j int) bool {
		return *reranked[i].RerankScore > *reranked[j].RerankScore
	})

	return firstK(reranked, r.cfg.TopKRerank)
}

func (r *Reasoner) confidence(docs []state.Document, resolved citation.Result, raw string) float64 {
	var sum float64
	for _, d := range docs {
		sum += d.RelevanceScore()
	}
	meanScore := 0.0
	if len(docs) > 0 {
		meanScore = sum / float64(len(docs))
	}

	citationRatio := 0.0
	if resolved.Total > 0 {
		citationRatio = float64(len(resolved.Valid)) / float64(resolved.Total)
	}

	expectedCode := ""
	if len(docs) > 0 {
		expectedCode = docs[0].EntryCode
	}
	generationConfidence := llm.ScoreResponse(raw, expectedCode)

	confidence := meanScoreWeight*meanScore +
		citationWeight*citationRatio +
		generationWeight*generationConfidence

	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

func firstK(docs []state.Document, k int) []state.Document {
	if len(docs) <= k {
		return docs
	}
	return docs[:k]
}

func prefixRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
