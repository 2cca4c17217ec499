package executor

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"kinhdich-rag-be/pkg/pipeline/state"
)

const (
	maxSources   = 10
	previewRunes = 150
)

// StoreUnreachableAnswer is returned when the document store could not be
// reached on the very first retrieval attempt — the only failure the
// pipeline reports as unsuccessful.
const StoreUnreachableAnswer = "Xin lỗi, hệ thống dữ liệu đang gặp sự cố. Vui lòng thử lại sau."

// Stage is one pipeline step: it derives a new state from its input.
type Stage interface {
	Run(ctx context.Context, s state.State) (state.State, error)
}

// Source is one answer provenance entry.
type Source struct {
	Rank           int       `json:"rank"`
	PassageID      uuid.UUID `json:"passage_id"`
	EntryCode      string    `json:"entry_code"`
	ContentType    string    `json:"content_type"`
	RelevanceScore float64   `json:"relevance_score"`
	TextPreview    string    `json:"text_preview"`
}

// Result is the assembled pipeline outcome for one question.
type Result struct {
	Answer       string           `json:"answer"`
	QueryType    string           `json:"query_type"`
	Entities     []state.Entity   `json:"entities"`
	Senses       []state.Sense    `json:"senses"`
	Strategy     string           `json:"strategy"`
	Confidence   float64          `json:"confidence"`
	Sources      []Source         `json:"sources"`
	Trace        []string         `json:"trace"`
	StageTimings map[string]int64 `json:"stage_timings_ms"`
	Success      bool             `json:"success"`
}

// StageStats is the aggregate view of one stage across all requests
// handled by this process.
type StageStats struct {
	Runs      int64   `json:"runs"`
	Failures  int64   `json:"failures"`
	AvgMillis float64 `json:"avg_ms"`
}

type stageAccum struct {
	runs     int64
	failures int64
	total    time.Duration
}

// Pipeline chains the four stages over one immutable state per request.
// Stages run strictly in order; a stage only ever sees the previous
// stage's completed output.
type Pipeline struct {
	dispatcher  Stage
	linguistics Stage
	retriever   Stage
	reasoner    Stage
	logger      *log.Logger

	mu    sync.Mutex
	stats map[string]*stageAccum
}

func NewPipeline(dispatcher, linguistics, retriever, reasoner Stage, logger *log.Logger) *Pipeline {
	return &Pipeline{
		dispatcher:  dispatcher,
		linguistics: linguistics,
		retriever:   retriever,
		reasoner:    reasoner,
		logger:      logger,
		stats:       make(map[string]*stageAccum),
	}
}

// Execute runs the full pipeline for one query. Only a store-connectivity
// failure on the first retrieval attempt yields Success=false; every other
// failure degrades inside its stage.
func (p *Pipeline) Execute(ctx context.Context, query string, casting *state.CastingContext) (*Result, error) {
	start := time.Now()
	s := state.New(query, casting)

	p.logger.Printf("[PIPELINE] Starting execution for query: %s", truncate(query, 50))

	// ═══════════════════════════════════════════════════════════════
	// STAGE 1: DISPATCH (classification)
	// ═══════════════════════════════════════════════════════════════
	s, err := p.runStage(ctx, "dispatch", p.dispatcher, s)
	if err != nil {
		return p.failure(s, err), err
	}

	// ═══════════════════════════════════════════════════════════════
	// STAGE 2: LINGUISTICS (entities, senses, expansion)
	// ═══════════════════════════════════════════════════════════════
	s, err = p.runStage(ctx, "linguistics", p.linguistics, s)
	if err != nil {
		return p.failure(s, err), err
	}

	// ═══════════════════════════════════════════════════════════════
	// STAGE 3: RETRIEVAL (six-strategy cascade)
	// ═══════════════════════════════════════════════════════════════
	s, err = p.runStage(ctx, "retrieval", p.retriever, s)
	if err != nil {
		p.logger.Printf("[ERROR] Retrieval failed fatally: %v", err)
		return p.failure(s, err), err
	}

	// ═══════════════════════════════════════════════════════════════
	// STAGE 4: REASONING (rerank, generate, cite, score)
	// ═══════════════════════════════════════════════════════════════
	s, err = p.runStage(ctx, "reasoning", p.reasoner, s)
	if err != nil {
		return p.failure(s, err), err
	}

	s = s.WithTiming("total", time.Since(start))
	result := assemble(s)

	p.logger.Printf("[PIPELINE] Done: strategy=%s confidence=%.2f sources=%d",
		result.Strategy, result.Confidence, len(result.Sources))
	return result, nil
}

func (p *Pipeline) runStage(ctx context.Context, name string, stage Stage, s state.State) (state.State, error) {
	start := time.Now()
	out, err := stage.Run(ctx, s)
	p.record(name, time.Since(start), err)
	return out, err
}

func (p *Pipeline) record(stage string, elapsed time.Duration, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	acc, ok := p.stats[stage]
	if !ok {
		acc = &stageAccum{}
		p.stats[stage] = acc
	}
	acc.runs++
	acc.total += elapsed
	if err != nil {
		acc.failures++
	}
}

// Stats snapshots the aggregate per-stage counters since process start.
func (p *Pipeline) Stats() map[string]StageStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]StageStats, len(p.stats))
	for name, acc := range p.stats {
		out[name] = StageStats{
			Runs:      acc.runs,
			Failures:  acc.failures,
			AvgMillis: float64(acc.total.Milliseconds()) / float64(acc.runs),
		}
	}
	return out
}

func (p *Pipeline) failure(s state.State, err error) *Result {
	return &Result{
		Answer:       StoreUnreachableAnswer,
		QueryType:    string(s.QueryType),
		Entities:     s.Entities,
		Senses:       s.Senses,
		Trace:        append(s.Trace, fmt.Sprintf("fatal: %v", err)),
		StageTimings: timingsMillis(s.Timings),
		Success:      false,
	}
}

func assemble(s state.State) *Result {
	docs := s.Reranked
	if len(docs) == 0 {
		docs = s.Documents
	}

	sources := make([]Source, 0, maxSources)
	for i, d := range docs {
		if i == maxSources {
			break
		}
		sources = append(sources, Source{
			Rank:           i + 1,
			PassageID:      d.ID,
			EntryCode:      d.EntryCode,
			ContentType:    d.ContentType,
			RelevanceScore: d.RelevanceScore(),
			TextPreview:    preview(d.Content),
		})
	}

	return &Result{
		Answer:       s.Answer,
		QueryType:    string(s.QueryType),
		Entities:     s.Entities,
		Senses:       s.Senses,
		Strategy:     s.Strategy,
		Confidence:   s.Confidence,
		Sources:      sources,
		Trace:        s.Trace,
		StageTimings: timingsMillis(s.Timings),
		Success:      s.Answer != "",
	}
}

func timingsMillis(timings []state.StageTiming) map[string]int64 {
	out := make(map[string]int64, len(timings))
	for _, t := range timings {
		out[t.Stage] = t.Duration.Milliseconds()
	}
	return out
}

func preview(text string) string {
	return truncate(text, previewRunes)
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
