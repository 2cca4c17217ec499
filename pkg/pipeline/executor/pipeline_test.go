package executor

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinhdich-rag-be/pkg/pipeline/state"
)

type stageFunc func(ctx context.Context, s state.State) (state.State, error)

func (f stageFunc) Run(ctx context.Context, s state.State) (state.State, error) {
	return f(ctx, s)
}

func passthrough(ctx context.Context, s state.State) (state.State, error) {
	return s, nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestExecuteHappyPath(t *testing.T) {
	docID := uuid.New()

	dispatcher := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		out := s.Clone()
		out.QueryType = state.QueryPhilosophy
		return out.WithTiming("dispatch", 2*time.Millisecond), nil
	})
	linguistics := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		out := s.Clone()
		out.Entities = []state.Entity{{Text: "Càn", Code: "QUE_KIEN", Explicit: true}}
		return out.WithTiming("linguistics", 1*time.Millisecond), nil
	})
	retriever := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		out := s.Clone()
		out.Strategy = "semantic"
		out.Documents = []state.Document{
			{ID: docID, EntryCode: "QUE_KIEN", ContentType: "philosophy", Content: "Càn vi thiên.", VectorScore: state.Float(0.8)},
		}
		return out.WithTiming("retrieval", 10*time.Millisecond), nil
	})
	reasoner := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		out := s.Clone()
		out.Reranked = cloneWithRerank(out.Documents, 0.95)
		out.Answer = "Càn tượng trưng cho trời. [1]"
		out.Citations = []int{1}
		out.Confidence = 0.82
		return out.WithTiming("reasoning", 20*time.Millisecond), nil
	})

	p := NewPipeline(dispatcher, linguistics, retriever, reasoner, testLogger())
	result, err := p.Execute(context.Background(), "quẻ Càn nghĩa là gì", nil)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, "philosophy", result.QueryType)
	assert.Equal(t, "semantic", result.Strategy)
	assert.Equal(t, 0.82, result.Confidence)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, 1, result.Sources[0].Rank)
	assert.Equal(t, docID, result.Sources[0].PassageID)
	assert.Equal(t, 0.95, result.Sources[0].RelevanceScore)
	assert.Equal(t, "Càn vi thiên.", result.Sources[0].TextPreview)

	for _, stage := range []string{"dispatch", "linguistics", "retrieval", "reasoning", "total"} {
		_, ok := result.StageTimings[stage]
		assert.True(t, ok, "missing timing for %s", stage)
	}
}

func TestExecuteRetrievalFatal(t *testing.T) {
	storeErr := errors.New("document store unreachable: dial tcp: connection refused")

	retriever := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		return s, storeErr
	})

	p := NewPipeline(stageFunc(passthrough), stageFunc(passthrough), retriever, stageFunc(passthrough), testLogger())
	result, err := p.Execute(context.Background(), "quẻ Càn", nil)

	require.Error(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, StoreUnreachableAnswer, result.Answer)
	require.NotEmpty(t, result.Trace)
	assert.Contains(t, result.Trace[len(result.Trace)-1], "document store unreachable")
}

func TestAssembleCapsSourcesAtTen(t *testing.T) {
	var docs []state.Document
	for i := 0; i < 15; i++ {
		docs = append(docs, state.Document{
			ID:        uuid.New(),
			EntryCode: "QUE_KIEN",
			Content:   "nội dung",
		})
	}
	s := state.New("q", nil)
	s.Answer = "đáp án"
	s.Reranked = docs

	result := assemble(s)
	assert.Len(t, result.Sources, maxSources)
	assert.Equal(t, 10, result.Sources[9].Rank)
}

func TestAssembleFallsBackToRetrievedDocuments(t *testing.T) {
	s := state.New("q", nil)
	s.Answer = "đáp án"
	s.Documents = []state.Document{{ID: uuid.New(), Content: "văn bản", VectorScore: state.Float(0.5)}}

	result := assemble(s)
	require.Len(t, result.Sources, 1)
	assert.Equal(t, 0.5, result.Sources[0].RelevanceScore)
}

func TestPreviewTruncatesOnRuneBoundary(t *testing.T) {
	long := strings.Repeat("triết lý âm dương ", 20)
	got := preview(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, previewRunes, len([]rune(strings.TrimSuffix(got, "..."))))

	short := "ngắn gọn"
	assert.Equal(t, short, preview(short))
}

func TestAssembleEmptyAnswerIsUnsuccessful(t *testing.T) {
	s := state.New("q", nil)
	result := assemble(s)
	assert.False(t, result.Success)
}

func cloneWithRerank(docs []state.Document, score float64) []state.Document {
	out := make([]state.Document, len(docs))
	copy(out, docs)
	for i := range out {
		out[i].RerankScore = state.Float(score)
	}
	return out
}

func TestStatsAggregateAcrossRuns(t *testing.T) {
	failing := stageFunc(func(_ context.Context, s state.State) (state.State, error) {
		return s, errors.New("store down")
	})
	p := NewPipeline(stageFunc(passthrough), stageFunc(passthrough), failing, stageFunc(passthrough), testLogger())

	for i := 0; i < 3; i++ {
		_, _ = p.Execute(context.Background(), "q", nil)
	}

	stats := p.Stats()
	assert.EqualValues(t, 3, stats["dispatch"].Runs)
	assert.EqualValues(t, 0, stats["dispatch"].Failures)
	assert.EqualValues(t, 3, stats["retrieval"].Runs)
	assert.EqualValues(t, 3, stats["retrieval"].Failures)
	_, reasoned := stats["reasoning"]
	assert.False(t, reasoned, "reasoning never ran after fatal retrieval")
}
