package retrieval

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinhdich-rag-be/pkg/cache"
	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/pipeline/state"
)

type fakeStore struct {
	byCodeCalls   int
	similarCalls  int
	fullTextCalls int
	randomCalls   int

	byCode   map[string][]state.Document
	similar  []state.Document
	fullText []state.Document
	random   []state.Document

	byCodeErr  error
	similarErr error
	randomErr  error
}

func (f *fakeStore) FindByEntryCode(_ context.Context, code string, _ int) ([]state.Document, error) {
	f.byCodeCalls++
	if f.byCodeErr != nil {
		return nil, f.byCodeErr
	}
	return f.byCode[code], nil
}

func (f *fakeStore) SearchSimilar(_ context.Context, _ []float32, _ int, _ float64) ([]state.Document, error) {
	f.similarCalls++
	if f.similarErr != nil {
		return nil, f.similarErr
	}
	return f.similar, nil
}

func (f *fakeStore) SearchFullText(_ context.Context, _ string, _ int) ([]state.Document, error) {
	f.fullTextCalls++
	return f.fullText, nil
}

func (f *fakeStore) RandomSample(_ context.Context, n int) ([]state.Document, error) {
	f.randomCalls++
	if f.randomErr != nil {
		return nil, f.randomErr
	}
	if n < len(f.random) {
		return f.random[:n], nil
	}
	return f.random, nil
}

type fakeEmbedder struct {
	calls int
	err   error
}

func (f *fakeEmbedder) Embed(_ context.Context, _ string, _ string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []float32{0.1, 0.2}, nil
}

func docs(code string, n int) []state.Document {
	out := make([]state.Document, n)
	for i := range out {
		out[i] = state.Document{EntryCode: code, Content: "đoạn văn"}
	}
	return out
}

func newRetriever(store *fakeStore, embedder *fakeEmbedder) *Retriever {
	return NewRetriever(
		store,
		embedder,
		cache.NewMemoryCache(time.Minute, time.Minute),
		lexicon.New(),
		log.New(io.Discard, "", 0),
		DefaultConfig(),
	)
}

func TestCastingContextWinsFirst(t *testing.T) {
	store := &fakeStore{byCode: map[string][]state.Document{"QUE_CACH": docs("QUE_CACH", 3)}}
	r := newRetriever(store, &fakeEmbedder{})

	s := state.New("hỏi chung chung", &state.CastingContext{Name: "Cách"})
	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "casting", out.Strategy)
	assert.Len(t, out.Documents, 3)
	assert.Equal(t, 0, store.similarCalls, "later strategies must not run after a hit")
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.randomCalls)
	require.NotEmpty(t, out.Trace)
	assert.Contains(t, out.Trace[len(out.Trace)-1], "PRIORITY")
	assert.Contains(t, out.Trace[len(out.Trace)-1], "(3 docs)")
}

func TestUnknownCastingNameFallsThrough(t *testing.T) {
	store := &fakeStore{byCode: map[string][]state.Document{"QUE_CACH": docs("QUE_CACH", 2)}}
	r := newRetriever(store, &fakeEmbedder{})

	s := state.New("nói về cách mạng", &state.CastingContext{Name: "Không Tồn Tại"})
	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, "concept", out.Strategy)
	assert.Len(t, out.Documents, 2)
}

func TestConceptLookupByKeyword(t *testing.T) {
	store := &fakeStore{byCode: map[string][]state.Document{"QUE_THAI": docs("QUE_THAI", 4)}}
	r := newRetriever(store, &fakeEmbedder{})

	out, err := r.Run(context.Background(), state.New("mong muốn hòa bình thịnh vượng", nil))
	require.NoError(t, err)

	assert.Equal(t, "concept", out.Strategy)
	for _, d := range out.Documents {
		assert.Equal(t, "QUE_THAI", d.EntryCode)
	}
}

func TestEntityStrategyUsesDetectedMentions(t *testing.T) {
	store := &fakeStore{byCode: map[string][]state.Document{"QUE_TRUNG_PHU": docs("QUE_TRUNG_PHU", 1)}}
	r := newRetriever(store, &fakeEmbedder{})

	s := state.New("nói về Trung Phu", nil)
	s.QueryType = state.QueryEntrySpecific
	s.Entities = []state.Entity{{Text: "Trung Phu", Code: "QUE_TRUNG_PHU"}}

	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, "entity", out.Strategy)
}

func TestSemanticFallback(t *testing.T) {
	store := &fakeStore{similar: docs("QUE_KHON", 5)}
	embedder := &fakeEmbedder{}
	r := newRetriever(store, embedder)

	out, err := r.Run(context.Background(), state.New("một câu hỏi mơ hồ không từ khóa", nil))
	require.NoError(t, err)

	assert.Equal(t, "semantic", out.Strategy)
	assert.Equal(t, 1, embedder.calls)
	assert.Equal(t, 0, store.fullTextCalls)
	assert.Equal(t, 0, store.byCodeCalls)
}

func TestSemanticResultIsCached(t *testing.T) {
	store := &fakeStore{similar: docs("QUE_KHON", 2)}
	embedder := &fakeEmbedder{}
	r := newRetriever(store, embedder)
	query := state.New("một câu hỏi mơ hồ không từ khóa", nil)

	_, err := r.Run(context.Background(), query)
	require.NoError(t, err)
	out, err := r.Run(context.Background(), query)
	require.NoError(t, err)

	assert.Equal(t, 1, store.similarCalls, "second run must be served from cache")
	assert.Equal(t, 1, embedder.calls)
	assert.Equal(t, "semantic", out.Strategy)
	assert.Len(t, out.Documents, 2)
}

func TestEmbedderFailureDegradesToText(t *testing.T) {
	store := &fakeStore{fullText: docs("QUE_DU", 2)}
	r := newRetriever(store, &fakeEmbedder{err: errors.New("embedding service down")})

	out, err := r.Run(context.Background(), state.New("một câu hỏi mơ hồ không từ khóa", nil))
	require.NoError(t, err)

	assert.Equal(t, "text", out.Strategy)
	assert.Equal(t, 0, store.similarCalls)

	failureTraced := false
	for _, tr := range out.Trace {
		if strings.Contains(tr, "semantic strategy failed") {
			failureTraced = true
		}
	}
	assert.True(t, failureTraced, "service failure must be visible in the trace")
}

func TestRandomSampleFloor(t *testing.T) {
	store := &fakeStore{random: docs("QUE_VI_TE", 8)}
	r := newRetriever(store, &fakeEmbedder{})

	out, err := r.Run(context.Background(), state.New("một câu hỏi mơ hồ không từ khóa", nil))
	require.NoError(t, err)

	assert.Equal(t, "random", out.Strategy)
	assert.Len(t, out.Documents, 5, "random sample is capped at min(topK, 5)")
	require.NotEmpty(t, out.Trace)
	assert.Contains(t, out.Trace[len(out.Trace)-1], "no-match, random sample")
}

func TestFirstStoreFailureIsFatal(t *testing.T) {
	store := &fakeStore{byCodeErr: errors.New("connection refused")}
	r := newRetriever(store, &fakeEmbedder{})

	s := state.New("nói về cách mạng", nil)
	_, err := r.Run(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document store unreachable")
}

func TestLaterStoreFailureDegrades(t *testing.T) {
	store := &fakeStore{
		byCode:     map[string][]state.Document{},
		similarErr: errors.New("index offline"),
		fullText:   docs("QUE_TIET", 1),
	}
	r := newRetriever(store, &fakeEmbedder{})

	// Concept strategy fires first (store call #1, empty result), so the
	// broken vector index is no longer the first store attempt.
	out, err := r.Run(context.Background(), state.New("nói về cách mạng", nil))
	require.NoError(t, err)
	assert.Equal(t, "text", out.Strategy)
}

func TestThresholdIsTunable(t *testing.T) {
	for _, threshold := range []float64{0.25, 0.5} {
		cfg := DefaultConfig()
		cfg.SimilarityThreshold = threshold

		store := &fakeStore{similar: docs("QUE_KHON", 1)}
		r := NewRetriever(store, &fakeEmbedder{}, cache.NewMemoryCache(time.Minute, time.Minute),
			lexicon.New(), log.New(io.Discard, "", 0), cfg)

		out, err := r.Run(context.Background(), state.New("một câu hỏi mơ hồ không từ khóa", nil))
		require.NoError(t, err)
		assert.Equal(t, "semantic", out.Strategy)
	}
}

func TestStripStopWords(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  string
	}{
		{"strips particles", "quẻ Càn có ý nghĩa gì", "Càn ý nghĩa"},
		{"keeps content words", "sự nghiệp thăng tiến", "sự nghiệp thăng tiến"},
		{"case insensitive", "Quẻ Khôn", "Khôn"},
		{"all stop words", "quẻ là gì", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, stripStopWords(tc.query, defaultStopWords))
		})
	}
}
