package reasoning

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinhdich-rag-be/pkg/llm"
	"kinhdich-rag-be/pkg/pipeline/state"
)

type fakeGenerator struct {
	answer string
	err    error
	calls  int
	prompt string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, _ ...llm.Option) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeGenerator) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	return f.Generate(ctx, history[len(history)-1].Content, opts...)
}

type fakeScorer struct {
	scores []float64
	err    error
	calls  int
}

func (f *fakeScorer) Score(_ context.Context, _ string, docs []string) ([]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.scores[:len(docs)], nil
}

func newReasoner(scorer *fakeScorer, gen *fakeGenerator) *Reasoner {
	logger := log.New(io.Discard, "", 0)
	if scorer == nil {
		return NewReasoner(nil, gen, logger, DefaultConfig())
	}
	return NewReasoner(scorer, gen, logger, DefaultConfig())
}

func withDocs(n int, vectorScores ...float64) state.State {
	s := state.New("quẻ Cách nói gì", nil)
	s.QueryType = state.QueryGeneral
	for i := 0; i < n; i++ {
		d := state.Document{EntryCode: "QUE_CACH", Content: "nội dung tài liệu"}
		if i < len(vectorScores) {
			d.VectorScore = state.Float(vectorScores[i])
		}
		s.Documents = append(s.Documents, d)
	}
	return s
}

func TestNoCandidatesShortCircuits(t *testing.T) {
	gen := &fakeGenerator{answer: "không nên được gọi"}
	r := newReasoner(nil, gen)

	out, err := r.Run(context.Background(), state.New("câu hỏi", nil))
	require.NoError(t, err)

	assert.Equal(t, ApologyNoContext, out.Answer)
	assert.Equal(t, fallbackConfidence, out.Confidence)
	assert.Equal(t, 0, gen.calls, "generation service must not be called without candidates")
}

func TestGenerationFailureSubstitutesApology(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("quota exceeded")}
	r := newReasoner(nil, gen)

	out, err := r.Run(context.Background(), withDocs(2))
	require.NoError(t, err, "generation failure must never escape the stage")

	assert.Equal(t, ApologyGeneration, out.Answer)
	assert.Equal(t, 0.1, out.Confidence)
}

func TestRerankOrdersByCombinedScore(t *testing.T) {
	// Cross scores invert the vector order: doc0 has the best vector score
	// but the worst cross score.
	scorer := &fakeScorer{scores: []float64{0.1, 0.9, 0.5}}
	gen := &fakeGenerator{answer: "trả lời [1]"}
	r := newReasoner(scorer, gen)

	s := withDocs(3, 0.9, 0.2, 0.1)
	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	require.Len(t, out.Reranked, 3)
	// combined: doc0 = 0.7*0.1+0.3*0.9 = 0.34, doc1 = 0.69, doc2 = 0.38
	assert.InDelta(t, 0.69, *out.Reranked[0].RerankScore, 1e-9)
	assert.InDelta(t, 0.38, *out.Reranked[1].RerankScore, 1e-9)
	assert.InDelta(t, 0.34, *out.Reranked[2].RerankScore, 1e-9)
	assert.Equal(t, 1, scorer.calls)
}

func TestRerankKeepsFirstKWithoutScorer(t *testing.T) {
	gen := &fakeGenerator{answer: "trả lời"}
	r := newReasoner(nil, gen)

	out, err := r.Run(context.Background(), withDocs(15))
	require.NoError(t, err)

	assert.Len(t, out.Reranked, 12)
	for _, d := range out.Reranked {
		assert.Nil(t, d.RerankScore)
	}
}

func TestScorerFailureFallsBackToFirstK(t *testing.T) {
	scorer := &fakeScorer{err: errors.New("model offline")}
	gen := &fakeGenerator{answer: "trả lời"}
	r := newReasoner(scorer, gen)

	out, err := r.Run(context.Background(), withDocs(3, 0.5, 0.4, 0.3))
	require.NoError(t, err)

	require.Len(t, out.Reranked, 3)
	assert.Nil(t, out.Reranked[0].RerankScore)
	assert.Equal(t, 0.5, *out.Reranked[0].VectorScore)
}

func TestCitationsResolvedIntoAnswer(t *testing.T) {
	gen := &fakeGenerator{answer: "Cách là thay đổi [1], sai nguồn [9]."}
	r := newReasoner(nil, gen)

	s := withDocs(1)
	s.Documents[0].Footnotes = map[string]string{"1": "thoán từ"}

	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Contains(t, out.Answer, "(thoán từ)")
	assert.Contains(t, out.Answer, "[9]", "invalid marker stays verbatim")
	assert.Equal(t, []int{1}, out.Citations)
}

func TestConfidenceBounds(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		docs   state.State
	}{
		{"high signal", "QUE_CACH âm dương [1] " + strings.Repeat("một câu trả lời rất dài ", 10), withDocs(2, 0.9, 0.9)},
		{"no citations", "không trích dẫn gì", withDocs(2)},
		{"only invalid citations", "sai hết [7][8][9]", withDocs(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newReasoner(nil, &fakeGenerator{answer: tt.answer})
			out, err := r.Run(context.Background(), tt.docs)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, out.Confidence, 0.0)
			assert.LessOrEqual(t, out.Confidence, 1.0)
		})
	}
}

func TestRandomSampleCapsConfidence(t *testing.T) {
	// A long, well-cited answer over random documents would otherwise
	// score well above the ceiling.
	gen := &fakeGenerator{answer: "QUE_CACH âm dương [1] " + strings.Repeat("một câu trả lời rất dài ", 10)}
	r := newReasoner(nil, gen)

	s := withDocs(3)
	s.Strategy = "random"

	out, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	assert.LessOrEqual(t, out.Confidence, randomSampleCeiling)
}

func TestPromptUsesQueryTypeTemplate(t *testing.T) {
	gen := &fakeGenerator{answer: "ok"}
	r := newReasoner(nil, gen)

	s := withDocs(1)
	s.QueryType = state.QueryDivination

	_, err := r.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "CÂU HỎI GIEO QUẺ")
}
