package linguistics

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/pipeline/state"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(lexicon.New(), log.New(io.Discard, "", 0))
}

func TestRunDetectsEntitiesAndExpands(t *testing.T) {
	a := newAnalyzer()
	in := state.New("quẻ Cách là gì", nil)

	out, err := a.Run(context.Background(), in)
	require.NoError(t, err)

	require.Len(t, out.Entities, 1)
	assert.Equal(t, "QUE_CACH", out.Entities[0].Code)
	assert.True(t, out.Entities[0].Explicit)

	assert.True(t, strings.HasPrefix(out.ExpandedQuery, in.Query),
		"expansion must keep the original query as prefix")
	assert.Contains(t, out.ExpandedQuery, "revolution")
	assert.Contains(t, out.ExpandedQuery, "QUE_CACH")

	// Input state untouched
	assert.Empty(t, in.Entities)
	assert.Empty(t, in.ExpandedQuery)
}

func TestRunWithoutEntitiesKeepsQuery(t *testing.T) {
	a := newAnalyzer()

	out, err := a.Run(context.Background(), state.New("hôm nay ăn gì ngon", nil))
	require.NoError(t, err)

	assert.Empty(t, out.Entities)
	assert.Equal(t, "hôm nay ăn gì ngon", out.ExpandedQuery)
}

func TestDisambiguate(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		entities  []state.Entity
		word      string
		wantSense string
		minConf   float64
	}{
		{
			name:      "philosophy phrase forces philosophy sense",
			query:     "triết lý âm dương là gì",
			word:      "lý",
			wantSense: SensePhilosophy,
			minConf:   1.0,
		},
		{
			name:      "am duong is always philosophy",
			query:     "âm dương nghĩa là sao",
			word:      "âm dương",
			wantSense: SensePhilosophy,
			minConf:   0.8,
		},
		{
			name:      "entry context wins for ly",
			query:     "quẻ lý dạy điều gì",
			entities:  []state.Entity{{Text: "Lý", Code: "QUE_LY", Explicit: true}},
			word:      "lý",
			wantSense: SenseEntry,
			minConf:   1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			senses := disambiguate(tt.query, tt.entities)

			var found *state.Sense
			for i := range senses {
				if senses[i].Word == tt.word {
					found = &senses[i]
					break
				}
			}
			require.NotNil(t, found, "expected a sense for %q", tt.word)
			assert.Equal(t, tt.wantSense, found.Sense)
			assert.GreaterOrEqual(t, found.Confidence, tt.minConf)
			assert.LessOrEqual(t, found.Confidence, 1.0)
		})
	}
}

func TestExpandAddsSenseTerms(t *testing.T) {
	a := newAnalyzer()

	out, err := a.Run(context.Background(), state.New("triết lý âm dương trong kinh dịch", nil))
	require.NoError(t, err)

	assert.Contains(t, out.ExpandedQuery, "yin_yang")
	assert.Contains(t, out.ExpandedQuery, "doctrine")
}

func TestExpandSkipsLowConfidenceSenses(t *testing.T) {
	a := newAnalyzer()

	expanded := a.expand("một câu bất kỳ", nil, []state.Sense{
		{Word: "âm dương", Sense: SensePhilosophy, Confidence: 0.4},
	})
	assert.Equal(t, "một câu bất kỳ", expanded)
}

func TestSuppressedNameYieldsNoEntity(t *testing.T) {
	a := newAnalyzer()

	out, err := a.Run(context.Background(), state.New("giải thích triết lý phương đông", nil))
	require.NoError(t, err)

	for _, e := range out.Entities {
		assert.NotEqual(t, "QUE_GIAI", e.Code)
	}
}
