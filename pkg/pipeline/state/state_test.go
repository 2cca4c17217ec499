package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want float64
	}{
		{"rerank wins over vector", Document{VectorScore: Float(0.4), RerankScore: Float(0.9)}, 0.9},
		{"vector when no rerank", Document{VectorScore: Float(0.4)}, 0.4},
		{"zero when unscored", Document{}, 0},
		{"rerank zero still wins", Document{VectorScore: Float(0.4), RerankScore: Float(0)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.doc.RelevanceScore())
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := New("quẻ Cách là gì", &CastingContext{
		Name:          "Cách",
		Code:          "QUE_CACH",
		ChangingLines: []int{2, 5},
	})
	original.Entities = []Entity{{Text: "Cách", Code: "QUE_CACH", Explicit: true}}
	original.Documents = []Document{{
		EntryCode:   "QUE_CACH",
		VectorScore: Float(0.7),
		Footnotes:   map[string]string{"1": "chú thích"},
	}}

	clone := original.Clone()
	clone.Entities[0].Code = "QUE_KHON"
	*clone.Documents[0].VectorScore = 0.1
	clone.Documents[0].Footnotes["1"] = "changed"
	clone.Casting.ChangingLines[0] = 9

	assert.Equal(t, "QUE_CACH", original.Entities[0].Code)
	assert.Equal(t, 0.7, *original.Documents[0].VectorScore)
	assert.Equal(t, "chú thích", original.Documents[0].Footnotes["1"])
	assert.Equal(t, 2, original.Casting.ChangingLines[0])
}

func TestWithTimingDoesNotTouchReceiver(t *testing.T) {
	s := New("câu hỏi", nil)
	timed := s.WithTiming("dispatch", 5*time.Millisecond)

	assert.Empty(t, s.Timings)
	require.Len(t, timed.Timings, 1)
	assert.Equal(t, "dispatch", timed.Timings[0].Stage)
}

func TestWithTraceDoesNotTouchReceiver(t *testing.T) {
	s := New("câu hỏi", nil)
	traced := s.WithTrace("classified as general")

	assert.Empty(t, s.Trace)
	require.Len(t, traced.Trace, 1)
}

func TestNewStartsAtZeroValues(t *testing.T) {
	s := New("quẻ Khôn", nil)

	assert.Equal(t, QueryUnset, s.QueryType)
	assert.Empty(t, s.ExpandedQuery)
	assert.Equal(t, "quẻ Khôn", s.EffectiveQuery())

	s.ExpandedQuery = "quẻ Khôn đất bao dung QUE_KHON"
	assert.Equal(t, s.ExpandedQuery, s.EffectiveQuery())
}
