package citation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kinhdich-rag-be/pkg/pipeline/state"
)

func TestResolve(t *testing.T) {
	docs := []state.Document{
		{EntryCode: "QUE_CACH", Footnotes: map[string]string{"1": "thoán từ quẻ Cách"}},
		{EntryCode: "QUE_CACH"},
	}

	tests := []struct {
		name       string
		answer     string
		wantAnswer string
		wantValid  []int
		wantTotal  int
	}{
		{
			name:       "footnote substitution",
			answer:     "Cách nghĩa là thay đổi [1].",
			wantAnswer: "Cách nghĩa là thay đổi  (thoán từ quẻ Cách) .",
			wantValid:  []int{1},
			wantTotal:  1,
		},
		{
			name:       "valid without footnote kept verbatim",
			answer:     "Điều này đúng [2].",
			wantAnswer: "Điều này đúng [2].",
			wantValid:  []int{2},
			wantTotal:  1,
		},
		{
			name:       "out of range kept verbatim",
			answer:     "Nguồn không tồn tại [7] và [0].",
			wantAnswer: "Nguồn không tồn tại [7] và [0].",
			wantValid:  nil,
			wantTotal:  2,
		},
		{
			name:       "mixed markers",
			answer:     "A [1] B [9] C [2]",
			wantAnswer: "A  (thoán từ quẻ Cách)  B [9] C [2]",
			wantValid:  []int{1, 2},
			wantTotal:  3,
		},
		{
			name:       "no markers",
			answer:     "Không có trích dẫn nào.",
			wantAnswer: "Không có trích dẫn nào.",
			wantValid:  nil,
			wantTotal:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.answer, docs)
			assert.Equal(t, tt.wantAnswer, got.Answer)
			assert.Equal(t, tt.wantValid, got.Valid)
			assert.Equal(t, tt.wantTotal, got.Total)
		})
	}
}

func TestResolveEmptyDocs(t *testing.T) {
	got := Resolve("mọi trích dẫn [1] đều sai", nil)
	assert.Equal(t, "mọi trích dẫn [1] đều sai", got.Answer)
	assert.Empty(t, got.Valid)
	assert.Equal(t, 1, got.Total)
}
