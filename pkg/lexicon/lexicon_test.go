package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrdering(t *testing.T) {
	lex := New()
	entries := lex.Entries()
	require.NotEmpty(t, entries)

	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		assert.LessOrEqual(t, prev.Priority, cur.Priority, "priorities must be non-decreasing at index %d", i)
		if prev.Priority == cur.Priority {
			assert.GreaterOrEqual(t, runeLen(prev.Keyword), runeLen(cur.Keyword),
				"within priority %d keywords must be longest-first at index %d", cur.Priority, i)
		}
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

func TestDetectExact(t *testing.T) {
	lex := New()

	tests := []struct {
		name     string
		query    string
		wantCode string
		wantOK   bool
	}{
		{
			name:     "vietnamese concept keyword",
			query:    "tôi muốn hỏi về cách mạng",
			wantCode: "QUE_CACH",
			wantOK:   true,
		},
		{
			name:     "english concept keyword",
			query:    "what does the revolution hexagram teach",
			wantCode: "QUE_CACH",
			wantOK:   true,
		},
		{
			name:     "canonical code token wins over concepts",
			query:    "giải thích que_thai và hòa bình",
			wantCode: "QUE_THAI",
			wantOK:   true,
		},
		{
			name:     "shared keyword resolves to earliest declaration",
			query:    "nói về difficulty khi khởi sự",
			wantCode: "QUE_TRUAN",
			wantOK:   true,
		},
		{
			name:   "no keyword present",
			query:  "hôm nay trông đẹp đấy",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, keyword, ok := lex.DetectExact(tt.query)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantCode, code)
				assert.NotEmpty(t, keyword)
			}
		})
	}
}

func TestDetectFuzzy(t *testing.T) {
	lex := New()

	t.Run("near miss above threshold", func(t *testing.T) {
		code, _, score, ok := lex.DetectFuzzy("thăng tiens trong công việc", 0.8)
		require.True(t, ok)
		assert.Equal(t, "QUE_THANG", code)
		assert.GreaterOrEqual(t, score, 0.8)
	})

	t.Run("exact containment scores one", func(t *testing.T) {
		code, keyword, score, ok := lex.DetectFuzzy("ý nghĩa của sự khiêm tốn", 0.8)
		require.True(t, ok)
		assert.Equal(t, "QUE_KHIEM", code)
		assert.Equal(t, "khiêm tốn", keyword)
		assert.Equal(t, 1.0, score)
	})

	t.Run("gibberish rejected at threshold", func(t *testing.T) {
		_, _, _, ok := lex.DetectFuzzy("zzzz qqqq wwww", 0.95)
		assert.False(t, ok)
	})
}

func TestPartialRatio(t *testing.T) {
	tests := []struct {
		name     string
		needle   string
		haystack string
		want     float64
	}{
		{"full containment", "revolution", "the revolution of things", 1.0},
		{"case insensitive", "Peace", "world PEACE now", 1.0},
		{"empty needle", "", "anything", 0},
		{"single substitution window", "abc", "xbc", 1.0 - 2.0/6.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PartialRatio(tt.needle, tt.haystack), 1e-9)
		})
	}
}

func TestSynonyms(t *testing.T) {
	lex := New()

	all := lex.Synonyms("QUE_KIEN", 0)
	require.NotEmpty(t, all)
	assert.Equal(t, "que_kien", all[0])
	assert.Contains(t, all, "sáng tạo")

	capped := lex.Synonyms("QUE_KIEN", 3)
	assert.Len(t, capped, 3)
	assert.Equal(t, all[:3], capped)

	assert.Empty(t, lex.Synonyms("QUE_UNKNOWN", 0))
}

func TestNameToCode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode string
		wantOK   bool
	}{
		{"simple name", "Khôn", "QUE_KHON", true},
		{"case insensitive", "khảm", "QUE_TAP_KHAM", true},
		{"two word name", "Trung Phu", "QUE_TRUNG_PHU", true},
		{"padded input", "  Cách ", "QUE_CACH", true},
		{"unknown name", "Rồng", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, ok := NameToCode(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestDetectNames(t *testing.T) {
	t.Run("explicit mention", func(t *testing.T) {
		hits := DetectNames("Quẻ Cách nói về điều gì?")
		require.Len(t, hits, 1)
		assert.Equal(t, "QUE_CACH", hits[0].Code)
		assert.True(t, hits[0].Explicit)
	})

	t.Run("bare multiword name", func(t *testing.T) {
		hits := DetectNames("ý nghĩa của Trung Phu trong đời sống")
		require.Len(t, hits, 1)
		assert.Equal(t, "QUE_TRUNG_PHU", hits[0].Code)
		assert.False(t, hits[0].Explicit)
	})

	t.Run("suppressor phrase blocks bare name", func(t *testing.T) {
		hits := DetectNames("triết lý âm dương là gì")
		for _, h := range hits {
			assert.NotEqual(t, "QUE_LY", h.Code)
		}
	})

	t.Run("entry context keyword overrides suppressor", func(t *testing.T) {
		hits := DetectNames("trong kinh dịch, triết lý của Lý là gì")
		require.NotEmpty(t, hits)
		codes := make([]string, len(hits))
		for i, h := range hits {
			codes[i] = h.Code
		}
		assert.Contains(t, codes, "QUE_LY")
	})

	t.Run("explicit form overrides suppressor", func(t *testing.T) {
		hits := DetectNames("giải thích quẻ Giải giúp tôi")
		require.Len(t, hits, 1)
		assert.Equal(t, "QUE_GIAI", hits[0].Code)
		assert.True(t, hits[0].Explicit)
	})

	t.Run("substring inside longer word ignored", func(t *testing.T) {
		hits := DetectNames("chính sách di truyền học")
		for _, h := range hits {
			assert.NotEqual(t, "QUE_DI", h.Code)
		}
	})

	t.Run("no mention", func(t *testing.T) {
		assert.Empty(t, DetectNames("hôm nay bạn khỏe không"))
	})
}
