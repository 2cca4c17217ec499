package lexicon

import (
	"strings"
	"unicode"
)

// hexagramNames lists the 64 canonical Vietnamese hexagram names in King Wen
// order. A few codes appear twice because the corpus reuses them for entries
// that were merged in a past revision; NameToCode still resolves each name.
var hexagramNames = []struct {
	Name string
	Code string
}{
	{"Kiền", "QUE_KIEN"},
	{"Khôn", "QUE_KHON"},
	{"Truân", "QUE_TRUAN"},
	{"Mông", "QUE_MONG"},
	{"Nhu", "QUE_NHU"},
	{"Tụng", "QUE_TUNG"},
	{"Sư", "QUE_SU"},
	{"Tỷ", "QUE_TY"},
	{"Tiểu Súc", "QUE_TIEU_SUC"},
	{"Lý", "QUE_LY"},
	{"Thái", "QUE_THAI"},
	{"Phì", "QUE_PHE_HAP"},
	{"Đồng Nhân", "QUE_DONG_NHAN"},
	{"Đại Hữu", "QUE_DAI_HUU"},
	{"Khiêm", "QUE_KHIEM"},
	{"Dự", "QUE_DU"},
	{"Tùy", "QUE_TUY"},
	{"Cổ", "QUE_CO"},
	{"Lâm", "QUE_LAM"},
	{"Quán", "QUE_QUAN"},
	{"Thích Hạc", "QUE_PHE_HAP"},
	{"Bí", "QUE_BI_2"},
	{"Bác", "QUE_BAC"},
	{"Phục", "QUE_PHUC"},
	{"Vô Vọng", "QUE_VO_VONG"},
	{"Đại Súc", "QUE_DAI_SUC"},
	{"Di", "QUE_DI"},
	{"Đại Quá", "QUE_DAI_QUA"},
	{"Khảm", "QUE_TAP_KHAM"},
	{"Ly", "QUE_LY_2"},
	{"Hàm", "QUE_HAM"},
	{"Hằng", "QUE_HANG"},
	{"Độn", "QUE_DON"},
	{"Đại Tráng", "QUE_DAI_TRANG"},
	{"Tấn", "QUE_TAN"},
	{"Minh Di", "QUE_MINH_DI"},
	{"Gia Nhân", "QUE_GIA_NHAN"},
	{"Khuê", "QUE_KHUE"},
	{"Giản", "QUE_GIAN"},
	{"Giải", "QUE_GIAI"},
	{"Tổn", "QUE_TON"},
	{"Ích", "QUE_ICH"},
	{"Quải", "QUE_QUAI"},
	{"Cấu", "QUE_CAU"},
	{"Tụy", "QUE_TUY"},
	{"Thăng", "QUE_THANG"},
	{"Khốn", "QUE_KHON_2"},
	{"Tỉnh", "QUE_TINH"},
	{"Cách", "QUE_CACH"},
	{"Đỉnh", "QUE_DINH"},
	{"Chấn", "QUE_CHAN"},
	{"Cấn", "QUE_CAN"},
	{"Tiệm", "QUE_TIEM"},
	{"Quy Muội", "QUE_QUI_MUOI"},
	{"Phong", "QUE_PHONG"},
	{"Lữ", "QUE_LU"},
	{"Tốn", "QUE_TON_2"},
	{"Đoài", "QUE_DOAI"},
	{"Hoán", "QUE_HOAN"},
	{"Tiết", "QUE_TIET"},
	{"Trung Phu", "QUE_TRUNG_PHU"},
	{"Tiểu Quá", "QUE_TIEU_QUA"},
	{"Ký Tế", "QUE_KY_TE"},
	{"Vị Tế", "QUE_VI_TE"},
}

// entryContextKeywords mark a query as being about the corpus itself. Any
// of them anywhere in the text overrides the suppressor phrases below.
var entryContextKeywords = []string{
	"quẻ", "kinh dịch", "dịch học", "64 quẻ", "bát quẻ", "hexagram",
}

// bareNameSuppressors blocks bare-name detection when the name only occurs
// as part of a common non-hexagram phrase. An explicit "quẻ <name>" mention
// is never suppressed, and neither is any bare name when an entry context
// keyword co-occurs in the query.
var bareNameSuppressors = map[string][]string{
	"lý":   {"triết lý", "lý thuyết", "nguyên lý", "lý do", "quản lý"},
	"giải": {"giải thích", "giải pháp", "giải nghĩa"},
	"thái": {"thái độ", "thái lan"},
	"cách": {"cách nào", "cách nhau", "tính cách"},
	"di":   {"di chuyển", "di sản", "di truyền"},
	"ly":   {"ly hôn", "ly kỳ", "cốc ly"},
}

// NameHit is one detected hexagram mention in free text.
type NameHit struct {
	Name     string
	Code     string
	Explicit bool
}

// NameToCode resolves a hexagram name (case-insensitive) to its entry code.
func NameToCode(name string) (string, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, hn := range hexagramNames {
		if strings.ToLower(hn.Name) == want {
			return hn.Code, true
		}
	}
	return "", false
}

// CanonicalNames returns the 64 names in King Wen order.
func CanonicalNames() []string {
	out := make([]string, len(hexagramNames))
	for i, hn := range hexagramNames {
		out[i] = hn.Name
	}
	return out
}

// DetectNames finds hexagram mentions in text. Explicit "quẻ <name>" forms
// always count; bare names need word boundaries and must survive the
// suppressor phrases above. Results are deduplicated by code, with explicit
// mentions taking precedence over bare ones.
func DetectNames(text string) []NameHit {
	lower := strings.ToLower(text)
	inContext := hasEntryContext(lower)

	byCode := make(map[string]NameHit)
	order := make([]string, 0, 4)
	record := func(hit NameHit) {
		prev, seen := byCode[hit.Code]
		if !seen {
			byCode[hit.Code] = hit
			order = append(order, hit.Code)
			return
		}
		if hit.Explicit && !prev.Explicit {
			byCode[hit.Code] = hit
		}
	}

	for _, hn := range hexagramNames {
		name := strings.ToLower(hn.Name)

		if strings.Contains(lower, "quẻ "+name) || strings.Contains(lower, "que "+name) {
			record(NameHit{Name: hn.Name, Code: hn.Code, Explicit: true})
			continue
		}

		if !ContainsWholeWord(lower, name) {
			continue
		}
		if !inContext && suppressed(lower, name) {
			continue
		}
		record(NameHit{Name: hn.Name, Code: hn.Code, Explicit: false})
	}

	out := make([]NameHit, 0, len(order))
	for _, code := range order {
		out = append(out, byCode[code])
	}
	return out
}

func hasEntryContext(lower string) bool {
	for _, kw := range entryContextKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func suppressed(lower, name string) bool {
	for _, phrase := range bareNameSuppressors[name] {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

// ContainsWholeWord reports whether word occurs in haystack delimited by
// non-letter runes. Unlike regexp's \b it treats accented letters as word
// characters, which matters for Vietnamese.
func ContainsWholeWord(haystack, word string) bool {
	for from := 0; ; {
		idx := strings.Index(haystack[from:], word)
		if idx < 0 {
			return false
		}
		idx += from
		end := idx + len(word)
		if boundaryBefore(haystack, idx) && boundaryAfter(haystack, end) {
			return true
		}
		from = idx + len(word)
	}
}

func boundaryBefore(s string, idx int) bool {
	if idx == 0 {
		return true
	}
	r := []rune(s[:idx])
	return !unicode.IsLetter(r[len(r)-1])
}

func boundaryAfter(s string, end int) bool {
	if end >= len(s) {
		return true
	}
	r := []rune(s[end:])
	return !unicode.IsLetter(r[0])
}
