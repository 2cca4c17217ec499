package prompt

import (
	"fmt"
	"strings"

	"kinhdich-rag-be/pkg/pipeline/state"
)

const (
	// maxContextEntries caps the numbered context block.
	maxContextEntries = 8
	// maxEntryRunes truncates each passage inside the block.
	maxEntryRunes = 400
)

const divinationTemplate = `Bạn là chuyên gia Kinh Dịch có kinh nghiệm sâu rộng.

CÂU HỎI GIEO QUẺ: "%s"
%s
TÀI LIỆU THAM KHẢO:
%s

YÊU CẦU:
- Phân tích quẻ và tình huống cụ thể
- Đưa ra lời khuyên thực tế và khả thi
- Trích dẫn nguồn bằng [số]
- Không đưa thông tin ngoài tài liệu
- Giải thích ý nghĩa sâu sắc

TRẢ LỜI:`

const philosophyTemplate = `Bạn là học giả Kinh Dịch uyên thâm.

CÂU HỎI TRIẾT HỌC: "%s"
%s
TÀI LIỆU THAM KHẢO:
%s

YÊU CẦU:
- Giải thích triết lý một cách sâu sắc
- Kết nối với tư tưởng Đông phương
- Trích dẫn nguồn bằng [số]
- Không đưa thông tin ngoài tài liệu
- Đưa ra ví dụ minh họa

TRẢ LỜI:`

const generalTemplate = `Bạn là chuyên gia Kinh Dịch.

CÂU HỎI: "%s"
%s
TÀI LIỆU THAM KHẢO:
%s

YÊU CẦU:
- Trả lời chính xác dựa trên tài liệu
- Giải thích rõ ràng và dễ hiểu
- Trích dẫn nguồn bằng [số]
- Không đưa thông tin ngoài tài liệu
- Cung cấp thông tin hữu ích

TRẢ LỜI:`

// Build assembles the generation prompt: template keyed by query type, an
// optional casting block, and the numbered context block.
func Build(queryType state.QueryType, query string, docs []state.Document, casting *state.CastingContext) string {
	var template string
	switch queryType {
	case state.QueryDivination:
		template = divinationTemplate
	case state.QueryPhilosophy:
		template = philosophyTemplate
	default:
		template = generalTemplate
	}

	return fmt.Sprintf(template, query, castingBlock(casting), Context(docs))
}

// Context renders the numbered context block: "[i] Quẻ <code> - (<type>)
// <text>", one entry per passage, capped and truncated.
func Context(docs []state.Document) string {
	limit := len(docs)
	if limit > maxContextEntries {
		limit = maxContextEntries
	}

	parts := make([]string, 0, limit)
	for i := 0; i < limit; i++ {
		doc := docs[i]

		var b strings.Builder
		fmt.Fprintf(&b, "[%d] ", i+1)
		if doc.EntryCode != "" {
			fmt.Fprintf(&b, "Quẻ %s - ", doc.EntryCode)
		}
		if doc.ContentType != "" {
			fmt.Fprintf(&b, "(%s) ", doc.ContentType)
		}
		b.WriteString(truncate(doc.Content, maxEntryRunes))

		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

func castingBlock(casting *state.CastingContext) string {
	if casting == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nTHÔNG TIN QUẺ:\n")
	fmt.Fprintf(&b, "- Quẻ: %s\n", casting.Name)
	if casting.Code != "" {
		fmt.Fprintf(&b, "- Mã: %s\n", casting.Code)
	}
	if casting.Summary != "" {
		fmt.Fprintf(&b, "- Ý nghĩa: %s\n", casting.Summary)
	}
	if len(casting.ChangingLines) > 0 {
		lines := make([]string, len(casting.ChangingLines))
		for i, l := range casting.ChangingLines {
			lines[i] = fmt.Sprintf("%d", l)
		}
		fmt.Fprintf(&b, "- Hào động: %s\n", strings.Join(lines, ", "))
	}
	return b.String()
}

func truncate(s string, maxRunes int) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes]) + "..."
}
