package entity

import (
	"time"

	"github.com/google/uuid"
)

// Passage is one corpus fragment: a piece of hexagram text with its
// embedding and footnote annotations.
type Passage struct {
	Id          uuid.UUID
	EntryCode   string
	ContentType string
	Content     string
	Footnotes   map[string]string
	Embedding   []float32
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
