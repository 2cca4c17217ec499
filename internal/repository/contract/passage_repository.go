package contract

import (
	"context"

	"kinhdich-rag-be/internal/entity"
)

// ScoredPassage wraps a Passage with its cosine similarity to the query
type ScoredPassage struct {
	Passage    *entity.Passage
	Similarity float64 // 0.0 to 1.0 (1.0 = identical)
}

// PassageRepository is the read-only corpus access contract. Ingestion
// happens out of band, so there are no write operations here.
type PassageRepository interface {
	FindByEntryCode(ctx context.Context, entryCode string, limit int) ([]*entity.Passage, error)
	// SearchSimilarWithScore returns passages at or above the similarity threshold
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*ScoredPassage, error)
	SearchFullText(ctx context.Context, query string, limit int) ([]*entity.Passage, error)
	RandomSample(ctx context.Context, n int) ([]*entity.Passage, error)
	Count(ctx context.Context) (int64, error)
}
