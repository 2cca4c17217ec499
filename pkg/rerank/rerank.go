package rerank

import "context"

// Scorer assigns a cross-encoder relevance score to each document for a
// query. The returned slice is index-aligned with documents.
type Scorer interface {
	Score(ctx context.Context, query string, documents []string) ([]float64, error)
}
