package embedding

import "context"

// Task types passed to providers that distinguish query and document
// embeddings. Providers that do not support task types ignore them.
const (
	TaskQuery    = "retrieval_query"
	TaskDocument = "retrieval_document"
)

// Provider generates dense vector embeddings for text.
type Provider interface {
	Embed(ctx context.Context, text string, taskType string) ([]float32, error)
}
