package service

import (
	"context"

	"kinhdich-rag-be/internal/entity"
	"kinhdich-rag-be/internal/repository/contract"
	"kinhdich-rag-be/pkg/pipeline/retrieval"
	"kinhdich-rag-be/pkg/pipeline/state"
)

// documentStore adapts the passage repository to the retrieval cascade's
// store boundary, converting persistence entities into pipeline documents.
type documentStore struct {
	passages contract.PassageRepository
}

var _ retrieval.Store = (*documentStore)(nil)

func NewDocumentStore(passages contract.PassageRepository) retrieval.Store {
	return &documentStore{passages: passages}
}

func (s *documentStore) FindByEntryCode(ctx context.Context, code string, limit int) ([]state.Document, error) {
	passages, err := s.passages.FindByEntryCode(ctx, code, limit)
	if err != nil {
		return nil, err
	}
	return toDocuments(passages), nil
}

func (s *documentStore) SearchSimilar(ctx context.Context, vec []float32, limit int, minScore float64) ([]state.Document, error) {
	scored, err := s.passages.SearchSimilarWithScore(ctx, vec, limit, minScore)
	if err != nil {
		return nil, err
	}
	docs := make([]state.Document, 0, len(scored))
	for _, sp := range scored {
		doc := toDocument(sp.Passage)
		doc.VectorScore = state.Float(sp.Similarity)
		docs = append(docs, doc)
	}
	return docs, nil
}

func (s *documentStore) SearchFullText(ctx context.Context, query string, limit int) ([]state.Document, error) {
	passages, err := s.passages.SearchFullText(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return toDocuments(passages), nil
}

func (s *documentStore) RandomSample(ctx context.Context, n int) ([]state.Document, error) {
	passages, err := s.passages.RandomSample(ctx, n)
	if err != nil {
		return nil, err
	}
	return toDocuments(passages), nil
}

func toDocument(p *entity.Passage) state.Document {
	return state.Document{
		ID:          p.Id,
		EntryCode:   p.EntryCode,
		ContentType: p.ContentType,
		Content:     p.Content,
		Footnotes:   p.Footnotes,
	}
}

func toDocuments(passages []*entity.Passage) []state.Document {
	docs := make([]state.Document, len(passages))
	for i, p := range passages {
		docs[i] = toDocument(p)
	}
	return docs
}
