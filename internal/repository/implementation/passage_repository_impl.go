package implementation

import (
	"context"

	"kinhdich-rag-be/internal/entity"
	"kinhdich-rag-be/internal/mapper"
	"kinhdich-rag-be/internal/model"
	"kinhdich-rag-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PassageMapper
}

func NewPassageRepository(db *gorm.DB) contract.PassageRepository {
	return &PassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewPassageMapper(),
	}
}

func (r *PassageRepositoryImpl) FindByEntryCode(ctx context.Context, entryCode string, limit int) ([]*entity.Passage, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []*model.Passage
	err := r.db.WithContext(ctx).
		Where("entry_code = ?", entryCode).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

// SearchSimilarWithScore computes cosine similarity in SQL. The query
// oversamples 3x before the threshold filter so that a strict threshold
// still has a full candidate pool to cut from.
func (r *PassageRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int, threshold float64) ([]*contract.ScoredPassage, error) {
	if limit <= 0 {
		limit = 20
	}

	// Cosine distance in pgvector is 1 - cosine_similarity, so
	// 1 - (embedding <=> query_vector) = cosine_similarity.
	type result struct {
		model.Passage
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("passages").
		Select("passages.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("1 - (embedding <=> ?) >= ?", queryVector, threshold).
		Order("similarity DESC").
		Limit(limit * 3).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	if len(results) > limit {
		results = results[:limit]
	}

	scored := make([]*contract.ScoredPassage, len(results))
	for i, res := range results {
		scored[i] = &contract.ScoredPassage{
			Passage:    r.mapper.ToEntity(&res.Passage),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *PassageRepositoryImpl) SearchFullText(ctx context.Context, query string, limit int) ([]*entity.Passage, error) {
	if limit <= 0 {
		limit = 20
	}
	var models []*model.Passage
	err := r.db.WithContext(ctx).
		Where("to_tsvector('simple', content) @@ plainto_tsquery('simple', ?)", query).
		Order(gorm.Expr("ts_rank(to_tsvector('simple', content), plainto_tsquery('simple', ?)) DESC", query)).
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PassageRepositoryImpl) RandomSample(ctx context.Context, n int) ([]*entity.Passage, error) {
	if n <= 0 {
		n = 5
	}
	var models []*model.Passage
	err := r.db.WithContext(ctx).
		Order("random()").
		Limit(n).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *PassageRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Passage{}).Count(&count).Error
	return count, err
}
