package mapper

import (
	"fmt"
	"time"

	"kinhdich-rag-be/internal/entity"
	"kinhdich-rag-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type PassageMapper struct{}

func NewPassageMapper() *PassageMapper {
	return &PassageMapper{}
}

func (m *PassageMapper) ToEntity(p *model.Passage) *entity.Passage {
	if p == nil {
		return nil
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	footnotes := make(map[string]string, len(p.Footnotes))
	for k, v := range p.Footnotes {
		footnotes[k] = fmt.Sprintf("%v", v)
	}

	return &entity.Passage{
		Id:          p.Id,
		EntryCode:   p.EntryCode,
		ContentType: p.ContentType,
		Content:     p.Content,
		Footnotes:   footnotes,
		Embedding:   p.Embedding.Slice(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PassageMapper) ToModel(p *entity.Passage) *model.Passage {
	if p == nil {
		return nil
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	footnotes := make(datatypes.JSONMap, len(p.Footnotes))
	for k, v := range p.Footnotes {
		footnotes[k] = v
	}

	return &model.Passage{
		Id:          p.Id,
		EntryCode:   p.EntryCode,
		ContentType: p.ContentType,
		Content:     p.Content,
		Footnotes:   footnotes,
		Embedding:   pgvector.NewVector(p.Embedding),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *PassageMapper) ToEntities(passages []*model.Passage) []*entity.Passage {
	entities := make([]*entity.Passage, len(passages))
	for i, p := range passages {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
