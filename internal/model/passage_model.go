package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type Passage struct {
	Id          uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryCode   string            `gorm:"type:varchar(64);not null;index"`
	ContentType string            `gorm:"type:varchar(32);not null"`
	Content     string            `gorm:"type:text;not null"`
	Footnotes   datatypes.JSONMap `gorm:"type:jsonb"`
	Embedding   pgvector.Vector   `gorm:"type:vector(768)"` // text-embedding-004 / nomic-embed-text dimensions
	CreatedAt   time.Time         `gorm:"autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime"`
}

func (Passage) TableName() string {
	return "passages"
}
