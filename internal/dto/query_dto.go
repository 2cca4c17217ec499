package dto

import (
	"github.com/google/uuid"
)

type QueryRequest struct {
	Question string      `json:"question" validate:"required,min=2,max=2000"`
	Casting  *CastingDTO `json:"casting,omitempty"`
}

// CastingDTO carries the result of an upstream hexagram cast. The name is
// validated against the name table server-side; it is a hint, not an order.
type CastingDTO struct {
	Name          string `json:"name"`
	Code          string `json:"code,omitempty"`
	Summary       string `json:"summary,omitempty"`
	ChangingLines []int  `json:"changing_lines,omitempty" validate:"omitempty,max=6,dive,min=1,max=6"`
}

type EntityDTO struct {
	Text     string `json:"text"`
	Code     string `json:"code"`
	Explicit bool   `json:"explicit"`
}

type SenseDTO struct {
	Word       string  `json:"word"`
	Sense      string  `json:"sense"`
	Confidence float64 `json:"confidence"`
}

type SourceDTO struct {
	Rank           int       `json:"rank"`
	PassageId      uuid.UUID `json:"passage_id"`
	EntryCode      string    `json:"entry_code"`
	ContentType    string    `json:"content_type"`
	RelevanceScore float64   `json:"relevance_score"`
	TextPreview    string    `json:"text_preview"`
}

type QueryResponse struct {
	Answer       string           `json:"answer"`
	QueryType    string           `json:"query_type"`
	Entities     []EntityDTO      `json:"entities"`
	Senses       []SenseDTO       `json:"senses,omitempty"`
	Strategy     string           `json:"strategy"`
	Confidence   float64          `json:"confidence"`
	Sources      []SourceDTO      `json:"sources"`
	Trace        []string         `json:"trace"`
	StageTimings map[string]int64 `json:"stage_timings_ms"`
	Success      bool             `json:"success"`
}

type HealthResponse struct {
	Status     string                  `json:"status"`
	Corpus     CorpusHealthDTO         `json:"corpus"`
	StageStats map[string]StageStatDTO `json:"stage_stats"`
}

type CorpusHealthDTO struct {
	Reachable    bool  `json:"reachable"`
	PassageCount int64 `json:"passage_count"`
}

type StageStatDTO struct {
	Runs      int64   `json:"runs"`
	Failures  int64   `json:"failures"`
	AvgMillis float64 `json:"avg_ms"`
}
