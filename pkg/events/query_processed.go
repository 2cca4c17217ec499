package events

import "time"

const QueryProcessedType = "QUERY_PROCESSED"

// QueryProcessedEvent is emitted after every pipeline run, successful or
// not. It feeds the analytics stream and never blocks the response path.
type QueryProcessedEvent struct {
	Question   string
	QueryType  string
	Strategy   string
	Confidence float64
	Success    bool
	DurationMs int64
	OccurredAt time.Time
}

func NewQueryProcessedEvent(question, queryType, strategy string, confidence float64, success bool, durationMs int64) QueryProcessedEvent {
	return QueryProcessedEvent{
		Question:   question,
		QueryType:  queryType,
		Strategy:   strategy,
		Confidence: confidence,
		Success:    success,
		DurationMs: durationMs,
		OccurredAt: time.Now(),
	}
}

func (e QueryProcessedEvent) EventType() string {
	return QueryProcessedType
}

func (e QueryProcessedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"question":    e.Question,
		"query_type":  e.QueryType,
		"strategy":    e.Strategy,
		"confidence":  e.Confidence,
		"success":     e.Success,
		"duration_ms": e.DurationMs,
		"occurred_at": e.OccurredAt.Format(time.RFC3339),
	}
}

func (e QueryProcessedEvent) Timestamp() time.Time {
	return e.OccurredAt
}
