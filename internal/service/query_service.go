package service

import (
	"context"
	"encoding/json"
	"time"

	"kinhdich-rag-be/internal/dto"
	"kinhdich-rag-be/internal/pkg/logger"
	"kinhdich-rag-be/internal/repository/contract"
	"kinhdich-rag-be/pkg/events"
	"kinhdich-rag-be/pkg/pipeline/executor"
	"kinhdich-rag-be/pkg/pipeline/state"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IQueryService interface {
	ProcessQuery(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
}

type queryService struct {
	pipeline  *executor.Pipeline
	passages  contract.PassageRepository
	pubSub    *gochannel.GoChannel
	topicName string
	logger    logger.ILogger
}

func NewQueryService(
	pipeline *executor.Pipeline,
	passages contract.PassageRepository,
	pubSub *gochannel.GoChannel,
	topicName string,
	log logger.ILogger,
) IQueryService {
	return &queryService{
		pipeline:  pipeline,
		passages:  passages,
		pubSub:    pubSub,
		topicName: topicName,
		logger:    log,
	}
}

// ProcessQuery runs the pipeline and maps the result. A fatal retrieval
// failure still yields a response body; the caller sees success=false with
// an explanatory answer rather than an opaque 500.
func (s *queryService) ProcessQuery(ctx context.Context, req *dto.QueryRequest) (*dto.QueryResponse, error) {
	start := time.Now()

	var casting *state.CastingContext
	if req.Casting != nil {
		casting = &state.CastingContext{
			Name:          req.Casting.Name,
			Code:          req.Casting.Code,
			Summary:       req.Casting.Summary,
			ChangingLines: req.Casting.ChangingLines,
		}
	}

	result, err := s.pipeline.Execute(ctx, req.Question, casting)
	if err != nil {
		s.logger.Error("QueryService", "Pipeline execution failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	s.publishProcessed(req.Question, result, time.Since(start))

	return toQueryResponse(result), nil
}

func (s *queryService) Health(ctx context.Context) *dto.HealthResponse {
	res := &dto.HealthResponse{Status: "ok"}

	count, err := s.passages.Count(ctx)
	if err != nil {
		s.logger.Warn("QueryService", "Passage store unreachable", map[string]interface{}{
			"error": err.Error(),
		})
		res.Status = "degraded"
	} else {
		res.Corpus.Reachable = true
		res.Corpus.PassageCount = count
	}

	stats := s.pipeline.Stats()
	res.StageStats = make(map[string]dto.StageStatDTO, len(stats))
	for name, st := range stats {
		res.StageStats[name] = dto.StageStatDTO{
			Runs:      st.Runs,
			Failures:  st.Failures,
			AvgMillis: st.AvgMillis,
		}
	}
	return res
}

// publishProcessed hands the analytics event to the in-process bus. The
// consumer forwards it to NATS; a failure here never reaches the client.
func (s *queryService) publishProcessed(question string, result *executor.Result, elapsed time.Duration) {
	if s.pubSub == nil {
		return
	}

	event := events.NewQueryProcessedEvent(
		question,
		result.QueryType,
		result.Strategy,
		result.Confidence,
		result.Success,
		elapsed.Milliseconds(),
	)

	payload, err := json.Marshal(event.Payload())
	if err != nil {
		s.logger.Error("QueryService", "Failed to marshal query event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := s.pubSub.Publish(s.topicName, msg); err != nil {
		s.logger.Error("QueryService", "Failed to publish query event", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func toQueryResponse(result *executor.Result) *dto.QueryResponse {
	entities := make([]dto.EntityDTO, len(result.Entities))
	for i, e := range result.Entities {
		entities[i] = dto.EntityDTO{Text: e.Text, Code: e.Code, Explicit: e.Explicit}
	}

	senses := make([]dto.SenseDTO, len(result.Senses))
	for i, sn := range result.Senses {
		senses[i] = dto.SenseDTO{Word: sn.Word, Sense: sn.Sense, Confidence: sn.Confidence}
	}

	sources := make([]dto.SourceDTO, len(result.Sources))
	for i, src := range result.Sources {
		sources[i] = dto.SourceDTO{
			Rank:           src.Rank,
			PassageId:      src.PassageID,
			EntryCode:      src.EntryCode,
			ContentType:    src.ContentType,
			RelevanceScore: src.RelevanceScore,
			TextPreview:    src.TextPreview,
		}
	}

	return &dto.QueryResponse{
		Answer:       result.Answer,
		QueryType:    result.QueryType,
		Entities:     entities,
		Senses:       senses,
		Strategy:     result.Strategy,
		Confidence:   result.Confidence,
		Sources:      sources,
		Trace:        result.Trace,
		StageTimings: result.StageTimings,
		Success:      result.Success,
	}
}
