package bootstrap

import (
	"context"
	"log"
	"time"

	"kinhdich-rag-be/internal/config"
	"kinhdich-rag-be/internal/controller"
	"kinhdich-rag-be/internal/pkg/logger"
	"kinhdich-rag-be/internal/repository/implementation"
	"kinhdich-rag-be/internal/service"
	"kinhdich-rag-be/pkg/cache"
	"kinhdich-rag-be/pkg/embedding"
	embjina "kinhdich-rag-be/pkg/embedding/jina"
	"kinhdich-rag-be/pkg/lexicon"
	"kinhdich-rag-be/pkg/llm/factory"
	"kinhdich-rag-be/pkg/pipeline/dispatch"
	"kinhdich-rag-be/pkg/pipeline/executor"
	"kinhdich-rag-be/pkg/pipeline/linguistics"
	"kinhdich-rag-be/pkg/pipeline/reasoning"
	"kinhdich-rag-be/pkg/pipeline/retrieval"
	"kinhdich-rag-be/pkg/rerank"
	rerankjina "kinhdich-rag-be/pkg/rerank/jina"

	pktNats "kinhdich-rag-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueryController controller.IQueryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for cmd/probe and graceful shutdown
	Pipeline *executor.Pipeline
	Logger   logger.ILogger
	NatsPub  *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	pipelineLogger := logger.NewPipelineLogger(cfg.App.PipelineLogPath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbedModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	} else if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = embjina.NewProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Ai.GeminiAPIKey)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.HuggingFaceToken,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Reranker is optional: without it the reasoner keeps retrieval order.
	var scorer rerank.Scorer
	if cfg.Ai.RerankerEnabled && cfg.Ai.JinaAPIKey != "" {
		scorer = rerankjina.NewProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Reranker: JINA")
	} else {
		log.Printf("[INFO] Reranker disabled, keeping retrieval order")
	}

	// 4. Infrastructure
	var forwarder service.EventForwarder
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	} else {
		forwarder = natsPub
	}

	retrievalCache := buildCache(cfg)

	// 5. Pipeline
	passageRepo := implementation.NewPassageRepository(db)
	store := service.NewDocumentStore(passageRepo)
	lex := lexicon.New()

	retrievalCfg := retrieval.DefaultConfig()
	retrievalCfg.TopK = cfg.Retrieval.TopKRetrieve
	retrievalCfg.SimilarityThreshold = cfg.Retrieval.SimilarityThreshold
	retrievalCfg.FuzzyThreshold = cfg.Retrieval.FuzzyThreshold
	retrievalCfg.CodeTTL = time.Duration(cfg.Retrieval.CodeCacheTTLSec) * time.Second
	retrievalCfg.QueryTTL = time.Duration(cfg.Retrieval.QueryCacheTTLSec) * time.Second

	reasoningCfg := reasoning.DefaultConfig()
	reasoningCfg.TopKRerank = cfg.Retrieval.TopKRerank

	pipeline := executor.NewPipeline(
		dispatch.NewDispatcher(embeddingProvider, pipelineLogger),
		linguistics.NewAnalyzer(lex, pipelineLogger),
		retrieval.NewRetriever(store, embeddingProvider, retrievalCache, lex, pipelineLogger, retrievalCfg),
		reasoning.NewReasoner(scorer, llmProvider, pipelineLogger, reasoningCfg),
		pipelineLogger,
	)

	// 6. Services
	queryService := service.NewQueryService(
		pipeline,
		passageRepo,
		pubSub,
		cfg.App.QueryTopicName,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.QueryTopicName,
		forwarder,
	)

	return &Container{
		QueryController: controller.NewQueryController(queryService),
		ConsumerService: consumerService,
		Pipeline:        pipeline,
		Logger:          sysLogger,
		NatsPub:         natsPub,
	}
}

// buildCache selects the retrieval cache backend. Redis connectivity
// problems fall back to the in-memory cache instead of failing startup.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.Cache.Backend != "redis" {
		return cache.NewMemoryCache(5*time.Minute, 10*time.Minute)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Falling back to in-memory cache", err)
		return cache.NewMemoryCache(5*time.Minute, 10*time.Minute)
	}

	log.Printf("[INFO] Using Redis retrieval cache")
	return cache.NewRedisCache(rdb, "oracle:")
}
