package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Cache     CacheConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	PipelineLogPath    string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	QueryTopicName     string
}

type DatabaseConfig struct {
	Connection string
}

type CacheConfig struct {
	Backend string // "memory" or "redis"
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	GeminiAPIKey      string
	OllamaBaseURL     string
	OllamaEmbedModel  string
	LLMProvider       string // "ollama" or "huggingface"
	LLMModel          string
	LLMBaseURL        string
	HuggingFaceToken  string
	JinaAPIKey        string
	RerankerEnabled   bool
}

type RetrievalConfig struct {
	TopKRetrieve        int
	TopKRerank          int
	SimilarityThreshold float64
	FuzzyThreshold      float64
	CodeCacheTTLSec     int
	QueryCacheTTLSec    int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			PipelineLogPath:    getEnv("PIPELINE_LOG_PATH", "pipeline.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			QueryTopicName:     getEnv("QUERY_PROCESSED_TOPIC_NAME", "QUERY_PROCESSED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Cache: CacheConfig{
			Backend: strings.ToLower(getEnv("CACHE_BACKEND", "memory")),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			GeminiAPIKey:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaEmbedModel:  getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:       getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:          getEnv("LLM_MODEL", "qwen2.5"),
			LLMBaseURL:        getEnv("LLM_BASE_URL", "http://localhost:11434"),
			HuggingFaceToken:  getEnv("HUGGINGFACE_API_TOKEN", ""),
			JinaAPIKey:        getEnv("JINA_API_KEY", ""),
			RerankerEnabled:   getEnvAsBool("RERANKER_ENABLED", true),
		},
		Retrieval: RetrievalConfig{
			TopKRetrieve:        getEnvAsInt("TOP_K_RETRIEVE", 20),
			TopKRerank:          getEnvAsInt("TOP_K_RERANK", 12),
			SimilarityThreshold: getEnvAsFloat("SIMILARITY_THRESHOLD", 0.25),
			FuzzyThreshold:      getEnvAsFloat("FUZZY_THRESHOLD", 0.80),
			CodeCacheTTLSec:     getEnvAsInt("CODE_CACHE_TTL_SECONDS", 600),
			QueryCacheTTLSec:    getEnvAsInt("QUERY_CACHE_TTL_SECONDS", 300),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}
