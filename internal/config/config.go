package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Retrieval RetrievalConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	JWTExpiryHours     int
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini string
}

type AIConfig struct {
	LLMProvider   string // "gemini" or "ollama"
	LLMModel      string
	OllamaBaseURL string
}

// RetrievalConfig tunes the question answering pipeline.
type RetrievalConfig struct {
	WindowSize     int // passage window size in bytes
	WindowOverlap  int
	TopK           int
	ContextBudget  int // max combined passage bytes per answer
	GenTimeout     time.Duration
	AnswerCacheTTL time.Duration
	DailyAskLimit  int // questions per user per day, 0 disables
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", "dev-secret-change-me"),
			JWTExpiryHours:     getEnvAsInt("JWT_EXPIRY_HOURS", 24),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:      getEnv("LLM_MODEL", "gemini-2.0-flash"),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Retrieval: RetrievalConfig{
			WindowSize:     getEnvAsInt("RETRIEVAL_WINDOW_SIZE", 600),
			WindowOverlap:  getEnvAsInt("RETRIEVAL_WINDOW_OVERLAP", 120),
			TopK:           getEnvAsInt("RETRIEVAL_TOP_K", 20),
			ContextBudget:  getEnvAsInt("RETRIEVAL_CONTEXT_BUDGET", 6000),
			GenTimeout:     time.Duration(getEnvAsInt("GENERATION_TIMEOUT_SECONDS", 30)) * time.Second,
			AnswerCacheTTL: time.Duration(getEnvAsInt("ANSWER_CACHE_TTL_MINUTES", 15)) * time.Minute,
			DailyAskLimit:  getEnvAsInt("DAILY_ASK_LIMIT", 50),
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
