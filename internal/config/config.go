package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	SMTP      SMTPConfig
	Keys      APIKeys
	Ai        AIConfig
	Interview InterviewConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini string
	HuggingFace  string
	TurnTopic    string // In-process topic for the turn audit pipeline
}

type AIConfig struct {
	// ProviderOrder is the fixed fallback priority, comma separated.
	// e.g. "gemini,huggingface,ollama"
	ProviderOrder []string

	OllamaBaseURL    string
	OllamaModel      string
	HuggingFaceModel string
	GeminiModel      string

	TTSModel       string
	AttemptTimeout time.Duration
}

type InterviewConfig struct {
	// PassingScore: answers strictly above this escalate phase depth.
	PassingScore int

	// EliteThreshold: composite scores at or above this shortlist the
	// candidate and credit the recruiter's coin ledger.
	EliteThreshold int

	// InterviewScoreFloor clamps provider-scored interviews into a
	// realistic band. Product policy, kept visible here on purpose.
	InterviewScoreFloor int

	// ProbeLimit caps barge-in follow-ups per question node.
	ProbeLimit int

	SessionIdleTTL     time.Duration
	MinTranscriptLen   int
	CaptureSettleGrace time.Duration

	// Coin amounts for ledger movements.
	EliteReferralCoins   int
	AssessmentUnlockCost int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "HireFlow"),
		},
		Keys: APIKeys{
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			HuggingFace:  getEnv("HUGGINGFACE_API_KEY", ""),
			TurnTopic:    getEnv("INTERVIEW_TURN_TOPIC_NAME", "INTERVIEW_TURN_RECORDED"),
		},
		Ai: AIConfig{
			ProviderOrder:    splitCSV(getEnv("LLM_PROVIDER_ORDER", "gemini,huggingface,ollama")),
			OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:      getEnv("OLLAMA_MODEL", "llama3"),
			HuggingFaceModel: getEnv("HUGGINGFACE_MODEL", "meta-llama/Llama-3.1-8B-Instruct"),
			GeminiModel:      getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			TTSModel:         getEnv("TTS_MODEL", "facebook/mms-tts-eng"),
			AttemptTimeout:   getEnvAsDuration("PROVIDER_TIMEOUT", 20*time.Second),
		},
		Interview: InterviewConfig{
			PassingScore:         getEnvAsInt("PASSING_SCORE", 70),
			EliteThreshold:       getEnvAsInt("ELITE_THRESHOLD", 60),
			InterviewScoreFloor:  getEnvAsInt("INTERVIEW_SCORE_FLOOR", 25),
			ProbeLimit:           getEnvAsInt("PROBE_LIMIT", 1),
			SessionIdleTTL:       getEnvAsDuration("SESSION_IDLE_TTL", 30*time.Minute),
			MinTranscriptLen:     getEnvAsInt("MIN_TRANSCRIPT_LEN", 12),
			CaptureSettleGrace:   getEnvAsDuration("CAPTURE_SETTLE_GRACE", 750*time.Millisecond),
			EliteReferralCoins:   getEnvAsInt("ELITE_REFERRAL_COINS", 50),
			AssessmentUnlockCost: getEnvAsInt("ASSESSMENT_UNLOCK_COST", 10),
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

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
