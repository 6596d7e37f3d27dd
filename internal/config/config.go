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
	Ai        AIConfig
	Resources ResourceConfig
	Session   SessionConfig
	Otel      OtelConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	BodyLimitBytes     int
}

type AIConfig struct {
	LLMProvider string // "openai", "huggingface" or "ollama"
	LLMModel    string
	LLMBaseURL  string // empty means the provider default
	LLMTimeout  time.Duration
}

// ResourceConfig points at the read-only files behind the static pages.
type ResourceConfig struct {
	KPIFile    string
	ManualFile string
	AssetsDir  string
	LogoFile   string
}

type SessionConfig struct {
	CookieName      string
	TTL             time.Duration
	CleanupInterval time.Duration
}

type OtelConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
			BodyLimitBytes:     getEnvAsInt("BODY_LIMIT_BYTES", 10*1024*1024),
		},
		Ai: AIConfig{
			LLMProvider: getEnv("LLM_PROVIDER", "openai"),
			LLMModel:    getEnv("LLM_MODEL", "gpt-4"),
			LLMBaseURL:  getEnv("LLM_BASE_URL", ""),
			LLMTimeout:  getEnvAsDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Resources: ResourceConfig{
			KPIFile:    getEnv("KPI_FILE", "KPI.json"),
			ManualFile: getEnv("MANUAL_FILE", "empire_manual.md"),
			AssetsDir:  getEnv("ASSETS_DIR", "./assets"),
			LogoFile:   getEnv("LOGO_FILE", "logo.jpg"),
		},
		Session: SessionConfig{
			CookieName:      getEnv("SESSION_COOKIE_NAME", "hea_session"),
			TTL:             getEnvAsDuration("SESSION_TTL", 12*time.Hour),
			CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
		},
		Otel: OtelConfig{
			Enabled:     getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "housing-empire-ai"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
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

// getEnvAsDuration accepts Go duration strings ("90s") or bare seconds ("90").
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
