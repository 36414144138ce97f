package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	BotToken string
	AuthCode string
	Database DatabaseConfig
	LLM      LLMConfig
	Anki     AnkiConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// LLMConfig holds text backend settings. The OpenAI key is validated in
// the provider factory, only when that provider is selected.
type LLMConfig struct {
	Provider  string
	Model     string
	OllamaURL string
	APIKey    string
}

// AnkiConfig holds AnkiConnect settings
type AnkiConfig struct {
	URL       string
	DeckName  string
	ModelName string
}

// PipelineConfig holds generation budgets. Timeout env vars are integer
// seconds.
type PipelineConfig struct {
	MaxAttempts       int
	GenerationTimeout time.Duration
	SpellCheckTimeout time.Duration
	SyncTimeout       time.Duration
	SessionTTL        time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		AuthCode: os.Getenv("AUTH_CODE"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "ankibot"),
			User:     getEnv("DB_USER", "ankibot"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		LLM: LLMConfig{
			Provider:  getEnv("LLM_PROVIDER", "ollama"),
			Model:     getEnv("LLM_MODEL", "gemma2:9b"),
			OllamaURL: getEnv("OLLAMA_URL", "http://localhost:11434"),
			APIKey:    os.Getenv("OPENAI_API_KEY"),
		},
		Anki: AnkiConfig{
			URL:       getEnv("ANKI_URL", "http://localhost:8765"),
			DeckName:  getEnv("ANKI_DECK_NAME", "Default"),
			ModelName: getEnv("ANKI_MODEL_NAME", "Basic"),
		},
		Pipeline: PipelineConfig{
			MaxAttempts:       getEnvInt("MAX_GENERATION_ATTEMPTS", 4),
			GenerationTimeout: getEnvSeconds("GENERATION_TIMEOUT", 60),
			SpellCheckTimeout: getEnvSeconds("SPELL_CHECK_TIMEOUT", 20),
			SyncTimeout:       getEnvSeconds("SYNC_TIMEOUT", 30),
			SessionTTL:        getEnvSeconds("SESSION_TTL", 1800),
		},
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.AuthCode == "" {
		return nil, fmt.Errorf("AUTH_CODE is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

// getEnvSeconds reads an integer number of seconds
func getEnvSeconds(key string, defaultValue int) time.Duration {
	return time.Duration(getEnvInt(key, defaultValue)) * time.Second
}
