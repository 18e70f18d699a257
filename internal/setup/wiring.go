package setup

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/sagarhutagi/ai-code-doctor/internal/api"
	"github.com/sagarhutagi/ai-code-doctor/internal/catalog"
	"github.com/sagarhutagi/ai-code-doctor/internal/config"
	"github.com/sagarhutagi/ai-code-doctor/internal/llm/ollama"
)

type Config struct {
	Port            string
	LogLevel        string
	OllamaHost      string
	DefaultModel    string
	MaxUploadBytes  int64
	GenerateTimeout time.Duration
	ListTimeout     time.Duration
}

type Dependencies struct {
	Handler *api.Handler
	Logger  *zerolog.Logger
}

// LoadConfig reads every setting from the environment once, at startup.
func LoadConfig() *Config {
	return &Config{
		Port:            getEnv("CODE_DOCTOR_API_PORT", "8000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		OllamaHost:      getEnv("OLLAMA_HOST", "http://localhost:11434"),
		DefaultModel:    getEnv("DEFAULT_MODEL", "codellama:7b"),
		MaxUploadBytes:  getEnvInt64("MAX_UPLOAD_BYTES", 2<<20),
		GenerateTimeout: getEnvDuration("OLLAMA_TIMEOUT", 300*time.Second),
		ListTimeout:     getEnvDuration("OLLAMA_LIST_TIMEOUT", 10*time.Second),
	}
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	client, err := ollama.NewClient(ollama.Config{
		Host:            cfg.OllamaHost,
		GenerateTimeout: cfg.GenerateTimeout,
		ListTimeout:     cfg.ListTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create Ollama client: %w", err)
	}

	actions, err := config.LoadActionsConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load actions config: %w", err)
	}

	cat := catalog.New(client, cfg.DefaultModel, logger)
	handler := api.NewHandler(client, cat, actions, cfg.DefaultModel, cfg.MaxUploadBytes, logger)

	return &Dependencies{
		Handler: handler,
		Logger:  logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		value = defaultValue
	}

	return value
}
