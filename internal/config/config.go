package config

import "github.com/caarlos0/env/v10"

// Config centralizes service configuration.
type Config struct {
	HTTPPort          string   `env:"PORT" envDefault:"3001"`
	DatabaseURL       string   `env:"DATABASE_URL"`
	GoogleAIAPIKey    string   `env:"GOOGLE_AI_API_KEY"`
	GenAIBaseURL      string   `env:"GENAI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com"`
	GenAIModel        string   `env:"GENAI_MODEL" envDefault:"gemini-pro"`
	GenAITemperature  float32  `env:"GENAI_TEMPERATURE" envDefault:"0.7"`
	GenAIMaxTokens    int      `env:"GENAI_MAX_OUTPUT_TOKENS" envDefault:"1000"`
	GenAITimeoutSecs  int      `env:"GENAI_TIMEOUT_SECONDS" envDefault:"30"`
	AllowedOrigins    []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
	PersistTimeoutSec int      `env:"PERSIST_TIMEOUT_SECONDS" envDefault:"10"`
}

// LoadConfig loads configuration from environment variables. A missing
// GOOGLE_AI_API_KEY is not an error here; it degrades to an auth-config
// failure on the first generation call.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
