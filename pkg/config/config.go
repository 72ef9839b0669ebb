package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App    AppConfig
	Server ServerConfig
	Model  ModelConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port           string
	RequestTimeout time.Duration
	AllowOrigins   []string
}

type ModelConfig struct {
	Path string
}

const (
	defaultModelPath      = "models/video_game_hit_model.json"
	defaultRequestTimeout = 5
)

func Load() (*Config, error) {
	_ = godotenv.Load()

	timeoutSecs, err := strconv.Atoi(getEnv("REQUEST_TIMEOUT", strconv.Itoa(defaultRequestTimeout)))
	if err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if timeoutSecs <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be positive")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Video Game Hit Predictor"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			RequestTimeout: time.Duration(timeoutSecs) * time.Second,
			AllowOrigins:   splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
		},
		Model: ModelConfig{
			Path: strings.TrimSpace(getEnv("MODEL_PATH", defaultModelPath)),
		},
	}

	if cfg.Model.Path == "" {
		return nil, errors.New("missing model path")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
