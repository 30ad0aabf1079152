// Package config gerencia configurações da aplicação via variáveis de ambiente.
//
// # Variáveis de Ambiente
//
// ## API de leilões
//   - API_BASE_URL: URL base da API remota (default: http://localhost:8080)
//   - API_TIMEOUT_SECONDS: Timeout das chamadas HTTP (default: 30)
//
// ## Console
//   - SERVER_PORT: Porta do console (default: 3000)
//   - SESSION_FILE: Arquivo onde a sessão autenticada é persistida
//     (default: .console/sessao.json)
//   - LOG_LEVEL: Nível de log do zerolog (default: info)
//
// ## Tracing
//   - TRACING_ENABLED: Habilita exportação OTLP (default: false)
//   - TRACING_ENDPOINT: Endpoint gRPC do coletor (default: localhost:4317)
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL string
	APITimeout time.Duration

	ServerPort  string
	SessionFile string
	LogLevel    string

	TracingEnabled  bool
	TracingEndpoint string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		APIBaseURL: getEnv("API_BASE_URL", "http://localhost:8080"),
		APITimeout: time.Duration(getEnvInt("API_TIMEOUT_SECONDS", 30)) * time.Second,

		ServerPort:  getEnv("SERVER_PORT", "3000"),
		SessionFile: getEnv("SESSION_FILE", ".console/sessao.json"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		TracingEnabled:  getEnv("TRACING_ENABLED", "false") == "true",
		TracingEndpoint: getEnv("TRACING_ENDPOINT", "localhost:4317"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
