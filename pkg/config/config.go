package config

import (
	"os"
	"strconv"
)

// ServerConfig holds everything the API server reads from the environment.
type ServerConfig struct {
	Host           string
	Port           string
	FrontendURL    string
	LogLevel       string
	LogJSON        bool
	RateLimitRPS   int
	RateLimitBurst int
}

// LoadServerConfig reads the server configuration from environment
// variables. The default port matches what browser clients expect.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		Host:           getEnvOrDefault("API_HOST", ""),
		Port:           getEnvOrDefault("PORT", "3000"),
		FrontendURL:    getEnvOrDefault("FRONTEND_URL", "*"),
		LogLevel:       getEnvOrDefault("LOG_LEVEL", "INFO"),
		LogJSON:        os.Getenv("LOG_FORMAT") == "json",
		RateLimitRPS:   GetEnvInt("RATE_LIMIT_RPS", 50),
		RateLimitBurst: GetEnvInt("RATE_LIMIT_BURST", 100),
	}
}

func (c *ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func GetEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}
