package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	APIToken string
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	// URI is a full DSN. When set it takes precedence over the
	// individual host/port/user fields.
	URI      string
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// TableSchema optionally qualifies the PATIENTS table
	// (e.g. a schema name on shared database instances).
	TableSchema string
}

type ServerConfig struct {
	Port    string
	GinMode string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		APIToken: os.Getenv("API_TOKEN"),
		Database: DatabaseConfig{
			URI:         getEnv("DB_URI", ""),
			Host:        getEnv("DB_HOST", "localhost"),
			Port:        getEnv("DB_PORT", "3306"),
			User:        getEnv("DB_USER", "root"),
			Password:    getEnv("DB_PASSWORD", ""),
			Database:    getEnv("DB_NAME", "patients"),
			TableSchema: getEnv("TABLE_SCHEMA", ""),
		},
		Server: ServerConfig{
			Port:    getEnv("PORT", "5000"),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	return config
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
