package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Search     SearchConfig
	Dictionary DictionaryConfig
	Reranker   RerankerConfig
	Database   DatabaseConfig
	HTTP       HTTPConfig
}

// SearchConfig points at the external retrieval engine.
type SearchConfig struct {
	URL      string
	Index    string
	Username string
	Password string
	Timeout  time.Duration
	Size     int
}

type DictionaryConfig struct {
	SynonymsPath string
	SpellfixPath string
}

type RerankerConfig struct {
	ModelPath string
}

type DatabaseConfig struct {
	URL string
}

type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
}

func Load() *Config {
	cfg := &Config{
		Search: SearchConfig{
			URL:      getEnvOrDefault("SEARCH_ENGINE_URL", "http://localhost:9200"),
			Index:    getEnvOrDefault("SEARCH_INDEX", "autonews"),
			Username: getEnvOrDefault("SEARCH_USERNAME", ""),
			Password: getEnvOrDefault("SEARCH_PASSWORD", ""),
			Timeout:  15 * time.Second,
			Size:     getEnvInt("SEARCH_SIZE", 50),
		},
		Dictionary: DictionaryConfig{
			SynonymsPath: getEnvOrDefault("SYNONYMS_PATH", "synonyms.json"),
			SpellfixPath: getEnvOrDefault("SPELLFIX_PATH", "spellfix.json"),
		},
		Reranker: RerankerConfig{
			ModelPath: getEnvOrDefault("RERANKER_MODEL_PATH", "reranker_model.json"),
		},
		Database: DatabaseConfig{
			URL: getEnvOrDefault("DATABASE_URL", ""),
		},
		HTTP: HTTPConfig{
			Addr:              getEnvOrDefault("HTTP_ADDR", ":9400"),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	slog.Info("Configuration loaded",
		"search_url", cfg.Search.URL,
		"search_index", cfg.Search.Index,
		"http_addr", cfg.HTTP.Addr,
	)

	return cfg
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid integer env value, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
