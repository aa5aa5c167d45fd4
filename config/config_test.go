package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SEARCH_ENGINE_URL", "SEARCH_INDEX", "SEARCH_SIZE",
		"SYNONYMS_PATH", "SPELLFIX_PATH", "RERANKER_MODEL_PATH",
		"DATABASE_URL", "HTTP_ADDR",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "http://localhost:9200", cfg.Search.URL)
	assert.Equal(t, "autonews", cfg.Search.Index)
	assert.Equal(t, 50, cfg.Search.Size)
	assert.Equal(t, "synonyms.json", cfg.Dictionary.SynonymsPath)
	assert.Equal(t, "spellfix.json", cfg.Dictionary.SpellfixPath)
	assert.Equal(t, "reranker_model.json", cfg.Reranker.ModelPath)
	assert.Empty(t, cfg.Database.URL)
	assert.Equal(t, ":9400", cfg.HTTP.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SEARCH_ENGINE_URL", "http://opensearch:9200")
	t.Setenv("SEARCH_INDEX", "articles")
	t.Setenv("SEARCH_SIZE", "25")
	t.Setenv("HTTP_ADDR", ":8080")

	cfg := Load()

	assert.Equal(t, "http://opensearch:9200", cfg.Search.URL)
	assert.Equal(t, "articles", cfg.Search.Index)
	assert.Equal(t, 25, cfg.Search.Size)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("SEARCH_SIZE", "not-a-number")
	assert.Equal(t, 50, Load().Search.Size)

	t.Setenv("SEARCH_SIZE", "-5")
	assert.Equal(t, 50, Load().Search.Size)
}
