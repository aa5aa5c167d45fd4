package rewrite

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// LoadSynonymDict reads a phrase -> expansions mapping from a JSON file.
// A missing file is not an error: the service degrades to no expansion.
func LoadSynonymDict(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("synonym dictionary not found, expansions disabled", "path", path)
			return map[string][]string{}, nil
		}
		return nil, fmt.Errorf("read synonym dictionary: %w", err)
	}

	dict := map[string][]string{}
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse synonym dictionary %s: %w", path, err)
	}
	return dict, nil
}

// LoadSpellfixDict reads a misspelling -> correction mapping from a JSON
// file. A missing file yields an empty table (identity correction).
func LoadSpellfixDict(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("spellfix dictionary not found, corrections disabled", "path", path)
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read spellfix dictionary: %w", err)
	}

	dict := map[string]string{}
	if err := json.Unmarshal(data, &dict); err != nil {
		return nil, fmt.Errorf("parse spellfix dictionary %s: %w", path, err)
	}
	return dict, nil
}
