package rewrite

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSynonymDict(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields empty dictionary", func(t *testing.T) {
		dict, err := LoadSynonymDict(filepath.Join(dir, "absent.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dict) != 0 {
			t.Errorf("dict = %v, want empty", dict)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "synonyms.json")
		content := `{"бензин": ["топливо", "аи-95"]}`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		dict, err := LoadSynonymDict(path)
		if err != nil {
			t.Fatalf("LoadSynonymDict: %v", err)
		}
		if len(dict["бензин"]) != 2 {
			t.Errorf("dict = %v", dict)
		}
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		path := filepath.Join(dir, "broken.json")
		if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadSynonymDict(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

func TestLoadSpellfixDict(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file yields empty dictionary", func(t *testing.T) {
		dict, err := LoadSpellfixDict(filepath.Join(dir, "absent.json"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(dict) != 0 {
			t.Errorf("dict = %v, want empty", dict)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(dir, "spellfix.json")
		if err := os.WriteFile(path, []byte(`{"бинзин": "бензин"}`), 0o644); err != nil {
			t.Fatal(err)
		}

		dict, err := LoadSpellfixDict(path)
		if err != nil {
			t.Fatalf("LoadSpellfixDict: %v", err)
		}
		if dict["бинзин"] != "бензин" {
			t.Errorf("dict = %v", dict)
		}
	})
}
