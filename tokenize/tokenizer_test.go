package tokenize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"cyrillic", "Цены на бензин", []string{"цены", "на", "бензин"}},
		{"punctuation dropped", "шины, диски — и цены!", []string{"шины", "диски", "и", "цены"}},
		{"numbers kept", "автомобили 2025 года", []string{"автомобили", "2025", "года"}},
		{"latin lowered", "проверка VIN онлайн", []string{"проверка", "vin", "онлайн"}},
		{"whitespace only", "   \t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tok.Words(tt.input))
		})
	}
}

func TestWordsJapanese(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	// No spaces between words; segmentation is morphological.
	got := tok.Words("自動車の価格")
	assert.Contains(t, got, "自動車")
	assert.Contains(t, got, "価格")
}

func TestWordSet(t *testing.T) {
	tok, err := New()
	require.NoError(t, err)

	set := tok.WordSet("бензин и снова бензин")
	assert.Len(t, set, 3)
	assert.Contains(t, set, "бензин")
	assert.Contains(t, set, "снова")
}
