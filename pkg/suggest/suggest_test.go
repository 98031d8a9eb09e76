package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrabbot/lexiserve/pkg/dict"
	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

func frenchEngine(t *testing.T) *Engine {
	t.Helper()
	svc, err := dict.NewService("fr", dict.CacheConfig{})
	require.NoError(t, err)
	svc.Reload([]lexicon.Word{
		lexicon.NewWord("CHAT", "petit félin", 9, true),
		lexicon.NewWord("CHAP", "", 11, true),
		lexicon.NewWord("CHATS", "pluriel de chat", 14, true),
		lexicon.NewWord("TACHE", "marque salissante", 10, true),
		lexicon.NewWord("CHIEN", "", 10, true),
		lexicon.NewWord("OBSOLETE", "", 10, false),
	})
	return NewEngine(svc)
}

func TestSubstitutionCost(t *testing.T) {
	tests := []struct {
		name string
		a, b rune
		want float64
	}{
		{"same key", 'A', 'A', 0},
		{"adjacent keys", 'Y', 'T', 0.5},
		{"next row", 'Y', 'G', 0.8},
		{"two keys over", 'Y', 'R', 1.2},
		{"across the board", 'Y', 'P', 1.8},
		{"unknown rune", 'É', 'E', 1.8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, substitutionCost(tt.a, tt.b), 1e-9)
		})
	}
}

func TestCorrectionsValidWordReturnsItself(t *testing.T) {
	e := frenchEngine(t)

	got := e.Corrections("chat", 5)
	require.Len(t, got, 1)
	assert.Equal(t, "CHAT", got[0].Word)
	assert.Equal(t, 9, got[0].Points)
	assert.Zero(t, got[0].Distance)
}

func TestCorrectionsRankByKeyboardDistance(t *testing.T) {
	e := frenchEngine(t)

	// Y sits next to T but far from P, so CHAT outranks CHAP
	got := e.Corrections("CHAY", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "CHAT", got[0].Word)
	assert.InDelta(t, 0.5, got[0].Distance, 1e-9)

	var words []string
	for _, s := range got {
		words = append(words, s.Word)
	}
	assert.Contains(t, words, "CHAP")
	assert.Less(t, got[0].Distance, got[len(got)-1].Distance)
}

func TestCorrectionsAdjacentSwapIsCheap(t *testing.T) {
	e := frenchEngine(t)

	got := e.Corrections("CAHT", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "CHAT", got[0].Word)
	assert.InDelta(t, 0.7, got[0].Distance, 1e-9)
}

func TestCorrectionsSkipInvalidEntries(t *testing.T) {
	e := frenchEngine(t)

	for _, s := range e.Corrections("OBSOLET", 10) {
		assert.NotEqual(t, "OBSOLETE", s.Word)
	}
}

func TestCorrectionsRespectsLimit(t *testing.T) {
	e := frenchEngine(t)

	got := e.Corrections("CHAY", 1)
	assert.Len(t, got, 1)
}

func TestByLettersRanksByPoints(t *testing.T) {
	e := frenchEngine(t)

	got := e.ByLetters("TACHS", 0, 0, 10)
	require.GreaterOrEqual(t, len(got), 2)
	assert.Equal(t, "CHATS", got[0].Word)
	assert.Equal(t, 14, got[0].Points)
	assert.Equal(t, "CHAT", got[1].Word)

	// no E in the rack
	for _, s := range got {
		assert.NotEqual(t, "TACHE", s.Word)
	}
}

func TestByLettersBlanksScoreZero(t *testing.T) {
	e := frenchEngine(t)

	got := e.ByLetters("TACH", 1, 0, 10)
	byWord := make(map[string]Scored)
	for _, s := range got {
		byWord[s.Word] = s
	}

	// CHATS and TACHE each spend the blank on a one-point letter
	require.Contains(t, byWord, "CHATS")
	assert.Equal(t, 13, byWord["CHATS"].Points)
	require.Contains(t, byWord, "TACHE")
	assert.Equal(t, 9, byWord["TACHE"].Points)
	// CHAT needs no blank and keeps its full value
	require.Contains(t, byWord, "CHAT")
	assert.Equal(t, 9, byWord["CHAT"].Points)

	// points tie between TACHE and CHAT breaks on length
	assert.Equal(t, "CHATS", got[0].Word)
	assert.Equal(t, "TACHE", got[1].Word)
	assert.Equal(t, "CHAT", got[2].Word)
}

func TestByLettersMinLength(t *testing.T) {
	e := frenchEngine(t)

	got := e.ByLetters("TACHS", 0, 5, 10)
	require.Len(t, got, 1)
	assert.Equal(t, "CHATS", got[0].Word)
}

func TestHighScore(t *testing.T) {
	e := frenchEngine(t)

	got := e.HighScore("TACHS", 0)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 10)
	assert.Equal(t, "CHATS", got[0].Word)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Points, got[i].Points)
	}
}

func BenchmarkCorrections(b *testing.B) {
	svc, err := dict.NewService("en", dict.CacheConfig{})
	if err != nil {
		b.Fatal(err)
	}
	var words []lexicon.Word
	for a := 'A'; a <= 'Z'; a++ {
		for c := 'A'; c <= 'Z'; c++ {
			for d := 'A'; d <= 'Z'; d++ {
				words = append(words, lexicon.NewWord(string([]rune{a, c, d, 'S'}), "", 4, true))
			}
		}
	}
	svc.Reload(words)
	e := NewEngine(svc)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Corrections("QETS", 10)
	}
}
