package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFrench(t *testing.T) *Lexicon {
	t.Helper()
	return Build([]Word{
		NewWord("CHAT", "petit félin domestique", 9, true),
		NewWord("CHATS", "pluriel de chat", 14, true),
		NewWord("CHIEN", "canidé domestique", 10, true),
		NewWord("CHANT", "suite de sons musicaux", 10, true),
		NewWord("TACHE", "marque salissante", 10, true),
		NewWord("ZEBRE", "équidé rayé", 25, true),
	})
}

func TestPrefixSearchContainsEveryPrefix(t *testing.T) {
	lx := buildFrench(t)

	// every prefix of an inserted word must yield that word
	word := "CHATS"
	for k := 1; k <= len(word); k++ {
		results := lx.PrefixSearch(word[:k], 50)
		texts := make([]string, 0, len(results))
		for _, w := range results {
			texts = append(texts, w.Text)
		}
		assert.Contains(t, texts, word, "prefix %q", word[:k])
	}
}

func TestPrefixSearchLexicographicOrder(t *testing.T) {
	lx := buildFrench(t)

	results := lx.PrefixSearch("CHA", 50)
	require.Len(t, results, 3)
	assert.Equal(t, "CHANT", results[0].Text)
	assert.Equal(t, "CHAT", results[1].Text)
	assert.Equal(t, "CHATS", results[2].Text)
}

func TestPrefixSearchEdgeCases(t *testing.T) {
	lx := buildFrench(t)

	assert.Empty(t, lx.PrefixSearch("", 10), "empty prefix")
	assert.Empty(t, lx.PrefixSearch("CHOU", 10), "broken path")
	assert.Len(t, lx.PrefixSearch("CHA", 2), 2, "limit honored")
	// oversized limit clamps instead of failing
	assert.Len(t, lx.PrefixSearch("CHA", 1<<20), 3)
}

func TestInsertDuplicateLastWriteWins(t *testing.T) {
	lx := Build([]Word{
		NewWord("CHAT", "first", 1, true),
		NewWord("CHAT", "second", 9, true),
	})

	assert.Equal(t, 1, lx.Count())
	w, ok := lx.Lookup("CHAT")
	require.True(t, ok)
	assert.Equal(t, "second", w.Definition)
	assert.Equal(t, 9, w.Points)
}

func TestPatternSearch(t *testing.T) {
	lx := buildFrench(t)

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"literal word returns exactly itself", "CHAT", []string{"CHAT"}},
		{"single wildcard", "C?AT", []string{"CHAT"}},
		{"question marks fix the length", "CHA?", []string{"CHAT"}},
		{"star matches zero or more", "CHA*", []string{"CHANT", "CHAT", "CHATS"}},
		{"star in the middle", "C*T", []string{"CHANT", "CHAT"}},
		{"leading star", "*CHE", []string{"TACHE"}},
		{"all wildcards of length five", "?????", []string{"CHANT", "CHATS", "CHIEN", "TACHE", "ZEBRE"}},
		{"no match", "Q*", nil},
		{"empty pattern", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := lx.PatternSearch(tt.pattern, 50)
			require.NoError(t, err)
			texts := make([]string, 0, len(results))
			for _, w := range results {
				texts = append(texts, w.Text)
			}
			if tt.expected == nil {
				assert.Empty(t, texts)
			} else {
				assert.Equal(t, tt.expected, texts)
			}
		})
	}
}

func TestPatternSearchNoDuplicatesWithMultipleStars(t *testing.T) {
	lx := buildFrench(t)

	results, err := lx.PatternSearch("**A**", 50)
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, w := range results {
		assert.False(t, seen[w.Text], "duplicate %q", w.Text)
		seen[w.Text] = true
	}
	assert.True(t, seen["CHAT"])
	assert.True(t, seen["TACHE"])
}

func TestPatternSearchBadSyntax(t *testing.T) {
	lx := buildFrench(t)

	_, err := lx.PatternSearch("CH4T", 10)
	assert.ErrorIs(t, err, ErrBadPattern)
	_, err = lx.PatternSearch("CH-T", 10)
	assert.ErrorIs(t, err, ErrBadPattern)
}

func TestAnagramSearch(t *testing.T) {
	lx := buildFrench(t)

	// TACHS can form CHAT (and TACHE is missing an E, CHATS needs two... no,
	// CHATS needs exactly T,A,C,H,S — all present)
	matches := lx.AnagramSearch("TACHS", 0, 50)
	texts := make([]string, 0, len(matches))
	for _, m := range matches {
		texts = append(texts, m.Word.Text)
	}
	assert.Contains(t, texts, "CHAT")
	assert.Contains(t, texts, "CHATS")
	assert.NotContains(t, texts, "TACHE")
}

func TestAnagramSearchLetterBudget(t *testing.T) {
	lx := Build([]Word{
		NewWord("CHAT", "", 9, true),
		NewWord("CHATS", "", 14, true),
	})

	// single S short of CHATS
	matches := lx.AnagramSearch("TACH", 0, 50)
	require.Len(t, matches, 1)
	assert.Equal(t, "CHAT", matches[0].Word.Text)

	// no word may use more copies of a letter than available
	for _, m := range lx.AnagramSearch("TACHS", 0, 50) {
		avail := map[rune]int{'T': 1, 'A': 1, 'C': 1, 'H': 1, 'S': 1}
		for _, r := range m.Word.Text {
			avail[r]--
			assert.GreaterOrEqual(t, avail[r], 0, "word %q overdraws %q", m.Word.Text, string(r))
		}
	}
}

func TestAnagramSearchBlanks(t *testing.T) {
	lx := Build([]Word{
		NewWord("CHAT", "", 9, true),
		NewWord("CHATS", "", 14, true),
	})

	// one blank covers the missing S
	matches := lx.AnagramSearch("TACH", 1, 50)
	require.Len(t, matches, 2)

	var chats *AnagramMatch
	for i := range matches {
		if matches[i].Word.Text == "CHATS" {
			chats = &matches[i]
		}
	}
	require.NotNil(t, chats)
	assert.Equal(t, []rune{'S'}, chats.BlankLetters, "blank must cover the S")

	// the '?' token in the rack means a blank too
	matches = lx.AnagramSearch("TACH?", 0, 50)
	assert.Len(t, matches, 2)

	// blanks never double-count: CHATS needs two missing letters from TAC?
	matches = lx.AnagramSearch("TAC?", 0, 50)
	for _, m := range matches {
		assert.NotEqual(t, "CHATS", m.Word.Text)
	}
}

func TestAnagramSearchEmptyRack(t *testing.T) {
	lx := buildFrench(t)
	assert.Empty(t, lx.AnagramSearch("", 0, 50))
}

func TestLookup(t *testing.T) {
	lx := buildFrench(t)

	w, ok := lx.Lookup("CHAT")
	require.True(t, ok)
	assert.Equal(t, 9, w.Points)
	assert.True(t, w.Valid)
	assert.Equal(t, 4, w.Length)

	_, ok = lx.Lookup("CHA")
	assert.False(t, ok)
	_, ok = lx.Lookup("")
	assert.False(t, ok)
}

func TestWordsOfLength(t *testing.T) {
	lx := buildFrench(t)

	assert.Len(t, lx.WordsOfLength(4), 1)
	assert.Len(t, lx.WordsOfLength(5), 5)
	assert.Empty(t, lx.WordsOfLength(12))
}

func BenchmarkPrefixSearch(b *testing.B) {
	words := make([]Word, 0, 26*26*26)
	for a := 'A'; a <= 'Z'; a++ {
		for c := 'A'; c <= 'Z'; c++ {
			for d := 'A'; d <= 'Z'; d++ {
				text := string([]rune{a, c, d})
				words = append(words, NewWord(text, "", 3, true))
			}
		}
	}
	lx := Build(words)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		lx.PrefixSearch("QU", 20)
	}
}
