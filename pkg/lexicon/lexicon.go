package lexicon

import (
	"errors"
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon bundles the structures built from one word list: the letter trie
// for backtracking searches, a patricia store for exact lookups and prefix
// enumeration, and length buckets for the suggestion engine. Built once,
// read-only afterwards; owners swap whole Lexicon pointers on reload.
type Lexicon struct {
	trie     *Trie
	store    *patricia.Trie
	byLength map[int][]*Word
	count    int
}

var errStopVisit = errors.New("visit done")

// Build constructs a Lexicon from a word list. Duplicate texts collapse to
// the last occurrence. Words are inserted in sorted order, which keeps
// patricia subtree visits lexicographic.
func Build(words []Word) *Lexicon {
	last := make(map[string]int, len(words))
	for i := range words {
		if words[i].Text != "" {
			last[words[i].Text] = i
		}
	}
	texts := make([]string, 0, len(last))
	for text := range last {
		texts = append(texts, text)
	}
	sort.Strings(texts)

	lx := &Lexicon{
		trie:     NewTrie(),
		store:    patricia.NewTrie(),
		byLength: make(map[int][]*Word),
	}
	for _, text := range texts {
		w := words[last[text]]
		w.Length = len([]rune(text))
		entry := &w
		lx.trie.Insert(entry)
		lx.store.Insert(patricia.Prefix(text), entry)
		lx.byLength[entry.Length] = append(lx.byLength[entry.Length], entry)
		lx.count++
	}
	return lx
}

// Count returns the number of indexed words.
func (l *Lexicon) Count() int {
	return l.count
}

// Lookup finds the entry for an exact normalized text.
func (l *Lexicon) Lookup(text string) (*Word, bool) {
	if text == "" {
		return nil, false
	}
	item := l.store.Get(patricia.Prefix(text))
	if item == nil {
		return nil, false
	}
	return item.(*Word), true
}

// PrefixSearch returns up to limit words starting with prefix, in
// lexicographic order.
func (l *Lexicon) PrefixSearch(prefix string, limit int) []*Word {
	if prefix == "" {
		return nil
	}
	limit = clampLimit(limit)
	var out []*Word
	err := l.store.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		out = append(out, item.(*Word))
		if len(out) >= limit {
			return errStopVisit
		}
		return nil
	})
	if err != nil && !errors.Is(err, errStopVisit) {
		return nil
	}
	return out
}

// PatternSearch matches a wildcard pattern; see Trie.PatternSearch.
func (l *Lexicon) PatternSearch(pattern string, limit int) ([]*Word, error) {
	return l.trie.PatternSearch(pattern, limit)
}

// AnagramSearch finds words formable from the given rack letters; see
// Trie.AnagramSearch.
func (l *Lexicon) AnagramSearch(letters string, blanks, limit int) []AnagramMatch {
	return l.trie.AnagramSearch(letters, blanks, limit)
}

// WordsOfLength returns the bucket of words with exactly n letters. The
// returned slice is shared and must not be mutated.
func (l *Lexicon) WordsOfLength(n int) []*Word {
	return l.byLength[n]
}
