package lexicon

import (
	"errors"
	"sort"
	"unicode"
)

// Search limits. A non-positive caller limit falls back to DefaultLimit,
// anything above MaxLimit is clamped down to it.
const (
	DefaultLimit = 100
	MaxLimit     = 1024

	// maxCollect bounds backtracking traversals before sort-and-truncate.
	maxCollect = 4096
)

// ErrBadPattern reports pattern syntax outside {letter, '?', '*'}.
var ErrBadPattern = errors.New("pattern may only contain letters, '?' and '*'")

// blankToken marks a blank tile in anagram letter inputs.
const blankToken = '?'

type edge struct {
	r rune
	n *node
}

// node edges stay sorted by rune so every traversal is lexicographic
// without per-visit sorting.
type node struct {
	edges    []edge
	terminal *Word
}

func (n *node) child(r rune) *node {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].r >= r })
	if i < len(n.edges) && n.edges[i].r == r {
		return n.edges[i].n
	}
	return nil
}

func (n *node) ensureChild(r rune) *node {
	i := sort.Search(len(n.edges), func(i int) bool { return n.edges[i].r >= r })
	if i < len(n.edges) && n.edges[i].r == r {
		return n.edges[i].n
	}
	child := &node{}
	n.edges = append(n.edges, edge{})
	copy(n.edges[i+1:], n.edges[i:])
	n.edges[i] = edge{r: r, n: child}
	return child
}

// Trie is a letter-edge prefix tree over normalized words. It backs the
// pattern and anagram searches that need per-letter child iteration.
type Trie struct {
	root  *node
	count int
}

func NewTrie() *Trie {
	return &Trie{root: &node{}}
}

// Len returns the number of terminal words.
func (t *Trie) Len() int {
	return t.count
}

// Insert adds a word character by character. Inserting the same text twice
// is idempotent; the last metadata wins.
func (t *Trie) Insert(w *Word) {
	if w == nil || w.Text == "" {
		return
	}
	cur := t.root
	for _, r := range w.Text {
		cur = cur.ensureChild(r)
	}
	if cur.terminal == nil {
		t.count++
	}
	cur.terminal = w
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// PrefixSearch returns up to limit words starting with prefix, in
// lexicographic order. A broken path or empty prefix yields an empty result.
func (t *Trie) PrefixSearch(prefix string, limit int) []*Word {
	if prefix == "" {
		return nil
	}
	limit = clampLimit(limit)
	cur := t.root
	for _, r := range prefix {
		if cur = cur.child(r); cur == nil {
			return nil
		}
	}
	var out []*Word
	collectWords(cur, &out, limit)
	return out
}

func collectWords(n *node, out *[]*Word, limit int) {
	if len(*out) >= limit {
		return
	}
	if n.terminal != nil {
		*out = append(*out, n.terminal)
	}
	for _, e := range n.edges {
		if len(*out) >= limit {
			return
		}
		collectWords(e.n, out, limit)
	}
}

// PatternSearch matches a wildcard pattern against the trie: a letter
// matches itself, '?' exactly one letter, '*' zero or more letters.
// Results are deduplicated and sorted before truncation so the cut at
// limit is stable. An empty pattern yields an empty result.
func (t *Trie) PatternSearch(pattern string, limit int) ([]*Word, error) {
	if pattern == "" {
		return nil, nil
	}
	pat := []rune(pattern)
	for _, r := range pat {
		if r != '?' && r != '*' && !unicode.IsLetter(r) {
			return nil, ErrBadPattern
		}
	}
	limit = clampLimit(limit)

	// '*' branches can reach the same terminal along different expansions,
	// and interleaved expansions break lexicographic emission, so matches
	// are gathered into a set and sorted afterwards.
	seen := make(map[string]*Word)
	matchPattern(t.root, pat, 0, seen)

	words := make([]*Word, 0, len(seen))
	for _, w := range seen {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool { return words[i].Text < words[j].Text })
	if len(words) > limit {
		words = words[:limit]
	}
	return words, nil
}

func matchPattern(n *node, pat []rune, idx int, seen map[string]*Word) {
	if len(seen) >= maxCollect {
		return
	}
	if idx == len(pat) {
		if n.terminal != nil {
			seen[n.terminal.Text] = n.terminal
		}
		return
	}
	switch pat[idx] {
	case '?':
		for _, e := range n.edges {
			matchPattern(e.n, pat, idx+1, seen)
		}
	case '*':
		matchPattern(n, pat, idx+1, seen)
		for _, e := range n.edges {
			matchPattern(e.n, pat, idx, seen)
		}
	default:
		if c := n.child(pat[idx]); c != nil {
			matchPattern(c, pat, idx+1, seen)
		}
	}
}

// AnagramSearch finds words formable from the given letters, each letter
// usable at most as often as it appears. A '?' in letters, or a positive
// blanks count, adds a blank tile substitutable for any single letter.
// Real tiles are always consumed before blanks, so every word is reached
// exactly once and with the fewest blanks. Results come back in
// lexicographic order, up to limit.
func (t *Trie) AnagramSearch(letters string, blanks, limit int) []AnagramMatch {
	rack := make(map[rune]int)
	for _, r := range letters {
		if r == blankToken {
			blanks++
			continue
		}
		rack[r]++
	}
	if len(rack) == 0 && blanks <= 0 {
		return nil
	}
	limit = clampLimit(limit)

	var out []AnagramMatch
	var blankStack []rune
	var walk func(n *node)
	walk = func(n *node) {
		if len(out) >= limit {
			return
		}
		if n.terminal != nil {
			m := AnagramMatch{Word: n.terminal}
			if len(blankStack) > 0 {
				m.BlankLetters = append([]rune(nil), blankStack...)
			}
			out = append(out, m)
		}
		for _, e := range n.edges {
			if len(out) >= limit {
				return
			}
			switch {
			case rack[e.r] > 0:
				rack[e.r]--
				walk(e.n)
				rack[e.r]++
			case blanks > 0:
				blanks--
				blankStack = append(blankStack, e.r)
				walk(e.n)
				blankStack = blankStack[:len(blankStack)-1]
				blanks++
			}
		}
	}
	walk(t.root)
	return out
}
