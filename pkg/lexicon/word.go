/*
Package lexicon implements the in-memory word index for one dictionary
language: a letter-edge trie for prefix, pattern and anagram search, paired
with a patricia store for exact lookups.

A Lexicon is built once from a word list and is read-only afterwards; the
owning service swaps whole Lexicon values on reload.
*/
package lexicon

// Word is one dictionary entry. Immutable once loaded; unique by
// (language, text) where text is normalized uppercase.
type Word struct {
	Text       string
	Definition string
	Points     int
	Length     int
	Valid      bool
}

// NewWord fills in the derived Length field.
func NewWord(text, definition string, points int, valid bool) Word {
	return Word{
		Text:       text,
		Definition: definition,
		Points:     points,
		Length:     len([]rune(text)),
		Valid:      valid,
	}
}

// AnagramMatch is a word reachable from a set of rack letters. BlankLetters
// lists the letters that had to be covered by blank tiles, in word order;
// callers that score plays deduct those letters since blanks score zero.
type AnagramMatch struct {
	Word         *Word
	BlankLetters []rune
}
