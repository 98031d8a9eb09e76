/*
Package alphabet holds per-language Scrabble letter data and input normalization.

Each supported language carries its alphabet and official letter point values.
Normalization folds user input into the dictionary form: trimmed, diacritics
stripped, uppercased. French Scrabble dictionaries store words unaccented, so
"éléphant" normalizes to "ELEPHANT" before any lookup.
*/
package alphabet

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Blank is the wildcard tile token accepted in anagram inputs.
// It substitutes for any single letter and scores zero.
const Blank = '?'

// Language describes one supported dictionary language.
type Language struct {
	Code   string
	Name   string
	Points map[rune]int
}

var languages = map[string]Language{
	"fr": {
		Code: "fr",
		Name: "French",
		Points: map[rune]int{
			'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2,
			'H': 4, 'I': 1, 'J': 8, 'K': 10, 'L': 1, 'M': 2, 'N': 1,
			'O': 1, 'P': 3, 'Q': 8, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
			'V': 4, 'W': 10, 'X': 10, 'Y': 10, 'Z': 10,
		},
	},
	"en": {
		Code: "en",
		Name: "English",
		Points: map[rune]int{
			'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1, 'F': 4, 'G': 2,
			'H': 4, 'I': 1, 'J': 8, 'K': 5, 'L': 1, 'M': 3, 'N': 1,
			'O': 1, 'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
			'V': 4, 'W': 4, 'X': 8, 'Y': 4, 'Z': 10,
		},
	},
}

// stripMarks removes combining marks after NFD decomposition, then recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Supported reports whether a language code has a registered configuration.
func Supported(code string) bool {
	_, ok := languages[strings.ToLower(code)]
	return ok
}

// Get returns the Language for a code.
func Get(code string) (Language, error) {
	lang, ok := languages[strings.ToLower(code)]
	if !ok {
		return Language{}, fmt.Errorf("unknown language code %q", code)
	}
	return lang, nil
}

// Codes returns all registered language codes.
func Codes() []string {
	codes := make([]string, 0, len(languages))
	for code := range languages {
		codes = append(codes, code)
	}
	return codes
}

// Normalize folds raw input into dictionary form: trimmed, diacritics
// stripped, uppercased. It never fails; undecodable input passes through
// unchanged apart from trimming and case.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	return strings.ToUpper(s)
}

// LetterPoints returns the point value of a single letter, zero if the
// letter is not in the language alphabet or is a blank.
func (l Language) LetterPoints(r rune) int {
	return l.Points[r]
}

// WordPoints sums the letter values of a normalized word.
func (l Language) WordPoints(word string) int {
	total := 0
	for _, r := range word {
		total += l.Points[r]
	}
	return total
}

// InAlphabet reports whether every rune of a normalized word is a scored
// letter of this language.
func (l Language) InAlphabet(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if _, ok := l.Points[r]; !ok {
			return false
		}
	}
	return true
}
