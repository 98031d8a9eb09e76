// Package suggest ranks correction, rack and high-score word suggestions on
// top of a per-language dictionary service.
package suggest

import (
	"sort"
	"unicode/utf8"

	"github.com/scrabbot/lexiserve/pkg/alphabet"
	"github.com/scrabbot/lexiserve/pkg/dict"
)

const (
	// DefaultMax caps a suggestion list when the caller passes no limit.
	DefaultMax = 10

	// maxEditDistance bounds how garbled an input can be and still get
	// corrections. Weighted costs mean two near-key typos fit under it.
	maxEditDistance = 2.0

	// lengthWindow restricts correction candidates to words within this
	// many letters of the input, since each length step costs at least 1.
	lengthWindow = 2

	// adjacentSwapCost prices a single transposition of neighboring
	// letters below any substitution pair it would otherwise decompose to.
	adjacentSwapCost = 0.7

	// highScoreCount is the fixed size of a high-score board.
	highScoreCount = 10

	// rackScan is how many anagram matches to gather before ranking.
	rackScan = 1024
)

// Scored is one ranked suggestion. Distance is only meaningful for
// corrections and stays zero elsewhere.
type Scored struct {
	Word     string  `json:"word"`
	Points   int     `json:"points"`
	Length   int     `json:"length"`
	Distance float64 `json:"distance,omitempty"`
}

// Engine answers suggestion queries for one language. It is stateless
// beyond the service handle and safe for concurrent use.
type Engine struct {
	svc *dict.Service
}

// NewEngine wraps a dictionary service.
func NewEngine(svc *dict.Service) *Engine {
	return &Engine{svc: svc}
}

// Corrections proposes dictionary words close to a possibly misspelled
// input, nearest first. A word that is already valid comes back alone at
// distance zero.
func (e *Engine) Corrections(word string, max int) []Scored {
	if max <= 0 {
		max = DefaultMax
	}
	word = alphabet.Normalize(word)
	if word == "" {
		return nil
	}

	lex := e.svc.Lexicon()
	if w, ok := lex.Lookup(word); ok && w.Valid {
		return []Scored{{Word: w.Text, Points: w.Points, Length: w.Length}}
	}

	input := []rune(word)
	n := utf8.RuneCountInString(word)
	var out []Scored
	for l := n - lengthWindow; l <= n+lengthWindow; l++ {
		if l < 1 {
			continue
		}
		for _, cand := range lex.WordsOfLength(l) {
			if !cand.Valid {
				continue
			}
			d := editDistance(input, []rune(cand.Text))
			if d <= maxEditDistance {
				out = append(out, Scored{
					Word:     cand.Text,
					Points:   cand.Points,
					Length:   cand.Length,
					Distance: d,
				})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// ByLetters lists words buildable from a rack, highest effective score
// first. Letters covered by a blank tile score zero, so their value is
// deducted from the stored word points.
func (e *Engine) ByLetters(letters string, blanks, minLength, max int) []Scored {
	if max <= 0 {
		max = DefaultMax
	}
	lang := e.svc.Language()
	letters = alphabet.Normalize(letters)

	var out []Scored
	for _, m := range e.svc.Lexicon().AnagramSearch(letters, blanks, rackScan) {
		if !m.Word.Valid {
			continue
		}
		if minLength > 0 && m.Word.Length < minLength {
			continue
		}
		points := m.Word.Points
		for _, r := range m.BlankLetters {
			points -= lang.LetterPoints(r)
		}
		out = append(out, Scored{Word: m.Word.Text, Points: points, Length: m.Word.Length})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// HighScore is the ten best-scoring plays from a rack.
func (e *Engine) HighScore(letters string, blanks int) []Scored {
	return e.ByLetters(letters, blanks, 0, highScoreCount)
}

// editDistance is a Levenshtein variant with keyboard-weighted
// substitutions and a discounted single adjacent transposition.
func editDistance(a, b []rune) float64 {
	if isOneAdjacentSwap(a, b) {
		return adjacentSwapCost
	}

	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)
	for j := range prev {
		prev[j] = float64(j)
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = float64(i)
		for j := 1; j <= len(b); j++ {
			sub := prev[j-1] + substitutionCost(a[i-1], b[j-1])
			ins := curr[j-1] + 1
			del := prev[j] + 1
			curr[j] = min3(sub, ins, del)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
