package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/scrabbot/lexiserve/pkg/alphabet"
	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

// LoadText reads a semicolon-separated word list:
//
//	word[;definition[;points[;valid]]]
//
// Blank lines and '#' comments are skipped. Missing points are derived from
// the language's letter values; missing valid defaults to true. A malformed
// line aborts the load with its line number so bad exports surface early.
func LoadText(path, code string) ([]lexicon.Word, error) {
	lang, err := alphabet.Get(code)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var words []lexicon.Word
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, err := parseTextLine(line, lang)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNo, err)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}
	return words, nil
}

func parseTextLine(line string, lang alphabet.Language) (lexicon.Word, error) {
	fields := strings.Split(line, ";")
	text := alphabet.Normalize(fields[0])
	if text == "" {
		return lexicon.Word{}, fmt.Errorf("empty word field")
	}
	if !lang.InAlphabet(text) {
		return lexicon.Word{}, fmt.Errorf("word %q has letters outside the %s alphabet", text, lang.Code)
	}

	var definition string
	if len(fields) > 1 {
		definition = strings.TrimSpace(fields[1])
	}

	points := lang.WordPoints(text)
	if len(fields) > 2 && strings.TrimSpace(fields[2]) != "" {
		p, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil || p < 0 {
			return lexicon.Word{}, fmt.Errorf("bad points value for %q", text)
		}
		points = p
	}

	valid := true
	if len(fields) > 3 && strings.TrimSpace(fields[3]) != "" {
		v, err := strconv.ParseBool(strings.TrimSpace(fields[3]))
		if err != nil {
			return lexicon.Word{}, fmt.Errorf("bad valid flag for %q: %w", text, err)
		}
		valid = v
	}

	return lexicon.NewWord(text, definition, points, valid), nil
}
