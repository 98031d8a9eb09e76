// Package dictionary loads word lists for the dictionary services. Three
// interchangeable sources produce the same []lexicon.Word: plain text or CSV
// exports, the game's SQLite database, and a compiled msgpack binary.
package dictionary

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

// loadOrder is the lookup priority when a language has several files in the
// data directory: compiled lists beat the database, which beats raw text.
var loadOrder = []string{".lxb", ".db", ".sqlite", ".sqlite3", ".csv", ".txt"}

// Loader resolves per-language word-list files under one data directory.
// Files are named by language code, e.g. fr.lxb, en.csv.
type Loader struct {
	dir string
}

// NewLoader points a Loader at a data directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Load finds the best available file for a language and loads it.
func (l *Loader) Load(ctx context.Context, code string) ([]lexicon.Word, error) {
	path, err := l.Resolve(code)
	if err != nil {
		return nil, err
	}
	return LoadFile(ctx, path, code)
}

// Resolve returns the path Load would use for a language.
func (l *Loader) Resolve(code string) (string, error) {
	for _, ext := range loadOrder {
		path := filepath.Join(l.dir, code+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no dictionary file for language %q in %s", code, l.dir)
}

// LoadFile loads one dictionary file, dispatching on its detected format.
func LoadFile(ctx context.Context, path, code string) ([]lexicon.Word, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	var words []lexicon.Word
	switch format {
	case FormatText:
		words, err = LoadText(path, code)
	case FormatSQLite:
		words, err = LoadSQLite(ctx, path, code)
	case FormatBinary:
		words, err = LoadBinary(path, code)
	default:
		err = fmt.Errorf("unsupported dictionary format for %s", path)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("loaded %d %s words from %s (%s)", len(words), code, path, format)
	return words, nil
}
