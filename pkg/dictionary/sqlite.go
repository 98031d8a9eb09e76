package dictionary

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/scrabbot/lexiserve/pkg/alphabet"
	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

// The exported game database keeps one table per language with
// language-specific column names.
var sqliteQueries = map[string]string{
	"fr": `SELECT mot, definition, points, valide_scrabble FROM mots_fr`,
	"en": `SELECT word, definition, points, scrabble_valid FROM mots_en`,
}

// LoadSQLite reads a full word list from an exported dictionary database.
func LoadSQLite(ctx context.Context, path, code string) ([]lexicon.Word, error) {
	query, ok := sqliteQueries[code]
	if !ok {
		return nil, fmt.Errorf("no dictionary table mapping for language %q", code)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s words from %s: %w", code, path, err)
	}
	defer rows.Close()

	var words []lexicon.Word
	for rows.Next() {
		var (
			text       string
			definition sql.NullString
			points     int
			valid      bool
		)
		if err := rows.Scan(&text, &definition, &points, &valid); err != nil {
			return nil, fmt.Errorf("failed to scan word row: %w", err)
		}
		words = append(words, lexicon.NewWord(alphabet.Normalize(text), definition.String, points, valid))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while reading %s: %w", path, err)
	}
	return words, nil
}
