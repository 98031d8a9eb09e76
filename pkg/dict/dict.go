/*
Package dict orchestrates trie lookups and the cache layer behind a single
validate/define/search contract, one Service per language.

Unknown words are soft failures (Valid/Found false), never errors. The only
errors a caller can see come from its own input: ErrUnsupportedLanguage for
an unknown language code and ErrInvalidCriteria for unusable search input.
*/
package dict

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupportedLanguage reports an unknown language code.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrInvalidCriteria reports search criteria with no usable field or
	// malformed pattern syntax.
	ErrInvalidCriteria = errors.New("invalid search criteria")
)

// Criteria describes one search request. At least one of Prefix, Pattern or
// Letters must be set. When several are set, the first of pattern, prefix,
// letters wins; they do not intersect.
type Criteria struct {
	Prefix     string
	Pattern    string
	Letters    string
	Blanks     int
	MinLength  int
	MaxResults int
}

func (c Criteria) empty() bool {
	return c.Prefix == "" && c.Pattern == "" && c.Letters == ""
}

// key serializes normalized criteria into a canonical cache key.
func (c Criteria) key() string {
	return fmt.Sprintf("p=%s|w=%s|l=%s|b=%d|min=%d|max=%d",
		c.Prefix, c.Pattern, c.Letters, c.Blanks, c.MinLength, c.MaxResults)
}

// Validation is the result of a word validation.
type Validation struct {
	Word     string `json:"word"`
	Valid    bool   `json:"valid"`
	Points   int    `json:"points"`
	Language string `json:"language"`
}

// DefinitionResult is the result of a definition lookup.
type DefinitionResult struct {
	Word       string `json:"word"`
	Found      bool   `json:"found"`
	Definition string `json:"definition,omitempty"`
	Language   string `json:"language"`
}

// WordInfo is one entry of a search result.
type WordInfo struct {
	Word   string `json:"word"`
	Points int    `json:"points"`
	Length int    `json:"length"`
}

// SearchResult carries an ordered result list plus the criteria that
// produced it.
type SearchResult struct {
	Words    []WordInfo `json:"words"`
	Count    int        `json:"count"`
	Criteria Criteria   `json:"criteria"`
	Language string     `json:"language"`
}

func unsupported(code string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, strings.ToLower(code))
}
