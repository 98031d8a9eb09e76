package dict

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scrabbot/lexiserve/pkg/alphabet"
	"github.com/scrabbot/lexiserve/pkg/cache"
	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

// CacheConfig sizes the three caches a Service owns.
type CacheConfig struct {
	ValidationSize int
	DefinitionSize int
	DefinitionTTL  time.Duration
	SearchSize     int
	SearchTTL      time.Duration
	MaxResults     int
}

// DefaultCacheConfig mirrors the sizes the original deployment ran with.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		ValidationSize: 5000,
		DefinitionSize: 3000,
		DefinitionTTL:  time.Hour,
		SearchSize:     1000,
		SearchTTL:      10 * time.Minute,
		MaxResults:     64,
	}
}

func (c CacheConfig) withDefaults() CacheConfig {
	d := DefaultCacheConfig()
	if c.ValidationSize <= 0 {
		c.ValidationSize = d.ValidationSize
	}
	if c.DefinitionSize <= 0 {
		c.DefinitionSize = d.DefinitionSize
	}
	if c.DefinitionTTL <= 0 {
		c.DefinitionTTL = d.DefinitionTTL
	}
	if c.SearchSize <= 0 {
		c.SearchSize = d.SearchSize
	}
	if c.SearchTTL <= 0 {
		c.SearchTTL = d.SearchTTL
	}
	if c.MaxResults <= 0 {
		c.MaxResults = d.MaxResults
	}
	if c.MaxResults > lexicon.MaxLimit {
		c.MaxResults = lexicon.MaxLimit
	}
	return c
}

// Service answers validate/define/search requests for one language. The
// lexicon pointer is swapped atomically on Reload, so readers always see
// exactly one complete generation; the caches are invalidated right after
// the swap.
type Service struct {
	lang        alphabet.Language
	lex         atomic.Pointer[lexicon.Lexicon]
	validations cache.Cache
	definitions cache.Cache
	searches    cache.Cache
	maxResults  int
}

// NewService creates an empty Service for a language code. Words arrive
// through Reload.
func NewService(code string, cfg CacheConfig) (*Service, error) {
	lang, err := alphabet.Get(code)
	if err != nil {
		return nil, unsupported(code)
	}
	cfg = cfg.withDefaults()
	s := &Service{
		lang:        lang,
		validations: cache.NewLRU(cfg.ValidationSize),
		definitions: cache.NewLFU(cfg.DefinitionSize, cfg.DefinitionTTL),
		searches:    cache.NewTTL(cfg.SearchSize, cfg.SearchTTL),
		maxResults:  cfg.MaxResults,
	}
	s.lex.Store(lexicon.Build(nil))
	return s, nil
}

// Language returns the language configuration this service answers for.
func (s *Service) Language() alphabet.Language {
	return s.lang
}

// Lexicon returns the current read-only word index. Callers composing
// several queries should grab it once so they stay on one generation.
func (s *Service) Lexicon() *lexicon.Lexicon {
	return s.lex.Load()
}

// ValidateWord normalizes the input and reports validity and point value.
// Unknown words return Valid=false, never an error.
func (s *Service) ValidateWord(word string) Validation {
	word = alphabet.Normalize(word)
	res := Validation{Word: word, Language: s.lang.Code}
	if !s.lang.InAlphabet(word) {
		return res
	}

	key := "v:" + word
	if v, ok := s.validations.Get(key); ok {
		return v.(Validation)
	}

	if w, ok := s.lex.Load().Lookup(word); ok && w.Valid {
		res.Valid = true
		res.Points = w.Points
	}
	s.validations.Put(key, res)
	return res
}

// Definition returns the stored definition of a word, Found=false when the
// word is unknown or carries no definition.
func (s *Service) Definition(word string) DefinitionResult {
	word = alphabet.Normalize(word)
	res := DefinitionResult{Word: word, Language: s.lang.Code}
	if !s.lang.InAlphabet(word) {
		return res
	}

	key := "d:" + word
	if v, ok := s.definitions.Get(key); ok {
		return v.(DefinitionResult)
	}

	if w, ok := s.lex.Load().Lookup(word); ok && w.Definition != "" {
		res.Found = true
		res.Definition = w.Definition
	}
	s.definitions.Put(key, res)
	return res
}

// Search runs one of the index queries selected by the criteria. Results
// are cached under the canonical criteria key until the search TTL lapses.
func (s *Service) Search(c Criteria) (SearchResult, error) {
	c.Prefix = alphabet.Normalize(c.Prefix)
	c.Pattern = alphabet.Normalize(c.Pattern)
	c.Letters = alphabet.Normalize(c.Letters)
	if c.empty() {
		return SearchResult{}, fmt.Errorf("%w: need one of prefix, pattern or letters", ErrInvalidCriteria)
	}
	if c.MaxResults <= 0 || c.MaxResults > s.maxResults {
		c.MaxResults = s.maxResults
	}

	key := c.key()
	if v, ok := s.searches.Get(key); ok {
		return v.(SearchResult), nil
	}

	lex := s.lex.Load()
	var words []*lexicon.Word
	switch {
	case c.Pattern != "":
		matched, err := lex.PatternSearch(c.Pattern, c.MaxResults)
		if err != nil {
			return SearchResult{}, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
		}
		words = matched
	case c.Prefix != "":
		words = lex.PrefixSearch(c.Prefix, c.MaxResults)
	default:
		for _, m := range lex.AnagramSearch(c.Letters, c.Blanks, c.MaxResults) {
			words = append(words, m.Word)
		}
	}

	res := SearchResult{Criteria: c, Language: s.lang.Code}
	for _, w := range words {
		if c.MinLength > 0 && w.Length < c.MinLength {
			continue
		}
		res.Words = append(res.Words, WordInfo{Word: w.Text, Points: w.Points, Length: w.Length})
	}
	res.Count = len(res.Words)

	s.searches.Put(key, res)
	return res, nil
}

// Reload atomically replaces the word index and invalidates all caches.
// In-flight reads complete against the generation they loaded; nothing
// ever observes a half-built index.
func (s *Service) Reload(words []lexicon.Word) {
	start := time.Now()
	fresh := lexicon.Build(words)
	s.lex.Store(fresh)

	s.validations.InvalidateAll()
	s.definitions.InvalidateAll()
	s.searches.InvalidateAll()

	log.Debugf("reloaded %s lexicon: %d words in %v", s.lang.Code, fresh.Count(), time.Since(start))
}

// ServiceStats aggregates the word count and the three cache snapshots.
type ServiceStats struct {
	Language    string      `json:"language"`
	Words       int         `json:"words"`
	Validations cache.Stats `json:"validations"`
	Definitions cache.Stats `json:"definitions"`
	Searches    cache.Stats `json:"searches"`
}

// Stats snapshots the service counters.
func (s *Service) Stats() ServiceStats {
	return ServiceStats{
		Language:    s.lang.Code,
		Words:       s.lex.Load().Count(),
		Validations: s.validations.Stats(),
		Definitions: s.definitions.Stats(),
		Searches:    s.searches.Stats(),
	}
}
