package dict

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/scrabbot/lexiserve/pkg/lexicon"
)

// Manager is the language-parameterized front of the dictionary core: one
// Service per enabled language, no cross-language sharing.
type Manager struct {
	services map[string]*Service
}

// NewManager builds a Service for every enabled language code.
func NewManager(codes []string, cfg CacheConfig) (*Manager, error) {
	m := &Manager{services: make(map[string]*Service, len(codes))}
	for _, code := range codes {
		svc, err := NewService(code, cfg)
		if err != nil {
			return nil, err
		}
		m.services[svc.Language().Code] = svc
	}
	return m, nil
}

// Service returns the per-language service or ErrUnsupportedLanguage.
func (m *Manager) Service(code string) (*Service, error) {
	svc, ok := m.services[code]
	if !ok {
		return nil, unsupported(code)
	}
	return svc, nil
}

// Languages returns the enabled language codes, sorted.
func (m *Manager) Languages() []string {
	codes := make([]string, 0, len(m.services))
	for code := range m.services {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Validate answers the external validate contract.
func (m *Manager) Validate(code, word string) (Validation, error) {
	svc, err := m.Service(code)
	if err != nil {
		return Validation{}, err
	}
	return svc.ValidateWord(word), nil
}

// Define answers the external define contract.
func (m *Manager) Define(code, word string) (DefinitionResult, error) {
	svc, err := m.Service(code)
	if err != nil {
		return DefinitionResult{}, err
	}
	return svc.Definition(word), nil
}

// Search answers the external search contract.
func (m *Manager) Search(code string, c Criteria) (SearchResult, error) {
	svc, err := m.Service(code)
	if err != nil {
		return SearchResult{}, err
	}
	return svc.Search(c)
}

// Reload replaces one language's word list.
func (m *Manager) Reload(code string, words []lexicon.Word) error {
	svc, err := m.Service(code)
	if err != nil {
		return err
	}
	svc.Reload(words)
	return nil
}

// LoadAll fetches and installs every language's word list concurrently.
// The load callback does the actual I/O; the first failure cancels the
// remaining loads.
func (m *Manager) LoadAll(ctx context.Context, load func(ctx context.Context, code string) ([]lexicon.Word, error)) error {
	g, ctx := errgroup.WithContext(ctx)
	for code, svc := range m.services {
		code, svc := code, svc
		g.Go(func() error {
			words, err := load(ctx, code)
			if err != nil {
				return err
			}
			svc.Reload(words)
			return nil
		})
	}
	return g.Wait()
}

// Stats snapshots every service, ordered by language code.
func (m *Manager) Stats() []ServiceStats {
	stats := make([]ServiceStats, 0, len(m.services))
	for _, code := range m.Languages() {
		stats = append(stats, m.services[code].Stats())
	}
	return stats
}
