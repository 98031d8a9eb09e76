// Package cli handles interactive line input for debugging and for testing
// dictionary queries in real time.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/scrabbot/lexiserve/pkg/dict"
	"github.com/scrabbot/lexiserve/pkg/suggest"
)

// InputHandler reads lines from stdin and dispatches them as dictionary
// queries. A bare word validates it; slash commands select the other
// operations:
//
//	/pat C?A*    pattern search
//	/ana TACHS   words buildable from a rack ('?' is a blank)
//	/fix CAHT    spelling corrections
//	/lang en     switch language
//	/stats       cache and word counters
type InputHandler struct {
	manager  *dict.Manager
	engines  map[string]*suggest.Engine
	language string
	limit    int
}

// NewInputHandler creates a CLI handler starting in the given language.
func NewInputHandler(manager *dict.Manager, language string, limit int) *InputHandler {
	engines := make(map[string]*suggest.Engine)
	for _, code := range manager.Languages() {
		if svc, err := manager.Service(code); err == nil {
			engines[code] = suggest.NewEngine(svc)
		}
	}
	return &InputHandler{
		manager:  manager,
		engines:  engines,
		language: language,
		limit:    limit,
	}
}

// Start begins the interface loop. It terminates when stdin closes.
func (h *InputHandler) Start() error {
	log.Print("LexiServe CLI")
	log.Printf("language: %s - type a word to validate it, /pat /ana /fix /lang /stats (Ctrl+C to exit):", h.language)
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

func (h *InputHandler) handleInput(line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch {
	case cmd == "/lang":
		if _, err := h.manager.Service(arg); err != nil {
			log.Errorf("Unknown language: %s", arg)
			return
		}
		h.language = arg
		log.Printf("language set to %s", arg)
	case cmd == "/stats":
		h.printStats()
	case cmd == "/pat":
		h.runSearch(dict.Criteria{Pattern: arg, MaxResults: h.limit})
	case cmd == "/ana":
		h.runSearch(dict.Criteria{Letters: arg, MaxResults: h.limit})
	case cmd == "/fix":
		h.runCorrections(arg)
	case strings.HasPrefix(cmd, "/"):
		log.Errorf("Unknown command: %s", cmd)
	default:
		h.runValidate(line)
	}
}

func (h *InputHandler) runValidate(word string) {
	start := time.Now()
	res, err := h.manager.Validate(h.language, word)
	if err != nil {
		log.Errorf("validate: %v", err)
		return
	}
	log.Debugf("Took [ %v ] for word '%s'", time.Since(start), word)

	if !res.Valid {
		log.Warnf("'%s' is not playable in %s", res.Word, h.language)
		return
	}
	log.Printf("%s is valid (%d points)", colorWord(res.Word), res.Points)

	if def, err := h.manager.Define(h.language, word); err == nil && def.Found {
		log.Printf("    %s", def.Definition)
	}
}

func (h *InputHandler) runSearch(c dict.Criteria) {
	start := time.Now()
	res, err := h.manager.Search(h.language, c)
	if err != nil {
		log.Errorf("search: %v", err)
		return
	}
	log.Debugf("Took [ %v ]", time.Since(start))

	if res.Count == 0 {
		log.Warn("No words found")
		return
	}
	log.Printf("Found %d words:", res.Count)
	for i, w := range res.Words {
		log.Printf("%2d. %-30s (%2d pts, %d letters)", i+1, colorWord(w.Word), w.Points, w.Length)
	}
}

func (h *InputHandler) runCorrections(word string) {
	engine, ok := h.engines[h.language]
	if !ok {
		log.Errorf("No suggestion engine for %s", h.language)
		return
	}

	start := time.Now()
	scored := engine.Corrections(word, h.limit)
	log.Debugf("Took [ %v ] for '%s'", time.Since(start), word)

	if len(scored) == 0 {
		log.Warnf("No corrections found for '%s'", word)
		return
	}
	log.Printf("Found %d corrections for '%s':", len(scored), word)
	for i, s := range scored {
		log.Printf("%2d. %-30s (%2d pts, distance %.1f)", i+1, colorWord(s.Word), s.Points, s.Distance)
	}
}

func (h *InputHandler) printStats() {
	for _, st := range h.manager.Stats() {
		log.Printf("%s: %d words", st.Language, st.Words)
		log.Printf("    validations %d/%d hits (%.0f%%)", st.Validations.Hits,
			st.Validations.Hits+st.Validations.Misses, st.Validations.HitRate()*100)
		log.Printf("    definitions %d/%d hits (%.0f%%)", st.Definitions.Hits,
			st.Definitions.Hits+st.Definitions.Misses, st.Definitions.HitRate()*100)
		log.Printf("    searches    %d/%d hits (%.0f%%)", st.Searches.Hits,
			st.Searches.Hits+st.Searches.Misses, st.Searches.HitRate()*100)
	}
}

func colorWord(w string) string {
	return fmt.Sprintf("\033[38;5;75m%s\033[0m", w)
}
