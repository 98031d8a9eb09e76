package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/scrabbot/lexiserve/internal/logger"
	"github.com/scrabbot/lexiserve/pkg/dict"
	"github.com/scrabbot/lexiserve/pkg/dictionary"
	"github.com/scrabbot/lexiserve/pkg/lexicon"
	"github.com/scrabbot/lexiserve/pkg/suggest"
)

// Server handles the IPC for dictionary queries.
type Server struct {
	manager *dict.Manager
	engines map[string]*suggest.Engine
	loader  *dictionary.Loader

	dec *msgpack.Decoder
	enc *msgpack.Encoder
	mu  sync.Mutex // serializes response writes

	log *log.Logger
}

// NewServer wires a dictionary manager and loader to stdin/stdout IPC.
func NewServer(manager *dict.Manager, loader *dictionary.Loader) *Server {
	return NewServerIO(manager, loader, os.Stdin, os.Stdout)
}

// NewServerIO is NewServer with explicit streams, used by tests.
func NewServerIO(manager *dict.Manager, loader *dictionary.Loader, r io.Reader, w io.Writer) *Server {
	s := &Server{
		manager: manager,
		engines: make(map[string]*suggest.Engine),
		loader:  loader,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
	for _, code := range manager.Languages() {
		svc, err := manager.Service(code)
		if err == nil {
			s.engines[code] = suggest.NewEngine(svc)
		}
	}
	return s
}

// Start signals readiness, then handles requests until the input stream
// closes.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")
	s.send(map[string]string{"status": "ready"})

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	start := time.Now()
	switch req.Op {
	case "validate":
		s.handleValidate(req, start)
	case "define":
		s.handleDefine(req, start)
	case "search":
		s.handleSearch(req, start)
	case "suggest":
		s.handleSuggest(req, start)
	case "stats":
		s.handleStats(req, start)
	case "reload":
		s.handleReload(req, start)
	case "health":
		s.send(map[string]string{"id": req.ID, "status": "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleValidate(req Request, start time.Time) {
	res, err := s.manager.Validate(req.Language, req.Word)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	s.send(ValidateResponse{
		ID:        req.ID,
		Word:      res.Word,
		Valid:     res.Valid,
		Points:    res.Points,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleDefine(req Request, start time.Time) {
	res, err := s.manager.Define(req.Language, req.Word)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}
	s.send(DefineResponse{
		ID:         req.ID,
		Word:       res.Word,
		Found:      res.Found,
		Definition: res.Definition,
		TimeTaken:  time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSearch(req Request, start time.Time) {
	res, err := s.manager.Search(req.Language, dict.Criteria{
		Prefix:     req.Prefix,
		Pattern:    req.Pattern,
		Letters:    req.Letters,
		Blanks:     req.Blanks,
		MinLength:  req.MinLength,
		MaxResults: req.Limit,
	})
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}

	words := make([]ResponseWord, len(res.Words))
	for i, w := range res.Words {
		words[i] = ResponseWord{Word: w.Word, Points: w.Points, Length: w.Length}
	}
	s.send(SearchResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSuggest(req Request, start time.Time) {
	engine, ok := s.engines[req.Language]
	if !ok {
		s.sendError(req.ID, fmt.Sprintf("unsupported language: %q", req.Language), 400)
		return
	}

	var scored []suggest.Scored
	switch req.Kind {
	case "fix":
		scored = engine.Corrections(req.Word, req.Limit)
	case "rack":
		scored = engine.ByLetters(req.Letters, req.Blanks, req.MinLength, req.Limit)
	case "top":
		scored = engine.HighScore(req.Letters, req.Blanks)
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown suggest kind: %s", req.Kind), 400)
		return
	}

	words := make([]ResponseWord, len(scored))
	for i, sc := range scored {
		words[i] = ResponseWord{Word: sc.Word, Points: sc.Points, Length: sc.Length, Distance: sc.Distance}
	}
	s.send(SearchResponse{
		ID:        req.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleStats(req Request, start time.Time) {
	var langs []LanguageStats
	for _, st := range s.manager.Stats() {
		langs = append(langs, LanguageStats{
			Language:       st.Language,
			Words:          st.Words,
			ValidationHits: st.Validations.Hits,
			ValidationRate: st.Validations.HitRate(),
			DefinitionHits: st.Definitions.Hits,
			DefinitionRate: st.Definitions.HitRate(),
			SearchHits:     st.Searches.Hits,
			SearchRate:     st.Searches.HitRate(),
		})
	}
	s.send(StatsResponse{
		ID:        req.ID,
		Languages: langs,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleReload(req Request, start time.Time) {
	ctx := context.Background()

	var (
		words int
		err   error
	)
	var list []lexicon.Word
	switch {
	case req.Path != "":
		list, err = dictionary.LoadFile(ctx, req.Path, req.Language)
	case s.loader != nil:
		list, err = s.loader.Load(ctx, req.Language)
	default:
		err = fmt.Errorf("no dictionary source configured")
	}
	if err == nil {
		err = s.manager.Reload(req.Language, list)
		words = len(list)
	}
	if err != nil {
		s.sendError(req.ID, err.Error(), 500)
		return
	}

	s.send(ReloadResponse{
		ID:        req.ID,
		Status:    "reloaded",
		Words:     words,
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) send(response interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
