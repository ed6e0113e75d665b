package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/GendByteMaster/lexiserve/internal/logger"
	"github.com/GendByteMaster/lexiserve/pkg/assist"
	"github.com/GendByteMaster/lexiserve/pkg/config"
	"github.com/GendByteMaster/lexiserve/pkg/insight"
	"github.com/GendByteMaster/lexiserve/pkg/segment"
)

// Server handles the IPC for the typing-assist engine.
type Server struct {
	engine  *assist.Engine
	cfg     *config.Config
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates an assist server using stdin/stdout for IPC.
func NewServer(engine *assist.Engine, cfg *config.Config) *Server {
	return NewServerWithIO(engine, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over explicit streams, for tests.
func NewServerWithIO(engine *assist.Engine, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:  engine,
		cfg:     cfg,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// Start begins processing IPC requests until EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting assist server.")
	s.send(HealthResponse{Status: "ready"})

	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handle(req)
	}
}

func (s *Server) handle(req Request) {
	switch req.Op {
	case "suggest":
		s.handleSuggest(req)
	case "apply":
		s.handleApply(req)
	case "insight":
		s.handleInsight(req)
	case "health":
		s.send(HealthResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, fmt.Sprintf("Unknown op: %s", req.Op), 400)
	}
}

func (s *Server) handleSuggest(req Request) {
	sel, ok := selection(req)
	if !ok {
		s.sendError(req.ID, "Missing or invalid 'sel' parameter", 400)
		return
	}
	if len([]rune(req.Text)) > 0 && sel.Start > len([]rune(req.Text)) {
		s.sendError(req.ID, "Selection outside text", 400)
		return
	}

	// Overlong prefixes are noise, not typing; degrade to no results
	// the same way a missing resource would.
	if max := s.cfg.Server.MaxPrefix; max > 0 {
		if active, ok := s.engine.ActiveWord(req.Text, sel); ok && len([]rune(active.Prefix)) > max {
			s.send(SuggestResponse{ID: req.ID})
			return
		}
	}

	start := time.Now()
	suggestions := s.engine.ComputeSuggestions(req.Text, sel, req.Lang)
	elapsed := time.Since(start)

	if max := s.cfg.Server.MaxLimit; len(suggestions) > max && max > 0 {
		suggestions = suggestions[:max]
	}
	s.send(SuggestResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Milliseconds(),
	})
}

func (s *Server) handleApply(req Request) {
	if req.Suggestion == "" {
		s.sendError(req.ID, "Missing 'suggestion' parameter", 400)
		return
	}
	sel, ok := selection(req)
	if !ok {
		s.sendError(req.ID, "Missing or invalid 'sel' parameter", 400)
		return
	}
	active, found := s.engine.ActiveWord(req.Text, sel)
	if !found {
		s.sendError(req.ID, "No active word at caret", 404)
		return
	}
	newText, caret := s.engine.ApplySuggestion(req.Text, active, req.Suggestion)
	s.send(ApplyResponse{ID: req.ID, Text: newText, Caret: caret})
}

func (s *Server) handleInsight(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "Missing 'word' parameter", 400)
		return
	}
	start := time.Now()
	rec := s.engine.ResolveInsightsSync(context.Background(), req.Word, req.Lang, req.Text)
	elapsed := time.Since(start)
	s.send(insightResponse(req.ID, rec, elapsed.Milliseconds()))
}

func insightResponse(id string, rec insight.Record, ms int64) InsightResponse {
	resp := InsightResponse{
		ID:             id,
		Status:         rec.Status.String(),
		Word:           rec.Word,
		Language:       rec.Language,
		Examples:       rec.Examples.Items,
		ExamplesStatus: rec.Examples.Status.String(),
		Related:        rec.Related.Items,
		RelatedStatus:  rec.Related.Status.String(),
		TimeTaken:      ms,
	}
	if rec.Entry != nil {
		resp.PartOfSpeech = rec.Entry.PartOfSpeech
		resp.Definitions = rec.Entry.Definitions
	}
	if rec.Notice != nil {
		resp.Notice = rec.Notice.Message
		if rec.Notice.Kind == insight.NoticeFallback {
			resp.NoticeKind = "fallback"
		} else {
			resp.NoticeKind = "unavailable"
		}
	}
	return resp
}

func selection(req Request) (segment.Selection, bool) {
	if len(req.Selection) != 2 || req.Selection[0] < 0 || req.Selection[1] < req.Selection[0] {
		return segment.Selection{}, false
	}
	return segment.Selection{Start: req.Selection[0], End: req.Selection[1]}, true
}

func (s *Server) send(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}
