// Package server exposes single-document analysis over HTTP. The
// pipeline itself stays synchronous and side-effect free; the server
// only adds transport, optional caching, and logging.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/phuslu/log"

	"textmark/internal/analyze"
	"textmark/internal/store"
)

type Server struct {
	opts  analyze.Options
	cache *store.Store
	mux   *http.ServeMux
}

// New wires the handler set. cache may be nil to disable memoization.
func New(opts analyze.Options, cache *store.Store) *Server {
	s := &Server{opts: opts, cache: cache, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /analyze", s.handleAnalyze)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe blocks serving on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Info().Str("addr", addr).Int("corpus_words", s.opts.Reference.Size()).Msg("server listening")
	if err := http.ListenAndServe(addr, s); err != nil {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

type analyzeRequest struct {
	Name     string `json:"name"`
	Text     string `json:"text"`
	ByteSize int    `json:"byteSize"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 16<<20))
	if err != nil {
		httpError(w, http.StatusBadRequest, "read request body")
		return
	}

	var req analyzeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		// Raw text bodies are accepted as a convenience.
		req = analyzeRequest{Name: "document", Text: string(body)}
	}

	doc := analyze.Document{Name: req.Name, RawText: req.Text, ByteSize: req.ByteSize}
	fingerprint := doc.Fingerprint()

	if s.cache != nil {
		if cached, ok, cacheErr := s.cache.Get(fingerprint); cacheErr == nil && ok {
			log.Debug().Str("name", req.Name).Msg("cache hit")
			writeJSON(w, cached)
			return
		}
	}

	result := analyze.AnalyzeOne(doc, s.opts)
	if s.cache != nil {
		if putErr := s.cache.Put(fingerprint, result); putErr != nil {
			log.Warn().Err(putErr).Msg("cache write failed")
		}
	}

	log.Info().Str("name", req.Name).
		Int("words", result.WordCount).
		Int("ai_likelihood", result.AILikelihood).
		Int("content_mark", result.ContentMark).
		Msg("document analyzed")
	writeJSON(w, result)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response failed")
	}
}

func httpError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
