// Package relay exposes quiz generation over HTTP so browser or mobile
// clients can request quizzes without holding an API key themselves.
package relay

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prateekk-tech99/safebite-quiz/internal/catalog"
	"github.com/prateekk-tech99/safebite-quiz/internal/quizgen"
)

// Server relays quiz generation requests to the configured generator.
type Server struct {
	generator quizgen.Generator
	port      int
	env       string
	router    *mux.Router
}

// NewServer builds a relay server around the generator.
func NewServer(generator quizgen.Generator, port int, env string) *Server {
	s := &Server{generator: generator, port: port, env: env}
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.HandleFunc("/api/generate-quiz", s.handleGenerateQuiz).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router = r
	return s
}

// Handler returns the HTTP handler, for mounting or testing.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe blocks serving HTTP on the configured port.
func (s *Server) ListenAndServe() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("relay listening on %s", addr)
	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
	}
	return srv.ListenAndServe()
}

// quizRequest is the POST /api/generate-quiz body.
type quizRequest struct {
	Count      int    `json:"count"`
	Difficulty string `json:"difficulty"`
	Topic      string `json:"topic"`
	Language   string `json:"language"`
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON body",
		})
		return
	}
	if req.Count == 0 || req.Difficulty == "" || req.Topic == "" || req.Language == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "Missing required parameters: count, difficulty, topic, language",
		})
		return
	}

	topic, ok := catalog.TopicFromString(req.Topic)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("unknown topic %q", req.Topic),
		})
		return
	}
	difficulty, ok := catalog.DifficultyFromString(req.Difficulty)
	if !ok {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("unknown difficulty %q", req.Difficulty),
		})
		return
	}

	questions, err := s.generator.Generate(r.Context(), quizgen.GenerateInput{
		Topic:      topic,
		Difficulty: difficulty,
		Count:      req.Count,
		Language:   req.Language,
	})
	if err != nil {
		log.Printf("relay: quiz generation failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "Failed to generate quiz questions",
			"details": err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"questions": questions})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"port":      s.port,
		"env":       s.env,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("relay: write response: %v", err)
	}
}

// corsMiddleware allows browser clients from any origin. The relay holds
// the API key; the endpoints themselves expose nothing sensitive.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
