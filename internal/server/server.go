package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/martin/portfolio-builder/internal/config"
	"github.com/martin/portfolio-builder/internal/parsing"
	"github.com/martin/portfolio-builder/internal/rendering"
	"github.com/martin/portfolio-builder/internal/storage"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *storage.Store
	vocab      *parsing.Vocabulary
	renderCfg  rendering.Config
	validate   *validator.Validate
	maxUpload  int64
}

// New creates a new server instance
func New(cfg config.Config) (*Server, error) {
	vocab := parsing.DefaultVocabulary()
	if cfg.Vocabulary != "" {
		loaded, err := parsing.LoadVocabulary(cfg.Vocabulary)
		if err != nil {
			return nil, fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocab = loaded
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	s := &Server{
		store: storage.NewStore(time.Duration(cfg.RetentionMinutes) * time.Minute),
		vocab: vocab,
		renderCfg: rendering.Config{
			TemplatePath: cfg.Template,
			StylesPath:   cfg.Styles,
			OutputDir:    cfg.OutputDir,
			BaseURL:      cfg.BaseURL,
		},
		validate:  validator.New(),
		maxUpload: int64(cfg.MaxUploadMB) << 20,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("POST /parse", s.handleParse)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /sites/", http.StripPrefix("/sites/", http.FileServer(http.Dir(cfg.OutputDir))))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.store.Stop()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes a kind-tagged error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, kind, message string) {
	s.jsonResponse(w, status, map[string]string{"error": kind, "message": message})
}

// pipelineError maps a pipeline failure onto the wire taxonomy.
func (s *Server) pipelineError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), ErrorKind(err), err.Error())
}
