// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/ai"
	"github.com/jonathan/resume-builder/internal/db"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// Storage is the persistence surface the handlers use. *db.DB satisfies
// it; tests substitute an in-memory implementation.
type Storage interface {
	CreateResume(ctx context.Context, d types.ResumeData) (*db.Resume, error)
	GetResume(ctx context.Context, id uuid.UUID) (*db.Resume, error)
	SaveResume(ctx context.Context, id uuid.UUID, d types.ResumeData) error
	ListResumes(ctx context.Context) ([]db.ResumeSummary, error)
	DeleteResume(ctx context.Context, id uuid.UUID) error
	Close()
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          Storage
	sessions    *session.Manager
	rateLimiter *ratelimit.Limiter
	generator   ai.Generator
	pdf         *export.PDFExporter
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	APIKey       string        // Gemini API key for the local generation service
	AIEndpoint   string        // Remote generation endpoint; takes precedence over APIKey
	ChromePath   string        // Headless browser binary for PDF export
	SaveDebounce time.Duration // Autosave quiet period; zero uses the default
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	generator, err := newGenerator(cfg)
	if err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:        database,
		sessions:  session.NewManager(database, cfg.SaveDebounce),
		generator: generator,
		pdf:       &export.PDFExporter{ChromePath: cfg.ChromePath},
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Long timeout for PDF export
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newGenerator picks the content generation backend: a remote proxy when
// an endpoint is configured, the local model service when an API key is,
// nil otherwise (AI endpoints return 503).
func newGenerator(cfg Config) (ai.Generator, error) {
	if cfg.AIEndpoint != "" {
		return ai.NewClient(cfg.AIEndpoint), nil
	}
	if cfg.APIKey != "" {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		return ai.NewService(client), nil
	}
	return nil, nil
}

// routes builds the router. Split out from New so tests can exercise the
// full mux without a database connection.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /catalog", s.handleCatalog)

	// Resume lifecycle
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("POST /resumes", s.handleCreateResume)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("PUT /resumes/{id}", s.handleReplaceResume)
	mux.HandleFunc("PATCH /resumes/{id}", s.handlePatchResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("POST /resumes/{id}/reset", s.handleResetResume)
	mux.HandleFunc("POST /resumes/{id}/close", s.handleCloseResume)

	// Focused partial updates
	mux.HandleFunc("PATCH /resumes/{id}/personal-info", s.handlePatchPersonalInfo)
	mux.HandleFunc("PATCH /resumes/{id}/settings", s.handlePatchSettings)

	// Wizard navigation
	mux.HandleFunc("GET /resumes/{id}/steps", s.handleListSteps)
	mux.HandleFunc("PUT /resumes/{id}/step", s.handleSetStep)

	// List sections: add / update / remove entries
	mux.HandleFunc("POST /resumes/{id}/education", s.handleAddEducation)
	mux.HandleFunc("PATCH /resumes/{id}/education/{entryID}", s.handleUpdateEducation)
	mux.HandleFunc("DELETE /resumes/{id}/education/{entryID}", s.handleRemoveEducation)

	mux.HandleFunc("POST /resumes/{id}/skills", s.handleAddSkill)
	mux.HandleFunc("PATCH /resumes/{id}/skills/{entryID}", s.handleUpdateSkill)
	mux.HandleFunc("DELETE /resumes/{id}/skills/{entryID}", s.handleRemoveSkill)

	mux.HandleFunc("POST /resumes/{id}/projects", s.handleAddProject)
	mux.HandleFunc("PATCH /resumes/{id}/projects/{entryID}", s.handleUpdateProject)
	mux.HandleFunc("DELETE /resumes/{id}/projects/{entryID}", s.handleRemoveProject)
	mux.HandleFunc("POST /resumes/{id}/projects/{entryID}/technologies", s.handleAddTechnology)
	mux.HandleFunc("DELETE /resumes/{id}/projects/{entryID}/technologies/{index}", s.handleRemoveTechnology)

	mux.HandleFunc("POST /resumes/{id}/experience", s.handleAddExperience)
	mux.HandleFunc("PATCH /resumes/{id}/experience/{entryID}", s.handleUpdateExperience)
	mux.HandleFunc("DELETE /resumes/{id}/experience/{entryID}", s.handleRemoveExperience)
	mux.HandleFunc("POST /resumes/{id}/experience/{entryID}/responsibilities", s.handleAddResponsibility)
	mux.HandleFunc("DELETE /resumes/{id}/experience/{entryID}/responsibilities/{index}", s.handleRemoveResponsibility)

	mux.HandleFunc("POST /resumes/{id}/certifications", s.handleAddCertification)
	mux.HandleFunc("PATCH /resumes/{id}/certifications/{entryID}", s.handleUpdateCertification)
	mux.HandleFunc("DELETE /resumes/{id}/certifications/{entryID}", s.handleRemoveCertification)

	mux.HandleFunc("POST /resumes/{id}/languages", s.handleAddLanguage)
	mux.HandleFunc("PATCH /resumes/{id}/languages/{entryID}", s.handleUpdateLanguage)
	mux.HandleFunc("DELETE /resumes/{id}/languages/{entryID}", s.handleRemoveLanguage)

	mux.HandleFunc("POST /resumes/{id}/achievements", s.handleAddAchievement)
	mux.HandleFunc("PATCH /resumes/{id}/achievements/{entryID}", s.handleUpdateAchievement)
	mux.HandleFunc("DELETE /resumes/{id}/achievements/{entryID}", s.handleRemoveAchievement)

	mux.HandleFunc("POST /resumes/{id}/interests", s.handleAddInterest)
	mux.HandleFunc("PATCH /resumes/{id}/interests/{entryID}", s.handleUpdateInterest)
	mux.HandleFunc("DELETE /resumes/{id}/interests/{entryID}", s.handleRemoveInterest)

	// Preview and export
	mux.HandleFunc("GET /resumes/{id}/preview", s.handlePreview)
	mux.HandleFunc("GET /resumes/{id}/previews", s.handlePreviewGallery)
	mux.HandleFunc("GET /resumes/{id}/export/pdf", s.handleExportPDF)
	mux.HandleFunc("GET /resumes/{id}/export/txt", s.handleExportText)
	mux.HandleFunc("GET /resumes/{id}/export/docx", s.handleExportDOCX)

	// Content generation
	mux.HandleFunc("POST /ai", s.handleAIGenerate)
	mux.HandleFunc("POST /resumes/{id}/ai/objective", s.handleAIObjective)
	mux.HandleFunc("POST /resumes/{id}/ai/skills", s.handleAISkills)
	mux.HandleFunc("POST /resumes/{id}/ai/feedback", s.handleAIFeedback)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
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

	// Flush unsaved edits before the database goes away
	if err := s.sessions.CloseAll(ctx); err != nil {
		log.Printf("Error flushing sessions: %v", err)
	}

	// Stop rate limiter cleanup goroutine
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
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

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// For MVP, this uses the IP address from RemoteAddr.
// In the future, this could use X-Forwarded-For header (only from trusted proxies).
func (s *Server) extractClientID(r *http.Request) string {
	// Get IP from RemoteAddr (format: "IP:port")
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// If parsing fails, use the whole RemoteAddr
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
