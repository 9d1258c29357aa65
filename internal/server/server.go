package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/camilogonzalez/resumeia/internal/config"
	"github.com/camilogonzalez/resumeia/internal/db"
	"github.com/camilogonzalez/resumeia/internal/fetch"
	"github.com/camilogonzalez/resumeia/internal/llm"
	"github.com/camilogonzalez/resumeia/internal/server/middleware"
	"github.com/camilogonzalez/resumeia/internal/server/ratelimit"
	"github.com/camilogonzalez/resumeia/internal/types"
)

// CVGenerator produces and improves CV content. *llm.Generator satisfies it;
// tests substitute a stub.
type CVGenerator interface {
	GenerateCV(ctx context.Context, profile *types.Profile, positionTitle, organizationName, positionDetails string) (*types.CVContent, error)
	ImproveCV(ctx context.Context, cv *types.CVContent, recommendations []string, jobRequirements string) (*types.CVContent, error)
}

// Server represents the HTTP server.
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
	generator   CVGenerator
	llmClient   llm.Client
	fetchJob    func(ctx context.Context, url string) (string, error)
	validator   *validator.Validate
}

// Config holds server configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
}

// New creates a new server instance.
func New(cfg Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.EnsureSchema(context.Background()); err != nil {
		database.Close()
		return nil, err
	}

	s := &Server{
		db:        database,
		validator: validator.New(),
		fetchJob: func(ctx context.Context, url string) (string, error) {
			return fetch.JobPosting(ctx, url, false)
		},
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	if cfg.GeminiAPIKey == "" {
		log.Println("[SERVER] GEMINI_API_KEY not set, CV generation runs in mock mode")
		s.generator = llm.NewGenerator(nil)
	} else {
		client, err := llm.NewClient(context.Background(), llm.DefaultConfig(), cfg.GeminiAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		s.llmClient = client
		s.generator = llm.NewGenerator(client)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF rendering and model calls take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.Auth(s.jwtService.AsTokenValidator())
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux.HandleFunc("GET /health", s.handleHealth)

	// Authentication
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)
	mux.Handle("PUT /auth/password", protected(s.handleUpdatePassword))

	// Career profiles
	mux.Handle("GET /profiles", protected(s.handleListProfiles))
	mux.Handle("POST /profiles", protected(s.handleCreateProfile))
	mux.Handle("GET /profiles/{id}", protected(s.handleGetProfile))
	mux.Handle("PUT /profiles/{id}", protected(s.handleUpdateProfile))
	mux.Handle("DELETE /profiles/{id}", protected(s.handleDeleteProfile))

	// CV generation and history
	mux.Handle("POST /profiles/{id}/cv", protected(s.handleGenerateCV))
	mux.Handle("GET /profiles/{id}/cvs", protected(s.handleListCVs))
	mux.Handle("GET /history", protected(s.handleHistory))
	mux.Handle("GET /cvs/{id}", protected(s.handleGetCV))
	mux.Handle("GET /cvs/{id}/pdf", protected(s.handleCVPDF))

	// Sharing
	mux.Handle("POST /cvs/{id}/share", protected(s.handleCreateShare))
	mux.Handle("DELETE /cvs/{id}/share", protected(s.handleRevokeShare))
	mux.HandleFunc("GET /share/{token}", s.handleSharedCV)
	mux.HandleFunc("GET /share/{token}/pdf", s.handleSharedCVPDF)

	// ATS analysis
	mux.Handle("POST /ats/analyze", protected(s.handleATSAnalyze))
	mux.Handle("POST /ats/improve", protected(s.handleATSImprove))

	// LinkedIn import
	mux.Handle("POST /linkedin/import", protected(s.handleLinkedinImport))

	return mux
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

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client request limits.
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)
		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword routes the password change to the auth handler with
// the authenticated user ID.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	s.authHandler.UpdatePassword(w, r, userID)
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP for rate limiting.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
	writeJSON(w, http.StatusTooManyRequests, map[string]any{
		"error":       "rate_limit_exceeded",
		"retry_after": info.RetryAfter.Seconds(),
	})
}
