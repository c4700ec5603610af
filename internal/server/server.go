package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/SlotMaster_Go/internal/admin"
	"github.com/osse101/SlotMaster_Go/internal/clock"
	"github.com/osse101/SlotMaster_Go/internal/database"
	"github.com/osse101/SlotMaster_Go/internal/handler"
	"github.com/osse101/SlotMaster_Go/internal/identity"
	"github.com/osse101/SlotMaster_Go/internal/logger"
	"github.com/osse101/SlotMaster_Go/internal/metrics"
	"github.com/osse101/SlotMaster_Go/internal/ranking"
	"github.com/osse101/SlotMaster_Go/internal/ratelimit"
	"github.com/osse101/SlotMaster_Go/internal/reconcile"
)

// Options carries the transport settings of the server
type Options struct {
	Port           int
	AdminAPIKey    string
	TrustedProxies []string
	StoreDriver    string
	Clock          clock.Clock
	Limiter        ratelimit.Limiter
}

type Server struct {
	httpServer       *http.Server
	store            database.Pool
	identityService  identity.Service
	reconcileService reconcile.Service
	rankingService   ranking.Service
	adminService     admin.Service
}

// NewServer creates a new Server instance
func NewServer(opts Options, store database.Pool, identityService identity.Service, reconcileService reconcile.Service, rankingService ranking.Service, adminService admin.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.Limiter, opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", handler.HandleStatus(opts.StoreDriver, opts.Clock))

		// Identity routes
		r.Get("/shared-user-id", handler.HandleGetSharedUserID(identityService))
		r.Get("/users", handler.HandleListUsers(identityService))
		r.Post("/users", handler.HandleCreateUser(identityService))
		r.Post("/register", handler.HandleRegister(identityService))
		r.Post("/login", handler.HandleLogin(identityService))
		r.Get("/check-login/{username}", handler.HandleCheckLogin(identityService))

		// Snapshot routes
		r.Route("/game-state", func(r chi.Router) {
			r.Post("/", handler.HandleSaveGameState(reconcileService))
			r.Get("/{userId}", handler.HandleGetGameState(reconcileService))
		})

		// Daily result routes
		r.Route("/game-history", func(r chi.Router) {
			r.Post("/", handler.HandleUpsertDailyResult(reconcileService))
			r.Get("/{userId}", handler.HandleGetRecentHistory(reconcileService))
			r.Get("/{userId}/today", handler.HandleGetTodayResult(reconcileService))
			r.Delete("/{userId}", handler.HandleClearHistory(reconcileService))
		})

		r.Get("/ranking", handler.HandleGetRanking(rankingService))

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Use(AuthMiddleware(opts.AdminAPIKey, opts.TrustedProxies, detector))

			r.Get("/stats", handler.HandleAdminStats(adminService))
			r.Get("/records", handler.HandleAdminRecords(adminService))
			r.Delete("/records/{id}", handler.HandleAdminDeleteRecord(adminService))
			r.Delete("/users/{userId}", handler.HandleAdminPurgeUser(adminService))
			r.Delete("/data", handler.HandleAdminClearAll(adminService))
			r.Delete("/history/old", handler.HandleAdminClearOldHistory(adminService))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           r,
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
		store:            store,
		identityService:  identityService,
		reconcileService: reconcileService,
		rankingService:   rankingService,
		adminService:     adminService,
	}
}

// Handler exposes the router, mainly for in-process tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes would drown the request log
		if isInfraPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
