package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/halemalu/mall-directory-services/api/internal/admin/application"
	"github.com/halemalu/mall-directory-services/api/internal/config"
	mongodoc "github.com/halemalu/mall-directory-services/api/internal/infrastructure/mongo"
	"github.com/halemalu/mall-directory-services/api/internal/infrastructure/scraper"
	adminhttp "github.com/halemalu/mall-directory-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/halemalu/mall-directory-services/api/internal/interfaces/http/common"
	publichttp "github.com/halemalu/mall-directory-services/api/internal/interfaces/http/public"
	publicapp "github.com/halemalu/mall-directory-services/api/internal/public/application"
)

// Server manages the HTTP lifecycle and injects the lookup pipeline into
// the public and admin handler sets. It is the composition root: services
// are assembled here and nowhere else.
type Server struct {
	logger           *log.Logger
	client           *mongo.Client
	database         *mongo.Database
	pings            *mongo.Collection
	location         *time.Location
	jwtConfigs       []config.JWTConfig
	jwtAudience      string
	directoryQueries publicapp.DirectoryQueryService
	adminDirectory   adminapp.DirectoryService
	mallLink         string
	addr             string
	allowedOrigins   []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// New receives the Config and Mongo client and assembles the repositories,
// fetchers, and application services behind the handlers.
func New(cfg config.Config, client *mongo.Client) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("HST", -10*60*60)
		cfg.ServerLog.Printf("failed to load timezone %s: %v, using HST", cfg.Timezone, err)
	}

	srv := &Server{
		logger:         cfg.ServerLog,
		client:         client,
		database:       client.Database(cfg.MongoDatabase),
		location:       loc,
		jwtConfigs:     append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:    cfg.JWTAudience,
		mallLink:       cfg.MallLink,
		addr:           cfg.Addr,
		allowedOrigins: append([]string(nil), cfg.AllowedOrigins...),
	}
	srv.pings = srv.database.Collection(cfg.PingCollection)

	directoryRepo := mongodoc.NewDirectoryRepository(srv.database, cfg.StoreCollection)
	fetcher := scraper.NewTenantFetcher(cfg.ServerLog, scraper.DefaultSelectors(), cfg.FetchUserAgent, cfg.FetchTimeout)
	prober := scraper.NewHTTPProber(&http.Client{Timeout: cfg.FetchTimeout}, cfg.FetchUserAgent)

	srv.directoryQueries = publicapp.NewDirectoryQueryService(directoryRepo, fetcher, prober, cfg.ServerLog, cfg.DirectoryPath)
	srv.adminDirectory = adminapp.NewDirectoryService(directoryRepo, fetcher, cfg.DirectoryPath)

	return srv
}

// Run starts the HTTP server and assembles routing and middleware for the
// public and admin areas.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Get("/ping", s.pingHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Directory:   s.directoryQueries,
		Location:    s.location,
		DefaultMall: s.mallLink,
	})
	publicHandler.Register(router)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:      s.logger,
		Directory:   s.adminDirectory,
		DefaultMall: s.mallLink,
	})
	router.Route("/admin", func(r chi.Router) {
		r.Use(s.authMiddleware)
		adminHandler.Register(r)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS grants the configured origins access to the API.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler checks MongoDB connectivity for monitoring probes. It
// reports infrastructure state only, never domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// pingHandler verifies that the ping collection is reachable, a quick way
// to confirm the app can actually read its database.
func (s *Server) pingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		count, err := s.pings.CountDocuments(ctx, bson.D{})
		if err != nil {
			s.logger.Printf("ping collection count failed: %v", err)
			commonhttp.WriteJSON(s.logger, w, http.StatusInternalServerError, map[string]string{
				"error": "ping collection unavailable",
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]any{
			"message": "pong",
			"pings":   count,
		})
	}
}

// authMiddleware validates the bearer JWT on admin routes and stores the
// authenticated operator in the request context.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
		if authHeader == "" {
			commonhttp.WriteJSON(s.logger, w, http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			commonhttp.WriteJSON(s.logger, w, http.StatusUnauthorized, map[string]string{"error": "a Bearer token is required"})
			return
		}

		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
		if tokenString == "" {
			commonhttp.WriteJSON(s.logger, w, http.StatusUnauthorized, map[string]string{"error": "empty access token"})
			return
		}

		claims, err := s.parseAuthToken(tokenString)
		if err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
			return
		}

		user := authenticatedUser{
			ID:       claims.Subject,
			Name:     claims.Name,
			Username: claims.PreferredUsername,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseAuthToken tries each configured JWT setting in order, verifying the
// signature and the issuer/audience pairing. None matching means the token
// is rejected.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("invalid access token")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name              string `json:"name,omitempty"`
	PreferredUsername string `json:"preferred_username,omitempty"`
}

// shutdown disconnects the MongoDB client with a timeout so process exit
// does not leak connections.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error disconnecting MongoDB: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals to drive a graceful
// shutdown.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, starting shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during server shutdown: %v", err)
		}
	}

	srv.shutdown(context.Background())
}
