// Package web is the HTTP surface of the catalog: templated HTML pages with
// cookie-session auth, a bearer-guarded JSON API, and static assets.
package web

import (
	"context"
	"net/http"
	"time"

	"pokedex/internal/logging"
	"pokedex/internal/server/config"
	"pokedex/internal/server/models"
	"pokedex/internal/server/services"
	"pokedex/internal/server/sessions"
)

// Server holds the request-handling dependencies. The dataset slice is the
// shared, effectively-immutable catalog; everything mutable lives behind the
// session store and the services.
type Server struct {
	address   string
	logger    logging.Logger
	dataset   []models.Pokemon
	users     *services.UserService
	media     *services.MediaService
	sessions  *sessions.Store
	jwtSecret []byte
	publicDir string
}

func NewServer(cfg *config.Config, l logging.Logger, dataset []models.Pokemon,
	us *services.UserService, ms *services.MediaService, ss *sessions.Store) (*Server, error) {
	return &Server{
		address:   cfg.Address,
		logger:    l.With("module", "web_server"),
		dataset:   dataset,
		users:     us,
		media:     ms,
		sessions:  ss,
		jwtSecret: []byte(cfg.SecretKey),
		publicDir: cfg.PublicDir,
	}, nil
}

// Routes builds the route table. Browser routes pass through the session
// guards; /api routes use bearer tokens instead.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// HTML surface
	mux.HandleFunc("GET /{$}", s.requireAnonymous(s.handleLoginPage))
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("GET /register", s.handleRegisterPage)
	mux.HandleFunc("POST /register", s.handleRegister)
	mux.HandleFunc("GET /logout", s.handleLogout)
	mux.HandleFunc("GET /home", s.requireAuthenticated(s.handleHome))

	mux.HandleFunc("GET /index", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/catalog", http.StatusMovedPermanently)
	})
	mux.HandleFunc("GET /catalog", s.handleIndex)
	mux.HandleFunc("GET /catalog/filter", s.handleFilter)
	mux.HandleFunc("GET /catalog/sort", s.handleSort)
	mux.HandleFunc("GET /catalog/{id}", s.handleDetail)

	// JSON API surface
	mux.HandleFunc("POST /api/login", s.handleAPILogin)
	mux.HandleFunc("GET /api/pokemon", s.requireBearer(s.handleAPIList))
	mux.HandleFunc("GET /api/pokemon/filter", s.requireBearer(s.handleAPIFilter))
	mux.HandleFunc("GET /api/pokemon/sort", s.requireBearer(s.handleAPISort))
	mux.HandleFunc("GET /api/pokemon/{id}", s.requireBearer(s.handleAPIDetail))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	mux.Handle("GET /public/", http.StripPrefix("/public/", http.FileServer(http.Dir(s.publicDir))))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
