package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/cbodonnell/connectfour/pkg/api/clients"
	"github.com/cbodonnell/connectfour/pkg/api/handlers"
	"github.com/cbodonnell/connectfour/pkg/api/metrics"
	"github.com/cbodonnell/connectfour/pkg/api/middleware"
	"github.com/cbodonnell/connectfour/pkg/game"
	"github.com/cbodonnell/connectfour/pkg/log"
	"github.com/cbodonnell/connectfour/pkg/state"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

type APIServer struct {
	server  *http.Server
	tls     *TLSConfig
	clients *clients.ClientManager
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

type NewAPIServerOptions struct {
	Port         int
	TLS          *TLSConfig
	StateManager state.StateManager
	Opponent     game.Opponent
	// ThinkTime delays the automated reply.
	ThinkTime time.Duration
	// RateLimit is the per-client request rate. Zero disables limiting.
	RateLimit float64
	RateBurst int
	// Registry collects the service metrics. A new registry is used when nil.
	Registry *prometheus.Registry
	// Clients tracks WebSocket connections. A new manager is used when nil.
	Clients *clients.ClientManager
}

// NewAPIServer creates a new http.Server for handling API requests
func NewAPIServer(opts NewAPIServerOptions) *APIServer {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	m := metrics.New(opts.Registry)
	if opts.Clients == nil {
		opts.Clients = clients.NewClientManager(m.Clients)
	}
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", opts.Port),
		Handler:           newRouter(opts, m),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return &APIServer{
		server:  server,
		tls:     opts.TLS,
		clients: opts.Clients,
	}
}

// NewRouter builds the service routes.
func NewRouter(opts NewAPIServerOptions) http.Handler {
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return newRouter(opts, metrics.New(opts.Registry))
}

func newRouter(opts NewAPIServerOptions, m *metrics.Metrics) http.Handler {
	registry := opts.Registry
	cm := opts.Clients
	if cm == nil {
		cm = clients.NewClientManager(m.Clients)
	}

	controller := handlers.NewController(handlers.NewControllerOptions{
		StateManager: opts.StateManager,
		Opponent:     opts.Opponent,
		ThinkTime:    opts.ThinkTime,
		Metrics:      m,
	})

	r := mux.NewRouter()
	r.Use(middleware.NewLoggingMiddleware(m))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.NewCORSMiddleware())
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = 1
		}
		apiRouter.Use(middleware.NewRateLimitMiddleware(middleware.NewRateLimiter(rate.Limit(opts.RateLimit), burst), m))
	}
	// the WebSocket route is registered before the compressed routes so its writer stays hijackable
	apiRouter.HandleFunc("/ws", handlers.HandleWebSocket(controller, cm)).Methods(http.MethodGet)

	compressed := apiRouter.NewRoute().Subrouter()
	compressed.Use(func(next http.Handler) http.Handler {
		return gzhttp.GzipHandler(next)
	})
	compressed.HandleFunc("/state", handlers.HandleGetState(controller)).Methods(http.MethodGet)
	compressed.HandleFunc("/move", handlers.HandleMove(controller)).Methods(http.MethodPost, http.MethodOptions)
	compressed.HandleFunc("/reset", handlers.HandleReset(controller)).Methods(http.MethodPost, http.MethodOptions)

	return r
}

// Start starts the APIServer
func (s *APIServer) Start() error {
	var listenAndServe func() error
	if s.tls != nil {
		log.Info("API server listening on %s with TLS", s.server.Addr)
		listenAndServe = func() error {
			return s.server.ListenAndServeTLS(s.tls.CertFile, s.tls.KeyFile)
		}
	} else {
		log.Info("API server listening on %s", s.server.Addr)
		listenAndServe = s.server.ListenAndServe
	}
	if err := listenAndServe(); err != nil {
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("API server closed")
			return nil
		}
		return fmt.Errorf("API server error: %v", err)
	}
	return nil
}

// Stop stops the APIServer
func (s *APIServer) Stop(ctx context.Context) error {
	err := s.server.Shutdown(ctx)
	s.clients.CloseAll("server shutting down")
	return err
}
