package restapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"near_account_lookup/internal/config"
	"near_account_lookup/internal/logger"
	"near_account_lookup/pkg/nearlookup"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	httpServer *http.Server
	service    nearlookup.Lookup
	logger     logger.AppLogger
}

// NewServer creates a new instance of the REST API server.
func NewServer(service nearlookup.Lookup, appLogger logger.AppLogger, cfg *config.ServerConfig) (*Server, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil for Server")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for Server")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil for Server")
	}

	h, err := NewHTTPHandler(service, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize handler: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           NewRouter(h),
		ReadTimeout:       time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout:      time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(cfg.IdleTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: time.Duration(cfg.ReadHeaderTimeoutSeconds) * time.Second,
	}

	return &Server{
		httpServer: server,
		service:    service,
		logger:     appLogger,
	}, nil
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	s.logger.Info("-------------------------------------")
	s.logger.Info("API Server starting", "address", s.httpServer.Addr)
	s.logger.Info("Available Endpoints:")
	s.logger.Info("  GET  /accounts/{accountId}")
	s.logger.Info("  POST /hover         (Body: {'text':'...','offset':0})")
	s.logger.Info("  POST /links         (Body: {'text':'...'})")
	s.logger.Info("  POST /scan          (Body: {'text':'...'})")
	s.logger.Info("  GET  /network")
	s.logger.Info("-------------------------------------")

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("HTTP server ListenAndServe error", "error", err)
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server...")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
		return err
	}
	s.logger.Info("HTTP server stopped gracefully.")
	return nil
}

// NewRouter creates a new ServeMux, registers all API handlers and wraps it with request ids.
func NewRouter(h *HTTPHandler) http.Handler {
	smux := http.NewServeMux()

	smux.HandleFunc("/accounts/{accountId}", h.HandleGetAccount)
	smux.HandleFunc("/hover", h.HandleHover)
	smux.HandleFunc("/links", h.HandleLinks)
	smux.HandleFunc("/scan", h.HandleScan)
	smux.HandleFunc("/network", h.HandleGetNetwork)

	return withRequestID(smux, h.logger)
}
