package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/adveng/tata-car-advisor/apimodels"
	"github.com/adveng/tata-car-advisor/internal/config"
)

// ChatService is what the chat endpoint needs from the advisor.
type ChatService interface {
	Advise(ctx context.Context, req apimodels.ChatRequest) (*apimodels.ChatResponse, error)
}

type Server struct {
	cfg       config.ServerConfig
	server    *http.Server
	advisor   ChatService
	providers []string
}

// New wires the router. providerNames is the ordered chain reported by the
// status endpoint.
func New(cfg config.ServerConfig, advisor ChatService, providerNames []string) *Server {
	s := &Server{
		cfg:       cfg,
		advisor:   advisor,
		providers: providerNames,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/chat", s.handleChat)
		r.Post("/filter", s.handleFilter)
		r.Get("/status", s.handleStatus)
	})

	// Serve the single-page UI
	r.Handle("/*", http.FileServer(http.Dir(cfg.StaticDir)))

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

func (s *Server) Run() error {
	serverErrors := make(chan error, 1)

	go func() {
		slog.Info("starting server", "address", s.server.Addr)
		serverErrors <- s.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		slog.Info("starting shutdown", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	return nil
}
