// Package pathway hosts the HTTP service of the theme.
package pathway

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/louisbranch/pathway/internal/platform/timeouts"
	"github.com/louisbranch/pathway/internal/services/pathway/app"
	module "github.com/louisbranch/pathway/internal/services/pathway/module"
	"github.com/louisbranch/pathway/internal/services/pathway/modules"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/httpx"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/observability"
	"github.com/louisbranch/pathway/internal/services/pathway/platform/sessioncookie"
	"github.com/louisbranch/pathway/internal/services/pathway/routepath"
	"github.com/louisbranch/pathway/internal/theme/content"
	"github.com/louisbranch/pathway/internal/theme/flags"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
	"github.com/louisbranch/pathway/internal/theme/setup"
)

// Config defines startup inputs for the theme service.
type Config struct {
	HTTPAddr string
	Theme    *setup.Theme
	Content  content.Source
	Store    flags.Store
	Nonces   module.Nonces
	// AdminURL is the admin root used in activation redirects.
	AdminURL string
	// Installed lists installed plugin paths.
	Installed []string
	Logger    zerolog.Logger
}

// Server hosts the theme HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default modules.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Theme == nil {
		return nil, errors.New("theme is required")
	}
	if cfg.Store == nil {
		return nil, errors.New("flag store is required")
	}
	if cfg.Nonces == nil {
		return nil, errors.New("nonces are required")
	}
	source := cfg.Content
	if source == nil {
		source = content.NewStatic(cfg.Theme.Manifest)
	}
	deps := module.Dependencies{
		Theme:   cfg.Theme,
		Content: source,
		Nonces:  cfg.Nonces,
		Onboarding: onboarding.Service{
			Nonces:    cfg.Nonces,
			AdminURL:  cfg.AdminURL,
			Installed: append([]string(nil), cfg.Installed...),
		},
		Logger: cfg.Logger,
	}
	h, err := app.Composer{}.Compose(app.ComposeInput{Dependencies: deps, Modules: modules.Default()})
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, handleHealth)
	rootMux.Handle("/", h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(cfg.Logger),
		httpx.RequestID(),
		observability.Trace(),
		sessioncookie.Bind(cfg.Store),
		observability.RequestLogger(cfg.Logger),
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte("ok"))
}

// NewServer validates config and constructs the theme server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose pathway handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("pathway server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown pathway http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve pathway http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
