// Package pathway parses theme service flags and launches the service.
package pathway

import (
	"context"
	"crypto/rand"
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	entrypoint "github.com/louisbranch/pathway/internal/platform/cmd"
	"github.com/louisbranch/pathway/internal/platform/health"
	"github.com/louisbranch/pathway/internal/platform/logging"
	pathwayservice "github.com/louisbranch/pathway/internal/services/pathway"
	"github.com/louisbranch/pathway/internal/theme/content"
	"github.com/louisbranch/pathway/internal/theme/flags"
	flagsqlite "github.com/louisbranch/pathway/internal/theme/flags/sqlite"
	"github.com/louisbranch/pathway/internal/theme/manifest"
	"github.com/louisbranch/pathway/internal/theme/nonce"
	"github.com/louisbranch/pathway/internal/theme/setup"
)

// Config holds the pathway command configuration.
type Config struct {
	HTTPAddr         string        `env:"HTTP_ADDR" envDefault:"localhost:8090"`
	GRPCAddr         string        `env:"GRPC_ADDR"`
	DBPath           string        `env:"DB_PATH"`
	ManifestPath     string        `env:"MANIFEST"`
	NonceKey         string        `env:"NONCE_KEY"`
	NonceTTL         time.Duration `env:"NONCE_TTL" envDefault:"24h"`
	AdminURL         string        `env:"ADMIN_URL" envDefault:"http://localhost:8090/wp-admin"`
	SiteURL          string        `env:"SITE_URL"`
	BuilderEnabled   bool          `env:"BUILDER_ENABLED"`
	InstalledPlugins []string      `env:"INSTALLED_PLUGINS" envSeparator:","`
	PruneAfter       time.Duration `env:"PRUNE_AFTER" envDefault:"720h"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	LogConsole       bool          `env:"LOG_CONSOLE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	installed := strings.Join(cfg.InstalledPlugins, ",")

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.GRPCAddr, "grpc-addr", cfg.GRPCAddr, "gRPC health listen address; disabled when empty")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite flag store path; in-memory when empty")
	fs.StringVar(&cfg.ManifestPath, "manifest", cfg.ManifestPath, "Theme manifest (.yaml or .toml); embedded default when empty")
	fs.StringVar(&cfg.AdminURL, "admin-url", cfg.AdminURL, "Admin root used in activation redirects")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site URL; overrides the manifest")
	fs.BoolVar(&cfg.BuilderEnabled, "builder-enabled", cfg.BuilderEnabled, "Serve the page builder base style instead of the theme assets")
	fs.StringVar(&installed, "installed-plugins", installed, "Comma separated installed plugin paths")
	fs.DurationVar(&cfg.NonceTTL, "nonce-ttl", cfg.NonceTTL, "Lifetime of issued onboarding nonces")
	fs.DurationVar(&cfg.PruneAfter, "prune-after", cfg.PruneAfter, "Drop stored sessions idle for longer than this; 0 disables")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	fs.BoolVar(&cfg.LogConsole, "log-console", cfg.LogConsole, "Human readable log output")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	cfg.InstalledPlugins = splitList(installed)
	return cfg, nil
}

// Run starts the theme service.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.Setup(logging.Options{Level: cfg.LogLevel, Console: cfg.LogConsole})
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServicePathway, func(ctx context.Context) error {
		return run(ctx, cfg, logger)
	})
}

func run(ctx context.Context, cfg Config, logger zerolog.Logger) error {
	m, err := loadManifest(cfg)
	if err != nil {
		return err
	}
	theme, err := setup.Load(m, setup.Options{BuilderEnabled: cfg.BuilderEnabled})
	if err != nil {
		return fmt.Errorf("load theme: %w", err)
	}
	nonces, err := newNonces(cfg, logger)
	if err != nil {
		return err
	}
	store, prunable, err := openStore(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn().Err(err).Msg("close flag store")
		}
	}()

	server, err := pathwayservice.NewServer(ctx, pathwayservice.Config{
		HTTPAddr:  cfg.HTTPAddr,
		Theme:     theme,
		Content:   content.NewStatic(m),
		Store:     store,
		Nonces:    nonces,
		AdminURL:  cfg.AdminURL,
		Installed: cfg.InstalledPlugins,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("init pathway server: %w", err)
	}
	defer server.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var healthDone chan error
	if strings.TrimSpace(cfg.GRPCAddr) != "" {
		healthServer, err := health.Listen(cfg.GRPCAddr, logger, entrypoint.ServicePathway)
		if err != nil {
			return err
		}
		healthDone = make(chan error, 1)
		go func() { healthDone <- healthServer.Serve(ctx) }()
	}
	if prunable != nil && cfg.PruneAfter > 0 {
		go prune(ctx, prunable, cfg.PruneAfter, logger)
	}

	logger.Info().Str("addr", server.Addr()).Str("theme", theme.Manifest.Name).Bool("builder_enabled", cfg.BuilderEnabled).Msg("pathway listening")
	serveErr := server.ListenAndServe(ctx)
	cancel()
	if healthDone != nil {
		if err := <-healthDone; err != nil && serveErr == nil {
			serveErr = err
		}
	}
	if serveErr != nil {
		return fmt.Errorf("serve pathway: %w", serveErr)
	}
	return nil
}

func loadManifest(cfg Config) (*manifest.Manifest, error) {
	var (
		m   *manifest.Manifest
		err error
	)
	if path := strings.TrimSpace(cfg.ManifestPath); path != "" {
		m, err = manifest.Load(path)
	} else {
		m, err = manifest.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	if siteURL := strings.TrimSpace(cfg.SiteURL); siteURL != "" {
		m.Site.URL = siteURL
	}
	return m, nil
}

// newNonces builds the token manager. Without a configured key a random one
// is generated, so tokens do not survive a restart.
func newNonces(cfg Config, logger zerolog.Logger) (*nonce.Manager, error) {
	key := []byte(strings.TrimSpace(cfg.NonceKey))
	if len(key) == 0 {
		key = make([]byte, nonce.MinKeyLength)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate nonce key: %w", err)
		}
		logger.Warn().Msg("PATHWAY_NONCE_KEY is not set; using an ephemeral key")
	}
	nonces, err := nonce.New(nonce.Config{Key: key, TTL: cfg.NonceTTL})
	if err != nil {
		return nil, fmt.Errorf("init nonces: %w", err)
	}
	return nonces, nil
}

type pruner interface {
	Prune(ctx context.Context, olderThan time.Time) (int64, error)
}

func openStore(ctx context.Context, path string) (flags.Store, pruner, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return flags.NewMemoryStore(), nil, nil
	}
	store, err := flagsqlite.Open(ctx, path)
	if err != nil {
		return nil, nil, fmt.Errorf("open flag store: %w", err)
	}
	return store, store, nil
}

func prune(ctx context.Context, store pruner, after time.Duration, logger zerolog.Logger) {
	interval := after / 24
	if interval < time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			removed, err := store.Prune(ctx, now.Add(-after))
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					logger.Warn().Err(err).Msg("prune flag store")
				}
				continue
			}
			if removed > 0 {
				logger.Debug().Int64("removed", removed).Msg("pruned idle sessions")
			}
		}
	}
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
