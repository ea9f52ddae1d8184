package pathway

import (
	"context"
	"flag"
	"io"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/louisbranch/pathway/internal/theme/flags"
	"github.com/louisbranch/pathway/internal/theme/onboarding"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(flag.NewFlagSet("pathway", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8090" {
		t.Fatalf("HTTPAddr = %q, want localhost:8090", cfg.HTTPAddr)
	}
	if cfg.NonceTTL != 24*time.Hour {
		t.Fatalf("NonceTTL = %v, want 24h", cfg.NonceTTL)
	}
	if cfg.PruneAfter != 720*time.Hour {
		t.Fatalf("PruneAfter = %v, want 720h", cfg.PruneAfter)
	}
	if cfg.BuilderEnabled {
		t.Fatal("BuilderEnabled = true, want false")
	}
}

func TestParseConfigFlagsOverride(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(flag.NewFlagSet("pathway", flag.ContinueOnError), []string{
		"-http-addr", "127.0.0.1:9100",
		"-builder-enabled",
		"-installed-plugins", "kubio-pro/plugin.php, akismet/akismet.php,",
		"-nonce-ttl", "90m",
	})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if !cfg.BuilderEnabled {
		t.Fatal("BuilderEnabled = false, want true")
	}
	if want := []string{"kubio-pro/plugin.php", "akismet/akismet.php"}; !slices.Equal(cfg.InstalledPlugins, want) {
		t.Fatalf("InstalledPlugins = %v, want %v", cfg.InstalledPlugins, want)
	}
	if cfg.NonceTTL != 90*time.Minute {
		t.Fatalf("NonceTTL = %v, want 90m", cfg.NonceTTL)
	}
}

func TestParseConfigNonceKeyIsEnvironmentOnly(t *testing.T) {
	t.Setenv("PATHWAY_NONCE_KEY", "environment-secret")

	fs := flag.NewFlagSet("pathway", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	if _, err := ParseConfig(fs, []string{"-nonce-key", "x"}); err == nil {
		t.Fatal("ParseConfig(-nonce-key) error = nil, want unknown flag")
	}
	cfg, err := ParseConfig(flag.NewFlagSet("pathway", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.NonceKey != "environment-secret" {
		t.Fatalf("NonceKey = %q", cfg.NonceKey)
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PATHWAY_HTTP_ADDR", "0.0.0.0:7000")
	t.Setenv("PATHWAY_INSTALLED_PLUGINS", "kubio-pro/plugin.php")

	cfg, err := ParseConfig(flag.NewFlagSet("pathway", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:7000" {
		t.Fatalf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if onboarding.BuilderPluginSlug(cfg.InstalledPlugins) != onboarding.BuilderProSlug {
		t.Fatalf("InstalledPlugins = %v", cfg.InstalledPlugins)
	}
}

func TestLoadManifestOverridesSiteURL(t *testing.T) {
	t.Parallel()

	m, err := loadManifest(Config{SiteURL: "https://pathway.example"})
	if err != nil {
		t.Fatalf("loadManifest() error = %v", err)
	}
	if m.Site.URL != "https://pathway.example" {
		t.Fatalf("Site.URL = %q", m.Site.URL)
	}
	if _, err := loadManifest(Config{ManifestPath: filepath.Join(t.TempDir(), "missing.yaml")}); err == nil {
		t.Fatal("expected error for a missing manifest")
	}
}

func TestNewNoncesRejectsShortKey(t *testing.T) {
	t.Parallel()

	if _, err := newNonces(Config{NonceKey: "short"}, zerolog.Nop()); err == nil {
		t.Fatal("expected error for short key")
	}
	nonces, err := newNonces(Config{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("newNonces() error = %v", err)
	}
	token, err := nonces.Issue(onboarding.PredesignNonceAction, "session")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if err := nonces.Verify(token, onboarding.PredesignNonceAction, "session"); err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
}

func TestOpenStore(t *testing.T) {
	t.Parallel()

	store, p, err := openStore(context.Background(), "")
	if err != nil {
		t.Fatalf("openStore(memory) error = %v", err)
	}
	if _, ok := store.(*flags.MemoryStore); !ok || p != nil {
		t.Fatalf("memory store = %T, pruner = %v", store, p)
	}

	store, p, err = openStore(context.Background(), filepath.Join(t.TempDir(), "flags.db"))
	if err != nil {
		t.Fatalf("openStore(sqlite) error = %v", err)
	}
	defer store.Close()
	if p == nil {
		t.Fatal("sqlite store should prune")
	}
	ctx := context.Background()
	if err := store.Save(ctx, "s1", flags.Session{StartSource: "notice-ai", UpdatedAt: time.Now().Add(-48 * time.Hour)}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	removed, err := p.Prune(ctx, time.Now().Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
}

func TestSplitList(t *testing.T) {
	t.Parallel()

	if got := splitList(" a, ,b ,"); !slices.Equal(got, []string{"a", "b"}) {
		t.Fatalf("splitList() = %v", got)
	}
	if got := splitList(""); got != nil {
		t.Fatalf("splitList(empty) = %v", got)
	}
}
