package config

import "testing"

type sample struct {
	Addr    string   `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	Plugins []string `env:"PLUGINS" envSeparator:","`
	Enabled bool     `env:"ENABLED"`
}

func TestParseEnvFromAppliesPrefix(t *testing.T) {
	t.Parallel()

	var cfg sample
	err := ParseEnvFrom(&cfg, map[string]string{
		"PATHWAY_HTTP_ADDR": "127.0.0.1:9000",
		"PATHWAY_PLUGINS":   "kubio/plugin.php,woocommerce/woocommerce.php",
		"HTTP_ADDR":         "ignored:1",
		"PATHWAY_ENABLED":   "true",
	})
	if err != nil {
		t.Fatalf("ParseEnvFrom() error = %v", err)
	}
	if cfg.Addr != "127.0.0.1:9000" {
		t.Fatalf("Addr = %q, want %q", cfg.Addr, "127.0.0.1:9000")
	}
	if len(cfg.Plugins) != 2 || cfg.Plugins[0] != "kubio/plugin.php" {
		t.Fatalf("Plugins = %v", cfg.Plugins)
	}
	if !cfg.Enabled {
		t.Fatal("Enabled = false, want true")
	}
}

func TestParseEnvFromUsesDefaults(t *testing.T) {
	t.Parallel()

	var cfg sample
	if err := ParseEnvFrom(&cfg, map[string]string{}); err != nil {
		t.Fatalf("ParseEnvFrom() error = %v", err)
	}
	if cfg.Addr != "localhost:8080" {
		t.Fatalf("Addr = %q, want default", cfg.Addr)
	}
}

func TestParseEnvFromRejectsInvalidValue(t *testing.T) {
	t.Parallel()

	var cfg sample
	if err := ParseEnvFrom(&cfg, map[string]string{"PATHWAY_ENABLED": "maybe"}); err == nil {
		t.Fatal("expected invalid bool to fail")
	}
}
