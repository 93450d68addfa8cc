package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"github.com/archibald-tools/archex/internal/engine"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaults(t *testing.T) {
	resetViper(t)

	cm, err := NewManager("")
	if err != nil {
		t.Fatal(err)
	}
	cfg := cm.Get()

	if cfg.Output.Format != "jsonl" {
		t.Errorf("format = %q, want jsonl", cfg.Output.Format)
	}
	if cfg.Detect.ScanWindow != engine.DefaultScanWindow {
		t.Errorf("scan window = %d, want %d", cfg.Detect.ScanWindow, engine.DefaultScanWindow)
	}
	if got := cfg.Filter.Sentinels; len(got) != 1 || got[0] != "0" {
		t.Errorf("sentinels = %v, want [0]", got)
	}
	if got := cfg.Filter.FooterPrefixes; len(got) != 1 || got[0] != "Count=" {
		t.Errorf("footer prefixes = %v, want [Count=]", got)
	}
	if cfg.TrackingTemplates()["FEDEX"] == "" {
		t.Error("expected a default fedex template")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level = %q, want info", cfg.Log.Level)
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
output:
  format: csv
detect:
  scan_window: 50
  cycle_sizes:
    products: 9
filter:
  sentinels: ["0", "N/A"]
tracking:
  templates:
    FEDEX: "https://tracking.example.com/%s"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := cm.Get()

	if cfg.Output.Format != "csv" {
		t.Errorf("format = %q, want csv", cfg.Output.Format)
	}
	if cfg.Detect.ScanWindow != 50 {
		t.Errorf("scan window = %d, want 50", cfg.Detect.ScanWindow)
	}
	if cfg.Detect.CycleSizes["products"] != 9 {
		t.Errorf("products cycle size = %d, want 9", cfg.Detect.CycleSizes["products"])
	}
	if len(cfg.Filter.Sentinels) != 2 {
		t.Errorf("sentinels = %v, want two entries", cfg.Filter.Sentinels)
	}
	if got := cfg.TrackingTemplates()["FEDEX"]; got != "https://tracking.example.com/%s" {
		t.Errorf("fedex template = %q", got)
	}
}

func TestWriteDefaultRoundTrips(t *testing.T) {
	resetViper(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatal(err)
	}

	cm, err := NewManager(path)
	if err != nil {
		t.Fatal(err)
	}
	cfg := cm.Get()
	if cfg.Output.Format != "jsonl" {
		t.Errorf("format = %q, want jsonl", cfg.Output.Format)
	}
	f := cfg.EngineFilter()
	if len(f.Sentinels) != 1 || f.Sentinels[0] != "0" {
		t.Errorf("engine filter sentinels = %v", f.Sentinels)
	}
}
