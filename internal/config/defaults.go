package config

import (
	"strings"

	"github.com/archibald-tools/archex/internal/engine"
	"github.com/archibald-tools/archex/internal/tracking"
)

// DefaultConfig returns the built-in configuration. The filter values
// mirror the export's placeholder and footer conventions; tracking
// templates come from the courier vocabulary.
func DefaultConfig() *Config {
	filter := engine.DefaultFilter()

	templates := make(map[string]string)
	for provider, tmpl := range tracking.DefaultTemplates() {
		templates[string(provider)] = tmpl
	}

	return &Config{
		Output: OutputConfig{
			Format: "jsonl",
		},
		Detect: DetectConfig{
			ScanWindow: engine.DefaultScanWindow,
			CycleSizes: map[string]int{},
		},
		Filter: FilterConfig{
			Sentinels:      filter.Sentinels,
			FooterPrefixes: filter.FooterPrefixes,
		},
		Tracking: TrackingConfig{
			Templates: templates,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// EngineFilter converts the filter section into the engine's type.
func (c *Config) EngineFilter() engine.Filter {
	return engine.Filter{
		Sentinels:      c.Filter.Sentinels,
		FooterPrefixes: c.Filter.FooterPrefixes,
	}
}

// TrackingTemplates converts the tracking section into the parser's type.
// Courier codes are upper-cased because viper folds map keys from config
// files to lower case.
func (c *Config) TrackingTemplates() tracking.Templates {
	if len(c.Tracking.Templates) == 0 {
		return tracking.DefaultTemplates()
	}
	out := make(tracking.Templates, len(c.Tracking.Templates))
	for provider, tmpl := range c.Tracking.Templates {
		out[tracking.Provider(strings.ToUpper(provider))] = tmpl
	}
	return out
}
