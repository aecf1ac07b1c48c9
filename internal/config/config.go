// Package config provides configuration management for pencraft using Viper
// for loading from files, environment variables, and command-line flags.
//
// The configuration file is YAML (.pencraft.yml by default); any key can be
// overridden with a PENCRAFT_ environment variable, dots replaced by
// underscores (PENCRAFT_IDS_BASE=9000). It names the document path, the id
// namespace base, page geometry and order, extra generation passes, and
// logging options.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/logging"
)

// Defaults.
const (
	DefaultDocumentPath = "design/components.pen"
	DefaultIDBase       = 1
	DefaultPageWidth    = 1440
	DefaultPageHeight   = 2000
	DefaultBandHeight   = 2100
	DefaultPageGap      = 64
	DefaultPagePadding  = 64
)

// DefaultPageNames is the base page set, in tiling order.
var DefaultPageNames = []string{
	"Typography",
	"Actions",
	"Forms",
	"Data Display",
	"Feedback",
	"Overlays",
	"Navigation & Layout",
}

type Config struct {
	Document DocumentConfig `mapstructure:"document" yaml:"document"`
	IDs      IDsConfig      `mapstructure:"ids" yaml:"ids"`
	Pages    PagesConfig    `mapstructure:"pages" yaml:"pages"`
	Passes   []PassConfig   `mapstructure:"passes" yaml:"passes"`
	Log      LogConfig      `mapstructure:"log" yaml:"log"`
}

type DocumentConfig struct {
	Path string `mapstructure:"path" yaml:"path"`
}

// IDsConfig sets where id counters start. Teams that share one document
// give each generator its own base (1000, 9000, ...) so their ids stay
// apart even before the document is seeded.
type IDsConfig struct {
	Base int `mapstructure:"base" yaml:"base"`
}

type PagesConfig struct {
	Names      []string `mapstructure:"names" yaml:"names"`
	Width      float64  `mapstructure:"width" yaml:"width"`
	Height     float64  `mapstructure:"height" yaml:"height"`
	BandHeight float64  `mapstructure:"band_height" yaml:"band_height"`
	Gap        float64  `mapstructure:"gap" yaml:"gap"`
	Padding    float64  `mapstructure:"padding" yaml:"padding"`
}

// PassConfig defines a generation pass beyond the built-in ones.
type PassConfig struct {
	Name     string            `mapstructure:"name" yaml:"name"`
	Requires []string          `mapstructure:"requires" yaml:"requires"`
	Sections []PlacementConfig `mapstructure:"sections" yaml:"sections"`
}

// PlacementConfig puts a section on a page. An empty page means the
// section's registered page.
type PlacementConfig struct {
	Section string `mapstructure:"section" yaml:"section"`
	Page    string `mapstructure:"page" yaml:"page,omitempty"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// SetDefaults registers every key with v so environment overrides apply
// even when no config file sets the key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("document.path", DefaultDocumentPath)
	v.SetDefault("ids.base", DefaultIDBase)
	v.SetDefault("pages.names", DefaultPageNames)
	v.SetDefault("pages.width", DefaultPageWidth)
	v.SetDefault("pages.height", DefaultPageHeight)
	v.SetDefault("pages.band_height", DefaultBandHeight)
	v.SetDefault("pages.gap", DefaultPageGap)
	v.SetDefault("pages.padding", DefaultPagePadding)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Document: DocumentConfig{Path: DefaultDocumentPath},
		IDs:      IDsConfig{Base: DefaultIDBase},
		Pages: PagesConfig{
			Names:      append([]string(nil), DefaultPageNames...),
			Width:      DefaultPageWidth,
			Height:     DefaultPageHeight,
			BandHeight: DefaultBandHeight,
			Gap:        DefaultPageGap,
			Padding:    DefaultPagePadding,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the configuration from the global viper instance.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads the configuration from v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.WrapConfig(err, errors.ErrCodeConfigInvalid, "decode configuration")
	}

	applyDefaults(&config)

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func applyDefaults(config *Config) {
	if config.Document.Path == "" {
		config.Document.Path = DefaultDocumentPath
	}
	if len(config.Pages.Names) == 0 {
		config.Pages.Names = append([]string(nil), DefaultPageNames...)
	}
	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Log.Format == "" {
		config.Log.Format = "text"
	}
}

// validateConfig reports every problem at once.
func validateConfig(config *Config) error {
	var vec errors.ValidationErrorCollection

	if err := validatePath(config.Document.Path); err != nil {
		vec.AddField("document.path", config.Document.Path, err.Error())
	}

	if config.IDs.Base < 0 {
		vec.AddField("ids.base", config.IDs.Base, "must not be negative",
			"use 1, or a namespace such as 9000 to keep this generator's ids apart")
	}

	validatePagesConfig(&config.Pages, &vec)
	validatePassesConfig(config.Passes, &vec)

	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		vec.AddField("log.level", config.Log.Level, err.Error(), "use debug, info, warn or error")
	}
	if config.Log.Format != "text" && config.Log.Format != "json" {
		vec.AddField("log.format", config.Log.Format, "must be text or json")
	}

	if vec.HasErrors() {
		return vec.ToPencraftError()
	}
	return nil
}

func validatePagesConfig(pages *PagesConfig, vec *errors.ValidationErrorCollection) {
	sizes := []struct {
		key   string
		value float64
	}{
		{"pages.width", pages.Width},
		{"pages.height", pages.Height},
		{"pages.band_height", pages.BandHeight},
	}
	for _, s := range sizes {
		if s.value <= 0 {
			vec.AddField(s.key, s.value, "must be positive")
		}
	}
	if pages.Gap < 0 {
		vec.AddField("pages.gap", pages.Gap, "must not be negative")
	}
	if pages.Padding < 0 {
		vec.AddField("pages.padding", pages.Padding, "must not be negative")
	}
	if pages.Height > 0 && pages.BandHeight > 0 && pages.BandHeight < pages.Height {
		vec.AddField("pages.band_height", pages.BandHeight,
			fmt.Sprintf("is smaller than the page height %g, so tiled pages would overlap", pages.Height))
	}

	seen := make(map[string]bool, len(pages.Names))
	for _, name := range pages.Names {
		if strings.TrimSpace(name) == "" {
			vec.AddField("pages.names", name, "page names must not be empty")
			continue
		}
		if seen[name] {
			vec.AddField("pages.names", name, "duplicate page name",
				"pages are located by exact name, so each must be unique")
		}
		seen[name] = true
	}
}

func validatePassesConfig(passes []PassConfig, vec *errors.ValidationErrorCollection) {
	seen := make(map[string]bool, len(passes))
	for i, p := range passes {
		field := fmt.Sprintf("passes[%d]", i)
		if p.Name == "" {
			vec.AddField(field+".name", p.Name, "pass name must not be empty")
		} else if seen[p.Name] {
			vec.AddField(field+".name", p.Name, "duplicate pass name")
		}
		seen[p.Name] = true

		if len(p.Sections) == 0 {
			vec.AddField(field+".sections", nil, "a pass needs at least one section")
		}
		for j, s := range p.Sections {
			if s.Section == "" {
				vec.AddField(fmt.Sprintf("%s.sections[%d].section", field, j), s.Section, "section must not be empty")
			}
		}
		for _, r := range p.Requires {
			if r == p.Name {
				vec.AddField(field+".requires", r, "a pass cannot require itself")
			}
		}
	}
}

// validatePath rejects paths that cannot name a document file.
func validatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty path")
	}

	if strings.ContainsAny(path, "\x00\n\r") {
		return fmt.Errorf("path contains control characters")
	}

	if strings.HasSuffix(path, "/") {
		return fmt.Errorf("path names a directory: %s", path)
	}

	return nil
}
