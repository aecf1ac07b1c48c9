package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/pencraft/internal/errors"
)

func loadYAML(t *testing.T, content string) (*Config, error) {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(content)))
	return LoadFrom(v)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New())
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "design/components.pen", cfg.Document.Path)
	assert.Equal(t, 1, cfg.IDs.Base)
	assert.Equal(t, float64(2100), cfg.Pages.BandHeight)
	assert.Len(t, cfg.Pages.Names, 7)
	assert.Empty(t, cfg.Passes)
}

func TestLoadFromFile(t *testing.T) {
	cfg, err := loadYAML(t, `
document:
  path: out/library.pen
ids:
  base: 9000
pages:
  names: [Typography, Forms]
  band_height: 2400
passes:
  - name: charts
    requires: [components-2]
    sections:
      - section: card
        page: Data Display
      - section: progress
log:
  level: debug
  format: json
`)
	require.NoError(t, err)

	assert.Equal(t, "out/library.pen", cfg.Document.Path)
	assert.Equal(t, 9000, cfg.IDs.Base)
	assert.Equal(t, []string{"Typography", "Forms"}, cfg.Pages.Names)
	assert.Equal(t, float64(2400), cfg.Pages.BandHeight)
	assert.Equal(t, float64(DefaultPageWidth), cfg.Pages.Width)
	require.Len(t, cfg.Passes, 1)
	assert.Equal(t, PassConfig{
		Name:     "charts",
		Requires: []string{"components-2"},
		Sections: []PlacementConfig{{Section: "card", Page: "Data Display"}, {Section: "progress"}},
	}, cfg.Passes[0])
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
}

func TestLoadWithEnvironment(t *testing.T) {
	t.Setenv("PENCRAFT_IDS_BASE", "5000")
	t.Setenv("PENCRAFT_DOCUMENT_PATH", "env.pen")

	v := viper.New()
	v.SetEnvPrefix("PENCRAFT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg, err := LoadFrom(v)
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.IDs.Base)
	assert.Equal(t, "env.pen", cfg.Document.Path)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		yaml   string
		fields []string
	}{
		{
			name:   "negative base",
			yaml:   "ids:\n  base: -4\n",
			fields: []string{"ids.base"},
		},
		{
			name:   "band smaller than page",
			yaml:   "pages:\n  height: 3000\n  band_height: 2000\n",
			fields: []string{"pages.band_height"},
		},
		{
			name:   "duplicate page names",
			yaml:   "pages:\n  names: [Forms, Forms]\n",
			fields: []string{"pages.names"},
		},
		{
			name:   "non-positive width",
			yaml:   "pages:\n  width: 0\n",
			fields: []string{"pages.width"},
		},
		{
			name:   "bad pass",
			yaml:   "passes:\n  - name: x\n    requires: [x]\n",
			fields: []string{"passes[0].sections", "passes[0].requires"},
		},
		{
			name:   "bad log level",
			yaml:   "log:\n  level: loud\n  format: xml\n",
			fields: []string{"log.level", "log.format"},
		},
		{
			name:   "directory path",
			yaml:   "document:\n  path: design/\n",
			fields: []string{"document.path"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadYAML(t, tt.yaml)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Equal(t, errors.ErrCodeConfigInvalid, errors.Code(err))
			for _, f := range tt.fields {
				assert.Contains(t, err.Error(), f)
			}
		})
	}
}

func TestValidateConfigWithDetails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.pen")

	cfg := Default()
	cfg.Document.Path = path
	cfg.Pages.BandHeight = 2010

	result := ValidateConfigWithDetails(cfg)
	assert.True(t, result.Valid)
	var fields []string
	for _, w := range result.Warnings {
		fields = append(fields, w.Field)
	}
	assert.ElementsMatch(t, []string{"ids.base", "pages.band_height", "document.path"}, fields)

	require.NoError(t, os.WriteFile(path, []byte("[]\n"), 0o644))
	cfg.IDs.Base = 9000
	cfg.Pages.BandHeight = 2100
	result = ValidateConfigWithDetails(cfg)
	assert.False(t, result.HasWarnings())

	cfg.Pages.Width = -1
	result = ValidateConfigWithDetails(cfg)
	assert.False(t, result.Valid)
	assert.Contains(t, result.String(), "Validation Errors")
}
