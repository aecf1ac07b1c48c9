package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/config"
	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/logging"
	"github.com/conneroisu/pencraft/internal/passes"
	"github.com/conneroisu/pencraft/internal/registry"
	"github.com/conneroisu/pencraft/internal/sections"
	"github.com/conneroisu/pencraft/internal/services"
	"github.com/conneroisu/pencraft/internal/store"
)

// app bundles what every document command needs.
type app struct {
	config   *config.Config
	logger   logging.Logger
	sections *registry.SectionRegistry
	passes   *passes.Catalog
	service  *services.DocumentService
}

// loadApp reads the configuration and wires the document service. Logs go
// to the command's error stream.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}

	reg := sections.Builtin()
	catalog, err := passes.Load(cfg.Passes)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(reg); err != nil {
		return nil, err
	}

	return &app{
		config:   cfg,
		logger:   logger,
		sections: reg,
		passes:   catalog,
		service:  services.NewDocumentService(cfg, reg, catalog, logger),
	}, nil
}

func newLogger(cfg config.LogConfig, out io.Writer) (logging.Logger, error) {
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(&logging.LoggerConfig{
		Level:     level,
		Format:    cfg.Format,
		Output:    out,
		Component: "pencraft",
	}), nil
}

// explain attaches suggestions drawn from the built-in sections, passes and
// whatever pages the configured document holds.
func explain(err error) string {
	ctx := &errors.SuggestionContext{
		Sections: sections.Builtin().Keys(),
		Passes:   passes.Builtin().Names(),
	}
	if cfg, cerr := config.Load(); cerr == nil {
		ctx.DocumentPath = cfg.Document.Path
		if data, rerr := os.ReadFile(cfg.Document.Path); rerr == nil {
			if summary, ierr := store.Inspect(data); ierr == nil {
				for _, p := range summary.Pages {
					ctx.Pages = append(ctx.Pages, p.Name)
				}
			}
		}
	}
	return errors.FormatErrorWithSuggestions(errors.Enhance(err, ctx))
}
