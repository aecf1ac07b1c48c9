package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/pencraft/internal/errors"
	"github.com/conneroisu/pencraft/internal/services"
	"github.com/conneroisu/pencraft/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Re-validate the document whenever it changes",
	Long: `Watch the document and validate it after every save, printing the same
report as validate. Useful while editing the document in the design tool.

Examples:
  pencraft watch
  pencraft watch --bands --delay 1s`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

var (
	watchBands bool
	watchDelay time.Duration
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchBands, "bands", false, "Also warn about band overflow")
	watchCmd.Flags().DurationVar(&watchDelay, "delay", watcher.DefaultDelay, "Quiet period before re-validating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	fileWatcher, err := watcher.NewFileWatcher(watchDelay, a.logger)
	if err != nil {
		return err
	}
	defer fileWatcher.Stop()

	path := a.service.Store().Path()
	if err := fileWatcher.WatchFile(path); err != nil {
		return err
	}

	check := watchCheck(a, cmd.OutOrStdout(), watchBands)
	fileWatcher.AddHandler(func(ctx context.Context, events []watcher.ChangeEvent) error {
		for _, e := range events {
			a.logger.Info(ctx, "Document changed", "path", e.Path, "event", e.Type.String())
			if e.Type == watcher.EventTypeDeleted {
				return nil
			}
		}
		check(ctx)
		return nil
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.service.Store().Exists() {
		check(ctx)
	}

	a.logger.Info(ctx, "Watching document", "path", path, "delay", watchDelay)
	fileWatcher.Start(ctx)
	<-ctx.Done()
	return nil
}

// watchCheck returns the validation run after each change. A failure is
// logged by its error type and watching goes on.
func watchCheck(a *app, out io.Writer, bands bool) func(ctx context.Context) {
	handler := errors.NewErrorHandler(a.logger)
	return func(ctx context.Context) {
		report, err := a.service.Check(ctx, services.CheckOptions{Bands: bands})
		if err != nil {
			handler.Handle(ctx, err)
			return
		}
		printReport(out, report)
	}
}
