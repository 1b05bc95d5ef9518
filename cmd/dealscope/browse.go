package main

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/dealscope/internal/app"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/tui"
	"github.com/Veraticus/dealscope/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [location]",
		Short: "Browse deals interactively",
		Long: `Open the interactive deal browser.

The location may be a JSON file, an http(s) URL serving the same JSON, or a
SQLite catalog written by 'dealscope fetch --db' or 'dealscope catalog import'.
Without an argument the configured source.location is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowse,
	}

	cmd.Flags().String("kind", "auto", "Source kind (auto, file, http, sqlite)")
	cmd.Flags().String("theme", "default", "Color theme (default, catppuccin-mocha)")
	cmd.Flags().Bool("no-featured", false, "Hide the featured carousel")
	cmd.Flags().Bool("no-popular", false, "Hide the popular games table")
	cmd.Flags().Duration("load-ceiling", app.DefaultLoadCeiling, "Give up loading after this long")

	_ = viper.BindPFlag("source.kind", cmd.Flags().Lookup("kind"))
	_ = viper.BindPFlag("browse.theme", cmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("browse.load_ceiling", cmd.Flags().Lookup("load-ceiling"))

	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noFeatured, _ := cmd.Flags().GetBool("no-featured"); noFeatured {
		cfg.Browse.ShowFeatured = false
	}
	if noPopular, _ := cmd.Flags().GetBool("no-popular"); noPopular {
		cfg.Browse.ShowPopular = false
	}

	src, closeSource, err := openSource(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer closeSource()

	// The terminal belongs to the TUI; logs go to a file until it exits.
	logFile, err := common.OpenLogFile(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer func() {
		_ = logFile.Close()
		_ = common.SetupLogger(cfg.Logging.Level, cfg.Logging.Format)
	}()
	if err := common.SetupLoggerTo(logFile, cfg.Logging.Level, cfg.Logging.Format); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Info("starting browser", "source", src.Name())
	final, err := tui.Run(ctx, src, cfg.AppConfig(),
		tui.WithTheme(themes.GetTheme(cfg.Browse.Theme)),
		tui.WithInteractionDelay(cfg.Browse.InteractionDelay),
		tui.WithLogger(slog.Default()),
	)
	if err != nil {
		return err
	}

	ctrl := final.Controller()
	if ctrl == nil {
		return nil
	}
	if errs := ctrl.SetupErrors(); len(errs) > 0 {
		common.LogDebug("render steps failed during session", common.Fields{"count": len(errs)})
	}
	if loadErr := ctrl.LoadError(); loadErr != nil {
		common.LogError(loadErr, "browse ended without a catalog", common.Fields{"kind": loadErr.Kind})
		return common.NewUserError("could not load deals", loadErr)
	}
	return nil
}
