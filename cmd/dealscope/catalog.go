package main

import (
	"errors"
	"fmt"

	"github.com/Veraticus/dealscope/internal/cli"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/config"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/Veraticus/dealscope/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the local SQLite deal catalog",
	}

	cmd.PersistentFlags().String("db", "", "Catalog database path (default: $HOME/.config/dealscope/catalog.db)")
	_ = viper.BindPFlag("catalog.db", cmd.PersistentFlags().Lookup("db"))

	cmd.AddCommand(&cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog with the deals in a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE:  runCatalogImport,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show when the catalog was last replaced",
		Args:  cobra.NoArgs,
		RunE:  runCatalogInfo,
	})

	return cmd
}

func openCatalog(cmd *cobra.Command) (*storage.SQLiteStorage, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(cfg.Catalog.DB))
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	if err := store.Migrate(cmd.Context()); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate catalog: %w", err)
	}
	return store, nil
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := config.ExpandPath(args[0])

	deals, err := source.NewFileSource(path).Load(ctx)
	if err != nil {
		return source.Normalize(path, err)
	}

	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.ReplaceDeals(ctx, deals, path); err != nil {
		return fmt.Errorf("failed to import deals: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Imported %d deals into %s", len(deals), store.Path())))
	return nil
}

func runCatalogInfo(cmd *cobra.Command, _ []string) error {
	store, err := openCatalog(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	out := cmd.OutOrStdout()
	run, err := store.LastFetchRun(cmd.Context())
	if errors.Is(err, common.ErrNotFound) {
		fmt.Fprintln(out, cli.FormatInfo(fmt.Sprintf("Catalog %s is empty. Run 'dealscope fetch --db' to fill it.", store.Path())))
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}

	content := fmt.Sprintf("Path:    %s\nDeals:   %d\nOrigin:  %s\nUpdated: %s",
		store.Path(), run.DealCount, run.Origin, run.FetchedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(out, cli.RenderBox(cli.FolderIcon+" Catalog", content))
	return nil
}
