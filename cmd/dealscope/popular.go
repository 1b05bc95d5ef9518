package main

import (
	"fmt"

	"github.com/Veraticus/dealscope/internal/catalog"
	"github.com/Veraticus/dealscope/internal/cli"
	"github.com/Veraticus/dealscope/internal/common"
	"github.com/Veraticus/dealscope/internal/model"
	"github.com/Veraticus/dealscope/internal/source"
	"github.com/spf13/cobra"
)

func popularCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "popular [location]",
		Short: "Print the popular games currently on sale",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPopular,
	}
	cmd.Flags().IntP("limit", "n", 0, "Show at most this many games (0 shows all)")
	cmd.Flags().String("sort", "", "Order by title, platform, price, discount or store instead of the ranking")
	cmd.Flags().Bool("desc", false, "Reverse the --sort order")
	return cmd
}

func runPopular(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, closeSource, err := openSource(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer closeSource()

	deals, err := src.Load(ctx)
	if err != nil {
		return source.Normalize(src.Name(), err)
	}

	popular := catalog.SelectPopular(deals, cfg.Curation())
	if key, _ := cmd.Flags().GetString("sort"); key != "" {
		sortKey, err := model.ParseSortKey(key)
		if err != nil {
			return common.NewUserError("invalid --sort", err)
		}
		spec := model.SortSpec{Key: sortKey, Direction: model.Ascending}
		if desc, _ := cmd.Flags().GetBool("desc"); desc {
			spec.Direction = model.Descending
		}
		popular = catalog.Sort(popular, spec)
	}
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && limit < len(popular) {
		popular = popular[:limit]
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderDealList(fmt.Sprintf("Popular games (%d)", len(popular)), popular))
	return nil
}
