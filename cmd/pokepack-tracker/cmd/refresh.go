package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pokepack/pokepack-tracker/internal/config"
	"github.com/pokepack/pokepack-tracker/pkg/logger"
)

func refreshCommand() *cobra.Command {
	var local bool

	refreshCmd := &cobra.Command{
		Use:   "refresh",
		Short: "Trigger a catalog refresh and print a summary",
		Long: "Ask a running server to rebuild its catalog snapshot, or with --local\n" +
			"run a one-shot refresh in-process without a server.",
		Example: `  pokepack-tracker refresh
  pokepack-tracker refresh --local --config config.yaml`,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			if local {
				return runLocalRefresh(cobraCmd)
			}
			return runRemoteRefresh()
		},
	}
	refreshCmd.Flags().
		BoolVar(&local, "local", false, "refresh in-process instead of calling the API")

	return refreshCmd
}

func init() {
	rootCmd.AddCommand(refreshCommand())
}

func runRemoteRefresh() error {
	c := newClient()
	ctx := context.Background()

	if err := c.Refresh(ctx); err != nil {
		return err
	}

	stats, err := c.GetStats(ctx)
	if err != nil {
		return err
	}

	printRefreshSummary(stats.TotalPacks, stats.WithPrices, stats.AveragePrice,
		stats.GreatDeals, stats.IsRealData)
	return nil
}

func runLocalRefresh(cobraCmd *cobra.Command) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx := cobraCmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.close()

	if err := a.engine.Refresh(ctx); err != nil {
		return fmt.Errorf("refreshing catalog: %w", err)
	}

	stats := a.engine.Stats()
	printRefreshSummary(stats.TotalPacks, stats.WithPrices, stats.AveragePrice,
		stats.GreatDeals, stats.IsRealData)
	return nil
}

func printRefreshSummary(total, priced int, avg float64, deals int, real bool) {
	fmt.Printf("Refreshed %d packs.\n", total)
	if !real {
		fmt.Println("Source unavailable; serving generated fallback prices.")
	}
	fmt.Printf("Priced: %d  Average: $%.2f  Great deals: %d\n", priced, avg, deals)
}
