package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/pokepack/pokepack-tracker/internal/api/client"
)

func newClient() *apiclient.Client {
	return apiclient.New(apiURL)
}

func packsCommand() *cobra.Command {
	var jsonOutput bool

	packsCmd := &cobra.Command{
		Use:   "packs",
		Short: "Query the pack catalog",
	}
	packsCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	var (
		listSet    string
		listSeries string
		listType   string
		listStatus string
		listQuery  string
	)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List packs in the current snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListPacks(context.Background(), &apiclient.ListPacksParams{
				Set:         listSet,
				Series:      listSeries,
				ProductType: listType,
				PriceStatus: listStatus,
				Query:       listQuery,
			})
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(resp)
			}

			if len(resp.Packs) == 0 {
				fmt.Println("No packs found.")
				return nil
			}

			if !resp.IsRealData {
				fmt.Println("Note: prices are synthetic fallback data.")
			}
			fmt.Printf("Showing %d packs\n\n", resp.Total)
			return printPacksTable(resp.Packs)
		},
	}
	listCmd.Flags().StringVar(&listSet, "set", "", "set ID filter")
	listCmd.Flags().StringVar(&listSeries, "series", "", "series filter")
	listCmd.Flags().
		StringVar(&listType, "type", "", "product type filter (booster-box, etb, booster-bundle, ...)")
	listCmd.Flags().
		StringVar(&listStatus, "status", "", "price status filter (great-deal, below-reference, at-reference, above-reference, overpriced)")
	listCmd.Flags().StringVar(&listQuery, "q", "", "name substring filter")

	showCmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show pack details",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetPack(context.Background(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(p)
			}

			return printPackDetail(p)
		},
	}

	setsCmd := &cobra.Command{
		Use:   "sets",
		Short: "List sets in the current snapshot",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListSets(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(resp)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("ID\tNAME\tSERIES\tRELEASED\n")
			for i := range resp.Sets {
				s := &resp.Sets[i]
				tw.writef("%s\t%s\t%s\t%s\n", s.ID, s.Name, s.Series, s.ReleaseDate)
			}
			return tw.finish()
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog summary",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.GetStats(context.Background())
			if err != nil {
				return err
			}

			if jsonOutput {
				return outputJSON(stats)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Packs:\t%d\n", stats.TotalPacks)
			tw.writef("Priced:\t%d\n", stats.WithPrices)
			tw.writef("Average:\t$%.2f\n", stats.AveragePrice)
			tw.writef("Below Reference:\t%d\n", stats.BelowReference)
			tw.writef("Great Deals:\t%d\n", stats.GreatDeals)
			tw.writef("Live Data:\t%v\n", stats.IsRealData)
			if stats.LastRefreshed != nil {
				tw.writef("Refreshed:\t%s\n", stats.LastRefreshed.Format("2006-01-02 15:04:05"))
			}
			return tw.finish()
		},
	}

	packsCmd.AddCommand(listCmd, showCmd, setsCmd, statsCmd)

	return packsCmd
}

func init() {
	rootCmd.AddCommand(packsCommand())
}
