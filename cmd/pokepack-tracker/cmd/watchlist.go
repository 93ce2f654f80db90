package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func watchlistCommand() *cobra.Command {
	var jsonOutput bool

	watchlistCmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the saved pack watchlist",
	}
	watchlistCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List watchlist entries",
		Example: `  pokepack-tracker watchlist list
  pokepack-tracker watchlist list --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			items, err := c.ListWatchlist(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(items)
			}
			if len(items) == 0 {
				fmt.Println("Watchlist is empty.")
				return nil
			}
			return printWatchlistTable(items)
		},
	}

	addCmd := &cobra.Command{
		Use:     "add [packId]",
		Short:   "Add a pack to the watchlist",
		Example: `  pokepack-tracker watchlist add tcg-23821-610188`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			item, err := c.AddToWatchlist(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(item)
			}
			fmt.Printf("Added to watchlist: %s (%s)\n", item.Name, item.ID)
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:     "remove [packId]",
		Short:   "Remove a pack from the watchlist",
		Example: `  pokepack-tracker watchlist remove tcg-23821-610188`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.RemoveFromWatchlist(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed %s from watchlist.\n", args[0])
			return nil
		},
	}

	clearCmd := &cobra.Command{
		Use:     "clear",
		Short:   "Remove every entry from the watchlist",
		Example: `  pokepack-tracker watchlist clear`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.ClearWatchlist(context.Background()); err != nil {
				return err
			}
			fmt.Println("Watchlist cleared.")
			return nil
		},
	}

	watchlistCmd.AddCommand(listCmd, addCmd, removeCmd, clearCmd)

	return watchlistCmd
}

func init() {
	rootCmd.AddCommand(watchlistCommand())
}
