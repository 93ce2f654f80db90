package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func alertsCommand() *cobra.Command {
	var jsonOutput bool

	alertsCmd := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage per-pack price alerts. An alert fires when a pack's current\n" +
			"price drops to or below the target price during a refresh cycle.",
	}
	alertsCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all price alerts",
		Example: `  pokepack-tracker alerts list
  pokepack-tracker alerts list --json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListAlerts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts configured.")
				return nil
			}
			return printAlertsTable(alerts)
		},
	}

	var (
		setTarget float64
		setOnce   bool
	)

	setCmd := &cobra.Command{
		Use:   "set [packId]",
		Short: "Create or replace the alert for a pack",
		Example: `  pokepack-tracker alerts set tcg-23821-610188 --target 129.99
  pokepack-tracker alerts set tcg-23821-610188 --target 100 --once=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if setTarget <= 0 {
				return fmt.Errorf("--target must be greater than zero")
			}
			c := newClient()
			alert, err := c.SetAlert(context.Background(), args[0], setTarget, setOnce)
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(alert)
			}
			fmt.Printf("Alert set: %s at $%.2f\n", alert.PackID, alert.TargetPrice)
			return nil
		},
	}
	setCmd.Flags().Float64Var(&setTarget, "target", 0, "target price in USD")
	setCmd.Flags().
		BoolVar(&setOnce, "once", true, "notify once, then stay quiet until the alert is set again")

	removeCmd := &cobra.Command{
		Use:     "remove [packId]",
		Short:   "Remove the alert for a pack",
		Example: `  pokepack-tracker alerts remove tcg-23821-610188`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteAlert(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Alert for %s removed.\n", args[0])
			return nil
		},
	}

	alertsCmd.AddCommand(listCmd, setCmd, removeCmd)

	return alertsCmd
}

func init() {
	rootCmd.AddCommand(alertsCommand())
}
