package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func webhookCommand() *cobra.Command {
	var jsonOutput bool

	webhookCmd := &cobra.Command{
		Use:   "webhook",
		Short: "Manage the Discord notification webhook",
	}
	webhookCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	showCmd := &cobra.Command{
		Use:     "show",
		Short:   "Show the current webhook configuration",
		Example: `  pokepack-tracker webhook show`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			settings, err := c.GetWebhook(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(settings)
			}
			if !settings.Configured {
				fmt.Println("No webhook configured.")
				return nil
			}
			fmt.Printf("Webhook: %s\n", settings.WebhookURL)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:     "set [url]",
		Short:   "Set the webhook URL",
		Example: `  pokepack-tracker webhook set https://discord.com/api/webhooks/123/abc`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			settings, err := c.SetWebhook(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(settings)
			}
			fmt.Println("Webhook updated.")
			return nil
		},
	}

	testCmd := &cobra.Command{
		Use:     "test",
		Short:   "Send a test message through the configured webhook",
		Example: `  pokepack-tracker webhook test`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			res, err := c.TestWebhook(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput {
				return outputJSON(res)
			}
			if !res.Delivered {
				return fmt.Errorf("webhook test failed: %s", res.Reason)
			}
			fmt.Println("Test message delivered.")
			return nil
		},
	}

	webhookCmd.AddCommand(showCmd, setCmd, testCmd)

	return webhookCmd
}

func init() {
	rootCmd.AddCommand(webhookCommand())
}
