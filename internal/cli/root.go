// Package cli wires the four entry points of the notifier: the daily send,
// the local render preview, the weekly summary and the submission server.
package cli

import (
	"github.com/spf13/cobra"
)

// rootCmd is the root command for gymsplit-notifier.
var rootCmd = &cobra.Command{
	Use:     "gymsplit-notifier",
	Version: "dev",
	Short:   "Workout split rotation scheduler and email notifier",
	Long: `gymsplit-notifier sends each recipient a daily workout email chosen from
their rotation, records completions and skips submitted through signed links,
and mails a weekly activity summary.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(newSendCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newServeCmd())
}
