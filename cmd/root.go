package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/appointease/appointease_backend/cmd/http"
	systemcmd "github.com/appointease/appointease_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "appointease",
	Short: "AppointEase appointment scheduling backend for service providers.",
	Long: `AppointEase is the backend for an appointment scheduling dashboard.
It manages providers, their clients and services, business hours, appointments,
and the notification pipeline (in-app and e-mail) that keeps both sides informed.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
