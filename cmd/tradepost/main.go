package main

import (
	"os"

	"github.com/spf13/cobra"

	"tradepost/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tradepost",
		Short: "Tradepost - P2P marketplace backend",
		Long:  `Tradepost is the marketplace backend serving the order lifecycle, realtime chat, and notification delivery.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
