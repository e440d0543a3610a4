package main

import (
	"os"

	"github.com/spf13/cobra"

	"residconnect/internal/interfaces/cli/professional"
	"residconnect/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "residconnect",
		Short: "ResidConnect - residence management portal",
		Long:  `ResidConnect is the backend for the residence portal: tenant and professional accounts, maintenance tickets with automatic routing, and the shared message feed.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		professional.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
