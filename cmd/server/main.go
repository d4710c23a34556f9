// Package main is the entry point for the compendium gRPC server and its
// command-line tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-compendium/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "rpg-compendium",
	Short: "D&D compendium gRPC server",
	Long: `rpg-compendium serves a D&D 5e compendium of monsters and magic items
over gRPC, along with a dice rolling service.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
