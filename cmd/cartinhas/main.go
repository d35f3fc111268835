package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Migrations register themselves through init().
	_ "github.com/shashiranjanraj/cartinhas/database/migrations"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cartinhas",
	Short: "Cartinhas trading card storefront",
	Long:  "Cartinhas is a trading card storefront with a PIX checkout and an admin panel.",
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(migrateRollbackCmd)
	rootCmd.AddCommand(migrateStatusCmd)
	rootCmd.AddCommand(seedCmd)
}
