// Command invoiced serves the invoice tracker as a standalone JSON REST API.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "invoiced",
	Short:   "Invoice and payment tracking server",
	Long:    "invoiced serves the invoicing engine as a JSON REST API backed by an in-memory store.",
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Use 'invoiced serve' to start the server, or --help for options.")
	},
}

func main() {
	// Load environment variables from .env if present.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
