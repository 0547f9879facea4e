// Package main provides the entry point for the Itinerary Studio server and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "itinerary_studio",
	Short: "Itinerary Studio travel document service",
	Long:  "Itinerary Studio turns reference documents and trip details into a structured travel itinerary, rendered as an HTML page and a matching PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
