package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mariana/itinerary-studio/internal/config"
	"github.com/mariana/itinerary-studio/internal/logging"
	"github.com/mariana/itinerary-studio/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the HTTP server that serves the itinerary form, the generated HTML view, and the PDF download.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	logger := logging.New(cfg.LogFile, cfg.Production)
	defer func() { _ = logger.Sync() }()

	return server.New(cfg, logger).Start()
}
