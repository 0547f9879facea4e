package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/mariana/itinerary-studio/internal/observability"
	"github.com/mariana/itinerary-studio/internal/pipeline"
	"github.com/mariana/itinerary-studio/internal/rendering"
	"github.com/mariana/itinerary-studio/internal/types"
)

var (
	genClient      string
	genDestination string
	genStart       string
	genEnd         string
	genStyle       string
	genRequests    string
	genOutDir      string
)

var generateCmd = &cobra.Command{
	Use:   "generate [reference files...]",
	Short: "Generate an itinerary once from local files",
	Long:  `Run the generation pipeline against local reference files and write both the HTML and the PDF output to the output directory.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&genClient, "client", "", "Client name (required)")
	generateCmd.Flags().StringVar(&genDestination, "destination", "", "Primary destination")
	generateCmd.Flags().StringVar(&genStart, "start", "", "Start date, AAAA-MM-DD (required)")
	generateCmd.Flags().StringVar(&genEnd, "end", "", "End date, AAAA-MM-DD (required)")
	generateCmd.Flags().StringVar(&genStyle, "style", "premium", "Travel style")
	generateCmd.Flags().StringVar(&genRequests, "requests", "", "Special requests")
	generateCmd.Flags().StringVar(&genOutDir, "out", ".", "Output directory")
	_ = generateCmd.MarkFlagRequired("client")
	_ = generateCmd.MarkFlagRequired("start")
	_ = generateCmd.MarkFlagRequired("end")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	start, err := time.Parse("2006-01-02", genStart)
	if err != nil {
		return fmt.Errorf("invalid --start date %q: %w", genStart, err)
	}
	end, err := time.Parse("2006-01-02", genEnd)
	if err != nil {
		return fmt.Errorf("invalid --end date %q: %w", genEnd, err)
	}

	meta := types.TripMetadata{
		ClientName:      genClient,
		Destination:     genDestination,
		StartDate:       start,
		EndDate:         end,
		TravelStyle:     genStyle,
		SpecialRequests: genRequests,
	}

	files := make([]types.ReferenceFile, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read reference file %s: %w", path, err)
		}
		files = append(files, types.ReferenceFile{
			Filename: filepath.Base(path),
			Data:     data,
		})
	}

	doc, err := pipeline.Generate(cmd.Context(), meta, files, pipeline.Options{})
	if err != nil {
		return err
	}

	page, err := rendering.RenderHTML(doc)
	if err != nil {
		return err
	}
	pdfBytes, err := rendering.RenderPDF(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(genOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	htmlPath := filepath.Join(genOutDir, "itinerario.html")
	pdfPath := filepath.Join(genOutDir, "itinerario.pdf")
	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write HTML output: %w", err)
	}
	if err := os.WriteFile(pdfPath, pdfBytes, 0644); err != nil {
		return fmt.Errorf("failed to write PDF output: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintItinerary(doc)
	fmt.Printf("  %s\n  %s\n", htmlPath, pdfPath)
	return nil
}
