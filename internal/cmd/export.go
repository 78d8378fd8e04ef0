package cmd

import (
	"context"
	"fmt"

	"glimpse/internal/services"
)

// ExportCmd exports collected rows to CSV files
type ExportCmd struct {
	Out         string `help:"Output path for the responses CSV" default:"responses.csv" type:"path"`
	ProgressOut string `help:"Output path for the progress CSV (empty to skip)" default:"progress.csv" type:"path"`
	StudyID     string `help:"Only export rows for this study (empty exports everything)"`
}

// Run executes the export command
func (e *ExportCmd) Run(cli *CLI) error {
	sink, err := cli.Container.Sink()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	exporter := services.NewExportService(sink)
	result, err := exporter.ExportCSV(context.Background(), e.StudyID, e.Out, e.ProgressOut)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	fmt.Printf("Exported %d responses to %s\n", result.ResponseRows, e.Out)
	if e.ProgressOut != "" {
		fmt.Printf("Exported %d progress rows to %s\n", result.ProgressRows, e.ProgressOut)
	}
	return nil
}
