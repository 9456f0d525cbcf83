// Package main provides the CLI entry point for tmplinspect.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tmplinspect/internal/config"
	"tmplinspect/internal/logger"
	"tmplinspect/pkg/inspect"
	"tmplinspect/pkg/inspect/output"
)

var (
	configPath string
	sheetName  string
	headerRow  int
	outputPath string
	asJSON     bool
	showSheets bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tmplinspect [template.xlsx]",
		Short: "Preview the header row and a sample row of a template workbook",
		Long: `tmplinspect opens a template spreadsheet, reads the header row and the
first data row of the active sheet, and prints them as formatted JSON.`,
		Args:          cobra.MaximumNArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "configs/config.toml", "Config file path")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Sheet to inspect (default: active sheet)")
	rootCmd.Flags().IntVar(&headerRow, "header-row", 0, "Header row number (default: 1)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as a single JSON document")
	rootCmd.Flags().BoolVar(&showSheets, "sheets", false, "Print the workbook sheet overview instead of the report")

	// A broken or missing template is an answer, not a crash: report the
	// failure as one line and exit cleanly.
	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	path := cfg.Inspect.TemplateFile
	if len(args) > 0 {
		path = args[0]
	}

	opts := inspect.Options{
		Sheet:     cfg.Inspect.Sheet,
		HeaderRow: cfg.Inspect.HeaderRow,
	}
	if sheetName != "" {
		opts.Sheet = sheetName
	}
	if headerRow > 0 {
		opts.HeaderRow = headerRow
	}

	logger.Info("Starting inspection", "file", path, "sheet", opts.Sheet)

	ins, err := inspect.New(path, opts)
	if err != nil {
		logger.Error("Failed to open workbook", "file", path, "error", err)
		return err
	}
	defer ins.Close()

	if showSheets {
		return runSheets(ins, cfg)
	}

	report, err := ins.Inspect()
	if err != nil {
		logger.Error("Inspection failed", "file", path, "error", err)
		return err
	}

	var rendered string
	if asJSON {
		data, err := output.ToJSON(report, true)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		rendered = string(data) + "\n"
	} else {
		rendered, err = output.RenderReport(report)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
	}

	logger.Info("Inspection completed",
		"file", path,
		"sheet", report.SheetName,
		"headers", len(report.Headers),
		"sample_fields", report.Sample.Len())

	return writeOut(rendered, cfg)
}

func runSheets(ins *inspect.Inspector, cfg *config.Config) error {
	sheets, err := ins.Sheets()
	if err != nil {
		logger.Error("Sheet overview failed", "error", err)
		return err
	}
	data, err := output.ToJSON(sheets, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOut("SHEETS:\n"+string(data)+"\n", cfg)
}

func writeOut(text string, cfg *config.Config) error {
	target := outputPath
	if target == "" {
		target = cfg.Output.ReportFile
	}
	if target == "" {
		fmt.Print(text)
		return nil
	}
	if err := os.WriteFile(target, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("Report written", "path", target)
	return nil
}
