package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/hubdispo/hubdispo/internal/export"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/spf13/cobra"
)

var (
	format        string
	outPath       string
	shipmentCount int
	groupCount    int
	alertCount    int
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a fleet dataset and export it",
	Long: `Generate shipments, consolidation groups and alerts and write them out.

Available formats:
- json: indented JSON document (stdout or --out file)
- yaml: YAML document (stdout or --out file)
- parquet: shipments.parquet, consolidations.parquet and alerts.parquet in the --out directory`,
	RunE: generateDataset,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&format, "format", export.FormatJSON, "Output format (json|yaml|parquet)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "Output file, or directory for parquet (default stdout / current directory)")
	generateCmd.Flags().IntVar(&shipmentCount, "shipments", 0, "Number of shipments (default generator.counts.shipments)")
	generateCmd.Flags().IntVar(&groupCount, "groups", 0, "Number of consolidation groups (default generator.counts.groups)")
	generateCmd.Flags().IntVar(&alertCount, "alerts", 0, "Number of alerts, at most 12 (default generator.counts.alerts)")
}

func generateDataset(cmd *cobra.Command, args []string) error {
	// progress goes to stderr so stdout stays a clean document
	progress := cmd.ErrOrStderr()

	f, err := export.ParseFormat(format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	counts := cfg.Generator.Counts
	flags := cmd.Flags()
	if flags.Changed("shipments") {
		counts.Shipments = shipmentCount
	}
	if flags.Changed("groups") {
		counts.Groups = groupCount
	}
	if flags.Changed("alerts") {
		counts.Alerts = alertCount
	}

	fmt.Fprintf(progress, "🎲 Generating %d shipments, %d groups, %d alerts...\n",
		counts.Shipments, counts.Groups, min(max(counts.Alerts, 0), synth.AlertCatalogSize))
	ds, err := buildDataset(cfg, counts)
	if err != nil {
		return err
	}

	if f == export.FormatParquet {
		dir := outPath
		if dir == "" {
			dir = "."
		}
		fmt.Fprintf(progress, "🗂️  Writing parquet files to %s...\n", dir)
		if err := export.WriteParquet(dir, ds); err != nil {
			return fmt.Errorf("failed to write parquet: %w", err)
		}
		fmt.Fprintln(progress, "✅ Dataset exported")
		return nil
	}

	var w io.Writer = cmd.OutOrStdout()
	if outPath != "" {
		file, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer file.Close()
		w = file
	}

	if err := export.Write(w, ds, f); err != nil {
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if outPath != "" {
		fmt.Fprintf(progress, "✅ Dataset written to %s\n", outPath)
	}
	return nil
}
