package cmd

import (
	"context"
	"fmt"

	"github.com/hubdispo/hubdispo/internal/database"
	"github.com/spf13/cobra"
)

var (
	dropFirst bool
	skipData  bool
)

var setupCmd = &cobra.Command{
	Use:   "setup-db",
	Short: "Create the fleet tables and load a generated dataset",
	Long: `Creates the hd_shipments, hd_consolidation_groups and hd_alerts tables
in the configured MySQL/TiDB or PostgreSQL database and fills them with
a freshly generated dataset.

Existing rows are replaced; pass --drop-first to recreate the tables.`,
	RunE: setupDatabase,
}

func init() {
	rootCmd.AddCommand(setupCmd)

	setupCmd.Flags().BoolVar(&dropFirst, "drop-first", false, "Drop existing fleet tables before creating")
	setupCmd.Flags().BoolVar(&skipData, "schema-only", false, "Create schema only, skip the dataset")
}

func setupDatabase(cmd *cobra.Command, args []string) error {
	fmt.Println("🔧 Setting up database...")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	db, err := database.NewConnection(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Drop tables if requested
	if dropFirst {
		fmt.Println("🗑️  Dropping existing fleet tables...")
		if err := db.DropSchema(ctx); err != nil {
			return fmt.Errorf("failed to drop schema: %w", err)
		}
	}

	fmt.Printf("📋 Creating %s schema...\n", db.Driver())
	if err := db.SetupSchema(ctx); err != nil {
		return fmt.Errorf("failed to setup schema: %w", err)
	}

	if !skipData {
		fmt.Println("🎲 Generating fleet dataset...")
		ds, err := buildDataset(cfg, cfg.Generator.Counts)
		if err != nil {
			return err
		}

		fmt.Println("📊 Loading dataset...")
		result, err := db.SeedDataset(ctx, ds)
		if err != nil {
			return fmt.Errorf("failed to seed dataset: %w", err)
		}
		fmt.Printf("   📦 %d shipments\n", result.Shipments)
		fmt.Printf("   🚚 %d consolidation groups\n", result.Consolidations)
		fmt.Printf("   🔔 %d alerts\n", result.Alerts)
	}

	fmt.Println("✅ Database setup complete!")
	return nil
}
