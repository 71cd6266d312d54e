package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hubdispo/hubdispo/internal/account"
	"github.com/hubdispo/hubdispo/internal/database"
	"github.com/hubdispo/hubdispo/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var checkDB bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the hubdispo API server",
	Long: `Generate a dataset and serve it over the REST API:
- dashboard figures, shipments, consolidation groups and alerts
- mock sign-up and sign-in backed by a local storage file`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().BoolVar(&checkDB, "check-db", false, "Report database reachability on /api/health")
}

func runServer(cmd *cobra.Command, args []string) error {
	fmt.Println("🚀 hubdispo starting...")

	fmt.Println("📝 Loading configuration...")
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	fmt.Println("🎲 Generating fleet dataset...")
	ds, err := buildDataset(cfg, cfg.Generator.Counts)
	if err != nil {
		return err
	}
	fmt.Printf("   📦 %d shipments, 🚚 %d consolidation groups, 🔔 %d alerts\n",
		len(ds.Shipments), len(ds.Groups), len(ds.Alerts))

	storage, err := account.NewFileStorage(cfg.Storage.Dir)
	if err != nil {
		return fmt.Errorf("failed to open local storage: %w", err)
	}
	accounts, err := account.NewService(storage, cfg.Auth.Latency, logger.Named("account"))
	if err != nil {
		return fmt.Errorf("failed to create account service: %w", err)
	}

	var opts []server.Option
	if checkDB {
		fmt.Println("🔌 Connecting to database...")
		db, err := database.NewConnection(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		fmt.Println("✅ Database connected successfully")
		opts = append(opts, server.WithHealthCheck(db))
	}

	fmt.Println("⚙️  Setting up server...")
	srv := server.NewServer(ds, accounts, logger.Named("api"), opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.Server.Addr)
	}()
	fmt.Printf("🌐 Serving on %s...\n", cfg.Server.Addr)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Println("🛑 Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
