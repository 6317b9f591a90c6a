package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gregorydgoyins/comicmarket/api"
	"github.com/gregorydgoyins/comicmarket/config"
	"github.com/gregorydgoyins/comicmarket/journal"
	"github.com/gregorydgoyins/comicmarket/market"
	"github.com/gregorydgoyins/comicmarket/valuation"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pricing HTTP API",
	Long: `Start the HTTP server exposing price lookups and updates, quoting
and order-limit checks.

Example:
  comicmarketd serve --config market.yaml`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to config file (defaults apply when omitted)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadOrDefault(serveConfigPath)
	if err != nil {
		return err
	}

	log, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer log.Sync()

	jnl, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer jnl.Close()

	// Composition root: the book is seeded exactly once, here, and
	// injected into everything that reads it.
	book := market.NewPriceBook(market.SeedPrices())
	engine := valuation.NewEngine(cfg.Tables(), cfg.SpreadParams())

	srv := api.NewServer(book, engine, cfg.Market.Limits,
		cfg.Market.StartingBalance, jnl, log)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: srv.Router(),
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Listen))
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

func loadOrDefault(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	case "csv":
		return journal.NewCSV(jc.UpdatesFile, jc.ChecksFile)
	default:
		return journal.Nop{}, nil
	}
}
