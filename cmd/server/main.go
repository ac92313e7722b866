package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/jaybhuva31/Paaksathi-AI/app"
	"github.com/jaybhuva31/Paaksathi-AI/config"
	"github.com/jaybhuva31/Paaksathi-AI/database"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/ai"
	"github.com/jaybhuva31/Paaksathi-AI/pkg/logging"
)

const shutdownGrace = 10 * time.Second

type deps struct {
	cfg    config.AppConfig
	logger *zap.Logger
	db     *gorm.DB
}

func setup() (*deps, error) {
	// 1) Config
	cfg := config.Load()

	// 2) Logger
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	logConfig(logger, cfg)

	// 3) DB (sqlite) + migrate + seed
	db, err := database.OpenSQLite(cfg.DBPath, database.SeedOptions{
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &deps{cfg: cfg, logger: logger, db: db}, nil
}

func logConfig(logger *zap.Logger, cfg config.AppConfig) {
	logger.Info("config", zap.Any("cfg", cfg.Redacted()))
}

func (r *deps) close() {
	if err := database.Close(r.db); err != nil {
		r.logger.Warn("close db", zap.Error(err))
	}
	_ = r.logger.Sync()
}

func serve(ctx context.Context) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	detector, err := ai.New(ctx, rt.cfg, rt.logger)
	if err != nil {
		return err
	}
	e := app.New(rt.cfg, rt.db, detector, rt.logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rt.logger.Info("listening",
			zap.String("port", rt.cfg.Port),
			zap.String("detector", detector.Name()))
		if err := e.Start(":" + rt.cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		rt.logger.Info("shutting down")
		return e.Shutdown(sctx)
	})
	return g.Wait()
}

func exportUsers(ctx context.Context, out string) error {
	rt, err := setup()
	if err != nil {
		return err
	}
	defer rt.close()

	file, err := app.NewExportService(rt.cfg, rt.db, rt.logger).Users(ctx)
	if err != nil {
		return err
	}
	if out == "" {
		out = file.Name
	}
	if err := os.WriteFile(out, file.Data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	rt.logger.Info("users exported", zap.String("file", out), zap.Int("bytes", len(file.Data)))
	return nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "paaksathi",
		Short:         "Paaksathi AI crop disease advisory server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	})

	var out string
	exportCmd := &cobra.Command{
		Use:   "export-users",
		Short: "Write the registered users workbook to disk",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return exportUsers(cmd.Context(), out)
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "", "output path (default users_export_<time>.xlsx)")
	root.AddCommand(exportCmd)

	return root
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
