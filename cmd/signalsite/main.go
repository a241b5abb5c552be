package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"signalsite/internal/adapters/web"
	"signalsite/internal/application"
	"signalsite/internal/config"
	"signalsite/internal/infrastructure/content"
	"signalsite/internal/infrastructure/database"
	"signalsite/internal/infrastructure/guard"
	"signalsite/internal/infrastructure/i18n"
	"signalsite/internal/infrastructure/sqlite"
	"signalsite/internal/ports/output"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "signalsite",
		Short:         "Landing page and lead capture service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if sqlite.IsSQLiteURL(cfg.DatabaseURL) {
				repo, err := sqlite.Open(cmd.Context(), cfg.DatabaseURL, logger)
				if err != nil {
					return err
				}
				return repo.Close()
			}
			return database.RunMigrations(cfg.DatabaseURL, logger)
		},
	}
}

func setup() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.Level)
	logger, err := zcfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return cfg, logger, nil
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	sink, closeSink, err := openSink(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSink()

	submissionGuard, closeGuard, err := openGuard(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeGuard()

	translator, err := i18n.NewTranslator(logger)
	if err != nil {
		return err
	}
	siteContent, err := content.Load()
	if err != nil {
		return err
	}

	window := siteContent.Urgency.Window
	if cfg.UrgencyWindow > 0 {
		window = cfg.UrgencyWindow
	}
	deadline := time.Now().Add(window)

	leadService := application.NewLeadService(sink, submissionGuard, translator, siteContent.PrefixCodes(), logger)
	pageService := application.NewPageService(siteContent, translator, deadline)

	handler, err := web.NewHandler(leadService, pageService, logger)
	if err != nil {
		return fmt.Errorf("init handler: %w", err)
	}
	router := web.NewRouter(handler, cfg.Locale, logger)

	logger.Info("starting signalsite",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("default_locale", cfg.Locale.String()),
		zap.Time("countdown_deadline", deadline),
	)
	return web.NewServer(cfg.HTTPAddr, router, logger).ListenAndServe(ctx)
}

func openSink(ctx context.Context, cfg *config.Config, logger *zap.Logger) (output.LeadSink, func(), error) {
	if sqlite.IsSQLiteURL(cfg.DatabaseURL) {
		repo, err := sqlite.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		return repo, func() { _ = repo.Close() }, nil
	}

	if cfg.AutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return nil, nil, err
		}
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, err
	}
	return database.NewLeadRepository(pool), pool.Close, nil
}

func openGuard(ctx context.Context, cfg *config.Config, logger *zap.Logger) (output.SubmissionGuard, func(), error) {
	if cfg.RedisURL == "" {
		logger.Info("submission guard: in-memory", zap.Duration("ttl", cfg.SubmissionTTL))
		return guard.NewMemory(cfg.SubmissionTTL), func() {}, nil
	}
	g, err := guard.DialRedis(ctx, cfg.RedisURL, cfg.SubmissionTTL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("submission guard: redis", zap.Duration("ttl", cfg.SubmissionTTL))
	return g, func() { _ = g.Close() }, nil
}
