package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/config"
	"hamsterpocket/internal/indexer"
	"hamsterpocket/internal/model"
	"hamsterpocket/internal/storage"
	"hamsterpocket/internal/storage/postgres"
)

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(cfgFile, cmd.Flags())
}

func runSync(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.NodeURL == "" {
		return fmt.Errorf("node URL is required")
	}
	if cfg.ProgramAddress == "" {
		return fmt.Errorf("program address is required")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := chain.NewClient(cfg.NodeURL)
	ix, err := indexer.New(client, cfg.ProgramAddress, logger)
	if err != nil {
		return fmt.Errorf("build indexer: %w", err)
	}

	var sink storage.Store
	if cfg.PostgresDSN != "" {
		pg, err := postgres.NewStore(ctx, cfg.PostgresDSN)
		if err != nil {
			return fmt.Errorf("connect postgres: %w", err)
		}
		defer pg.Close()
		sink = pg
	} else {
		sink = storage.NewJsonlStore(cfg.Out)
	}

	runner := indexer.NewRunner(indexer.RunConfig{
		EventName:         model.EventName(cfg.Event),
		StartSequence:     cfg.StartSequence,
		PageSize:          cfg.PageSize,
		CheckpointPath:    cfg.Checkpoint,
		CheckpointEnabled: cfg.CheckpointEnabled,
		MaxRetries:        cfg.MaxRetries,
		RetryBackoff:      cfg.RetryBackoff,
	}, ix, sink, logger)

	logger.Info("sync starting",
		zap.String("node", cfg.NodeURL),
		zap.String("program", cfg.ProgramAddress),
		zap.String("event", cfg.Event),
		zap.Uint64("start", cfg.StartSequence),
	)

	if err := runner.Run(ctx); err != nil {
		logger.Error("sync failed", zap.Error(err))
		return err
	}

	logger.Info("sync complete")
	return nil
}
