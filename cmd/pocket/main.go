package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "pocket",
		Short:        "hamsterpocket on-chain client",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	syncCmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync an event stream into local storage",
		RunE:  runSync,
	}

	syncCmd.Flags().String("node", "", "fullnode API URL")
	syncCmd.Flags().String("program", "", "program (resource account) address")
	syncCmd.Flags().String("event", "", "event stream name, e.g. update_pocket_status")
	syncCmd.Flags().Uint64("start", 0, "start sequence number")
	syncCmd.Flags().Uint64("page-size", 100, "events per page")
	syncCmd.Flags().String("out", "./data/events.jsonl", "output JSONL path")
	syncCmd.Flags().String("pg-dsn", "", "optional Postgres DSN (overrides JSONL output)")
	syncCmd.Flags().String("checkpoint", "./data/checkpoint.json", "checkpoint file path")
	syncCmd.Flags().Bool("checkpoint-enabled", true, "enable checkpointing")
	syncCmd.Flags().Int("max-retries", 5, "maximum retry attempts")
	syncCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	syncCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(syncCmd)

	getCmd := &cobra.Command{
		Use:   "get <pocket-id>",
		Short: "Fetch and decode a pocket",
		Args:  cobra.ExactArgs(1),
		RunE:  runGetPocket,
	}

	getCmd.Flags().String("node", "", "fullnode API URL")
	getCmd.Flags().String("program", "", "program (resource account) address")
	getCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(getCmd)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote a coin pair through the routed venue",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("node", "", "fullnode API URL")
	quoteCmd.Flags().String("program", "", "program (resource account) address")
	quoteCmd.Flags().String("base", "", "base coin type (address::module::name)")
	quoteCmd.Flags().String("target", "", "target coin type (address::module::name)")
	quoteCmd.Flags().Uint64("amount", 0, "input amount in base units")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	root.AddCommand(newTxCommands()...)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
