package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hamsterpocket/internal/builder"
	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/config"
	"hamsterpocket/internal/txn"
)

// newTxCommands groups the signing subcommands. Each one simulates first,
// submits, and awaits finality within the configured wait timeout.
func newTxCommands() []*cobra.Command {
	pauseCmd := &cobra.Command{
		Use:   "pause <pocket-id>",
		Short: "Pause an active pocket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusTx(cmd, args[0], (*builder.Builder).PausePocket)
		},
	}

	restartCmd := &cobra.Command{
		Use:   "restart <pocket-id>",
		Short: "Restart a paused pocket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusTx(cmd, args[0], (*builder.Builder).RestartPocket)
		},
	}

	closeCmd := &cobra.Command{
		Use:   "close <pocket-id>",
		Short: "Close a pocket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusTx(cmd, args[0], (*builder.Builder).ClosePocket)
		},
	}

	depositCmd := &cobra.Command{
		Use:   "deposit <pocket-id>",
		Short: "Deposit base coin into a pocket",
		Args:  cobra.ExactArgs(1),
		RunE:  runDeposit,
	}
	depositCmd.Flags().String("coin", "", "deposited coin type (address::module::name)")
	depositCmd.Flags().Uint64("amount", 0, "deposit amount in base units")

	withdrawCmd := &cobra.Command{
		Use:   "withdraw <pocket-id>",
		Short: "Withdraw all funds from a closed pocket",
		Args:  cobra.ExactArgs(1),
		RunE:  runWithdraw,
	}
	withdrawCmd.Flags().String("base", "", "base coin type (address::module::name)")
	withdrawCmd.Flags().String("target", "", "target coin type (address::module::name)")

	commands := []*cobra.Command{pauseCmd, restartCmd, closeCmd, depositCmd, withdrawCmd}
	for _, c := range commands {
		c.Flags().String("node", "", "fullnode API URL")
		c.Flags().String("program", "", "program (resource account) address")
		c.Flags().String("private-key", "", "signer seed, hex encoded")
		c.Flags().Duration("wait-timeout", 0, "how long to await finality")
		c.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	}
	return commands
}

func newSubmitter(cfg config.Config) (*txn.Submitter, *builder.Builder, error) {
	if cfg.NodeURL == "" {
		return nil, nil, fmt.Errorf("node URL is required")
	}
	if cfg.PrivateKey == "" {
		return nil, nil, fmt.Errorf("private key is required")
	}
	if cfg.ProgramAddress == "" {
		return nil, nil, fmt.Errorf("program address is required")
	}

	account, err := chain.NewAccountFromSeedHex(cfg.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("load account: %w", err)
	}
	b, err := builder.New(cfg.ProgramAddress)
	if err != nil {
		return nil, nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	return txn.NewSubmitter(chain.NewClient(cfg.NodeURL), account, logger), b, nil
}

func submit(cmd *cobra.Command, cfg config.Config, s *txn.Submitter, payload builder.EntryFunctionPayload) error {
	ctx := cmd.Context()
	if cfg.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.WaitTimeout)
		defer cancel()
	}

	hash, err := s.Execute(ctx, payload, true)
	if err != nil {
		if hash != "" {
			return fmt.Errorf("transaction %s: %w", hash, err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}

func runStatusTx(cmd *cobra.Command, id string, build func(*builder.Builder, string) (builder.EntryFunctionPayload, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, b, err := newSubmitter(cfg)
	if err != nil {
		return err
	}
	payload, err := build(b, id)
	if err != nil {
		return err
	}
	return submit(cmd, cfg, s, payload)
}

func runDeposit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	coin, err := cmd.Flags().GetString("coin")
	if err != nil {
		return err
	}
	amount, err := cmd.Flags().GetUint64("amount")
	if err != nil {
		return err
	}
	if coin == "" || amount == 0 {
		return fmt.Errorf("coin type and a non-zero amount are required")
	}

	s, b, err := newSubmitter(cfg)
	if err != nil {
		return err
	}
	payload, err := b.Deposit(builder.DepositParams{ID: args[0], CoinType: coin, Amount: amount})
	if err != nil {
		return err
	}
	return submit(cmd, cfg, s, payload)
}

func runWithdraw(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cmd.Flags().GetString("base")
	if err != nil {
		return err
	}
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	if base == "" || target == "" {
		return fmt.Errorf("base and target coin types are required")
	}

	s, b, err := newSubmitter(cfg)
	if err != nil {
		return err
	}
	payload, err := b.Withdraw(builder.WithdrawParams{
		ID:             args[0],
		BaseCoinType:   base,
		TargetCoinType: target,
	})
	if err != nil {
		return err
	}
	return submit(cmd, cfg, s, payload)
}
