package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"hamsterpocket/internal/builder"
	"hamsterpocket/internal/chain"
	"hamsterpocket/internal/model"
)

func runGetPocket(cmd *cobra.Command, args []string) error {
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

	b, err := builder.New(cfg.ProgramAddress)
	if err != nil {
		return err
	}
	payload, err := b.GetPocket(args[0])
	if err != nil {
		return err
	}

	client := chain.NewClient(cfg.NodeURL)
	results, err := client.View(cmd.Context(), chain.ViewRequest{
		Function:      payload.Function,
		TypeArguments: payload.TypeArgs,
		Arguments:     payload.Args,
	})
	if err != nil {
		return fmt.Errorf("fetch pocket: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("pocket %s: empty view result", args[0])
	}

	var raw model.PocketResource
	if err := json.Unmarshal(results[0], &raw); err != nil {
		return fmt.Errorf("decode pocket %s: %w", args[0], err)
	}
	pocket, err := model.TransformPocket(raw)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(pocket, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func runQuote(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.NodeURL == "" {
		return fmt.Errorf("node URL is required")
	}

	base, err := cmd.Flags().GetString("base")
	if err != nil {
		return err
	}
	target, err := cmd.Flags().GetString("target")
	if err != nil {
		return err
	}
	amount, err := cmd.Flags().GetUint64("amount")
	if err != nil {
		return err
	}
	if base == "" || target == "" {
		return fmt.Errorf("base and target coin types are required")
	}
	if cfg.ProgramAddress == "" {
		return fmt.Errorf("program address is required")
	}

	b, err := builder.New(cfg.ProgramAddress)
	if err != nil {
		return err
	}
	payload, err := b.GetQuote(builder.GetQuoteParams{
		BaseCoinType:   base,
		TargetCoinType: target,
		AmountIn:       amount,
	})
	if err != nil {
		return err
	}

	client := chain.NewClient(cfg.NodeURL)
	results, err := client.View(cmd.Context(), chain.ViewRequest{
		Function:      payload.Function,
		TypeArguments: payload.TypeArgs,
		Arguments:     payload.Args,
	})
	if err != nil {
		return fmt.Errorf("fetch quote: %w", err)
	}

	for _, result := range results {
		fmt.Fprintln(cmd.OutOrStdout(), string(result))
	}
	return nil
}
