package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"v4swap/internal/chain"
	"v4swap/internal/config"
	"v4swap/internal/quote"
	"v4swap/internal/token"
	"v4swap/internal/v4"
)

func runQuote(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadQuote(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.RPCURL == "" {
		return fmt.Errorf("rpc url is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	chainClient, err := chain.NewClient(ctx, cfg.RPCURL)
	if err != nil {
		return fmt.Errorf("connect rpc: %w", err)
	}
	defer chainClient.Close()

	chainID, err := chainClient.GetChainID(ctx)
	if err != nil {
		return fmt.Errorf("get chain id: %w", err)
	}

	quoterAddr, err := resolveQuoter(chainID.Uint64(), cfg.Quoter)
	if err != nil {
		return err
	}

	registry := token.NewRegistry(chainID.Uint64())
	tokens := make([]token.Token, 0, len(cfg.Route))
	for _, ref := range cfg.Route {
		t, err := registry.Resolve(ref)
		if err != nil {
			return err
		}
		tokens = append(tokens, t)
	}
	if len(tokens) < 2 {
		return fmt.Errorf("token route requires at least 2 tokens")
	}

	amountIn, err := parseAmount(cfg.AmountIn, "amount-in")
	if err != nil {
		return err
	}

	quoter := quote.NewQuoter(chainClient, quoterAddr)

	var result quote.Result
	if len(tokens) == 2 {
		fee := v4.FeeMedium
		if len(cfg.Fees) > 0 {
			fee = cfg.Fees[0]
		}
		pool, err := v4.NewPoolKey(tokens[0], tokens[1], fee)
		if err != nil {
			return err
		}
		result, err = quoter.ExactInputSingle(ctx, pool, pool.ZeroForOne(tokens[0]), amountIn)
		if err != nil {
			return err
		}
	} else {
		route, err := v4.NewRoute(tokens, cfg.Fees)
		if err != nil {
			return err
		}
		result, err = quoter.ExactInput(ctx, route, amountIn)
		if err != nil {
			return err
		}
	}

	fmt.Printf("amount_out:   %s\n", result.AmountOut.String())
	fmt.Printf("gas_estimate: %s\n", result.GasEstimate.String())

	logger.Info("quote",
		zap.Uint64("chain_id", chainID.Uint64()),
		zap.String("token_in", tokens[0].String()),
		zap.String("token_out", tokens[len(tokens)-1].String()),
		zap.String("amount_in", amountIn.String()),
		zap.String("amount_out", result.AmountOut.String()),
	)

	return nil
}

func resolveQuoter(chainID uint64, override string) (common.Address, error) {
	if override != "" {
		if !common.IsHexAddress(override) {
			return common.Address{}, fmt.Errorf("invalid quoter address: %s", override)
		}
		return common.HexToAddress(override), nil
	}
	deployment, err := config.DeploymentFor(chainID)
	if err != nil {
		return common.Address{}, err
	}
	return deployment.Quoter, nil
}
