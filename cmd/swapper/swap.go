package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"v4swap/internal/chain"
	"v4swap/internal/config"
	"v4swap/internal/model"
	"v4swap/internal/quote"
	"v4swap/internal/storage"
	"v4swap/internal/storage/postgres"
	"v4swap/internal/submit"
	"v4swap/internal/swap"
	"v4swap/internal/v4"
)

func runSwap(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadSwap(cfgFile, cmd.Flags())
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
	if cfg.PrivateKey == "" {
		return fmt.Errorf("private key is required")
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		return fmt.Errorf("parse private key: %w", err)
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

	deployment, err := config.DeploymentFor(chainID.Uint64())
	if err != nil && (cfg.Router == "" || cfg.Quoter == "") {
		return err
	}
	routerAddr := deployment.UniversalRouter
	if cfg.Router != "" {
		if !common.IsHexAddress(cfg.Router) {
			return fmt.Errorf("invalid router address: %s", cfg.Router)
		}
		routerAddr = common.HexToAddress(cfg.Router)
	}
	quoterAddr, err := resolveQuoter(chainID.Uint64(), cfg.Quoter)
	if err != nil {
		return err
	}

	sender := submit.NewSender(submit.Config{
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
	}, chainClient, key, chainID, logger)

	recipient := cfg.Recipient
	if recipient == "" {
		recipient = sender.From().Hex()
	}

	intent, err := buildIntent(chainID.Uint64(), cfg.Route, cfg.Fees, cfg.AmountIn, orPlaceholder(cfg.MinOut), recipient, cfg.Deadline, cfg.Mode)
	if err != nil {
		return err
	}

	quotedOut := ""
	if cfg.MinOut == "" {
		quoter := quote.NewQuoter(chainClient, quoterAddr)
		result, err := quoteIntent(ctx, quoter, intent)
		if err != nil {
			return fmt.Errorf("quote: %w", err)
		}
		quotedOut = result.AmountOut.String()
		intent.MinOut = quote.ApplySlippage(result.AmountOut, cfg.SlippageBps)
		logger.Info("quoted",
			zap.String("amount_out", quotedOut),
			zap.String("min_out", intent.MinOut.String()),
			zap.Uint32("slippage_bps", cfg.SlippageBps),
		)
	}

	payload, err := swap.NewEncoder(routerAddr).Encode(intent)
	if err != nil {
		return err
	}

	txHash, err := sender.Submit(ctx, payload)
	status := model.StatusSubmitted
	if err != nil {
		status = model.StatusFailed
	}

	record := buildRecord(intent, payload, sender.From().Hex(), txHash.Hex(), status)
	record.QuotedOut = quotedOut

	if cfg.Out != "" {
		sink := storage.NewJsonlStorage(cfg.Out)
		if putErr := sink.PutSwap(record); putErr != nil {
			logger.Warn("record swap failed", zap.Error(putErr))
		}
	}
	if cfg.PGDSN != "" {
		store, storeErr := postgres.NewStore(ctx, cfg.PGDSN)
		if storeErr != nil {
			logger.Warn("postgres connect failed", zap.Error(storeErr))
		} else {
			defer store.Close()
			if upsertErr := store.UpsertSwaps(ctx, []model.SwapRecord{record}); upsertErr != nil {
				logger.Warn("postgres upsert failed", zap.Error(upsertErr))
			}
		}
	}

	if err != nil {
		return err
	}

	fmt.Printf("tx_hash: %s\n", txHash.Hex())
	return nil
}

// orPlaceholder keeps intent construction happy when min-out comes from a
// quote instead of a flag; the placeholder is replaced before encoding.
func orPlaceholder(minOut string) string {
	if minOut == "" {
		return "1"
	}
	return minOut
}

func quoteIntent(ctx context.Context, quoter *quote.Quoter, intent swap.Intent) (quote.Result, error) {
	if len(intent.Route) == 2 {
		fee := v4.FeeMedium
		if len(intent.Fees) > 0 {
			fee = intent.Fees[0]
		}
		pool, err := v4.NewPoolKey(intent.In(), intent.Out(), fee)
		if err != nil {
			return quote.Result{}, err
		}
		return quoter.ExactInputSingle(ctx, pool, pool.ZeroForOne(intent.In()), intent.AmountIn)
	}

	route, err := v4.NewRoute(intent.Route, intent.Fees)
	if err != nil {
		return quote.Result{}, err
	}
	return quoter.ExactInput(ctx, route, intent.AmountIn)
}
