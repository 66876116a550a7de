package main

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"v4swap/internal/config"
	"v4swap/internal/model"
	"v4swap/internal/router"
	"v4swap/internal/storage"
	"v4swap/internal/swap"
	"v4swap/internal/token"
	"v4swap/internal/v4"
)

func runEncode(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadEncode(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	deployment, err := config.DeploymentFor(cfg.ChainID)
	if err != nil && cfg.Router == "" {
		return err
	}
	routerAddr := deployment.UniversalRouter
	if cfg.Router != "" {
		if !common.IsHexAddress(cfg.Router) {
			return fmt.Errorf("invalid router address: %s", cfg.Router)
		}
		routerAddr = common.HexToAddress(cfg.Router)
	}

	intent, err := buildIntent(cfg.ChainID, cfg.Route, cfg.Fees, cfg.AmountIn, cfg.MinOut, cfg.Recipient, cfg.Deadline, cfg.Mode)
	if err != nil {
		return err
	}

	payload, err := swap.NewEncoder(routerAddr).Encode(intent)
	if err != nil {
		return err
	}

	fmt.Printf("router:   %s\n", payload.Router.Hex())
	fmt.Printf("commands: %s\n", hexutil.Encode(payload.Commands))
	fmt.Printf("calldata: %s\n", hexutil.Encode(payload.Calldata))
	fmt.Printf("value:    %s\n", payload.Value.String())
	fmt.Printf("deadline: %d\n", payload.Deadline)

	if cfg.Out != "" {
		sink := storage.NewJsonlStorage(cfg.Out)
		if err := sink.PutSwap(buildRecord(intent, payload, "", "", model.StatusEncoded)); err != nil {
			logger.Warn("record swap failed", zap.Error(err))
		}
	}

	logger.Info("swap encoded",
		zap.Uint64("chain_id", cfg.ChainID),
		zap.String("token_in", intent.In().String()),
		zap.String("token_out", intent.Out().String()),
		zap.Int("actions", len(payload.Inputs)),
		zap.String("value", payload.Value.String()),
	)

	return nil
}

func buildIntent(chainID uint64, route []string, fees []uint32, amountIn, minOut, recipient string, deadline time.Duration, mode string) (swap.Intent, error) {
	if len(route) < 2 {
		return swap.Intent{}, fmt.Errorf("token route requires at least 2 tokens")
	}

	registry := token.NewRegistry(chainID)
	tokens := make([]token.Token, 0, len(route))
	for _, ref := range route {
		t, err := registry.Resolve(ref)
		if err != nil {
			return swap.Intent{}, err
		}
		tokens = append(tokens, t)
	}

	amount, err := parseAmount(amountIn, "amount-in")
	if err != nil {
		return swap.Intent{}, err
	}
	min, err := parseAmount(minOut, "min-out")
	if err != nil {
		return swap.Intent{}, err
	}

	var recipientAddr common.Address
	if recipient != "" {
		if !common.IsHexAddress(recipient) {
			return swap.Intent{}, fmt.Errorf("invalid recipient address: %s", recipient)
		}
		recipientAddr = common.HexToAddress(recipient)
	}

	deltaMode, err := parseMode(mode)
	if err != nil {
		return swap.Intent{}, err
	}

	return swap.Intent{
		Route:     tokens,
		Fees:      fees,
		AmountIn:  amount,
		MinOut:    min,
		Recipient: recipientAddr,
		Deadline:  uint64(time.Now().Add(deadline).Unix()),
		Mode:      deltaMode,
	}, nil
}

func parseAmount(raw, name string) (*big.Int, error) {
	if raw == "" {
		return nil, fmt.Errorf("%s is required", name)
	}
	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, fmt.Errorf("invalid %s: %s", name, raw)
	}
	return amount, nil
}

func parseMode(mode string) (v4.DeltaMode, error) {
	switch mode {
	case "", "explicit":
		return v4.DeltaExplicit, nil
	case "open":
		return v4.DeltaOpen, nil
	default:
		return v4.DeltaExplicit, fmt.Errorf("unknown settlement mode: %s", mode)
	}
}

func buildRecord(intent swap.Intent, payload router.DispatchPayload, sender, txHash, status string) model.SwapRecord {
	return model.SwapRecord{
		ChainID:     intent.In().ChainID,
		TxHash:      txHash,
		Router:      payload.Router.Hex(),
		Sender:      sender,
		Recipient:   intent.Recipient.Hex(),
		TokenIn:     intent.In().String(),
		TokenOut:    intent.Out().String(),
		AmountIn:    intent.AmountIn.String(),
		MinOut:      intent.MinOut.String(),
		Commands:    hexutil.Encode(payload.Commands),
		Value:       payload.Value.String(),
		Deadline:    payload.Deadline,
		Status:      status,
		SubmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
}
