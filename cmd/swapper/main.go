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
		Use:          "swapper",
		Short:        "Uniswap V4 swap encoder and submitter",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	encodeCmd := &cobra.Command{
		Use:   "encode",
		Short: "Encode swap calldata without touching the chain",
		RunE:  runEncode,
	}

	encodeCmd.Flags().Uint64("chain-id", 1, "target chain id")
	encodeCmd.Flags().String("router", "", "universal router address (defaults to the known deployment)")
	encodeCmd.Flags().StringSlice("token", nil, "token route, input first (symbols or addresses, comma-separated)")
	encodeCmd.Flags().StringSlice("fee", nil, "fee tier per hop in hundredths of a bip (default 3000)")
	encodeCmd.Flags().String("amount-in", "", "exact input amount in smallest units")
	encodeCmd.Flags().String("min-out", "", "minimum output amount in smallest units")
	encodeCmd.Flags().String("recipient", "", "recipient address")
	encodeCmd.Flags().Duration("deadline", 10*time.Minute, "deadline from now")
	encodeCmd.Flags().String("mode", "explicit", "settlement mode (explicit, open)")
	encodeCmd.Flags().String("out", "./data/swaps.jsonl", "swap history JSONL path")
	encodeCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(encodeCmd)

	quoteCmd := &cobra.Command{
		Use:   "quote",
		Short: "Quote expected output for a swap",
		RunE:  runQuote,
	}

	quoteCmd.Flags().String("rpc", "", "RPC URL")
	quoteCmd.Flags().String("quoter", "", "quoter contract address (defaults to the known deployment)")
	quoteCmd.Flags().StringSlice("token", nil, "token route, input first (symbols or addresses, comma-separated)")
	quoteCmd.Flags().StringSlice("fee", nil, "fee tier per hop in hundredths of a bip (default 3000)")
	quoteCmd.Flags().String("amount-in", "", "exact input amount in smallest units")
	quoteCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(quoteCmd)

	swapCmd := &cobra.Command{
		Use:   "swap",
		Short: "Quote, encode, sign and submit a swap",
		RunE:  runSwap,
	}

	swapCmd.Flags().String("rpc", "", "RPC URL")
	swapCmd.Flags().String("router", "", "universal router address (defaults to the known deployment)")
	swapCmd.Flags().String("quoter", "", "quoter contract address (defaults to the known deployment)")
	swapCmd.Flags().String("private-key", "", "hex-encoded signing key")
	swapCmd.Flags().StringSlice("token", nil, "token route, input first (symbols or addresses, comma-separated)")
	swapCmd.Flags().StringSlice("fee", nil, "fee tier per hop in hundredths of a bip (default 3000)")
	swapCmd.Flags().String("amount-in", "", "exact input amount in smallest units")
	swapCmd.Flags().String("min-out", "", "minimum output amount (empty quotes and applies slippage)")
	swapCmd.Flags().Uint32("slippage-bps", 50, "slippage tolerance in basis points")
	swapCmd.Flags().String("recipient", "", "recipient address (defaults to the sender)")
	swapCmd.Flags().Duration("deadline", 10*time.Minute, "deadline from now")
	swapCmd.Flags().String("mode", "explicit", "settlement mode (explicit, open)")
	swapCmd.Flags().String("out", "./data/swaps.jsonl", "swap history JSONL path")
	swapCmd.Flags().String("pg-dsn", "", "optional Postgres DSN for swap history")
	swapCmd.Flags().Int("max-retries", 3, "maximum send retry attempts")
	swapCmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	swapCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(swapCmd)

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
