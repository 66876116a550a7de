package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EncodeConfig holds configuration for the encode command.
type EncodeConfig struct {
	ChainID   uint64
	Router    string
	Route     []string
	Fees      []uint32
	AmountIn  string
	MinOut    string
	Recipient string
	Deadline  time.Duration
	Mode      string
	Out       string
	LogLevel  string
}

// QuoteConfig holds configuration for the quote command.
type QuoteConfig struct {
	RPCURL   string
	Quoter   string
	Route    []string
	Fees     []uint32
	AmountIn string
	LogLevel string
}

// SwapConfig holds configuration for the swap command.
type SwapConfig struct {
	RPCURL       string
	Router       string
	Quoter       string
	PrivateKey   string
	Route        []string
	Fees         []uint32
	AmountIn     string
	MinOut       string
	SlippageBps  uint32
	Recipient    string
	Deadline     time.Duration
	Mode         string
	Out          string
	PGDSN        string
	MaxRetries   int
	RetryBackoff time.Duration
	LogLevel     string
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("SWAPPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("deadline", 10*time.Minute)
	v.SetDefault("mode", "explicit")
	v.SetDefault("slippage-bps", uint32(50))
	v.SetDefault("out", "./data/swaps.jsonl")
	v.SetDefault("max-retries", 3)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}

// LoadEncode merges config file, environment variables, and flags into
// EncodeConfig.
func LoadEncode(cfgFile string, flags *pflag.FlagSet) (EncodeConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return EncodeConfig{}, err
	}

	return EncodeConfig{
		ChainID:   v.GetUint64("chain-id"),
		Router:    v.GetString("router"),
		Route:     getStringSlice(v, "token"),
		Fees:      getFeeSlice(v, "fee"),
		AmountIn:  v.GetString("amount-in"),
		MinOut:    v.GetString("min-out"),
		Recipient: v.GetString("recipient"),
		Deadline:  v.GetDuration("deadline"),
		Mode:      v.GetString("mode"),
		Out:       v.GetString("out"),
		LogLevel:  v.GetString("log-level"),
	}, nil
}

// LoadQuote merges config file, environment variables, and flags into
// QuoteConfig.
func LoadQuote(cfgFile string, flags *pflag.FlagSet) (QuoteConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return QuoteConfig{}, err
	}

	return QuoteConfig{
		RPCURL:   v.GetString("rpc"),
		Quoter:   v.GetString("quoter"),
		Route:    getStringSlice(v, "token"),
		Fees:     getFeeSlice(v, "fee"),
		AmountIn: v.GetString("amount-in"),
		LogLevel: v.GetString("log-level"),
	}, nil
}

// LoadSwap merges config file, environment variables, and flags into
// SwapConfig.
func LoadSwap(cfgFile string, flags *pflag.FlagSet) (SwapConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return SwapConfig{}, err
	}

	return SwapConfig{
		RPCURL:       v.GetString("rpc"),
		Router:       v.GetString("router"),
		Quoter:       v.GetString("quoter"),
		PrivateKey:   v.GetString("private-key"),
		Route:        getStringSlice(v, "token"),
		Fees:         getFeeSlice(v, "fee"),
		AmountIn:     v.GetString("amount-in"),
		MinOut:       v.GetString("min-out"),
		SlippageBps:  v.GetUint32("slippage-bps"),
		Recipient:    v.GetString("recipient"),
		Deadline:     v.GetDuration("deadline"),
		Mode:         v.GetString("mode"),
		Out:          v.GetString("out"),
		PGDSN:        v.GetString("pg-dsn"),
		MaxRetries:   v.GetInt("max-retries"),
		RetryBackoff: v.GetDuration("retry-backoff"),
		LogLevel:     v.GetString("log-level"),
	}, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func getFeeSlice(v *viper.Viper, key string) []uint32 {
	raw := getStringSlice(v, key)
	if len(raw) == 0 {
		return nil
	}
	fees := make([]uint32, 0, len(raw))
	for _, item := range raw {
		var fee uint32
		if _, err := fmt.Sscanf(item, "%d", &fee); err != nil {
			continue
		}
		fees = append(fees, fee)
	}
	return fees
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
