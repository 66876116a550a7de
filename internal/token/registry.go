package token

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// Registry resolves CLI token references (symbol or hex address) to Token
// values for one chain.
type Registry struct {
	chainID uint64
	bySym   map[string]Token
}

// NewRegistry builds a registry seeded with the well-known tokens for the
// chain, if any.
func NewRegistry(chainID uint64) *Registry {
	r := &Registry{
		chainID: chainID,
		bySym:   make(map[string]Token),
	}
	for _, t := range wellKnown[chainID] {
		r.bySym[strings.ToUpper(t.Symbol)] = t
	}
	return r
}

// Add registers a token under its symbol.
func (r *Registry) Add(t Token) {
	if t.Symbol == "" {
		return
	}
	r.bySym[strings.ToUpper(t.Symbol)] = t
}

// Resolve maps a symbol or 0x-address string to a Token. Unknown addresses
// resolve to an 18-decimal placeholder; the encoder only needs the address.
func (r *Registry) Resolve(ref string) (Token, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Token{}, fmt.Errorf("empty token reference")
	}
	if t, ok := r.bySym[strings.ToUpper(ref)]; ok {
		return t, nil
	}
	if common.IsHexAddress(ref) {
		return New(r.chainID, common.HexToAddress(ref), 18, "", ""), nil
	}
	return Token{}, fmt.Errorf("unknown token %q on chain %d", ref, r.chainID)
}

// wellKnown lists a small set of common tokens per chain id.
var wellKnown = map[uint64][]Token{
	1: {
		Native(1, 18, "ETH", "Ether"),
		New(1, common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"), 18, "WETH", "Wrapped Ether"),
		New(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin"),
		New(1, common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"), 6, "USDT", "Tether USD"),
		New(1, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18, "DAI", "Dai Stablecoin"),
		New(1, common.HexToAddress("0x2260FAC5E5542a773Aa44fBCfeDf7C193bc2C599"), 8, "WBTC", "Wrapped BTC"),
	},
	8453: {
		Native(8453, 18, "ETH", "Ether"),
		New(8453, common.HexToAddress("0x4200000000000000000000000000000000000006"), 18, "WETH", "Wrapped Ether"),
		New(8453, common.HexToAddress("0x833589fCD6eDb6E08f4c7C32D4f71b54bdA02913"), 6, "USDC", "USD Coin"),
	},
	130: {
		Native(130, 18, "ETH", "Ether"),
		New(130, common.HexToAddress("0x4200000000000000000000000000000000000006"), 18, "WETH", "Wrapped Ether"),
		New(130, common.HexToAddress("0x078D782b760474a361dDA0AF3839290b0EF57AD6"), 6, "USDC", "USD Coin"),
	},
	42161: {
		Native(42161, 18, "ETH", "Ether"),
		New(42161, common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"), 18, "WETH", "Wrapped Ether"),
		New(42161, common.HexToAddress("0xaf88d065e77c8cC2239327C5EDb3A432268e5831"), 6, "USDC", "USD Coin"),
	},
	11155111: {
		Native(11155111, 18, "ETH", "Ether"),
		New(11155111, common.HexToAddress("0xfFf9976782d46CC05630D1f6eBAb18b2324d6B14"), 18, "WETH", "Wrapped Ether"),
	},
}
