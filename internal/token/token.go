package token

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// NativeAddress is the sentinel address representing the chain's native
// asset wherever an ERC20-style address is expected. Uniswap V4 keys pools
// by this sentinel, not by the wrapped-native contract.
var NativeAddress = common.Address{}

// Token is a logical currency reference. Values are immutable once built.
type Token struct {
	ChainID  uint64
	Address  common.Address
	Native   bool
	Decimals uint8
	Symbol   string
	Name     string
}

// New builds an ERC20 token reference.
func New(chainID uint64, address common.Address, decimals uint8, symbol, name string) Token {
	return Token{
		ChainID:  chainID,
		Address:  address,
		Decimals: decimals,
		Symbol:   symbol,
		Name:     name,
	}
}

// Native builds a reference to the chain's native asset.
func Native(chainID uint64, decimals uint8, symbol, name string) Token {
	return Token{
		ChainID:  chainID,
		Native:   true,
		Decimals: decimals,
		Symbol:   symbol,
		Name:     name,
	}
}

// Context selects the address representation requested from Normalize.
type Context int

const (
	// PoolIdentity is the context of pool and path key construction.
	PoolIdentity Context = iota
	// Transfer is the context of settle and take currency fields.
	Transfer
)

// Normalize returns the address to use for the token in the given context.
// The native asset maps to the zero sentinel in both contexts; every call
// site that needs a currency address must go through here so the rule
// cannot drift.
func Normalize(t Token, _ Context) common.Address {
	if t.Native {
		return NativeAddress
	}
	return t.Address
}

// Equal reports whether two tokens refer to the same currency on the same
// chain.
func Equal(a, b Token) bool {
	if a.ChainID != b.ChainID {
		return false
	}
	return Normalize(a, PoolIdentity) == Normalize(b, PoolIdentity)
}

func (t Token) String() string {
	if t.Symbol != "" {
		return t.Symbol
	}
	if t.Native {
		return fmt.Sprintf("native:%d", t.ChainID)
	}
	return t.Address.Hex()
}
