package token

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestNormalizeNativeSentinel(t *testing.T) {
	eth := Native(1, 18, "ETH", "Ether")

	if got := Normalize(eth, PoolIdentity); got != NativeAddress {
		t.Fatalf("pool-identity context: expected zero sentinel, got %s", got.Hex())
	}
	if got := Normalize(eth, Transfer); got != NativeAddress {
		t.Fatalf("transfer context: expected zero sentinel, got %s", got.Hex())
	}
}

func TestNormalizeERC20(t *testing.T) {
	addr := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	usdc := New(1, addr, 6, "USDC", "USD Coin")

	if got := Normalize(usdc, PoolIdentity); got != addr {
		t.Fatalf("erc20 address changed by normalization: %s", got.Hex())
	}
}

func TestEqual(t *testing.T) {
	addr := common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48")
	a := New(1, addr, 6, "USDC", "USD Coin")
	b := New(1, addr, 6, "USDC.e", "Bridged USDC")
	other := New(8453, addr, 6, "USDC", "USD Coin")

	if !Equal(a, b) {
		t.Fatalf("same chain and address must be equal")
	}
	if Equal(a, other) {
		t.Fatalf("different chains must not be equal")
	}
}

func TestRegistryResolve(t *testing.T) {
	registry := NewRegistry(1)

	usdc, err := registry.Resolve("usdc")
	if err != nil {
		t.Fatalf("resolve symbol: %v", err)
	}
	if usdc.Decimals != 6 {
		t.Fatalf("usdc decimals mismatch: %d", usdc.Decimals)
	}

	eth, err := registry.Resolve("ETH")
	if err != nil {
		t.Fatalf("resolve native: %v", err)
	}
	if !eth.Native {
		t.Fatalf("ETH must resolve to the native asset")
	}

	raw, err := registry.Resolve("0x1111111111111111111111111111111111111111")
	if err != nil {
		t.Fatalf("resolve address: %v", err)
	}
	if raw.Address != common.HexToAddress("0x1111111111111111111111111111111111111111") {
		t.Fatalf("address mismatch: %s", raw.Address.Hex())
	}

	if _, err := registry.Resolve("NOPE"); err == nil {
		t.Fatalf("unknown symbol must fail")
	}
}
