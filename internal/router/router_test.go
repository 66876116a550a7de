package router

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
	"v4swap/internal/v4"
)

var (
	routerAddr = common.HexToAddress("0x66a9893cC07D91D95644AEDD05D03f95e1dBA8Af")
	recipient  = common.HexToAddress("0x3333333333333333333333333333333333333333")
)

func singleHopSteps(t *testing.T, input, output token.Token, amountIn, minOut *big.Int) []v4.Step {
	t.Helper()
	pool, err := v4.NewPoolKey(input, output, v4.FeeMedium)
	if err != nil {
		t.Fatalf("pool key: %v", err)
	}
	steps, err := v4.ExactInputSinglePlan(pool, input, output, amountIn, minOut, recipient, v4.DeltaExplicit)
	if err != nil {
		t.Fatalf("plan: %v", err)
	}
	return steps
}

func TestPackageCommandsAndInputs(t *testing.T) {
	native := token.Native(1, 18, "ETH", "Ether")
	usdc := token.New(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin")

	steps := singleHopSteps(t, native, usdc, big.NewInt(1e15), big.NewInt(5e6))
	payload, err := Package(routerAddr, steps, native, big.NewInt(1e15), 1900000000)
	if err != nil {
		t.Fatalf("package: %v", err)
	}

	if !bytes.Equal(payload.Commands, []byte{byte(CommandV4Swap)}) {
		t.Fatalf("commands mismatch: %x", payload.Commands)
	}
	if len(payload.Inputs) != 1 {
		t.Fatalf("expected exactly one input, got %d", len(payload.Inputs))
	}

	inputArgs, err := v4.RouterInputArguments()
	if err != nil {
		t.Fatalf("arguments: %v", err)
	}
	vals, err := inputArgs.Unpack(payload.Inputs[0])
	if err != nil {
		t.Fatalf("unpack input: %v", err)
	}
	actions := vals[0].([]byte)
	params := vals[1].([][]byte)
	if len(actions) != 3 {
		t.Fatalf("single-hop exact-input must encode 3 actions, got %d", len(actions))
	}
	if len(params) != len(actions) {
		t.Fatalf("params not index-aligned with actions: %d != %d", len(params), len(actions))
	}
}

func TestPackageExecuteCalldata(t *testing.T) {
	native := token.Native(1, 18, "ETH", "Ether")
	usdc := token.New(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin")

	steps := singleHopSteps(t, native, usdc, big.NewInt(1e15), big.NewInt(5e6))
	payload, err := Package(routerAddr, steps, native, big.NewInt(1e15), 1900000000)
	if err != nil {
		t.Fatalf("package: %v", err)
	}

	routerABI, err := UniversalRouterABI()
	if err != nil {
		t.Fatalf("abi: %v", err)
	}
	method := routerABI.Methods["execute"]
	if !bytes.Equal(payload.Calldata[:4], method.ID) {
		t.Fatalf("calldata selector mismatch: %x", payload.Calldata[:4])
	}

	vals, err := method.Inputs.Unpack(payload.Calldata[4:])
	if err != nil {
		t.Fatalf("unpack calldata: %v", err)
	}
	if !bytes.Equal(vals[0].([]byte), payload.Commands) {
		t.Fatalf("commands mismatch in calldata")
	}
	deadline := vals[2].(*big.Int)
	if deadline.Uint64() != payload.Deadline {
		t.Fatalf("deadline mismatch: %s", deadline)
	}
}

func TestPackageValueConditional(t *testing.T) {
	native := token.Native(1, 18, "ETH", "Ether")
	usdc := token.New(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin")
	dai := token.New(1, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18, "DAI", "Dai")

	nativeSteps := singleHopSteps(t, native, usdc, big.NewInt(1e15), big.NewInt(5e6))
	payload, err := Package(routerAddr, nativeSteps, native, big.NewInt(1e15), 1900000000)
	if err != nil {
		t.Fatalf("package: %v", err)
	}
	if payload.Value.Cmp(big.NewInt(1e15)) != 0 {
		t.Fatalf("native input must attach value, got %s", payload.Value)
	}

	erc20Steps := singleHopSteps(t, dai, usdc, big.NewInt(2e6), big.NewInt(1))
	payload, err = Package(routerAddr, erc20Steps, dai, big.NewInt(2e6), 1900000000)
	if err != nil {
		t.Fatalf("package: %v", err)
	}
	if payload.Value.Sign() != 0 {
		t.Fatalf("erc20 input must attach zero value, got %s", payload.Value)
	}
}

func TestPackageEmptyPlan(t *testing.T) {
	native := token.Native(1, 18, "ETH", "Ether")
	if _, err := Package(routerAddr, nil, native, big.NewInt(1), 1900000000); err == nil {
		t.Fatalf("expected error for empty plan")
	}
}
