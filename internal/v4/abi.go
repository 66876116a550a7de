package v4

import (
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ABI argument lists for the action parameter tuples. Built once and
// reused; construction only fails on a malformed type table, which is a
// programming error surfaced on first use.

var poolKeyComponents = []abi.ArgumentMarshaling{
	{Name: "currency0", Type: "address"},
	{Name: "currency1", Type: "address"},
	{Name: "fee", Type: "uint24"},
	{Name: "tickSpacing", Type: "int24"},
	{Name: "hooks", Type: "address"},
}

var pathKeyComponents = []abi.ArgumentMarshaling{
	{Name: "intermediateCurrency", Type: "address"},
	{Name: "fee", Type: "uint24"},
	{Name: "tickSpacing", Type: "int24"},
	{Name: "hooks", Type: "address"},
	{Name: "hookData", Type: "bytes"},
}

type actionArgs struct {
	exactInSingle abi.Arguments
	exactIn       abi.Arguments
	settle        abi.Arguments
	settleAll     abi.Arguments
	take          abi.Arguments
	takeAll       abi.Arguments
	routerInput   abi.Arguments
}

var (
	argsOnce sync.Once
	args     actionArgs
	argsErr  error
)

func buildArgs() (actionArgs, error) {
	exactInSingleType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "poolKey", Type: "tuple", Components: poolKeyComponents},
		{Name: "zeroForOne", Type: "bool"},
		{Name: "amountIn", Type: "uint128"},
		{Name: "amountOutMinimum", Type: "uint128"},
		{Name: "hookData", Type: "bytes"},
	})
	if err != nil {
		return actionArgs{}, fmt.Errorf("exact-in-single type: %w", err)
	}

	exactInType, err := abi.NewType("tuple", "", []abi.ArgumentMarshaling{
		{Name: "currencyIn", Type: "address"},
		{Name: "path", Type: "tuple[]", Components: pathKeyComponents},
		{Name: "amountIn", Type: "uint128"},
		{Name: "amountOutMinimum", Type: "uint128"},
	})
	if err != nil {
		return actionArgs{}, fmt.Errorf("exact-in type: %w", err)
	}

	addressType, err := abi.NewType("address", "", nil)
	if err != nil {
		return actionArgs{}, fmt.Errorf("address type: %w", err)
	}
	uint256Type, err := abi.NewType("uint256", "", nil)
	if err != nil {
		return actionArgs{}, fmt.Errorf("uint256 type: %w", err)
	}
	boolType, err := abi.NewType("bool", "", nil)
	if err != nil {
		return actionArgs{}, fmt.Errorf("bool type: %w", err)
	}
	bytesType, err := abi.NewType("bytes", "", nil)
	if err != nil {
		return actionArgs{}, fmt.Errorf("bytes type: %w", err)
	}
	bytesSliceType, err := abi.NewType("bytes[]", "", nil)
	if err != nil {
		return actionArgs{}, fmt.Errorf("bytes[] type: %w", err)
	}

	return actionArgs{
		exactInSingle: abi.Arguments{{Type: exactInSingleType}},
		exactIn:       abi.Arguments{{Type: exactInType}},
		settle: abi.Arguments{
			{Name: "currency", Type: addressType},
			{Name: "amount", Type: uint256Type},
			{Name: "payerIsUser", Type: boolType},
		},
		settleAll: abi.Arguments{
			{Name: "currency", Type: addressType},
			{Name: "maxAmount", Type: uint256Type},
		},
		take: abi.Arguments{
			{Name: "currency", Type: addressType},
			{Name: "recipient", Type: addressType},
			{Name: "amount", Type: uint256Type},
		},
		takeAll: abi.Arguments{
			{Name: "currency", Type: addressType},
			{Name: "minAmount", Type: uint256Type},
		},
		routerInput: abi.Arguments{
			{Name: "actions", Type: bytesType},
			{Name: "params", Type: bytesSliceType},
		},
	}, nil
}

func actionArguments() (actionArgs, error) {
	argsOnce.Do(func() {
		args, argsErr = buildArgs()
	})
	return args, argsErr
}

// RouterInputArguments exposes the (bytes actions, bytes[] params) argument
// list used to wrap a step list into a single router input.
func RouterInputArguments() (abi.Arguments, error) {
	a, err := actionArguments()
	if err != nil {
		return nil, err
	}
	return a.routerInput, nil
}
