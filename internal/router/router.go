package router

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
	"v4swap/internal/v4"
)

// Command is a top-level universal router instruction opcode.
type Command byte

// CommandV4Swap tells the router's outer dispatcher to run a V4 action
// payload.
const CommandV4Swap Command = 0x10

const universalRouterABIJSON = `[
  {
    "inputs": [
      {"internalType": "bytes", "name": "commands", "type": "bytes"},
      {"internalType": "bytes[]", "name": "inputs", "type": "bytes[]"},
      {"internalType": "uint256", "name": "deadline", "type": "uint256"}
    ],
    "name": "execute",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]`

var (
	routerABI     abi.ABI
	routerABIOnce sync.Once
	routerABIErr  error
)

// UniversalRouterABI returns the parsed universal router ABI.
func UniversalRouterABI() (abi.ABI, error) {
	routerABIOnce.Do(func() {
		routerABI, routerABIErr = abi.JSON(strings.NewReader(universalRouterABIJSON))
	})
	return routerABI, routerABIErr
}

// DispatchPayload is the fully packaged call ready for submission to the
// universal router.
type DispatchPayload struct {
	Router   common.Address
	Commands []byte
	Inputs   [][]byte
	Calldata []byte
	Value    *big.Int
	Deadline uint64
}

// Package wraps a sequenced step list into the single V4_SWAP command and
// the execute calldata. value is amountIn when the input token is the
// chain's native asset, zero otherwise.
func Package(routerAddr common.Address, steps []v4.Step, input token.Token, amountIn *big.Int, deadline uint64) (DispatchPayload, error) {
	if len(steps) == 0 {
		return DispatchPayload{}, fmt.Errorf("empty action plan")
	}

	inputArgs, err := v4.RouterInputArguments()
	if err != nil {
		return DispatchPayload{}, err
	}
	actionInput, err := inputArgs.Pack(v4.ActionBytes(steps), v4.ParamBlobs(steps))
	if err != nil {
		return DispatchPayload{}, fmt.Errorf("pack action input: %w", err)
	}

	commands := []byte{byte(CommandV4Swap)}
	inputs := [][]byte{actionInput}

	routerABI, err := UniversalRouterABI()
	if err != nil {
		return DispatchPayload{}, err
	}
	calldata, err := routerABI.Pack("execute", commands, inputs, new(big.Int).SetUint64(deadline))
	if err != nil {
		return DispatchPayload{}, fmt.Errorf("pack execute: %w", err)
	}

	value := big.NewInt(0)
	if input.Native {
		value = new(big.Int).Set(amountIn)
	}

	return DispatchPayload{
		Router:   routerAddr,
		Commands: commands,
		Inputs:   inputs,
		Calldata: calldata,
		Value:    value,
		Deadline: deadline,
	}, nil
}
