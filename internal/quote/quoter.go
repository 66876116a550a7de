package quote

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/chain"
	"v4swap/internal/token"
	"v4swap/internal/v4"
)

const quoterABIJSON = `[
  {
    "inputs": [
      {
        "components": [
          {
            "components": [
              {"internalType": "address", "name": "currency0", "type": "address"},
              {"internalType": "address", "name": "currency1", "type": "address"},
              {"internalType": "uint24", "name": "fee", "type": "uint24"},
              {"internalType": "int24", "name": "tickSpacing", "type": "int24"},
              {"internalType": "address", "name": "hooks", "type": "address"}
            ],
            "internalType": "struct PoolKey", "name": "poolKey", "type": "tuple"
          },
          {"internalType": "bool", "name": "zeroForOne", "type": "bool"},
          {"internalType": "uint128", "name": "exactAmount", "type": "uint128"},
          {"internalType": "bytes", "name": "hookData", "type": "bytes"}
        ],
        "internalType": "struct IV4Quoter.QuoteExactSingleParams", "name": "params", "type": "tuple"
      }
    ],
    "name": "quoteExactInputSingle",
    "outputs": [
      {"internalType": "uint256", "name": "amountOut", "type": "uint256"},
      {"internalType": "uint256", "name": "gasEstimate", "type": "uint256"}
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [
      {
        "components": [
          {"internalType": "address", "name": "exactCurrency", "type": "address"},
          {
            "components": [
              {"internalType": "address", "name": "intermediateCurrency", "type": "address"},
              {"internalType": "uint24", "name": "fee", "type": "uint24"},
              {"internalType": "int24", "name": "tickSpacing", "type": "int24"},
              {"internalType": "address", "name": "hooks", "type": "address"},
              {"internalType": "bytes", "name": "hookData", "type": "bytes"}
            ],
            "internalType": "struct PathKey[]", "name": "path", "type": "tuple[]"
          },
          {"internalType": "uint128", "name": "exactAmount", "type": "uint128"}
        ],
        "internalType": "struct IV4Quoter.QuoteExactParams", "name": "params", "type": "tuple"
      }
    ],
    "name": "quoteExactInput",
    "outputs": [
      {"internalType": "uint256", "name": "amountOut", "type": "uint256"},
      {"internalType": "uint256", "name": "gasEstimate", "type": "uint256"}
    ],
    "stateMutability": "nonpayable",
    "type": "function"
  }
]`

var (
	quoterABI     abi.ABI
	quoterABIOnce sync.Once
	quoterABIErr  error
)

// QuoterABI returns the parsed V4 quoter ABI.
func QuoterABI() (abi.ABI, error) {
	quoterABIOnce.Do(func() {
		quoterABI, quoterABIErr = abi.JSON(strings.NewReader(quoterABIJSON))
	})
	return quoterABI, quoterABIErr
}

// Result is a quote: expected output amount and the router's gas estimate.
type Result struct {
	AmountOut   *big.Int
	GasEstimate *big.Int
}

// Quoter reads expected swap output from the on-chain quoter contract via
// eth_call. It is an oracle only; its numbers feed minimum-output
// selection and are never trusted beyond that.
type Quoter struct {
	client *chain.Client
	addr   common.Address
}

// NewQuoter builds a quoter bound to the deployed quoter contract.
func NewQuoter(client *chain.Client, addr common.Address) *Quoter {
	return &Quoter{client: client, addr: addr}
}

type quoteSingleParams struct {
	PoolKey struct {
		Currency0   common.Address
		Currency1   common.Address
		Fee         *big.Int
		TickSpacing *big.Int
		Hooks       common.Address
	}
	ZeroForOne  bool
	ExactAmount *big.Int
	HookData    []byte
}

type quotePathParams struct {
	ExactCurrency common.Address
	Path          []struct {
		IntermediateCurrency common.Address
		Fee                  *big.Int
		TickSpacing          *big.Int
		Hooks                common.Address
		HookData             []byte
	}
	ExactAmount *big.Int
}

// ExactInputSingle quotes a single-hop exact-input swap.
func (q *Quoter) ExactInputSingle(ctx context.Context, pool v4.PoolKey, zeroForOne bool, amountIn *big.Int) (Result, error) {
	quoterABI, err := QuoterABI()
	if err != nil {
		return Result{}, err
	}

	var params quoteSingleParams
	params.PoolKey.Currency0 = pool.Currency0
	params.PoolKey.Currency1 = pool.Currency1
	params.PoolKey.Fee = new(big.Int).SetUint64(uint64(pool.Fee))
	params.PoolKey.TickSpacing = big.NewInt(int64(pool.TickSpacing))
	params.PoolKey.Hooks = pool.Hooks
	params.ZeroForOne = zeroForOne
	params.ExactAmount = amountIn
	params.HookData = []byte{}

	calldata, err := quoterABI.Pack("quoteExactInputSingle", params)
	if err != nil {
		return Result{}, fmt.Errorf("pack quote: %w", err)
	}
	return q.call(ctx, "quoteExactInputSingle", calldata)
}

// ExactInput quotes a multi-hop exact-input swap over a route.
func (q *Quoter) ExactInput(ctx context.Context, route v4.Route, amountIn *big.Int) (Result, error) {
	quoterABI, err := QuoterABI()
	if err != nil {
		return Result{}, err
	}

	var params quotePathParams
	params.ExactCurrency = token.Normalize(route.Input(), token.PoolIdentity)
	params.ExactAmount = amountIn
	for _, hop := range route.Path {
		hookData := hop.HookData
		if hookData == nil {
			hookData = []byte{}
		}
		params.Path = append(params.Path, struct {
			IntermediateCurrency common.Address
			Fee                  *big.Int
			TickSpacing          *big.Int
			Hooks                common.Address
			HookData             []byte
		}{
			IntermediateCurrency: hop.IntermediateCurrency,
			Fee:                  new(big.Int).SetUint64(uint64(hop.Fee)),
			TickSpacing:          big.NewInt(int64(hop.TickSpacing)),
			Hooks:                hop.Hooks,
			HookData:             hookData,
		})
	}

	calldata, err := quoterABI.Pack("quoteExactInput", params)
	if err != nil {
		return Result{}, fmt.Errorf("pack quote: %w", err)
	}
	return q.call(ctx, "quoteExactInput", calldata)
}

func (q *Quoter) call(ctx context.Context, method string, calldata []byte) (Result, error) {
	out, err := q.client.CallContract(ctx, ethereum.CallMsg{To: &q.addr, Data: calldata}, nil)
	if err != nil {
		return Result{}, fmt.Errorf("quote call: %w", err)
	}

	quoterABI, err := QuoterABI()
	if err != nil {
		return Result{}, err
	}
	values, err := quoterABI.Unpack(method, out)
	if err != nil {
		return Result{}, fmt.Errorf("unpack quote: %w", err)
	}
	if len(values) != 2 {
		return Result{}, fmt.Errorf("unexpected quote output arity: %d", len(values))
	}
	amountOut, ok := values[0].(*big.Int)
	if !ok {
		return Result{}, fmt.Errorf("unexpected amountOut type %T", values[0])
	}
	gasEstimate, ok := values[1].(*big.Int)
	if !ok {
		return Result{}, fmt.Errorf("unexpected gasEstimate type %T", values[1])
	}
	return Result{AmountOut: amountOut, GasEstimate: gasEstimate}, nil
}

// ApplySlippage reduces a quoted output by a slippage tolerance in basis
// points, producing the minimum acceptable output.
func ApplySlippage(amountOut *big.Int, bps uint32) *big.Int {
	if bps >= 10000 {
		return big.NewInt(0)
	}
	out := new(big.Int).Mul(amountOut, big.NewInt(int64(10000-bps)))
	return out.Div(out, big.NewInt(10000))
}
