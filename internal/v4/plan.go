package v4

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
)

type abiPoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         *big.Int
	TickSpacing *big.Int
	Hooks       common.Address
}

type abiPathKey struct {
	IntermediateCurrency common.Address
	Fee                  *big.Int
	TickSpacing          *big.Int
	Hooks                common.Address
	HookData             []byte
}

type exactInSingleParams struct {
	PoolKey          abiPoolKey
	ZeroForOne       bool
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
	HookData         []byte
}

type exactInParams struct {
	CurrencyIn       common.Address
	Path             []abiPathKey
	AmountIn         *big.Int
	AmountOutMinimum *big.Int
}

func (k PoolKey) abiValue() abiPoolKey {
	return abiPoolKey{
		Currency0:   k.Currency0,
		Currency1:   k.Currency1,
		Fee:         new(big.Int).SetUint64(uint64(k.Fee)),
		TickSpacing: big.NewInt(int64(k.TickSpacing)),
		Hooks:       k.Hooks,
	}
}

func (p PathKey) abiValue() abiPathKey {
	hookData := p.HookData
	if hookData == nil {
		hookData = []byte{}
	}
	return abiPathKey{
		IntermediateCurrency: p.IntermediateCurrency,
		Fee:                  new(big.Int).SetUint64(uint64(p.Fee)),
		TickSpacing:          big.NewInt(int64(p.TickSpacing)),
		Hooks:                p.Hooks,
		HookData:             hookData,
	}
}

// SwapExactInSingleStep encodes a single-pool exact-input swap action.
func SwapExactInSingleStep(pool PoolKey, zeroForOne bool, amountIn, minOut *big.Int, hookData []byte) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	if hookData == nil {
		hookData = []byte{}
	}
	params, err := a.exactInSingle.Pack(exactInSingleParams{
		PoolKey:          pool.abiValue(),
		ZeroForOne:       zeroForOne,
		AmountIn:         amountIn,
		AmountOutMinimum: minOut,
		HookData:         hookData,
	})
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionSwapExactInSingle, err)
	}
	return Step{Action: ActionSwapExactInSingle, Params: params}, nil
}

// SwapExactInStep encodes a multi-hop exact-input swap action.
func SwapExactInStep(currencyIn common.Address, path []PathKey, amountIn, minOut *big.Int) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	abiPath := make([]abiPathKey, len(path))
	for i, p := range path {
		abiPath[i] = p.abiValue()
	}
	params, err := a.exactIn.Pack(exactInParams{
		CurrencyIn:       currencyIn,
		Path:             abiPath,
		AmountIn:         amountIn,
		AmountOutMinimum: minOut,
	})
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionSwapExactIn, err)
	}
	return Step{Action: ActionSwapExactIn, Params: params}, nil
}

// SettleStep encodes a SETTLE action. The open-delta sentinel as amount
// settles whatever debt the swap left.
func SettleStep(currency common.Address, amount *big.Int, payerIsUser bool) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	params, err := a.settle.Pack(currency, amount, payerIsUser)
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionSettle, err)
	}
	return Step{Action: ActionSettle, Params: params}, nil
}

// SettleAllStep encodes a SETTLE_ALL action with an explicit upper bound.
func SettleAllStep(currency common.Address, maxAmount *big.Int) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	params, err := a.settleAll.Pack(currency, maxAmount)
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionSettleAll, err)
	}
	return Step{Action: ActionSettleAll, Params: params}, nil
}

// TakeStep encodes a TAKE action to a recipient. The open-delta sentinel as
// amount collects the full credited balance.
func TakeStep(currency common.Address, recipient common.Address, amount *big.Int) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	params, err := a.take.Pack(currency, recipient, amount)
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionTake, err)
	}
	return Step{Action: ActionTake, Params: params}, nil
}

// TakeAllStep encodes a TAKE_ALL action with an explicit lower bound.
func TakeAllStep(currency common.Address, minAmount *big.Int) (Step, error) {
	a, err := actionArguments()
	if err != nil {
		return Step{}, err
	}
	params, err := a.takeAll.Pack(currency, minAmount)
	if err != nil {
		return Step{}, fmt.Errorf("pack %s: %w", ActionTakeAll, err)
	}
	return Step{Action: ActionTakeAll, Params: params}, nil
}

// ExactInputSinglePlan sequences a single-hop exact-input swap: the swap
// itself, settlement of the input currency, collection of the output
// currency. Taking tokens rather than raw addresses here keeps the
// settle/input and take/output pairing fixed at the type level.
func ExactInputSinglePlan(pool PoolKey, input, output token.Token, amountIn, minOut *big.Int, recipient common.Address, mode DeltaMode) ([]Step, error) {
	swap, err := SwapExactInSingleStep(pool, pool.ZeroForOne(input), amountIn, minOut, nil)
	if err != nil {
		return nil, err
	}
	rest, err := closePlan(input, output, amountIn, minOut, recipient, mode)
	if err != nil {
		return nil, err
	}
	return append([]Step{swap}, rest...), nil
}

// ExactInputPlan sequences a multi-hop exact-input swap over a validated
// route.
func ExactInputPlan(route Route, amountIn, minOut *big.Int, recipient common.Address, mode DeltaMode) ([]Step, error) {
	input, output := route.Input(), route.Output()
	swap, err := SwapExactInStep(token.Normalize(input, token.PoolIdentity), route.Path, amountIn, minOut)
	if err != nil {
		return nil, err
	}
	rest, err := closePlan(input, output, amountIn, minOut, recipient, mode)
	if err != nil {
		return nil, err
	}
	return append([]Step{swap}, rest...), nil
}

func closePlan(input, output token.Token, amountIn, minOut *big.Int, recipient common.Address, mode DeltaMode) ([]Step, error) {
	inCurrency := token.Normalize(input, token.Transfer)
	outCurrency := token.Normalize(output, token.Transfer)

	var settle, take Step
	var err error
	switch mode {
	case DeltaOpen:
		settle, err = SettleStep(inCurrency, OpenDelta(), true)
		if err != nil {
			return nil, err
		}
		take, err = TakeStep(outCurrency, recipient, OpenDelta())
		if err != nil {
			return nil, err
		}
	default:
		settle, err = SettleAllStep(inCurrency, amountIn)
		if err != nil {
			return nil, err
		}
		take, err = TakeAllStep(outCurrency, minOut)
		if err != nil {
			return nil, err
		}
	}
	return []Step{settle, take}, nil
}
