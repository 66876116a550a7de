package v4

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
)

// ErrUnsupportedFeeTier is returned for fee tiers outside the fixed table.
var ErrUnsupportedFeeTier = errors.New("unsupported fee tier")

// Fee tiers in hundredths of a basis point, as the protocol expresses them.
const (
	FeeLowest uint32 = 100
	FeeLow    uint32 = 500
	FeeMedium uint32 = 3000
	FeeHigh   uint32 = 10000
)

var tickSpacings = map[uint32]int32{
	FeeLowest: 1,
	FeeLow:    10,
	FeeMedium: 60,
	FeeHigh:   200,
}

// TickSpacing returns the tick spacing for a fee tier.
func TickSpacing(fee uint32) (int32, error) {
	spacing, ok := tickSpacings[fee]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedFeeTier, fee)
	}
	return spacing, nil
}

// PoolKey identifies a V4 pool. Currency0 is always the numerically
// smaller address; the on-chain pool id is a hash of these five fields, so
// the ordering is load-bearing.
type PoolKey struct {
	Currency0   common.Address
	Currency1   common.Address
	Fee         uint32
	TickSpacing int32
	Hooks       common.Address
}

// NewPoolKey derives the canonical PoolKey for a token pair and fee tier.
// Argument order does not matter; the currencies are sorted into slots.
func NewPoolKey(a, b token.Token, fee uint32) (PoolKey, error) {
	spacing, err := TickSpacing(fee)
	if err != nil {
		return PoolKey{}, err
	}

	addrA := token.Normalize(a, token.PoolIdentity)
	addrB := token.Normalize(b, token.PoolIdentity)
	if addrA == addrB {
		return PoolKey{}, fmt.Errorf("pool currencies must be distinct: %s", addrA.Hex())
	}
	if bytes.Compare(addrA.Bytes(), addrB.Bytes()) > 0 {
		addrA, addrB = addrB, addrA
	}

	return PoolKey{
		Currency0:   addrA,
		Currency1:   addrB,
		Fee:         fee,
		TickSpacing: spacing,
	}, nil
}

// ZeroForOne reports the swap direction for an input token: true when the
// input currency occupies slot 0 of the key.
func (k PoolKey) ZeroForOne(input token.Token) bool {
	return token.Normalize(input, token.PoolIdentity) == k.Currency0
}
