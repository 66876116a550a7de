package v4

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
)

// ErrInvalidRoute is returned for malformed multi-hop routes.
var ErrInvalidRoute = errors.New("invalid route")

// PathKey describes one hop of a multi-hop route. IntermediateCurrency is
// the output currency of the hop; a native output uses the zero sentinel,
// mirroring pool-key identity.
type PathKey struct {
	IntermediateCurrency common.Address
	Fee                  uint32
	TickSpacing          int32
	Hooks                common.Address
	HookData             []byte
}

// Route is a validated multi-hop token route with derived pool and path
// keys. A route of N tokens has N-1 hops.
type Route struct {
	Tokens []token.Token
	Fees   []uint32
	Pools  []PoolKey
	Path   []PathKey
}

// NewRoute validates an ordered token route and derives one PoolKey and
// PathKey per consecutive pair. fees carries one tier per hop; nil applies
// the medium tier to every hop.
func NewRoute(tokens []token.Token, fees []uint32) (Route, error) {
	if len(tokens) < 3 {
		return Route{}, fmt.Errorf("%w: need at least 3 tokens, got %d", ErrInvalidRoute, len(tokens))
	}

	hops := len(tokens) - 1
	if fees == nil {
		fees = make([]uint32, hops)
		for i := range fees {
			fees[i] = FeeMedium
		}
	}
	if len(fees) != hops {
		return Route{}, fmt.Errorf("%w: %d hops need %d fee tiers, got %d", ErrInvalidRoute, hops, hops, len(fees))
	}

	chainID := tokens[0].ChainID
	for _, t := range tokens[1:] {
		if t.ChainID != chainID {
			return Route{}, fmt.Errorf("%w: tokens span chains %d and %d", ErrInvalidRoute, chainID, t.ChainID)
		}
	}

	pools := make([]PoolKey, 0, hops)
	path := make([]PathKey, 0, hops)
	for i := 0; i < hops; i++ {
		hopIn, hopOut := tokens[i], tokens[i+1]
		if token.Equal(hopIn, hopOut) {
			return Route{}, fmt.Errorf("%w: adjacent tokens identical at hop %d", ErrInvalidRoute, i)
		}

		pool, err := NewPoolKey(hopIn, hopOut, fees[i])
		if err != nil {
			return Route{}, err
		}
		pools = append(pools, pool)

		path = append(path, PathKey{
			IntermediateCurrency: token.Normalize(hopOut, token.PoolIdentity),
			Fee:                  pool.Fee,
			TickSpacing:          pool.TickSpacing,
			Hooks:                pool.Hooks,
			HookData:             []byte{},
		})
	}

	return Route{Tokens: tokens, Fees: fees, Pools: pools, Path: path}, nil
}

// Input returns the route's starting token.
func (r Route) Input() token.Token { return r.Tokens[0] }

// Output returns the route's final token.
func (r Route) Output() token.Token { return r.Tokens[len(r.Tokens)-1] }
