package swap

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
	"v4swap/internal/v4"
)

// Validation errors. Each is a distinct sentinel so callers can render an
// actionable message.
var (
	ErrZeroAmount      = errors.New("input amount must be positive")
	ErrInvalidMinOut   = errors.New("minimum output must be positive")
	ErrDeadlineExpired = errors.New("deadline already elapsed")
	ErrSameToken       = errors.New("cannot swap a token for itself")
	ErrChainMismatch   = errors.New("tokens are on different chains")
	ErrNoRecipient     = errors.New("recipient is required")
)

// Intent is one swap request: an ordered token route (two tokens for a
// single hop, three or more for multi-hop), exact input amount, minimum
// acceptable output, recipient, and an absolute deadline. Intents are
// consumed whole by Encode and never persisted.
type Intent struct {
	Route     []token.Token
	Fees      []uint32
	AmountIn  *big.Int
	MinOut    *big.Int
	Recipient common.Address
	Deadline  uint64
	Mode      v4.DeltaMode
}

// In returns the input token.
func (i Intent) In() token.Token { return i.Route[0] }

// Out returns the output token.
func (i Intent) Out() token.Token { return i.Route[len(i.Route)-1] }

// Validate checks the intent against the caller-input error taxonomy.
// Encoding is all-or-nothing: nothing is packed until this passes.
func (i Intent) Validate(now time.Time) error {
	if len(i.Route) < 2 {
		return fmt.Errorf("%w: need at least 2 tokens, got %d", v4.ErrInvalidRoute, len(i.Route))
	}
	if i.AmountIn == nil || i.AmountIn.Sign() <= 0 {
		return ErrZeroAmount
	}
	if i.MinOut == nil || i.MinOut.Sign() <= 0 {
		return ErrInvalidMinOut
	}
	if i.Deadline <= uint64(now.Unix()) {
		return fmt.Errorf("%w: deadline %d, now %d", ErrDeadlineExpired, i.Deadline, now.Unix())
	}
	if token.Equal(i.In(), i.Out()) {
		return ErrSameToken
	}
	chainID := i.Route[0].ChainID
	for _, t := range i.Route[1:] {
		if t.ChainID != chainID {
			return fmt.Errorf("%w: %d and %d", ErrChainMismatch, chainID, t.ChainID)
		}
	}
	if i.Mode == v4.DeltaOpen && i.Recipient == (common.Address{}) {
		return ErrNoRecipient
	}
	return nil
}
