package swap

import (
	"time"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/router"
	"v4swap/internal/v4"
)

// Encoder turns validated intents into router dispatch payloads. It holds
// no mutable state; concurrent Encode calls are safe.
type Encoder struct {
	routerAddr common.Address
	now        func() time.Time
}

// NewEncoder builds an encoder targeting the given universal router.
func NewEncoder(routerAddr common.Address) *Encoder {
	return &Encoder{
		routerAddr: routerAddr,
		now:        time.Now,
	}
}

// Encode runs the full pipeline: validation, pool/path derivation, action
// sequencing, dispatch packaging. Same intent in, byte-identical payload
// out.
func (e *Encoder) Encode(intent Intent) (router.DispatchPayload, error) {
	if err := intent.Validate(e.now()); err != nil {
		return router.DispatchPayload{}, err
	}

	steps, err := e.plan(intent)
	if err != nil {
		return router.DispatchPayload{}, err
	}

	return router.Package(e.routerAddr, steps, intent.In(), intent.AmountIn, intent.Deadline)
}

func (e *Encoder) plan(intent Intent) ([]v4.Step, error) {
	if len(intent.Route) == 2 {
		fee := v4.FeeMedium
		if len(intent.Fees) > 0 {
			fee = intent.Fees[0]
		}
		pool, err := v4.NewPoolKey(intent.In(), intent.Out(), fee)
		if err != nil {
			return nil, err
		}
		return v4.ExactInputSinglePlan(pool, intent.In(), intent.Out(), intent.AmountIn, intent.MinOut, intent.Recipient, intent.Mode)
	}

	route, err := v4.NewRoute(intent.Route, intent.Fees)
	if err != nil {
		return nil, err
	}
	return v4.ExactInputPlan(route, intent.AmountIn, intent.MinOut, intent.Recipient, intent.Mode)
}
