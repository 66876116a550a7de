package v4

import "math/big"

// Action is a single-byte opcode interpreted by the V4 router's action
// dispatcher. This enumeration is the only place the numeric mapping is
// defined; every step constructor references it.
type Action byte

const (
	ActionSwapExactInSingle  Action = 0x06
	ActionSwapExactIn        Action = 0x07
	ActionSwapExactOutSingle Action = 0x08
	ActionSwapExactOut       Action = 0x09

	ActionSettle    Action = 0x0b
	ActionSettleAll Action = 0x0c

	ActionTake    Action = 0x0e
	ActionTakeAll Action = 0x0f
)

func (a Action) String() string {
	switch a {
	case ActionSwapExactInSingle:
		return "SWAP_EXACT_IN_SINGLE"
	case ActionSwapExactIn:
		return "SWAP_EXACT_IN"
	case ActionSwapExactOutSingle:
		return "SWAP_EXACT_OUT_SINGLE"
	case ActionSwapExactOut:
		return "SWAP_EXACT_OUT"
	case ActionSettle:
		return "SETTLE"
	case ActionSettleAll:
		return "SETTLE_ALL"
	case ActionTake:
		return "TAKE"
	case ActionTakeAll:
		return "TAKE_ALL"
	default:
		return "UNKNOWN"
	}
}

// OpenDelta instructs SETTLE/TAKE to resolve the full residual balance left
// by the preceding swap instead of an explicit amount.
func OpenDelta() *big.Int { return big.NewInt(0) }

// DeltaMode selects how settle and take amounts are expressed.
type DeltaMode int

const (
	// DeltaExplicit emits SETTLE_ALL/TAKE_ALL with caller-supplied amounts.
	DeltaExplicit DeltaMode = iota
	// DeltaOpen emits SETTLE/TAKE with the open-delta sentinel, settling
	// whatever debt/credit the swap actually produced.
	DeltaOpen
)

// Step is one sequenced action plus its ABI-encoded parameter blob.
type Step struct {
	Action Action
	Params []byte
}

// ActionBytes concatenates step opcodes in order.
func ActionBytes(steps []Step) []byte {
	out := make([]byte, len(steps))
	for i, s := range steps {
		out[i] = byte(s.Action)
	}
	return out
}

// ParamBlobs collects the per-step parameter blobs, index-aligned with
// ActionBytes.
func ParamBlobs(steps []Step) [][]byte {
	out := make([][]byte, len(steps))
	for i, s := range steps {
		out[i] = s.Params
	}
	return out
}
