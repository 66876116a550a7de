package swap

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"v4swap/internal/token"
	"v4swap/internal/v4"
)

var (
	testNow    = time.Unix(1800000000, 0)
	routerAddr = common.HexToAddress("0x66a9893cC07D91D95644AEDD05D03f95e1dBA8Af")
	recipient  = common.HexToAddress("0x3333333333333333333333333333333333333333")

	eth  = token.Native(1, 18, "ETH", "Ether")
	usdc = token.New(1, common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"), 6, "USDC", "USD Coin")
	dai  = token.New(1, common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), 18, "DAI", "Dai Stablecoin")
	mid  = token.New(1, common.HexToAddress("0xCcccCcccCCCCcCCCcCcCccCcCCCcCcccccccCCCc"), 18, "MID", "Mid Token")
)

func testEncoder() *Encoder {
	e := NewEncoder(routerAddr)
	e.now = func() time.Time { return testNow }
	return e
}

func validIntent() Intent {
	return Intent{
		Route:     []token.Token{eth, usdc},
		AmountIn:  big.NewInt(1e15),
		MinOut:    big.NewInt(5e6),
		Recipient: recipient,
		Deadline:  uint64(testNow.Unix()) + 600,
	}
}

func TestEncodeNativeToERC20(t *testing.T) {
	payload, err := testEncoder().Encode(validIntent())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	if payload.Value.Cmp(big.NewInt(1e15)) != 0 {
		t.Fatalf("native input must set value to amountIn, got %s", payload.Value)
	}
	if !bytes.Equal(payload.Commands, []byte{0x10}) {
		t.Fatalf("commands mismatch: %x", payload.Commands)
	}
	if len(payload.Calldata) == 0 {
		t.Fatalf("empty calldata")
	}
}

func TestEncodeERC20ToERC20ZeroValue(t *testing.T) {
	intent := validIntent()
	intent.Route = []token.Token{dai, usdc}
	intent.AmountIn = big.NewInt(2e6)

	payload, err := testEncoder().Encode(intent)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if payload.Value.Sign() != 0 {
		t.Fatalf("erc20 input must set zero value, got %s", payload.Value)
	}
}

func TestEncodeIdempotent(t *testing.T) {
	encoder := testEncoder()
	first, err := encoder.Encode(validIntent())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	second, err := encoder.Encode(validIntent())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if !bytes.Equal(first.Calldata, second.Calldata) {
		t.Fatalf("same intent must encode to byte-identical calldata")
	}
	if first.Value.Cmp(second.Value) != 0 || first.Deadline != second.Deadline {
		t.Fatalf("payload envelope not deterministic")
	}
}

func TestEncodeMultiHop(t *testing.T) {
	intent := validIntent()
	intent.Route = []token.Token{eth, mid, usdc}

	payload, err := testEncoder().Encode(intent)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(payload.Inputs) != 1 {
		t.Fatalf("expected one router input, got %d", len(payload.Inputs))
	}
}

func TestEncodeValidationErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Intent)
		want   error
	}{
		{"zero amount", func(i *Intent) { i.AmountIn = big.NewInt(0) }, ErrZeroAmount},
		{"nil amount", func(i *Intent) { i.AmountIn = nil }, ErrZeroAmount},
		{"negative min out", func(i *Intent) { i.MinOut = big.NewInt(-1) }, ErrInvalidMinOut},
		{"zero min out", func(i *Intent) { i.MinOut = big.NewInt(0) }, ErrInvalidMinOut},
		{"expired deadline", func(i *Intent) { i.Deadline = uint64(testNow.Unix()) - 1 }, ErrDeadlineExpired},
		{"deadline at now", func(i *Intent) { i.Deadline = uint64(testNow.Unix()) }, ErrDeadlineExpired},
		{"same token", func(i *Intent) { i.Route = []token.Token{usdc, usdc} }, ErrSameToken},
		{
			"chain mismatch",
			func(i *Intent) {
				other := token.New(8453, usdc.Address, 6, "USDC", "USD Coin")
				i.Route = []token.Token{dai, other}
			},
			ErrChainMismatch,
		},
		{"short route", func(i *Intent) { i.Route = []token.Token{eth} }, v4.ErrInvalidRoute},
	}

	for _, tc := range cases {
		intent := validIntent()
		tc.mutate(&intent)
		_, err := testEncoder().Encode(intent)
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestEncodeUnsupportedFeeTier(t *testing.T) {
	intent := validIntent()
	intent.Fees = []uint32{7}

	_, err := testEncoder().Encode(intent)
	if !errors.Is(err, v4.ErrUnsupportedFeeTier) {
		t.Fatalf("expected ErrUnsupportedFeeTier, got %v", err)
	}
}

func TestEncodeOpenModeNeedsRecipient(t *testing.T) {
	intent := validIntent()
	intent.Mode = v4.DeltaOpen
	intent.Recipient = common.Address{}

	_, err := testEncoder().Encode(intent)
	if !errors.Is(err, ErrNoRecipient) {
		t.Fatalf("expected ErrNoRecipient, got %v", err)
	}
}

func TestEncodeAllOrNothing(t *testing.T) {
	intent := validIntent()
	intent.Deadline = 1

	payload, err := testEncoder().Encode(intent)
	if err == nil {
		t.Fatalf("expected error")
	}
	if payload.Calldata != nil || payload.Commands != nil {
		t.Fatalf("no partial payload on validation failure")
	}
}
