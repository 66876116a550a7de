package quote

import (
	"math/big"
	"testing"
)

func TestQuoterABIParses(t *testing.T) {
	quoterABI, err := QuoterABI()
	if err != nil {
		t.Fatalf("abi parse: %v", err)
	}
	if _, ok := quoterABI.Methods["quoteExactInputSingle"]; !ok {
		t.Fatalf("missing quoteExactInputSingle")
	}
	if _, ok := quoterABI.Methods["quoteExactInput"]; !ok {
		t.Fatalf("missing quoteExactInput")
	}
}

func TestApplySlippage(t *testing.T) {
	out := ApplySlippage(big.NewInt(10000), 50)
	if out.Cmp(big.NewInt(9950)) != 0 {
		t.Fatalf("50 bps on 10000 should be 9950, got %s", out)
	}

	out = ApplySlippage(big.NewInt(10000), 0)
	if out.Cmp(big.NewInt(10000)) != 0 {
		t.Fatalf("zero slippage must not change the amount, got %s", out)
	}

	out = ApplySlippage(big.NewInt(10000), 10000)
	if out.Sign() != 0 {
		t.Fatalf("full slippage floors at zero, got %s", out)
	}
}
