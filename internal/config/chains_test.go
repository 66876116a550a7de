package config

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func TestDeploymentFor(t *testing.T) {
	d, err := DeploymentFor(1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ChainID != 1 {
		t.Fatalf("chain id mismatch: %d", d.ChainID)
	}
	if d.UniversalRouter == (common.Address{}) {
		t.Fatalf("router address missing for mainnet")
	}
	if d.Quoter == (common.Address{}) {
		t.Fatalf("quoter address missing for mainnet")
	}

	if _, err := DeploymentFor(424242); err == nil {
		t.Fatalf("expected error for unknown chain")
	}
}
