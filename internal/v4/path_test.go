package v4

import (
	"errors"
	"testing"

	"v4swap/internal/token"
)

func TestNewRoutePathLength(t *testing.T) {
	native := token.Native(1, 18, "ETH", "Ether")
	mid := testToken(1, "0xcccccccccccccccccccccccccccccccccccccccc", "MID")
	out := testToken(1, "0xdddddddddddddddddddddddddddddddddddddddd", "OUT")

	route, err := NewRoute([]token.Token{native, mid, out}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(route.Path) != 2 {
		t.Fatalf("3-token route should have 2 path keys, got %d", len(route.Path))
	}
	if len(route.Pools) != 2 {
		t.Fatalf("3-token route should have 2 pool keys, got %d", len(route.Pools))
	}

	if route.Path[0].IntermediateCurrency != mid.Address {
		t.Fatalf("hop 0 intermediate currency mismatch: %s", route.Path[0].IntermediateCurrency.Hex())
	}
	if route.Path[1].IntermediateCurrency != out.Address {
		t.Fatalf("hop 1 intermediate currency mismatch: %s", route.Path[1].IntermediateCurrency.Hex())
	}
}

func TestNewRouteNativeOutputSentinel(t *testing.T) {
	in := testToken(1, "0xcccccccccccccccccccccccccccccccccccccccc", "IN")
	mid := testToken(1, "0xdddddddddddddddddddddddddddddddddddddddd", "MID")
	native := token.Native(1, 18, "ETH", "Ether")

	route, err := NewRoute([]token.Token{in, mid, native}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if route.Path[1].IntermediateCurrency != token.NativeAddress {
		t.Fatalf("native hop output must use the zero sentinel, got %s", route.Path[1].IntermediateCurrency.Hex())
	}
}

func TestNewRouteDefaultFees(t *testing.T) {
	a := testToken(1, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "AAA")
	b := testToken(1, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "BBB")
	c := testToken(1, "0xcccccccccccccccccccccccccccccccccccccccc", "CCC")

	route, err := NewRoute([]token.Token{a, b, c}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, fee := range route.Fees {
		if fee != FeeMedium {
			t.Fatalf("hop %d: default fee %d, want %d", i, fee, FeeMedium)
		}
	}
}

func TestNewRouteInvalid(t *testing.T) {
	a := testToken(1, "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "AAA")
	b := testToken(1, "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb", "BBB")
	c := testToken(1, "0xcccccccccccccccccccccccccccccccccccccccc", "CCC")
	otherChain := testToken(8453, "0xcccccccccccccccccccccccccccccccccccccccc", "CCC")

	if _, err := NewRoute([]token.Token{a, b}, nil); !errors.Is(err, ErrInvalidRoute) {
		t.Fatalf("short route: expected ErrInvalidRoute, got %v", err)
	}
	if _, err := NewRoute([]token.Token{a, a, b}, nil); !errors.Is(err, ErrInvalidRoute) {
		t.Fatalf("identical adjacent tokens: expected ErrInvalidRoute, got %v", err)
	}
	if _, err := NewRoute([]token.Token{a, b, otherChain}, nil); !errors.Is(err, ErrInvalidRoute) {
		t.Fatalf("cross-chain route: expected ErrInvalidRoute, got %v", err)
	}
	if _, err := NewRoute([]token.Token{a, b, c}, []uint32{FeeMedium}); !errors.Is(err, ErrInvalidRoute) {
		t.Fatalf("fee list length mismatch: expected ErrInvalidRoute, got %v", err)
	}
}
