package submit

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"v4swap/internal/chain"
	"v4swap/internal/router"
)

// Config holds runtime settings for the sender.
type Config struct {
	MaxRetries   int
	RetryBackoff time.Duration
	GasMargin    uint64 // percent added on top of the gas estimate
}

// Sender signs dispatch payloads into EIP-1559 transactions and broadcasts
// them.
type Sender struct {
	cfg     Config
	chain   *chain.Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
	logger  *zap.Logger
}

// NewSender builds a sender for the key on the given chain.
func NewSender(cfg Config, chainClient *chain.Client, key *ecdsa.PrivateKey, chainID *big.Int, logger *zap.Logger) *Sender {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.GasMargin == 0 {
		cfg.GasMargin = 20
	}
	return &Sender{
		cfg:     cfg,
		chain:   chainClient,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: chainID,
		logger:  logger,
	}
}

// From returns the sending account address.
func (s *Sender) From() common.Address { return s.from }

// Submit signs and broadcasts the payload, returning the transaction hash.
// It does not wait for inclusion; revert surfacing is the caller's concern.
func (s *Sender) Submit(ctx context.Context, payload router.DispatchPayload) (common.Hash, error) {
	nonce, err := s.chain.PendingNonce(ctx, s.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("pending nonce: %w", err)
	}

	tipCap, err := s.chain.SuggestGasTipCap(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("suggest tip: %w", err)
	}

	header, err := s.chain.LatestHeader(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("latest header: %w", err)
	}
	feeCap := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
	feeCap.Add(feeCap, tipCap)

	gas, err := s.chain.EstimateGas(ctx, ethereum.CallMsg{
		From:  s.from,
		To:    &payload.Router,
		Value: payload.Value,
		Data:  payload.Calldata,
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("estimate gas: %w", err)
	}
	gas += gas * s.cfg.GasMargin / 100

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   s.chainID,
		Nonce:     nonce,
		GasTipCap: tipCap,
		GasFeeCap: feeCap,
		Gas:       gas,
		To:        &payload.Router,
		Value:     payload.Value,
		Data:      payload.Calldata,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(s.chainID), s.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("sign tx: %w", err)
	}

	err = withRetry(ctx, s.cfg.MaxRetries, s.cfg.RetryBackoff, func(ctx context.Context) error {
		if err := s.chain.SendTransaction(ctx, signed); err != nil {
			s.logger.Warn("send transaction failed", zap.Error(err), zap.String("tx_hash", signed.Hash().Hex()))
			return err
		}
		return nil
	})
	if err != nil {
		return common.Hash{}, fmt.Errorf("send transaction: %w", err)
	}

	s.logger.Info("transaction sent",
		zap.String("tx_hash", signed.Hash().Hex()),
		zap.String("router", payload.Router.Hex()),
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", gas),
		zap.String("value", payload.Value.String()),
	)

	return signed.Hash(), nil
}
