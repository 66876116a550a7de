package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"v4swap/internal/model"
)

// Store provides Postgres persistence for swap history.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// UpsertSwaps inserts or updates swap records keyed by transaction hash.
func (s *Store) UpsertSwaps(ctx context.Context, swaps []model.SwapRecord) error {
	if len(swaps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, swap := range swaps {
		batch.Queue(`
			INSERT INTO swaps (
				chain_id, tx_hash, router, sender, recipient, token_in, token_out,
				amount_in, min_out, quoted_out, commands, value, deadline, status,
				submitted_at, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,now(),now())
			ON CONFLICT (chain_id, tx_hash)
			DO UPDATE SET
				status = EXCLUDED.status,
				quoted_out = EXCLUDED.quoted_out,
				updated_at = now()
		`,
			int64(swap.ChainID),
			swap.TxHash,
			swap.Router,
			swap.Sender,
			swap.Recipient,
			swap.TokenIn,
			swap.TokenOut,
			swap.AmountIn,
			swap.MinOut,
			swap.QuotedOut,
			swap.Commands,
			swap.Value,
			int64(swap.Deadline),
			swap.Status,
			swap.SubmittedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range swaps {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
