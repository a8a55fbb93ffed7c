// Package postgres persists decoded pocket events for off-chain querying.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hamsterpocket/internal/model"
)

// Store provides Postgres persistence for pocket events.
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

// PutEventBatch inserts or updates a batch of decoded events, keyed by
// stream name and sequence number.
func (s *Store) PutEventBatch(ctx context.Context, events []model.PocketEvent) error {
	if len(events) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, event := range events {
		payload, err := json.Marshal(event.Data)
		if err != nil {
			return fmt.Errorf("marshal event payload: %w", err)
		}
		batch.Queue(`
			INSERT INTO pocket_events (
				event_name, account_address, creation_number, sequence_number, version, payload, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, now())
			ON CONFLICT (event_name, sequence_number)
			DO UPDATE SET
				account_address = EXCLUDED.account_address,
				creation_number = EXCLUDED.creation_number,
				version = EXCLUDED.version,
				payload = EXCLUDED.payload
		`,
			string(event.Name),
			event.AccountAddress,
			int64(event.CreationNumber),
			int64(event.SequenceNumber),
			int64(event.Version),
			payload,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range events {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}
