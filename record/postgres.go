package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore implements Store backed by PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore creates a PostgreSQL-backed record store.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Get retrieves the live record for (processID, stage).
func (s *PGStore) Get(ctx context.Context, processID, stage string) (ProcessRecord, error) {
	const selectSQL = `
		SELECT process_id, stage, token, owner, created_at, payload
		FROM process_records
		WHERE process_id = $1 AND stage = $2
	`

	var rec ProcessRecord
	err := s.pool.QueryRow(ctx, selectSQL, processID, stage).
		Scan(&rec.ProcessID, &rec.Stage, &rec.Token, &rec.Owner, &rec.CreatedAt, &rec.Payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ProcessRecord{}, ErrNotFound
		}
		return ProcessRecord{}, fmt.Errorf("record: get %s/%s: %w", processID, stage, err)
	}

	return rec, nil
}

// Put writes the record, replacing any previous record for the same key.
func (s *PGStore) Put(ctx context.Context, rec ProcessRecord) error {
	const upsertSQL = `
		INSERT INTO process_records (process_id, stage, token, owner, created_at, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (process_id, stage) DO UPDATE
		SET token = EXCLUDED.token,
		    owner = EXCLUDED.owner,
		    created_at = EXCLUDED.created_at,
		    payload = EXCLUDED.payload
	`

	if _, err := s.pool.Exec(ctx, upsertSQL,
		rec.ProcessID, rec.Stage, rec.Token, rec.Owner, rec.CreatedAt, rec.Payload); err != nil {
		return fmt.Errorf("record: put %s/%s: %w", rec.ProcessID, rec.Stage, err)
	}

	return nil
}
