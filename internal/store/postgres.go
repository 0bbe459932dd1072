package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresBackend keeps the three tables in Postgres.
type PostgresBackend struct {
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, url string) (*PostgresBackend, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	for _, t := range tables {
		if _, err := pool.Exec(ctx, schema(t, "BIGSERIAL PRIMARY KEY")); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate %s: %w", t, err)
		}
	}
	return &PostgresBackend{pool: pool}, nil
}

// pgQuerier is satisfied by both *pgxpool.Pool and pgx.Tx.
type pgQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func pgSelect(ctx context.Context, q pgQuerier, t Table, forUpdate bool) ([]seqRow, error) {
	stmt := selectSQL(t)
	if forUpdate {
		stmt += " FOR UPDATE"
	}
	rows, err := q.Query(ctx, stmt)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []seqRow
	for rows.Next() {
		r := seqRow{row: make([]string, len(t.Columns()))}
		if err := rows.Scan(scanTargets(&r.seq, r.row)...); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func pgInsert(ctx context.Context, tx pgx.Tx, t Table, rows [][]string) error {
	stmt := insertSQL(t, func(n int) string { return fmt.Sprintf("$%d", n) })
	for _, r := range rows {
		if _, err := tx.Exec(ctx, stmt, args(t, r)...); err != nil {
			return err
		}
	}
	return nil
}

func (b *PostgresBackend) ReadAll(ctx context.Context, t Table) ([][]string, error) {
	rows, err := pgSelect(ctx, b.pool, t, false)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}
	return rowsOf(rows), nil
}

func (b *PostgresBackend) Append(ctx context.Context, t Table, rows ...[]string) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	defer tx.Rollback(ctx)

	if err := pgInsert(ctx, tx, t, rows); err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	return tx.Commit(ctx)
}

func (b *PostgresBackend) ReplaceAll(ctx context.Context, t Table, rows [][]string) error {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "DELETE FROM "+string(t)); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	if err := pgInsert(ctx, tx, t, rows); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	return tx.Commit(ctx)
}

// MovePending locks the pending rows for the duration of the move.
func (b *PostgresBackend) MovePending(ctx context.Context, indices []int) (int, error) {
	tx, err := b.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	defer tx.Rollback(ctx)

	pending, err := pgSelect(ctx, tx, PendingEvents, true)
	if err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	selected, _ := split(pending, indices)
	if len(selected) == 0 {
		return 0, tx.Commit(ctx)
	}

	if err := pgInsert(ctx, tx, Events, rowsOf(selected)); err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	seqs := make([]int64, len(selected))
	for i, r := range selected {
		seqs[i] = r.seq
	}
	if _, err := tx.Exec(ctx, `DELETE FROM pending_events WHERE seq = ANY($1)`, seqs); err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	return len(selected), nil
}

func (b *PostgresBackend) Close() error {
	b.pool.Close()
	return nil
}
