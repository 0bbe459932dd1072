package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteBackend keeps the three tables in one SQLite database.
type SQLiteBackend struct {
	db *sql.DB
}

func OpenSQLite(ctx context.Context, dsn string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// single writer avoids "database is locked" under concurrent writes
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	for _, t := range tables {
		if _, err := db.ExecContext(ctx, schema(t, "INTEGER PRIMARY KEY AUTOINCREMENT")); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate %s: %w", t, err)
		}
	}
	return &SQLiteBackend{db: db}, nil
}

type sqlQuerier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func sqliteSelect(ctx context.Context, q sqlQuerier, t Table) ([]seqRow, error) {
	rows, err := q.QueryContext(ctx, selectSQL(t))
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

func sqliteInsert(ctx context.Context, q sqlQuerier, t Table, rows [][]string) error {
	stmt := insertSQL(t, func(int) string { return "?" })
	for _, r := range rows {
		if _, err := q.ExecContext(ctx, stmt, args(t, r)...); err != nil {
			return err
		}
	}
	return nil
}

func (b *SQLiteBackend) ReadAll(ctx context.Context, t Table) ([][]string, error) {
	rows, err := sqliteSelect(ctx, b.db, t)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}
	return rowsOf(rows), nil
}

func (b *SQLiteBackend) Append(ctx context.Context, t Table, rows ...[]string) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	defer tx.Rollback()

	if err := sqliteInsert(ctx, tx, t, rows); err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	return tx.Commit()
}

func (b *SQLiteBackend) ReplaceAll(ctx context.Context, t Table, rows [][]string) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+string(t)); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	if err := sqliteInsert(ctx, tx, t, rows); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	return tx.Commit()
}

// MovePending runs the whole approval in one transaction.
func (b *SQLiteBackend) MovePending(ctx context.Context, indices []int) (int, error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	defer tx.Rollback()

	pending, err := sqliteSelect(ctx, tx, PendingEvents)
	if err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	selected, _ := split(pending, indices)
	if len(selected) == 0 {
		return 0, tx.Commit()
	}

	if err := sqliteInsert(ctx, tx, Events, rowsOf(selected)); err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	for _, r := range selected {
		if _, err := tx.ExecContext(ctx, "DELETE FROM pending_events WHERE seq = ?", r.seq); err != nil {
			return 0, fmt.Errorf("approve: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("approve: %w", err)
	}
	return len(selected), nil
}

func (b *SQLiteBackend) Close() error { return b.db.Close() }
