package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Paths locates the backing file of each table.
type Paths struct {
	PendingEvents string
	Events        string
	Registrations string
}

// FileBackend keeps every table in its own headerless CSV file.
type FileBackend struct {
	paths map[Table]string
}

func NewFileBackend(p Paths) (*FileBackend, error) {
	paths := map[Table]string{
		PendingEvents: p.PendingEvents,
		Events:        p.Events,
		Registrations: p.Registrations,
	}
	for t, path := range paths {
		if path == "" {
			return nil, fmt.Errorf("no file configured for %s", t)
		}
	}
	return &FileBackend{paths: paths}, nil
}

func (b *FileBackend) ReadAll(_ context.Context, t Table) ([][]string, error) {
	f, err := os.Open(b.paths[t])
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoTable
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", t, err)
	}
	defer f.Close()

	rows, err := readRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", t, err)
	}
	return rows, nil
}

// Append creates the file on first use.
func (b *FileBackend) Append(_ context.Context, t Table, rows ...[]string) error {
	path := b.paths[t]
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("append %s: %w", t, err)
	}
	if err := syncRows(f, rows); err != nil {
		f.Close()
		return fmt.Errorf("append %s: %w", t, err)
	}
	return f.Close()
}

// ReplaceAll writes a sibling temp file and renames it over the table, so
// readers see either the old contents or the new ones.
func (b *FileBackend) ReplaceAll(_ context.Context, t Table, rows [][]string) error {
	path := b.paths[t]
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("replace %s: %w", t, err)
	}
	if err := syncRows(tmp, rows); err != nil {
		tmp.Close()
		return fmt.Errorf("replace %s: %w", t, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", t, err)
	}
	return nil
}

func (b *FileBackend) Close() error { return nil }

func syncRows(f *os.File, rows [][]string) error {
	if err := writeRows(f, rows); err != nil {
		return err
	}
	return f.Sync()
}
