package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/Balogunolalere/campainProj/internal/domain"
)

// Store is a postgres-backed document store. All collections live in a single
// documents table keyed by (collection, key); the document body is JSONB.
type Store struct {
	DB *sql.DB
}

// New returns a Store backed by the given database handle.
func New(db *sql.DB) *Store {
	return &Store{DB: db}
}

// Migrate creates the documents table if it does not exist.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			key        TEXT NOT NULL,
			doc        JSONB NOT NULL,
			PRIMARY KEY (collection, key)
		)
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create documents table: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, collection, key string) (domain.Record, error) {
	query := `
		SELECT doc
		FROM documents
		WHERE collection = $1 AND key = $2
	`
	var raw []byte
	err := s.DB.QueryRowContext(ctx, query, collection, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", collection, key, err)
	}
	return decodeRecord(key, raw)
}

// Fetch uses JSONB containment, so equality filters are evaluated by the
// database rather than in memory.
func (s *Store) Fetch(ctx context.Context, collection string, filter domain.Filter) ([]domain.Record, error) {
	if filter == nil {
		filter = domain.Filter{}
	}
	filterJSON, err := json.Marshal(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to encode filter: %w", err)
	}
	query := `
		SELECT key, doc
		FROM documents
		WHERE collection = $1 AND doc @> $2
	`
	rows, err := s.DB.QueryContext(ctx, query, collection, filterJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", collection, err)
	}
	defer rows.Close()

	var recs []domain.Record
	for rows.Next() {
		var key string
		var raw []byte
		if err := rows.Scan(&key, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", collection, err)
		}
		rec, err := decodeRecord(key, raw)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", collection, err)
	}
	return recs, nil
}

func (s *Store) Put(ctx context.Context, collection, key string, rec domain.Record) (domain.Record, error) {
	raw, err := encodeRecord(key, rec)
	if err != nil {
		return nil, err
	}
	query := `
		INSERT INTO documents (collection, key, doc)
		VALUES ($1, $2, $3)
		ON CONFLICT (collection, key) DO UPDATE SET doc = EXCLUDED.doc
	`
	if _, err := s.DB.ExecContext(ctx, query, collection, key, raw); err != nil {
		return nil, fmt.Errorf("failed to put %s/%s: %w", collection, key, err)
	}
	return decodeRecord(key, raw)
}

// PutMany upserts the whole batch with a single multi-row statement.
func (s *Store) PutMany(ctx context.Context, collection string, recs []domain.Record) error {
	if len(recs) == 0 {
		return nil
	}
	var (
		placeholders []string
		args         []any
	)
	args = append(args, collection)
	for i, rec := range recs {
		key, ok := rec["key"].(string)
		if !ok || key == "" {
			return fmt.Errorf("record in %s batch is missing a key", collection)
		}
		raw, err := encodeRecord(key, rec)
		if err != nil {
			return err
		}
		placeholders = append(placeholders, fmt.Sprintf("($1, $%d, $%d)", i*2+2, i*2+3))
		args = append(args, key, raw)
	}
	query := fmt.Sprintf(`
		INSERT INTO documents (collection, key, doc)
		VALUES %s
		ON CONFLICT (collection, key) DO UPDATE SET doc = EXCLUDED.doc
	`, strings.Join(placeholders, ", "))
	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to put batch into %s: %w", collection, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, collection, key string) error {
	query := `
		DELETE FROM documents
		WHERE collection = $1 AND key = $2
	`
	if _, err := s.DB.ExecContext(ctx, query, collection, key); err != nil {
		return fmt.Errorf("failed to delete %s/%s: %w", collection, key, err)
	}
	return nil
}

func encodeRecord(key string, rec domain.Record) ([]byte, error) {
	cp := make(domain.Record, len(rec)+1)
	for k, v := range rec {
		cp[k] = v
	}
	cp["key"] = key
	b, err := json.Marshal(cp)
	if err != nil {
		return nil, fmt.Errorf("failed to encode record %s: %w", key, err)
	}
	return b, nil
}

func decodeRecord(key string, raw []byte) (domain.Record, error) {
	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", key, err)
	}
	rec["key"] = key
	return rec, nil
}
