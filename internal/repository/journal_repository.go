package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stwalsh4118/cadastre/internal/database"
	"github.com/stwalsh4118/cadastre/internal/models"
)

// Journal listing bounds.
const (
	DefaultJournalLimit = 50
	MaxJournalLimit     = 500
)

// JournalRepository defines the data access operations for the lookup journal.
type JournalRepository interface {
	// EnsureSchema creates the journal table and its index if they do not exist.
	EnsureSchema(ctx context.Context) error

	// Append stores one entry. A zero ID or CreatedAt is filled in.
	Append(ctx context.Context, entry models.JournalEntry) error

	// Recent returns the newest entries first, at most limit of them.
	// Returns an empty slice if the journal is empty (not an error).
	Recent(ctx context.Context, limit int) ([]models.JournalEntry, error)
}

// journalRepository is the concrete implementation of JournalRepository.
type journalRepository struct {
	db *database.Database
}

// NewJournalRepository creates a new instance of JournalRepository.
func NewJournalRepository(db *database.Database) JournalRepository {
	return &journalRepository{
		db: db,
	}
}

const journalSchema = `
	CREATE TABLE IF NOT EXISTS lookup_journal (
		id           UUID PRIMARY KEY,
		operation    TEXT NOT NULL,
		lookup_key   TEXT NOT NULL,
		outcome      TEXT NOT NULL,
		result_count INTEGER NOT NULL DEFAULT 0,
		duration_ms  BIGINT NOT NULL DEFAULT 0,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS lookup_journal_created_at_idx
		ON lookup_journal (created_at DESC);
`

// EnsureSchema creates the lookup_journal table.
func (r *journalRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Pool.Exec(ctx, journalSchema); err != nil {
		return fmt.Errorf("failed to create lookup journal schema: %w", err)
	}
	return nil
}

// Append inserts a journal entry.
func (r *journalRepository) Append(ctx context.Context, entry models.JournalEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO lookup_journal
			(id, operation, lookup_key, outcome, result_count, duration_ms, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		entry.ID,
		entry.Operation,
		entry.LookupKey,
		entry.Outcome,
		entry.ResultCount,
		entry.DurationMs,
		entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append journal entry (operation=%s): %w", entry.Operation, err)
	}
	return nil
}

// Recent lists the newest journal entries. limit is clamped to
// [1, MaxJournalLimit]; zero or negative means DefaultJournalLimit.
func (r *journalRepository) Recent(ctx context.Context, limit int) ([]models.JournalEntry, error) {
	limit = ClampJournalLimit(limit)

	query := `
		SELECT id, operation, lookup_key, outcome, result_count, duration_ms, created_at
		FROM lookup_journal
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query lookup journal (limit=%d): %w", limit, err)
	}
	defer rows.Close()

	entries := make([]models.JournalEntry, 0, limit)
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.ID,
			&e.Operation,
			&e.LookupKey,
			&e.Outcome,
			&e.ResultCount,
			&e.DurationMs,
			&e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating journal rows: %w", err)
	}

	return entries, nil
}

// ClampJournalLimit applies the journal listing bounds.
func ClampJournalLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultJournalLimit
	case limit > MaxJournalLimit:
		return MaxJournalLimit
	default:
		return limit
	}
}
