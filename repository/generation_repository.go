package repository

import (
	"context"
	"database/sql"
	"time"
)

// Generation is one journaled image-generation outcome
type Generation struct {
	Prompt    string
	Size      string
	Filename  string
	CreatedAt time.Time
}

// GenerationRepository defines the interface for the generation journal
type GenerationRepository interface {
	Record(ctx context.Context, g Generation) error
}

// PostgresGenerationRepository implements GenerationRepository for PostgreSQL
type PostgresGenerationRepository struct {
	db *sql.DB
}

// NewPostgresGenerationRepository creates a new PostgreSQL generation repository
func NewPostgresGenerationRepository(db *sql.DB) *PostgresGenerationRepository {
	return &PostgresGenerationRepository{db: db}
}

// EnsureSchema creates the generations table if it does not exist
func (r *PostgresGenerationRepository) EnsureSchema(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS generations (
			id SERIAL PRIMARY KEY,
			prompt TEXT NOT NULL,
			size TEXT NOT NULL,
			filename TEXT,
			created_at TIMESTAMPTZ NOT NULL
		)
	`

	_, err := r.db.ExecContext(ctx, query)
	return err
}

// Record inserts one generation outcome
func (r *PostgresGenerationRepository) Record(ctx context.Context, g Generation) error {
	query := `
		INSERT INTO generations (prompt, size, filename, created_at)
		VALUES ($1, $2, $3, $4)
	`

	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, query, g.Prompt, g.Size, g.Filename, g.CreatedAt)
	return err
}
