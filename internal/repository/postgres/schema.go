package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is idempotent; it runs on every start.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS cvs (
    id         UUID PRIMARY KEY,
    title      TEXT NOT NULL DEFAULT 'My CV',
    user_id    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_cvs_user_updated ON cvs (user_id, updated_at DESC)`,
	`CREATE TABLE IF NOT EXISTS cv_data (
    cv_id         UUID PRIMARY KEY REFERENCES cvs(id) ON DELETE CASCADE,
    personal_info JSONB NOT NULL DEFAULT '{}'::jsonb,
    experience    JSONB NOT NULL DEFAULT '[]'::jsonb,
    education     JSONB NOT NULL DEFAULT '[]'::jsonb,
    skills        JSONB NOT NULL DEFAULT '[]'::jsonb,
    languages     JSONB NOT NULL DEFAULT '[]'::jsonb,
    interests     JSONB NOT NULL DEFAULT '[]'::jsonb,
    courses       JSONB NOT NULL DEFAULT '[]'::jsonb,
    customization JSONB NOT NULL DEFAULT '{}'::jsonb,
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
}

// Migrate creates the CV tables when they are missing.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
