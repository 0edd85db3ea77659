package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"catalog-assistant/internal/catalog/repository"
	"catalog-assistant/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the catalog domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("catalog/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// Ping reports whether the database answers.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("catalog/repository/postgre.%s", method)
}
